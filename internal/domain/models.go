// Package domain defines the persistence models for users, evidence,
// petitions, consultations, depositions, and the audit trail. These types
// are mapped with GORM and form the core data layer of the justice backend.
package domain

import (
	"time"
)

// PetitionStatus is the lifecycle state of a petition. Transitions are
// driven exclusively by the petition service: create → draft, submit →
// pending, approve → published, reject → rejected.
type PetitionStatus string

const (
	StatusDraft     PetitionStatus = "draft"
	StatusPending   PetitionStatus = "pending"
	StatusPublished PetitionStatus = "published"
	StatusRejected  PetitionStatus = "rejected"
)

// Visibility controls whether a petition appears in anonymous collection
// reads. The public justice index filters by status only, not visibility.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// VerificationStatus tracks the review state of an uploaded evidence file.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// Evidence file type labels. Free-form uploads default to FileTypeOther.
const (
	FileTypeImage = "image"
	FileTypePDF   = "pdf"
	FileTypeVideo = "video"
	FileTypeDoc   = "doc"
	FileTypeOther = "other"
)

// PetitionCategories are the categories offered at creation time.
var PetitionCategories = []string{
	"general",
	"legal",
	"welfare",
	"environment",
	"policy",
}

// User is an account with a role that gates every other operation.
// Usernames are unique; the role changes only through admin action.
type User struct {
	ID           string    `json:"id"       gorm:"type:char(36);primaryKey"`
	Username     string    `json:"username" gorm:"type:varchar(150);not null;uniqueIndex"`
	Email        string    `json:"email"    gorm:"type:varchar(254)"`
	PasswordHash string    `json:"-"        gorm:"type:varchar(255);not null"`
	Role         Role      `json:"role"     gorm:"type:varchar(20);not null;default:'citizen';check:role IN ('admin','lawyer','citizen')"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Evidence is uploaded file metadata owned by its uploader. SizeBytes is
// derived from the stored file at save time; a nil value means the size
// could not be read when the record was persisted.
type Evidence struct {
	ID                 string             `json:"id"        gorm:"type:char(36);primaryKey"`
	UploaderID         string             `json:"uploader_id" gorm:"type:char(36);not null;index"`
	Title              string             `json:"title"     gorm:"type:varchar(255);not null"`
	FilePath           string             `json:"file_path" gorm:"type:varchar(512)"`
	FileType           string             `json:"file_type" gorm:"type:varchar(20);not null;default:'other'"`
	SizeBytes          *int64             `json:"size_bytes,omitempty"`
	CaseTag            string             `json:"case_tag"  gorm:"type:varchar(128)"`
	VerificationStatus VerificationStatus `json:"verification_status" gorm:"type:varchar(20);not null;default:'pending'"`
	UploadedAt         time.Time          `json:"uploaded_at"`

	// Uploader never changes after creation; evidence rows go away with
	// their owner.
	Uploader User `json:"-" gorm:"foreignKey:UploaderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Evidence.
func (Evidence) TableName() string { return "evidence" }

// Petition is the central mutable entity: a citizen-authored request that
// moves through draft/pending/published/rejected under admin review and
// accumulates supporters.
//
// SupporterCount mirrors the cardinality of the petition_supporters join
// table; the join operation recomputes it inside a transaction rather than
// incrementing, so prior drift self-heals.
type Petition struct {
	ID             string         `json:"id"          gorm:"type:char(36);primaryKey"`
	CreatorID      string         `json:"creator_id"  gorm:"type:char(36);not null;index"`
	Title          string         `json:"title"       gorm:"type:varchar(255);not null"`
	Description    string         `json:"description" gorm:"type:text;not null"`
	Category       string         `json:"category"    gorm:"type:varchar(100);not null;default:'general'"`
	Visibility     Visibility     `json:"visibility"  gorm:"type:varchar(20);not null;default:'public'"`
	Status         PetitionStatus `json:"status"      gorm:"type:varchar(20);not null;default:'draft';index"`
	SupporterCount int64          `json:"supporter_count" gorm:"not null;default:0"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	PublishedAt    *time.Time     `json:"published_at,omitempty"`

	Creator   User       `json:"creator"             gorm:"foreignKey:CreatorID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Evidences []Evidence `json:"evidences,omitempty" gorm:"many2many:petition_evidence;joinForeignKey:PetitionID;joinReferences:EvidenceID"`
}

// TableName returns the database table name for Petition.
func (Petition) TableName() string { return "petitions" }

// PetitionSupporter is the explicit supporter join row. The unique pair
// index is what makes repeated joins by the same citizen observable as a
// no-op instead of a double count.
type PetitionSupporter struct {
	PetitionID string    `json:"petition_id" gorm:"type:char(36);primaryKey"`
	UserID     string    `json:"user_id"     gorm:"type:char(36);primaryKey"`
	CreatedAt  time.Time `json:"created_at"`

	Petition Petition `json:"-" gorm:"foreignKey:PetitionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	User     User     `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for PetitionSupporter.
func (PetitionSupporter) TableName() string { return "petition_supporters" }

// PetitionEvidence links a petition to an attached evidence record.
type PetitionEvidence struct {
	PetitionID string `gorm:"type:char(36);primaryKey"`
	EvidenceID string `gorm:"type:char(36);primaryKey"`
}

// TableName returns the database table name for PetitionEvidence.
func (PetitionEvidence) TableName() string { return "petition_evidence" }

// ConsultationSlot is a lawyer's offered time window. IsBooked holds true
// iff a confirmed booking references the slot.
type ConsultationSlot struct {
	ID              string    `json:"id"         gorm:"type:char(36);primaryKey"`
	LawyerID        string    `json:"lawyer_id"  gorm:"type:char(36);not null;index"`
	StartTime       time.Time `json:"start_time" gorm:"not null"`
	DurationMinutes int       `json:"duration_minutes" gorm:"not null;default:30"`
	IsBooked        bool      `json:"is_booked"  gorm:"not null;default:false"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Lawyer User `json:"-" gorm:"foreignKey:LawyerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for ConsultationSlot.
func (ConsultationSlot) TableName() string { return "consultation_slots" }

// ConsultationBooking is a citizen's reservation against a slot. Confirmed
// exclusivity is enforced transactionally in the consultation service, not
// by a schema constraint.
type ConsultationBooking struct {
	ID        string    `json:"id"      gorm:"type:char(36);primaryKey"`
	SlotID    string    `json:"slot_id" gorm:"type:char(36);not null;index"`
	UserID    string    `json:"user_id" gorm:"type:char(36);not null;index"`
	Confirmed bool      `json:"confirmed" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at"`

	Slot ConsultationSlot `json:"-" gorm:"foreignKey:SlotID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	User User             `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for ConsultationBooking.
func (ConsultationBooking) TableName() string { return "consultation_bookings" }

// Deposition is a lawyer-curated narrative composed of ordered evidence
// references.
type Deposition struct {
	ID          string    `json:"id"         gorm:"type:char(36);primaryKey"`
	CreatedByID string    `json:"created_by" gorm:"type:char(36);not null;index"`
	Title       string    `json:"title"      gorm:"type:varchar(255);not null"`
	Content     string    `json:"content"    gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	CreatedBy User `json:"-" gorm:"foreignKey:CreatedByID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Deposition.
func (Deposition) TableName() string { return "depositions" }

// DepositionEvidence orders evidence within a deposition. Position is an
// advisory sort key: duplicates are tolerated and ties sort by insertion.
type DepositionEvidence struct {
	DepositionID string `json:"deposition_id" gorm:"type:char(36);primaryKey"`
	EvidenceID   string `json:"evidence_id"   gorm:"type:char(36);primaryKey"`
	Position     int    `json:"position"      gorm:"not null;default:0"`

	Deposition Deposition `json:"-" gorm:"foreignKey:DepositionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Evidence   Evidence   `json:"-" gorm:"foreignKey:EvidenceID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for DepositionEvidence.
func (DepositionEvidence) TableName() string { return "deposition_evidence" }

// AuditLog is an append-only action record. The user reference is weak: if
// the actor is removed, the row stays with a nulled user id. The
// application writes these rows and never reads them back.
type AuditLog struct {
	ID        string    `json:"id"     gorm:"type:char(36);primaryKey"`
	UserID    *string   `json:"user_id,omitempty" gorm:"type:char(36);index"`
	Action    string    `json:"action" gorm:"type:varchar(255);not null"`
	Meta      string    `json:"meta,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`

	User *User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

// TableName returns the database table name for AuditLog.
func (AuditLog) TableName() string { return "audit_logs" }
