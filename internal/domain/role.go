package domain

// Role is the closed set of account roles. Authorization decisions are made
// through the capability helpers below rather than string comparisons in
// handlers, so each rule lives in exactly one place.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleLawyer  Role = "lawyer"
	RoleCitizen Role = "citizen"
)

// ParseRole maps a raw string onto a Role. Unknown or empty values fall back
// to RoleCitizen, mirroring the registration default.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin, RoleLawyer, RoleCitizen:
		return Role(s)
	default:
		return RoleCitizen
	}
}

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleLawyer, RoleCitizen:
		return true
	}
	return false
}

// CanCreatePetition reports whether the role may author petitions.
func (r Role) CanCreatePetition() bool { return r == RoleCitizen }

// CanSupportPetition reports whether the role may join a petition as a
// supporter.
func (r Role) CanSupportPetition() bool { return r == RoleCitizen }

// CanReviewPetition reports whether the role may approve or reject
// submitted petitions.
func (r Role) CanReviewPetition() bool { return r == RoleAdmin }

// CanOfferSlots reports whether the role may publish consultation slots.
func (r Role) CanOfferSlots() bool { return r == RoleLawyer }

// CanBookSlot reports whether the role may reserve a consultation slot.
func (r Role) CanBookSlot() bool { return r == RoleCitizen }

// CanComposeDeposition reports whether the role may assemble depositions
// from evidence.
func (r Role) CanComposeDeposition() bool { return r == RoleLawyer }

// SeesAllPetitions reports whether the role's collection reads bypass the
// ownership filter.
func (r Role) SeesAllPetitions() bool { return r == RoleAdmin }
