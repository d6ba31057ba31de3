// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides the append-only audit trail writer.
//
// Audit rows are written by mutating operations and never updated, deleted,
// or read back by application logic. The writer is therefore insert-only by
// construction: no query helpers exist here on purpose.
package repo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/justicerollon/go-justice-backend/internal/domain"
)

// AppendAudit inserts one audit row. userID may be empty for anonymous or
// system actions; meta is marshaled to JSON (a marshal failure degrades to
// an empty payload rather than losing the row).
func AppendAudit(ctx context.Context, db *gorm.DB, userID, action string, meta map[string]any) error {
	row := &domain.AuditLog{
		ID:        uuid.NewString(),
		Action:    action,
		CreatedAt: time.Now().UTC(),
	}
	if userID != "" {
		row.UserID = &userID
	}
	if len(meta) > 0 {
		if b, err := json.Marshal(meta); err == nil {
			row.Meta = string(b)
		}
	}
	return db.WithContext(ctx).Create(row).Error
}
