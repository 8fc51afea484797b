package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// The structs below are composable column bundles. An entity picks the
// primary-key flavor it needs and embeds any of the optional bundles
// independently; there is no mandatory base chain beyond the key.

// UUIDModel gives an entity a client-side generated UUID primary key.
type UUIDModel struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
}

// PrimaryKey returns the identity attribute value.
func (m UUIDModel) PrimaryKey() any { return m.ID }

// BeforeCreate assigns an id when none was provided by the caller.
func (m *UUIDModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// IntModel gives an entity a server-side auto-increment integer primary key.
type IntModel struct {
	ID uint `gorm:"primaryKey" json:"id"`
}

// PrimaryKey returns the identity attribute value.
func (m IntModel) PrimaryKey() any { return m.ID }

// AuditColumns adds creation/update timestamps. They are stored normalized
// to UTC; see the NowFunc set in config.SetupDatabase.
type AuditColumns struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SoftDeleteColumns marks logical deletion; the row stays in storage.
type SoftDeleteColumns struct {
	IsDeleted bool       `gorm:"not null;default:false" json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// SoftDelete marks the row deleted at the current time.
func (c *SoftDeleteColumns) SoftDelete() {
	now := time.Now().UTC()
	c.IsDeleted = true
	c.DeletedAt = &now
}

// Restore clears the deletion mark.
func (c *SoftDeleteColumns) Restore() {
	c.IsDeleted = false
	c.DeletedAt = nil
}

// ArchiveColumns marks historical rows: archived but not deleted.
type ArchiveColumns struct {
	IsArchived bool       `gorm:"not null;default:false" json:"is_archived"`
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
}

// Archive marks the row archived at the current time.
func (c *ArchiveColumns) Archive() {
	now := time.Now().UTC()
	c.IsArchived = true
	c.ArchivedAt = &now
}

// Unarchive clears the archive mark.
func (c *ArchiveColumns) Unarchive() {
	c.IsArchived = false
	c.ArchivedAt = nil
}

// ActivationColumns tracks operational availability.
type ActivationColumns struct {
	IsActive bool `gorm:"not null;default:true;index" json:"is_active"`
}

// Activate marks the row active.
func (c *ActivationColumns) Activate() { c.IsActive = true }

// Deactivate marks the row inactive.
func (c *ActivationColumns) Deactivate() { c.IsActive = false }

// VerificationColumns tracks verification/approval state.
type VerificationColumns struct {
	IsVerified bool       `gorm:"not null;default:false;index" json:"is_verified"`
	VerifiedAt *time.Time `json:"verified_at,omitempty"`
}

// Verify marks the row verified at the current time.
func (c *VerificationColumns) Verify() {
	now := time.Now().UTC()
	c.IsVerified = true
	c.VerifiedAt = &now
}

// Unverify clears the verification mark.
func (c *VerificationColumns) Unverify() {
	c.IsVerified = false
	c.VerifiedAt = nil
}
