package agls

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// OrganizationRecord is the corporate identity used for the creator and publisher tags.
type OrganizationRecord struct {
	CorporateName string `gorm:"size:255" json:"corporate_name"`
	Address       string `gorm:"size:255" json:"address"`
	Contact       string `gorm:"size:255" json:"contact"`
}

// Format answers the record as "corporateName=...; address=...; contact=...".
// Empty fields are left out. Values are not escaped, so a value holding "=" or ";"
// produces an ambiguous string.
func (r OrganizationRecord) Format() string {
	fields := []struct {
		key   string
		value string
	}{
		{"corporateName", r.CorporateName},
		{"address", r.Address},
		{"contact", r.Contact},
	}

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%s", strings.TrimSpace(f.key), strings.TrimSpace(f.value)))
	}
	return strings.Join(parts, "; ")
}

// IsEmpty reports whether no field carries a value.
func (r OrganizationRecord) IsEmpty() bool {
	return r.CorporateName == "" && r.Address == "" && r.Contact == ""
}

// Settings is the site-wide AGLS record. There is one row per site.
type Settings struct {
	ID                     uint               `gorm:"primaryKey" json:"-"`
	Creator                OrganizationRecord `gorm:"embedded;embeddedPrefix:creator_" json:"creator"`
	Publisher              OrganizationRecord `gorm:"embedded;embeddedPrefix:publisher_" json:"publisher"`
	PublisherSameAsCreator bool               `gorm:"not null" json:"publisher_same_as_creator"`
	CreatedAt              time.Time          `json:"-"`
	UpdatedAt              time.Time          `json:"updated_at"`
}

func (Settings) TableName() string {
	return "agls_settings"
}

// NewSettings returns the factory defaults: publisher mirrors the creator.
func NewSettings() *Settings {
	return &Settings{PublisherSameAsCreator: true}
}

func (s *Settings) CreatorString() string {
	return s.Creator.Format()
}

// PublisherString answers the creator string while the publisher is marked as the
// same organisation, otherwise the publisher's own record.
func (s *Settings) PublisherString() string {
	if s.PublisherSameAsCreator {
		return s.CreatorString()
	}
	return s.Publisher.Format()
}

// ClearMirroredPublisher empties the stored publisher fields when they mirror the creator.
func (s *Settings) ClearMirroredPublisher() {
	if s.PublisherSameAsCreator {
		s.Publisher = OrganizationRecord{}
	}
}

// BeforeSave runs inside the write transaction for both create and update.
func (s *Settings) BeforeSave(tx *gorm.DB) error {
	s.ClearMirroredPublisher()
	return nil
}
