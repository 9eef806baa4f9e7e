package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Member struct {
	gorm.Model
	UserID               uint           `gorm:"not null;index" json:"user_id"`
	User                 User           `json:"user"`
	MembershipID         string         `gorm:"unique" json:"membership_id"`
	Street               string         `json:"street,omitempty"`
	City                 string         `json:"city,omitempty"`
	State                string         `json:"state,omitempty"`
	Pincode              string         `json:"pincode,omitempty"`
	Occupation           string         `json:"occupation,omitempty"`
	DateOfBirth          *time.Time     `json:"date_of_birth,omitempty"`
	MembershipStartDate  time.Time      `json:"membership_start_date"`
	MembershipExpiryDate time.Time      `gorm:"not null" json:"membership_expiry_date"`
	IsActive             bool           `gorm:"default:false" json:"is_active"`
	Payment              PaymentDetails `gorm:"embedded;embeddedPrefix:payment_" json:"payment"`
}

// BeforeCreate mints the membership ID, e.g. AYDF202600042.
func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.MembershipID == "" {
		var count int64
		if err := tx.Model(&Member{}).Count(&count).Error; err != nil {
			return err
		}
		m.MembershipID = fmt.Sprintf("AYDF%d%05d", time.Now().Year(), count+1)
	}

	if m.MembershipStartDate.IsZero() {
		m.MembershipStartDate = time.Now()
	}

	return nil
}
