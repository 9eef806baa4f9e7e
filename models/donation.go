package models

import "gorm.io/gorm"

type Donation struct {
	gorm.Model
	DonorName   string         `gorm:"not null" json:"donor_name"`
	DonorEmail  string         `gorm:"not null" json:"donor_email"`
	DonorPhone  string         `gorm:"not null" json:"donor_phone"`
	PANNumber   string         `gorm:"column:pan_number" json:"pan_number,omitempty"`
	Amount      int            `gorm:"not null" json:"amount"` // rupees
	Program     string         `gorm:"default:general" json:"program"` // healthcare, education, rural-development, social-justice, general
	Message     string         `gorm:"type:text" json:"message,omitempty"`
	IsAnonymous bool           `gorm:"default:false" json:"is_anonymous"`
	Payment     PaymentDetails `gorm:"embedded;embeddedPrefix:payment_" json:"payment"`
}
