package models

import "gorm.io/gorm"

type VillageProfile struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Photo       string `json:"photo,omitempty"`
	Village     string `gorm:"not null;index" json:"village"`
	CurrentCity string `gorm:"not null;index" json:"current_city"`
	Occupation  string `gorm:"not null" json:"occupation"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Whatsapp    string `json:"whatsapp,omitempty"`
	Bio         string `gorm:"size:500" json:"bio,omitempty"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
}
