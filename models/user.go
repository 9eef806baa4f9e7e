package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Phone    string `gorm:"not null" json:"phone"`
	Role     string `gorm:"default:user" json:"role"` // user, member, admin
	IsActive bool   `gorm:"default:true" json:"is_active"`
}
