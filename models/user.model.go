package models

import (
	"gorm.io/gorm"
)

// User roles
const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleInstructor = "instructor"
)

type User struct {
	gorm.Model
	Name        string `json:"name" gorm:"default:''"`
	Email       string `json:"email" gorm:"unique;not null"`
	Gender      string `json:"gender" gorm:"default:''"`
	PhoneNumber string `json:"phoneNumber" gorm:"default:''"`
	Address     string `json:"address" gorm:"default:''"`
	PhotoURL    string `json:"photoURL" gorm:"default:''"`
	Role        string `json:"role" gorm:"default:'user'"` // user, admin, instructor
}
