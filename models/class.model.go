package models

import "gorm.io/gorm"

// Class review statuses
const (
	ClassPending  = "pending"
	ClassApproved = "approved"
	ClassDenied   = "denied"
)

// Class is the managed record an instructor submits for review
type Class struct {
	gorm.Model
	Title           string  `json:"title"`
	Seats           int     `json:"seats" gorm:"default:0"`
	Price           float64 `json:"price" gorm:"default:0"`
	Image           string  `json:"image"`
	InstructorName  string  `json:"instructorName"`
	InstructorEmail string  `json:"instructorEmail" gorm:"index"`
	Status          string  `json:"status" gorm:"default:'pending'"` // pending, approved, denied
	Feedback        string  `json:"feedback" gorm:"default:''"`
	Students        int     `json:"students" gorm:"default:0"`
}
