package models

import "gorm.io/gorm"

// PublicClass is the approved copy of a Class, materialized into the public
// catalog exactly once per class. Seat and student counters move on this copy
// when a payment completes.
type PublicClass struct {
	gorm.Model
	ClassID         uint    `json:"classId" gorm:"uniqueIndex;not null"`
	Title           string  `json:"title"`
	Seats           int     `json:"seats" gorm:"default:0"`
	Price           float64 `json:"price" gorm:"default:0"`
	Image           string  `json:"image"`
	InstructorName  string  `json:"instructorName"`
	InstructorEmail string  `json:"instructorEmail" gorm:"index"`
	Feedback        string  `json:"feedback" gorm:"default:''"`
	Students        int     `json:"students" gorm:"default:0"`
}
