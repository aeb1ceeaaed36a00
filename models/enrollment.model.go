package models

import "gorm.io/gorm"

// Enrollment marks a paid-for class and keeps a snapshot of what was bought
type Enrollment struct {
	gorm.Model
	UserEmail      string  `json:"userEmail" gorm:"index;not null"`
	ClassID        uint    `json:"classId" gorm:"index;not null"`
	ClassTitle     string  `json:"classTitle"`
	Image          string  `json:"image"`
	InstructorName string  `json:"instructorName"`
	AmountPaid     float64 `json:"amountPaid"`
	PaymentID      uint    `json:"paymentId"`
}
