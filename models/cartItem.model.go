package models

import "gorm.io/gorm"

// CartItem keys on (user_email, class_id) so the same user cannot add one
// class twice while different users can
type CartItem struct {
	gorm.Model
	UserEmail      string  `json:"userEmail" gorm:"uniqueIndex:idx_cart_user_class;not null"`
	ClassID        uint    `json:"classId" gorm:"uniqueIndex:idx_cart_user_class;not null"`
	Title          string  `json:"title"`
	Image          string  `json:"image"`
	Price          float64 `json:"price"`
	InstructorName string  `json:"instructorName"`
}
