package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Payment is the append-only record of a completed transaction
type Payment struct {
	gorm.Model
	TransactionID string         `json:"transactionId" gorm:"uniqueIndex;not null"`
	UserEmail     string         `json:"userEmail" gorm:"index;not null"`
	ClassID       uint           `json:"classId" gorm:"index;not null"`
	CartItemID    uint           `json:"cartItemId"`
	ClassTitle    string         `json:"classTitle"`
	Amount        float64        `json:"amount"`
	ProviderMeta  datatypes.JSON `json:"providerMeta"` // raw fields echoed back by the payment provider
}
