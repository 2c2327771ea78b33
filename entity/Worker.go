package entity

import (
	"gorm.io/gorm"
)

// Worker คือพนักงานในระบบ (key จริงคือ WorkerID ตัวพิมพ์ใหญ่เสมอ)
type Worker struct {
	gorm.Model
	WorkerID string `gorm:"uniqueIndex;not null" json:"workerId"`
	Name     string `gorm:"not null" json:"name"`
	Role     string `gorm:"not null;default:kitchen" json:"role"`
	IsActive bool   `gorm:"not null;default:true" json:"isActive"`
	Phone    string `json:"phone,omitempty"`
}

// Worker roles
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleKitchen  = "kitchen"
	RoleDelivery = "delivery"
)

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleKitchen, RoleDelivery:
		return true
	}
	return false
}
