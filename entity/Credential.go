package entity

import (
	"gorm.io/gorm"
)

// Credential เก็บรหัสผ่านแยกจากโปรไฟล์พนักงาน
// Handle = "<WORKER_ID>@<AUTH_DOMAIN>" เช่น "WK001@culinaryflow.local"
type Credential struct {
	gorm.Model
	Handle       string `gorm:"uniqueIndex;not null" json:"handle"`
	PasswordHash string `gorm:"not null" json:"-"`
}
