package entity

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Number       string      `gorm:"uniqueIndex;not null" json:"number"`
	CustomerName string      `json:"customerName"`
	TableNumber  *int        `json:"tableNumber,omitempty"`
	Status       OrderStatus `gorm:"not null;default:'Pending'" json:"status"`
	Total        float64     `json:"total"`

	// พนักงานที่รับออเดอร์ (optional)
	WorkerID string `gorm:"index" json:"workerId,omitempty"`

	// เวลาสั่งจริงจากต้นทาง หลัง normalize แล้ว; nil = parse ไม่ได้
	PlacedAt *time.Time `json:"placedAt,omitempty"`

	Items []OrderItem `json:"items"`
}
