package entity

import (
	"gorm.io/gorm"
)

// OrderItem มีสองแบบ:
//   - reference: MenuItemID ชี้เมนู ราคา resolve ตอนใช้งาน
//   - snapshot:  MenuItemID nil, Name/Price ติดมากับออเดอร์เลย
type OrderItem struct {
	gorm.Model
	OrderID uint `gorm:"index" json:"orderId"`

	MenuItemID *uint   `json:"menuItemId,omitempty"`
	Name       string  `json:"name,omitempty"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

// IsReference บอกว่า line นี้อ้างเมนูหรือ snapshot ราคามาเอง
func (i *OrderItem) IsReference() bool {
	return i.MenuItemID != nil
}
