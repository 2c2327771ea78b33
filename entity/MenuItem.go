package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// TagList เก็บเป็น CSV ใน DB แต่ serialize ออกเป็น array
type TagList []string

func (t TagList) Value() (driver.Value, error) {
	return strings.Join(t, ","), nil
}

func (t *TagList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t = nil
	case string:
		if v == "" {
			*t = nil
		} else {
			*t = strings.Split(v, ",")
		}
	case []byte:
		return t.Scan(string(v))
	default:
		return errors.New("unsupported tag list source")
	}
	return nil
}

const (
	TagVeg    = "Veg"
	TagNonVeg = "Non-Veg"
)

type MenuItem struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `gorm:"not null" json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
	Tags        TagList `gorm:"type:text" json:"tags"`

	// quantity == 0 คือ sold out (ไม่มี boolean แยก)
	Quantity int `gorm:"not null;default:0" json:"quantity"`
}

// IsAvailable derive จาก quantity เท่านั้น
func (m *MenuItem) IsAvailable() bool {
	return m.Quantity > 0
}

// ส่ง isAvailable ออกไปด้วย (derived ไม่เก็บลง DB)
func (m MenuItem) MarshalJSON() ([]byte, error) {
	type alias MenuItem
	return json.Marshal(struct {
		alias
		IsAvailable bool `json:"isAvailable"`
	}{alias(m), m.Quantity > 0})
}
