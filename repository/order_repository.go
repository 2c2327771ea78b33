package repository

import (
	"github.com/smartZeee/worker-side/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// สร้างออเดอร์พร้อม items ใน transaction เดียว
func (r *OrderRepository) Create(o *entity.Order) error {
	return r.DB.Create(o).Error
}

// GET /orders/:id -> ออเดอร์พร้อม items
func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) List() ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("Items").Order("id DESC").Find(&out).Error
	return out, err
}

// ออเดอร์ที่ยังไม่จบ (Pending / In Progress / Ready)
func (r *OrderRepository) ListActive() ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("Items").
		Where("status <> ?", entity.StatusCompleted).
		Order("id ASC").Find(&out).Error
	return out, err
}

// ออเดอร์ของพนักงานคนเดียว (worker portal)
func (r *OrderRepository) ListForWorker(workerID string) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("Items").
		Where("worker_id = ?", workerID).
		Order("id ASC").Find(&out).Error
	return out, err
}

// PATCH /orders/:id/advance -> อัปเดตสถานะแบบมี guard
// อัปเดตสำเร็จก็ต่อเมื่อสถานะใน DB ยังเป็น from อยู่ (กัน advance ซ้อนกัน)
func (r *OrderRepository) UpdateStatusFromTo(orderID uint, from, to entity.OrderStatus) (bool, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
