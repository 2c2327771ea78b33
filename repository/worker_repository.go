package repository

import (
	"github.com/smartZeee/worker-side/entity"

	"gorm.io/gorm"
)

// WorkerRepository รับผิดชอบการคุยกับตาราง workers ใน DB เท่านั้น
type WorkerRepository struct {
	DB *gorm.DB
}

func NewWorkerRepository(db *gorm.DB) *WorkerRepository {
	return &WorkerRepository{DB: db}
}

// หาพนักงานจาก workerId (ต้องเป็นตัวพิมพ์ใหญ่แล้ว)
func (r *WorkerRepository) FindByWorkerID(workerID string) (*entity.Worker, error) {
	var w entity.Worker
	if err := r.DB.Where("worker_id = ?", workerID).First(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

// นับจำนวน workerId ซ้ำ
func (r *WorkerRepository) CountByWorkerID(workerID string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.Worker{}).Where("worker_id = ?", workerID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *WorkerRepository) List() ([]entity.Worker, error) {
	var out []entity.Worker
	err := r.DB.Order("worker_id ASC").Find(&out).Error
	return out, err
}

func (r *WorkerRepository) Create(w *entity.Worker) error {
	return r.DB.Create(w).Error
}

// อัปเดตเฉพาะ field ที่ส่งมา
func (r *WorkerRepository) Update(workerID string, updates map[string]any) error {
	return r.DB.Model(&entity.Worker{}).Where("worker_id = ?", workerID).Updates(updates).Error
}

// ลบจริง ไม่ใช่ soft delete: workerId มี unique index อยู่
// ถ้าเหลือ tombstone ไว้ id เดิมจะสมัครซ้ำไม่ได้
func (r *WorkerRepository) Delete(workerID string) error {
	return r.DB.Unscoped().Where("worker_id = ?", workerID).Delete(&entity.Worker{}).Error
}
