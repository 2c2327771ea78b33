package repository

import (
	"github.com/smartZeee/worker-side/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) List() ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	err := r.DB.Order("category ASC, name ASC").Find(&out).Error
	return out, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) Create(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

// อัปเดตเฉพาะ field ที่ส่งมา (gorm จะ touch updated_at ให้)
func (r *MenuRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(updates).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}
