package repository

import (
	"github.com/smartZeee/worker-side/entity"

	"gorm.io/gorm"
)

// CredentialRepository คุยกับตาราง credentials (แยกจากโปรไฟล์พนักงาน)
type CredentialRepository struct {
	DB *gorm.DB
}

func NewCredentialRepository(db *gorm.DB) *CredentialRepository {
	return &CredentialRepository{DB: db}
}

func (r *CredentialRepository) FindByHandle(handle string) (*entity.Credential, error) {
	var cred entity.Credential
	if err := r.DB.Where("handle = ?", handle).First(&cred).Error; err != nil {
		return nil, err
	}
	return &cred, nil
}

func (r *CredentialRepository) Create(cred *entity.Credential) error {
	return r.DB.Create(cred).Error
}

// ลบจริงเช่นเดียวกับ worker: handle มี unique index
func (r *CredentialRepository) DeleteByHandle(handle string) error {
	return r.DB.Unscoped().Where("handle = ?", handle).Delete(&entity.Credential{}).Error
}
