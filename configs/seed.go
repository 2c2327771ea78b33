package configs

import (
	"log"
	"strings"

	"github.com/smartZeee/worker-side/entity"

	"golang.org/x/crypto/bcrypt"
)

// สร้าง admin ครั้งแรก (พนักงานคนอื่น admin เพิ่มเองจากใน portal)
func SeedAdmin(cfg *Config) error {
	db := DB()
	adminID := strings.ToUpper(strings.TrimSpace(cfg.AdminID))
	if adminID == "" {
		log.Println("skip seeding admin: missing ADMIN_ID")
		return nil
	}

	var count int64
	db.Model(&entity.Worker{}).Where("worker_id = ?", adminID).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", adminID)
		return nil
	}

	admin := entity.Worker{
		WorkerID: adminID,
		Name:     cfg.AdminName,
		Role:     entity.RoleAdmin,
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	// ถ้าให้ ADMIN_PASSWORD มาก็ตั้ง credential เลย
	// ไม่ให้มาก็ปล่อยให้ bootstrap ตอน login ครั้งแรกเหมือนพนักงานทั่วไป
	if cfg.AdminPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		cred := entity.Credential{
			Handle:       adminID + "@" + cfg.AuthDomain,
			PasswordHash: string(hash),
		}
		if err := db.Create(&cred).Error; err != nil {
			return err
		}
	}

	log.Println("admin seeded:", adminID)
	return nil
}
