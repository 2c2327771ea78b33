package services

import (
	"github.com/smartZeee/worker-side/entity"
)

// Interfaces ของชั้น persistence ให้ service ไม่ผูกกับ gorm ตรง ๆ
// (implement จริงอยู่ใน package repository)

type WorkerStore interface {
	FindByWorkerID(workerID string) (*entity.Worker, error)
	CountByWorkerID(workerID string) (int64, error)
	List() ([]entity.Worker, error)
	Create(w *entity.Worker) error
	Update(workerID string, updates map[string]any) error
	Delete(workerID string) error
}

type CredentialStore interface {
	FindByHandle(handle string) (*entity.Credential, error)
	Create(cred *entity.Credential) error
	DeleteByHandle(handle string) error
}

type MenuStore interface {
	List() ([]entity.MenuItem, error)
	FindByID(id uint) (*entity.MenuItem, error)
	Create(m *entity.MenuItem) error
	Update(id uint, updates map[string]any) error
	Delete(id uint) error
}

type OrderStore interface {
	Create(o *entity.Order) error
	FindByID(id uint) (*entity.Order, error)
	List() ([]entity.Order, error)
	ListActive() ([]entity.Order, error)
	ListForWorker(workerID string) ([]entity.Order, error)
	UpdateStatusFromTo(orderID uint, from, to entity.OrderStatus) (bool, error)
}
