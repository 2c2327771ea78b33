package services

import (
	"errors"
	"strings"

	"github.com/smartZeee/worker-side/entity"

	"gorm.io/gorm"
)

// WorkerService จัดการโปรไฟล์พนักงาน (ฝั่ง admin เท่านั้น)
// ไม่เก็บรหัสผ่านที่นี่: credential ถูกสร้างตอน login ครั้งแรกของพนักงาน
type WorkerService struct {
	workers    WorkerStore
	creds      CredentialStore
	authDomain string
	pub        Publisher
}

func NewWorkerService(workers WorkerStore, creds CredentialStore, authDomain string, pub Publisher) *WorkerService {
	if pub == nil {
		pub = NopPublisher{}
	}
	return &WorkerService{workers: workers, creds: creds, authDomain: authDomain, pub: pub}
}

type CreateWorkerReq struct {
	WorkerID string `json:"workerId" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Phone    string `json:"phone"`
}

func (s *WorkerService) Create(req *CreateWorkerReq) (*entity.Worker, error) {
	id := CanonicalID(req.WorkerID)
	if id == "" {
		return nil, ErrBadField
	}
	if !entity.ValidRole(req.Role) {
		return nil, ErrBadField
	}

	count, err := s.workers.CountByWorkerID(id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrWorkerExists
	}

	w := &entity.Worker{
		WorkerID: id,
		Name:     strings.TrimSpace(req.Name),
		Role:     req.Role,
		IsActive: true,
		Phone:    strings.TrimSpace(req.Phone),
	}
	if err := s.workers.Create(w); err != nil {
		return nil, err
	}

	s.pub.Publish("workers", "created", w)
	return w, nil
}

func (s *WorkerService) List() ([]entity.Worker, error) {
	return s.workers.List()
}

func (s *WorkerService) Get(workerID string) (*entity.Worker, error) {
	w, err := s.workers.FindByWorkerID(CanonicalID(workerID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, err
	}
	return w, nil
}

type UpdateWorkerReq struct {
	Name  *string `json:"name"`
	Role  *string `json:"role"`
	Phone *string `json:"phone"`
}

func (s *WorkerService) Update(workerID string, req *UpdateWorkerReq) (*entity.Worker, error) {
	id := CanonicalID(workerID)
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Role != nil {
		if !entity.ValidRole(*req.Role) {
			return nil, ErrBadField
		}
		updates["role"] = *req.Role
	}
	if req.Phone != nil {
		updates["phone"] = strings.TrimSpace(*req.Phone)
	}
	if len(updates) > 0 {
		if err := s.workers.Update(id, updates); err != nil {
			return nil, err
		}
	}

	w, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	s.pub.Publish("workers", "updated", w)
	return w, nil
}

// SetActive เปิด/ปิดบัญชี; บัญชีปิดจะ login ไม่ได้เลย
func (s *WorkerService) SetActive(workerID string, active bool) (*entity.Worker, error) {
	id := CanonicalID(workerID)
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	if err := s.workers.Update(id, map[string]any{"is_active": active}); err != nil {
		return nil, err
	}
	w, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	s.pub.Publish("workers", "updated", w)
	return w, nil
}

// Delete ลบโปรไฟล์และ credential ที่ผูกกัน
func (s *WorkerService) Delete(workerID string) error {
	id := CanonicalID(workerID)
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.workers.Delete(id); err != nil {
		return err
	}
	// credential อาจยังไม่เคยถูกสร้าง (ยังไม่เคย login) ก็ไม่เป็นไร
	_ = s.creds.DeleteByHandle(id + "@" + s.authDomain)

	s.pub.Publish("workers", "deleted", map[string]any{"workerId": id})
	return nil
}
