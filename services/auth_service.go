package services

import (
	"errors"
	"strings"

	"github.com/smartZeee/worker-side/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Session คือผลลัพธ์ของ login ที่สำเร็จ
type Session struct {
	EmployeeID string `json:"employeeId"`
	Role       string `json:"role"`
}

func (s *Session) IsAdmin() bool {
	return s.Role == entity.RoleAdmin
}

// AuthService จัดการ business logic ของการ login
// นโยบายรหัสผ่านคือ bootstrap-on-first-use: admin สร้างโปรไฟล์โดยไม่มีรหัสผ่าน
// พนักงานตั้งรหัสเองตอน login ครั้งแรก หลังจากนั้นตรวจกับ hash ที่เก็บไว้
type AuthService struct {
	workers    WorkerStore
	creds      CredentialStore
	authDomain string
}

func NewAuthService(workers WorkerStore, creds CredentialStore, authDomain string) *AuthService {
	return &AuthService{workers: workers, creds: creds, authDomain: authDomain}
}

// CanonicalID แปลง employee id เป็น key มาตรฐาน (trim + uppercase)
func CanonicalID(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Handle แปลง canonical id เป็น account handle ของ credential store
func (s *AuthService) Handle(canonicalID string) string {
	return canonicalID + "@" + s.authDomain
}

// Resolve ตรวจ (employee id, password) แล้วคืน session หรือเหตุผลที่ปฏิเสธ
func (s *AuthService) Resolve(rawID, password string) (*Session, error) {
	id := CanonicalID(rawID)
	if id == "" || password == "" {
		return nil, ErrInvalidInput
	}

	worker, err := s.workers.FindByWorkerID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownEmployee
		}
		return nil, err
	}
	if !worker.IsActive {
		return nil, ErrAccountInactive
	}

	handle := s.Handle(id)
	cred, err := s.creds.FindByHandle(handle)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// login ครั้งแรก: รหัสที่ส่งมากลายเป็นรหัสผ่านของบัญชีนี้
		hash, herr := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if herr != nil {
			return nil, ErrSetupFailed
		}
		if cerr := s.creds.Create(&entity.Credential{Handle: handle, PasswordHash: string(hash)}); cerr != nil {
			return nil, ErrSetupFailed
		}
	case err != nil:
		return nil, err
	default:
		if berr := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); berr != nil {
			return nil, ErrBadPassword
		}
	}

	return &Session{EmployeeID: worker.WorkerID, Role: worker.Role}, nil
}

// Revalidate ใช้ตอน client เปิดหน้าใหม่ด้วย session เดิม
// เช็คว่าพนักงานยังอยู่และยัง active ไม่ใช่ข้าม authentication
func (s *AuthService) Revalidate(employeeID string) (*Session, error) {
	id := CanonicalID(employeeID)
	if id == "" {
		return nil, ErrInvalidInput
	}
	worker, err := s.workers.FindByWorkerID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownEmployee
		}
		return nil, err
	}
	if !worker.IsActive {
		return nil, ErrAccountInactive
	}
	return &Session{EmployeeID: worker.WorkerID, Role: worker.Role}, nil
}
