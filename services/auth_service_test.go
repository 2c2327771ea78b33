package services

import (
	"testing"

	"github.com/smartZeee/worker-side/entity"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testDomain = "culinaryflow.local"

func seedWorker(t *testing.T, store *fakeWorkerStore, id, role string, active bool) {
	t.Helper()
	require.NoError(t, store.Create(&entity.Worker{
		WorkerID: id,
		Name:     "Test " + id,
		Role:     role,
		IsActive: active,
	}))
}

func seedCredential(t *testing.T, store *fakeCredentialStore, handle, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, store.Create(&entity.Credential{Handle: handle, PasswordHash: string(hash)}))
}

func TestResolveAdmin(t *testing.T) {
	workers := newFakeWorkerStore()
	creds := newFakeCredentialStore()
	seedWorker(t, workers, "AD101", entity.RoleAdmin, true)
	seedCredential(t, creds, "AD101@"+testDomain, "pass123")

	svc := NewAuthService(workers, creds, testDomain)

	session, err := svc.Resolve("AD101", "pass123")
	require.NoError(t, err)
	require.Equal(t, "AD101", session.EmployeeID)
	require.Equal(t, entity.RoleAdmin, session.Role)
	require.True(t, session.IsAdmin())
}

func TestResolveCaseInsensitiveID(t *testing.T) {
	workers := newFakeWorkerStore()
	creds := newFakeCredentialStore()
	seedWorker(t, workers, "WK001", entity.RoleKitchen, true)
	seedCredential(t, creds, "WK001@"+testDomain, "pass123")

	svc := NewAuthService(workers, creds, testDomain)

	lower, err := svc.Resolve("wk001", "pass123")
	require.NoError(t, err)
	upper, err := svc.Resolve("WK001", "pass123")
	require.NoError(t, err)
	require.Equal(t, upper.EmployeeID, lower.EmployeeID)
	require.False(t, lower.IsAdmin())
}

func TestResolveUnknownEmployee(t *testing.T) {
	svc := NewAuthService(newFakeWorkerStore(), newFakeCredentialStore(), testDomain)

	_, err := svc.Resolve("ZZ999", "whatever")
	require.ErrorIs(t, err, ErrUnknownEmployee)
}

func TestResolveInactiveNeverGetsSession(t *testing.T) {
	workers := newFakeWorkerStore()
	creds := newFakeCredentialStore()
	seedWorker(t, workers, "WK001", entity.RoleKitchen, false)
	seedCredential(t, creds, "WK001@"+testDomain, "pass123")

	svc := NewAuthService(workers, creds, testDomain)

	// รหัสถูกก็ยังเข้าไม่ได้
	_, err := svc.Resolve("WK001", "pass123")
	require.ErrorIs(t, err, ErrAccountInactive)
}

func TestResolveEmptyInput(t *testing.T) {
	svc := NewAuthService(newFakeWorkerStore(), newFakeCredentialStore(), testDomain)

	_, err := svc.Resolve("", "pass123")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Resolve("WK001", "")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestResolveBootstrapOnFirstUse(t *testing.T) {
	workers := newFakeWorkerStore()
	creds := newFakeCredentialStore()
	seedWorker(t, workers, "WK002", entity.RoleKitchen, true)

	svc := NewAuthService(workers, creds, testDomain)

	// login แรกตั้งรหัสผ่าน
	session, err := svc.Resolve("WK002", "first-password")
	require.NoError(t, err)
	require.Equal(t, "WK002", session.EmployeeID)

	// login ซ้ำด้วยรหัสเดิมผ่าน รหัสอื่นไม่ผ่าน
	_, err = svc.Resolve("WK002", "first-password")
	require.NoError(t, err)

	_, err = svc.Resolve("WK002", "other-password")
	require.ErrorIs(t, err, ErrBadPassword)
}

func TestResolveSetupFailed(t *testing.T) {
	workers := newFakeWorkerStore()
	creds := newFakeCredentialStore()
	creds.failCreate = true
	seedWorker(t, workers, "WK003", entity.RoleKitchen, true)

	svc := NewAuthService(workers, creds, testDomain)

	_, err := svc.Resolve("WK003", "pass123")
	require.ErrorIs(t, err, ErrSetupFailed)
}

func TestRevalidate(t *testing.T) {
	workers := newFakeWorkerStore()
	creds := newFakeCredentialStore()
	seedWorker(t, workers, "WK001", entity.RoleKitchen, true)

	svc := NewAuthService(workers, creds, testDomain)

	session, err := svc.Revalidate("wk001")
	require.NoError(t, err)
	require.Equal(t, "WK001", session.EmployeeID)

	// ปิดบัญชีแล้ว revalidate ต้องตก
	require.NoError(t, workers.Update("WK001", map[string]any{"is_active": false}))
	_, err = svc.Revalidate("WK001")
	require.ErrorIs(t, err, ErrAccountInactive)

	// พนักงานถูกลบ
	require.NoError(t, workers.Delete("WK001"))
	_, err = svc.Revalidate("WK001")
	require.ErrorIs(t, err, ErrUnknownEmployee)
}
