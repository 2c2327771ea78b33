package services

import (
	"testing"

	"github.com/smartZeee/worker-side/entity"

	"github.com/stretchr/testify/require"
)

func newWorkerService() (*WorkerService, *fakeWorkerStore, *fakeCredentialStore) {
	workers := newFakeWorkerStore()
	creds := newFakeCredentialStore()
	return NewWorkerService(workers, creds, testDomain, nil), workers, creds
}

func TestCreateWorkerCanonicalizesID(t *testing.T) {
	svc, _, _ := newWorkerService()

	w, err := svc.Create(&CreateWorkerReq{WorkerID: " wk001 ", Name: "Somchai", Role: entity.RoleKitchen})
	require.NoError(t, err)
	require.Equal(t, "WK001", w.WorkerID)
	require.True(t, w.IsActive)
}

func TestCreateWorkerRejectsDuplicateID(t *testing.T) {
	svc, _, _ := newWorkerService()

	_, err := svc.Create(&CreateWorkerReq{WorkerID: "WK001", Name: "Somchai", Role: entity.RoleKitchen})
	require.NoError(t, err)

	// ซ้ำแม้จะพิมพ์เล็ก
	_, err = svc.Create(&CreateWorkerReq{WorkerID: "wk001", Name: "Somsak", Role: entity.RoleKitchen})
	require.ErrorIs(t, err, ErrWorkerExists)
}

func TestCreateWorkerRejectsBadRole(t *testing.T) {
	svc, _, _ := newWorkerService()

	_, err := svc.Create(&CreateWorkerReq{WorkerID: "WK002", Name: "Somchai", Role: "owner"})
	require.ErrorIs(t, err, ErrBadField)
}

func TestSetActiveToggle(t *testing.T) {
	svc, _, _ := newWorkerService()
	_, err := svc.Create(&CreateWorkerReq{WorkerID: "WK001", Name: "Somchai", Role: entity.RoleKitchen})
	require.NoError(t, err)

	w, err := svc.SetActive("wk001", false)
	require.NoError(t, err)
	require.False(t, w.IsActive)

	w, err = svc.SetActive("WK001", true)
	require.NoError(t, err)
	require.True(t, w.IsActive)
}

func TestUpdateWorkerPartial(t *testing.T) {
	svc, _, _ := newWorkerService()
	_, err := svc.Create(&CreateWorkerReq{WorkerID: "WK001", Name: "Somchai", Role: entity.RoleKitchen, Phone: "081"})
	require.NoError(t, err)

	name := "Somsak"
	w, err := svc.Update("WK001", &UpdateWorkerReq{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Somsak", w.Name)
	require.Equal(t, "081", w.Phone) // field อื่นไม่โดนแตะ

	bad := "owner"
	_, err = svc.Update("WK001", &UpdateWorkerReq{Role: &bad})
	require.ErrorIs(t, err, ErrBadField)
}

func TestDeleteWorkerRemovesCredential(t *testing.T) {
	svc, workers, creds := newWorkerService()
	_, err := svc.Create(&CreateWorkerReq{WorkerID: "WK001", Name: "Somchai", Role: entity.RoleKitchen})
	require.NoError(t, err)
	seedCredential(t, creds, "WK001@"+testDomain, "pass123")

	require.NoError(t, svc.Delete("wk001"))

	_, err = workers.FindByWorkerID("WK001")
	require.Error(t, err)
	_, err = creds.FindByHandle("WK001@" + testDomain)
	require.Error(t, err)
}

func TestWorkerNotFound(t *testing.T) {
	svc, _, _ := newWorkerService()

	_, err := svc.Get("ZZ999")
	require.ErrorIs(t, err, ErrWorkerNotFound)
	_, err = svc.SetActive("ZZ999", true)
	require.ErrorIs(t, err, ErrWorkerNotFound)
	require.ErrorIs(t, svc.Delete("ZZ999"), ErrWorkerNotFound)
}
