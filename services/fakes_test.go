package services

import (
	"errors"

	"github.com/smartZeee/worker-side/entity"

	"gorm.io/gorm"
)

// in-memory stores สำหรับเทส ใช้แทนชั้น repository

type fakeWorkerStore struct {
	workers map[string]*entity.Worker
}

func newFakeWorkerStore() *fakeWorkerStore {
	return &fakeWorkerStore{workers: map[string]*entity.Worker{}}
}

func (f *fakeWorkerStore) FindByWorkerID(workerID string) (*entity.Worker, error) {
	if w, ok := f.workers[workerID]; ok {
		copy := *w
		return &copy, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeWorkerStore) CountByWorkerID(workerID string) (int64, error) {
	if _, ok := f.workers[workerID]; ok {
		return 1, nil
	}
	return 0, nil
}

func (f *fakeWorkerStore) List() ([]entity.Worker, error) {
	var out []entity.Worker
	for _, w := range f.workers {
		out = append(out, *w)
	}
	return out, nil
}

func (f *fakeWorkerStore) Create(w *entity.Worker) error {
	copy := *w
	f.workers[w.WorkerID] = &copy
	return nil
}

func (f *fakeWorkerStore) Update(workerID string, updates map[string]any) error {
	w, ok := f.workers[workerID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for k, v := range updates {
		switch k {
		case "name":
			w.Name = v.(string)
		case "role":
			w.Role = v.(string)
		case "phone":
			w.Phone = v.(string)
		case "is_active":
			w.IsActive = v.(bool)
		}
	}
	return nil
}

func (f *fakeWorkerStore) Delete(workerID string) error {
	delete(f.workers, workerID)
	return nil
}

type fakeCredentialStore struct {
	creds      map[string]*entity.Credential
	failCreate bool
}

func newFakeCredentialStore() *fakeCredentialStore {
	return &fakeCredentialStore{creds: map[string]*entity.Credential{}}
}

func (f *fakeCredentialStore) FindByHandle(handle string) (*entity.Credential, error) {
	if c, ok := f.creds[handle]; ok {
		copy := *c
		return &copy, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCredentialStore) Create(cred *entity.Credential) error {
	if f.failCreate {
		return errors.New("credential store unavailable")
	}
	copy := *cred
	f.creds[cred.Handle] = &copy
	return nil
}

func (f *fakeCredentialStore) DeleteByHandle(handle string) error {
	delete(f.creds, handle)
	return nil
}

type fakeMenuStore struct {
	items  map[uint]*entity.MenuItem
	nextID uint
}

func newFakeMenuStore() *fakeMenuStore {
	return &fakeMenuStore{items: map[uint]*entity.MenuItem{}, nextID: 1}
}

func (f *fakeMenuStore) List() ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	for _, m := range f.items {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeMenuStore) FindByID(id uint) (*entity.MenuItem, error) {
	if m, ok := f.items[id]; ok {
		copy := *m
		return &copy, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMenuStore) Create(m *entity.MenuItem) error {
	m.ID = f.nextID
	f.nextID++
	copy := *m
	f.items[m.ID] = &copy
	return nil
}

func (f *fakeMenuStore) Update(id uint, updates map[string]any) error {
	m, ok := f.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for k, v := range updates {
		switch k {
		case "name":
			m.Name = v.(string)
		case "description":
			m.Description = v.(string)
		case "price":
			m.Price = v.(float64)
		case "category":
			m.Category = v.(string)
		case "image_url":
			m.ImageURL = v.(string)
		case "quantity":
			m.Quantity = v.(int)
		}
	}
	return nil
}

func (f *fakeMenuStore) Delete(id uint) error {
	delete(f.items, id)
	return nil
}

type fakeOrderStore struct {
	orders map[uint]*entity.Order
	nextID uint

	// จำลองการแพ้ race: guard ไม่ติดหนึ่งครั้ง
	guardFailOnce bool
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: map[uint]*entity.Order{}, nextID: 1}
}

func (f *fakeOrderStore) Create(o *entity.Order) error {
	o.ID = f.nextID
	f.nextID++
	copy := *o
	f.orders[o.ID] = &copy
	return nil
}

func (f *fakeOrderStore) FindByID(id uint) (*entity.Order, error) {
	if o, ok := f.orders[id]; ok {
		copy := *o
		return &copy, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOrderStore) List() ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeOrderStore) ListActive() ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range f.orders {
		if o.Status != entity.StatusCompleted {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderStore) ListForWorker(workerID string) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range f.orders {
		if o.WorkerID == workerID {
			out = append(out, *o)
		}
	}
	return out, nil
}

// guard แบบเดียวกับ UPDATE ... WHERE id AND status ของจริง
func (f *fakeOrderStore) UpdateStatusFromTo(orderID uint, from, to entity.OrderStatus) (bool, error) {
	if f.guardFailOnce {
		f.guardFailOnce = false
		return false, nil
	}
	o, ok := f.orders[orderID]
	if !ok {
		return false, nil
	}
	if o.Status != from {
		return false, nil
	}
	o.Status = to
	return true, nil
}

// จับ event ที่ service publish ออกมา
type capturePublisher struct {
	events []struct {
		Collection string
		Action     string
	}
}

func (p *capturePublisher) Publish(collection, action string, _ any) {
	p.events = append(p.events, struct {
		Collection string
		Action     string
	}{collection, action})
}
