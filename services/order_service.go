package services

import (
	"errors"
	"strings"
	"time"

	"github.com/smartZeee/worker-side/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderService คุมวงจรชีวิตของออเดอร์ (สถานะเดินหน้าอย่างเดียว)
type OrderService struct {
	orders OrderStore
	menu   MenuStore
	pub    Publisher
}

func NewOrderService(orders OrderStore, menu MenuStore, pub Publisher) *OrderService {
	if pub == nil {
		pub = NopPublisher{}
	}
	return &OrderService{orders: orders, menu: menu, pub: pub}
}

// ----- DTOs from Controller -----
type OrderItemIn struct {
	MenuItemID *uint   `json:"menuItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity" binding:"required,min=1"`
}

type PlaceOrderReq struct {
	CustomerName string        `json:"customerName"`
	TableNumber  *int          `json:"tableNumber"`
	WorkerID     string        `json:"workerId"`
	PlacedAt     string        `json:"placedAt"` // RFC3339 จากต้นทาง ถ้ามี
	Items        []OrderItemIn `json:"items" binding:"required"`
}

// Place รับ event การสั่งอาหารจากต้นทาง (จุดเดียวที่ normalize timestamp)
func (s *OrderService) Place(req *PlaceOrderReq) (*entity.Order, error) {
	if len(req.Items) == 0 {
		return nil, errors.New("items is required")
	}

	var total float64
	items := make([]entity.OrderItem, 0, len(req.Items))
	for _, in := range req.Items {
		if in.Quantity <= 0 {
			return nil, errors.New("item quantity must be positive")
		}
		item := entity.OrderItem{
			MenuItemID: in.MenuItemID,
			Name:       strings.TrimSpace(in.Name),
			Price:      in.Price,
			Quantity:   in.Quantity,
		}
		if item.MenuItemID == nil && item.Name == "" {
			return nil, errors.New("item needs a menuItemId or a name")
		}
		total += s.linePrice(item) * float64(item.Quantity)
		items = append(items, item)
	}

	order := &entity.Order{
		Number:       "ORD-" + strings.ToUpper(uuid.NewString()[:8]),
		CustomerName: strings.TrimSpace(req.CustomerName),
		TableNumber:  req.TableNumber,
		WorkerID:     CanonicalID(req.WorkerID),
		Status:       entity.StatusPending,
		Total:        total,
		PlacedAt:     normalizeInstant(req.PlacedAt),
		Items:        items,
	}
	if err := s.orders.Create(order); err != nil {
		return nil, err
	}

	s.pub.Publish("orders", "created", order)
	return order, nil
}

// normalizeInstant แปลง timestamp จากต้นทางเป็นเวลาภายในทันทีที่รับเข้า
// ไม่มีค่า = เวลาที่รับ; parse ไม่ได้ = nil (ออเดอร์ยังใช้งานได้)
func normalizeInstant(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		now := time.Now()
		return &now
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}
	return nil
}

// Get คืนออเดอร์เดียวพร้อม items
func (s *OrderService) Get(orderID uint) (*entity.Order, error) {
	o, err := s.orders.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

func (s *OrderService) List() ([]entity.Order, error)       { return s.orders.List() }
func (s *OrderService) ListActive() ([]entity.Order, error) { return s.orders.ListActive() }

// ListForWorker คืนออเดอร์ที่ assign ให้พนักงานคนนั้น
func (s *OrderService) ListForWorker(employeeID string) ([]entity.Order, error) {
	return s.orders.ListForWorker(CanonicalID(employeeID))
}

// Advance เลื่อนสถานะไปขั้นถัดไปหนึ่งขั้น (action มาตรฐานของ worker portal)
// เขียนแค่ field เดียวคือ status; ไม่แตะ stock ของเมนู
func (s *OrderService) Advance(orderID uint) (*entity.Order, error) {
	o, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}

	next, ok := o.Status.Next()
	if !ok {
		return nil, ErrAlreadyTerminal
	}

	applied, err := s.orders.UpdateStatusFromTo(o.ID, o.Status, next)
	if err != nil {
		return nil, err
	}
	if !applied {
		// แพ้ race ให้อีก session: อ่านสถานะจริงกลับมาแทน (last write wins)
		return s.Get(orderID)
	}

	o.Status = next
	s.pub.Publish("orders", "updated", o)
	return o, nil
}

// SetStatus ยอมรับเฉพาะสถานะถัดไปตามลำดับเท่านั้น ข้ามหรือย้อนไม่ได้
func (s *OrderService) SetStatus(orderID uint, to entity.OrderStatus) (*entity.Order, error) {
	if !entity.ValidStatus(to) {
		return nil, ErrInvalidTransition
	}
	o, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}
	next, ok := o.Status.Next()
	if !ok {
		return nil, ErrAlreadyTerminal
	}
	if to != next {
		return nil, ErrInvalidTransition
	}

	applied, err := s.orders.UpdateStatusFromTo(o.ID, o.Status, to)
	if err != nil {
		return nil, err
	}
	if !applied {
		return s.Get(orderID)
	}

	o.Status = to
	s.pub.Publish("orders", "updated", o)
	return o, nil
}

// linePrice: reference item ดูราคาจากเมนูปัจจุบัน (เมนูถูกลบ = 0), snapshot ใช้ราคาที่ติดมา
func (s *OrderService) linePrice(item entity.OrderItem) float64 {
	if !item.IsReference() {
		return item.Price
	}
	m, err := s.menu.FindByID(*item.MenuItemID)
	if err != nil {
		return 0
	}
	return m.Price
}
