package services

import (
	"time"

	"github.com/smartZeee/worker-side/entity"
)

// RevenuePeriod คือช่วงเวลาที่ admin เลือกดูรายได้
type RevenuePeriod string

const (
	PeriodDaily   RevenuePeriod = "daily"
	PeriodWeekly  RevenuePeriod = "weekly"
	PeriodMonthly RevenuePeriod = "monthly"
	PeriodYearly  RevenuePeriod = "yearly"
	PeriodAll     RevenuePeriod = "all"
)

// ParsePeriod: ค่าที่ไม่รู้จัก = all (เหมือนค่า default ของ dropdown)
func ParsePeriod(raw string) RevenuePeriod {
	switch RevenuePeriod(raw) {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly:
		return RevenuePeriod(raw)
	default:
		return PeriodAll
	}
}

type Summary struct {
	Period          RevenuePeriod              `json:"period"`
	TotalRevenue    float64                    `json:"totalRevenue"`
	CompletedOrders int                        `json:"completedOrders"`
	ActiveOrders    int                        `json:"activeOrders"`
	MenuTotal       int                        `json:"menuTotal"`
	MenuInStock     int                        `json:"menuInStock"`
	MenuSoldOut     int                        `json:"menuSoldOut"`
	StatusCounts    map[entity.OrderStatus]int `json:"statusCounts"`
}

// DashboardService โหลดข้อมูลแล้วส่งต่อให้ Aggregate ซึ่งเป็น pure function
type DashboardService struct {
	orders OrderStore
	menu   MenuStore
}

func NewDashboardService(orders OrderStore, menu MenuStore) *DashboardService {
	return &DashboardService{orders: orders, menu: menu}
}

func (s *DashboardService) Summary(period RevenuePeriod) (*Summary, error) {
	orders, err := s.orders.List()
	if err != nil {
		return nil, err
	}
	menu, err := s.menu.List()
	if err != nil {
		return nil, err
	}
	sum := Aggregate(orders, menu, period, time.Now())
	return &sum, nil
}

// Aggregate คำนวณสรุปทั้งหมดจาก snapshot ของ orders + menu
//
// รายได้นับเฉพาะออเดอร์ Completed ที่อยู่ในช่วงเวลา; ออเดอร์ที่ไม่มี
// timestamp ไม่เข้าช่วงเวลาไหนเลย (ยกเว้น all) แต่ยังนับใน active count
// ราคา: ใช้ Total ของออเดอร์ถ้ามี ไม่งั้นรวมทีละ line โดย resolve
// reference ผ่านเมนู (เมนูถูกลบ = 0)
func Aggregate(orders []entity.Order, menu []entity.MenuItem, period RevenuePeriod, now time.Time) Summary {
	priceByID := make(map[uint]float64, len(menu))
	inStock, soldOut := 0, 0
	for _, m := range menu {
		priceByID[m.ID] = m.Price
		if m.Quantity > 0 {
			inStock++
		} else {
			soldOut++
		}
	}

	sum := Summary{
		Period:       period,
		MenuTotal:    len(menu),
		MenuInStock:  inStock,
		MenuSoldOut:  soldOut,
		StatusCounts: make(map[entity.OrderStatus]int),
	}

	for _, o := range orders {
		sum.StatusCounts[o.Status]++
		if o.Status != entity.StatusCompleted {
			sum.ActiveOrders++
			continue
		}
		if !inPeriod(o.PlacedAt, period, now) {
			continue
		}
		sum.CompletedOrders++
		sum.TotalRevenue += orderRevenue(o, priceByID)
	}
	return sum
}

func orderRevenue(o entity.Order, priceByID map[uint]float64) float64 {
	if o.Total > 0 {
		return o.Total
	}
	var rev float64
	for _, item := range o.Items {
		price := item.Price
		if item.IsReference() {
			price = priceByID[*item.MenuItemID] // เมนูหายไปแล้ว = 0
		}
		rev += price * float64(item.Quantity)
	}
	return rev
}

func inPeriod(t *time.Time, period RevenuePeriod, now time.Time) bool {
	if period == PeriodAll {
		return true
	}
	if t == nil {
		return false
	}
	switch period {
	case PeriodDaily:
		y1, m1, d1 := t.Date()
		y2, m2, d2 := now.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	case PeriodWeekly:
		start := startOfWeek(now)
		return !t.Before(start) && t.Before(start.AddDate(0, 0, 7))
	case PeriodMonthly:
		y1, m1, _ := t.Date()
		y2, m2, _ := now.Date()
		return y1 == y2 && m1 == m2
	case PeriodYearly:
		return t.Year() == now.Year()
	}
	return false
}

// สัปดาห์เริ่มวันจันทร์
func startOfWeek(now time.Time) time.Time {
	offset := (int(now.Weekday()) + 6) % 7
	y, m, d := now.AddDate(0, 0, -offset).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}
