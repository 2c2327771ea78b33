package entity

// OrderStatus เดินหน้าอย่างเดียว: Pending -> In Progress -> Ready -> Completed
type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusInProgress OrderStatus = "In Progress"
	StatusReady      OrderStatus = "Ready"
	StatusCompleted  OrderStatus = "Completed"
)

// Next คืนสถานะถัดไป; ok = false เมื่อถึง Completed แล้ว (terminal)
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case StatusPending:
		return StatusInProgress, true
	case StatusInProgress:
		return StatusReady, true
	case StatusReady:
		return StatusCompleted, true
	default:
		return "", false
	}
}

func (s OrderStatus) IsTerminal() bool {
	return s == StatusCompleted
}

func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusReady, StatusCompleted:
		return true
	}
	return false
}
