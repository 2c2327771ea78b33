package services

// Publisher กระจายการเปลี่ยนแปลงของ collection ให้ live subscribers
// (implement จริงคือ ws.LiveHub; service เรียกหลังเขียน DB สำเร็จเท่านั้น)
type Publisher interface {
	Publish(collection, action string, data any)
}

// NopPublisher ใช้ตอนเทสหรือยังไม่ต่อ hub
type NopPublisher struct{}

func (NopPublisher) Publish(string, string, any) {}
