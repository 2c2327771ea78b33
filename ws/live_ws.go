package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/smartZeee/worker-side/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Event คือการเปลี่ยนแปลงหนึ่งครั้งของ collection ที่ client subscribe อยู่
type Event struct {
	Collection string `json:"collection"` // menu | orders | workers
	Action     string `json:"action"`     // created | updated | deleted
	Data       any    `json:"data"`
}

// LiveHub กระจายการเปลี่ยนแปลงของข้อมูลให้ทุก session ที่ต่ออยู่
// ทำหน้าที่แทน live subscription: เขียนจาก session ไหนก็เห็นกันหมด
type LiveHub struct {
	clients    map[*websocket.Conn]string // conn -> employeeId
	broadcast  chan Event
	register   chan Subscription
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

// Subscription = client หนึ่ง connection
type Subscription struct {
	Conn       *websocket.Conn
	EmployeeID string
}

func NewLiveHub() *LiveHub {
	return &LiveHub{
		clients:    make(map[*websocket.Conn]string),
		broadcast:  make(chan Event, 64),
		register:   make(chan Subscription),
		unregister: make(chan *websocket.Conn),
	}
}

// คอยฟัง register/unregister/broadcast ตลอดเวลา
func (h *LiveHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			h.clients[sub.Conn] = sub.EmployeeID
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish ให้ service เรียกหลังเขียน DB สำเร็จ ไม่ block ผู้เรียก
// (implement services.Publisher)
func (h *LiveHub) Publish(collection, action string, data any) {
	select {
	case h.broadcast <- Event{Collection: collection, Action: action, Data: data}:
	default:
		// buffer เต็ม: ทิ้ง event ดีกว่า block การเขียน
		log.Printf("ws: dropping %s/%s event, broadcast buffer full", collection, action)
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/live
func (h *LiveHub) HandleWebSocket(c *gin.Context) {
	employeeID := utils.CurrentEmployeeID(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	h.register <- Subscription{Conn: conn, EmployeeID: employeeID}

	go h.readLoop(conn)
}

// client ฝั่งนี้อ่านอย่างเดียว loop นี้มีไว้จับตอน connection หลุด
func (h *LiveHub) readLoop(conn *websocket.Conn) {
	defer func() { h.unregister <- conn }()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
