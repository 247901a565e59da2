package kitchen

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/booknowapp/booknow/models"
)

// Event types pushed to connected kitchen/waiter/admin displays
const (
	EventQueueUpdate   = "queue_update"
	EventOrderUpdate   = "order_update"
	EventOrderReady    = "order_ready"
	EventBookingCreate = "booking_create"
	EventWaiterNotif   = "waiter_notification"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub holds every connected display client (chef, waiter, admin) keyed
// by its role.
type Hub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient adds a connection to the broadcast set with its role
func RegisterClient(conn *websocket.Conn, role string) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = role
}

// UnregisterClient drops a connection and closes it
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// BroadcastQueueUpdate tells chef displays to re-fetch their queue
func BroadcastQueueUpdate(chefID uint) {
	broadcast(Message{
		Event: EventQueueUpdate,
		Data:  map[string]interface{}{"chef_id": chefID},
	})
}

// BroadcastOrderUpdate announces an order status change
func BroadcastOrderUpdate(order models.Order) {
	broadcast(Message{
		Event: EventOrderUpdate,
		Data:  order,
	})
}

// BroadcastOrderReady notifies waiters an order can be served
func BroadcastOrderReady(order models.Order) {
	broadcast(Message{
		Event: EventOrderReady,
		Data:  order,
	})
}

// BroadcastBookingCreate announces a new booking
func BroadcastBookingCreate(booking models.Booking) {
	broadcast(Message{
		Event: EventBookingCreate,
		Data:  booking,
	})
}

// BroadcastWaiterNotification sends a plain text notice to waiters
func BroadcastWaiterNotification(text string) {
	broadcast(Message{
		Event: EventWaiterNotif,
		Data:  text,
	})
}

func broadcast(msg Message) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling message: %v", err)
		return
	}

	for conn, role := range hub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("Error sending %s event to %s client: %v", msg.Event, role, err)
		}
	}
}
