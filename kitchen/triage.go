// Package kitchen decides which open orders a chef should see right now
// and which are still upcoming, and broadcasts queue changes to
// connected kitchen displays.
package kitchen

import (
	"strings"
	"time"

	"github.com/booknowapp/booknow/utils"
)

// leadTimeBuffer delays an order's appearance on the active queue until
// one hour past the latest safe start time of its slowest dish.
const leadTimeBuffer = time.Hour

// QueueDish is one line of an open order as the chef sees it.
type QueueDish struct {
	OrderItemID        int      `json:"orderItemId"`
	DishID             int      `json:"dishId"`
	DishName           string   `json:"dishName"`
	Quantity           int      `json:"quantity"`
	PrepTimeMinutes    *int     `json:"prepTimeMinutes,omitempty"`
	SkippedIngredients []string `json:"skippedIngredients"`
}

// QueueOrder is an open kitchen order. BookingDateTime is kept raw; it
// is parsed during partitioning and the order is dropped if it cannot
// be read.
type QueueOrder struct {
	OrderID         int         `json:"orderId"`
	Status          string      `json:"status"`
	BookingDateTime string      `json:"bookingDateTime,omitempty"`
	Dishes          []QueueDish `json:"dishes"`
}

// Partition is the chef queue split into the two sections the kitchen
// display renders.
type Partition struct {
	Visible  []QueueOrder `json:"visible"`
	Upcoming []QueueOrder `json:"upcoming"`
	// Excluded counts orders dropped for terminal status, missing or
	// unparseable booking time, or a booking time already passed.
	Excluded int `json:"-"`
}

// PartitionOrders buckets orders into visible (window open) and
// upcoming (window not yet open). The window for an order opens at
// bookingTime - maxPrep + 1h and closes at bookingTime, both ends
// inclusive. Input order is preserved within each bucket; now is an
// explicit argument so results are deterministic.
func PartitionOrders(orders []QueueOrder, now time.Time) Partition {
	var p Partition
	for _, order := range orders {
		status := strings.ToLower(order.Status)
		if status == "completed" || status == "cancelled" {
			p.Excluded++
			continue
		}

		if order.BookingDateTime == "" {
			p.Excluded++
			continue
		}
		bookingTime, err := utils.ParseBookingTime(order.BookingDateTime)
		if err != nil {
			p.Excluded++
			continue
		}

		threshold := bookingTime.Add(-prepLeadTime(order.Dishes)).Add(leadTimeBuffer)

		switch {
		case !now.Before(threshold) && !now.After(bookingTime):
			p.Visible = append(p.Visible, order)
		case now.Before(threshold):
			p.Upcoming = append(p.Upcoming, order)
		default:
			// booking time already passed, stale
			p.Excluded++
		}
	}
	return p
}

// prepLeadTime is the prep duration of the slowest dish on the order.
// Dishes without a recorded prep time contribute nothing; an order with
// no dishes needs no lead time.
func prepLeadTime(dishes []QueueDish) time.Duration {
	maxPrep := 0
	for _, dish := range dishes {
		if dish.PrepTimeMinutes != nil && *dish.PrepTimeMinutes > maxPrep {
			maxPrep = *dish.PrepTimeMinutes
		}
	}
	return time.Duration(maxPrep) * time.Minute
}
