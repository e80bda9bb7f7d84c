/*
Package game
File: patience.go
Description:
    Decays each seated customer's patience linearly to zero over the
    configured window and evicts anyone who runs out, served or not.
*/

package game

import (
	"log"
	"math"
	"time"
)

// updatePatience recomputes every customer's patience from wall time and
// evicts those at zero. An evicted customer's in-flight order is left
// behind; settlement discards the orphan when the dish comes up ready.
// Caller holds g.mu.
func (g *Game) updatePatience(now time.Time) {
	window := float64(g.cat.Balance.PatienceSeconds)
	ms := nowMillis(now)

	evicted := false
	for coord, cust := range g.st.ActiveCustomers {
		elapsed := float64(ms-cust.StartTime) / 1000
		cust.Patience = math.Max(0, 100-(elapsed/window)*100)

		if cust.Patience <= 0 {
			log.Printf("Customer %s at %s left angrily.", cust.CustomerID, coord)
			delete(g.st.ActiveCustomers, coord)
			g.notify(NotifyError)
			g.publish(Event{
				Type:       EventCustomerLeft,
				Coord:      coord.String(),
				CustomerID: cust.CustomerID,
				OrderID:    cust.OrderID,
			})
			evicted = true
		}
	}
	if evicted {
		g.render()
	}
}
