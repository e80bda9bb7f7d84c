/*
Package game
File: settle.go
Description:
    Settlement: turning a ready order into gold and clearing the
    customer/equipment pair together. This is the only path that removes
    the pair under normal flow, so collection is exactly-once.
*/

package game

import (
	"errors"
	"fmt"
	"log"
)

var ErrNothingToCollect = errors.New("nothing ready to collect")

// CollectEarnings settles the ready order at the given equipment
// coordinate. The recipe's price is credited, doubled while rush hour is
// active, and both the order and its linked customer are removed in the
// same step. A second call finds no order and is a no-op.
func (g *Game) CollectEarnings(equipment Coord) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	order := g.st.ActiveOrders[equipment]
	if order == nil || !order.IsReady {
		return 0, ErrNothingToCollect
	}

	recipe := g.cat.GetRecipe(order.OrderID)
	if recipe == nil {
		log.Printf("Order at %s references unknown recipe %s, discarding", equipment, order.OrderID)
		delete(g.st.ActiveOrders, equipment)
		g.render()
		return 0, ErrNothingToCollect
	}

	cust := g.st.ActiveCustomers[order.CustomerChair]
	if cust == nil {
		// Back-reference broken: the customer was evicted mid-cook.
		// Discard without credit so the equipment frees up.
		log.Printf("Order at %s lost its customer at %s, discarding", equipment, order.CustomerChair)
		delete(g.st.ActiveOrders, equipment)
		g.render()
		return 0, ErrNothingToCollect
	}

	g.notify(NotifyMediumImpact)

	earnings := recipe.Price
	text := fmt.Sprintf("+%d 🪙", earnings)
	if g.st.Boosts.RushHour.Active {
		earnings *= g.cat.Balance.RushHourMultiplier
		text = fmt.Sprintf("+%d 🪙 (x%d)", earnings, g.cat.Balance.RushHourMultiplier)
	}

	g.st.Resources.Gold += earnings
	delete(g.st.ActiveCustomers, order.CustomerChair)
	delete(g.st.ActiveOrders, equipment)

	g.reward(order.CustomerChair, text)
	g.publish(Event{
		Type:       EventOrderServed,
		Coord:      equipment.String(),
		CustomerID: cust.CustomerID,
		OrderID:    order.OrderID,
		Amount:     earnings,
	})
	g.render()
	log.Printf("Served %s and earned %d gold.", recipe.Name, earnings)
	return earnings, nil
}
