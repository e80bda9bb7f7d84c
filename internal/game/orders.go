/*
Package game
File: orders.go
Description:
    Order lifecycle up to readiness: binding a seated customer's order to
    a free piece of equipment, and the per-tick cooking progress check.
*/

package game

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"time"
)

var (
	ErrNoCustomer      = errors.New("no customer at that chair")
	ErrOrderMismatch   = errors.New("customer did not order that recipe")
	ErrAlreadyCooking  = errors.New("order already in progress")
	ErrUnknownRecipe   = errors.New("unknown recipe")
	ErrNoFreeEquipment = errors.New("no free equipment")
)

// StartOrder binds the order of the customer seated at chair to a free
// piece of equipment of the recipe's required kind. Both directions of
// the customer/order link are written together; nothing changes if no
// equipment is free.
func (g *Game) StartOrder(orderID string, chair Coord) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	cust := g.st.ActiveCustomers[chair]
	if cust == nil {
		return ErrNoCustomer
	}
	if cust.OrderID != orderID {
		return ErrOrderMismatch
	}
	if cust.AssignedEquipment != nil {
		return ErrAlreadyCooking
	}
	recipe := g.cat.GetRecipe(orderID)
	if recipe == nil {
		return ErrUnknownRecipe
	}

	g.notify(NotifyLightImpact)

	eq, ok := g.findFreeEquipment(recipe.EquipmentNeeded)
	if !ok {
		g.message("No free equipment!",
			fmt.Sprintf("A %s is required to make %s.", recipe.EquipmentNeeded, recipe.Name))
		return ErrNoFreeEquipment
	}

	assigned := eq
	cust.AssignedEquipment = &assigned
	g.st.ActiveOrders[eq] = &ActiveOrder{
		OrderID:       orderID,
		CustomerChair: chair,
		StartTime:     nowMillis(g.clk.Now()),
		TotalTime:     recipe.CookingTime,
	}
	log.Printf("Started cooking %s at %s for customer at %s", recipe.Name, eq, chair)
	g.render()
	return nil
}

// findFreeEquipment scans the layout for placed equipment of the wanted
// kind with no order at its coordinate. First match in grid order wins.
func (g *Game) findFreeEquipment(kind string) (Coord, bool) {
	var candidates []Coord
	for coord, item := range g.st.CafeLayout {
		if item.Kind != KindEquipment {
			continue
		}
		e := g.cat.GetEquipment(item.ItemID)
		if e == nil || e.Type != kind {
			continue
		}
		if _, busy := g.st.ActiveOrders[coord]; busy {
			continue
		}
		candidates = append(candidates, coord)
	}
	if len(candidates) == 0 {
		return Coord{}, false
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Y != candidates[j].Y {
			return candidates[i].Y < candidates[j].Y
		}
		return candidates[i].X < candidates[j].X
	})
	return candidates[0], true
}

// updateCooking flips orders to ready once their cook time has elapsed.
// Readiness is purely time-derived and never reverts. Caller holds g.mu.
func (g *Game) updateCooking(now time.Time) {
	ms := nowMillis(now)
	changed := false
	for _, order := range g.st.ActiveOrders {
		if order.IsReady {
			continue
		}
		elapsed := float64(ms-order.StartTime) / 1000
		if elapsed >= float64(order.TotalTime) {
			order.IsReady = true
			changed = true
		}
	}
	if changed {
		g.render()
	}
}
