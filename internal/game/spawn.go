/*
Package game
File: spawn.go
Description:
    Probabilistic customer arrival. Once per tick a single spawn attempt
    is made: it needs a free chair, a winning random draw, and a customer
    the cafe is appealing enough to attract.
*/

package game

import (
	"log"
	"sort"
	"time"

	"github.com/everforgeworks/pet-cafe-server/internal/catalog"
)

// spawnCustomer runs one arrival attempt. A draw that lands on a locked
// recipe is consumed, not retried; retrying would push the effective
// arrival rate above the tuned chance. Caller holds g.mu.
func (g *Game) spawnCustomer(now time.Time) {
	free := g.freeChairs()
	if len(free) == 0 {
		return
	}

	if g.rng.Float64() <= g.cat.Balance.SpawnThreshold {
		return
	}

	var eligible []catalog.Customer
	for _, cu := range g.cat.Customers {
		if g.st.CafeAppeal >= cu.MinAppealRequired {
			eligible = append(eligible, cu)
		}
	}
	if len(eligible) == 0 {
		return
	}

	cust := eligible[g.rng.Intn(len(eligible))]
	orderID := cust.PossibleOrders[g.rng.Intn(len(cust.PossibleOrders))]
	chair := free[g.rng.Intn(len(free))]

	if !g.recipeUnlocked(orderID) {
		return
	}

	g.st.ActiveCustomers[chair] = &ActiveCustomer{
		CustomerID: cust.ID,
		OrderID:    orderID,
		Patience:   100,
		StartTime:  nowMillis(now),
	}
	log.Printf("%s arrived at %s and wants %s", cust.Name, chair, orderID)
	g.notify(NotifySuccess)
	g.publish(Event{
		Type:       EventCustomerSpawned,
		Coord:      chair.String(),
		CustomerID: cust.ID,
		OrderID:    orderID,
	})
	g.render()
}

// freeChairs lists chair coordinates with no seated customer, in stable
// grid order so the random pick is reproducible under a seeded source.
func (g *Game) freeChairs() []Coord {
	var free []Coord
	for coord, item := range g.st.CafeLayout {
		if item.Kind != KindFurniture {
			continue
		}
		f := g.cat.GetFurniture(item.ItemID)
		if f == nil || f.Type != "chair" {
			continue
		}
		if _, seated := g.st.ActiveCustomers[coord]; seated {
			continue
		}
		free = append(free, coord)
	}
	sort.Slice(free, func(i, j int) bool {
		if free[i].Y != free[j].Y {
			return free[i].Y < free[j].Y
		}
		return free[i].X < free[j].X
	})
	return free
}

func (g *Game) recipeUnlocked(id string) bool {
	for _, r := range g.st.UnlockedRecipes {
		if r == id {
			return true
		}
	}
	return false
}
