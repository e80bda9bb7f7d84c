/*
Package game
File: build.go
Description:
    Build mode and the shop: placing furniture or equipment on the grid,
    and the stubbed token-bundle purchase flow.
*/

package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/everforgeworks/pet-cafe-server/internal/catalog"
)

var (
	ErrOutOfBounds           = errors.New("coordinate outside the grid")
	ErrCellOccupied          = errors.New("cell already occupied")
	ErrUnknownItem           = errors.New("unknown item")
	ErrInsufficientResources = errors.New("insufficient resources")
	ErrUnknownBundle         = errors.New("unknown bundle")
)

// Place buys and places an item on an empty cell. Gold is tried first,
// then tokens; if neither covers the cost the placement aborts with no
// state change.
func (g *Game) Place(coord Coord, itemID string, kind ItemKind) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	size := g.cat.Balance.GridSize
	if coord.X < 0 || coord.Y < 0 || coord.X >= size || coord.Y >= size {
		return ErrOutOfBounds
	}
	if _, taken := g.st.CafeLayout[coord]; taken {
		g.message("Placement failed", "This spot is already occupied.")
		return ErrCellOccupied
	}

	var name string
	var cost catalog.Cost
	switch kind {
	case KindFurniture:
		f := g.cat.GetFurniture(itemID)
		if f == nil {
			return ErrUnknownItem
		}
		name, cost = f.Name, f.Cost
	case KindEquipment:
		e := g.cat.GetEquipment(itemID)
		if e == nil {
			return ErrUnknownItem
		}
		name, cost = e.Name, e.Cost
	default:
		return ErrUnknownItem
	}

	switch {
	case cost.Gold > 0 && g.st.Resources.Gold >= cost.Gold:
		g.st.Resources.Gold -= cost.Gold
	case cost.Tokens > 0 && g.st.Resources.Tokens >= cost.Tokens:
		g.st.Resources.Tokens -= cost.Tokens
	default:
		g.message("Not enough resources!", fmt.Sprintf("You cannot afford a %s.", name))
		return ErrInsufficientResources
	}

	g.notify(NotifyLightImpact)
	g.st.CafeLayout[coord] = PlacedItem{ItemID: itemID, Kind: kind}
	if kind == KindFurniture {
		g.st.OwnedFurniture = append(g.st.OwnedFurniture, itemID)
	} else {
		g.st.OwnedEquipment = append(g.st.OwnedEquipment, itemID)
	}
	g.recomputeAppeal()
	g.render()
	log.Printf("Placed %s at %s", itemID, coord)
	return nil
}

// BuyBundle credits a token bundle's grant immediately. A production
// build would gate this on the platform's payment confirmation callback
// before crediting.
func (g *Game) BuyBundle(bundleID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	b := g.cat.GetBundle(bundleID)
	if b == nil {
		return ErrUnknownBundle
	}

	log.Printf("Simulating purchase of %s for %d Stars.", b.Name, b.Cost)
	g.st.Resources.Tokens += b.Provides.Tokens
	g.notify(NotifySuccess)
	g.publish(Event{
		Type:   EventBundlePurchased,
		ItemID: b.ID,
		Amount: b.Provides.Tokens,
	})
	g.message("Purchase Successful!",
		fmt.Sprintf("You received %d Gourmet Tokens!", b.Provides.Tokens))
	g.render()
	return nil
}
