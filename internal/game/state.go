/*
Package game
File: state.go
Description:
    Defines the persisted game document: resources, the cafe layout grid,
    seated customers, in-flight orders and boost state. The document is a
    JSON tree keyed the way the save contract expects ("x,y" coordinate
    strings, unix-millisecond timestamps) so old saves keep loading as the
    schema grows.
*/

package game

import (
	"fmt"

	"github.com/everforgeworks/pet-cafe-server/internal/catalog"
)

// ItemKind distinguishes the two placeable catalog families.
type ItemKind string

const (
	KindFurniture ItemKind = "furniture"
	KindEquipment ItemKind = "equipment"
)

// Coord addresses one cell of the cafe grid. It marshals as "x,y" so it
// can key the JSON maps of the save document.
type Coord struct {
	X int
	Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

func (c Coord) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Coord) UnmarshalText(b []byte) error {
	parsed, err := ParseCoord(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCoord parses an "x,y" coordinate string.
func ParseCoord(s string) (Coord, error) {
	var c Coord
	if _, err := fmt.Sscanf(s, "%d,%d", &c.X, &c.Y); err != nil {
		return Coord{}, fmt.Errorf("invalid coordinate %q: %w", s, err)
	}
	return c, nil
}

type Resources struct {
	Gold   int `json:"gold"`
	Tokens int `json:"tokens"`
}

// PlacedItem is one occupied grid cell.
type PlacedItem struct {
	ItemID string   `json:"itemId"`
	Kind   ItemKind `json:"type"`
}

// ActiveCustomer is a seated customer, keyed in the document by the
// coordinate of the chair it occupies. AssignedEquipment is set once an
// order has been bound to a piece of equipment and must then be mirrored
// by an ActiveOrder at that coordinate.
type ActiveCustomer struct {
	CustomerID        string  `json:"customerId"`
	OrderID           string  `json:"orderId"`
	Patience          float64 `json:"patience"`
	StartTime         int64   `json:"startTime"` // unix milliseconds
	AssignedEquipment *Coord  `json:"assignedEquipment,omitempty"`
}

// ActiveOrder is a dish being cooked, keyed in the document by the
// coordinate of the equipment cooking it. CustomerChair points back at
// the seated customer; the pair is removed together at settlement.
type ActiveOrder struct {
	OrderID       string `json:"orderId"`
	CustomerChair Coord  `json:"customerChairCoord"`
	StartTime     int64  `json:"startTime"` // unix milliseconds
	TotalTime     int    `json:"totalTime"` // seconds
	IsReady       bool   `json:"isReady"`   // monotonic false -> true
}

// Boost is a time-bounded effect. EndTime is persisted so a reload can
// still expire it on schedule.
type Boost struct {
	Active  bool  `json:"active"`
	EndTime int64 `json:"endTime"` // unix milliseconds
}

type Boosts struct {
	RushHour  Boost `json:"rushHour"`
	CleanCafe Boost `json:"cleanCafe"`
}

// State is the single mutable game document. All of it is owned by Game
// and mutated only through Game methods.
type State struct {
	Resources       Resources                 `json:"resources"`
	CafeAppeal      int                       `json:"cafeAppeal"`
	CafeLayout      map[Coord]PlacedItem      `json:"cafeLayout"`
	UnlockedRecipes []string                  `json:"unlockedRecipes"`
	OwnedFurniture  []string                  `json:"ownedFurniture"`
	OwnedEquipment  []string                  `json:"ownedEquipment"`
	ActiveCustomers map[Coord]*ActiveCustomer `json:"activeCustomers"`
	ActiveOrders    map[Coord]*ActiveOrder    `json:"activeOrders"`
	Boosts          Boosts                    `json:"boosts"`
}

// DefaultState builds a fresh document for a new player. Each call
// returns an independent copy; loading merges a saved document over one
// of these, so saved values win and newly introduced fields pick up
// their defaults.
func DefaultState(bal catalog.Balance) *State {
	return &State{
		Resources: Resources{
			Gold:   bal.StartingGold,
			Tokens: bal.StartingTokens,
		},
		CafeLayout:      make(map[Coord]PlacedItem),
		UnlockedRecipes: append([]string(nil), bal.StartingRecipes...),
		OwnedFurniture:  []string{},
		OwnedEquipment:  []string{},
		ActiveCustomers: make(map[Coord]*ActiveCustomer),
		ActiveOrders:    make(map[Coord]*ActiveOrder),
	}
}
