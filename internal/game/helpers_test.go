package game

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/everforgeworks/pet-cafe-server/internal/catalog"
)

// testCatalog mirrors the shipped catalog so tests do not depend on the
// YAML file on disk.
func testCatalog() *catalog.Catalog {
	cat := &catalog.Catalog{
		Balance: catalog.Balance{
			StartingGold:       50,
			GridSize:           10,
			SpawnThreshold:     0.8,
			PatienceSeconds:    60,
			BoostSeconds:       300,
			CleanCafeBonus:     10,
			RushHourMultiplier: 2,
			StartingRecipes:    []string{"fish_tea"},
		},
		Customers: []catalog.Customer{
			{ID: "badger", Name: "Badger", MinAppealRequired: 0, PossibleOrders: []string{"fish_tea"}},
			{ID: "fox", Name: "Fox", MinAppealRequired: 10, PossibleOrders: []string{"fish_tea", "berry_pie"}},
			{ID: "owl", Name: "Owl", MinAppealRequired: 25, PossibleOrders: []string{"berry_pie"}},
		},
		Recipes: []catalog.Recipe{
			{ID: "fish_tea", Name: "Fish Tea", EquipmentNeeded: "blender", CookingTime: 10, Price: 5},
			{ID: "berry_pie", Name: "Berry Pie", EquipmentNeeded: "oven", CookingTime: 20, Price: 15},
		},
		Furniture: []catalog.Furniture{
			{ID: "wooden_stool", Name: "Wooden Stool", Type: "chair", Cost: catalog.Cost{Gold: 10}, Appeal: 1},
			{ID: "comfy_armchair", Name: "Comfy Armchair", Type: "chair", Cost: catalog.Cost{Gold: 50}, Appeal: 5},
			{ID: "potted_plant", Name: "Potted Plant", Type: "decoration", Cost: catalog.Cost{Gold: 25}, Appeal: 3},
			{ID: "enchanted_set", Name: "Enchanted Set", Type: "decoration", Cost: catalog.Cost{Tokens: 5}, Appeal: 50, IsPremium: true},
		},
		Equipment: []catalog.Equipment{
			{ID: "basic_blender", Name: "Basic Blender", Type: "blender", Cost: catalog.Cost{Gold: 100}, Appeal: 2},
			{ID: "industrial_oven", Name: "Industrial Oven", Type: "oven", Cost: catalog.Cost{Gold: 250}, Appeal: 5},
		},
	}
	cat.Bundles = []catalog.Bundle{{ID: "token_pack_1", Name: "5 Gourmet Tokens", Cost: 10}}
	cat.Bundles[0].Provides.Tokens = 5
	return cat
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// recorder captures every collaborator call the simulation makes.
type recorder struct {
	notes    []NotifyClass
	messages []string // titles
	renders  int
	rewards  []string
}

func (r *recorder) Notify(class NotifyClass) { r.notes = append(r.notes, class) }

func (r *recorder) ShowMessage(title, _ string) { r.messages = append(r.messages, title) }

func (r *recorder) RequestRender() { r.renders++ }

func (r *recorder) ShowReward(_ Coord, text string) { r.rewards = append(r.rewards, text) }

// memStore is a local save-store fake; the real in-memory backend lives
// in internal/storage, which imports this package.
type memStore struct {
	docs map[string][]byte
}

func newMemStore() *memStore { return &memStore{docs: map[string][]byte{}} }

func (s *memStore) Load(_ context.Context, key string) ([]byte, error) {
	doc, ok := s.docs[key]
	if !ok {
		return nil, ErrNoSave
	}
	return doc, nil
}

func (s *memStore) Save(_ context.Context, key string, doc []byte) error {
	s.docs[key] = doc
	return nil
}

type failingStore struct{}

func (failingStore) Load(context.Context, string) ([]byte, error) {
	return nil, errors.New("backend down")
}

func (failingStore) Save(context.Context, string, []byte) error {
	return errors.New("backend down")
}

func newTestGame(t *testing.T) (*Game, *fakeClock, *recorder, *memStore) {
	t.Helper()
	return newTestGameWith(t, testCatalog())
}

func newTestGameWith(t *testing.T, cat *catalog.Catalog) (*Game, *fakeClock, *recorder, *memStore) {
	t.Helper()
	clk := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	rec := &recorder{}
	store := newMemStore()
	g := New(Config{
		Catalog:   cat,
		Clock:     clk,
		Rand:      rand.New(rand.NewSource(1)),
		Store:     store,
		SaveKey:   "test",
		Notifier:  rec,
		Messenger: rec,
		Renderer:  rec,
		Rewards:   rec,
	})
	return g, clk, rec, store
}

// putItem drops an item straight into the layout, bypassing the cost
// check, and keeps appeal consistent.
func putItem(g *Game, coord Coord, itemID string, kind ItemKind) {
	g.st.CafeLayout[coord] = PlacedItem{ItemID: itemID, Kind: kind}
	g.recomputeAppeal()
}

// seatCustomer seats a customer wanting orderID at the given chair.
func seatCustomer(g *Game, chair Coord, customerID, orderID string, at time.Time) *ActiveCustomer {
	cust := &ActiveCustomer{
		CustomerID: customerID,
		OrderID:    orderID,
		Patience:   100,
		StartTime:  at.UnixMilli(),
	}
	g.st.ActiveCustomers[chair] = cust
	return cust
}
