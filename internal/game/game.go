/*
Package game
File: game.go
Description:
    The simulation context. One Game owns the mutable document, the
    catalog, the clock and every external collaborator. All reads and
    writes go through its methods under a single mutex, so ticks and
    user actions never observe a partially updated document.
*/

package game

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/everforgeworks/pet-cafe-server/internal/catalog"
	"github.com/everforgeworks/pet-cafe-server/internal/clock"
)

// Config carries everything a Game needs. Catalog, Store and SaveKey are
// required; collaborators are optional and nil-safe, Clock and Rand
// default to the real thing.
type Config struct {
	Catalog *catalog.Catalog
	Clock   clock.Clock
	Rand    *rand.Rand
	Store   SaveStore
	SaveKey string

	Notifier  Notifier
	Messenger Messenger
	Renderer  Renderer
	Rewards   RewardSink
	Events    EventPublisher
}

type Game struct {
	mu  sync.Mutex
	cat *catalog.Catalog
	clk clock.Clock
	rng *rand.Rand
	st  *State

	store   SaveStore
	saveKey string

	notifier  Notifier
	messenger Messenger
	renderer  Renderer
	rewards   RewardSink
	events    EventPublisher
}

func New(cfg Config) *Game {
	clk := cfg.Clock
	if clk == nil {
		clk = clock.RealClock{}
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Game{
		cat:       cfg.Catalog,
		clk:       clk,
		rng:       rng,
		st:        DefaultState(cfg.Catalog.Balance),
		store:     cfg.Store,
		saveKey:   cfg.SaveKey,
		notifier:  cfg.Notifier,
		messenger: cfg.Messenger,
		renderer:  cfg.Renderer,
		rewards:   cfg.Rewards,
		events:    cfg.Events,
	}
}

// Load fetches the saved document and merges it over fresh defaults:
// every field present in the save wins, newly introduced fields keep
// their default values. Missing or unparseable saves fall back to a
// clean default document; neither is fatal.
func (g *Game) Load(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()

	raw, err := g.store.Load(ctx, g.saveKey)
	switch {
	case errors.Is(err, ErrNoSave):
		log.Println("No saved data found, starting new game.")
		g.st = DefaultState(g.cat.Balance)
	case err != nil:
		log.Printf("Error loading game state: %v", err)
		g.st = DefaultState(g.cat.Balance)
	default:
		merged := DefaultState(g.cat.Balance)
		if err := json.Unmarshal(raw, merged); err != nil {
			log.Printf("Failed to parse saved data, starting new game: %v", err)
			g.st = DefaultState(g.cat.Balance)
		} else {
			g.st = merged
		}
	}

	// A reload may land after a boost's end time already passed.
	g.checkBoosts(g.clk.Now())
	g.recomputeAppeal()
}

// Save serializes the current document and writes it through the store.
// Failures are logged only; the in-memory document stays authoritative
// and the next tick retries.
func (g *Game) Save(ctx context.Context) {
	g.mu.Lock()
	raw, err := json.Marshal(g.st)
	g.mu.Unlock()
	if err != nil {
		log.Printf("Error serializing game state: %v", err)
		return
	}
	if err := g.store.Save(ctx, g.saveKey, raw); err != nil {
		log.Printf("Error saving game state (will retry next tick): %v", err)
	}
}

// Snapshot returns the current document serialized as JSON.
func (g *Game) Snapshot() ([]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return json.Marshal(g.st)
}

// SetCatalog swaps in a freshly reloaded catalog and recomputes derived
// state. Used by the SIGHUP hot-reload path.
func (g *Game) SetCatalog(cat *catalog.Catalog) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cat = cat
	g.recomputeAppeal()
}

// Catalog returns the catalog currently driving the simulation, which
// may differ from the one loaded at startup after a hot reload.
func (g *Game) Catalog() *catalog.Catalog {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cat
}

// nowMillis converts the clock reading to the document's time unit.
func nowMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// The collaborator helpers below are nil-safe so a headless Game (tests,
// tooling) can run without a hub or broker attached.

func (g *Game) notify(class NotifyClass) {
	if g.notifier != nil {
		g.notifier.Notify(class)
	}
}

func (g *Game) message(title, text string) {
	if g.messenger != nil {
		g.messenger.ShowMessage(title, text)
	}
}

func (g *Game) render() {
	if g.renderer != nil {
		g.renderer.RequestRender()
	}
}

func (g *Game) reward(at Coord, text string) {
	if g.rewards != nil {
		g.rewards.ShowReward(at, text)
	}
}

// publish streams an event without blocking the simulation. Publish
// errors are logged and dropped.
func (g *Game) publish(ev Event) {
	if g.events == nil {
		return
	}
	ev.Timestamp = g.clk.Now()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := g.events.Publish(ctx, ev); err != nil {
			log.Printf("Error publishing %s event: %v", ev.Type, err)
		}
	}()
}
