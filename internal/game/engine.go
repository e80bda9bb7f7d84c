/*
Package game
File: engine.go
Description:
    The fixed-interval heartbeat that keeps the cafe alive. Every second
    it runs the simulation steps strictly in order and then persists the
    document. One bad iteration never stops the next: each step runs
    under a recover so the loop outlives panics in sub-steps.
*/

package game

import (
	"context"
	"log"
	"time"
)

// Tick runs one full simulation step under the document lock:
// patience decay, cooking progress, boost expiry, then a spawn attempt.
func (g *Game) Tick(now time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.updatePatience(now)
	g.updateCooking(now)
	g.checkBoosts(now)
	g.spawnCustomer(now)
}

// Engine drives the Game at a fixed interval.
type Engine struct {
	game     *Game
	interval time.Duration
}

func NewEngine(g *Game, interval time.Duration) *Engine {
	return &Engine{game: g, interval: interval}
}

// Run ticks until ctx is cancelled, then writes a final save. Each tick
// completes before the next is scheduled; the ticker drops beats if an
// iteration overruns, so steps never overlap.
func (e *Engine) Run(ctx context.Context) {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			saveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			e.game.Save(saveCtx)
			cancel()
			log.Println("Heartbeat stopped.")
			return
		case <-ticker.C:
			e.step(ctx)
		}
	}
}

func (e *Engine) step(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Tick panic recovered: %v", r)
		}
	}()
	e.game.Tick(e.game.clk.Now())
	e.game.Save(ctx)
}
