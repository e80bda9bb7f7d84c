/*
Package game
File: boosts.go
Description:
    Time-bounded boosts. Rush hour doubles settlement earnings; the
    clean-cafe boost adds a flat appeal bonus. Both persist their end
    time in the document and are expired by the tick, so a reload picks
    the pending reversion back up instead of losing it.
*/

package game

import (
	"fmt"
	"log"
	"time"
)

// ActivateRushHour doubles all earnings for the configured boost window.
// Activating while already active refreshes the end time.
func (g *Game) ActivateRushHour() {
	g.mu.Lock()
	defer g.mu.Unlock()

	end := g.clk.Now().Add(g.boostDuration())
	g.st.Boosts.RushHour = Boost{Active: true, EndTime: nowMillis(end)}
	g.notify(NotifySuccess)
	g.message("Rush Hour Active!", "All earnings are doubled for the next 5 minutes!")
}

// ActivateCleanCafe applies the temporary appeal bonus for the
// configured boost window.
func (g *Game) ActivateCleanCafe() {
	g.mu.Lock()
	defer g.mu.Unlock()

	end := g.clk.Now().Add(g.boostDuration())
	g.st.Boosts.CleanCafe = Boost{Active: true, EndTime: nowMillis(end)}
	g.recomputeAppeal()
	g.notify(NotifySuccess)
	g.message("Cafe Sparkles!",
		fmt.Sprintf("You got a temporary +%d Appeal boost!", g.cat.Balance.CleanCafeBonus))
	g.render()
}

// checkBoosts clears boosts whose end time has passed. Caller holds g.mu.
func (g *Game) checkBoosts(now time.Time) {
	ms := nowMillis(now)

	if g.st.Boosts.RushHour.Active && ms > g.st.Boosts.RushHour.EndTime {
		g.st.Boosts.RushHour.Active = false
		log.Println("Rush hour ended.")
		g.message("Boost Ended", "Rush Hour has finished.")
	}

	if g.st.Boosts.CleanCafe.Active && ms > g.st.Boosts.CleanCafe.EndTime {
		g.st.Boosts.CleanCafe.Active = false
		g.recomputeAppeal()
		log.Println("Temporary appeal boost wore off.")
		g.render()
	}
}

func (g *Game) boostDuration() time.Duration {
	return time.Duration(g.cat.Balance.BoostSeconds) * time.Second
}
