package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatienceDecaysLinearly(t *testing.T) {
	g, clk, _, _ := newTestGame(t)
	chair := Coord{X: 1, Y: 1}
	cust := seatCustomer(g, chair, "badger", "fish_tea", clk.Now())

	prev := cust.Patience
	for _, step := range []struct {
		after time.Duration
		want  float64
	}{
		{15 * time.Second, 75},
		{30 * time.Second, 50},
		{45 * time.Second, 25},
		{59 * time.Second, 100.0 / 60},
	} {
		g.updatePatience(clk.Now().Add(step.after))
		assert.InDelta(t, step.want, cust.Patience, 1e-9)
		assert.LessOrEqual(t, cust.Patience, prev, "patience must never increase")
		prev = cust.Patience
	}
}

func TestPatienceZeroEvictsCustomer(t *testing.T) {
	g, clk, rec, _ := newTestGame(t)
	chair := Coord{X: 1, Y: 1}
	seatCustomer(g, chair, "badger", "fish_tea", clk.Now())

	g.updatePatience(clk.Now().Add(60 * time.Second))

	assert.NotContains(t, g.st.ActiveCustomers, chair)
	assert.Contains(t, rec.notes, NotifyError)
}

func TestPatienceNeverNegative(t *testing.T) {
	g, clk, _, _ := newTestGame(t)
	chair := Coord{X: 0, Y: 0}
	cust := seatCustomer(g, chair, "badger", "fish_tea", clk.Now())

	// Evicted well past the deadline; the recorded value bottoms at 0.
	g.updatePatience(clk.Now().Add(5 * time.Minute))
	assert.Equal(t, 0.0, cust.Patience)
	assert.Empty(t, g.st.ActiveCustomers)
}

func TestEvictionOrphansInFlightOrder(t *testing.T) {
	g, clk, _, _ := newTestGame(t)
	chair := Coord{X: 1, Y: 1}
	blender := Coord{X: 2, Y: 2}
	putItem(g, blender, "basic_blender", KindEquipment)
	seatCustomer(g, chair, "badger", "fish_tea", clk.Now())
	require.NoError(t, g.StartOrder("fish_tea", chair))

	g.updatePatience(clk.Now().Add(time.Hour))

	// Customer gone, order left behind for settlement to discard.
	assert.Empty(t, g.st.ActiveCustomers)
	assert.Contains(t, g.st.ActiveOrders, blender)
}
