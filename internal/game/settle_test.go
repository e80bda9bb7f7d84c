package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readyOrder wires a seated customer to started, finished cooking.
func readyOrder(t *testing.T, g *Game, clk *fakeClock) (chair, blender Coord) {
	t.Helper()
	chair = Coord{X: 1, Y: 1}
	blender = Coord{X: 3, Y: 0}
	putItem(g, blender, "basic_blender", KindEquipment)
	seatCustomer(g, chair, "badger", "fish_tea", clk.Now())
	require.NoError(t, g.StartOrder("fish_tea", chair))
	clk.Advance(10 * time.Second)
	g.updateCooking(clk.Now())
	require.True(t, g.st.ActiveOrders[blender].IsReady)
	return chair, blender
}

func TestCollectEarningsExactlyOnce(t *testing.T) {
	g, clk, rec, _ := newTestGame(t)
	chair, blender := readyOrder(t, g, clk)

	earned, err := g.CollectEarnings(blender)
	require.NoError(t, err)
	assert.Equal(t, 5, earned)
	assert.Equal(t, 55, g.st.Resources.Gold)
	assert.NotContains(t, g.st.ActiveCustomers, chair)
	assert.NotContains(t, g.st.ActiveOrders, blender)
	assert.Equal(t, []string{"+5 🪙"}, rec.rewards)

	// Second collection finds nothing and credits nothing.
	_, err = g.CollectEarnings(blender)
	assert.ErrorIs(t, err, ErrNothingToCollect)
	assert.Equal(t, 55, g.st.Resources.Gold)
}

func TestCollectDuringRushHourDoubles(t *testing.T) {
	g, clk, rec, _ := newTestGame(t)
	_, blender := readyOrder(t, g, clk)
	g.ActivateRushHour()

	earned, err := g.CollectEarnings(blender)
	require.NoError(t, err)
	assert.Equal(t, 10, earned)
	assert.Equal(t, 60, g.st.Resources.Gold)
	assert.Contains(t, rec.rewards, "+10 🪙 (x2)")
}

func TestCollectBeforeReadyIsNoOp(t *testing.T) {
	g, clk, _, _ := newTestGame(t)
	chair := Coord{X: 1, Y: 1}
	blender := Coord{X: 3, Y: 0}
	putItem(g, blender, "basic_blender", KindEquipment)
	seatCustomer(g, chair, "badger", "fish_tea", clk.Now())
	require.NoError(t, g.StartOrder("fish_tea", chair))

	_, err := g.CollectEarnings(blender)
	assert.ErrorIs(t, err, ErrNothingToCollect)
	assert.Equal(t, 50, g.st.Resources.Gold)
	assert.Contains(t, g.st.ActiveOrders, blender)
}

func TestCollectEmptyCoordinateIsNoOp(t *testing.T) {
	g, _, _, _ := newTestGame(t)
	_, err := g.CollectEarnings(Coord{X: 9, Y: 9})
	assert.ErrorIs(t, err, ErrNothingToCollect)
}

func TestCollectOrphanedOrderDiscardsWithoutCredit(t *testing.T) {
	g, clk, _, _ := newTestGame(t)
	chair, blender := readyOrder(t, g, clk)

	// Simulate the customer having been evicted mid-cook.
	delete(g.st.ActiveCustomers, chair)

	_, err := g.CollectEarnings(blender)
	assert.ErrorIs(t, err, ErrNothingToCollect)
	assert.Equal(t, 50, g.st.Resources.Gold)
	assert.NotContains(t, g.st.ActiveOrders, blender, "orphan should be discarded to free the equipment")
}
