package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceWoodenStool(t *testing.T) {
	g, _, _, _ := newTestGame(t)

	err := g.Place(Coord{X: 2, Y: 3}, "wooden_stool", KindFurniture)
	require.NoError(t, err)

	assert.Equal(t, 40, g.st.Resources.Gold)
	assert.Equal(t, 1, g.st.CafeAppeal)
	assert.Equal(t, PlacedItem{ItemID: "wooden_stool", Kind: KindFurniture}, g.st.CafeLayout[Coord{X: 2, Y: 3}])
	assert.Equal(t, []string{"wooden_stool"}, g.st.OwnedFurniture)
}

func TestPlaceAccumulatesAppealPerItem(t *testing.T) {
	g, _, _, _ := newTestGame(t)

	require.NoError(t, g.Place(Coord{X: 0, Y: 0}, "wooden_stool", KindFurniture))
	require.NoError(t, g.Place(Coord{X: 1, Y: 0}, "potted_plant", KindFurniture))

	// 1 + 3, exactly the catalog appeal of what is placed.
	assert.Equal(t, 4, g.st.CafeAppeal)
	assert.Equal(t, 15, g.st.Resources.Gold)
}

func TestPlaceInsufficientGold(t *testing.T) {
	g, _, rec, _ := newTestGame(t)

	err := g.Place(Coord{X: 0, Y: 0}, "industrial_oven", KindEquipment)
	assert.ErrorIs(t, err, ErrInsufficientResources)

	assert.Equal(t, 50, g.st.Resources.Gold)
	assert.Empty(t, g.st.CafeLayout)
	assert.Equal(t, 0, g.st.CafeAppeal)
	assert.Contains(t, rec.messages, "Not enough resources!")
}

func TestPlaceTokenCost(t *testing.T) {
	g, _, _, _ := newTestGame(t)

	err := g.Place(Coord{X: 4, Y: 4}, "enchanted_set", KindFurniture)
	assert.ErrorIs(t, err, ErrInsufficientResources)

	require.NoError(t, g.BuyBundle("token_pack_1"))
	require.NoError(t, g.Place(Coord{X: 4, Y: 4}, "enchanted_set", KindFurniture))

	assert.Equal(t, 0, g.st.Resources.Tokens)
	assert.Equal(t, 50, g.st.Resources.Gold) // gold untouched
	assert.Equal(t, 50, g.st.CafeAppeal)
}

func TestPlaceOccupiedCell(t *testing.T) {
	g, _, rec, _ := newTestGame(t)

	require.NoError(t, g.Place(Coord{X: 5, Y: 5}, "wooden_stool", KindFurniture))
	err := g.Place(Coord{X: 5, Y: 5}, "potted_plant", KindFurniture)

	assert.ErrorIs(t, err, ErrCellOccupied)
	assert.Equal(t, "wooden_stool", g.st.CafeLayout[Coord{X: 5, Y: 5}].ItemID)
	assert.Equal(t, 40, g.st.Resources.Gold)
	assert.Contains(t, rec.messages, "Placement failed")
}

func TestPlaceOutOfBounds(t *testing.T) {
	g, _, _, _ := newTestGame(t)

	for _, coord := range []Coord{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 10, Y: 0}, {X: 0, Y: 10}} {
		err := g.Place(coord, "wooden_stool", KindFurniture)
		assert.ErrorIs(t, err, ErrOutOfBounds, "coord %s", coord)
	}
	assert.Equal(t, 50, g.st.Resources.Gold)
}

func TestPlaceUnknownItem(t *testing.T) {
	g, _, _, _ := newTestGame(t)

	assert.ErrorIs(t, g.Place(Coord{X: 0, Y: 0}, "golden_throne", KindFurniture), ErrUnknownItem)
	assert.ErrorIs(t, g.Place(Coord{X: 0, Y: 0}, "wooden_stool", ItemKind("plant")), ErrUnknownItem)
}

func TestAppealSkipsUnknownCatalogIDs(t *testing.T) {
	g, _, _, _ := newTestGame(t)

	putItem(g, Coord{X: 0, Y: 0}, "wooden_stool", KindFurniture)
	putItem(g, Coord{X: 1, Y: 1}, "retired_item", KindFurniture)

	assert.Equal(t, 1, g.st.CafeAppeal)
}

func TestBuyBundle(t *testing.T) {
	g, _, rec, _ := newTestGame(t)

	require.NoError(t, g.BuyBundle("token_pack_1"))
	assert.Equal(t, 5, g.st.Resources.Tokens)
	assert.Contains(t, rec.messages, "Purchase Successful!")

	assert.ErrorIs(t, g.BuyBundle("token_pack_99"), ErrUnknownBundle)
	assert.Equal(t, 5, g.st.Resources.Tokens)
}
