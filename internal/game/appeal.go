/*
Package game
File: appeal.go
Description:
    Derives the cafe appeal score from the placed items. Appeal gates
    which customers are willing to show up.
*/

package game

// recomputeAppeal recalculates CafeAppeal as the sum of the appeal of
// every placed item, plus the clean-cafe bonus while that boost runs.
// Items referencing unknown catalog ids contribute nothing. Must be
// called after every placement or boost change. Caller holds g.mu.
func (g *Game) recomputeAppeal() {
	total := 0
	for _, item := range g.st.CafeLayout {
		total += g.itemAppeal(item)
	}
	if g.st.Boosts.CleanCafe.Active {
		total += g.cat.Balance.CleanCafeBonus
	}
	g.st.CafeAppeal = total
}

func (g *Game) itemAppeal(item PlacedItem) int {
	switch item.Kind {
	case KindFurniture:
		if f := g.cat.GetFurniture(item.ItemID); f != nil {
			return f.Appeal
		}
	case KindEquipment:
		if e := g.cat.GetEquipment(item.ItemID); e != nil {
			return e.Appeal
		}
	}
	return 0
}
