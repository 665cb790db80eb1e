package encumbrance_test

import (
	"testing"

	"github.com/cory-johannsen/sheet/internal/game/character"
	"github.com/cory-johannsen/sheet/internal/game/encumbrance"
	"pgregory.net/rapid"
)

func carrier(str int) character.Character {
	c := character.New("Porter")
	c.Abilities.Strength = str
	return c
}

func TestMaxBulk(t *testing.T) {
	// STR 14 -> +2 -> limit 7.
	if got := encumbrance.MaxBulk(2); got != 7 {
		t.Errorf("MaxBulk(+2) = %v, want 7", got)
	}
	if got := encumbrance.MaxBulk(-1); got != 4 {
		t.Errorf("MaxBulk(-1) = %v, want 4", got)
	}
}

func TestLevelFor_Boundaries(t *testing.T) {
	cases := []struct {
		total float64
		want  encumbrance.Level
	}{
		{7, encumbrance.LevelNormal},
		{7.5, encumbrance.LevelEncumbered},
		{8, encumbrance.LevelEncumbered},
		{8.5, encumbrance.LevelOverburdened},
	}
	for _, c := range cases {
		if got := encumbrance.LevelFor(c.total, 7); got != c.want {
			t.Errorf("LevelFor(%v, 7) = %v, want %v", c.total, got, c.want)
		}
	}
}

func TestDerive_RootItems(t *testing.T) {
	items := []character.EquippedItem{
		{ID: "sword", Kind: character.KindWeapon, Bulk: 1, Quantity: 1},
		{ID: "rations", Kind: character.KindGear, Bulk: 0.5, Quantity: 4},
		{ID: "chalk", Kind: character.KindGear, Bulk: 0.05, Quantity: 10}, // negligible
	}
	res := encumbrance.Derive(carrier(14), items)
	if res.Root != 3 {
		t.Errorf("Root = %v, want 3", res.Root)
	}
	if res.Total != 3 {
		t.Errorf("Total = %v, want 3", res.Total)
	}
	if res.Level != encumbrance.LevelNormal {
		t.Errorf("Level = %v, want normal", res.Level)
	}
}

func TestDerive_CoinsConvertAtThousandPerBulk(t *testing.T) {
	items := []character.EquippedItem{
		{ID: "gold", Kind: character.KindCoin, Quantity: 2500},
	}
	res := encumbrance.Derive(carrier(10), items)
	if res.Total != 2.5 {
		t.Errorf("coin bulk = %v, want 2.5", res.Total)
	}
}

func TestDerive_ContainerReductionAndCap(t *testing.T) {
	items := []character.EquippedItem{
		{ID: "pack", Kind: character.KindGear, Bulk: 0.5, Quantity: 1, IsContainer: true, Capacity: 4, BulkReduction: 1},
		{ID: "tent", Kind: character.KindGear, Bulk: 2, Quantity: 1, ContainerID: "pack"},
		{ID: "pot", Kind: character.KindGear, Bulk: 0.5, Quantity: 1, ContainerID: "pack"},
	}
	res := encumbrance.Derive(carrier(10), items)
	// tent: max(0, 2-1)=1; pot: max(0, 0.5-1)=0; contents=1; + own 0.5.
	if len(res.Containers) != 1 {
		t.Fatalf("expected 1 container, got %d", len(res.Containers))
	}
	cb := res.Containers[0]
	if cb.Contents != 1 {
		t.Errorf("Contents = %v, want 1", cb.Contents)
	}
	if res.Total != 1.5 {
		t.Errorf("Total = %v, want 1.5", res.Total)
	}
	if res.Root != 0 {
		t.Errorf("Root = %v, want 0 (everything packed)", res.Root)
	}
}

func TestDerive_ContainerCapacityCapsContents(t *testing.T) {
	items := []character.EquippedItem{
		{ID: "sack", Kind: character.KindGear, Bulk: 0.1, Quantity: 1, IsContainer: true, Capacity: 2},
		{ID: "anvil", Kind: character.KindGear, Bulk: 8, Quantity: 1, ContainerID: "sack"},
	}
	res := encumbrance.Derive(carrier(10), items)
	if got := res.Containers[0].Contents; got != 2 {
		t.Errorf("Contents = %v, want capacity cap 2", got)
	}
}

func TestDerive_NestedContainerCountsOnce(t *testing.T) {
	items := []character.EquippedItem{
		{ID: "backpack", Kind: character.KindGear, Bulk: 1, Quantity: 1, IsContainer: true, Capacity: 4},
		{ID: "pouch", Kind: character.KindGear, Bulk: 1, Quantity: 1, IsContainer: true, Capacity: 1, ContainerID: "backpack"},
		{ID: "gem", Kind: character.KindGear, Bulk: 0.5, Quantity: 1, ContainerID: "pouch"},
	}
	res := encumbrance.Derive(carrier(10), items)
	// backpack own 1 + pouch own 1 + gem 0.5; the pouch appears only
	// through its own entry, never in the backpack's contents.
	if res.Total != 2.5 {
		t.Errorf("Total = %v, want 2.5", res.Total)
	}
	for _, cb := range res.Containers {
		if cb.ItemID == "backpack" && cb.Contents != 0 {
			t.Errorf("backpack Contents = %v, want 0", cb.Contents)
		}
		if cb.ItemID == "pouch" && cb.Contents != 0.5 {
			t.Errorf("pouch Contents = %v, want 0.5", cb.Contents)
		}
	}
}

func TestDerive_DanglingContainerRefFallsBackToRoot(t *testing.T) {
	items := []character.EquippedItem{
		{ID: "rope", Kind: character.KindGear, Bulk: 1, Quantity: 1, ContainerID: "no-such-pack"},
	}
	res := encumbrance.Derive(carrier(10), items)
	if res.Root != 1 {
		t.Errorf("Root = %v, want 1 (dangling ref treated as root)", res.Root)
	}
}

func TestCanAddItem_AllowsOneOverage(t *testing.T) {
	c := carrier(10) // limit 5, allowed up to 6
	items := []character.EquippedItem{
		{ID: "gear", Kind: character.KindGear, Bulk: 5, Quantity: 1},
	}
	light := character.EquippedItem{ID: "new", Kind: character.KindGear, Bulk: 1, Quantity: 1}
	heavy := character.EquippedItem{ID: "new", Kind: character.KindGear, Bulk: 1.5, Quantity: 1}
	if !encumbrance.CanAddItem(c, items, light, "") {
		t.Error("adding to exactly limit+1 should be allowed")
	}
	if encumbrance.CanAddItem(c, items, heavy, "") {
		t.Error("adding past limit+1 should be rejected")
	}
	if len(items) != 1 {
		t.Error("CanAddItem must not mutate the inventory")
	}
}

func TestCanAddItem_ChecksContainerCapacity(t *testing.T) {
	c := carrier(18)
	items := []character.EquippedItem{
		{ID: "pouch", Kind: character.KindGear, Bulk: 0.1, Quantity: 1, IsContainer: true, Capacity: 1},
		{ID: "gem", Kind: character.KindGear, Bulk: 0.8, Quantity: 1, ContainerID: "pouch"},
	}
	small := character.EquippedItem{ID: "coin-pile", Kind: character.KindGear, Bulk: 0.2, Quantity: 1}
	big := character.EquippedItem{ID: "idol", Kind: character.KindGear, Bulk: 0.5, Quantity: 1}
	if !encumbrance.CanAddItem(c, items, small, "pouch") {
		t.Error("item fitting remaining capacity should be allowed")
	}
	if encumbrance.CanAddItem(c, items, big, "pouch") {
		t.Error("item exceeding remaining capacity should be rejected")
	}
	if encumbrance.CanAddItem(c, items, small, "gem") {
		t.Error("targeting a non-container should be rejected")
	}
}

func TestDerive_Property_TotalNonNegativeAndStable(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 10).Draw(rt, "n")
		var items []character.EquippedItem
		for i := 0; i < n; i++ {
			items = append(items, character.EquippedItem{
				ID:       rapid.StringMatching(`it[0-9]`).Draw(rt, "id"),
				Kind:     character.KindGear,
				Bulk:     float64(rapid.IntRange(0, 40).Draw(rt, "bulk10")) / 10,
				Quantity: rapid.IntRange(1, 5).Draw(rt, "qty"),
			})
		}
		c := carrier(rapid.IntRange(1, 24).Draw(rt, "str"))
		r1 := encumbrance.Derive(c, items)
		r2 := encumbrance.Derive(c, items)
		if r1.Total < 0 {
			rt.Fatalf("negative total: %+v", r1)
		}
		if r1.Total != r2.Total || r1.Level != r2.Level {
			rt.Fatalf("Derive is not deterministic: %+v vs %+v", r1, r2)
		}
	})
}
