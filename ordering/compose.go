// Package ordering turns a customer's cart into the order lines the
// order-creation endpoint expects. Units of the same dish that share a
// skip-set are merged into one line; units that differ are split into
// single-quantity lines, since a line carries exactly one skip-set.
package ordering

import (
	"errors"
	"sort"
)

// ErrEmptyCart is returned when no dish has a positive quantity.
// Callers show a prompt instead of submitting an empty order.
var ErrEmptyCart = errors.New("no dishes selected")

// DishSelection is one cart entry. UnitCustomizations holds one skip-set
// per unit of the dish; the cart UI keeps its length in sync with
// Quantity, but Compose repairs drift rather than trusting it.
type DishSelection struct {
	DishID             int
	Quantity           int
	UnitCustomizations [][]int
}

// OrderLine is a single submission row. SkippedIngredients applies to
// every unit counted by Quantity.
type OrderLine struct {
	DishID             int   `json:"DishId"`
	Quantity           int   `json:"Quantity"`
	SkippedIngredients []int `json:"SkippedIngredients"`
}

// Compose flattens the cart into submission rows, iterating dishes in
// ascending id so output is reproducible. Selections with zero quantity
// are ignored; if nothing remains, ErrEmptyCart is returned.
func Compose(selections map[int]DishSelection) ([]OrderLine, error) {
	dishIDs := make([]int, 0, len(selections))
	for id := range selections {
		dishIDs = append(dishIDs, id)
	}
	sort.Ints(dishIDs)

	var lines []OrderLine
	for _, id := range dishIDs {
		sel := selections[id]
		if sel.Quantity <= 0 {
			continue
		}
		lines = append(lines, composeDish(id, sel)...)
	}

	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	return lines, nil
}

func composeDish(dishID int, sel DishSelection) []OrderLine {
	sets := normalizeSets(sel.UnitCustomizations, sel.Quantity)

	if allIdentical(sets) {
		return []OrderLine{{
			DishID:             dishID,
			Quantity:           sel.Quantity,
			SkippedIngredients: sets[0],
		}}
	}

	lines := make([]OrderLine, 0, len(sets))
	for _, set := range sets {
		lines = append(lines, OrderLine{
			DishID:             dishID,
			Quantity:           1,
			SkippedIngredients: set,
		})
	}
	return lines
}

// normalizeSets repairs a customization list whose length drifted from
// the quantity: missing units get empty skip-sets, excess entries are
// dropped from the tail. Each set is sorted and deduplicated so that
// comparison is by set membership, not recording order.
func normalizeSets(units [][]int, quantity int) [][]int {
	sets := make([][]int, quantity)
	for i := 0; i < quantity; i++ {
		if i < len(units) {
			sets[i] = normalizeSet(units[i])
		} else {
			sets[i] = []int{}
		}
	}
	return sets
}

func normalizeSet(ids []int) []int {
	if len(ids) == 0 {
		return []int{}
	}
	sorted := make([]int, len(ids))
	copy(sorted, ids)
	sort.Ints(sorted)

	out := sorted[:1]
	for _, id := range sorted[1:] {
		if id != out[len(out)-1] {
			out = append(out, id)
		}
	}
	return out
}

func allIdentical(sets [][]int) bool {
	for _, set := range sets[1:] {
		if !equalSets(sets[0], set) {
			return false
		}
	}
	return true
}

func equalSets(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
