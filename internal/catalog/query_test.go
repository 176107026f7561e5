package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByCategory(t *testing.T) {
	all := ByCategory(CategoryAll)
	assert.Len(t, all, len(Products))

	empty := ByCategory("")
	assert.Len(t, empty, len(Products), "empty id selects the whole catalog")

	promo := ByCategory(CategoryPromo)
	require.NotEmpty(t, promo)
	for _, p := range promo {
		assert.True(t, p.IsPromo)
	}

	auto := ByCategory("automobile")
	require.Len(t, auto, 2)
	for _, p := range auto {
		assert.Equal(t, "automobile", p.Category)
	}

	assert.Empty(t, ByCategory("nope"), "unknown category yields an empty list, not an error")
}

func TestByCategoryDoesNotAliasCatalog(t *testing.T) {
	all := ByCategory(CategoryAll)
	all[0].Name = "mutated"
	assert.NotEqual(t, "mutated", Products[0].Name)
}

func TestSearch(t *testing.T) {
	assert.Empty(t, Search(""), "search is opt-in")
	assert.Empty(t, Search("   "), "blank query returns nothing")

	// case-insensitive brand match
	got := Search("CASTROL")
	require.Len(t, got, 1)
	assert.Equal(t, "castrol-edge-5w30-ll", got[0].ID)

	// barcode is matched as-is
	assert.Len(t, Search("3374650021613"), 1)

	// spec strings count as fields
	got = Search("bluetooth")
	require.Len(t, got, 1)
	assert.Equal(t, "wireless-buds", got[0].ID)

	// type field
	assert.NotEmpty(t, Search("audio"))

	assert.Empty(t, Search("zzz-no-such-product"))
}

func TestSearchResultOrderIsCatalogOrder(t *testing.T) {
	// "pro" hits several products; results must come back in catalog order.
	got := Search("pro")
	require.True(t, len(got) >= 2)
	prev := -1
	for _, g := range got {
		idx := indexOf(g.ID)
		require.Greater(t, idx, prev)
		prev = idx
	}
}

func indexOf(id string) int {
	for i, p := range Products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func TestSortPrice(t *testing.T) {
	asc := Sort(Products, SortPriceAsc)
	for i := 1; i < len(asc); i++ {
		assert.False(t, asc[i].Price.LessThan(asc[i-1].Price))
	}

	desc := Sort(Products, SortPriceDesc)
	for i := 1; i < len(desc); i++ {
		assert.False(t, desc[i-1].Price.LessThan(desc[i].Price))
	}
}

func TestSortRatingDescending(t *testing.T) {
	got := Sort(Products, SortRating)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Rating, got[i].Rating)
	}
}

func TestSortNewestIsStable(t *testing.T) {
	got := Sort(Products, SortNewest)

	// new-flagged items first
	seenOld := false
	for _, p := range got {
		if !p.IsNew {
			seenOld = true
		} else {
			assert.False(t, seenOld, "a new item appeared after a non-new one")
		}
	}

	// ties keep catalog order within each group
	prev := -1
	for _, p := range got {
		if !p.IsNew {
			continue
		}
		idx := indexOf(p.ID)
		assert.Greater(t, idx, prev)
		prev = idx
	}
	prev = -1
	for _, p := range got {
		if p.IsNew {
			continue
		}
		idx := indexOf(p.ID)
		assert.Greater(t, idx, prev)
		prev = idx
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	in := ByCategory(CategoryAll)
	first := in[0].ID
	_ = Sort(in, SortPriceDesc)
	assert.Equal(t, first, in[0].ID)
}

func TestSortUnknownKeyPassesThrough(t *testing.T) {
	in := ByCategory(CategoryAll)
	got := Sort(in, "whatever")
	require.Equal(t, len(in), len(got))
	for i := range in {
		assert.Equal(t, in[i].ID, got[i].ID)
	}
}

func TestNewAndPromoSubsets(t *testing.T) {
	for _, p := range NewProducts() {
		assert.True(t, p.IsNew)
	}
	for _, p := range PromoProducts() {
		assert.True(t, p.IsPromo)
	}
}

func TestProductByID(t *testing.T) {
	p, ok := ProductByID("serum-glow")
	require.True(t, ok)
	assert.Equal(t, "Lumière", p.Brand)

	_, ok = ProductByID("missing")
	assert.False(t, ok)
}
