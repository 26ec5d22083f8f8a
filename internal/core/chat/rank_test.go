package chat

import (
	"testing"

	"miamiam-bot/internal/core/menu"
)

func testCatalog() *menu.Catalog {
	return menu.New(map[string][]menu.MenuItem{
		"Mak Cik Corner": {
			{Name: "Nasi Lemak", Price: 5, Tags: []string{"spicy", "halal"}, Ingredients: []string{"rice", "egg", "chicken"}},
			{Name: "Teh Tarik", Price: 3, Tags: []string{"drink", "sweet", "hot"}},
		},
		"Warung Siti": {
			{Name: "Beef Rendang", Price: 12, Tags: []string{"spicy", "halal"}, Ingredients: []string{"beef", "rice"}},
			{Name: "Garden Salad", Price: 8, Tags: []string{"healthy", "cold"}, Ingredients: []string{"vegetable"}},
		},
	})
}

func names(candidates []Candidate) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.Item.Name)
	}
	return out
}

func contains(list []string, name string) bool {
	for _, n := range list {
		if n == name {
			return true
		}
	}
	return false
}

func TestRankConjunctiveTags(t *testing.T) {
	got := names(Rank(testCatalog(), Preferences{"spicy": true, "halal": true}))

	if len(got) != 2 {
		t.Fatalf("candidates = %v, want 2 items", got)
	}
	if !contains(got, "Nasi Lemak") || !contains(got, "Beef Rendang") {
		t.Errorf("candidates = %v, want Nasi Lemak and Beef Rendang", got)
	}
}

func TestRankPriceWindow(t *testing.T) {
	got := names(Rank(testCatalog(), Preferences{KeyMinPrice: 4.0, KeyMaxPrice: 10.0}))

	if len(got) != 2 || !contains(got, "Nasi Lemak") || !contains(got, "Garden Salad") {
		t.Errorf("candidates = %v, want [Nasi Lemak Garden Salad]", got)
	}
}

func TestRankIngredientExpansion(t *testing.T) {
	// meat 展開成 beef/chicken 等，兩道菜都要命中
	got := names(Rank(testCatalog(), Preferences{KeyIngredients: []string{"meat"}}))

	if len(got) != 2 || !contains(got, "Nasi Lemak") || !contains(got, "Beef Rendang") {
		t.Errorf("candidates = %v, want Nasi Lemak and Beef Rendang", got)
	}
}

func TestRankUnknownIngredientExpandsToItself(t *testing.T) {
	got := names(Rank(testCatalog(), Preferences{KeyIngredients: []string{"vegetable"}}))

	if len(got) != 1 || got[0] != "Garden Salad" {
		t.Errorf("candidates = %v, want [Garden Salad]", got)
	}
}

func TestRankOnlyDrink(t *testing.T) {
	got := names(Rank(testCatalog(), Preferences{KeyOnlyDrink: true}))

	if len(got) != 1 || got[0] != "Teh Tarik" {
		t.Errorf("candidates = %v, want [Teh Tarik]", got)
	}
}

func TestRankNegativeTagsDoNotFilter(t *testing.T) {
	// 否定標籤目前只收集不套用
	got := Rank(testCatalog(), Preferences{KeyNotDrink: true, "not spicy": true})

	if len(got) != 4 {
		t.Errorf("got %d candidates, want all 4", len(got))
	}
}

func TestRankCheapestOrder(t *testing.T) {
	got := names(Rank(testCatalog(), Preferences{KeyCheapest: true}))

	want := []string{"Teh Tarik", "Nasi Lemak", "Garden Salad", "Beef Rendang"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cheapest order = %v, want %v", got, want)
		}
	}
}

func TestRankScoreTieBreaksOnPrice(t *testing.T) {
	got := names(Rank(testCatalog(), Preferences{"spicy": true}))

	want := []string{"Nasi Lemak", "Beef Rendang"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestRankEmptyPreferencesReturnsEverything(t *testing.T) {
	if got := Rank(testCatalog(), Preferences{}); len(got) != 4 {
		t.Errorf("got %d candidates, want 4", len(got))
	}
}
