package menu

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"12/15", 12},
		{"8.50", 8.5},
		{" 7 / 9", 7},
		{"free", UnknownPrice},
		{"", UnknownPrice},
	}

	for _, tt := range tests {
		if got := ParsePrice(tt.in); got != tt.want {
			t.Errorf("ParsePrice(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func writeMenuFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menu.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write menu file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeMenuFile(t, `{
		"Mak Cik Corner": [
			{"name": "Nasi Lemak", "price": "5/7", "tags": ["Spicy", "HALAL"], "ingredients": ["Rice", "Egg"]},
			{"name": "Teh Tarik", "price": 3.5, "tags": ["drink", "sweet"], "ingredients": []}
		],
		"Ah Hock Kopitiam": [
			{"name": "Mystery Special", "tags": ["hot"]},
			{"name": "Laksa", "Price (MYR)": "9", "tags": ["spicy"], "ingredients": ["noodles"]}
		]
	}`)

	catalog, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	wantNames := []string{"Ah Hock Kopitiam", "Mak Cik Corner"}
	names := catalog.Restaurants()
	if len(names) != len(wantNames) {
		t.Fatalf("Restaurants() = %v, want %v", names, wantNames)
	}
	for i, name := range wantNames {
		if names[i] != name {
			t.Errorf("Restaurants()[%d] = %q, want %q", i, names[i], name)
		}
	}

	if catalog.Size() != 4 {
		t.Errorf("Size() = %d, want 4", catalog.Size())
	}

	items := catalog.Items("Mak Cik Corner")
	if items[0].Price != 5 {
		t.Errorf("slash price = %v, want 5", items[0].Price)
	}
	if !items[0].HasTag("spicy") || !items[0].HasTag("halal") {
		t.Errorf("tags not lowercased: %v", items[0].Tags)
	}
	if items[0].Ingredients[0] != "rice" {
		t.Errorf("ingredients not lowercased: %v", items[0].Ingredients)
	}
	if items[1].Price != 3.5 {
		t.Errorf("numeric price = %v, want 3.5", items[1].Price)
	}

	items = catalog.Items("Ah Hock Kopitiam")
	if items[0].Price != UnknownPrice {
		t.Errorf("missing price = %v, want %v", items[0].Price, float64(UnknownPrice))
	}
	if items[1].Price != 9 {
		t.Errorf("Price (MYR) fallback = %v, want 9", items[1].Price)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("Load() expected error for missing file")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeMenuFile(t, `{"broken": `)
	if _, err := Load(path); err == nil {
		t.Fatal("Load() expected error for malformed JSON")
	}
}

func TestHasTag(t *testing.T) {
	item := MenuItem{Tags: []string{"spicy", "halal"}}
	if !item.HasTag("spicy") {
		t.Error("HasTag(spicy) = false, want true")
	}
	if item.HasTag("sweet") {
		t.Error("HasTag(sweet) = true, want false")
	}
}
