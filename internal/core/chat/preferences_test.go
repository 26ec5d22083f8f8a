package chat

import (
	"reflect"
	"testing"
)

func TestExtractCombined(t *testing.T) {
	prefs := Extract("I want something spicy under 15 rm with chicken")

	if !prefs.Bool("spicy") {
		t.Error("expected spicy=true")
	}
	if v, ok := prefs.Float(KeyMaxPrice); !ok || v != 15 {
		t.Errorf("max_price = %v (ok=%v), want 15", v, ok)
	}

	ingredients := prefs.Strings(KeyIngredients)
	want := []string{"something", "chicken"}
	if !reflect.DeepEqual(ingredients, want) {
		t.Errorf("ingredients = %v, want %v", ingredients, want)
	}
}

func TestExtractPriceRange(t *testing.T) {
	prefs := Extract("something between 10 and 20 ringgit")

	if v, ok := prefs.Float(KeyMinPrice); !ok || v != 10 {
		t.Errorf("min_price = %v (ok=%v), want 10", v, ok)
	}
	if v, ok := prefs.Float(KeyMaxPrice); !ok || v != 20 {
		t.Errorf("max_price = %v (ok=%v), want 20", v, ok)
	}
}

func TestExtractPriceFallback(t *testing.T) {
	prefs := Extract("food for 12.50 rm")

	if v, ok := prefs.Float(KeyMaxPrice); !ok || v != 12.5 {
		t.Errorf("max_price = %v (ok=%v), want 12.5", v, ok)
	}
	if _, ok := prefs.Float(KeyMinPrice); ok {
		t.Error("min_price should not be set for a bare price mention")
	}
}

func TestExtractEatOverridesDrink(t *testing.T) {
	prefs := Extract("i want to eat something to drink with")

	if !prefs.Bool(KeyNotDrink) {
		t.Error("expected not drink=true when message mentions eat")
	}
	if prefs.Bool(KeyOnlyDrink) {
		t.Error("only drink must not be set when eat is present")
	}

	prefs = Extract("something to drink please")
	if !prefs.Bool(KeyOnlyDrink) {
		t.Error("expected only drink=true for drink-only message")
	}
}

func TestExtractNegatedTag(t *testing.T) {
	prefs := Extract("not spicy please")

	if !prefs.Bool("not spicy") {
		t.Error("expected not spicy=true")
	}
	if prefs.Bool("spicy") {
		t.Error("spicy must not be set when negated")
	}
}

func TestExtractVegetarian(t *testing.T) {
	prefs := Extract("i am vegetarian")

	if !prefs.Bool("not meat") || !prefs.Bool("not fish") {
		t.Errorf("vegetarian should exclude meat and fish, got %v", prefs)
	}
}

func TestExtractAfterGym(t *testing.T) {
	if !Extract("what should i have after gym").Bool("after_gym") {
		t.Error("expected after_gym=true")
	}
	if !Extract("post workout snack").Bool("after_gym") {
		t.Error("expected after_gym=true for post workout")
	}
}

func TestExtractCheapest(t *testing.T) {
	for _, msg := range []string{"cheapest option", "lowest price please", "least expensive food"} {
		if !Extract(msg).Bool(KeyCheapest) {
			t.Errorf("Extract(%q) missing cheapest", msg)
		}
	}
}

func TestExtractMealPlan(t *testing.T) {
	prefs := Extract("suggest 3 spicy")
	if n, ok := prefs.Int(KeyMealPlanCount); !ok || n != 3 {
		t.Errorf("meal_plan_count = %v (ok=%v), want 3", n, ok)
	}
	tags := prefs.Strings(KeyTags)
	if len(tags) != 1 || tags[0] != "spicy" {
		t.Errorf("tags = %v, want [spicy]", tags)
	}

	prefs = Extract("plan me a meal plan of 4")
	if n, ok := prefs.Int(KeyMealPlanCount); !ok || n != 4 {
		t.Errorf("meal_plan_count = %v (ok=%v), want 4", n, ok)
	}
}

func TestExtractIngredientAliases(t *testing.T) {
	prefs := Extract("i want chiken with keju")

	ingredients := prefs.Strings(KeyIngredients)
	want := []string{"chicken", "cheese"}
	if !reflect.DeepEqual(ingredients, want) {
		t.Errorf("ingredients = %v, want %v", ingredients, want)
	}
}

func TestExtractIngredientsSkipDigitsAndDedup(t *testing.T) {
	prefs := Extract("i want 3 with egg and need telur")

	ingredients := prefs.Strings(KeyIngredients)
	want := []string{"egg"}
	if !reflect.DeepEqual(ingredients, want) {
		t.Errorf("ingredients = %v, want %v", ingredients, want)
	}
}

func TestPreferencesClone(t *testing.T) {
	p := Preferences{"spicy": true, KeyMaxPrice: 10.0}
	c := p.Clone()
	c["spicy"] = false
	c[KeyMinPrice] = 5.0

	if !p.Bool("spicy") {
		t.Error("Clone() must not share state with the original")
	}
	if _, ok := p.Float(KeyMinPrice); ok {
		t.Error("Clone() must not leak new keys into the original")
	}
}
