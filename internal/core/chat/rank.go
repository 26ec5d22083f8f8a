package chat

import (
	"math"
	"sort"
	"strings"

	"miamiam-bot/internal/core/menu"
)

// ingredientSynonyms 食材同義詞展開表：需求食材對上品項食材時，
// 任一展開詞命中即算符合；查無展開的食材只展開成自己
var ingredientSynonyms = map[string][]string{
	"meat":   {"beef", "chicken", "lamb", "duck", "turkey"},
	"noodle": {"maggie", "ramen", "instant noodles", "mee"},
	"rice":   {"nasi", "fried rice", "steamed rice"},
	"chili":  {"sambal", "spicy"},
	"egg":    {"telur"},
	"cheese": {"cheddar", "mozzarella"},
}

// Candidate 通過過濾的（餐廳, 品項）
type Candidate struct {
	Restaurant string
	Item       menu.MenuItem
}

type scoredCandidate struct {
	score      int
	price      float64
	restaurant string
	item       menu.MenuItem
}

// Rank 依偏好過濾並排序整份菜單，回傳完整候選清單（不截斷）。
// 過濾條件：價格落在 [min_price, max_price]、所有正向標籤都要在
// 品項標籤內（交集式）、需求食材展開後與品項食材有交集。
// 否定標籤目前只收集不過濾，沿用既有行為（見 DESIGN.md）。
func Rank(catalog *menu.Catalog, prefs Preferences) []Candidate {
	positiveTags := map[string]bool{}
	negativeTags := map[string]bool{}

	for key := range prefs {
		if key == KeyOnlyDrink || key == KeyNotDrink {
			continue
		}
		if strings.HasPrefix(key, "not ") {
			negativeTags[strings.TrimPrefix(key, "not ")] = true
			continue
		}
		switch key {
		case KeyMaxPrice, KeyMinPrice, KeyIngredients, KeyCheapest:
		default:
			positiveTags[key] = true
		}
	}
	if prefs.Bool(KeyOnlyDrink) {
		positiveTags["drink"] = true
	}
	if prefs.Bool(KeyNotDrink) {
		negativeTags["drink"] = true
	}
	_ = negativeTags // 收集但不套用

	// 需求食材經同義詞展開
	expanded := map[string]bool{}
	required := prefs.Strings(KeyIngredients)
	for _, ing := range required {
		ing = strings.ToLower(ing)
		syns, ok := ingredientSynonyms[ing]
		if !ok {
			expanded[ing] = true
			continue
		}
		for _, s := range syns {
			expanded[s] = true
		}
	}

	minPrice := 0.0
	if v, ok := prefs.Float(KeyMinPrice); ok {
		minPrice = v
	}
	maxPrice := math.Inf(1)
	if v, ok := prefs.Float(KeyMaxPrice); ok {
		maxPrice = v
	}

	var scored []scoredCandidate
	for _, restaurant := range catalog.Restaurants() {
		for _, item := range catalog.Items(restaurant) {
			if item.Price < minPrice || item.Price > maxPrice {
				continue
			}

			if !hasAllTags(&item, positiveTags) {
				continue
			}

			if len(required) > 0 && !intersects(item.Ingredients, expanded) {
				continue
			}

			// 交集式過濾下分數恆等於正向標籤數，
			// 保留計分是為了之後放寬成部分符合
			score := 0
			for tag := range positiveTags {
				if item.HasTag(tag) {
					score++
				}
			}
			scored = append(scored, scoredCandidate{score, item.Price, restaurant, item})
		}
	}

	if prefs.Bool(KeyCheapest) {
		sort.SliceStable(scored, func(i, j int) bool {
			if scored[i].price != scored[j].price {
				return scored[i].price < scored[j].price
			}
			return scored[i].score > scored[j].score
		})
	} else {
		sort.SliceStable(scored, func(i, j int) bool {
			if scored[i].score != scored[j].score {
				return scored[i].score > scored[j].score
			}
			return scored[i].price < scored[j].price
		})
	}

	out := make([]Candidate, 0, len(scored))
	for _, s := range scored {
		out = append(out, Candidate{Restaurant: s.restaurant, Item: s.item})
	}
	return out
}

func hasAllTags(item *menu.MenuItem, tags map[string]bool) bool {
	for tag := range tags {
		if !item.HasTag(tag) {
			return false
		}
	}
	return true
}

func intersects(ingredients []string, expanded map[string]bool) bool {
	for _, ing := range ingredients {
		if expanded[ing] {
			return true
		}
	}
	return false
}
