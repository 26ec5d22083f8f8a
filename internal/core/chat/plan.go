package chat

import (
	"fmt"
	"math/rand"

	"miamiam-bot/internal/core/menu"
)

// PlanEntry 計畫中的一天：餐廳與品項可能為空（無符合項目）
type PlanEntry struct {
	Label      string
	Restaurant string
	Item       *menu.MenuItem
	Price      float64
}

// GenerateMealPlan 產生 N 天的餐點計畫。
// 候選清單洗牌一次後逐日挑選：優先挑本次計畫還沒用過的
// （餐廳, 品項名）組合，全部用過時退回整個候選池隨機抽，
// 保證只要有候選就不會留空。無候選時回傳 N 個空白天、總價 0。
func GenerateMealPlan(catalog *menu.Catalog, prefs Preferences, days int, rng *rand.Rand) ([]PlanEntry, float64) {
	matches := Rank(catalog, prefs)

	if len(matches) == 0 {
		entries := make([]PlanEntry, 0, days)
		for day := 1; day <= days; day++ {
			entries = append(entries, PlanEntry{Label: fmt.Sprintf("Day %d", day)})
		}
		return entries, 0
	}

	rng.Shuffle(len(matches), func(i, j int) {
		matches[i], matches[j] = matches[j], matches[i]
	})

	type usedKey struct {
		restaurant string
		name       string
	}
	used := map[usedKey]bool{}

	entries := make([]PlanEntry, 0, days)
	total := 0.0

	for day := 1; day <= days; day++ {
		var available []Candidate
		for _, c := range matches {
			if !used[usedKey{c.Restaurant, c.Item.Name}] {
				available = append(available, c)
			}
		}

		var pick Candidate
		if len(available) > 0 {
			pick = available[rng.Intn(len(available))]
			used[usedKey{pick.Restaurant, pick.Item.Name}] = true
		} else {
			pick = matches[rng.Intn(len(matches))]
		}

		item := pick.Item
		entries = append(entries, PlanEntry{
			Label:      fmt.Sprintf("Day %d", day),
			Restaurant: pick.Restaurant,
			Item:       &item,
			Price:      item.Price,
		})
		total += item.Price
	}

	return entries, total
}
