package chat

import (
	"fmt"
	"strings"

	"miamiam-bot/internal/core/menu"
	"miamiam-bot/internal/pkg/common"
)

// 固定回覆文案
const (
	GreetingText = "🍜 Hello! I'm Miammiam, your food buddy. Tell me what you're craving!"

	resetText        = "🔄 Preferences reset! Let's start fresh. What would you like to eat or drink?"
	noMatchText      = "😓 Sorry, I couldn't find anything that matches all your preferences."
	noSuggestionText = "🤔 I haven't recommended anything yet! Try asking for food first."
	noMoreText       = "🙈 No more options for now. You've seen it all!"
	chatOfflineText  = "😅 My brain is taking a nap right now. Ask me about food instead!"
)

// formatSuggestion 單一推薦
func formatSuggestion(restaurant string, item menu.MenuItem) string {
	return fmt.Sprintf("🍽 How about %s from %s?\n💸 RM%.2f\n🏷 Tags: %s",
		item.Name, restaurant, item.Price, common.StringSliceToString(item.Tags))
}

// formatAnotherSuggestion 追加推薦
func formatAnotherSuggestion(restaurant string, item menu.MenuItem) string {
	return fmt.Sprintf("🍽 Here's another idea: %s from %s!\n💸 RM%.2f\n🏷 %s",
		item.Name, restaurant, item.Price, common.StringSliceToString(item.Tags))
}

// formatPlan N 天計畫
func formatPlan(entries []PlanEntry, total float64, days int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📅 %d-Day Meal Plan\n\n", days)
	for _, e := range entries {
		if e.Item == nil {
			fmt.Fprintf(&sb, "• %s: No matching meal found\n", e.Label)
			continue
		}
		fmt.Fprintf(&sb, "• %s: %s from %s — RM%.2f\n", e.Label, e.Item.Name, e.Restaurant, e.Price)
		if len(e.Item.Ingredients) > 0 {
			fmt.Fprintf(&sb, "  Ingredients: %s\n", common.StringSliceToString(e.Item.Ingredients))
		}
		if len(e.Item.Tags) > 0 {
			fmt.Fprintf(&sb, "  Tags: %s\n", common.StringSliceToString(e.Item.Tags))
		}
	}
	fmt.Fprintf(&sb, "\n💰 Total estimated cost: RM%.2f", total)
	return sb.String()
}

// formatMealCountPlan N 餐計畫
func formatMealCountPlan(meals []Candidate) string {
	var sb strings.Builder
	sb.WriteString("🍽 Here's your meal plan:\n")
	for i, c := range meals {
		fmt.Fprintf(&sb, "\n🍱 Meal %d: %s from %s - RM%.2f", i+1, c.Item.Name, c.Restaurant, c.Item.Price)
	}
	return sb.String()
}
