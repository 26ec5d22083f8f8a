package chat

import (
	"regexp"
	"strconv"
	"strings"
)

// Intent 單則訊息的處理路徑，每則訊息只會走其中一條
type Intent int

const (
	IntentReset Intent = iota
	IntentDayPlan
	IntentMealPlan
	IntentFood
	IntentFollowUp
	IntentFallback
)

func (i Intent) String() string {
	switch i {
	case IntentReset:
		return "reset"
	case IntentDayPlan:
		return "day_plan"
	case IntentMealPlan:
		return "meal_plan"
	case IntentFood:
		return "food"
	case IntentFollowUp:
		return "follow_up"
	default:
		return "fallback"
	}
}

// resetPhrases 任一出現即視為重置請求，優先於其他所有意圖
var resetPhrases = []string{
	"reset", "start over", "forget", "clear", "new search", "restart", "begin again",
}

// followUpPhrases 請求換一個建議的片語
var followUpPhrases = []string{
	"something else", "another", "anything else", "more",
}

// foodKeywords 食物／飲料請求的關鍵詞
var foodKeywords = []string{
	"halal", "spicy", "sweet", "healthy", "cold", "hot",
	"recommend", "food", "eat", "meal", "dish", "menu",
	"something to eat", "want to eat", "with", "including",
	"have", "containing", "drink", "cheapest",
}

// ingredientKeywords 常見食材詞，同樣觸發食物請求
var ingredientKeywords = []string{
	"meat", "chicken", "beef", "cheese", "egg", "rice", "noodle", "burger", "fish",
}

var (
	planDaysRe  = regexp.MustCompile(`(\d+)\s*(?:days?|meals?)\b`)
	foodPriceRe = regexp.MustCompile(`(?:under|less than|max(?:imum)?|have|budget|from|between)?\s*\d+(?:\.\d+)?\s*(?:rm|myr|ringgit)?`)
)

// weekKeywords 出現即視為 7 天計畫
var weekKeywords = []string{"week", "weekly", "7 day", "seven days"}

// IsResetRequest 檢查是否為重置請求
func IsResetRequest(message string) bool {
	m := strings.ToLower(message)
	for _, phrase := range resetPhrases {
		if strings.Contains(m, phrase) {
			return true
		}
	}
	return false
}

// PlanDays 解析 N 天／N 餐的計畫請求，週相關詞視為 7 天
func PlanDays(message string) (int, bool) {
	m := NormalizeMessage(message)

	if match := planDaysRe.FindStringSubmatch(m); match != nil {
		days, err := strconv.Atoi(match[1])
		if err == nil {
			return days, true
		}
	}

	for _, kw := range weekKeywords {
		if strings.Contains(m, kw) {
			return 7, true
		}
	}

	return 0, false
}

// IsFoodRequest 檢查是否為食物／飲料請求
func IsFoodRequest(message string) bool {
	m := strings.ToLower(message)
	for _, kw := range foodKeywords {
		if strings.Contains(m, kw) {
			return true
		}
	}
	for _, kw := range ingredientKeywords {
		if strings.Contains(m, kw) {
			return true
		}
	}
	return foodPriceRe.MatchString(m)
}

// IsFollowUpRequest 檢查是否為「再推薦一個」的請求
func IsFollowUpRequest(message string) bool {
	m := strings.ToLower(message)
	for _, phrase := range followUpPhrases {
		if strings.Contains(m, phrase) {
			return true
		}
	}
	return false
}

// Classify 依固定優先序判斷訊息意圖：
// Reset > 天數計畫 > 餐數計畫 > 食物請求 > 追加推薦 > 閒聊後備
func Classify(message string, prefs Preferences) Intent {
	if IsResetRequest(message) {
		return IntentReset
	}
	if _, ok := PlanDays(message); ok {
		return IntentDayPlan
	}
	if _, ok := prefs[KeyMealPlanCount]; ok {
		return IntentMealPlan
	}
	if IsFoodRequest(message) {
		return IntentFood
	}
	if IsFollowUpRequest(message) {
		return IntentFollowUp
	}
	return IntentFallback
}
