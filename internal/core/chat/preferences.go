package chat

import (
	"regexp"
	"strconv"
	"strings"
)

// Preferences 單次解析產生的偏好集合，僅存活一個回合，
// 由 Session.Update 合併進對話狀態
type Preferences map[string]interface{}

// 偏好鍵名
const (
	KeyMinPrice      = "min_price"
	KeyMaxPrice      = "max_price"
	KeyIngredients   = "ingredients"
	KeyCheapest      = "cheapest"
	KeyMealPlanCount = "meal_plan_count"
	KeyTags          = "tags"
	KeyOnlyDrink     = "only drink"
	KeyNotDrink      = "not drink"
)

// supportedTags 可辨識的菜單標籤
var supportedTags = []string{"halal", "spicy", "sweet", "healthy", "cold", "hot", "after_gym"}

var (
	mealPlanRe = regexp.MustCompile(
		`\b(?:plan|suggest|recommend|give me|i want|i need|can you (?:plan|suggest|recommend))\s*(?:me|us|meals?|dishes?)?\s*(?:a\s*)?(?:meal\s*plan\s*(?:of)?\s*)?(?P<count>\d+)\s*(?P<tags>[\w\s]*)`)

	priceRangeRe = regexp.MustCompile(
		`(?:between|from)\s*(\d+(?:\.\d+)?)\s*(?:rm|myr)?\s*(?:to|and|-)\s*(\d+(?:\.\d+)?)\s*(?:rm|myr)?`)
	priceSingleRe = regexp.MustCompile(
		`(?:under|less than|maximum|max|have|budget)\s*(?:is\s*)?(\d+(?:\.\d+)?)\s*(?:rm|myr)?`)
	priceFallbackRe = regexp.MustCompile(
		`(\d+(?:\.\d+)?)\s*(?:rm|myr)`)

	ingredientPhraseRe = regexp.MustCompile(
		`(?:with|including|containing|has|have|want|eat|like|get|need)\s+(?:some\s+)?(\w+)`)

	digitsOnlyRe = regexp.MustCompile(`^\d+$`)
)

// Bool 讀取布林偏好，缺鍵視為 false
func (p Preferences) Bool(key string) bool {
	v, ok := p[key]
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

// Float 讀取數值偏好
func (p Preferences) Float(key string) (float64, bool) {
	v, ok := p[key]
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}

// Int 讀取整數偏好
func (p Preferences) Int(key string) (int, bool) {
	v, ok := p[key]
	if !ok {
		return 0, false
	}
	n, ok := v.(int)
	return n, ok
}

// Strings 讀取字串列表偏好
func (p Preferences) Strings(key string) []string {
	v, ok := p[key]
	if !ok {
		return nil
	}
	s, _ := v.([]string)
	return s
}

// Clone 複製偏好集合（淺拷貝即可，值不會被原地修改）
func (p Preferences) Clone() Preferences {
	out := make(Preferences, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Extract 將正規化後的訊息逐條規則解析成偏好集合。
// 規則彼此獨立，一則訊息可同時填入多個鍵。
func Extract(message string) Preferences {
	m := NormalizeMessage(strings.ToLower(message))
	prefs := Preferences{}

	// 餐數計畫：動詞片語 + 可選的 meal plan 字樣 + 數字，
	// 數字後面的詞若是支援的標籤則一併收集
	if match := mealPlanRe.FindStringSubmatch(m); match != nil {
		count, err := strconv.Atoi(match[1])
		if err == nil {
			prefs[KeyMealPlanCount] = count
		}

		if tagPart := match[2]; tagPart != "" {
			var tags []string
			for _, word := range strings.Fields(strings.ToLower(tagPart)) {
				for _, tag := range supportedTags {
					if word == tag {
						tags = append(tags, tag)
					}
				}
			}
			if len(tags) > 0 {
				prefs[KeyTags] = tags
			}
		}
	}

	// eat 優先於 drink
	if strings.Contains(m, "eat") {
		prefs[KeyNotDrink] = true
	} else if strings.Contains(m, "drink") {
		prefs[KeyOnlyDrink] = true
	}

	// 標籤與否定標籤
	for _, tag := range supportedTags {
		if strings.Contains(m, "not "+tag) {
			prefs["not "+tag] = true
		} else if strings.Contains(m, tag) {
			prefs[tag] = true
		}
	}

	// 素食等同排除肉與魚
	if strings.Contains(m, "vegetarian") {
		prefs["not meat"] = true
		prefs["not fish"] = true
	}

	if strings.Contains(m, "after gym") || strings.Contains(m, "post workout") {
		prefs["after_gym"] = true
	}

	if strings.Contains(m, "cheapest") || strings.Contains(m, "lowest price") || strings.Contains(m, "least expensive") {
		prefs[KeyCheapest] = true
	}

	// 價格：區間 > 單一上限 > 裸數字加幣別，三者只取其一
	if match := priceRangeRe.FindStringSubmatch(m); match != nil {
		if lo, err := strconv.ParseFloat(match[1], 64); err == nil {
			prefs[KeyMinPrice] = lo
		}
		if hi, err := strconv.ParseFloat(match[2], 64); err == nil {
			prefs[KeyMaxPrice] = hi
		}
	} else if match := priceSingleRe.FindStringSubmatch(m); match != nil {
		if v, err := strconv.ParseFloat(match[1], 64); err == nil {
			prefs[KeyMaxPrice] = v
		}
	} else if match := priceFallbackRe.FindStringSubmatch(m); match != nil {
		if v, err := strconv.ParseFloat(match[1], 64); err == nil {
			prefs[KeyMaxPrice] = v
		}
	}

	// 食材：動詞片語後的受詞，排除純數字，套用別名表後去重
	if matches := ingredientPhraseRe.FindAllStringSubmatch(m, -1); matches != nil {
		seen := map[string]bool{}
		var ingredients []string
		for _, match := range matches {
			word := match[1]
			if digitsOnlyRe.MatchString(word) {
				continue
			}
			canonical := NormalizeIngredient(word)
			if !seen[canonical] {
				seen[canonical] = true
				ingredients = append(ingredients, canonical)
			}
		}
		if len(ingredients) > 0 {
			prefs[KeyIngredients] = ingredients
		}
	}

	return prefs
}
