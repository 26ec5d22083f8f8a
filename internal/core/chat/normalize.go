package chat

import (
	"regexp"
	"strings"
)

// messageSynonyms 逐詞同義詞替換表，順序固定
// 貨幣寫法一律轉成 myr，口語食物詞轉成標準詞
var messageSynonyms = []struct {
	word string
	repl string
}{
	{"rm", "myr"},
	{"ringgit", "myr"},
	{"ringitt", "myr"},
	{"riggit", "myr"},
	{"rigit", "myr"},
	{"spagetti", "spaghetti"},
	{"mie", "noodle"},
	{"maggie", "noodle"},
	{"mee", "noodle"},
	{"sambal", "spicy"},
	{"rendang", "beef"},
	{"telur", "egg"},
}

// ingredientAliases 食材別名表：拼字錯誤與馬來語詞彙對應到標準食材名
var ingredientAliases = map[string]string{
	"chiken": "chicken", "ciken": "chicken", "chikn": "chicken", "chikin": "chicken",
	"beaf": "beef", "boef": "beef", "meat": "meat", "meet": "meat", "daging": "meat",
	"egg": "egg", "telur": "egg", "telor": "egg", "telorr": "egg",
	"ikan": "fish", "ikan goreng": "fish",
	"nasi": "rice", "nasilemak": "rice",
	"mie": "noodle", "maggi": "noodle", "nudel": "noodle", "noodl": "noodle",
	"cheez": "cheese", "cheese": "cheese", "cheeze": "cheese", "keju": "cheese",
	"aym": "chicken",
}

var synonymPatterns = buildSynonymPatterns()

func buildSynonymPatterns() []struct {
	re   *regexp.Regexp
	repl string
} {
	out := make([]struct {
		re   *regexp.Regexp
		repl string
	}, 0, len(messageSynonyms))
	for _, s := range messageSynonyms {
		out = append(out, struct {
			re   *regexp.Regexp
			repl string
		}{
			re:   regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(s.word) + `\b`),
			repl: s.repl,
		})
	}
	return out
}

// NormalizeMessage 以詞界為單位做同義詞替換，不分大小寫
func NormalizeMessage(message string) string {
	for _, p := range synonymPatterns {
		message = p.re.ReplaceAllString(message, p.repl)
	}
	return message
}

// NormalizeIngredient 將單一食材詞轉成標準名稱，查無別名時回傳小寫原詞
func NormalizeIngredient(word string) string {
	w := strings.ToLower(word)
	if canonical, ok := ingredientAliases[w]; ok {
		return canonical
	}
	return w
}
