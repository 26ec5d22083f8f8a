package menu

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"miamiam-bot/internal/pkg/common"

	"go.uber.org/zap"
)

// UnknownPrice 無法解析價格時使用的哨兵值
const UnknownPrice = 999

// MenuItem 菜單品項，載入後不再修改
type MenuItem struct {
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Tags        []string `json:"tags"`
	Ingredients []string `json:"ingredients"`
}

// HasTag 檢查品項是否帶有指定標籤
func (m *MenuItem) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Catalog 餐廳名稱到品項列表的映射，載入一次後唯讀
type Catalog struct {
	items map[string][]MenuItem
	names []string
}

// New 以現成的品項映射建立菜單
func New(items map[string][]MenuItem) *Catalog {
	c := &Catalog{
		items: items,
		names: make([]string, 0, len(items)),
	}
	for name := range items {
		c.names = append(c.names, name)
	}
	sort.Strings(c.names)
	return c
}

// itemRecord 菜單 JSON 的原始品項格式
// price 可能是數字或 "12/15" 這類字串，也可能改用 "Price (MYR)" 欄位
type itemRecord struct {
	Name        string      `json:"name"`
	Price       interface{} `json:"price"`
	PriceMYR    interface{} `json:"Price (MYR)"`
	Tags        []string    `json:"tags"`
	Ingredients []string    `json:"ingredients"`
}

// Load 從 JSON 檔案載入菜單
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open menu file: %w", err)
	}
	defer f.Close()

	var raw map[string][]itemRecord
	if err := common.DecodeJSON(f, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse menu file: %w", err)
	}

	c := &Catalog{
		items: make(map[string][]MenuItem, len(raw)),
		names: make([]string, 0, len(raw)),
	}

	total := 0
	for restaurant, records := range raw {
		items := make([]MenuItem, 0, len(records))
		for _, rec := range records {
			items = append(items, MenuItem{
				Name:        rec.Name,
				Price:       resolvePrice(rec.Price, rec.PriceMYR),
				Tags:        lowerAll(rec.Tags),
				Ingredients: lowerAll(rec.Ingredients),
			})
		}
		c.items[restaurant] = items
		c.names = append(c.names, restaurant)
		total += len(items)
	}
	sort.Strings(c.names)

	common.LogInfo("菜單載入完成",
		zap.String("path", path),
		zap.Int("restaurants", len(c.names)),
		zap.Int("items", total),
	)

	return c, nil
}

// Restaurants 回傳排序後的餐廳名稱
func (c *Catalog) Restaurants() []string {
	return c.names
}

// Items 回傳指定餐廳的品項
func (c *Catalog) Items(restaurant string) []MenuItem {
	return c.items[restaurant]
}

// Size 回傳品項總數
func (c *Catalog) Size() int {
	total := 0
	for _, items := range c.items {
		total += len(items)
	}
	return total
}

// ParsePrice 解析價格字串，"12/15" 取第一段，無法解析回傳 999
func ParsePrice(s string) float64 {
	first := strings.TrimSpace(strings.SplitN(s, "/", 2)[0])
	v, err := strconv.ParseFloat(first, 64)
	if err != nil {
		return UnknownPrice
	}
	return v
}

// resolvePrice 解析原始價格欄位，缺欄位或格式錯誤一律回 999
func resolvePrice(price, priceMYR interface{}) float64 {
	v := price
	if v == nil {
		v = priceMYR
	}
	switch p := v.(type) {
	case nil:
		return UnknownPrice
	case string:
		return ParsePrice(p)
	case json.Number:
		f, err := p.Float64()
		if err != nil {
			return UnknownPrice
		}
		return f
	case float64:
		return p
	default:
		return UnknownPrice
	}
}

func lowerAll(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}
