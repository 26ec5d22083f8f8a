package menu

import (
	"net/http"

	menuService "miamiam-bot/internal/core/menu"
	"miamiam-bot/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// Handler 菜單查詢處理器
type Handler struct {
	catalog *menuService.Catalog
}

// NewHandler 創建菜單處理器
func NewHandler(catalog *menuService.Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// RestaurantView 單一餐廳的菜單
type RestaurantView struct {
	Name  string                 `json:"name"`
	Items []menuService.MenuItem `json:"items"`
}

// HandleList 處理 GET /api/v1/menu：回傳整份菜單
func (h *Handler) HandleList(c *gin.Context) {
	if h.catalog == nil || h.catalog.Size() == 0 {
		c.JSON(common.ErrMenuNotLoaded.Status, gin.H{
			"error": common.ErrMenuNotLoaded.Message,
			"code":  common.ErrMenuNotLoaded.Code,
		})
		return
	}

	restaurants := make([]RestaurantView, 0, len(h.catalog.Restaurants()))
	for _, name := range h.catalog.Restaurants() {
		restaurants = append(restaurants, RestaurantView{
			Name:  name,
			Items: h.catalog.Items(name),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurants": restaurants,
		"total_items": h.catalog.Size(),
	})
}
