package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/McFlayr/meal-planner/internal/service"
)

type ShoppingHandler struct {
	shopping *service.ShoppingService
}

func NewShoppingHandler(shopping *service.ShoppingService) *ShoppingHandler {
	return &ShoppingHandler{shopping: shopping}
}

func (h *ShoppingHandler) RegisterRoutes(router *gin.RouterGroup) {
	shopping := router.Group("/shopping-list")
	{
		shopping.GET("", h.GetShoppingList)
		shopping.GET("/export", h.ExportShoppingList)
	}
}

func (h *ShoppingHandler) GetShoppingList(c *gin.Context) {
	grouped := h.shopping.Grouped()
	c.JSON(http.StatusOK, gin.H{"categories": grouped})
}

func (h *ShoppingHandler) ExportShoppingList(c *gin.Context) {
	text := h.shopping.ExportText(time.Now())
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}
