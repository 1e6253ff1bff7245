package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lunarest.com/app/internal/http/middleware"
)

type CartBadgeHandler struct{}

func NewCartBadgeHandler() *CartBadgeHandler {
	return &CartBadgeHandler{}
}

// GetBadge handles GET /cart/badge - the header badge's total item count,
// loaded by the CartCount middleware.
func (h *CartBadgeHandler) GetBadge(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"count": middleware.GetCartCount(c)})
}
