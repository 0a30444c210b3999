package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emel-water/emel-api/internal/pricing"
)

type PricesHandler struct{}

func NewPricesHandler() *PricesHandler {
	return &PricesHandler{}
}

// GetPrices handles GET /api/prices. The table is fixed at build time; the
// endpoint exists so the site never hardcodes a second copy.
func (h *PricesHandler) GetPrices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"prices":  pricing.Table(),
	})
}
