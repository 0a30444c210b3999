package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emel-water/emel-api/config"
	"github.com/emel-water/emel-api/internal/models"
	"github.com/emel-water/emel-api/internal/services"
)

// Russian envelope messages, matching the website copy
const (
	msgMalformedBody  = "Некорректный формат запроса"
	msgOrderFailed    = "Произошла ошибка при обработке заказа"
	msgInternalDetail = "Internal server error"
)

type OrderHandler struct {
	service services.OrderServiceInterface
	config  *config.Config
}

func NewOrderHandler(service services.OrderServiceInterface, cfg *config.Config) *OrderHandler {
	return &OrderHandler{service: service, config: cfg}
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req models.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, msgMalformedBody, err)
		return
	}

	resp, err := h.service.SubmitOrder(c.Request.Context(), &req)
	if err != nil {
		attachError(c, err)

		// Delivery and unexpected failures look the same to the buyer.
		// Internal detail is echoed only in development.
		detail := msgInternalDetail
		if h.config.IsDevelopment() {
			detail = err.Error()
		}
		c.JSON(http.StatusInternalServerError, models.OrderResponse{
			Success: false,
			Message: msgOrderFailed,
			Error:   detail,
		})
		return
	}

	if !resp.Success {
		c.JSON(http.StatusBadRequest, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}
