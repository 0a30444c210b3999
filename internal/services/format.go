package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/emel-water/emel-api/internal/models"
	"github.com/emel-water/emel-api/internal/pricing"
	"github.com/emel-water/emel-api/internal/validation"
)

// FormatNotification renders the dispatcher notification text. The template
// is fixed; dispatchers grep their chat history by these labels, so the line
// set and order must not change.
func FormatNotification(req *models.OrderRequest, now time.Time) string {
	quantity, _ := validation.ParseQuantity(req.Quantity.String())
	price := pricing.Price(req.Product)
	total := price * quantity

	comment := req.Comment
	if comment == "" {
		comment = "Нет"
	}
	source := req.Source
	if source == "" {
		source = models.DefaultSource
	}

	lines := []string{
		"🆕 Новый заказ:",
		fmt.Sprintf("📅 Дата: %s", now.Format("02.01.2006, 15:04")),
		fmt.Sprintf("📦 Продукт: %s л", req.Product),
		fmt.Sprintf("🔢 Количество: %d", quantity),
		fmt.Sprintf("💰 Цена: %d %s", price, pricing.Currency),
		fmt.Sprintf("💵 Итого: %d %s", total, pricing.Currency),
		fmt.Sprintf("👤 Имя: %s", req.Name),
		fmt.Sprintf("📱 Телефон: %s", req.Phone),
		fmt.Sprintf("📧 Email: %s", req.Email),
		fmt.Sprintf("📝 Комментарий: %s", comment),
		fmt.Sprintf("🌐 Источник: %s", source),
	}

	return strings.Join(lines, "\n")
}
