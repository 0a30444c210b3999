package telegram

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/emel-water/emel-api/pkg/logger"
	"github.com/emel-water/emel-api/pkg/metrics"
	"go.uber.org/zap"
)

// Client delivers order notifications to a Telegram chat via the Bot API.
type Client struct {
	api     *tgbotapi.BotAPI
	chatID  int64
	channel string
}

// New creates a Telegram client. The underlying library verifies the token
// with a getMe call, so a bad token fails here rather than on first send.
func New(botToken string, chatID int64, channelUsername string) (*Client, error) {
	if botToken == "" {
		return nil, fmt.Errorf("telegram bot token is empty")
	}
	if chatID == 0 {
		return nil, fmt.Errorf("telegram chat id is empty")
	}

	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize telegram bot: %w", err)
	}

	logger.Info("Telegram client initialized",
		zap.String("bot", api.Self.UserName),
		zap.String("channel", channelUsername))

	return &Client{
		api:     api,
		chatID:  chatID,
		channel: channelUsername,
	}, nil
}

// Send delivers a formatted notification to the configured chat. Link previews
// are suppressed; the notification sound is left enabled so new orders ping
// the dispatchers. The Bot API library doesn't take a context, so ctx is only
// checked before the call.
func (c *Client) Send(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()

	msg := tgbotapi.NewMessage(c.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	msg.DisableNotification = false

	_, err := c.api.Send(msg)

	duration := metrics.MeasureDuration(start)
	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.NotificationRequestDuration.WithLabelValues("send_message", status).Observe(duration)
	metrics.NotificationRequestTotal.WithLabelValues("send_message", status).Inc()
	logger.LogAPICall("telegram", "send_message", status, duration)

	if err != nil {
		return fmt.Errorf("telegram send failed: %w", err)
	}
	return nil
}
