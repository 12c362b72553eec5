package notification

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/SlotBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier posts booking events to one staff chat.
type TelegramNotifier struct {
	bot    sender
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*New booking #%d*\n\n"+"Service: %s\n"+"Date: %s at %s\n"+"Customer: %s (%s, %s)",
		b.ID,
		escape(b.ServiceName),
		b.Date, domain.SlotLabel(b.Time),
		escape(b.Customer.Name), escape(b.Customer.Email), escape(b.Customer.Phone),
	)
	if b.Customer.Notes != "" {
		text += "\nNotes: " + escape(b.Customer.Notes)
	}
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyStatusChanged(ctx context.Context, b *domain.Booking, from domain.BookingStatus) {
	text := fmt.Sprintf(
		"*Booking #%d is now %s* (was %s)\n\n"+"Date: %s at %s\n"+"Customer: %s",
		b.ID, b.Status, from,
		b.Date, domain.SlotLabel(b.Time),
		escape(b.Customer.Name),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}

var markdown = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

// escape keeps customer input from breaking legacy Markdown.
func escape(s string) string {
	return markdown.Replace(s)
}
