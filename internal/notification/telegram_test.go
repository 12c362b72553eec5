package notification

import (
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/SlotBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

type fakeSender struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg)
	}
	return tgbotapi.Message{}, f.err
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

var booking = &domain.Booking{
	ID:          17,
	Date:        "2025-06-15",
	Time:        "14:00",
	ServiceName: "General consultation",
	Status:      domain.BookingStatusConfirmed,
	Customer:    domain.Customer{Name: "Sara_Ali", Email: "sara@example.com", Phone: "0501234567"},
}

func TestTelegramNotifier_DisabledWithoutToken(t *testing.T) {
	n, err := NewTelegramNotifier("", 42, newTestLogger(t))
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		n.NotifyBookingCreated(context.Background(), booking)
	})
}

func TestTelegramNotifier_BookingCreated(t *testing.T) {
	fake := &fakeSender{}
	n := &TelegramNotifier{bot: fake, chatID: 42, logger: newTestLogger(t)}

	n.NotifyBookingCreated(context.Background(), booking)

	require.Len(t, fake.sent, 1)
	msg := fake.sent[0]
	assert.Equal(t, int64(42), msg.ChatID)
	assert.Equal(t, tgbotapi.ModeMarkdown, msg.ParseMode)
	assert.Contains(t, msg.Text, "#17")
	assert.Contains(t, msg.Text, "2:00 PM")
	assert.Contains(t, msg.Text, `Sara\_Ali`)
}

func TestTelegramNotifier_StatusChanged(t *testing.T) {
	fake := &fakeSender{}
	n := &TelegramNotifier{bot: fake, chatID: 42, logger: newTestLogger(t)}

	n.NotifyStatusChanged(context.Background(), booking, domain.BookingStatusPending)

	require.Len(t, fake.sent, 1)
	assert.Contains(t, fake.sent[0].Text, "now confirmed")
	assert.Contains(t, fake.sent[0].Text, "was pending")
}

func TestTelegramNotifier_SkipsWithoutChatOrOnCancel(t *testing.T) {
	fake := &fakeSender{}
	log := newTestLogger(t)

	(&TelegramNotifier{bot: fake, logger: log}).NotifyBookingCreated(context.Background(), booking)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	(&TelegramNotifier{bot: fake, chatID: 42, logger: log}).NotifyBookingCreated(ctx, booking)

	assert.Empty(t, fake.sent)
}

func TestTelegramNotifier_SendErrorIsLogged(t *testing.T) {
	fake := &fakeSender{err: errors.New("telegram down")}
	n := &TelegramNotifier{bot: fake, chatID: 42, logger: newTestLogger(t)}

	assert.NotPanics(t, func() {
		n.NotifyBookingCreated(context.Background(), booking)
	})
	assert.Len(t, fake.sent, 1)
}
