package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"gtshop/internal/domain"
	"gtshop/pkg/i18n"
)

// Notifier delivers an order announcement to the shop operator channel.
type Notifier interface {
	NotifyOrder(ctx context.Context, order domain.Order, settings domain.Settings) error
}

// LogNotifier formats the operator message and writes it to the log
// instead of pushing it to a bot channel. Delivery over a real bot API is
// out of scope; the rendered text matches what would be sent.
type LogNotifier struct{}

func CreateLogNotifier() Notifier {
	return &LogNotifier{}
}

func (n *LogNotifier) NotifyOrder(ctx context.Context, order domain.Order, settings domain.Settings) error {
	message := FormatOrderMessage(order)

	event := log.Info().Str("component", "NotifyOrder").Str("orderId", order.OrderID)
	if settings.Telegram.BotToken == "" || settings.Telegram.ChatID == "" {
		event = event.Bool("channelConfigured", false)
	} else {
		event = event.Bool("channelConfigured", true).Str("chatId", settings.Telegram.ChatID)
	}
	event.Msg(message)
	return nil
}

// FormatOrderMessage renders the operator notification text for an order.
func FormatOrderMessage(order domain.Order) string {
	var b strings.Builder

	b.WriteString("🛒 NEW ORDER!\n\n")
	fmt.Fprintf(&b, "📋 Order ID: %s\n", order.OrderID)
	fmt.Fprintf(&b, "📧 Email: %s\n", order.UserEmail)
	fmt.Fprintf(&b, "🎮 Service: %s\n", strings.ToUpper(order.ServiceType))

	if order.ServiceType == domain.ServiceRPS {
		fmt.Fprintf(&b, "🛠️ Item: %s\n", order.ItemName)
	} else {
		fmt.Fprintf(&b, "💎 Item: %s\n", strings.ToUpper(order.ItemType))
	}
	fmt.Fprintf(&b, "🔢 Quantity: %d\n", order.Quantity)
	fmt.Fprintf(&b, "💰 Total: %s\n", i18n.FormatCurrency(order.TotalPrice, order.Currency))
	if order.PaymentMethod != "" {
		fmt.Fprintf(&b, "💳 Payment: %s\n", order.PaymentMethod)
	}
	fmt.Fprintf(&b, "👤 GT Username: %s\n", order.GTUsername)
	fmt.Fprintf(&b, "🌍 World: %s\n", order.WorldName)
	if order.Notes != "" {
		fmt.Fprintf(&b, "📝 Notes: %s\n", order.Notes)
	}
	fmt.Fprintf(&b, "⏰ Time: %s", order.CreatedAt.Format("2006-01-02 15:04:05"))

	return b.String()
}
