package service

import (
	"fmt"
	"strings"

	"gtshop/internal/domain"
	"gtshop/pkg/i18n"
)

// Chat topics, checked in order. The first topic whose keyword list hits
// wins, so "berapa harga order saya" answers pricing, not order status.
const (
	topicPricing        = "pricing"
	topicPayment        = "payment"
	topicPaymentMethods = "paymentMethods"
	topicHowToPay       = "howToPay"
	topicOrderStatus    = "orderStatus"
	topicServices       = "services"
	topicDelivery       = "delivery"
	topicContact        = "contact"
	topicGreeting       = "greeting"
	topicThanks         = "thanks"
	topicDefault        = "default"
)

var topicKeywords = []struct {
	topic    string
	keywords []string
}{
	{topicPricing, []string{"price", "cost", "harga", "berapa", "biaya", "tarif"}},
	{topicPayment, []string{"pay", "payment", "bayar", "pembayaran", "transfer"}},
	{topicPaymentMethods, []string{"method", "cara bayar", "metode", "dana", "gopay", "ovo", "shopee", "bank"}},
	{topicOrderStatus, []string{"order", "status", "pesanan", "tracking", "where", "dimana"}},
	{topicServices, []string{"service", "layanan", "rgt", "rps", "what", "apa"}},
	{topicDelivery, []string{"deliver", "kirim", "pengiriman", "world", "username"}},
	{topicContact, []string{"contact", "hubungi", "admin", "help", "bantuan"}},
}

var greetingKeywords = []string{"hello", "hi", "halo", "hai", "good morning", "good afternoon", "selamat"}

var thanksKeywords = []string{"thank", "thanks", "terima kasih", "makasih"}

// ClassifyMessage maps a free-text customer message onto a response topic.
// Matching is case-insensitive substring search, so it is deterministic for
// a given input.
func ClassifyMessage(text string) string {
	lowered := strings.ToLower(text)

	matched := ""
	for _, entry := range topicKeywords {
		if containsAny(lowered, entry.keywords) {
			matched = entry.topic
			break
		}
	}

	if matched == topicPaymentMethods && (strings.Contains(lowered, "cara") || strings.Contains(lowered, "how")) {
		return topicHowToPay
	}
	if matched != "" {
		return matched
	}

	if containsAny(lowered, greetingKeywords) {
		return topicGreeting
	}
	if containsAny(lowered, thanksKeywords) {
		return topicThanks
	}
	return topicDefault
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

// RespondTo renders the canned reply for a message in the requested
// language, with current prices and payment accounts filled in.
func RespondTo(text, lang string, settings domain.Settings) string {
	if !i18n.IsSupported(lang) {
		lang = i18n.LangEnglish
	}
	return renderTopic(ClassifyMessage(text), lang, settings)
}

func renderTopic(topic, lang string, settings domain.Settings) string {
	dl := i18n.FormatCurrency(settings.DLPrice, domain.CurrencyIDR)
	bgl := i18n.FormatCurrency(settings.BGLPrice, domain.CurrencyIDR)

	indonesian := lang == i18n.LangIndonesian

	switch topic {
	case topicPricing:
		if indonesian {
			return fmt.Sprintf("💎 Harga saat ini:\n• Diamond Lock (DL): %s per buah\n• Blue Gem Lock (BGL): %s per buah\n• Item RPS: mulai dari %d BGL, atau bayar pakai clock (1 BGL = %d clock)\n\nHarga bisa berubah sewaktu-waktu ya!", dl, bgl, settings.RPSBGLPrice, settings.RPSClockPrice)
		}
		return fmt.Sprintf("💎 Current prices:\n• Diamond Lock (DL): %s each\n• Blue Gem Lock (BGL): %s each\n• RPS items: from %d BGL, or pay with clocks (1 BGL = %d clocks)\n\nPrices may change at any time!", dl, bgl, settings.RPSBGLPrice, settings.RPSClockPrice)
	case topicPayment:
		if indonesian {
			return "💳 Kami menerima pembayaran lewat DANA, GoPay, OVO, ShopeePay, dan transfer bank. Untuk item RPS kamu juga bisa bayar in-game pakai BGL atau clock. Ketik \"metode\" untuk lihat nomor rekeningnya."
		}
		return "💳 We accept payments via DANA, GoPay, OVO, ShopeePay and bank transfer. For RPS items you can also pay in-game with BGL or clocks. Type \"method\" to see the account numbers."
	case topicPaymentMethods:
		return renderPaymentAccounts(lang, settings)
	case topicHowToPay:
		if indonesian {
			return "📝 Cara bayar:\n1. Buat pesanan lewat halaman order\n2. Transfer sesuai total ke salah satu akun pembayaran kami\n3. Admin konfirmasi pembayaranmu\n4. Item dikirim ke world kamu\n\nKetik \"metode\" untuk daftar akun pembayaran."
		}
		return "📝 How to pay:\n1. Place your order on the order page\n2. Transfer the total to one of our payment accounts\n3. Our admin confirms your payment\n4. Your items are delivered to your world\n\nType \"method\" for the list of payment accounts."
	case topicOrderStatus:
		if indonesian {
			return "📦 Status pesanan bisa dicek di halaman History setelah login. Pending artinya menunggu diproses, Processed artinya sudah dikirim, Rejected artinya pesanan dibatalkan."
		}
		return "📦 You can check your order status on the History page after logging in. Pending means it is waiting, Processed means it was delivered, Rejected means it was cancelled."
	case topicServices:
		if indonesian {
			return "🛒 Kami punya dua layanan:\n• RGT — beli Diamond Lock dan Blue Gem Lock dengan rupiah\n• RPS — item ready-to-play, bayar pakai BGL atau clock\n\nSemua pesanan dikirim langsung di dalam game."
		}
		return "🛒 We offer two services:\n• RGT — buy Diamond Locks and Blue Gem Locks with rupiah\n• RPS — ready-to-play items, paid with BGL or clocks\n\nEvery order is delivered directly in-game."
	case topicDelivery:
		if indonesian {
			return "🚚 Pengiriman dilakukan di dalam game. Setelah pembayaran dikonfirmasi, admin akan menemui kamu di world yang kamu tulis di pesanan. Pastikan nama world dan username GT kamu benar ya!"
		}
		return "🚚 Delivery happens in-game. Once your payment is confirmed, our admin meets you in the world you put on the order. Make sure your world name and GT username are correct!"
	case topicContact:
		if indonesian {
			return "👨‍💼 Butuh bantuan lebih? Hubungi admin kami lewat tombol kontak di bawah, atau tinggalkan pesan di sini dan kami balas secepatnya."
		}
		return "👨‍💼 Need more help? Reach our admin through the contact button below, or leave a message here and we will get back to you."
	case topicGreeting:
		if indonesian {
			return fmt.Sprintf("👋 Halo! Selamat datang di %s! Ada yang bisa dibantu? Kamu bisa tanya soal harga, cara bayar, atau status pesanan.", settings.WebsiteName)
		}
		return fmt.Sprintf("👋 Hello! Welcome to %s! How can I help you? You can ask about prices, payment, or your order status.", settings.WebsiteName)
	case topicThanks:
		if indonesian {
			return "🙏 Sama-sama! Senang bisa membantu. Kalau ada pertanyaan lain, tanya saja ya!"
		}
		return "🙏 You're welcome! Happy to help. If you have any other questions, just ask!"
	default:
		if indonesian {
			return "🤖 Maaf, aku belum paham maksudnya. Coba tanya soal harga, pembayaran, layanan, pengiriman, atau status pesanan ya."
		}
		return "🤖 Sorry, I didn't quite get that. Try asking about prices, payment, services, delivery, or your order status."
	}
}

func renderPaymentAccounts(lang string, settings domain.Settings) string {
	var b strings.Builder
	if lang == i18n.LangIndonesian {
		b.WriteString("💳 Metode pembayaran kami:\n")
	} else {
		b.WriteString("💳 Our payment methods:\n")
	}

	accounts := []struct {
		label   string
		account domain.PaymentAccount
	}{
		{"DANA", settings.Payments.Dana},
		{"GoPay", settings.Payments.Gopay},
		{"OVO", settings.Payments.Ovo},
		{"ShopeePay", settings.Payments.Shopee},
		{"Bank", settings.Payments.Bank},
	}
	for _, entry := range accounts {
		if entry.account.Number == "" {
			continue
		}
		label := entry.label
		if entry.label == "Bank" && entry.account.Type != "" {
			label = entry.account.Type
		}
		fmt.Fprintf(&b, "• %s: %s (a.n. %s)\n", label, entry.account.Number, entry.account.Name)
	}

	if lang == i18n.LangIndonesian {
		b.WriteString("\nTransfer sesuai total pesananmu, lalu tunggu konfirmasi admin.")
	} else {
		b.WriteString("\nTransfer your order total, then wait for admin confirmation.")
	}
	return b.String()
}

// QuickQuestions are the suggestion chips shown above the chat input.
func QuickQuestions(lang string) []string {
	if lang == i18n.LangIndonesian {
		return []string{
			"Berapa harga DL?",
			"Cara bayar gimana?",
			"Layanan apa saja?",
			"Status pesanan saya dimana?",
		}
	}
	return []string{
		"How much is a DL?",
		"How do I pay?",
		"What services do you offer?",
		"Where is my order?",
	}
}
