package i18n

import (
	"fmt"
	"strings"
	"time"
)

const (
	LangEnglish    = "en"
	LangIndonesian = "id"
)

// IsSupported reports whether lang is one of the storefront languages.
func IsSupported(lang string) bool {
	return lang == LangEnglish || lang == LangIndonesian
}

var translations = map[string]map[string]string{
	LangEnglish: {
		"login_required":          "Login Required",
		"invalid_credentials":     "Invalid credentials",
		"email_already_in_use":    "Email already in use",
		"registration_successful": "Registration successful",
		"passwords_dont_match":    "Passwords don't match",
		"pending":                 "Pending",
		"processed":               "Processed",
		"rejected":                "Rejected",
		"order_placed":            "Order placed successfully",
		"settings_saved":          "Settings saved successfully",
		"no_orders":               "No orders found",
		"welcome_message":         "Welcome to Growtopia Shop",
		"rgt_service":             "RGT Service",
		"rps_service":             "RPS Service",
		"just_now":                "Just now",
		"minutes_ago":             "{0} minutes ago",
		"hours_ago":               "{0} hours ago",
		"days_ago":                "{0} days ago",
	},
	LangIndonesian: {
		"login_required":          "Login Diperlukan",
		"invalid_credentials":     "Kredensial tidak valid",
		"email_already_in_use":    "Email sudah digunakan",
		"registration_successful": "Registrasi berhasil",
		"passwords_dont_match":    "Kata sandi tidak cocok",
		"pending":                 "Menunggu",
		"processed":               "Diproses",
		"rejected":                "Ditolak",
		"order_placed":            "Pesanan berhasil dibuat",
		"settings_saved":          "Pengaturan berhasil disimpan",
		"no_orders":               "Tidak ada pesanan ditemukan",
		"welcome_message":         "Selamat Datang di Growtopia Shop",
		"rgt_service":             "Layanan RGT",
		"rps_service":             "Layanan RPS",
		"just_now":                "Baru saja",
		"minutes_ago":             "{0} menit yang lalu",
		"hours_ago":               "{0} jam yang lalu",
		"days_ago":                "{0} hari yang lalu",
	},
}

// Translate resolves key in the given language, falling back to English
// and finally to the key itself. Positional {0}, {1}, ... placeholders are
// substituted with args.
func Translate(lang, key string, args ...interface{}) string {
	dict, ok := translations[lang]
	if !ok {
		dict = translations[LangEnglish]
	}

	text, ok := dict[key]
	if !ok {
		text, ok = translations[LangEnglish][key]
		if !ok {
			return key
		}
	}

	for i, arg := range args {
		text = strings.ReplaceAll(text, fmt.Sprintf("{%d}", i), fmt.Sprint(arg))
	}
	return text
}

// FormatCurrency renders an amount in the given currency. IDR amounts use
// the local "Rp 5.000" notation, other in-game currencies keep the plain
// amount with the unit appended.
func FormatCurrency(amount int64, currency string) string {
	if currency == "IDR" {
		return "Rp " + groupDigits(amount, ".")
	}
	return fmt.Sprintf("%s %s", groupDigits(amount, ","), currency)
}

func groupDigits(n int64, sep string) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	out := strings.Join(parts, sep)
	if neg {
		out = "-" + out
	}
	return out
}

// FormatRelativeTime renders t relative to now in the given language.
func FormatRelativeTime(lang string, t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return Translate(lang, "just_now")
	case diff < time.Hour:
		return Translate(lang, "minutes_ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return Translate(lang, "hours_ago", int(diff.Hours()))
	default:
		return Translate(lang, "days_ago", int(diff.Hours()/24))
	}
}
