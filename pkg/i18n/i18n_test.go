package i18n

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	assert.Equal(t, "Login Required", Translate(LangEnglish, "login_required"))
	assert.Equal(t, "Login Diperlukan", Translate(LangIndonesian, "login_required"))
}

func TestTranslateFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, "Login Required", Translate("fr", "login_required"))
}

func TestTranslateUnknownKeyReturnsKey(t *testing.T) {
	assert.Equal(t, "no_such_key", Translate(LangEnglish, "no_such_key"))
}

func TestTranslateSubstitutesArgs(t *testing.T) {
	assert.Equal(t, "5 minutes ago", Translate(LangEnglish, "minutes_ago", 5))
	assert.Equal(t, "5 menit yang lalu", Translate(LangIndonesian, "minutes_ago", 5))
}

func TestFormatCurrencyIDR(t *testing.T) {
	assert.Equal(t, "Rp 5.000", FormatCurrency(5000, "IDR"))
	assert.Equal(t, "Rp 1.250.000", FormatCurrency(1250000, "IDR"))
	assert.Equal(t, "Rp 999", FormatCurrency(999, "IDR"))
}

func TestFormatCurrencyInGame(t *testing.T) {
	assert.Equal(t, "80 Clock", FormatCurrency(80, "Clock"))
	assert.Equal(t, "8 BGL", FormatCurrency(8, "BGL"))
	assert.Equal(t, "1,000 BGL", FormatCurrency(1000, "BGL"))
}

func TestFormatRelativeTime(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Just now", FormatRelativeTime(LangEnglish, now.Add(-30*time.Second), now))
	assert.Equal(t, "5 minutes ago", FormatRelativeTime(LangEnglish, now.Add(-5*time.Minute), now))
	assert.Equal(t, "3 jam yang lalu", FormatRelativeTime(LangIndonesian, now.Add(-3*time.Hour), now))
	assert.Equal(t, "2 days ago", FormatRelativeTime(LangEnglish, now.Add(-48*time.Hour), now))
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported(LangEnglish))
	assert.True(t, IsSupported(LangIndonesian))
	assert.False(t, IsSupported("fr"))
	assert.False(t, IsSupported(""))
}
