package service

import (
	"gtshop/internal/domain"
)

// Fallback rates used whenever the stored settings are missing or zeroed.
const (
	defaultDLPrice       = 5000
	defaultBGLPrice      = 50000
	defaultRPSClockPrice = 10
)

// PriceRGT prices a Diamond Lock / Blue Gem Lock order in IDR. Unknown
// item types price at zero; the order service rejects them before calling.
func PriceRGT(settings domain.Settings, itemType string, quantity int) (total int64, currency string) {
	var unit int64
	switch itemType {
	case domain.ItemTypeDL:
		unit = settings.DLPrice
		if unit == 0 {
			unit = defaultDLPrice
		}
	case domain.ItemTypeBGL:
		unit = settings.BGLPrice
		if unit == 0 {
			unit = defaultBGLPrice
		}
	}
	return unit * int64(quantity), domain.CurrencyIDR
}

// PriceRPS prices a catalog item order. BGL payment is the item price
// times quantity; clock payment further applies the configured BGL-to-Clock
// conversion rate.
func PriceRPS(settings domain.Settings, itemPrice int64, quantity int, paymentMethod string) (total int64, currency string) {
	total = itemPrice * int64(quantity)
	if paymentMethod == domain.PaymentClock {
		rate := settings.RPSClockPrice
		if rate == 0 {
			rate = defaultRPSClockPrice
		}
		return total * rate, domain.CurrencyClock
	}
	return total, domain.CurrencyBGL
}
