package domain

// PaymentAccount is one receivable account shown to customers.
type PaymentAccount struct {
	Number string `json:"number"`
	Name   string `json:"name"`
	Type   string `json:"type,omitempty"` // bank only
}

type PaymentMethods struct {
	Dana   PaymentAccount `json:"dana"`
	Gopay  PaymentAccount `json:"gopay"`
	Ovo    PaymentAccount `json:"ovo"`
	Shopee PaymentAccount `json:"shopee"`
	Bank   PaymentAccount `json:"bank"`
}

type TelegramSettings struct {
	BotToken string `json:"botToken"`
	ChatID   string `json:"chatId"`
}

// Settings is the shop-wide singleton maintained from the admin panel.
// Prices are stored as plain integers: RGT prices in IDR per unit, the RPS
// rates as conversion multipliers.
type Settings struct {
	WebsiteName   string           `json:"websiteName"`
	DLPrice       int64            `json:"dlPrice"`
	BGLPrice      int64            `json:"bglPrice"`
	RPSBGLPrice   int64            `json:"rpsBglPrice"`
	RPSClockPrice int64            `json:"rpsClockPrice"`
	Payments      PaymentMethods   `json:"paymentMethods"`
	Telegram      TelegramSettings `json:"telegram"`
}

// DefaultSettings returns the settings record seeded on first start.
func DefaultSettings() Settings {
	return Settings{
		WebsiteName:   "Growtopia Shop",
		DLPrice:       5000,
		BGLPrice:      50000,
		RPSBGLPrice:   1,
		RPSClockPrice: 10,
		Payments: PaymentMethods{
			Dana:   PaymentAccount{Number: "081234567890", Name: "Growtopia Shop"},
			Gopay:  PaymentAccount{Number: "081234567890", Name: "Growtopia Shop"},
			Ovo:    PaymentAccount{Number: "081234567890", Name: "Growtopia Shop"},
			Shopee: PaymentAccount{Number: "081234567890", Name: "Growtopia Shop"},
			Bank:   PaymentAccount{Number: "1234567890", Name: "Growtopia Shop", Type: "BCA"},
		},
	}
}

// DefaultRPSItems returns the catalog seeded on first start.
func DefaultRPSItems() []RPSItem {
	return []RPSItem{
		{Name: "Legendary Orb", Price: 5},
		{Name: "Golden Booster", Price: 3},
		{Name: "Mystic Seed", Price: 2},
		{Name: "Phoenix Wings", Price: 10},
		{Name: "Dragon Mask", Price: 8},
		{Name: "Crystal Block", Price: 1},
		{Name: "Neon Nerves", Price: 15},
		{Name: "Astro Top", Price: 12},
	}
}

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Preferences holds the per-installation language and theme choice.
type Preferences struct {
	Language string `json:"language"`
	Theme    string `json:"theme"`
}

func DefaultPreferences() Preferences {
	return Preferences{Language: "en", Theme: ThemeLight}
}
