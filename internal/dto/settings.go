package dto

import "gtshop/internal/domain"

// PublicSettings is the storefront view of the admin settings. Bot
// credentials never leave the admin surface.
type PublicSettings struct {
	WebsiteName   string                `json:"websiteName"`
	DLPrice       int64                 `json:"dlPrice"`
	BGLPrice      int64                 `json:"bglPrice"`
	RPSBGLPrice   int64                 `json:"rpsBglPrice"`
	RPSClockPrice int64                 `json:"rpsClockPrice"`
	Payments      domain.PaymentMethods `json:"paymentMethods"`
}

type UpdateGeneralSettingsRequest struct {
	WebsiteName string `json:"websiteName"`
	BotToken    string `json:"botToken"`
	ChatID      string `json:"chatId"`
}

type UpdatePricingRequest struct {
	DLPrice       int64 `json:"dlPrice"`
	BGLPrice      int64 `json:"bglPrice"`
	RPSBGLPrice   int64 `json:"rpsBglPrice"`
	RPSClockPrice int64 `json:"rpsClockPrice"`
}

type UpdatePaymentMethodsRequest struct {
	Dana   domain.PaymentAccount `json:"dana"`
	Gopay  domain.PaymentAccount `json:"gopay"`
	Ovo    domain.PaymentAccount `json:"ovo"`
	Shopee domain.PaymentAccount `json:"shopee"`
	Bank   domain.PaymentAccount `json:"bank"`
}

type SaveRPSItemsRequest struct {
	Items []domain.RPSItem `json:"items"`
}
