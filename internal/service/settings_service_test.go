package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gtshop/internal/domain"
	"gtshop/internal/dto"
	"gtshop/internal/infrastructure/localstore"
	"gtshop/internal/repository"
	"gtshop/pkg/errs"
)

func newSettingsService(t *testing.T) SettingsService {
	t.Helper()
	store, err := localstore.Open("")
	require.NoError(t, err)
	return CreateSettingsService(repository.CreateSettingsRepository(store))
}

func TestSettingsDefaultWhenUnset(t *testing.T) {
	svc := newSettingsService(t)

	settings, err := svc.Settings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestSavePricingKeepsOtherSections(t *testing.T) {
	svc := newSettingsService(t)
	ctx := context.Background()

	require.NoError(t, svc.SaveGeneral(ctx, dto.UpdateGeneralSettingsRequest{
		WebsiteName: "Toko GT",
		BotToken:    "token",
		ChatID:      "chat",
	}))
	require.NoError(t, svc.SavePricing(ctx, dto.UpdatePricingRequest{
		DLPrice:       7000,
		BGLPrice:      60000,
		RPSBGLPrice:   2,
		RPSClockPrice: 12,
	}))

	settings, err := svc.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Toko GT", settings.WebsiteName)
	assert.Equal(t, "token", settings.Telegram.BotToken)
	assert.Equal(t, int64(7000), settings.DLPrice)
	assert.Equal(t, int64(12), settings.RPSClockPrice)
	assert.Equal(t, domain.DefaultSettings().Payments, settings.Payments)
}

func TestSaveGeneralRequiresWebsiteName(t *testing.T) {
	svc := newSettingsService(t)

	err := svc.SaveGeneral(context.Background(), dto.UpdateGeneralSettingsRequest{WebsiteName: ""})
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestSavePricingRejectsNegative(t *testing.T) {
	svc := newSettingsService(t)

	err := svc.SavePricing(context.Background(), dto.UpdatePricingRequest{DLPrice: -1})
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestSavePaymentMethods(t *testing.T) {
	svc := newSettingsService(t)
	ctx := context.Background()

	require.NoError(t, svc.SavePaymentMethods(ctx, dto.UpdatePaymentMethodsRequest{
		Dana: domain.PaymentAccount{Number: "0899", Name: "Shop"},
	}))

	settings, err := svc.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0899", settings.Payments.Dana.Number)
	assert.Equal(t, domain.DefaultSettings().WebsiteName, settings.WebsiteName)
}

func TestPublicSettingsOmitsTelegram(t *testing.T) {
	svc := newSettingsService(t)
	ctx := context.Background()

	require.NoError(t, svc.SaveGeneral(ctx, dto.UpdateGeneralSettingsRequest{
		WebsiteName: "Toko GT",
		BotToken:    "secret-token",
		ChatID:      "123",
	}))

	public, err := svc.PublicSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Toko GT", public.WebsiteName)
	assert.Equal(t, int64(5000), public.DLPrice)
}

func TestRPSItemsDefaultWhenEmpty(t *testing.T) {
	svc := newSettingsService(t)

	items, err := svc.RPSItems(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultRPSItems(), items)
}

func TestSaveRPSItemsFiltersInvalidRows(t *testing.T) {
	svc := newSettingsService(t)
	ctx := context.Background()

	saved, err := svc.SaveRPSItems(ctx, dto.SaveRPSItemsRequest{Items: []domain.RPSItem{
		{Name: "Legendary Orb", Price: 5},
		{Name: "", Price: 3},
		{Name: "Freebie", Price: 0},
		{Name: "Cursed Item", Price: -2},
	}})
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "Legendary Orb", saved[0].Name)

	items, err := svc.RPSItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, items)
}
