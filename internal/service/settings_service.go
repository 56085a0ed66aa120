package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"gtshop/internal/domain"
	"gtshop/internal/dto"
	"gtshop/internal/repository"
	"gtshop/pkg/errs"
)

type SettingsService interface {
	// PublicSettings is what the storefront reads: prices, shop name and
	// payment accounts, never the bot credentials.
	PublicSettings(ctx context.Context) (dto.PublicSettings, error)
	Settings(ctx context.Context) (domain.Settings, error)

	SaveGeneral(ctx context.Context, req dto.UpdateGeneralSettingsRequest) error
	SavePricing(ctx context.Context, req dto.UpdatePricingRequest) error
	SavePaymentMethods(ctx context.Context, req dto.UpdatePaymentMethodsRequest) error

	RPSItems(ctx context.Context) ([]domain.RPSItem, error)
	SaveRPSItems(ctx context.Context, req dto.SaveRPSItemsRequest) ([]domain.RPSItem, error)
}

type SettingsServiceImpl struct {
	settingsRepo repository.SettingsRepository
}

func CreateSettingsService(settingsRepo repository.SettingsRepository) SettingsService {
	return &SettingsServiceImpl{settingsRepo: settingsRepo}
}

func (s *SettingsServiceImpl) Settings(ctx context.Context) (domain.Settings, error) {
	settings, found, err := s.settingsRepo.Get(ctx)
	if err != nil {
		log.Error().Err(err).Str("component", "Settings").Msg("")
		return settings, err
	}
	if !found {
		return domain.DefaultSettings(), nil
	}
	return settings, nil
}

func (s *SettingsServiceImpl) PublicSettings(ctx context.Context) (dto.PublicSettings, error) {
	settings, err := s.Settings(ctx)
	if err != nil {
		return dto.PublicSettings{}, err
	}
	return dto.PublicSettings{
		WebsiteName:   settings.WebsiteName,
		DLPrice:       settings.DLPrice,
		BGLPrice:      settings.BGLPrice,
		RPSBGLPrice:   settings.RPSBGLPrice,
		RPSClockPrice: settings.RPSClockPrice,
		Payments:      settings.Payments,
	}, nil
}

func (s *SettingsServiceImpl) SaveGeneral(ctx context.Context, req dto.UpdateGeneralSettingsRequest) error {
	if req.WebsiteName == "" {
		return errs.ErrValidation
	}
	return s.merge(ctx, map[string]interface{}{
		"websiteName": req.WebsiteName,
		"telegram": map[string]interface{}{
			"botToken": req.BotToken,
			"chatId":   req.ChatID,
		},
	})
}

func (s *SettingsServiceImpl) SavePricing(ctx context.Context, req dto.UpdatePricingRequest) error {
	if req.DLPrice < 0 || req.BGLPrice < 0 || req.RPSBGLPrice < 0 || req.RPSClockPrice < 0 {
		return errs.ErrValidation
	}
	return s.merge(ctx, map[string]interface{}{
		"dlPrice":       req.DLPrice,
		"bglPrice":      req.BGLPrice,
		"rpsBglPrice":   req.RPSBGLPrice,
		"rpsClockPrice": req.RPSClockPrice,
	})
}

func (s *SettingsServiceImpl) SavePaymentMethods(ctx context.Context, req dto.UpdatePaymentMethodsRequest) error {
	return s.merge(ctx, map[string]interface{}{
		"paymentMethods": domain.PaymentMethods{
			Dana:   req.Dana,
			Gopay:  req.Gopay,
			Ovo:    req.Ovo,
			Shopee: req.Shopee,
			Bank:   req.Bank,
		},
	})
}

// merge keeps partial saves from clobbering unrelated sections. When no
// record exists yet the defaults are written first so the merge has a base.
func (s *SettingsServiceImpl) merge(ctx context.Context, partial map[string]interface{}) error {
	_, found, err := s.settingsRepo.Get(ctx)
	if err != nil {
		log.Error().Err(err).Str("component", "SaveSettings").Msg("")
		return err
	}
	if !found {
		if err := s.settingsRepo.Save(ctx, domain.DefaultSettings()); err != nil {
			return err
		}
	}
	return s.settingsRepo.Merge(ctx, partial)
}

func (s *SettingsServiceImpl) RPSItems(ctx context.Context) ([]domain.RPSItem, error) {
	items, err := s.settingsRepo.RPSItems(ctx)
	if err != nil {
		log.Error().Err(err).Str("component", "RPSItems").Msg("")
		return nil, err
	}
	if len(items) == 0 {
		return domain.DefaultRPSItems(), nil
	}
	return items, nil
}

// SaveRPSItems replaces the catalog, dropping rows without a name or a
// positive price the way the admin form ignores blank rows.
func (s *SettingsServiceImpl) SaveRPSItems(ctx context.Context, req dto.SaveRPSItemsRequest) ([]domain.RPSItem, error) {
	items := make([]domain.RPSItem, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Name == "" || item.Price <= 0 {
			continue
		}
		items = append(items, item)
	}
	if err := s.settingsRepo.SaveRPSItems(ctx, items); err != nil {
		log.Error().Err(err).Str("component", "SaveRPSItems").Msg("")
		return nil, err
	}
	return items, nil
}
