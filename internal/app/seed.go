package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"gtshop/internal/domain"
	"gtshop/internal/repository"
)

const adminEmail = "admin@growtopia.com"

// Seed writes the admin account, the default settings and the default RPS
// catalog on first start. Existing records are left alone so admin edits
// survive restarts.
func Seed(ctx context.Context, userRepo repository.UserRepository, settingsRepo repository.SettingsRepository, adminPassword string) error {
	_, exists, err := userRepo.GetByEmail(ctx, adminEmail)
	if err != nil {
		return err
	}
	if !exists {
		if err := userRepo.Add(ctx, domain.User{
			UID:       "admin",
			Email:     adminEmail,
			Password:  adminPassword,
			Username:  "admin",
			Role:      domain.RoleAdmin,
			CreatedAt: time.Now(),
		}); err != nil {
			return err
		}
		log.Info().Str("component", "Seed").Str("email", adminEmail).Msg("admin account created")
	}

	_, found, err := settingsRepo.Get(ctx)
	if err != nil {
		return err
	}
	if !found {
		if err := settingsRepo.Save(ctx, domain.DefaultSettings()); err != nil {
			return err
		}
		log.Info().Str("component", "Seed").Msg("default settings created")
	}

	items, err := settingsRepo.RPSItems(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		if err := settingsRepo.SaveRPSItems(ctx, domain.DefaultRPSItems()); err != nil {
			return err
		}
		log.Info().Str("component", "Seed").Msg("default catalog created")
	}

	return nil
}
