package repository

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"gtshop/internal/domain"
	"gtshop/internal/infrastructure/localstore"
	"gtshop/pkg/errs"
)

const (
	settingsCollection = "settings"
	settingsID         = "global"

	rpsItemsCollection = "rps_items"
	rpsItemsID         = "catalog"
)

type SettingsRepository interface {
	Get(ctx context.Context) (domain.Settings, bool, error)
	Save(ctx context.Context, settings domain.Settings) error
	// Merge shallow-merges partial fields into the stored record, the way
	// each admin save action rewrites only its own section.
	Merge(ctx context.Context, partial map[string]interface{}) error

	RPSItems(ctx context.Context) ([]domain.RPSItem, error)
	SaveRPSItems(ctx context.Context, items []domain.RPSItem) error
}

type SettingsRepositoryImpl struct {
	store *localstore.Store
}

func CreateSettingsRepository(store *localstore.Store) SettingsRepository {
	return &SettingsRepositoryImpl{store: store}
}

func (r *SettingsRepositoryImpl) Get(ctx context.Context) (settings domain.Settings, found bool, err error) {
	found, err = r.store.Get(settingsCollection, settingsID, &settings)
	if err != nil {
		if errors.Is(err, errs.ErrParse) {
			log.Warn().Err(err).Str("component", "GetSettings").Msg("corrupted settings record, falling back to defaults")
			return domain.DefaultSettings(), false, nil
		}
		return settings, false, err
	}
	return settings, found, nil
}

func (r *SettingsRepositoryImpl) Save(ctx context.Context, settings domain.Settings) error {
	return r.store.Set(settingsCollection, settingsID, settings)
}

func (r *SettingsRepositoryImpl) Merge(ctx context.Context, partial map[string]interface{}) error {
	return r.store.Update(settingsCollection, settingsID, partial)
}

type rpsCatalog struct {
	Items []domain.RPSItem `json:"items"`
}

func (r *SettingsRepositoryImpl) RPSItems(ctx context.Context) ([]domain.RPSItem, error) {
	var catalog rpsCatalog
	_, err := r.store.Get(rpsItemsCollection, rpsItemsID, &catalog)
	if err != nil {
		if errors.Is(err, errs.ErrParse) {
			log.Warn().Err(err).Str("component", "RPSItems").Msg("corrupted catalog record, treating as empty")
			return nil, nil
		}
		return nil, err
	}
	return catalog.Items, nil
}

func (r *SettingsRepositoryImpl) SaveRPSItems(ctx context.Context, items []domain.RPSItem) error {
	return r.store.Set(rpsItemsCollection, rpsItemsID, rpsCatalog{Items: items})
}
