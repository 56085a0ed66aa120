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
	chatCollection = "chat"
	chatID         = "transcript"

	preferencesCollection = "preferences"
	preferencesID         = "current"
)

// ChatRepository persists the customer-service transcript and the
// language/theme preferences.
type ChatRepository interface {
	Messages(ctx context.Context) ([]domain.ChatMessage, error)
	Append(ctx context.Context, messages ...domain.ChatMessage) error
	Clear(ctx context.Context) error

	Preferences(ctx context.Context) (domain.Preferences, bool, error)
	SavePreferences(ctx context.Context, prefs domain.Preferences) error
}

type ChatRepositoryImpl struct {
	store *localstore.Store
}

func CreateChatRepository(store *localstore.Store) ChatRepository {
	return &ChatRepositoryImpl{store: store}
}

type transcript struct {
	Messages []domain.ChatMessage `json:"messages"`
}

func (r *ChatRepositoryImpl) Messages(ctx context.Context) ([]domain.ChatMessage, error) {
	var t transcript
	_, err := r.store.Get(chatCollection, chatID, &t)
	if err != nil {
		if errors.Is(err, errs.ErrParse) {
			log.Warn().Err(err).Str("component", "ChatMessages").Msg("corrupted transcript, treating as empty")
			return nil, nil
		}
		return nil, err
	}
	return t.Messages, nil
}

func (r *ChatRepositoryImpl) Append(ctx context.Context, messages ...domain.ChatMessage) error {
	existing, err := r.Messages(ctx)
	if err != nil {
		return err
	}
	return r.store.Set(chatCollection, chatID, transcript{Messages: append(existing, messages...)})
}

func (r *ChatRepositoryImpl) Clear(ctx context.Context) error {
	return r.store.Delete(chatCollection, chatID)
}

func (r *ChatRepositoryImpl) Preferences(ctx context.Context) (prefs domain.Preferences, found bool, err error) {
	found, err = r.store.Get(preferencesCollection, preferencesID, &prefs)
	if err != nil {
		if errors.Is(err, errs.ErrParse) {
			return domain.DefaultPreferences(), false, nil
		}
		return prefs, false, err
	}
	return prefs, found, nil
}

func (r *ChatRepositoryImpl) SavePreferences(ctx context.Context, prefs domain.Preferences) error {
	return r.store.Set(preferencesCollection, preferencesID, prefs)
}
