package service

import (
	"context"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"

	"gtshop/internal/domain"
	"gtshop/internal/repository"
	"gtshop/pkg/errs"
	"gtshop/pkg/i18n"
)

type ChatService interface {
	// Send appends the customer message and the generated reply to the
	// transcript and returns both in order.
	Send(ctx context.Context, text, lang string) ([]domain.ChatMessage, error)
	Transcript(ctx context.Context) ([]domain.ChatMessage, error)
	ClearTranscript(ctx context.Context) error
	QuickQuestions(ctx context.Context, lang string) []string

	Preferences(ctx context.Context) (domain.Preferences, error)
	SavePreferences(ctx context.Context, prefs domain.Preferences) (domain.Preferences, error)
}

type ChatServiceImpl struct {
	chatRepo     repository.ChatRepository
	settingsRepo repository.SettingsRepository
}

func CreateChatService(chatRepo repository.ChatRepository, settingsRepo repository.SettingsRepository) ChatService {
	return &ChatServiceImpl{
		chatRepo:     chatRepo,
		settingsRepo: settingsRepo,
	}
}

func (s *ChatServiceImpl) Send(ctx context.Context, text, lang string) ([]domain.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errs.ErrValidation
	}
	if !i18n.IsSupported(lang) {
		prefs, err := s.Preferences(ctx)
		if err != nil {
			return nil, err
		}
		lang = prefs.Language
	}

	settings, found, err := s.settingsRepo.Get(ctx)
	if err != nil {
		log.Error().Err(err).Str("component", "Send").Msg("")
		return nil, err
	}
	if !found {
		settings = domain.DefaultSettings()
	}

	now := time.Now()
	exchange := []domain.ChatMessage{
		{
			ID:        "msg_" + ulid.Make().String(),
			Sender:    domain.ChatSenderUser,
			Text:      text,
			Timestamp: now,
		},
		{
			ID:        "msg_" + ulid.Make().String(),
			Sender:    domain.ChatSenderBot,
			Text:      RespondTo(text, lang, settings),
			Timestamp: now,
		},
	}

	if err := s.chatRepo.Append(ctx, exchange...); err != nil {
		log.Error().Err(err).Str("component", "Send").Msg("")
		return nil, err
	}
	return exchange, nil
}

func (s *ChatServiceImpl) Transcript(ctx context.Context) ([]domain.ChatMessage, error) {
	messages, err := s.chatRepo.Messages(ctx)
	if err != nil {
		log.Error().Err(err).Str("component", "Transcript").Msg("")
		return nil, err
	}
	return messages, nil
}

func (s *ChatServiceImpl) ClearTranscript(ctx context.Context) error {
	return s.chatRepo.Clear(ctx)
}

func (s *ChatServiceImpl) QuickQuestions(ctx context.Context, lang string) []string {
	if !i18n.IsSupported(lang) {
		if prefs, err := s.Preferences(ctx); err == nil {
			lang = prefs.Language
		} else {
			lang = i18n.LangEnglish
		}
	}
	return QuickQuestions(lang)
}

func (s *ChatServiceImpl) Preferences(ctx context.Context) (domain.Preferences, error) {
	prefs, found, err := s.chatRepo.Preferences(ctx)
	if err != nil {
		log.Error().Err(err).Str("component", "Preferences").Msg("")
		return prefs, err
	}
	if !found {
		return domain.DefaultPreferences(), nil
	}
	return prefs, nil
}

func (s *ChatServiceImpl) SavePreferences(ctx context.Context, prefs domain.Preferences) (domain.Preferences, error) {
	if !i18n.IsSupported(prefs.Language) {
		return prefs, errs.ErrValidation
	}
	if prefs.Theme != domain.ThemeLight && prefs.Theme != domain.ThemeDark {
		return prefs, errs.ErrValidation
	}
	if err := s.chatRepo.SavePreferences(ctx, prefs); err != nil {
		log.Error().Err(err).Str("component", "SavePreferences").Msg("")
		return prefs, err
	}
	return prefs, nil
}
