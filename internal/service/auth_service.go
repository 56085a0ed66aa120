package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"

	"gtshop/internal/domain"
	"gtshop/internal/dto"
	"gtshop/internal/repository"
	"gtshop/pkg/errs"
)

// AuthService manages the registered user list and the single current
// session. Credentials are compared in plaintext against the stored user
// records; this mirrors the demo credential model and is not real
// authentication.
type AuthService interface {
	SignIn(ctx context.Context, email, password string) (domain.Session, error)
	Register(ctx context.Context, email, password, username string) (domain.Session, error)
	SignOut(ctx context.Context) error
	CurrentSession(ctx context.Context) (domain.Session, bool, error)
	IsAdmin(ctx context.Context) (bool, error)

	AdminLogin(ctx context.Context, password string) error
	AdminSession(ctx context.Context) (bool, error)

	// Users lists every registered account for the admin panel, sorted by
	// registration time, newest first.
	Users(ctx context.Context) ([]dto.UserSummary, error)

	// Subscribe registers fn on the auth observer list. fn runs
	// immediately with the current session (nil when signed out) and again
	// after every sign-in, registration and sign-out. There is no
	// unsubscribe.
	Subscribe(fn func(session *domain.Session))
}

type AuthServiceImpl struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository

	adminPassword string
	latency       time.Duration

	mu          sync.Mutex
	subscribers []func(session *domain.Session)
}

func CreateAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, adminPassword string, latency time.Duration) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		sessionRepo:   sessionRepo,
		adminPassword: adminPassword,
		latency:       latency,
	}
}

// simulateLatency adds the configured fixed delay before auth calls
// resolve. Zero latency skips the timer entirely.
func (s *AuthServiceImpl) simulateLatency(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *AuthServiceImpl) SignIn(ctx context.Context, email, password string) (session domain.Session, err error) {
	if err := s.simulateLatency(ctx); err != nil {
		return session, err
	}

	user, found, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return session, err
	}
	if !found || user.Password != password {
		return session, errs.ErrInvalidCredentials
	}

	session = sessionFor(user)
	if err := s.sessionRepo.Set(ctx, session); err != nil {
		return session, err
	}

	s.notify(&session)
	return session, nil
}

func (s *AuthServiceImpl) Register(ctx context.Context, email, password, username string) (session domain.Session, err error) {
	if err := s.simulateLatency(ctx); err != nil {
		return session, err
	}

	_, exists, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return session, err
	}
	if exists {
		return session, errs.ErrEmailAlreadyInUse
	}

	if username == "" {
		username = emailLocalPart(email)
	}

	user := domain.User{
		UID:       "user_" + ulid.Make().String(),
		Email:     email,
		Password:  password,
		Username:  username,
		Role:      domain.RoleUser,
		CreatedAt: time.Now(),
	}
	if err := s.userRepo.Add(ctx, user); err != nil {
		return session, err
	}

	session = sessionFor(user)
	if err := s.sessionRepo.Set(ctx, session); err != nil {
		return session, err
	}

	s.notify(&session)
	return session, nil
}

func (s *AuthServiceImpl) SignOut(ctx context.Context) error {
	if err := s.sessionRepo.Clear(ctx); err != nil {
		return err
	}
	if err := s.sessionRepo.SetAdminSession(ctx, false); err != nil {
		return err
	}

	s.notify(nil)
	return nil
}

func (s *AuthServiceImpl) CurrentSession(ctx context.Context) (domain.Session, bool, error) {
	return s.sessionRepo.Get(ctx)
}

func (s *AuthServiceImpl) IsAdmin(ctx context.Context) (bool, error) {
	session, found, err := s.sessionRepo.Get(ctx)
	if err != nil || !found {
		return false, err
	}

	user, found, err := s.userRepo.GetByUID(ctx, session.UID)
	if err != nil || !found {
		return false, err
	}
	return user.Role == domain.RoleAdmin, nil
}

// AdminLogin grants the admin-panel session when the shared admin password
// matches. This is the hidden panel gate, separate from account roles.
func (s *AuthServiceImpl) AdminLogin(ctx context.Context, password string) error {
	if password != s.adminPassword {
		return errs.ErrInvalidCredentials
	}
	return s.sessionRepo.SetAdminSession(ctx, true)
}

func (s *AuthServiceImpl) AdminSession(ctx context.Context) (bool, error) {
	return s.sessionRepo.AdminSession(ctx)
}

func (s *AuthServiceImpl) Users(ctx context.Context) ([]dto.UserSummary, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		log.Error().Err(err).Str("component", "Users").Msg("")
		return nil, err
	}

	summaries := make([]dto.UserSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, dto.UserSummary{
			UID:       user.UID,
			Email:     user.Email,
			Username:  user.Username,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
		})
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})
	return summaries, nil
}

func (s *AuthServiceImpl) Subscribe(fn func(session *domain.Session)) {
	s.mu.Lock()
	s.subscribers = append(s.subscribers, fn)
	s.mu.Unlock()

	session, found, err := s.sessionRepo.Get(context.Background())
	if err != nil {
		log.Error().Err(err).Str("component", "Subscribe").Msg("")
		fn(nil)
		return
	}
	if found {
		fn(&session)
	} else {
		fn(nil)
	}
}

func (s *AuthServiceImpl) notify(session *domain.Session) {
	s.mu.Lock()
	subscribers := make([]func(session *domain.Session), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(session)
	}
}

func sessionFor(user domain.User) domain.Session {
	displayName := user.Username
	if displayName == "" {
		displayName = emailLocalPart(user.Email)
	}
	return domain.Session{
		UID:         user.UID,
		Email:       user.Email,
		DisplayName: displayName,
	}
}

func emailLocalPart(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
