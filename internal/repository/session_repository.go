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
	sessionCollection = "session"
	sessionID         = "current"

	adminSessionCollection = "admin_session"
)

// SessionRepository persists the single current-user pointer and the
// separate admin-panel session flag.
type SessionRepository interface {
	Get(ctx context.Context) (domain.Session, bool, error)
	Set(ctx context.Context, session domain.Session) error
	Clear(ctx context.Context) error

	AdminSession(ctx context.Context) (bool, error)
	SetAdminSession(ctx context.Context, active bool) error
}

type SessionRepositoryImpl struct {
	store *localstore.Store
}

func CreateSessionRepository(store *localstore.Store) SessionRepository {
	return &SessionRepositoryImpl{store: store}
}

func (r *SessionRepositoryImpl) Get(ctx context.Context) (session domain.Session, found bool, err error) {
	found, err = r.store.Get(sessionCollection, sessionID, &session)
	if err != nil {
		if errors.Is(err, errs.ErrParse) {
			log.Warn().Err(err).Str("component", "GetSession").Msg("corrupted session record, treating as signed out")
			return session, false, nil
		}
		return session, false, err
	}
	return session, found, nil
}

func (r *SessionRepositoryImpl) Set(ctx context.Context, session domain.Session) error {
	return r.store.Set(sessionCollection, sessionID, session)
}

func (r *SessionRepositoryImpl) Clear(ctx context.Context) error {
	return r.store.Delete(sessionCollection, sessionID)
}

func (r *SessionRepositoryImpl) AdminSession(ctx context.Context) (bool, error) {
	var active bool
	found, err := r.store.Get(adminSessionCollection, sessionID, &active)
	if err != nil {
		if errors.Is(err, errs.ErrParse) {
			return false, nil
		}
		return false, err
	}
	return found && active, nil
}

func (r *SessionRepositoryImpl) SetAdminSession(ctx context.Context, active bool) error {
	if !active {
		return r.store.Delete(adminSessionCollection, sessionID)
	}
	return r.store.Set(adminSessionCollection, sessionID, true)
}
