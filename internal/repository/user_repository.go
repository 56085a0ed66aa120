package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"

	"gtshop/internal/domain"
	"gtshop/internal/infrastructure/localstore"
	"gtshop/pkg/errs"
)

const usersCollection = "users"

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (domain.User, bool, error)
	GetByUID(ctx context.Context, uid string) (domain.User, bool, error)
	Add(ctx context.Context, user domain.User) error
	List(ctx context.Context) ([]domain.User, error)
}

type UserRepositoryImpl struct {
	store *localstore.Store
}

func CreateUserRepository(store *localstore.Store) UserRepository {
	return &UserRepositoryImpl{store: store}
}

func (r *UserRepositoryImpl) GetByEmail(ctx context.Context, email string) (res domain.User, found bool, err error) {
	// Case-sensitive exact match, scanning the whole collection.
	records, err := r.store.Query(usersCollection, "email", "==", email)
	if err != nil {
		if errors.Is(err, errs.ErrParse) {
			log.Warn().Err(err).Str("component", "GetByEmail").Msg("corrupted user record, treating as absent")
			return res, false, nil
		}
		return res, false, err
	}
	if len(records) == 0 {
		return res, false, nil
	}

	if err := json.Unmarshal(records[0], &res); err != nil {
		log.Warn().Err(err).Str("component", "GetByEmail").Msg("corrupted user record, treating as absent")
		return res, false, nil
	}
	return res, true, nil
}

func (r *UserRepositoryImpl) GetByUID(ctx context.Context, uid string) (res domain.User, found bool, err error) {
	found, err = r.store.Get(usersCollection, uid, &res)
	if err != nil {
		if errors.Is(err, errs.ErrParse) {
			log.Warn().Err(err).Str("component", "GetByUID").Msg("corrupted user record, treating as absent")
			return res, false, nil
		}
		return res, false, err
	}
	return res, found, nil
}

func (r *UserRepositoryImpl) Add(ctx context.Context, user domain.User) error {
	if err := r.store.Set(usersCollection, user.UID, user); err != nil {
		log.Error().Err(err).Str("component", "AddUser").Msg("")
		return err
	}
	return nil
}

func (r *UserRepositoryImpl) List(ctx context.Context) (users []domain.User, err error) {
	records, err := r.store.List(usersCollection)
	if err != nil {
		return nil, err
	}

	for _, raw := range records {
		var user domain.User
		if err := json.Unmarshal(raw, &user); err != nil {
			log.Warn().Err(err).Str("component", "ListUsers").Msg("skipping corrupted user record")
			continue
		}
		users = append(users, user)
	}
	return users, nil
}
