package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"gtshop/internal/domain"
	"gtshop/internal/infrastructure/localstore"
	"gtshop/pkg/errs"
)

const (
	ordersCollection = "orders"
	ordersID         = "all"
)

// OrderRepository keeps every order in a single flat list that is rewritten
// wholesale on each mutation. Fine at shop scale; an indexed backend would
// be needed for anything bigger.
type OrderRepository interface {
	Append(ctx context.Context, order domain.Order) error
	ListForUser(ctx context.Context, uid string) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	// SetStatus mutates the order's status in place, stamping updatedAt.
	// The bool result reports whether the order existed.
	SetStatus(ctx context.Context, orderID, status string) (bool, error)
}

type OrderRepositoryImpl struct {
	store *localstore.Store
}

func CreateOrderRepository(store *localstore.Store) OrderRepository {
	return &OrderRepositoryImpl{store: store}
}

type orderList struct {
	Orders []domain.Order `json:"orders"`
}

func (r *OrderRepositoryImpl) load(component string) ([]domain.Order, error) {
	var list orderList
	_, err := r.store.Get(ordersCollection, ordersID, &list)
	if err != nil {
		if errors.Is(err, errs.ErrParse) {
			log.Warn().Err(err).Str("component", component).Msg("corrupted order list, treating as empty")
			return nil, nil
		}
		return nil, err
	}
	return list.Orders, nil
}

func (r *OrderRepositoryImpl) save(orders []domain.Order) error {
	return r.store.Set(ordersCollection, ordersID, orderList{Orders: orders})
}

func (r *OrderRepositoryImpl) Append(ctx context.Context, order domain.Order) error {
	orders, err := r.load("AppendOrder")
	if err != nil {
		return err
	}
	return r.save(append(orders, order))
}

func (r *OrderRepositoryImpl) ListForUser(ctx context.Context, uid string) ([]domain.Order, error) {
	orders, err := r.load("ListForUser")
	if err != nil {
		return nil, err
	}

	owned := make([]domain.Order, 0)
	for _, order := range orders {
		if order.UserID == uid {
			owned = append(owned, order)
		}
	}
	sortNewestFirst(owned)
	return owned, nil
}

func (r *OrderRepositoryImpl) ListAll(ctx context.Context) ([]domain.Order, error) {
	orders, err := r.load("ListAll")
	if err != nil {
		return nil, err
	}
	sortNewestFirst(orders)
	return orders, nil
}

func (r *OrderRepositoryImpl) SetStatus(ctx context.Context, orderID, status string) (bool, error) {
	orders, err := r.load("SetStatus")
	if err != nil {
		return false, err
	}

	for i := range orders {
		if orders[i].OrderID != orderID {
			continue
		}
		now := time.Now()
		orders[i].Status = status
		orders[i].UpdatedAt = &now
		return true, r.save(orders)
	}
	return false, nil
}

func sortNewestFirst(orders []domain.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}
