package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"gtshop/internal/domain"
	"gtshop/internal/dto"
	"gtshop/internal/infrastructure/notification"
	"gtshop/internal/repository"
	"gtshop/pkg/errs"
	"gtshop/pkg/utils"
)

type OrderService interface {
	Place(ctx context.Context, session domain.Session, req dto.PlaceOrderRequest) (domain.Order, error)
	ListForUser(ctx context.Context, uid string, filter dto.OrderFilter) ([]domain.Order, error)
	ListAll(ctx context.Context, filter dto.OrderFilter) ([]domain.Order, error)
	SetStatus(ctx context.Context, orderID, status string) (domain.Order, error)
}

type OrderServiceImpl struct {
	orderRepo    repository.OrderRepository
	settingsRepo repository.SettingsRepository
	notifier     notification.Notifier
}

func CreateOrderService(orderRepo repository.OrderRepository, settingsRepo repository.SettingsRepository, notifier notification.Notifier) OrderService {
	return &OrderServiceImpl{
		orderRepo:    orderRepo,
		settingsRepo: settingsRepo,
		notifier:     notifier,
	}
}

func (s *OrderServiceImpl) Place(ctx context.Context, session domain.Session, req dto.PlaceOrderRequest) (order domain.Order, err error) {
	if err := validatePlaceOrder(req); err != nil {
		return order, err
	}

	settings, found, err := s.settingsRepo.Get(ctx)
	if err != nil {
		log.Error().Err(err).Str("component", "Place").Msg("")
		return order, err
	}
	if !found {
		settings = domain.DefaultSettings()
	}

	var (
		total    int64
		currency string
	)
	switch req.ServiceType {
	case domain.ServiceRGT:
		total, currency = PriceRGT(settings, req.ItemType, req.Quantity)
	case domain.ServiceRPS:
		item, found, itemErr := s.findRPSItem(ctx, req.ItemName)
		if itemErr != nil {
			return order, itemErr
		}
		if !found {
			return order, errs.ErrNotFound
		}
		total, currency = PriceRPS(settings, item.Price, req.Quantity, req.PaymentMethod)
	}

	order = domain.Order{
		OrderID:       utils.GenerateOrderID(),
		UserID:        session.UID,
		UserEmail:     session.Email,
		ServiceType:   req.ServiceType,
		ItemType:      req.ItemType,
		ItemName:      req.ItemName,
		Quantity:      req.Quantity,
		PaymentMethod: req.PaymentMethod,
		GTUsername:    req.GTUsername,
		WorldName:     req.WorldName,
		TotalPrice:    total,
		Currency:      currency,
		Status:        domain.StatusPending,
		CreatedAt:     time.Now(),
		Notes:         req.Notes,
	}

	if err := s.orderRepo.Append(ctx, order); err != nil {
		log.Error().Err(err).Str("component", "Place").Msg("")
		return order, err
	}

	if err := s.notifier.NotifyOrder(ctx, order, settings); err != nil {
		log.Warn().Err(err).Str("component", "Place").Str("orderId", order.OrderID).Msg("order notification failed")
	}

	return order, nil
}

func (s *OrderServiceImpl) ListForUser(ctx context.Context, uid string, filter dto.OrderFilter) ([]domain.Order, error) {
	orders, err := s.orderRepo.ListForUser(ctx, uid)
	if err != nil {
		log.Error().Err(err).Str("component", "ListForUser").Msg("")
		return nil, err
	}
	return applyOrderFilter(orders, filter), nil
}

func (s *OrderServiceImpl) ListAll(ctx context.Context, filter dto.OrderFilter) ([]domain.Order, error) {
	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		log.Error().Err(err).Str("component", "ListAll").Msg("")
		return nil, err
	}
	return applyOrderFilter(orders, filter), nil
}

// SetStatus moves an order to pending, processed or rejected and stamps the
// update time. An unknown order id leaves the stored list unchanged and
// returns ErrNotFound, logged at warn.
func (s *OrderServiceImpl) SetStatus(ctx context.Context, orderID, status string) (domain.Order, error) {
	if !validOrderStatus(status) {
		return domain.Order{}, errs.ErrValidation
	}

	found, err := s.orderRepo.SetStatus(ctx, orderID, status)
	if err != nil {
		log.Error().Err(err).Str("component", "SetStatus").Msg("")
		return domain.Order{}, err
	}
	if !found {
		log.Warn().Str("component", "SetStatus").Str("orderId", orderID).Msg("order not found, nothing updated")
		return domain.Order{}, errs.ErrNotFound
	}

	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return domain.Order{}, err
	}
	for _, order := range orders {
		if order.OrderID == orderID {
			return order, nil
		}
	}
	return domain.Order{}, errs.ErrNotFound
}

func (s *OrderServiceImpl) findRPSItem(ctx context.Context, name string) (domain.RPSItem, bool, error) {
	items, err := s.settingsRepo.RPSItems(ctx)
	if err != nil {
		return domain.RPSItem{}, false, err
	}
	for _, item := range items {
		if strings.EqualFold(item.Name, name) {
			return item, true, nil
		}
	}
	return domain.RPSItem{}, false, nil
}

func validatePlaceOrder(req dto.PlaceOrderRequest) error {
	if req.Quantity < 1 {
		return errs.ErrValidation
	}
	if req.GTUsername == "" || req.WorldName == "" {
		return errs.ErrValidation
	}
	switch req.ServiceType {
	case domain.ServiceRGT:
		if req.ItemType != domain.ItemTypeDL && req.ItemType != domain.ItemTypeBGL {
			return errs.ErrValidation
		}
	case domain.ServiceRPS:
		if req.ItemName == "" {
			return errs.ErrValidation
		}
		if req.PaymentMethod != domain.PaymentBGL && req.PaymentMethod != domain.PaymentClock {
			return errs.ErrValidation
		}
	default:
		return errs.ErrValidation
	}
	return nil
}

func validOrderStatus(status string) bool {
	switch status {
	case domain.StatusPending, domain.StatusProcessed, domain.StatusRejected:
		return true
	}
	return false
}

func applyOrderFilter(orders []domain.Order, filter dto.OrderFilter) []domain.Order {
	if filter.Status == "" && filter.ServiceType == "" {
		return orders
	}
	filtered := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		if filter.Status != "" && order.Status != filter.Status {
			continue
		}
		if filter.ServiceType != "" && order.ServiceType != filter.ServiceType {
			continue
		}
		filtered = append(filtered, order)
	}
	return filtered
}
