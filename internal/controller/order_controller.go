package controller

import (
	"time"

	"github.com/labstack/echo/v4"

	"gtshop/internal/domain"
	"gtshop/internal/dto"
	"gtshop/internal/middleware"
	"gtshop/internal/service"
	"gtshop/pkg/errs"
	"gtshop/pkg/i18n"
	"gtshop/pkg/response"
)

type OrderController struct {
	orderService service.OrderService
}

func CreateOrderController(e *echo.Echo, orderService service.OrderService, authService service.AuthService) {
	controller := &OrderController{orderService: orderService}

	group := e.Group("/api/v1/orders", middleware.RequireSession(authService))
	group.POST("", controller.Place)
	group.GET("", controller.History)
}

func (oc *OrderController) Place(c echo.Context) error {
	var req dto.PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.WriteErrorResponse(c, errs.ErrValidation, nil)
	}

	session := c.Get("session").(domain.Session)
	order, err := oc.orderService.Place(c.Request().Context(), session, req)
	if err != nil {
		return response.WriteErrorResponse(c, err, nil)
	}
	return response.WriteSuccessResponse(c, "order placed", order)
}

func (oc *OrderController) History(c echo.Context) error {
	var filter dto.OrderFilter
	if err := c.Bind(&filter); err != nil {
		return response.WriteErrorResponse(c, errs.ErrValidation, nil)
	}

	session := c.Get("session").(domain.Session)
	orders, err := oc.orderService.ListForUser(c.Request().Context(), session.UID, filter)
	if err != nil {
		return response.WriteErrorResponse(c, err, nil)
	}
	return response.WriteSuccessResponse(c, "orders retrieved", orderViews(orders, filter.Lang))
}

// orderViews localizes orders for listing responses. An unsupported or
// empty lang falls back to English.
func orderViews(orders []domain.Order, lang string) []dto.OrderView {
	if !i18n.IsSupported(lang) {
		lang = i18n.LangEnglish
	}

	now := time.Now()
	views := make([]dto.OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, dto.OrderView{
			Order:       order,
			StatusLabel: i18n.Translate(lang, order.Status),
			PlacedAgo:   i18n.FormatRelativeTime(lang, order.CreatedAt, now),
		})
	}
	return views
}
