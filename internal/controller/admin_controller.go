package controller

import (
	"github.com/labstack/echo/v4"

	"gtshop/internal/dto"
	"gtshop/internal/middleware"
	"gtshop/internal/service"
	"gtshop/pkg/errs"
	"gtshop/pkg/response"
)

type AdminController struct {
	orderService    service.OrderService
	settingsService service.SettingsService
	authService     service.AuthService
}

func CreateAdminController(e *echo.Echo, orderService service.OrderService, settingsService service.SettingsService, authService service.AuthService) {
	controller := &AdminController{
		orderService:    orderService,
		settingsService: settingsService,
		authService:     authService,
	}

	group := e.Group("/api/v1/admin", middleware.RequireAdmin(authService))
	group.GET("/users", controller.Users)
	group.GET("/orders", controller.Orders)
	group.PATCH("/orders/:id/status", controller.UpdateOrderStatus)
	group.GET("/settings", controller.Settings)
	group.PUT("/settings", controller.SaveGeneral)
	group.PUT("/settings/pricing", controller.SavePricing)
	group.PUT("/settings/payment-methods", controller.SavePaymentMethods)
	group.GET("/rps-items", controller.RPSItems)
	group.PUT("/rps-items", controller.SaveRPSItems)
}

func (ac *AdminController) Users(c echo.Context) error {
	users, err := ac.authService.Users(c.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(c, err, nil)
	}
	return response.WriteSuccessResponse(c, "users retrieved", users)
}

func (ac *AdminController) Orders(c echo.Context) error {
	var filter dto.OrderFilter
	if err := c.Bind(&filter); err != nil {
		return response.WriteErrorResponse(c, errs.ErrValidation, nil)
	}

	orders, err := ac.orderService.ListAll(c.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(c, err, nil)
	}
	return response.WriteSuccessResponse(c, "orders retrieved", orderViews(orders, filter.Lang))
}

func (ac *AdminController) UpdateOrderStatus(c echo.Context) error {
	var req dto.UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.WriteErrorResponse(c, errs.ErrValidation, nil)
	}

	order, err := ac.orderService.SetStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return response.WriteErrorResponse(c, err, nil)
	}
	return response.WriteSuccessResponse(c, "order status updated", order)
}

func (ac *AdminController) Settings(c echo.Context) error {
	settings, err := ac.settingsService.Settings(c.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(c, err, nil)
	}
	return response.WriteSuccessResponse(c, "settings retrieved", settings)
}

func (ac *AdminController) SaveGeneral(c echo.Context) error {
	var req dto.UpdateGeneralSettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.WriteErrorResponse(c, errs.ErrValidation, nil)
	}

	if err := ac.settingsService.SaveGeneral(c.Request().Context(), req); err != nil {
		return response.WriteErrorResponse(c, err, nil)
	}
	return response.WriteSuccessResponse(c, "settings saved", nil)
}

func (ac *AdminController) SavePricing(c echo.Context) error {
	var req dto.UpdatePricingRequest
	if err := c.Bind(&req); err != nil {
		return response.WriteErrorResponse(c, errs.ErrValidation, nil)
	}

	if err := ac.settingsService.SavePricing(c.Request().Context(), req); err != nil {
		return response.WriteErrorResponse(c, err, nil)
	}
	return response.WriteSuccessResponse(c, "pricing saved", nil)
}

func (ac *AdminController) SavePaymentMethods(c echo.Context) error {
	var req dto.UpdatePaymentMethodsRequest
	if err := c.Bind(&req); err != nil {
		return response.WriteErrorResponse(c, errs.ErrValidation, nil)
	}

	if err := ac.settingsService.SavePaymentMethods(c.Request().Context(), req); err != nil {
		return response.WriteErrorResponse(c, err, nil)
	}
	return response.WriteSuccessResponse(c, "payment methods saved", nil)
}

func (ac *AdminController) RPSItems(c echo.Context) error {
	items, err := ac.settingsService.RPSItems(c.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(c, err, nil)
	}
	return response.WriteSuccessResponse(c, "items retrieved", items)
}

func (ac *AdminController) SaveRPSItems(c echo.Context) error {
	var req dto.SaveRPSItemsRequest
	if err := c.Bind(&req); err != nil {
		return response.WriteErrorResponse(c, errs.ErrValidation, nil)
	}

	items, err := ac.settingsService.SaveRPSItems(c.Request().Context(), req)
	if err != nil {
		return response.WriteErrorResponse(c, err, nil)
	}
	return response.WriteSuccessResponse(c, "items saved", items)
}
