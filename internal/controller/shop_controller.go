package controller

import (
	"github.com/labstack/echo/v4"

	"gtshop/internal/service"
	"gtshop/pkg/response"
)

// ShopController serves the public storefront data: shop settings without
// credentials and the RPS catalog.
type ShopController struct {
	settingsService service.SettingsService
}

func CreateShopController(e *echo.Echo, settingsService service.SettingsService) {
	controller := &ShopController{settingsService: settingsService}

	group := e.Group("/api/v1")
	group.GET("/settings", controller.Settings)
	group.GET("/rps-items", controller.RPSItems)
}

func (sc *ShopController) Settings(c echo.Context) error {
	settings, err := sc.settingsService.PublicSettings(c.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(c, err, nil)
	}
	return response.WriteSuccessResponse(c, "settings retrieved", settings)
}

func (sc *ShopController) RPSItems(c echo.Context) error {
	items, err := sc.settingsService.RPSItems(c.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(c, err, nil)
	}
	return response.WriteSuccessResponse(c, "items retrieved", items)
}
