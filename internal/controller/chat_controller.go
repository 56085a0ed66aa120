package controller

import (
	"github.com/labstack/echo/v4"

	"gtshop/internal/domain"
	"gtshop/internal/dto"
	"gtshop/internal/service"
	"gtshop/pkg/errs"
	"gtshop/pkg/response"
)

type ChatController struct {
	chatService service.ChatService
}

func CreateChatController(e *echo.Echo, chatService service.ChatService) {
	controller := &ChatController{chatService: chatService}

	group := e.Group("/api/v1/chat")
	group.POST("/messages", controller.Send)
	group.GET("/messages", controller.Transcript)
	group.DELETE("/messages", controller.Clear)
	group.GET("/quick-questions", controller.QuickQuestions)

	prefs := e.Group("/api/v1/preferences")
	prefs.GET("", controller.Preferences)
	prefs.PUT("", controller.SavePreferences)
}

func (cc *ChatController) Send(c echo.Context) error {
	var req dto.ChatMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.WriteErrorResponse(c, errs.ErrValidation, nil)
	}

	messages, err := cc.chatService.Send(c.Request().Context(), req.Text, req.Language)
	if err != nil {
		return response.WriteErrorResponse(c, err, nil)
	}
	return response.WriteSuccessResponse(c, "message sent", messages)
}

func (cc *ChatController) Transcript(c echo.Context) error {
	messages, err := cc.chatService.Transcript(c.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(c, err, nil)
	}
	return response.WriteSuccessResponse(c, "messages retrieved", messages)
}

func (cc *ChatController) Clear(c echo.Context) error {
	if err := cc.chatService.ClearTranscript(c.Request().Context()); err != nil {
		return response.WriteErrorResponse(c, err, nil)
	}
	return response.WriteSuccessResponse(c, "messages cleared", nil)
}

func (cc *ChatController) QuickQuestions(c echo.Context) error {
	questions := cc.chatService.QuickQuestions(c.Request().Context(), c.QueryParam("lang"))
	return response.WriteSuccessResponse(c, "quick questions retrieved", questions)
}

func (cc *ChatController) Preferences(c echo.Context) error {
	prefs, err := cc.chatService.Preferences(c.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(c, err, nil)
	}
	return response.WriteSuccessResponse(c, "preferences retrieved", prefs)
}

func (cc *ChatController) SavePreferences(c echo.Context) error {
	var req dto.PreferencesRequest
	if err := c.Bind(&req); err != nil {
		return response.WriteErrorResponse(c, errs.ErrValidation, nil)
	}

	prefs, err := cc.chatService.SavePreferences(c.Request().Context(), domain.Preferences{
		Language: req.Language,
		Theme:    req.Theme,
	})
	if err != nil {
		return response.WriteErrorResponse(c, err, nil)
	}
	return response.WriteSuccessResponse(c, "preferences saved", prefs)
}
