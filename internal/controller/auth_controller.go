package controller

import (
	"strings"

	"github.com/labstack/echo/v4"

	"gtshop/internal/dto"
	"gtshop/internal/service"
	"gtshop/pkg/errs"
	"gtshop/pkg/response"
)

type AuthController struct {
	authService service.AuthService
}

func CreateAuthController(e *echo.Echo, authService service.AuthService) {
	controller := &AuthController{authService: authService}

	group := e.Group("/api/v1/auth")
	group.POST("/register", controller.Register)
	group.POST("/login", controller.Login)
	group.POST("/logout", controller.Logout)
	group.POST("/admin-login", controller.AdminLogin)
	group.GET("/session", controller.Session)
}

func (ac *AuthController) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.WriteErrorResponse(c, errs.ErrValidation, nil)
	}
	if !validEmail(req.Email) {
		return response.WriteErrorResponse(c, errs.ErrValidation, map[string]string{"email": "invalid email address"})
	}
	if len(req.Password) < 6 {
		return response.WriteErrorResponse(c, errs.ErrValidation, map[string]string{"password": "password must be at least 6 characters"})
	}

	session, err := ac.authService.Register(c.Request().Context(), req.Email, req.Password, req.Username)
	if err != nil {
		return response.WriteErrorResponse(c, err, nil)
	}
	return response.WriteSuccessResponse(c, "registration successful", session)
}

func (ac *AuthController) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.WriteErrorResponse(c, errs.ErrValidation, nil)
	}
	if req.Email == "" || req.Password == "" {
		return response.WriteErrorResponse(c, errs.ErrValidation, nil)
	}

	session, err := ac.authService.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.WriteErrorResponse(c, err, nil)
	}
	return response.WriteSuccessResponse(c, "login successful", session)
}

func (ac *AuthController) Logout(c echo.Context) error {
	if err := ac.authService.SignOut(c.Request().Context()); err != nil {
		return response.WriteErrorResponse(c, err, nil)
	}
	return response.WriteSuccessResponse(c, "logout successful", nil)
}

func (ac *AuthController) AdminLogin(c echo.Context) error {
	var req dto.AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.WriteErrorResponse(c, errs.ErrValidation, nil)
	}

	if err := ac.authService.AdminLogin(c.Request().Context(), req.Password); err != nil {
		return response.WriteErrorResponse(c, err, nil)
	}
	return response.WriteSuccessResponse(c, "admin login successful", nil)
}

func (ac *AuthController) Session(c echo.Context) error {
	ctx := c.Request().Context()

	session, found, err := ac.authService.CurrentSession(ctx)
	if err != nil {
		return response.WriteErrorResponse(c, err, nil)
	}
	admin, err := ac.authService.AdminSession(ctx)
	if err != nil {
		return response.WriteErrorResponse(c, err, nil)
	}

	resp := dto.SessionResponse{LoggedIn: found, Admin: admin}
	if found {
		resp.UID = session.UID
		resp.Email = session.Email
		resp.DisplayName = session.DisplayName
	}
	return response.WriteSuccessResponse(c, "session retrieved", resp)
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at < 1 {
		return false
	}
	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}
