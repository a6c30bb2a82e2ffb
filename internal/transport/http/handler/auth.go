package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aquarium-tank-api/internal/service"
	"aquarium-tank-api/internal/transport/http/ez"
)

type AuthHandler struct {
	svc   *service.AuthService
	guard gin.HandlerFunc
	log   *zap.Logger
}

func NewAuthHandler(svc *service.AuthService, guard gin.HandlerFunc, l *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, guard: guard, log: l}
}

func (h *AuthHandler) Priority() int { return 10 }

func (h *AuthHandler) MountAPI(g *gin.RouterGroup) {
	public := ez.New(g.Group("/auth"), h.log)

	ez.RegisterAction(public, ez.Action[service.RegisterInput, service.AuthOut]{
		Method:  http.MethodPost,
		Path:    "/register",
		Binder:  ez.BindJSON,
		Message: "Registration successful",
		Handler: func(c *gin.Context, in *service.RegisterInput) (service.AuthOut, error) {
			return h.svc.Register(c.Request.Context(), *in)
		},
	})

	ez.RegisterAction(public, ez.Action[service.LoginInput, service.AuthOut]{
		Method:  http.MethodPost,
		Path:    "/login",
		Binder:  ez.BindJSON,
		Message: "Login successful",
		Handler: func(c *gin.Context, in *service.LoginInput) (service.AuthOut, error) {
			return h.svc.Login(c.Request.Context(), *in)
		},
	})

	private := ez.New(g.Group("/auth", h.guard), h.log)

	ez.RegisterAction(private, ez.Action[struct{}, service.UserOut]{
		Method: http.MethodGet,
		Path:   "/me",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (service.UserOut, error) {
			u, err := caller(c)
			if err != nil {
				return service.UserOut{}, err
			}
			return h.svc.Me(c.Request.Context(), u.ID)
		},
	})

	ez.RegisterAction(private, ez.Action[service.ProfileInput, service.UserOut]{
		Method:  http.MethodPatch,
		Path:    "/me",
		Binder:  ez.BindJSON,
		Message: "Profile updated successfully",
		Handler: func(c *gin.Context, in *service.ProfileInput) (service.UserOut, error) {
			u, err := caller(c)
			if err != nil {
				return service.UserOut{}, err
			}
			return h.svc.UpdateProfile(c.Request.Context(), u.ID, *in)
		},
	})
}
