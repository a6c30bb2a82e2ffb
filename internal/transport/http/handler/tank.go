package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aquarium-tank-api/internal/service"
	"aquarium-tank-api/internal/transport/http/ez"
	"aquarium-tank-api/pkg/paginate"
)

// TankHandler serves /tank. Every route requires a caller; reads and writes
// by id are not restricted to the owner.
type TankHandler struct {
	svc   *service.TankService
	guard gin.HandlerFunc
	log   *zap.Logger
}

func NewTankHandler(svc *service.TankService, guard gin.HandlerFunc, l *zap.Logger) *TankHandler {
	return &TankHandler{svc: svc, guard: guard, log: l}
}

func (h *TankHandler) Priority() int { return 20 }

func (h *TankHandler) MountAPI(g *gin.RouterGroup) {
	e := ez.New(g.Group("/tank", h.guard), h.log)

	ez.RegisterAction(e, ez.Action[service.CreateTankInput, service.TankOut]{
		Method:  http.MethodPost,
		Path:    "",
		Binder:  ez.BindJSON,
		Message: "Tank created successfully",
		Handler: func(c *gin.Context, in *service.CreateTankInput) (service.TankOut, error) {
			u, err := caller(c)
			if err != nil {
				return service.TankOut{}, err
			}
			return h.svc.Create(c.Request.Context(), *in, u.ID)
		},
	})

	ez.RegisterAction(e, ez.Action[paginate.Request, paginate.Page[service.TankOut]]{
		Method: http.MethodGet,
		Path:   "",
		Binder: ez.BindQuery,
		Handler: func(c *gin.Context, in *paginate.Request) (paginate.Page[service.TankOut], error) {
			u, err := caller(c)
			if err != nil {
				return paginate.Page[service.TankOut]{}, err
			}
			return h.svc.List(c.Request.Context(), u.ID, *in)
		},
	})

	ez.RegisterAction(e, ez.Action[struct{}, []service.TankOut]{
		Method: http.MethodGet,
		Path:   "/my-tanks",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]service.TankOut, error) {
			u, err := caller(c)
			if err != nil {
				return nil, err
			}
			return h.svc.ListByOwner(c.Request.Context(), u.ID)
		},
	})

	ez.RegisterAction(e, ez.Action[struct{}, service.TankOut]{
		Method: http.MethodGet,
		Path:   "/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (service.TankOut, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return service.TankOut{}, err
			}
			return h.svc.Get(c.Request.Context(), id)
		},
	})

	ez.RegisterAction(e, ez.Action[service.UpdateTankInput, service.TankOut]{
		Method:  http.MethodPatch,
		Path:    "/:id",
		Binder:  ez.BindJSON,
		Message: "Tank updated successfully",
		Handler: func(c *gin.Context, in *service.UpdateTankInput) (service.TankOut, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return service.TankOut{}, err
			}
			return h.svc.Update(c.Request.Context(), id, *in)
		},
	})

	ez.RegisterAction(e, ez.Action[struct{}, any]{
		Method:  http.MethodDelete,
		Path:    "/:id",
		Binder:  ez.BindNone,
		Message: "Tank deleted successfully",
		Handler: func(c *gin.Context, _ *struct{}) (any, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return nil, err
			}
			return nil, h.svc.Delete(c.Request.Context(), id)
		},
	})

	ez.RegisterAction(e, ez.Action[struct{}, service.TankOut]{
		Method:  http.MethodPut,
		Path:    "/:id/owner",
		Binder:  ez.BindNone,
		Message: "Tank assigned successfully",
		Handler: func(c *gin.Context, _ *struct{}) (service.TankOut, error) {
			u, err := caller(c)
			if err != nil {
				return service.TankOut{}, err
			}
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return service.TankOut{}, err
			}
			return h.svc.AssignToUser(c.Request.Context(), id, u.ID)
		},
	})

	ez.RegisterAction(e, ez.Action[struct{}, service.TankOut]{
		Method:  http.MethodDelete,
		Path:    "/:id/owner",
		Binder:  ez.BindNone,
		Message: "Tank unassigned successfully",
		Handler: func(c *gin.Context, _ *struct{}) (service.TankOut, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return service.TankOut{}, err
			}
			return h.svc.RemoveFromUser(c.Request.Context(), id)
		},
	})

	ez.RegisterAction(e, ez.Action[paginate.Request, paginate.Page[service.FishOut]]{
		Method: http.MethodGet,
		Path:   "/:id/fish",
		Binder: ez.BindQuery,
		Handler: func(c *gin.Context, in *paginate.Request) (paginate.Page[service.FishOut], error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return paginate.Page[service.FishOut]{}, err
			}
			return h.svc.ListFish(c.Request.Context(), id, *in)
		},
	})
}
