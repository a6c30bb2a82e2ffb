package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aquarium-tank-api/internal/service"
	"aquarium-tank-api/internal/transport/http/ez"
	"aquarium-tank-api/pkg/paginate"
)

type FishHandler struct {
	svc   *service.FishService
	guard gin.HandlerFunc
	log   *zap.Logger
}

func NewFishHandler(svc *service.FishService, guard gin.HandlerFunc, l *zap.Logger) *FishHandler {
	return &FishHandler{svc: svc, guard: guard, log: l}
}

func (h *FishHandler) Priority() int { return 30 }

func (h *FishHandler) MountAPI(g *gin.RouterGroup) {
	e := ez.New(g.Group("/fish", h.guard), h.log)

	ez.RegisterAction(e, ez.Action[service.CreateFishInput, service.FishOut]{
		Method:  http.MethodPost,
		Path:    "",
		Binder:  ez.BindJSON,
		Message: "Fish created successfully",
		Handler: func(c *gin.Context, in *service.CreateFishInput) (service.FishOut, error) {
			return h.svc.Create(c.Request.Context(), *in)
		},
	})

	ez.RegisterAction(e, ez.Action[service.ListFishInput, paginate.Page[service.FishOut]]{
		Method: http.MethodGet,
		Path:   "",
		Binder: ez.BindQuery,
		Handler: func(c *gin.Context, in *service.ListFishInput) (paginate.Page[service.FishOut], error) {
			return h.svc.List(c.Request.Context(), *in)
		},
	})

	ez.RegisterAction(e, ez.Action[struct{}, service.FishOut]{
		Method: http.MethodGet,
		Path:   "/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (service.FishOut, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return service.FishOut{}, err
			}
			return h.svc.Get(c.Request.Context(), id)
		},
	})

	ez.RegisterAction(e, ez.Action[service.UpdateFishInput, service.FishOut]{
		Method:  http.MethodPatch,
		Path:    "/:id",
		Binder:  ez.BindJSON,
		Message: "Fish updated successfully",
		Handler: func(c *gin.Context, in *service.UpdateFishInput) (service.FishOut, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return service.FishOut{}, err
			}
			return h.svc.Update(c.Request.Context(), id, *in)
		},
	})

	ez.RegisterAction(e, ez.Action[struct{}, any]{
		Method:  http.MethodDelete,
		Path:    "/:id",
		Binder:  ez.BindNone,
		Message: "Fish deleted successfully",
		Handler: func(c *gin.Context, _ *struct{}) (any, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return nil, err
			}
			return nil, h.svc.Delete(c.Request.Context(), id)
		},
	})

	ez.RegisterAction(e, ez.Action[struct{}, service.FishOut]{
		Method:  http.MethodPut,
		Path:    "/:id/tank/:tankId",
		Binder:  ez.BindNone,
		Message: "Fish assigned to tank successfully",
		Handler: func(c *gin.Context, _ *struct{}) (service.FishOut, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return service.FishOut{}, err
			}
			tankID, err := ez.ParamID(c, "tankId")
			if err != nil {
				return service.FishOut{}, err
			}
			return h.svc.AssignToTank(c.Request.Context(), id, tankID)
		},
	})

	ez.RegisterAction(e, ez.Action[struct{}, service.FishOut]{
		Method:  http.MethodDelete,
		Path:    "/:id/tank",
		Binder:  ez.BindNone,
		Message: "Fish removed from tank successfully",
		Handler: func(c *gin.Context, _ *struct{}) (service.FishOut, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return service.FishOut{}, err
			}
			return h.svc.RemoveFromTank(c.Request.Context(), id)
		},
	})
}
