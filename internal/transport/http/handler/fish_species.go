package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aquarium-tank-api/internal/service"
	"aquarium-tank-api/internal/transport/http/ez"
	"aquarium-tank-api/pkg/paginate"
)

// FishSpeciesHandler serves /fish-species. The catalogue is readable without
// a token; changes need one.
type FishSpeciesHandler struct {
	svc   *service.FishSpeciesService
	guard gin.HandlerFunc
	log   *zap.Logger
}

func NewFishSpeciesHandler(svc *service.FishSpeciesService, guard gin.HandlerFunc, l *zap.Logger) *FishSpeciesHandler {
	return &FishSpeciesHandler{svc: svc, guard: guard, log: l}
}

func (h *FishSpeciesHandler) Priority() int { return 40 }

func (h *FishSpeciesHandler) MountAPI(g *gin.RouterGroup) {
	read := ez.New(g.Group("/fish-species"), h.log)

	ez.RegisterAction(read, ez.Action[service.ListFishSpeciesInput, paginate.Page[service.FishSpeciesOut]]{
		Method: http.MethodGet,
		Path:   "",
		Binder: ez.BindQuery,
		Handler: func(c *gin.Context, in *service.ListFishSpeciesInput) (paginate.Page[service.FishSpeciesOut], error) {
			return h.svc.List(c.Request.Context(), *in)
		},
	})

	ez.RegisterAction(read, ez.Action[service.CompatibleInput, []service.FishSpeciesOut]{
		Method: http.MethodGet,
		Path:   "/compatible",
		Binder: ez.BindQuery,
		Handler: func(c *gin.Context, in *service.CompatibleInput) ([]service.FishSpeciesOut, error) {
			return h.svc.Compatible(c.Request.Context(), *in)
		},
	})

	ez.RegisterAction(read, ez.Action[struct{}, service.FishSpeciesOut]{
		Method: http.MethodGet,
		Path:   "/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (service.FishSpeciesOut, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return service.FishSpeciesOut{}, err
			}
			return h.svc.Get(c.Request.Context(), id)
		},
	})

	write := ez.New(g.Group("/fish-species", h.guard), h.log)

	ez.RegisterAction(write, ez.Action[service.CreateFishSpeciesInput, service.FishSpeciesOut]{
		Method:  http.MethodPost,
		Path:    "",
		Binder:  ez.BindJSON,
		Message: "Fish species created successfully",
		Handler: func(c *gin.Context, in *service.CreateFishSpeciesInput) (service.FishSpeciesOut, error) {
			return h.svc.Create(c.Request.Context(), *in)
		},
	})

	ez.RegisterAction(write, ez.Action[service.UpdateFishSpeciesInput, service.FishSpeciesOut]{
		Method:  http.MethodPatch,
		Path:    "/:id",
		Binder:  ez.BindJSON,
		Message: "Fish species updated successfully",
		Handler: func(c *gin.Context, in *service.UpdateFishSpeciesInput) (service.FishSpeciesOut, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return service.FishSpeciesOut{}, err
			}
			return h.svc.Update(c.Request.Context(), id, *in)
		},
	})

	ez.RegisterAction(write, ez.Action[struct{}, any]{
		Method:  http.MethodDelete,
		Path:    "/:id",
		Binder:  ez.BindNone,
		Message: "Fish species deleted successfully",
		Handler: func(c *gin.Context, _ *struct{}) (any, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return nil, err
			}
			return nil, h.svc.Delete(c.Request.Context(), id)
		},
	})

	ez.RegisterAction(write, ez.Action[service.AliasInput, service.FishSpeciesOut]{
		Method:  http.MethodPost,
		Path:    "/:id/aliases",
		Binder:  ez.BindJSON,
		Message: "Alias added successfully",
		Handler: func(c *gin.Context, in *service.AliasInput) (service.FishSpeciesOut, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return service.FishSpeciesOut{}, err
			}
			return h.svc.AddAlias(c.Request.Context(), id, *in)
		},
	})

	ez.RegisterAction(write, ez.Action[struct{}, service.FishSpeciesOut]{
		Method:  http.MethodDelete,
		Path:    "/:id/aliases/:alias",
		Binder:  ez.BindNone,
		Message: "Alias removed successfully",
		Handler: func(c *gin.Context, _ *struct{}) (service.FishSpeciesOut, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return service.FishSpeciesOut{}, err
			}
			return h.svc.RemoveAlias(c.Request.Context(), id, service.AliasInput{Alias: c.Param("alias")})
		},
	})
}
