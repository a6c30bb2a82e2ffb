// Package ez registers one-line gin actions that bind their input, call a
// service and answer with the response envelope.
package ez

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aquarium-tank-api/internal/domain"
	resp "aquarium-tank-api/internal/transport/http/response"
)

type Binder string

const (
	BindJSON  Binder = "json"  // request body
	BindQuery Binder = "query" // ?a=b
	BindNone  Binder = "none"  // handler reads c.Param itself
)

type EZ struct {
	g   *gin.RouterGroup
	log *zap.Logger
}

func New(g *gin.RouterGroup, l *zap.Logger) EZ { return EZ{g: g, log: l} }

// Action describes one endpoint: I is the bound input, O the data returned.
type Action[I any, O any] struct {
	Method  string
	Path    string
	Binder  Binder
	Message string // success message, optional
	Handler func(c *gin.Context, in *I) (O, error)
}

// RegisterAction mounts a on e. Every outcome is HTTP 200; failures carry
// success=false and a message, validation failures also the field errors.
func RegisterAction[I any, O any](e EZ, a Action[I, O]) {
	h := func(c *gin.Context) {
		var in I
		switch a.Binder {
		case BindJSON:
			// An empty body binds as the zero input; validation decides.
			if err := c.ShouldBindJSON(&in); err != nil && !errors.Is(err, io.EOF) {
				e.log.Debug("bind body", zap.String("path", c.FullPath()), zap.Error(err))
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					c.JSON(http.StatusOK, resp.Error(resp.MsgBodyTooLarge))
					return
				}
				c.JSON(http.StatusOK, resp.Error(resp.MsgInvalidBody))
				return
			}
		case BindQuery:
			if err := c.ShouldBindQuery(&in); err != nil {
				e.log.Debug("bind query", zap.String("path", c.FullPath()), zap.Error(err))
				c.JSON(http.StatusOK, resp.Error(resp.MsgInvalidQuery))
				return
			}
		}

		out, err := a.Handler(c, &in)
		if err != nil {
			e.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, resp.OKMsg(out, a.Message))
	}

	switch strings.ToUpper(a.Method) {
	case http.MethodGet:
		e.g.GET(a.Path, h)
	case http.MethodPut:
		e.g.PUT(a.Path, h)
	case http.MethodPatch:
		e.g.PATCH(a.Path, h)
	case http.MethodDelete:
		e.g.DELETE(a.Path, h)
	default:
		e.g.POST(a.Path, h)
	}
}

// Fail writes err as a failed envelope. Errors the caller can act on keep
// their message; anything else is logged and reported as an internal error.
func (e EZ) Fail(c *gin.Context, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusOK, resp.Error(resp.MsgValidationFailed, ve.Violations...))
		return
	}
	if errors.Is(err, context.DeadlineExceeded) {
		c.JSON(http.StatusGatewayTimeout, resp.Error(resp.MsgTimeout))
		return
	}
	if Public(err) {
		c.JSON(http.StatusOK, resp.Error(err.Error()))
		return
	}
	e.log.Error("action failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	_ = c.Error(err)
	c.JSON(http.StatusOK, resp.Error(resp.MsgInternal))
}

// Public reports whether err is a domain failure whose message is meant for
// the caller.
func Public(err error) bool {
	var (
		nf  *domain.EntityNotFoundError
		dup *domain.AlreadyExistsError
	)
	return errors.As(err, &nf) || errors.As(err, &dup) ||
		errors.Is(err, domain.ErrAuthentication) ||
		errors.Is(err, domain.ErrUnauthorized) ||
		errors.Is(err, domain.ErrTokenExpired)
}

// ParamID reads a positive integer path parameter.
func ParamID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, domain.NewValidationError(domain.Violation{Field: name, Message: name + " must be a positive integer"})
	}
	return id, nil
}
