package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"aquarium-tank-api/internal/domain"
	"aquarium-tank-api/internal/service"
	resp "aquarium-tank-api/internal/transport/http/response"
)

type stubValidator map[string]error

func (s stubValidator) ValidateToken(_ context.Context, token string) (service.UserOut, error) {
	err, ok := s[token]
	if !ok {
		return service.UserOut{}, domain.ErrUnauthorized
	}
	if err != nil {
		return service.UserOut{}, err
	}
	return service.UserOut{ID: 7, AuthID: "sub-7"}, nil
}

func serve(r *gin.Engine, req *http.Request) (*httptest.ResponseRecorder, resp.Resp) {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var out resp.Resp
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func TestRequireUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	v := stubValidator{"good": nil, "old": domain.ErrTokenExpired, "broken": fmt.Errorf("jwks: %w", context.Canceled)}
	r.GET("/me", RequireUser(v, zap.NewNop()), func(c *gin.Context) {
		u, ok := CurrentUser(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, resp.OK(u.ID))
	})

	cases := []struct {
		header  string
		status  int
		message string
	}{
		{"", http.StatusUnauthorized, resp.MsgNoToken},
		{"Basic abc", http.StatusUnauthorized, resp.MsgNoToken},
		{"Bearer ", http.StatusUnauthorized, resp.MsgNoToken},
		{"Bearer nope", http.StatusUnauthorized, resp.MsgInvalidToken},
		{"Bearer old", http.StatusUnauthorized, resp.MsgTokenExpired},
		{"Bearer broken", http.StatusUnauthorized, resp.MsgInvalidToken},
		{"bearer good", http.StatusOK, ""},
	}
	for _, tc := range cases {
		t.Run(tc.header, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w, out := serve(r, req)
			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.message, out.Message)
			assert.Equal(t, tc.status == http.StatusOK, out.Success)
		})
	}
}

func TestRequestIDEchoes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, RequestIDOf(c)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(KeyRequestID, "abc")
	w, _ := serve(r, req)
	assert.Equal(t, "abc", w.Header().Get(KeyRequestID))
	assert.Equal(t, "abc", w.Body.String())

	w, _ = serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, w.Header().Get(KeyRequestID), 36)

	long := httptest.NewRequest(http.MethodGet, "/", nil)
	long.Header.Set(KeyRequestID, strings.Repeat("x", 65))
	w, _ = serve(r, long)
	assert.Len(t, w.Header().Get(KeyRequestID), 36)
}

func TestRateLimitPerIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitPerIP(0.001, 1))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	first := httptest.NewRequest(http.MethodGet, "/", nil)
	first.RemoteAddr = "10.0.0.1:1234"
	w, _ := serve(r, first)
	assert.Equal(t, http.StatusNoContent, w.Code)

	again := httptest.NewRequest(http.MethodGet, "/", nil)
	again.RemoteAddr = "10.0.0.1:1235"
	w, out := serve(r, again)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, resp.MsgTooManyRequests, out.Message)

	other := httptest.NewRequest(http.MethodGet, "/", nil)
	other.RemoteAddr = "10.0.0.2:1234"
	w, _ = serve(r, other)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRateLimitPerIPEvictsIdleBuckets(t *testing.T) {
	gin.SetMode(gin.TestMode)
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	b := newIPBuckets(0.001, 1, time.Minute, func() time.Time { return clock })
	r := gin.New()
	r.Use(rateLimitPerIP(b))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	hit := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		w, _ := serve(r, req)
		return w.Code
	}

	assert.Equal(t, http.StatusNoContent, hit("10.0.0.1:1"))
	assert.Equal(t, http.StatusNoContent, hit("10.0.0.2:1"))
	assert.Equal(t, http.StatusTooManyRequests, hit("10.0.0.1:2"))
	assert.Equal(t, 2, b.len())

	clock = clock.Add(30 * time.Second)
	assert.Equal(t, http.StatusTooManyRequests, hit("10.0.0.2:2"))

	// 10.0.0.1 has been idle for a full minute, 10.0.0.2 only for 30s.
	clock = clock.Add(30 * time.Second)
	assert.Equal(t, http.StatusNoContent, hit("10.0.0.3:1"))
	assert.Equal(t, 2, b.len())
	assert.Equal(t, http.StatusNoContent, hit("10.0.0.1:3"))
	assert.Equal(t, 3, b.len())
}

func TestRecoveryAnswersWithEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery(zap.NewNop()))
	r.GET("/", func(*gin.Context) { panic("boom") })

	w, out := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, out.Success)
	assert.Equal(t, resp.MsgInternal, out.Message)
}

func TestTimeout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Timeout(10 * time.Millisecond))
	r.GET("/", func(c *gin.Context) { <-c.Request.Context().Done() })

	w, out := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.Equal(t, resp.MsgTimeout, out.Message)
}

func TestAccessLogMasksSecrets(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)
	r := gin.New()
	r.Use(AccessLog(zap.New(core)))
	r.GET("/tank", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(r, httptest.NewRequest(http.MethodGet, "/tank?page=2&token=secret", nil))

	require.Equal(t, 1, logs.Len())
	q := logs.All()[0].ContextMap()["query"].(map[string][]string)
	assert.Equal(t, []string{"2"}, q["page"])
	assert.Equal(t, []string{"****"}, q["token"])
}
