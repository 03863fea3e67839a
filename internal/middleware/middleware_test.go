package middleware_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-hrpay/internal/middleware"
	"go-hrpay/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID_PropagatesThroughContext(t *testing.T) {
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.ContextLogger(zap.NewNop()))

	var seenRID string
	router.GET("/ping", func(c *gin.Context) {
		seenRID = contextutil.GetRequestID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, seenRID)
	// One id end to end: the header echo and the context value agree.
	assert.Equal(t, seenRID, w.Header().Get("X-Request-ID"))
}

func TestRequestID_KeepsIncomingHeader(t *testing.T) {
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.ContextLogger(zap.NewNop()))

	var seenRID string
	router.GET("/ping", func(c *gin.Context) {
		seenRID = contextutil.GetRequestID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "rid-from-client")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "rid-from-client", seenRID)
	assert.Equal(t, "rid-from-client", w.Header().Get("X-Request-ID"))
}

func TestRateLimitByIP(t *testing.T) {
	router := gin.New()
	router.Use(middleware.RateLimitByIP(1, 1))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	var envelope struct {
		Ok    bool `json:"ok"`
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.False(t, envelope.Ok)
	assert.Equal(t, "RATE_LIMITED", envelope.Error.Code)
}

func TestIdempotency_ReplayMatchesLiveEnvelope(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()

	router := gin.New()
	router.POST("/payrolls/calculate", middleware.Idempotency(rdb), func(c *gin.Context) {
		t.Fatal("handler ran despite cached response")
	})

	cacheKey := fmt.Sprintf("idemp:%s:%s:%s", "/payrolls/calculate", "", "req-1")
	redisMock.ExpectGet(cacheKey).SetVal(`{"message":"Payroll computed for 02/2025: 1 processed, 0 failed"}`)

	req := httptest.NewRequest(http.MethodPost, "/payrolls/calculate", strings.NewReader(`{}`))
	req.Header.Set("Idempotency-Key", "req-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Ok   bool `json:"ok"`
		Data struct {
			Message string `json:"message"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Ok)
	assert.Equal(t, "Payroll computed for 02/2025: 1 processed, 0 failed", envelope.Data.Message)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestIdempotency_InFlightDuplicateConflicts(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()

	router := gin.New()
	router.POST("/payrolls/calculate", middleware.Idempotency(rdb), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	cacheKey := fmt.Sprintf("idemp:%s:%s:%s", "/payrolls/calculate", "", "req-2")
	redisMock.ExpectGet(cacheKey).RedisNil()
	redisMock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

	req := httptest.NewRequest(http.MethodPost, "/payrolls/calculate", strings.NewReader(`{}`))
	req.Header.Set("Idempotency-Key", "req-2")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var envelope struct {
		Ok    bool `json:"ok"`
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.False(t, envelope.Ok)
	assert.Equal(t, "PROCESSING", envelope.Error.Code)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}
