package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salonq/internal/metrics"
)

const secret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func protected() *gin.Engine {
	r := gin.New()
	r.Use(AuthMiddleware(secret))
	r.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user":  c.GetString(ContextUserID),
			"salon": c.GetString(ContextSalonID),
			"role":  c.GetString(ContextUserRole),
		})
	})
	r.GET("/owner", RequireOwner(), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func call(r http.Handler, method, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := protected()
	exp := time.Now().Add(time.Hour).Unix()

	customer := sign(t, jwt.MapClaims{"sub": "u1", "role": "customer", "salonId": "", "exp": exp})
	owner := sign(t, jwt.MapClaims{"sub": "u2", "role": "owner", "salonId": "1", "exp": exp})
	expired := sign(t, jwt.MapClaims{"sub": "u1", "exp": time.Now().Add(-time.Hour).Unix()})
	noSub := sign(t, jwt.MapClaims{"role": "customer", "exp": exp})

	w := call(r, http.MethodGet, "/me", map[string]string{"Authorization": "Bearer " + customer})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user":"u1"`)

	assert.Equal(t, http.StatusUnauthorized, call(r, http.MethodGet, "/me", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, call(r, http.MethodGet, "/me", map[string]string{"Authorization": customer}).Code)
	assert.Equal(t, http.StatusUnauthorized, call(r, http.MethodGet, "/me", map[string]string{"Authorization": "Bearer " + expired}).Code)
	assert.Equal(t, http.StatusUnauthorized, call(r, http.MethodGet, "/me", map[string]string{"Authorization": "Bearer " + noSub}).Code)

	assert.Equal(t, http.StatusForbidden, call(r, http.MethodGet, "/owner", map[string]string{"Authorization": "Bearer " + customer}).Code)
	assert.Equal(t, http.StatusNoContent, call(r, http.MethodGet, "/owner", map[string]string{"Authorization": "Bearer " + owner}).Code)
}

func TestDeviceScope(t *testing.T) {
	r := gin.New()
	r.GET("/s", DeviceScope(), func(c *gin.Context) { c.String(http.StatusOK, c.GetString(ContextDeviceID)) })

	w := call(r, http.MethodGet, "/s", map[string]string{HeaderDeviceID: " phone-1 "})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "phone-1", w.Body.String())

	assert.Equal(t, http.StatusBadRequest, call(r, http.MethodGet, "/s", nil).Code)
	assert.Equal(t, http.StatusBadRequest, call(r, http.MethodGet, "/s", map[string]string{HeaderDeviceID: "a:b"}).Code)
	assert.Equal(t, http.StatusBadRequest, call(r, http.MethodGet, "/s", map[string]string{HeaderDeviceID: strings.Repeat("x", 200)}).Code)
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := call(r, http.MethodOptions, "/x", map[string]string{"Origin": "http://localhost:8081"})

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:8081", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), HeaderDeviceID)
}

func TestMetricsAndLogging(t *testing.T) {
	m := metrics.NewCollector("salonq")
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()), Metrics(m), Recovery(zap.NewNop()))
	r.GET("/salons/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	call(r, http.MethodGet, "/salons/1", nil)
	call(r, http.MethodGet, "/salons/2", nil)
	w := call(r, http.MethodGet, "/panic", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.InDelta(t, 2, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/salons/:id", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/panic", "500")), 0)
}
