package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"finance-tracker/internal/logging"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var uuidPattern = `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		// empty want means a fresh UUID is expected
		want string
	}{
		{"no header generates uuid", "", ""},
		{"caller id is kept", "household-sync.7_b", "household-sync.7_b"},
		{"id with spaces is replaced", "abc def", ""},
		{"id with newline is replaced", "abc\r\nX-Injected: 1", ""},
		{"overlong id is replaced", strings.Repeat("a", maxTraceIDLength+1), ""},
		{"id at max length is kept", strings.Repeat("a", maxTraceIDLength), strings.Repeat("a", maxTraceIDLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
			if tt.incoming != "" {
				req.Header[TraceIDHeader] = []string{tt.incoming}
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var echoID, requestID string
			err := RequestID()(func(c echo.Context) error {
				echoID = GetTraceID(c)
				requestID = logging.TraceID(c.Request().Context())
				return c.NoContent(http.StatusOK)
			})(c)
			require.NoError(t, err)

			headerID := rec.Header().Get(TraceIDHeader)
			if tt.want == "" {
				assert.Regexp(t, uuidPattern, headerID)
				assert.NotEqual(t, tt.incoming, headerID)
			} else {
				assert.Equal(t, tt.want, headerID)
			}
			assert.Equal(t, headerID, echoID)
			assert.Equal(t, headerID, requestID)
		})
	}
}

func TestRequestID_DistinctPerRequest(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		id := rec.Header().Get(TraceIDHeader)
		assert.False(t, seen[id], "trace id %s reused", id)
		seen[id] = true
	}
}

func TestGetTraceID_EmptyWhenNotSet(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Empty(t, GetTraceID(c))
}
