package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// newTestContext builds a context for method/path with an optional JSON body.
// Raw strings are sent unchanged so malformed bodies can be exercised.
func newTestContext(e *echo.Echo, method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	switch b := body.(type) {
	case nil:
		req = httptest.NewRequest(method, path, nil)
	case string:
		req = httptest.NewRequest(method, path, bytes.NewBufferString(b))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	default:
		jsonBody, _ := json.Marshal(b)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "test-trace")
	return c, rec
}

func decodeBody(rec *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return body
}

func errorCode(rec *httptest.ResponseRecorder) string {
	body := decodeBody(rec)
	errBody, _ := body["error"].(map[string]interface{})
	code, _ := errBody["code"].(string)
	return code
}
