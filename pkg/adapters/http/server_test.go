package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/spark"
	"github.com/aretw0/spark/pkg/adapters/memory"
	"github.com/aretw0/spark/pkg/domain"
	"github.com/aretw0/spark/pkg/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// watchingEngine adds a scripted Watch to a real engine.
type watchingEngine struct {
	*spark.Engine
	WatchFunc func(ctx context.Context) (<-chan string, error)
}

func (e *watchingEngine) Watch(ctx context.Context) (<-chan string, error) {
	if e.WatchFunc != nil {
		return e.WatchFunc(ctx)
	}
	return e.Engine.Watch(ctx)
}

func newTestHandler(t *testing.T) (http.Handler, *watchingEngine) {
	t.Helper()
	source, err := memory.NewSource(
		&domain.Theme{Name: "base", Tokens: tree.Of(
			"color", tree.Of("text", "#111"),
			"space", 4,
		)},
		&domain.Theme{Name: "dark", Extends: "base", Tokens: tree.Of(
			"color", tree.Of("text", "#eee"),
		)},
		&domain.Theme{Name: "loop", Extends: "loop"},
	)
	require.NoError(t, err)
	eng, err := spark.New("", spark.WithSource(source))
	require.NoError(t, err)

	wrapped := &watchingEngine{Engine: eng}
	return NewHandler(wrapped), wrapped
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	h, _ := newTestHandler(t)
	w := do(t, h, "GET", "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestListThemes(t *testing.T) {
	h, _ := newTestHandler(t)
	w := do(t, h, "GET", "/themes", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"themes":["base","dark","loop"]}`, w.Body.String())
}

func TestGetTokens(t *testing.T) {
	h, _ := newTestHandler(t)

	w := do(t, h, "GET", "/themes/dark/tokens", "")
	require.Equal(t, http.StatusOK, w.Code)
	// Key order is preserved on the wire.
	assert.Equal(t, `{"color":{"text":"#eee"},"space":4}`, strings.TrimSpace(w.Body.String()))

	w = do(t, h, "GET", "/themes/nope/tokens", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, h, "GET", "/themes/loop/tokens", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetTokens_BrokenExtends(t *testing.T) {
	source, err := memory.NewSource(&domain.Theme{Name: "orphan", Extends: "ghost"})
	require.NoError(t, err)
	eng, err := spark.New("", spark.WithSource(source))
	require.NoError(t, err)
	h := NewHandler(&watchingEngine{Engine: eng})

	w := do(t, h, "GET", "/themes/orphan/tokens", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "orphan extends ghost")
}

func TestGetReferences(t *testing.T) {
	h, _ := newTestHandler(t)
	w := do(t, h, "GET", "/themes/base/references", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"color":{"text":"var(--spark-color-text)"},"space":"var(--spark-space)"}`, w.Body.String())
}

func TestStylesheets(t *testing.T) {
	h, _ := newTestHandler(t)

	w := do(t, h, "GET", "/themes/base/stylesheet.css", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/css; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, ":root {\n  --spark-color-text: #111;\n  --spark-space: 4;\n}\n", w.Body.String())

	// The full build fails while a cyclic theme is present.
	w = do(t, h, "GET", "/stylesheet.css", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestPostClassNames(t *testing.T) {
	h, _ := newTestHandler(t)

	w := do(t, h, "POST", "/classnames", `{"items": ["btn", 0, null, {"active": true, "disabled": false, "large": 1}, ["a", ["b"]]]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "btn active large a b", resp["class"])

	w = do(t, h, "POST", "/classnames", `{"items": "btn"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, "POST", "/classnames", `[1, 2]`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostClassNames_RejectsYAMLBodies(t *testing.T) {
	h, _ := newTestHandler(t)

	bodies := map[string]string{
		"self alias":   "items: &a [*a]\n",
		"nested alias": "a: &a [x, x, x, x]\nb: &b [*a, *a, *a, *a]\nitems: [*b, *b, *b, *b]\n",
		"plain yaml":   "items: [btn]\n",
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			w := do(t, h, "POST", "/classnames", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestMetrics(t *testing.T) {
	h, _ := newTestHandler(t)
	do(t, h, "GET", "/themes/base/stylesheet.css", "")
	do(t, h, "GET", "/themes/nope/tokens", "")

	w := do(t, h, "GET", "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `spark_http_requests_total{route="/themes/{name}/stylesheet.css",status="200"} 1`)
	assert.Contains(t, body, `spark_http_requests_total{route="/themes/{name}/tokens",status="404"} 1`)
	assert.Contains(t, body, `spark_stylesheet_render_seconds_count{theme="base"} 1`)
}

func TestSubscribeEvents(t *testing.T) {
	h, eng := newTestHandler(t)
	eng.WatchFunc = func(ctx context.Context) (<-chan string, error) {
		ch := make(chan string, 1)
		ch <- "dark"
		close(ch)
		return ch, nil
	}

	w := do(t, h, "GET", "/events", "")
	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "event: ping")
	assert.Contains(t, body, "event: theme\ndata: dark\n\n")
}

func TestSubscribeEvents_Unsupported(t *testing.T) {
	h, _ := newTestHandler(t)
	w := do(t, h, "GET", "/events", "")
	assert.Equal(t, http.StatusNotImplemented, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	h, _ := newTestHandler(t)
	w := do(t, h, "OPTIONS", "/classnames", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
