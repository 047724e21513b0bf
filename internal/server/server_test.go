package server_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/internal/server"
	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/nearby"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.PanicLevel)
	return log
}

func newRouter(maxDepth int) *gin.Engine {
	dict := dictionary.New("cat", "cot", "cog", "dog", "dot", "bat")
	return server.New(nearby.New(dict), dict, testLogger(), maxDepth).Router()
}

func doGet(r http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	w := doGet(newRouter(0), "/healthz")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(6), body["words"])
}

func TestLadder_Found(t *testing.T) {
	w := doGet(newRouter(0), "/v1/ladder?from=CAT&to=dog")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["found"])
	assert.Equal(t, float64(3), body["steps"])
	assert.Equal(t, []any{"cat", "cot", "dot", "dog"}, body["path"])
}

func TestLadder_NotFound(t *testing.T) {
	w := doGet(newRouter(0), "/v1/ladder?from=cat&to=zzz")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["found"])
	assert.Nil(t, body["path"])
	assert.Equal(t, float64(-1), body["steps"])
}

func TestLadder_DepthCap(t *testing.T) {
	// server cap of 2 wins over a larger request
	w := doGet(newRouter(2), "/v1/ladder?from=cat&to=dog&max_depth=5")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode(t, w)["found"])

	// a request may lower an unlimited server
	w = doGet(newRouter(0), "/v1/ladder?from=cat&to=dog&max_depth=2")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode(t, w)["found"])
}

func TestLadder_BadRequest(t *testing.T) {
	r := newRouter(0)
	for _, target := range []string{
		"/v1/ladder?from=cat",
		"/v1/ladder?to=dog",
		"/v1/ladder?from=cat&to=dog&max_depth=-1",
		"/v1/ladder?from=cat&to=dog&max_depth=x",
		"/v1/ladder?from=cat&to=dog&any_length=maybe",
		"/v1/neighbors?word=cat&any_length=2",
	} {
		w := doGet(r, target)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		body := decode(t, w)
		errObj, _ := body["error"].(map[string]any)
		assert.Equal(t, server.ErrCodeInvalidRequest, errObj["code"], target)
	}
}

func TestLadder_ProviderFailure(t *testing.T) {
	p := ladder.ProviderFunc(func(string, bool) ([]string, error) { return nil, errors.New("down") })
	r := server.New(p, dictionary.New("cat"), testLogger(), 0).Router()

	w := doGet(r, "/v1/ladder?from=cat&to=dog")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = doGet(r, "/v1/neighbors?word=cat")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestNeighbors(t *testing.T) {
	r := newRouter(0)

	w := doGet(r, "/v1/neighbors?word=cot")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{"dot", "cat", "cog"}, decode(t, w)["neighbors"])

	w = doGet(r, "/v1/neighbors?word=qqq")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{}, decode(t, w)["neighbors"])

	w = doGet(r, "/v1/neighbors")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	r := newRouter(0)
	doGet(r, "/v1/ladder?from=cat&to=dog")

	w := doGet(r, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "ladder_searches_total"))
}

func TestAnyLength(t *testing.T) {
	dict := dictionary.New("cat", "at", "cart")
	r := server.New(nearby.New(dict), dict, testLogger(), 0).Router()

	w := doGet(r, "/v1/neighbors?word=cat&any_length=true")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{"cart", "at"}, decode(t, w)["neighbors"])

	w = doGet(r, "/v1/ladder?from=at&to=cart&any_length=1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{"at", "cat", "cart"}, decode(t, w)["path"])
}
