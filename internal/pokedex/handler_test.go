package pokedex_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"novadex/internal/httpx"
	"novadex/internal/pokedex"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(t *testing.T) (*gin.Engine, func(int)) {
	t.Helper()
	svc, up := newService(t)
	return pokedex.NewRouter(svc), up.FailWith
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return out
}

func assertEnvelope(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, status, w.Body.String())
	}
	env := decode[httpx.ErrorEnvelope](t, w)
	if env.Error.Status != status {
		t.Fatalf("envelope status = %d, want %d", env.Error.Status, status)
	}
	if message != "" && env.Error.Message != message {
		t.Fatalf("envelope message = %q, want %q", env.Error.Message, message)
	}
}

func TestHealth(t *testing.T) {
	router, _ := newRouter(t)
	w := serve(router, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"ok"`) {
		t.Fatalf("unexpected health response %d %s", w.Code, w.Body.String())
	}
}

func TestLookupByPathAndQuery(t *testing.T) {
	router, _ := newRouter(t)

	w := serve(router, http.MethodGet, "/api/pokemon/Bulbasaur", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	first := decode[pokedex.LookupResult](t, w)
	if first.Source != pokedex.SourceLive || first.Data.Name != "bulbasaur" {
		t.Fatalf("unexpected first lookup %s %s", first.Source, first.Data.Name)
	}
	if w.Header().Get(httpx.RequestIDHeader) == "" {
		t.Fatal("missing request id header")
	}

	w = serve(router, http.MethodGet, "/api/pokemon?name=bulbasaur", "")
	second := decode[pokedex.LookupResult](t, w)
	if second.Source != pokedex.SourceCache {
		t.Fatalf("expected cache on second lookup, got %s", second.Source)
	}

	// flavor_text is always present in the payload, null when absent
	w = serve(router, http.MethodGet, "/api/pokemon/pikachu", "")
	var raw struct {
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v, ok := raw.Data["flavor_text"]; !ok || v != nil {
		t.Fatalf("expected flavor_text null, got %v (present %v)", v, ok)
	}
}

func TestLookupErrors(t *testing.T) {
	router, fail := newRouter(t)

	assertEnvelope(t, serve(router, http.MethodGet, "/api/pokemon", ""), http.StatusBadRequest, "name is required")
	assertEnvelope(t, serve(router, http.MethodGet, "/api/pokemon?name=mr.mime", ""), http.StatusBadRequest,
		"Use alphanumeric characters or dashes only")
	assertEnvelope(t, serve(router, http.MethodGet, "/api/pokemon/missingno", ""), http.StatusNotFound, "")
	assertEnvelope(t, serve(router, http.MethodGet, "/api/pokemon/glitch", ""), http.StatusInternalServerError,
		"Unexpected error while talking to PokeAPI")

	fail(http.StatusServiceUnavailable)
	assertEnvelope(t, serve(router, http.MethodGet, "/api/pokemon/pikachu", ""), http.StatusBadGateway, "")
}

func TestMatchupsEndpoint(t *testing.T) {
	router, _ := newRouter(t)

	w := serve(router, http.MethodGet, "/api/pokemon/squirtle/matchups?opponent=charmander", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	res := decode[pokedex.MatchupResult](t, w)
	if res.Meta.Opponent == nil || res.Meta.Opponent.Source != pokedex.SourceLive {
		t.Fatalf("unexpected opponent meta %+v", res.Meta.Opponent)
	}
	if res.Data.Versus == nil || res.Data.Versus.Offense.Multiplier != 2 {
		t.Fatalf("unexpected versus %+v", res.Data.Versus)
	}

	w = serve(router, http.MethodGet, "/api/pokemon/squirtle/matchups", "")
	if !strings.Contains(w.Body.String(), `"opponent":null`) {
		t.Fatalf("expected null opponent meta, got %s", w.Body.String())
	}

	assertEnvelope(t, serve(router, http.MethodGet, "/api/pokemon/squirtle/matchups?opponent=bad!", ""),
		http.StatusBadRequest, "")
}

func TestCatalogEndpoint(t *testing.T) {
	router, _ := newRouter(t)

	w := serve(router, http.MethodGet, "/api/pokemon/catalog", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	res := decode[pokedex.CatalogResult](t, w)
	if len(res.Data) == 0 || res.Data[0] != "bulbasaur" {
		t.Fatalf("unexpected catalog %v", res.Data)
	}
}

func TestTeamEndpoint(t *testing.T) {
	router, _ := newRouter(t)

	w := serve(router, http.MethodPost, "/api/team/metrics", `{"names": ["pikachu", "squirtle"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	res := decode[pokedex.TeamResult](t, w)
	if res.Data.Size != 2 || res.Data.AverageBaseTotal != 317 {
		t.Fatalf("unexpected team metrics %+v", res.Data)
	}

	assertEnvelope(t, serve(router, http.MethodPost, "/api/team/metrics", `not json`), http.StatusBadRequest, "")
	assertEnvelope(t, serve(router, http.MethodPost, "/api/team/metrics", `{"names": []}`), http.StatusBadRequest, "")
}

func TestCacheStatsEndpoint(t *testing.T) {
	router, _ := newRouter(t)

	serve(router, http.MethodGet, "/api/pokemon/pikachu", "")
	serve(router, http.MethodGet, "/api/pokemon/pikachu", "")

	w := serve(router, http.MethodGet, "/debug/cache", "")
	var stats map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stats["size"] != float64(1) || stats["hits"] != float64(1) || stats["capacity"] != float64(120) {
		t.Fatalf("unexpected stats %v", stats)
	}
	if stats["ttl_ms"] != float64(600000) {
		t.Fatalf("unexpected ttl %v", stats["ttl_ms"])
	}
}

func TestUnknownRoute(t *testing.T) {
	router, _ := newRouter(t)
	assertEnvelope(t, serve(router, http.MethodGet, "/nope", ""), http.StatusNotFound, "Not found")
}
