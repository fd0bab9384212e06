package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"marketplace-api/internal/core/auth"
	"marketplace-api/internal/core/cache"
	"marketplace-api/internal/domain"
	resp "marketplace-api/internal/transport/http/response"
)

func novoEngineTeste(t *testing.T) (*gin.Engine, *auth.JWTer) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	jwter := &auth.JWTer{Secret: []byte("segredo-de-teste"), Issuer: "marketplace-api", TTL: time.Hour}
	r := NewAPIEngine(Deps{
		Log:   zap.NewNop(),
		DB:    &gorm.DB{Config: &gorm.Config{}, Statement: &gorm.Statement{}},
		Cache: cache.New("127.0.0.1:6379", "", 0),
		JWT:   jwter,
	})
	return r, jwter
}

func envelopeDe(t *testing.T, w *httptest.ResponseRecorder) resp.Resp {
	t.Helper()
	var out resp.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("resposta não é o envelope: %v (%s)", err, w.Body.String())
	}
	return out
}

func TestAPIEnginePreflightCORS(t *testing.T) {
	r, _ := novoEngineTeste(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/produtos", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight devolveu %d, esperava 204", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("Access-Control-Allow-Origin = %q, esperava *", got)
	}
}

func TestAPIEngineCORSNaResposta(t *testing.T) {
	r, _ := novoEngineTeste(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("health devolveu %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("Access-Control-Allow-Origin = %q, esperava *", got)
	}
}

func TestCriarProdutoExigePapelVendedor(t *testing.T) {
	r, jwter := novoEngineTeste(t)
	tok, err := jwter.Issue("7", domain.TipoComprador)
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/produtos", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if out := envelopeDe(t, w); out.Code != resp.CodeForbidden {
		t.Fatalf("code = %d, esperava %d", out.Code, resp.CodeForbidden)
	}
}

func TestAvaliacoesPorProdutoParamInvalido(t *testing.T) {
	r, jwter := novoEngineTeste(t)
	tok, err := jwter.Issue("7", domain.TipoComprador)
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/avaliacoes/produto/abc", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if out := envelopeDe(t, w); out.Code != resp.CodeBadRequest {
		t.Fatalf("code = %d, esperava %d", out.Code, resp.CodeBadRequest)
	}
}
