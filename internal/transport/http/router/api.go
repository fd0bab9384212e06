package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"marketplace-api/internal/core/auth"
	"marketplace-api/internal/core/cache"
	"marketplace-api/internal/service"
	mdw "marketplace-api/internal/transport/http/middleware"
)

// Deps agrupa o que os engines precisam para montar as rotas.
type Deps struct {
	Log   *zap.Logger
	DB    *gorm.DB
	Cache *cache.Cache
	JWT   *auth.JWTer

	CategoriaTTL time.Duration
	DashboardTTL time.Duration
	SeedEnable   bool

	Pedidos    *service.PedidoService
	Avaliacoes *service.AvaliacaoService
	Cadastro   *service.CadastroService
}

func NewAPIEngine(d Deps) *gin.Engine {
	r := gin.New()

	// superfície pública: CORS liberado para o front e limite por IP
	r.Use(
		cors.Default(),
		mdw.RequestID(),
		mdw.RateLimitPerIP(50, 100),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.SimpleRecovery(),
		mdw.Metrics(),
		mdw.AccessLog(d.Log),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })

	api := r.Group("/api/v1")

	// módulos auto-registrados (se houver)
	MountAllAPI(api)

	// grupo autenticado
	authed := api.Group("")
	authed.Use(mdw.AuthJWT(d.JWT, ""))

	mountAuthActions(api, authed, d)
	mountCatalogoActions(api, authed, d)
	mountCompradorActions(api, authed, d)
	mountPedidoActions(authed, d)

	return r
}
