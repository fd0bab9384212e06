package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"marketplace-api/internal/core/server"
	mdw "marketplace-api/internal/transport/http/middleware"
)

func NewAdminEngine(d Deps) *gin.Engine {
	// base com log/recovery via ginzap e CORS; o acesso é interno, então
	// dispensa o access log com máscara da superfície pública
	r := server.NewRouter(d.Log)

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(15*time.Second),
		mdw.Metrics(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	admin := r.Group("/admin/v1")
	admin.Use(mdw.AuthJWT(d.JWT, "admin"))

	MountAllAdmin(admin)
	mountAdminActions(admin, d)

	return r
}
