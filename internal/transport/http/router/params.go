package router

import (
	"strconv"

	"github.com/gin-gonic/gin"

	httpez "marketplace-api/internal/transport/http/ez"
)

func paramUint(c *gin.Context, name string) (uint, error) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, httpez.BadRequest("parâmetro " + name + " inválido")
	}
	return uint(n), nil
}
