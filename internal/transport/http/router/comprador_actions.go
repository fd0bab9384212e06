package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"marketplace-api/internal/domain"
	"marketplace-api/internal/repo"
	httpez "marketplace-api/internal/transport/http/ez"
)

func mountCompradorActions(api, authed *gin.RouterGroup, d Deps) {
	ezPublic := httpez.New(api)
	compradores := repo.NewCompradorRepo(d.DB)

	// lookup público usado pelo fluxo de checkout
	httpez.RegisterAction[struct{}, *repo.CompradorInfo](ezPublic, d.DB, httpez.Action[struct{}, *repo.CompradorInfo]{
		Method: http.MethodGet,
		Path:   "/comprador/email/:email",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (*repo.CompradorInfo, error) {
			info, err := compradores.FindByEmail(c, c.Param("email"))
			if err != nil {
				return nil, mapErr(err)
			}
			if info == nil {
				return nil, httpez.NotFound("comprador não encontrado")
			}
			return info, nil
		},
	})

	httpez.RegisterAction[struct{}, []domain.Endereco](ezPublic, d.DB, httpez.Action[struct{}, []domain.Endereco]{
		Method: http.MethodGet,
		Path:   "/comprador/:id/enderecos",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) ([]domain.Endereco, error) {
			id, err := paramUint(c, "id")
			if err != nil {
				return nil, err
			}
			out, err := compradores.Enderecos(c, id)
			if err != nil {
				return nil, mapErr(err)
			}
			return out, nil
		},
	})

	// CRUD de endereços e cartões do comprador logado
	httpez.Crud(httpez.CrudConfig[domain.Endereco]{
		DB:    d.DB,
		Group: authed,
		Path:  "/enderecos",
		New:   func() *domain.Endereco { return &domain.Endereco{} },
	})

	httpez.Crud(httpez.CrudConfig[domain.Cartao]{
		DB:    d.DB,
		Group: authed,
		Path:  "/cartoes",
		New:   func() *domain.Cartao { return &domain.Cartao{} },
		Hooks: httpez.CrudHooks[domain.Cartao]{
			BeforeCreate: func(c *gin.Context, m *domain.Cartao) error {
				if len(m.NumeroMascarado) < 4 {
					return domain.ErrPayloadPagamento
				}
				return nil
			},
		},
	})
}
