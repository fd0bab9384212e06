package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"marketplace-api/internal/core/cache"
	"marketplace-api/internal/database"
	"marketplace-api/internal/domain"
	"marketplace-api/internal/repo"
	httpez "marketplace-api/internal/transport/http/ez"
)

const cacheKeyDashboard = "relatorio:dashboard"

func mountAdminActions(admin *gin.RouterGroup, d Deps) {
	ez := httpez.New(admin)
	relatorios := repo.NewRelatorioRepo(d.DB)

	// GET /dashboard: painel executivo, cacheado
	httpez.RegisterAction[struct{}, *repo.Dashboard](ez, d.DB, httpez.Action[struct{}, *repo.Dashboard]{
		Method: http.MethodGet,
		Path:   "/dashboard",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (*repo.Dashboard, error) {
			out, err := cache.GetOrLoadJSON[repo.Dashboard](
				d.Cache, c, cacheKeyDashboard, d.DashboardTTL,
				func(ctx context.Context) (*repo.Dashboard, error) {
					return relatorios.DashboardVendas(ctx)
				})
			if err != nil {
				return nil, mapErr(err)
			}
			return out, nil
		},
	})

	type limiteQ struct {
		Limite int `form:"limite,default=10"`
	}
	httpez.RegisterAction[limiteQ, []repo.ClienteVIP](ez, d.DB, httpez.Action[limiteQ, []repo.ClienteVIP]{
		Method: http.MethodGet,
		Path:   "/clientes/vip",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, _ *gorm.DB, in *limiteQ) ([]repo.ClienteVIP, error) {
			out, err := relatorios.ClientesVIP(c, in.Limite)
			if err != nil {
				return nil, mapErr(err)
			}
			return out, nil
		},
	})

	type estoqueQ struct {
		LimiteEstoque int `form:"limite_estoque,default=30"`
	}
	httpez.RegisterAction[estoqueQ, []repo.EstoqueItem](ez, d.DB, httpez.Action[estoqueQ, []repo.EstoqueItem]{
		Method: http.MethodGet,
		Path:   "/estoque/critico",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, _ *gorm.DB, in *estoqueQ) ([]repo.EstoqueItem, error) {
			out, err := relatorios.EstoqueCritico(c, in.LimiteEstoque)
			if err != nil {
				return nil, mapErr(err)
			}
			return out, nil
		},
	})

	httpez.RegisterAction[struct{}, []repo.ProdutoSemVenda](ez, d.DB, httpez.Action[struct{}, []repo.ProdutoSemVenda]{
		Method: http.MethodGet,
		Path:   "/produtos/sem-vendas",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) ([]repo.ProdutoSemVenda, error) {
			out, err := relatorios.ProdutosSemVendas(c)
			if err != nil {
				return nil, mapErr(err)
			}
			return out, nil
		},
	})

	httpez.RegisterAction[struct{}, []repo.MediaAvaliacao](ez, d.DB, httpez.Action[struct{}, []repo.MediaAvaliacao]{
		Method: http.MethodGet,
		Path:   "/avaliacoes/medias",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) ([]repo.MediaAvaliacao, error) {
			out, err := relatorios.MediaAvaliacoes(c)
			if err != nil {
				return nil, mapErr(err)
			}
			return out, nil
		},
	})

	// transições de status: a tabela de transições decide o que é legal
	type statusPedidoIn struct {
		Status domain.StatusPedido `json:"status" binding:"required"`
	}
	httpez.RegisterAction[statusPedidoIn, *domain.Pedido](ez, d.DB, httpez.Action[statusPedidoIn, *domain.Pedido]{
		Method: http.MethodPost,
		Path:   "/pedidos/:id/status",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, _ *gorm.DB, in *statusPedidoIn) (*domain.Pedido, error) {
			id, err := paramUint(c, "id")
			if err != nil {
				return nil, err
			}
			out, err := d.Pedidos.AtualizarStatusPedido(c, id, in.Status)
			if err != nil {
				return nil, mapErr(err)
			}
			d.Cache.Invalidate(c, cacheKeyDashboard)
			return out, nil
		},
	})

	type statusPagamentoIn struct {
		Status domain.StatusPagamento `json:"status" binding:"required"`
	}
	httpez.RegisterAction[statusPagamentoIn, *domain.Pagamento](ez, d.DB, httpez.Action[statusPagamentoIn, *domain.Pagamento]{
		Method: http.MethodPost,
		Path:   "/pagamentos/:id/status",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, _ *gorm.DB, in *statusPagamentoIn) (*domain.Pagamento, error) {
			id, err := paramUint(c, "id")
			if err != nil {
				return nil, err
			}
			out, err := d.Pedidos.AtualizarStatusPagamento(c, id, in.Status)
			if err != nil {
				return nil, mapErr(err)
			}
			d.Cache.Invalidate(c, cacheKeyDashboard)
			return out, nil
		},
	})

	// POST /categorias: escreve e derruba o cache da listagem pública
	categorias := repo.NewCategoriaRepo(d.DB)

	type categoriaIn struct {
		Nome      string `json:"nome" binding:"required,max=100"`
		Descricao string `json:"descricao" binding:"omitempty,max=2000"`
	}
	httpez.RegisterAction[categoriaIn, *domain.Categoria](ez, d.DB, httpez.Action[categoriaIn, *domain.Categoria]{
		Method: http.MethodPost,
		Path:   "/categorias",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, _ *gorm.DB, in *categoriaIn) (*domain.Categoria, error) {
			cat := domain.Categoria{Nome: in.Nome, Descricao: in.Descricao}
			if err := categorias.Create(c, &cat); err != nil {
				return nil, mapErr(err)
			}
			d.Cache.Invalidate(c, cacheKeyCategorias)
			return &cat, nil
		},
	})

	// POST /seed: popular dados de demonstração (desligado por padrão)
	httpez.RegisterAction[struct{}, gin.H](ez, d.DB, httpez.Action[struct{}, gin.H]{
		Method: http.MethodPost,
		Path:   "/seed",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (gin.H, error) {
			if !d.SeedEnable {
				return nil, httpez.Forbidden("seed desabilitado nesta instância")
			}
			if err := database.Seed(tx, d.Log); err != nil {
				return nil, mapErr(err)
			}
			d.Cache.Invalidate(c, cacheKeyDashboard, cacheKeyCategorias)
			return gin.H{"seeded": true}, nil
		},
	})
}
