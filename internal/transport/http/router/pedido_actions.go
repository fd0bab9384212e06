package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"marketplace-api/internal/domain"
	"marketplace-api/internal/repo"
	"marketplace-api/internal/service"
	httpez "marketplace-api/internal/transport/http/ez"
	mdw "marketplace-api/internal/transport/http/middleware"
)

func mountPedidoActions(authed *gin.RouterGroup, d Deps) {
	ez := httpez.New(authed)
	pedidos := repo.NewPedidoRepo(d.DB)

	// POST /pedidos: o comprador vem do token, nunca do corpo.
	type criarIn struct {
		IDEndereco      uint                     `json:"id_endereco" binding:"required"`
		MetodoPagamento domain.MetodoPagamento   `json:"metodo_pagamento" binding:"required"`
		CartaoID        *uint                    `json:"cartao_id"`
		Produtos        []service.ItemNovoPedido `json:"produtos" binding:"required"`
	}
	httpez.RegisterAction[criarIn, *service.PedidoCriado](ez, d.DB, httpez.Action[criarIn, *service.PedidoCriado]{
		Method: http.MethodPost,
		Path:   "/pedidos",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, in *criarIn) (*service.PedidoCriado, error) {
			out, err := d.Pedidos.Criar(c, service.NovoPedido{
				CompradorID: mustUID(c),
				EnderecoID:  in.IDEndereco,
				Metodo:      in.MetodoPagamento,
				CartaoID:    in.CartaoID,
				Itens:       in.Produtos,
			})
			if err != nil {
				return nil, mapErr(err)
			}
			mdw.PedidoCriadoInc()
			d.Cache.Invalidate(c, cacheKeyDashboard)
			return out, nil
		},
	})

	// GET /pedidos/comprador/:id: histórico; só o próprio comprador (ou admin)
	httpez.RegisterAction[struct{}, []repo.PedidoResumo](ez, d.DB, httpez.Action[struct{}, []repo.PedidoResumo]{
		Method: http.MethodGet,
		Path:   "/pedidos/comprador/:id",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) ([]repo.PedidoResumo, error) {
			id, err := paramUint(c, "id")
			if err != nil {
				return nil, err
			}
			if id != mustUID(c) && c.GetString("role") != domain.TipoAdmin {
				return nil, httpez.Forbidden("histórico de outro comprador")
			}
			out, err := pedidos.PorComprador(c, id)
			if err != nil {
				return nil, mapErr(err)
			}
			return out, nil
		},
	})

	// POST /avaliacoes: só pedidos entregues do próprio comprador
	avaliacoes := repo.NewAvaliacaoRepo(d.DB)

	type avaliacaoIn struct {
		PedidoID   uint   `json:"pedidoId" binding:"required"`
		Nota       int    `json:"nota"`
		Comentario string `json:"comentario" binding:"omitempty,max=2000"`
	}
	httpez.RegisterAction[avaliacaoIn, *domain.Avaliacao](ez, d.DB, httpez.Action[avaliacaoIn, *domain.Avaliacao]{
		Method: http.MethodPost,
		Path:   "/avaliacoes",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, in *avaliacaoIn) (*domain.Avaliacao, error) {
			out, err := d.Avaliacoes.Criar(c, service.NovaAvaliacao{
				PedidoID:    in.PedidoID,
				Nota:        in.Nota,
				Comentario:  in.Comentario,
				CompradorID: mustUID(c),
			})
			if err != nil {
				return nil, mapErr(err)
			}
			return out, nil
		},
	})

	// GET /avaliacoes/pedido/:id
	httpez.RegisterAction[struct{}, []domain.Avaliacao](ez, d.DB, httpez.Action[struct{}, []domain.Avaliacao]{
		Method: http.MethodGet,
		Path:   "/avaliacoes/pedido/:id",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) ([]domain.Avaliacao, error) {
			id, err := paramUint(c, "id")
			if err != nil {
				return nil, err
			}
			out, err := avaliacoes.PorPedido(c, id)
			if err != nil {
				return nil, mapErr(err)
			}
			return out, nil
		},
	})

	// GET /avaliacoes/produto/:id: todas as notas já dadas ao produto
	httpez.RegisterAction[struct{}, []repo.AvaliacaoDoProduto](ez, d.DB, httpez.Action[struct{}, []repo.AvaliacaoDoProduto]{
		Method: http.MethodGet,
		Path:   "/avaliacoes/produto/:id",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) ([]repo.AvaliacaoDoProduto, error) {
			id, err := paramUint(c, "id")
			if err != nil {
				return nil, err
			}
			out, err := avaliacoes.PorProduto(c, id)
			if err != nil {
				return nil, mapErr(err)
			}
			return out, nil
		},
	})
}
