package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"marketplace-api/internal/core/cache"
	"marketplace-api/internal/domain"
	"marketplace-api/internal/repo"
	httpez "marketplace-api/internal/transport/http/ez"
)

const cacheKeyCategorias = "catalogo:categorias"

func mountCatalogoActions(api, authed *gin.RouterGroup, d Deps) {
	ez := httpez.New(api)
	produtos := repo.NewProdutoRepo(d.DB)
	categorias := repo.NewCategoriaRepo(d.DB)
	relatorios := repo.NewRelatorioRepo(d.DB)

	// GET /produtos?categoria_id=&preco_min=&preco_max=&limite=
	type listQ struct {
		CategoriaID *uint    `form:"categoria_id"`
		PrecoMin    *float64 `form:"preco_min"`
		PrecoMax    *float64 `form:"preco_max"`
		Limite      int      `form:"limite,default=50"`
	}
	httpez.RegisterAction[listQ, []repo.ProdutoResumo](ez, d.DB, httpez.Action[listQ, []repo.ProdutoResumo]{
		Method: http.MethodGet,
		Path:   "/produtos",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, _ *gorm.DB, in *listQ) ([]repo.ProdutoResumo, error) {
			out, err := produtos.List(c, repo.FiltroProdutos{
				CategoriaID: in.CategoriaID,
				PrecoMin:    in.PrecoMin,
				PrecoMax:    in.PrecoMax,
				Limite:      in.Limite,
			})
			if err != nil {
				return nil, mapErr(err)
			}
			return out, nil
		},
	})

	type topQ struct {
		Limite int `form:"limite,default=10"`
	}
	httpez.RegisterAction[topQ, []repo.ProdutoMaisVendido](ez, d.DB, httpez.Action[topQ, []repo.ProdutoMaisVendido]{
		Method: http.MethodGet,
		Path:   "/produtos/mais-vendidos",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, _ *gorm.DB, in *topQ) ([]repo.ProdutoMaisVendido, error) {
			out, err := relatorios.MaisVendidos(c, in.Limite)
			if err != nil {
				return nil, mapErr(err)
			}
			return out, nil
		},
	})

	httpez.RegisterAction[struct{}, *repo.ProdutoDetalhe](ez, d.DB, httpez.Action[struct{}, *repo.ProdutoDetalhe]{
		Method: http.MethodGet,
		Path:   "/produtos/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (*repo.ProdutoDetalhe, error) {
			id, err := paramUint(c, "id")
			if err != nil {
				return nil, err
			}
			p, err := produtos.FindByID(c, id)
			if err != nil {
				return nil, mapErr(err)
			}
			if p == nil {
				return nil, httpez.NotFound("produto não encontrado")
			}
			return p, nil
		},
	})

	// GET /categorias: cacheada no redis; singleflight segura o rebanho
	httpez.RegisterAction[struct{}, *[]repo.CategoriaComTotal](ez, d.DB, httpez.Action[struct{}, *[]repo.CategoriaComTotal]{
		Method: http.MethodGet,
		Path:   "/categorias",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (*[]repo.CategoriaComTotal, error) {
			out, err := cache.GetOrLoadJSON[[]repo.CategoriaComTotal](
				d.Cache, c, cacheKeyCategorias, d.CategoriaTTL,
				func(ctx context.Context) (*[]repo.CategoriaComTotal, error) {
					cats, e := categorias.List(ctx)
					if e != nil {
						return nil, e
					}
					return &cats, nil
				})
			if err != nil {
				return nil, mapErr(err)
			}
			return out, nil
		},
	})

	// escrita do catálogo: restrita ao papel vendedor
	ezAuth := httpez.New(authed)

	type produtoIn struct {
		Nome       string  `json:"nome" binding:"required,max=100"`
		Descricao  string  `json:"descricao" binding:"omitempty,max=2000"`
		Preco      float64 `json:"preco" binding:"required"`
		Estoque    int     `json:"estoque"`
		Categorias []uint  `json:"categorias"`
	}
	httpez.RegisterAction[produtoIn, *domain.Produto](ezAuth, d.DB, httpez.Action[produtoIn, *domain.Produto]{
		Method: http.MethodPost,
		Path:   "/produtos",
		Binder: httpez.BindJSON,
		Auth:   true,
		Roles:  []string{domain.TipoVendedor, domain.TipoAdmin},
		Handler: func(c *gin.Context, _ *gorm.DB, in *produtoIn) (*domain.Produto, error) {
			p := domain.Produto{
				Nome:       in.Nome,
				Descricao:  in.Descricao,
				Preco:      in.Preco,
				Estoque:    in.Estoque,
				VendedorID: mustUID(c),
			}
			for _, cid := range in.Categorias {
				p.Categorias = append(p.Categorias, domain.Categoria{ID: cid})
			}
			if err := produtos.Create(c, &p); err != nil {
				return nil, mapErr(err)
			}
			return &p, nil
		},
	})

	// PUT /produtos/:id: só o dono do produto (ou admin) altera
	httpez.RegisterAction[produtoIn, *domain.Produto](ezAuth, d.DB, httpez.Action[produtoIn, *domain.Produto]{
		Method: http.MethodPut,
		Path:   "/produtos/:id",
		Binder: httpez.BindJSON,
		Auth:   true,
		Roles:  []string{domain.TipoVendedor, domain.TipoAdmin},
		Handler: func(c *gin.Context, _ *gorm.DB, in *produtoIn) (*domain.Produto, error) {
			id, err := paramUint(c, "id")
			if err != nil {
				return nil, err
			}
			atual, err := produtos.FindByID(c, id)
			if err != nil {
				return nil, mapErr(err)
			}
			if atual == nil {
				return nil, httpez.NotFound("produto não encontrado")
			}
			if atual.VendedorID != mustUID(c) && c.GetString("role") != domain.TipoAdmin {
				return nil, httpez.Forbidden("produto de outro vendedor")
			}
			p := atual.Produto
			p.Nome = in.Nome
			p.Descricao = in.Descricao
			p.Preco = in.Preco
			p.Estoque = in.Estoque
			if in.Categorias != nil {
				p.Categorias = p.Categorias[:0]
				for _, cid := range in.Categorias {
					p.Categorias = append(p.Categorias, domain.Categoria{ID: cid})
				}
			}
			if err := produtos.Update(c, &p); err != nil {
				return nil, mapErr(err)
			}
			return &p, nil
		},
	})
}
