package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"marketplace-api/internal/domain"
)

type ProdutoRepo struct{ db *gorm.DB }

func NewProdutoRepo(db *gorm.DB) *ProdutoRepo { return &ProdutoRepo{db: db} }

// FiltroProdutos espelha os filtros do catálogo: categoria e faixa de preço.
type FiltroProdutos struct {
	CategoriaID *uint
	PrecoMin    *float64
	PrecoMax    *float64
	Limite      int
}

// ProdutoResumo é a linha da listagem (produto + loja + categoria).
type ProdutoResumo struct {
	ID        uint    `json:"id"`
	Nome      string  `json:"nome"`
	Descricao string  `json:"descricao"`
	Preco     float64 `json:"preco"`
	Estoque   int     `json:"estoque"`
	Vendedor  string  `json:"vendedor"`
	Categoria *string `json:"categoria"`
}

// ProdutoDetalhe acrescenta os dados do vendedor para a página do produto.
type ProdutoDetalhe struct {
	domain.Produto
	NomeLoja      string `json:"nomeLoja"`
	NomeVendedor  string `json:"nomeVendedor"`
	EmailVendedor string `json:"emailVendedor"`
}

func (r *ProdutoRepo) Create(ctx context.Context, p *domain.Produto) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProdutoRepo) FindByID(ctx context.Context, id uint) (*ProdutoDetalhe, error) {
	var p domain.Produto
	err := r.db.WithContext(ctx).Preload("Categorias").First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var v domain.Vendedor
	if err := r.db.WithContext(ctx).Preload("Usuario").
		First(&v, "usuario_id = ?", p.VendedorID).Error; err != nil {
		return nil, err
	}
	return &ProdutoDetalhe{
		Produto:       p,
		NomeLoja:      v.NomeLoja,
		NomeVendedor:  v.Usuario.Nome,
		EmailVendedor: v.Usuario.Email,
	}, nil
}

// List ordena por preço, do mais barato para o mais caro.
func (r *ProdutoRepo) List(ctx context.Context, f FiltroProdutos) ([]ProdutoResumo, error) {
	if f.Limite <= 0 || f.Limite > 100 {
		f.Limite = 50
	}
	q := r.db.WithContext(ctx).Table("produtos p").
		Select(`p.id, p.nome, p.descricao, p.preco, p.estoque,
			v.nome_loja AS vendedor, c.nome AS categoria`).
		Joins("JOIN vendedores v ON p.vendedor_id = v.usuario_id").
		Joins("LEFT JOIN produto_categorias pc ON p.id = pc.produto_id").
		Joins("LEFT JOIN categorias c ON pc.categoria_id = c.id")

	if f.CategoriaID != nil {
		q = q.Where("c.id = ?", *f.CategoriaID)
	}
	if f.PrecoMin != nil {
		q = q.Where("p.preco >= ?", *f.PrecoMin)
	}
	if f.PrecoMax != nil {
		q = q.Where("p.preco <= ?", *f.PrecoMax)
	}

	var out []ProdutoResumo
	err := q.Order("p.preco").Limit(f.Limite).Scan(&out).Error
	return out, err
}

func (r *ProdutoRepo) Update(ctx context.Context, p *domain.Produto) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(p).Error
}
