package repo

import (
	"context"

	"gorm.io/gorm"

	"marketplace-api/internal/domain"
)

type CategoriaRepo struct{ db *gorm.DB }

func NewCategoriaRepo(db *gorm.DB) *CategoriaRepo { return &CategoriaRepo{db: db} }

type CategoriaComTotal struct {
	ID            uint   `json:"id"`
	Nome          string `json:"nome"`
	Descricao     string `json:"descricao"`
	TotalProdutos int64  `json:"totalProdutos"`
}

func (r *CategoriaRepo) Create(ctx context.Context, c *domain.Categoria) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// List traz cada categoria com a contagem de produtos, ordenada por nome.
func (r *CategoriaRepo) List(ctx context.Context) ([]CategoriaComTotal, error) {
	var out []CategoriaComTotal
	err := r.db.WithContext(ctx).Table("categorias c").
		Select(`c.id, c.nome, c.descricao, COUNT(pc.produto_id) AS total_produtos`).
		Joins("LEFT JOIN produto_categorias pc ON c.id = pc.categoria_id").
		Group("c.id, c.nome, c.descricao").
		Order("c.nome").
		Scan(&out).Error
	return out, err
}
