package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"marketplace-api/internal/domain"
)

type PedidoRepo struct{ db *gorm.DB }

func NewPedidoRepo(db *gorm.DB) *PedidoRepo { return &PedidoRepo{db: db} }

// PedidoResumo é a linha do histórico do comprador: pedido + pagamento +
// nomes dos produtos agregados em uma string.
type PedidoResumo struct {
	ID              uint    `json:"id"`
	Data            string  `json:"data"`
	Status          string  `json:"status"`
	Valor           float64 `json:"valor"`
	MetodoPagamento string  `json:"metodoPagamento"`
	StatusPagamento string  `json:"statusPagamento"`
	Produtos        string  `json:"produtos"`
}

func (r *PedidoRepo) FindByID(ctx context.Context, id uint) (*domain.Pedido, error) {
	var p domain.Pedido
	err := r.db.WithContext(ctx).
		Preload("Itens").Preload("Pagamento").
		First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

// PorComprador lista o histórico, pedidos mais recentes primeiro.
func (r *PedidoRepo) PorComprador(ctx context.Context, compradorID uint) ([]PedidoResumo, error) {
	var out []PedidoResumo
	err := r.db.WithContext(ctx).Table("pedidos ped").
		Select(`ped.id, ped.data, ped.status,
			pag.valor, pag.metodo AS metodo_pagamento, pag.status AS status_pagamento,
			STRING_AGG(p.nome, ', ') AS produtos`).
		Joins("JOIN pagamentos pag ON ped.pagamento_id = pag.id").
		Joins("JOIN itens_do_pedido idp ON ped.id = idp.pedido_id").
		Joins("JOIN produtos p ON idp.produto_id = p.id").
		Where("ped.comprador_id = ?", compradorID).
		Group("ped.id, ped.data, ped.status, pag.valor, pag.metodo, pag.status").
		Order("ped.data DESC").
		Scan(&out).Error
	return out, err
}

type AvaliacaoRepo struct{ db *gorm.DB }

func NewAvaliacaoRepo(db *gorm.DB) *AvaliacaoRepo { return &AvaliacaoRepo{db: db} }

func (r *AvaliacaoRepo) Create(ctx context.Context, a *domain.Avaliacao) error {
	if err := a.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AvaliacaoRepo) PorPedido(ctx context.Context, pedidoID uint) ([]domain.Avaliacao, error) {
	var out []domain.Avaliacao
	err := r.db.WithContext(ctx).
		Where("pedido_id = ?", pedidoID).
		Order("data DESC").
		Find(&out).Error
	return out, err
}

// AvaliacaoDoProduto é a linha da página do produto: nota + quem comprou.
type AvaliacaoDoProduto struct {
	ID         uint   `json:"id"`
	Nota       int    `json:"nota"`
	Comentario string `json:"comentario"`
	Data       string `json:"data"`
	Comprador  string `json:"comprador"`
}

// PorProduto junta avaliações de todos os pedidos que contêm o produto.
// A avaliação é do pedido, então uma mesma linha pode cobrir outros itens.
func (r *AvaliacaoRepo) PorProduto(ctx context.Context, produtoID uint) ([]AvaliacaoDoProduto, error) {
	var out []AvaliacaoDoProduto
	err := r.db.WithContext(ctx).Table("avaliacoes a").
		Select(`a.id, a.nota, a.comentario, a.data, u.nome AS comprador`).
		Joins("JOIN pedidos ped ON a.pedido_id = ped.id").
		Joins("JOIN itens_do_pedido idp ON ped.id = idp.pedido_id").
		Joins("JOIN usuarios u ON ped.comprador_id = u.id").
		Where("idp.produto_id = ?", produtoID).
		Order("a.data DESC").
		Scan(&out).Error
	return out, err
}
