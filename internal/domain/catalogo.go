package domain

import (
	"errors"
	"time"
)

type Categoria struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Nome      string `gorm:"size:100;not null" json:"nome"`
	Descricao string `gorm:"type:text" json:"descricao"`
}

func (Categoria) TableName() string { return "categorias" }

// Produto pertence a um vendedor e a zero ou mais categorias;
// nenhuma categoria é "primária".
type Produto struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	Nome       string   `gorm:"size:100;not null" json:"nome"`
	Descricao  string   `gorm:"type:text" json:"descricao"`
	Preco      float64  `gorm:"type:numeric(10,2);not null" json:"preco"`
	Estoque    int      `gorm:"not null;default:0" json:"estoque"`
	VendedorID uint     `gorm:"not null;index" json:"vendedorId"`
	Vendedor   Vendedor `gorm:"foreignKey:VendedorID;references:UsuarioID" json:"-"`

	Categorias []Categoria `gorm:"many2many:produto_categorias" json:"categorias,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Produto) TableName() string { return "produtos" }

var (
	ErrPrecoNegativo   = errors.New("preço não pode ser negativo")
	ErrEstoqueNegativo = errors.New("estoque não pode ser negativo")
)

func (p *Produto) Validate() error {
	if p.Preco < 0 {
		return ErrPrecoNegativo
	}
	if p.Estoque < 0 {
		return ErrEstoqueNegativo
	}
	return nil
}

// Classificação usada pelo relatório de estoque crítico.
const (
	EstoqueCritico = "CRÍTICO" // <= 10 unidades
	EstoqueBaixo   = "BAIXO"   // <= 30 unidades
	EstoqueOK      = "OK"
)

func ClassificarEstoque(qtd int) string {
	switch {
	case qtd <= 10:
		return EstoqueCritico
	case qtd <= 30:
		return EstoqueBaixo
	default:
		return EstoqueOK
	}
}
