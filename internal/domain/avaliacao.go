package domain

import (
	"errors"
	"time"
)

// Avaliacao é o feedback de um pedido concluído. Nota entre 0 e 5.
type Avaliacao struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PedidoID   uint      `gorm:"not null;index" json:"pedidoId"`
	Pedido     Pedido    `gorm:"foreignKey:PedidoID" json:"-"`
	Nota       int       `gorm:"not null" json:"nota"`
	Comentario string    `gorm:"type:text" json:"comentario"`
	Data       time.Time `gorm:"not null" json:"data"`
}

func (Avaliacao) TableName() string { return "avaliacoes" }

var ErrNotaForaDaFaixa = errors.New("nota deve estar entre 0 e 5")

func (a *Avaliacao) Validate() error {
	if a.Nota < 0 || a.Nota > 5 {
		return ErrNotaForaDaFaixa
	}
	return nil
}
