package domain

import (
	"errors"
	"time"
)

type MetodoPagamento string

const (
	MetodoCartao MetodoPagamento = "cartao"
	MetodoPix    MetodoPagamento = "pix"
	MetodoBoleto MetodoPagamento = "boleto"
)

func (m MetodoPagamento) Valido() bool {
	return m == MetodoCartao || m == MetodoPix || m == MetodoBoleto
}

// Pagamento é um registro único com payload discriminado pelo Metodo.
// Validate garante que só os campos do método declarado estão preenchidos.
type Pagamento struct {
	ID     uint            `gorm:"primaryKey" json:"id"`
	Metodo MetodoPagamento `gorm:"size:10;not null" json:"metodo"`
	Data   time.Time       `gorm:"not null" json:"data"`
	Valor  float64         `gorm:"type:numeric(10,2);not null" json:"valor"`
	Status StatusPagamento `gorm:"size:16;not null;default:'pendente'" json:"status"`

	// payload de cartão
	CartaoID *uint   `gorm:"index" json:"cartaoId,omitempty"`
	Cartao   *Cartao `gorm:"foreignKey:CartaoID" json:"-"`
	// payload de pix
	ChavePix *string `gorm:"size:77" json:"chavePix,omitempty"`
	// payload de boleto
	LinhaDigitavel   *string    `gorm:"size:54" json:"linhaDigitavel,omitempty"`
	VencimentoBoleto *time.Time `json:"vencimentoBoleto,omitempty"`
}

func (Pagamento) TableName() string { return "pagamentos" }

var (
	ErrMetodoInvalido     = errors.New("método de pagamento inválido")
	ErrPayloadPagamento   = errors.New("payload não corresponde ao método de pagamento")
	ErrValorNegativo      = errors.New("valor do pagamento não pode ser negativo")
	ErrStatusDesconhecido = errors.New("status de pagamento desconhecido")
)

func (p *Pagamento) Validate() error {
	if !p.Metodo.Valido() {
		return ErrMetodoInvalido
	}
	if p.Valor < 0 {
		return ErrValorNegativo
	}
	if !p.Status.Valido() {
		return ErrStatusDesconhecido
	}
	temCartao := p.CartaoID != nil
	temPix := p.ChavePix != nil
	temBoleto := p.LinhaDigitavel != nil || p.VencimentoBoleto != nil
	switch p.Metodo {
	case MetodoCartao:
		if !temCartao || temPix || temBoleto {
			return ErrPayloadPagamento
		}
	case MetodoPix:
		if temCartao || !temPix || temBoleto {
			return ErrPayloadPagamento
		}
	case MetodoBoleto:
		if temCartao || temPix || p.LinhaDigitavel == nil || p.VencimentoBoleto == nil {
			return ErrPayloadPagamento
		}
	}
	return nil
}
