package domain

import (
	"errors"
	"time"
)

type Pedido struct {
	ID     uint         `gorm:"primaryKey" json:"id"`
	Data   time.Time    `gorm:"not null;index" json:"data"`
	Status StatusPedido `gorm:"size:16;not null;default:'pendente'" json:"status"`

	CompradorID uint      `gorm:"not null;index" json:"compradorId"`
	Comprador   Comprador `gorm:"foreignKey:CompradorID;references:UsuarioID" json:"-"`
	EnderecoID  uint      `gorm:"not null" json:"enderecoId"`
	Endereco    Endereco  `gorm:"foreignKey:EnderecoID" json:"-"`
	PagamentoID uint      `gorm:"not null;uniqueIndex" json:"pagamentoId"`
	Pagamento   Pagamento `gorm:"foreignKey:PagamentoID" json:"-"`

	Itens []ItemDoPedido `gorm:"foreignKey:PedidoID" json:"itens,omitempty"`
}

func (Pedido) TableName() string { return "pedidos" }

// ItemDoPedido tem chave composta (pedido, produto). PrecoNaCompra congela
// o preço do momento da compra: nunca é recalculado a partir de Produto.Preco.
type ItemDoPedido struct {
	PedidoID      uint    `gorm:"primaryKey;autoIncrement:false" json:"pedidoId"`
	ProdutoID     uint    `gorm:"primaryKey;autoIncrement:false" json:"produtoId"`
	Produto       Produto `gorm:"foreignKey:ProdutoID" json:"-"`
	Quantidade    int     `gorm:"not null" json:"quantidade"`
	PrecoNaCompra float64 `gorm:"type:numeric(10,2);not null" json:"precoNaCompra"`
}

func (ItemDoPedido) TableName() string { return "itens_do_pedido" }

var (
	ErrQuantidadeInvalida = errors.New("quantidade deve ser positiva")
	ErrPedidoSemItens     = errors.New("pedido precisa de ao menos um item")
	ErrItemDuplicado      = errors.New("produto repetido no pedido")
)

func (i *ItemDoPedido) Validate() error {
	if i.Quantidade <= 0 {
		return ErrQuantidadeInvalida
	}
	if i.PrecoNaCompra < 0 {
		return ErrPrecoNegativo
	}
	return nil
}

// ValidarItens aplica as regras de item e rejeita produto repetido
// (violaria a chave composta lá na frente, melhor falhar cedo).
func ValidarItens(itens []ItemDoPedido) error {
	if len(itens) == 0 {
		return ErrPedidoSemItens
	}
	vistos := make(map[uint]struct{}, len(itens))
	for i := range itens {
		if err := itens[i].Validate(); err != nil {
			return err
		}
		if _, dup := vistos[itens[i].ProdutoID]; dup {
			return ErrItemDuplicado
		}
		vistos[itens[i].ProdutoID] = struct{}{}
	}
	return nil
}

// TotalPedido soma PrecoNaCompra × Quantidade.
func TotalPedido(itens []ItemDoPedido) float64 {
	var total float64
	for i := range itens {
		total += itens[i].PrecoNaCompra * float64(itens[i].Quantidade)
	}
	return total
}
