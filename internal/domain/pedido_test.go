package domain

import (
	"errors"
	"math"
	"testing"
)

func TestValidarItens(t *testing.T) {
	casos := []struct {
		nome  string
		itens []ItemDoPedido
		err   error
	}{
		{"vazio", nil, ErrPedidoSemItens},
		{"um item", []ItemDoPedido{{ProdutoID: 1, Quantidade: 2, PrecoNaCompra: 10}}, nil},
		{"quantidade zero", []ItemDoPedido{{ProdutoID: 1, Quantidade: 0, PrecoNaCompra: 10}}, ErrQuantidadeInvalida},
		{"quantidade negativa", []ItemDoPedido{{ProdutoID: 1, Quantidade: -3, PrecoNaCompra: 10}}, ErrQuantidadeInvalida},
		{"preco negativo", []ItemDoPedido{{ProdutoID: 1, Quantidade: 1, PrecoNaCompra: -0.01}}, ErrPrecoNegativo},
		{"produto repetido", []ItemDoPedido{
			{ProdutoID: 7, Quantidade: 1, PrecoNaCompra: 10},
			{ProdutoID: 7, Quantidade: 2, PrecoNaCompra: 10},
		}, ErrItemDuplicado},
		{"dois produtos distintos", []ItemDoPedido{
			{ProdutoID: 7, Quantidade: 1, PrecoNaCompra: 10},
			{ProdutoID: 8, Quantidade: 2, PrecoNaCompra: 10},
		}, nil},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			if err := ValidarItens(c.itens); !errors.Is(err, c.err) {
				t.Errorf("esperado %v, veio %v", c.err, err)
			}
		})
	}
}

func TestTotalPedido(t *testing.T) {
	itens := []ItemDoPedido{
		{ProdutoID: 1, Quantidade: 2, PrecoNaCompra: 349.90},
		{ProdutoID: 2, Quantidade: 1, PrecoNaCompra: 2499.90},
	}
	got := TotalPedido(itens)
	want := 349.90*2 + 2499.90
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("total: esperado %.2f, veio %.2f", want, got)
	}
	if TotalPedido(nil) != 0 {
		t.Error("total de pedido vazio deveria ser zero")
	}
}
