package domain

import (
	"errors"
	"testing"
)

func TestTransicoesDePedido(t *testing.T) {
	casos := []struct {
		de, para StatusPedido
		ok       bool
	}{
		{PedidoPendente, PedidoProcessando, true},
		{PedidoPendente, PedidoCancelado, true},
		{PedidoPendente, PedidoEnviado, false},
		{PedidoPendente, PedidoEntregue, false},
		{PedidoProcessando, PedidoEnviado, true},
		{PedidoProcessando, PedidoCancelado, true},
		{PedidoProcessando, PedidoPendente, false},
		{PedidoEnviado, PedidoEntregue, true},
		{PedidoEnviado, PedidoCancelado, true},
		{PedidoEntregue, PedidoCancelado, false},
		{PedidoEntregue, PedidoPendente, false},
		{PedidoCancelado, PedidoPendente, false},
		{PedidoCancelado, PedidoProcessando, false},
	}
	for _, c := range casos {
		if got := c.de.PodeTransitar(c.para); got != c.ok {
			t.Errorf("%s -> %s: esperado %v, veio %v", c.de, c.para, c.ok, got)
		}
	}
}

func TestTransicoesDePagamento(t *testing.T) {
	casos := []struct {
		de, para StatusPagamento
		ok       bool
	}{
		{PagamentoPendente, PagamentoProcessando, true},
		{PagamentoPendente, PagamentoAprovado, false},
		{PagamentoProcessando, PagamentoAprovado, true},
		{PagamentoProcessando, PagamentoRecusado, true},
		{PagamentoProcessando, PagamentoEstornado, false},
		{PagamentoAprovado, PagamentoEstornado, true},
		{PagamentoAprovado, PagamentoRecusado, false},
		{PagamentoRecusado, PagamentoProcessando, false},
		{PagamentoEstornado, PagamentoAprovado, false},
	}
	for _, c := range casos {
		if got := c.de.PodeTransitar(c.para); got != c.ok {
			t.Errorf("%s -> %s: esperado %v, veio %v", c.de, c.para, c.ok, got)
		}
	}
}

func TestStatusValido(t *testing.T) {
	if !PedidoPendente.Valido() || !PagamentoEstornado.Valido() {
		t.Fatal("status conhecido deveria ser válido")
	}
	if StatusPedido("despachado").Valido() {
		t.Error("status de pedido inventado passou")
	}
	if StatusPagamento("pago").Valido() {
		t.Error("status de pagamento inventado passou")
	}
}

func TestErrTransicaoInvalidaComErrorsAs(t *testing.T) {
	var err error = &ErrTransicaoInvalida{De: "entregue", Para: "pendente"}
	var alvo *ErrTransicaoInvalida
	if !errors.As(err, &alvo) {
		t.Fatal("errors.As não encontrou ErrTransicaoInvalida")
	}
	if alvo.De != "entregue" || alvo.Para != "pendente" {
		t.Errorf("campos trocados: %+v", alvo)
	}
}
