package domain

import "fmt"

// O grafo de transições é explícito; os endpoints de atualização o aplicam.

type StatusPedido string

const (
	PedidoPendente    StatusPedido = "pendente"
	PedidoProcessando StatusPedido = "processando"
	PedidoEnviado     StatusPedido = "enviado"
	PedidoEntregue    StatusPedido = "entregue"
	PedidoCancelado   StatusPedido = "cancelado"
)

// cancelado é alcançável de qualquer estado não-terminal.
var transicoesPedido = map[StatusPedido][]StatusPedido{
	PedidoPendente:    {PedidoProcessando, PedidoCancelado},
	PedidoProcessando: {PedidoEnviado, PedidoCancelado},
	PedidoEnviado:     {PedidoEntregue, PedidoCancelado},
	PedidoEntregue:    {},
	PedidoCancelado:   {},
}

func (s StatusPedido) Valido() bool {
	_, ok := transicoesPedido[s]
	return ok
}

func (s StatusPedido) PodeTransitar(para StatusPedido) bool {
	for _, t := range transicoesPedido[s] {
		if t == para {
			return true
		}
	}
	return false
}

type StatusPagamento string

const (
	PagamentoPendente    StatusPagamento = "pendente"
	PagamentoProcessando StatusPagamento = "processando"
	PagamentoAprovado    StatusPagamento = "aprovado"
	PagamentoRecusado    StatusPagamento = "recusado"
	PagamentoEstornado   StatusPagamento = "estornado"
)

var transicoesPagamento = map[StatusPagamento][]StatusPagamento{
	PagamentoPendente:    {PagamentoProcessando},
	PagamentoProcessando: {PagamentoAprovado, PagamentoRecusado},
	PagamentoAprovado:    {PagamentoEstornado},
	PagamentoRecusado:    {},
	PagamentoEstornado:   {},
}

func (s StatusPagamento) Valido() bool {
	_, ok := transicoesPagamento[s]
	return ok
}

func (s StatusPagamento) PodeTransitar(para StatusPagamento) bool {
	for _, t := range transicoesPagamento[s] {
		if t == para {
			return true
		}
	}
	return false
}

type ErrTransicaoInvalida struct {
	De, Para string
}

func (e *ErrTransicaoInvalida) Error() string {
	return fmt.Sprintf("transição de status inválida: %s → %s", e.De, e.Para)
}
