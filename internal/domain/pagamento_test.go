package domain

import (
	"errors"
	"testing"
	"time"
)

func uptr(u uint) *uint           { return &u }
func sptr(s string) *string       { return &s }
func tptr(t time.Time) *time.Time { return &t }

func TestPagamentoValidatePorMetodo(t *testing.T) {
	venc := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	casos := []struct {
		nome string
		p    Pagamento
		err  error
	}{
		{"cartao ok", Pagamento{Metodo: MetodoCartao, Valor: 100, Status: PagamentoPendente, CartaoID: uptr(1)}, nil},
		{"pix ok", Pagamento{Metodo: MetodoPix, Valor: 100, Status: PagamentoPendente, ChavePix: sptr("chave@pix.br")}, nil},
		{"boleto ok", Pagamento{Metodo: MetodoBoleto, Valor: 100, Status: PagamentoPendente, LinhaDigitavel: sptr("34191..."), VencimentoBoleto: tptr(venc)}, nil},

		{"cartao sem cartao_id", Pagamento{Metodo: MetodoCartao, Valor: 100, Status: PagamentoPendente}, ErrPayloadPagamento},
		{"cartao com chave pix junto", Pagamento{Metodo: MetodoCartao, Valor: 100, Status: PagamentoPendente, CartaoID: uptr(1), ChavePix: sptr("x")}, ErrPayloadPagamento},
		{"pix sem chave", Pagamento{Metodo: MetodoPix, Valor: 100, Status: PagamentoPendente}, ErrPayloadPagamento},
		{"pix com payload de boleto", Pagamento{Metodo: MetodoPix, Valor: 100, Status: PagamentoPendente, ChavePix: sptr("x"), LinhaDigitavel: sptr("34191")}, ErrPayloadPagamento},
		{"boleto sem vencimento", Pagamento{Metodo: MetodoBoleto, Valor: 100, Status: PagamentoPendente, LinhaDigitavel: sptr("34191")}, ErrPayloadPagamento},
		{"boleto sem linha", Pagamento{Metodo: MetodoBoleto, Valor: 100, Status: PagamentoPendente, VencimentoBoleto: tptr(venc)}, ErrPayloadPagamento},

		{"metodo desconhecido", Pagamento{Metodo: "cheque", Valor: 100, Status: PagamentoPendente}, ErrMetodoInvalido},
		{"valor negativo", Pagamento{Metodo: MetodoPix, Valor: -1, Status: PagamentoPendente, ChavePix: sptr("x")}, ErrValorNegativo},
		{"status desconhecido", Pagamento{Metodo: MetodoPix, Valor: 1, Status: "pago", ChavePix: sptr("x")}, ErrStatusDesconhecido},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			if err := c.p.Validate(); !errors.Is(err, c.err) {
				t.Errorf("esperado %v, veio %v", c.err, err)
			}
		})
	}
}

func TestMetodoPagamentoValido(t *testing.T) {
	for _, m := range []MetodoPagamento{MetodoCartao, MetodoPix, MetodoBoleto} {
		if !m.Valido() {
			t.Errorf("%s deveria ser válido", m)
		}
	}
	if MetodoPagamento("dinheiro").Valido() {
		t.Error("método inventado passou")
	}
}
