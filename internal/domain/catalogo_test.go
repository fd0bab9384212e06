package domain

import (
	"errors"
	"testing"
)

func TestProdutoValidate(t *testing.T) {
	p := Produto{Nome: "Teclado", Preco: 459.90, Estoque: 30}
	if err := p.Validate(); err != nil {
		t.Fatalf("produto válido rejeitado: %v", err)
	}
	p.Preco = -1
	if err := p.Validate(); !errors.Is(err, ErrPrecoNegativo) {
		t.Errorf("preço negativo: veio %v", err)
	}
	p.Preco = 10
	p.Estoque = -5
	if err := p.Validate(); !errors.Is(err, ErrEstoqueNegativo) {
		t.Errorf("estoque negativo: veio %v", err)
	}
}

func TestClassificarEstoque(t *testing.T) {
	casos := []struct {
		qtd  int
		want string
	}{
		{0, EstoqueCritico},
		{10, EstoqueCritico},
		{11, EstoqueBaixo},
		{30, EstoqueBaixo},
		{31, EstoqueOK},
		{500, EstoqueOK},
	}
	for _, c := range casos {
		if got := ClassificarEstoque(c.qtd); got != c.want {
			t.Errorf("qtd %d: esperado %s, veio %s", c.qtd, c.want, got)
		}
	}
}

func TestTipoValido(t *testing.T) {
	for _, tp := range []string{TipoComprador, TipoVendedor, TipoAdmin} {
		if !TipoValido(tp) {
			t.Errorf("%s deveria ser válido", tp)
		}
	}
	for _, tp := range []string{"", "gerente", "Comprador"} {
		if TipoValido(tp) {
			t.Errorf("%q não deveria ser válido", tp)
		}
	}
}
