package domain

import (
	"errors"
	"testing"
)

func TestAvaliacaoNotaNaFaixa(t *testing.T) {
	for nota := 0; nota <= 5; nota++ {
		a := Avaliacao{PedidoID: 1, Nota: nota}
		if err := a.Validate(); err != nil {
			t.Errorf("nota %d rejeitada: %v", nota, err)
		}
	}
	for _, nota := range []int{-1, 6, 10} {
		a := Avaliacao{PedidoID: 1, Nota: nota}
		if err := a.Validate(); !errors.Is(err, ErrNotaForaDaFaixa) {
			t.Errorf("nota %d: esperado ErrNotaForaDaFaixa, veio %v", nota, err)
		}
	}
}
