package router

import (
	"errors"
	"fmt"
	"testing"

	"marketplace-api/internal/domain"
	"marketplace-api/internal/service"
	httpez "marketplace-api/internal/transport/http/ez"
	resp "marketplace-api/internal/transport/http/response"
)

func codigoDe(t *testing.T, err error) int {
	t.Helper()
	var ae *httpez.AErr
	if !errors.As(err, &ae) {
		t.Fatalf("mapErr não devolveu AErr: %v", err)
	}
	return ae.Code
}

func TestMapErr(t *testing.T) {
	casos := []struct {
		nome string
		err  error
		code int
	}{
		{"comprador inexistente", service.ErrCompradorInexistente, resp.CodeNotFound},
		{"endereco inexistente", service.ErrEnderecoInexistente, resp.CodeNotFound},
		{"produto inexistente", service.ErrProdutoInexistente, resp.CodeNotFound},
		{"usuario inexistente", service.ErrUsuarioInexistente, resp.CodeNotFound},
		{"endereco de outro", service.ErrEnderecoDeOutro, resp.CodeForbidden},
		{"cartao de outro", service.ErrCartaoDeOutro, resp.CodeForbidden},
		{"pedido de outro", service.ErrPedidoDeOutro, resp.CodeForbidden},
		{"email em uso", service.ErrEmailEmUso, resp.CodeConflict},
		{"cpf em uso", service.ErrCPFEmUso, resp.CodeConflict},
		{"perfil existente", service.ErrPerfilExistente, resp.CodeConflict},
		{"estoque insuficiente", service.ErrEstoqueInsuficiente, resp.CodeBadRequest},
		{"pedido não entregue", service.ErrPedidoNaoEntregue, resp.CodeBadRequest},
		{"nota fora da faixa", domain.ErrNotaForaDaFaixa, resp.CodeBadRequest},
		{"item duplicado", domain.ErrItemDuplicado, resp.CodeBadRequest},
		{"payload de pagamento", domain.ErrPayloadPagamento, resp.CodeBadRequest},
		{"transição inválida", &domain.ErrTransicaoInvalida{De: "entregue", Para: "pendente"}, resp.CodeBadRequest},
		{"erro embrulhado", fmt.Errorf("criar pedido: %w", service.ErrEstoqueInsuficiente), resp.CodeBadRequest},
		{"erro desconhecido", errors.New("timeout no banco"), resp.CodeServerError},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			if got := codigoDe(t, mapErr(c.err)); got != c.code {
				t.Errorf("esperado %d, veio %d", c.code, got)
			}
		})
	}
}

func TestMapErrPreservaAErr(t *testing.T) {
	original := httpez.Forbidden("histórico de outro comprador")
	if mapErr(original) != original {
		t.Error("AErr deveria passar intacto")
	}
	if mapErr(nil) != nil {
		t.Error("nil deveria continuar nil")
	}
}
