package router

import (
	"errors"

	"marketplace-api/internal/domain"
	"marketplace-api/internal/repo"
	"marketplace-api/internal/service"
	httpez "marketplace-api/internal/transport/http/ez"
)

// mapErr converte erros de domínio/serviço/constraint no código do envelope.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	var ae *httpez.AErr
	if errors.As(err, &ae) {
		return err
	}
	var trans *domain.ErrTransicaoInvalida
	switch {
	case errors.As(err, &trans):
		return httpez.BadRequest(err.Error())
	case errors.Is(err, service.ErrCompradorInexistente),
		errors.Is(err, service.ErrEnderecoInexistente),
		errors.Is(err, service.ErrProdutoInexistente),
		errors.Is(err, service.ErrPedidoInexistente),
		errors.Is(err, service.ErrPagamentoInexistente),
		errors.Is(err, service.ErrUsuarioInexistente):
		return httpez.NotFound(err.Error())
	case errors.Is(err, service.ErrEnderecoDeOutro),
		errors.Is(err, service.ErrCartaoDeOutro),
		errors.Is(err, service.ErrPedidoDeOutro):
		return httpez.Forbidden(err.Error())
	case errors.Is(err, service.ErrEmailEmUso),
		errors.Is(err, service.ErrCPFEmUso),
		errors.Is(err, service.ErrCNPJEmUso),
		errors.Is(err, service.ErrPerfilExistente):
		return httpez.Conflict(err.Error())
	case errors.Is(err, service.ErrEstoqueInsuficiente),
		errors.Is(err, service.ErrCartaoObrigatorio),
		errors.Is(err, service.ErrPedidoNaoEntregue),
		errors.Is(err, service.ErrTipoInvalido),
		errors.Is(err, domain.ErrMetodoInvalido),
		errors.Is(err, domain.ErrPayloadPagamento),
		errors.Is(err, domain.ErrNotaForaDaFaixa),
		errors.Is(err, domain.ErrQuantidadeInvalida),
		errors.Is(err, domain.ErrPedidoSemItens),
		errors.Is(err, domain.ErrItemDuplicado),
		errors.Is(err, domain.ErrPrecoNegativo),
		errors.Is(err, domain.ErrEstoqueNegativo),
		errors.Is(err, domain.ErrValorNegativo):
		return httpez.BadRequest(err.Error())
	case repo.IsDupKey(err):
		return httpez.Conflict(err.Error())
	case repo.IsFKViolation(err):
		return httpez.BadRequest(err.Error())
	}
	return httpez.Internal("internal error", err)
}
