package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"marketplace-api/internal/domain"
)

// AtualizarStatusPedido aplica a tabela de transições antes de gravar.
func (s *PedidoService) AtualizarStatusPedido(ctx context.Context, pedidoID uint, novo domain.StatusPedido) (*domain.Pedido, error) {
	if !novo.Valido() {
		return nil, &domain.ErrTransicaoInvalida{De: "?", Para: string(novo)}
	}
	var pedido domain.Pedido
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&pedido, "id = ?", pedidoID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPedidoInexistente
			}
			return err
		}
		if !pedido.Status.PodeTransitar(novo) {
			return &domain.ErrTransicaoInvalida{De: string(pedido.Status), Para: string(novo)}
		}
		pedido.Status = novo
		return tx.Model(&domain.Pedido{}).Where("id = ?", pedidoID).
			Update("status", novo).Error
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("status do pedido atualizado",
		zap.Uint("pedido_id", pedidoID), zap.String("status", string(novo)))
	return &pedido, nil
}

// AtualizarStatusPagamento idem, com o grafo do pagamento.
func (s *PedidoService) AtualizarStatusPagamento(ctx context.Context, pagamentoID uint, novo domain.StatusPagamento) (*domain.Pagamento, error) {
	if !novo.Valido() {
		return nil, &domain.ErrTransicaoInvalida{De: "?", Para: string(novo)}
	}
	var pagamento domain.Pagamento
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&pagamento, "id = ?", pagamentoID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPagamentoInexistente
			}
			return err
		}
		if !pagamento.Status.PodeTransitar(novo) {
			return &domain.ErrTransicaoInvalida{De: string(pagamento.Status), Para: string(novo)}
		}
		pagamento.Status = novo
		return tx.Model(&domain.Pagamento{}).Where("id = ?", pagamentoID).
			Update("status", novo).Error
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("status do pagamento atualizado",
		zap.Uint("pagamento_id", pagamentoID), zap.String("status", string(novo)))
	return &pagamento, nil
}
