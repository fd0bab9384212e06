package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"marketplace-api/internal/domain"
	"marketplace-api/internal/repo"
)

var (
	ErrPedidoNaoEntregue = errors.New("só é possível avaliar pedidos entregues")
	ErrPedidoDeOutro     = errors.New("pedido não pertence ao comprador")
)

type AvaliacaoService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewAvaliacaoService(db *gorm.DB, log *zap.Logger) *AvaliacaoService {
	return &AvaliacaoService{db: db, log: log}
}

type NovaAvaliacao struct {
	PedidoID   uint
	Nota       int
	Comentario string
	// CompradorID vem do token, nunca do corpo
	CompradorID uint
}

// Criar registra a avaliação de um pedido entregue do próprio comprador.
func (s *AvaliacaoService) Criar(ctx context.Context, in NovaAvaliacao) (*domain.Avaliacao, error) {
	a := domain.Avaliacao{
		PedidoID:   in.PedidoID,
		Nota:       in.Nota,
		Comentario: in.Comentario,
		Data:       time.Now(),
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		pedido, err := repo.NewPedidoRepo(tx).FindByID(ctx, in.PedidoID)
		if err != nil {
			return err
		}
		if pedido == nil {
			return ErrPedidoInexistente
		}
		if pedido.CompradorID != in.CompradorID {
			return ErrPedidoDeOutro
		}
		if pedido.Status != domain.PedidoEntregue {
			return ErrPedidoNaoEntregue
		}
		return repo.NewAvaliacaoRepo(tx).Create(ctx, &a)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("avaliação registrada",
		zap.Uint("pedido_id", in.PedidoID), zap.Int("nota", in.Nota))
	return &a, nil
}
