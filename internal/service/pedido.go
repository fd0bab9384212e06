package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"marketplace-api/internal/domain"
	"marketplace-api/internal/repo"
	"marketplace-api/pkg/utils"
)

var (
	ErrCompradorInexistente = errors.New("comprador não encontrado")
	ErrEnderecoInexistente  = errors.New("endereço não encontrado")
	ErrEnderecoDeOutro      = errors.New("endereço não pertence ao comprador")
	ErrCartaoObrigatorio    = errors.New("pagamento com cartão exige cartaoId")
	ErrCartaoDeOutro        = errors.New("cartão não pertence ao comprador")
	ErrProdutoInexistente   = errors.New("produto não encontrado")
	ErrEstoqueInsuficiente  = errors.New("estoque insuficiente")
	ErrPedidoInexistente    = errors.New("pedido não encontrado")
	ErrPagamentoInexistente = errors.New("pagamento não encontrado")
)

type PedidoService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewPedidoService(db *gorm.DB, log *zap.Logger) *PedidoService {
	return &PedidoService{db: db, log: log}
}

type ItemNovoPedido struct {
	ProdutoID  uint    `json:"id" binding:"required"`
	Quantidade int     `json:"quantidade" binding:"required"`
	Preco      float64 `json:"preco" binding:"required"`
}

type NovoPedido struct {
	CompradorID uint
	EnderecoID  uint
	Metodo      domain.MetodoPagamento
	CartaoID    *uint
	Itens       []ItemNovoPedido
}

type PedidoCriado struct {
	PedidoID    uint    `json:"pedidoId"`
	PagamentoID uint    `json:"pagamentoId"`
	ValorTotal  float64 `json:"valorTotal"`
}

// Criar processa o pedido completo em uma transação: pagamento, pedido,
// itens e baixa de estoque. Endereço e cartão precisam pertencer ao mesmo
// comprador do pedido; o schema não tem como exigir isso, então a regra
// vive aqui, na borda da aplicação.
func (s *PedidoService) Criar(ctx context.Context, in NovoPedido) (*PedidoCriado, error) {
	if !in.Metodo.Valido() {
		return nil, domain.ErrMetodoInvalido
	}

	itens := make([]domain.ItemDoPedido, 0, len(in.Itens))
	for _, it := range in.Itens {
		itens = append(itens, domain.ItemDoPedido{
			ProdutoID:     it.ProdutoID,
			Quantidade:    it.Quantidade,
			PrecoNaCompra: it.Preco,
		})
	}
	if err := domain.ValidarItens(itens); err != nil {
		return nil, err
	}
	total := domain.TotalPedido(itens)

	var out PedidoCriado
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		comprador, err := repo.NewCompradorRepo(tx).FindByUsuarioID(ctx, in.CompradorID)
		if err != nil {
			return err
		}
		if comprador == nil {
			return ErrCompradorInexistente
		}

		var endereco domain.Endereco
		if err := tx.First(&endereco, "id = ?", in.EnderecoID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEnderecoInexistente
			}
			return err
		}
		if endereco.CompradorID != in.CompradorID {
			return ErrEnderecoDeOutro
		}

		pagamento, err := s.montarPagamento(tx, in, total)
		if err != nil {
			return err
		}
		if err := tx.Create(pagamento).Error; err != nil {
			return err
		}

		pedido := domain.Pedido{
			Data:        time.Now(),
			Status:      domain.PedidoProcessando,
			CompradorID: in.CompradorID,
			EnderecoID:  in.EnderecoID,
			PagamentoID: pagamento.ID,
		}
		if err := tx.Create(&pedido).Error; err != nil {
			return err
		}

		for i := range itens {
			itens[i].PedidoID = pedido.ID
			if err := tx.Create(&itens[i]).Error; err != nil {
				return err
			}
			// baixa guardada: nunca deixa o estoque negativo
			res := tx.Model(&domain.Produto{}).
				Where("id = ? AND estoque >= ?", itens[i].ProdutoID, itens[i].Quantidade).
				UpdateColumn("estoque", gorm.Expr("estoque - ?", itens[i].Quantidade))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				var n int64
				tx.Model(&domain.Produto{}).Where("id = ?", itens[i].ProdutoID).Count(&n)
				if n == 0 {
					return ErrProdutoInexistente
				}
				return ErrEstoqueInsuficiente
			}
		}

		out = PedidoCriado{PedidoID: pedido.ID, PagamentoID: pagamento.ID, ValorTotal: total}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("pedido criado",
		zap.Uint("pedido_id", out.PedidoID),
		zap.Uint("comprador_id", in.CompradorID),
		zap.Float64("valor", out.ValorTotal),
	)
	return &out, nil
}

// montarPagamento monta o payload discriminado do método escolhido.
func (s *PedidoService) montarPagamento(tx *gorm.DB, in NovoPedido, total float64) (*domain.Pagamento, error) {
	p := domain.Pagamento{
		Metodo: in.Metodo,
		Data:   time.Now(),
		Valor:  total,
		Status: domain.PagamentoProcessando,
	}
	switch in.Metodo {
	case domain.MetodoCartao:
		if in.CartaoID == nil {
			return nil, ErrCartaoObrigatorio
		}
		var cartao domain.Cartao
		if err := tx.First(&cartao, "id = ?", *in.CartaoID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCartaoDeOutro
			}
			return nil, err
		}
		if cartao.CompradorID != in.CompradorID {
			return nil, ErrCartaoDeOutro
		}
		p.CartaoID = in.CartaoID
	case domain.MetodoPix:
		chave := utils.NewID() // chave aleatória
		p.ChavePix = &chave
	case domain.MetodoBoleto:
		linha := novaLinhaDigitavel()
		venc := time.Now().AddDate(0, 0, 3)
		p.LinhaDigitavel = &linha
		p.VencimentoBoleto = &venc
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func novaLinhaDigitavel() string {
	var b strings.Builder
	for i := 0; i < 47; i++ {
		b.WriteByte(byte('0' + rand.IntN(10)))
	}
	return b.String()
}
