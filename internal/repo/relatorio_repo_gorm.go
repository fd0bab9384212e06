package repo

import (
	"context"

	"gorm.io/gorm"

	"marketplace-api/internal/domain"
)

// RelatorioRepo concentra as projeções analíticas. São todas leituras puras
// sobre o grafo do schema; o faturamento considera apenas pedidos entregues
// e a soma é sempre preco_na_compra × quantidade (preço histórico).
//
// As agregações usam STRING_AGG/EXTRACT e assumem o dialeto postgres.
type RelatorioRepo struct{ db *gorm.DB }

func NewRelatorioRepo(db *gorm.DB) *RelatorioRepo { return &RelatorioRepo{db: db} }

type FaturamentoVendedor struct {
	NomeLoja     string  `json:"nomeLoja"`
	Faturamento  float64 `json:"faturamento"`
	TotalPedidos int64   `json:"totalPedidos"`
}

func (r *RelatorioRepo) FaturamentoPorVendedor(ctx context.Context, limite int) ([]FaturamentoVendedor, error) {
	if limite <= 0 {
		limite = 5
	}
	var out []FaturamentoVendedor
	err := r.db.WithContext(ctx).Raw(`
		SELECT v.nome_loja,
		       SUM(idp.quantidade * idp.preco_na_compra) AS faturamento,
		       COUNT(DISTINCT ped.id) AS total_pedidos
		FROM vendedores v
		JOIN produtos p ON v.usuario_id = p.vendedor_id
		JOIN itens_do_pedido idp ON p.id = idp.produto_id
		JOIN pedidos ped ON idp.pedido_id = ped.id
		WHERE ped.status = ?
		GROUP BY v.nome_loja
		ORDER BY faturamento DESC
		LIMIT ?`, domain.PedidoEntregue, limite).Scan(&out).Error
	return out, err
}

type ProdutoMaisVendido struct {
	Produto           string  `json:"produto"`
	Vendedor          string  `json:"vendedor"`
	QuantidadeVendida int64   `json:"quantidadeVendida"`
	ReceitaTotal      float64 `json:"receitaTotal"`
	NumeroPedidos     int64   `json:"numeroPedidos"`
}

func (r *RelatorioRepo) MaisVendidos(ctx context.Context, limite int) ([]ProdutoMaisVendido, error) {
	if limite <= 0 || limite > 50 {
		limite = 10
	}
	var out []ProdutoMaisVendido
	err := r.db.WithContext(ctx).Raw(`
		SELECT p.nome AS produto,
		       v.nome_loja AS vendedor,
		       SUM(idp.quantidade) AS quantidade_vendida,
		       SUM(idp.quantidade * idp.preco_na_compra) AS receita_total,
		       COUNT(DISTINCT idp.pedido_id) AS numero_pedidos
		FROM produtos p
		JOIN itens_do_pedido idp ON p.id = idp.produto_id
		JOIN pedidos ped ON idp.pedido_id = ped.id
		JOIN vendedores v ON p.vendedor_id = v.usuario_id
		WHERE ped.status = ?
		GROUP BY p.id, p.nome, v.nome_loja
		ORDER BY quantidade_vendida DESC
		LIMIT ?`, domain.PedidoEntregue, limite).Scan(&out).Error
	return out, err
}

type VendaMensal struct {
	Mes          int     `json:"mes"`
	TotalPedidos int64   `json:"totalPedidos"`
	Faturamento  float64 `json:"faturamento"`
}

func (r *RelatorioRepo) VendasPorMes(ctx context.Context) ([]VendaMensal, error) {
	var out []VendaMensal
	err := r.db.WithContext(ctx).Raw(`
		SELECT EXTRACT(MONTH FROM ped.data) AS mes,
		       COUNT(*) AS total_pedidos,
		       SUM(pag.valor) AS faturamento
		FROM pedidos ped
		JOIN pagamentos pag ON ped.pagamento_id = pag.id
		WHERE ped.status = ?
		GROUP BY EXTRACT(MONTH FROM ped.data)
		ORDER BY mes`, domain.PedidoEntregue).Scan(&out).Error
	return out, err
}

type ClienteVIP struct {
	Comprador       string  `json:"comprador"`
	CPF             string  `json:"cpf"`
	TotalPedidos    int64   `json:"totalPedidos"`
	ValorTotalGasto float64 `json:"valorTotalGasto"`
	TicketMedio     float64 `json:"ticketMedio"`
}

func (r *RelatorioRepo) ClientesVIP(ctx context.Context, limite int) ([]ClienteVIP, error) {
	if limite <= 0 || limite > 100 {
		limite = 10
	}
	var out []ClienteVIP
	err := r.db.WithContext(ctx).Raw(`
		SELECT u.nome AS comprador,
		       c.cpf,
		       COUNT(DISTINCT ped.id) AS total_pedidos,
		       SUM(pag.valor) AS valor_total_gasto,
		       AVG(pag.valor) AS ticket_medio
		FROM usuarios u
		JOIN compradores c ON u.id = c.usuario_id
		JOIN pedidos ped ON c.usuario_id = ped.comprador_id
		JOIN pagamentos pag ON ped.pagamento_id = pag.id
		WHERE ped.status = ?
		GROUP BY u.id, u.nome, c.cpf
		ORDER BY valor_total_gasto DESC
		LIMIT ?`, domain.PedidoEntregue, limite).Scan(&out).Error
	return out, err
}

type MetodoResumo struct {
	Metodo     string  `json:"metodo"`
	Total      int64   `json:"total"`
	ValorTotal float64 `json:"valorTotal"`
}

// MetodosPagamento considera só pagamentos aprovados.
func (r *RelatorioRepo) MetodosPagamento(ctx context.Context) ([]MetodoResumo, error) {
	var out []MetodoResumo
	err := r.db.WithContext(ctx).Raw(`
		SELECT metodo,
		       COUNT(*) AS total,
		       SUM(valor) AS valor_total
		FROM pagamentos
		WHERE status = ?
		GROUP BY metodo`, domain.PagamentoAprovado).Scan(&out).Error
	return out, err
}

type EstoqueItem struct {
	Produto       string  `json:"produto"`
	Estoque       int     `json:"estoque"`
	Preco         float64 `json:"preco"`
	Vendedor      string  `json:"vendedor"`
	TotalVendido  int64   `json:"totalVendido"`
	StatusEstoque string  `json:"statusEstoque"`
}

// EstoqueCritico lista produtos com estoque até o limite, mais críticos
// primeiro. A classificação CRÍTICO/BAIXO/OK segue domain.ClassificarEstoque.
func (r *RelatorioRepo) EstoqueCritico(ctx context.Context, limiteEstoque int) ([]EstoqueItem, error) {
	if limiteEstoque <= 0 {
		limiteEstoque = 30
	}
	var out []EstoqueItem
	err := r.db.WithContext(ctx).Raw(`
		SELECT p.nome AS produto,
		       p.estoque,
		       p.preco,
		       v.nome_loja AS vendedor,
		       COALESCE(SUM(idp.quantidade), 0) AS total_vendido
		FROM produtos p
		JOIN vendedores v ON p.vendedor_id = v.usuario_id
		LEFT JOIN itens_do_pedido idp ON p.id = idp.produto_id
		LEFT JOIN pedidos ped ON idp.pedido_id = ped.id AND ped.status = ?
		WHERE p.estoque <= ?
		GROUP BY p.id, p.nome, p.estoque, p.preco, v.nome_loja
		ORDER BY p.estoque ASC`, domain.PedidoEntregue, limiteEstoque).Scan(&out).Error
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].StatusEstoque = domain.ClassificarEstoque(out[i].Estoque)
	}
	return out, nil
}

type ProdutoSemVenda struct {
	ID       uint    `json:"id"`
	Produto  string  `json:"produto"`
	Vendedor string  `json:"vendedor"`
	Preco    float64 `json:"preco"`
	Estoque  int     `json:"estoque"`
}

// ProdutosSemVendas retorna os produtos que nunca apareceram em um item de pedido.
func (r *RelatorioRepo) ProdutosSemVendas(ctx context.Context) ([]ProdutoSemVenda, error) {
	var out []ProdutoSemVenda
	err := r.db.WithContext(ctx).Raw(`
		SELECT p.id,
		       p.nome AS produto,
		       v.nome_loja AS vendedor,
		       p.preco,
		       p.estoque
		FROM produtos p
		JOIN vendedores v ON p.vendedor_id = v.usuario_id
		WHERE NOT EXISTS (
			SELECT 1 FROM itens_do_pedido idp WHERE idp.produto_id = p.id
		)
		ORDER BY p.id`).Scan(&out).Error
	return out, err
}

type MediaAvaliacao struct {
	Produto         string  `json:"produto"`
	TotalAvaliacoes int64   `json:"totalAvaliacoes"`
	NotaMedia       float64 `json:"notaMedia"`
}

// MediaAvaliacoes agrega nota média por produto via pedidos avaliados.
func (r *RelatorioRepo) MediaAvaliacoes(ctx context.Context) ([]MediaAvaliacao, error) {
	var out []MediaAvaliacao
	err := r.db.WithContext(ctx).Raw(`
		SELECT p.nome AS produto,
		       COUNT(a.id) AS total_avaliacoes,
		       AVG(a.nota) AS nota_media
		FROM produtos p
		JOIN itens_do_pedido idp ON p.id = idp.produto_id
		JOIN avaliacoes a ON a.pedido_id = idp.pedido_id
		GROUP BY p.id, p.nome
		ORDER BY nota_media DESC`).Scan(&out).Error
	return out, err
}

// Dashboard agrupa os três indicadores do painel executivo.
type Dashboard struct {
	TopVendedores    []FaturamentoVendedor `json:"topVendedores"`
	VendasPorMes     []VendaMensal         `json:"vendasPorMes"`
	MetodosPagamento []MetodoResumo        `json:"metodosPagamento"`
}

func (r *RelatorioRepo) DashboardVendas(ctx context.Context) (*Dashboard, error) {
	top, err := r.FaturamentoPorVendedor(ctx, 5)
	if err != nil {
		return nil, err
	}
	mes, err := r.VendasPorMes(ctx)
	if err != nil {
		return nil, err
	}
	met, err := r.MetodosPagamento(ctx)
	if err != nil {
		return nil, err
	}
	return &Dashboard{TopVendedores: top, VendasPorMes: mes, MetodosPagamento: met}, nil
}
