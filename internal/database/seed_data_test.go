package database

import (
	"math"
	"testing"

	"marketplace-api/internal/domain"
)

func TestSeedVolumes(t *testing.T) {
	if n := len(SeedUsuarios()); n != 15 {
		t.Errorf("usuarios: %d", n)
	}
	if n := len(SeedCategorias()); n != 10 {
		t.Errorf("categorias: %d", n)
	}
	if n := len(SeedProdutos()); n != 20 {
		t.Errorf("produtos: %d", n)
	}
	if n := len(SeedPedidos()); n != 10 {
		t.Errorf("pedidos: %d", n)
	}
	if n := len(SeedPagamentos()); n != 10 {
		t.Errorf("pagamentos: %d", n)
	}
}

func TestSeedPerfisApontamParaUsuarios(t *testing.T) {
	usuarios := map[uint]domain.Usuario{}
	for _, u := range SeedUsuarios() {
		usuarios[u.ID] = u
	}
	temAdmin := false
	for _, u := range usuarios {
		if u.Tipo == domain.TipoAdmin {
			temAdmin = true
		}
		if !domain.TipoValido(u.Tipo) {
			t.Errorf("usuario %d com tipo %q", u.ID, u.Tipo)
		}
	}
	if !temAdmin {
		t.Error("seed sem usuário admin")
	}
	for _, c := range SeedCompradores() {
		if _, ok := usuarios[c.UsuarioID]; !ok {
			t.Errorf("comprador %d sem usuário", c.UsuarioID)
		}
	}
	lojas := map[string]bool{}
	for _, v := range SeedVendedores() {
		if _, ok := usuarios[v.UsuarioID]; !ok {
			t.Errorf("vendedor %d sem usuário", v.UsuarioID)
		}
		lojas[v.NomeLoja] = true
	}
	if !lojas["TechStore Brasil"] {
		t.Error("TechStore Brasil ausente")
	}
}

func TestSeedProdutosValidosEComVendedor(t *testing.T) {
	vendedores := map[uint]bool{}
	for _, v := range SeedVendedores() {
		vendedores[v.UsuarioID] = true
	}
	categorias := map[uint]bool{}
	for _, c := range SeedCategorias() {
		categorias[c.ID] = true
	}
	for _, p := range SeedProdutos() {
		if err := p.Validate(); err != nil {
			t.Errorf("produto %d inválido: %v", p.ID, err)
		}
		if !vendedores[p.VendedorID] {
			t.Errorf("produto %d aponta para vendedor %d inexistente", p.ID, p.VendedorID)
		}
		for _, c := range p.Categorias {
			if !categorias[c.ID] {
				t.Errorf("produto %d com categoria %d inexistente", p.ID, c.ID)
			}
		}
	}
}

func TestSeedSeisProdutosSemVenda(t *testing.T) {
	vendidos := map[uint]bool{}
	for _, i := range SeedItens() {
		vendidos[i.ProdutoID] = true
	}
	semVenda := 0
	for _, p := range SeedProdutos() {
		if !vendidos[p.ID] {
			semVenda++
		}
	}
	if semVenda != 6 {
		t.Errorf("produtos sem venda: esperado 6, veio %d", semVenda)
	}
}

func TestSeedPedidosConsistentes(t *testing.T) {
	compradores := map[uint]bool{}
	for _, c := range SeedCompradores() {
		compradores[c.UsuarioID] = true
	}
	enderecos := map[uint]domain.Endereco{}
	for _, e := range SeedEnderecos() {
		if !compradores[e.CompradorID] {
			t.Errorf("endereço %d de comprador %d inexistente", e.ID, e.CompradorID)
		}
		enderecos[e.ID] = e
	}
	cartoes := map[uint]domain.Cartao{}
	for _, c := range SeedCartoes() {
		if !compradores[c.CompradorID] {
			t.Errorf("cartão %d de comprador %d inexistente", c.ID, c.CompradorID)
		}
		cartoes[c.ID] = c
	}
	pagamentos := map[uint]domain.Pagamento{}
	for _, pg := range SeedPagamentos() {
		if err := pg.Validate(); err != nil {
			t.Errorf("pagamento %d inválido: %v", pg.ID, err)
		}
		pagamentos[pg.ID] = pg
	}

	itensPorPedido := map[uint][]domain.ItemDoPedido{}
	for _, i := range SeedItens() {
		itensPorPedido[i.PedidoID] = append(itensPorPedido[i.PedidoID], i)
	}

	for _, p := range SeedPedidos() {
		if !p.Status.Valido() {
			t.Errorf("pedido %d com status %q", p.ID, p.Status)
		}
		if !compradores[p.CompradorID] {
			t.Errorf("pedido %d de comprador %d inexistente", p.ID, p.CompradorID)
		}
		end, ok := enderecos[p.EnderecoID]
		if !ok {
			t.Errorf("pedido %d com endereço %d inexistente", p.ID, p.EnderecoID)
		} else if end.CompradorID != p.CompradorID {
			t.Errorf("pedido %d entrega no endereço de outro comprador", p.ID)
		}
		pg, ok := pagamentos[p.PagamentoID]
		if !ok {
			t.Errorf("pedido %d com pagamento %d inexistente", p.ID, p.PagamentoID)
			continue
		}
		if pg.CartaoID != nil {
			cart, ok := cartoes[*pg.CartaoID]
			if !ok {
				t.Errorf("pagamento %d com cartão %d inexistente", pg.ID, *pg.CartaoID)
			} else if cart.CompradorID != p.CompradorID {
				t.Errorf("pagamento %d usa cartão de outro comprador", pg.ID)
			}
		}

		itens := itensPorPedido[p.ID]
		if err := domain.ValidarItens(itens); err != nil {
			t.Errorf("itens do pedido %d: %v", p.ID, err)
		}
		if total := domain.TotalPedido(itens); math.Abs(total-pg.Valor) > 0.005 {
			t.Errorf("pedido %d: total %.2f difere do pagamento %.2f", p.ID, total, pg.Valor)
		}
	}

	// pagamento é 1:1 com pedido
	usados := map[uint]int{}
	for _, p := range SeedPedidos() {
		usados[p.PagamentoID]++
	}
	for id, n := range usados {
		if n > 1 {
			t.Errorf("pagamento %d reutilizado em %d pedidos", id, n)
		}
	}
}

// Toda tabela que recebe id fixo na carga precisa ter a sequence realinhada,
// senão o primeiro insert sem id depois do seed colide com chave já usada.
func TestSeedTabelasComIDFixoTemSequenciaRealinhada(t *testing.T) {
	comIDFixo := map[string]bool{
		domain.Usuario{}.TableName():   len(SeedUsuarios()) > 0,
		domain.Categoria{}.TableName(): len(SeedCategorias()) > 0,
		domain.Produto{}.TableName():   len(SeedProdutos()) > 0,
		domain.Endereco{}.TableName():  len(SeedEnderecos()) > 0,
		domain.Cartao{}.TableName():    len(SeedCartoes()) > 0,
		domain.Pagamento{}.TableName(): len(SeedPagamentos()) > 0,
		domain.Pedido{}.TableName():    len(SeedPedidos()) > 0,
		domain.Avaliacao{}.TableName(): len(SeedAvaliacoes()) > 0,
	}
	realinhadas := map[string]bool{}
	for _, tabela := range TabelasComSequencia() {
		realinhadas[tabela] = true
	}
	for tabela, populada := range comIDFixo {
		if !populada {
			t.Errorf("builder da tabela %s veio vazio", tabela)
		}
		if !realinhadas[tabela] {
			t.Errorf("tabela %s recebe id fixo mas não está na lista de setval", tabela)
		}
	}
	if len(realinhadas) != len(comIDFixo) {
		t.Errorf("lista de setval tem %d tabelas, seed popula %d", len(realinhadas), len(comIDFixo))
	}
}

func TestSeedAvaliacoesSoDePedidosEntregues(t *testing.T) {
	status := map[uint]domain.StatusPedido{}
	for _, p := range SeedPedidos() {
		status[p.ID] = p.Status
	}
	for _, a := range SeedAvaliacoes() {
		if err := a.Validate(); err != nil {
			t.Errorf("avaliação %d inválida: %v", a.ID, err)
		}
		if status[a.PedidoID] != domain.PedidoEntregue {
			t.Errorf("avaliação %d em pedido %d não entregue", a.ID, a.PedidoID)
		}
	}
}
