package database

import (
	"time"

	"marketplace-api/internal/domain"
	"marketplace-api/pkg/utils"
)

// Dados de demonstração com IDs fixos para que as referências cruzadas
// (pedido → endereço → comprador, pagamento → cartão) fechem entre si.
// A senha de todos os usuários é "123456".

func dia(mes time.Month, d int) time.Time {
	return time.Date(2025, mes, d, 12, 0, 0, 0, time.UTC)
}

// TabelasComSequencia lista as tabelas que recebem ids fixos no seed e têm
// chave serial; cada uma precisa do setval após a carga.
func TabelasComSequencia() []string {
	return []string{
		"usuarios",
		"categorias",
		"produtos",
		"enderecos",
		"cartoes",
		"pagamentos",
		"pedidos",
		"avaliacoes",
	}
}

func SeedUsuarios() []domain.Usuario {
	senha := utils.HashPassword("123456")
	u := func(id uint, nome, email, fone, tipo string) domain.Usuario {
		return domain.Usuario{ID: id, Nome: nome, Email: email, SenhaHash: senha, Telefone: fone, Tipo: tipo}
	}
	return []domain.Usuario{
		u(1, "Carlos Mendes", "carlos.mendes@techstore.com.br", "(11) 98801-0001", domain.TipoVendedor),
		u(2, "Fernanda Lima", "fernanda.lima@modabella.com.br", "(11) 98801-0002", domain.TipoVendedor),
		u(3, "Roberto Alves", "roberto.alves@casaconforto.com.br", "(21) 98801-0003", domain.TipoVendedor),
		u(4, "Juliana Castro", "juliana.castro@esportetotal.com.br", "(31) 98801-0004", domain.TipoVendedor),
		u(5, "Paulo Henrique", "paulo.henrique@livrariasaber.com.br", "(41) 98801-0005", domain.TipoVendedor),
		u(6, "Mariana Costa", "mariana.costa@petamigo.com.br", "(51) 98801-0006", domain.TipoVendedor),
		u(7, "Ana Souza", "ana.souza@gmail.com", "(11) 99902-0007", domain.TipoComprador),
		u(8, "Bruno Oliveira", "bruno.oliveira@gmail.com", "(11) 99902-0008", domain.TipoComprador),
		u(9, "Camila Santos", "camila.santos@hotmail.com", "(21) 99902-0009", domain.TipoComprador),
		u(10, "Diego Pereira", "diego.pereira@gmail.com", "(21) 99902-0010", domain.TipoComprador),
		u(11, "Elisa Rocha", "elisa.rocha@outlook.com", "(31) 99902-0011", domain.TipoComprador),
		u(12, "Felipe Martins", "felipe.martins@gmail.com", "(31) 99902-0012", domain.TipoComprador),
		u(13, "Gabriela Nunes", "gabriela.nunes@gmail.com", "(41) 99902-0013", domain.TipoComprador),
		u(14, "Henrique Dias", "henrique.dias@yahoo.com.br", "(51) 99902-0014", domain.TipoComprador),
		u(15, "Administrador", "admin@marketplace.com.br", "(11) 90000-0000", domain.TipoAdmin),
	}
}

// Mariana (6) vende e compra: o schema não exige exclusividade de papel.
func SeedCompradores() []domain.Comprador {
	return []domain.Comprador{
		{UsuarioID: 6, CPF: "390.533.447-05"},
		{UsuarioID: 7, CPF: "111.444.777-35"},
		{UsuarioID: 8, CPF: "222.333.444-05"},
		{UsuarioID: 9, CPF: "333.222.111-96"},
		{UsuarioID: 10, CPF: "444.555.666-77"},
		{UsuarioID: 11, CPF: "555.666.777-88"},
		{UsuarioID: 12, CPF: "666.777.888-99"},
		{UsuarioID: 13, CPF: "777.888.999-00"},
		{UsuarioID: 14, CPF: "888.999.000-11"},
	}
}

func SeedVendedores() []domain.Vendedor {
	return []domain.Vendedor{
		{UsuarioID: 1, NomeLoja: "TechStore Brasil", CNPJ: "12.345.678/0001-90"},
		{UsuarioID: 2, NomeLoja: "Moda Bella", CNPJ: "23.456.789/0001-01"},
		{UsuarioID: 3, NomeLoja: "Casa & Conforto", CNPJ: "34.567.890/0001-12"},
		{UsuarioID: 4, NomeLoja: "Esporte Total", CNPJ: "45.678.901/0001-23"},
		{UsuarioID: 5, NomeLoja: "Livraria Saber", CNPJ: "56.789.012/0001-34"},
		{UsuarioID: 6, NomeLoja: "Pet Shop Amigo", CNPJ: "67.890.123/0001-45"},
	}
}

func SeedCategorias() []domain.Categoria {
	return []domain.Categoria{
		{ID: 1, Nome: "Eletrônicos", Descricao: "Smartphones, TVs e áudio"},
		{ID: 2, Nome: "Informática", Descricao: "Notebooks, periféricos e acessórios"},
		{ID: 3, Nome: "Moda", Descricao: "Roupas e calçados"},
		{ID: 4, Nome: "Casa e Decoração", Descricao: "Utilidades domésticas e decoração"},
		{ID: 5, Nome: "Esportes", Descricao: "Equipamentos e acessórios esportivos"},
		{ID: 6, Nome: "Livros", Descricao: "Literatura, técnicos e didáticos"},
		{ID: 7, Nome: "Pet Shop", Descricao: "Produtos para animais de estimação"},
		{ID: 8, Nome: "Beleza", Descricao: "Cosméticos e cuidados pessoais"},
		{ID: 9, Nome: "Brinquedos", Descricao: "Jogos e brinquedos infantis"},
		{ID: 10, Nome: "Alimentos", Descricao: "Mercearia e bebidas"},
	}
}

func SeedProdutos() []domain.Produto {
	p := func(id uint, nome, desc string, preco float64, estoque int, vendedor uint, cats ...uint) domain.Produto {
		prod := domain.Produto{ID: id, Nome: nome, Descricao: desc, Preco: preco, Estoque: estoque, VendedorID: vendedor}
		for _, c := range cats {
			prod.Categorias = append(prod.Categorias, domain.Categoria{ID: c})
		}
		return prod
	}
	return []domain.Produto{
		p(1, "Smartphone Galaxy X200", "Tela 6,5\" AMOLED, 256GB", 2499.90, 25, 1, 1),
		p(2, "Notebook Ultra 15", "Core i7, 16GB RAM, SSD 512GB", 4299.00, 8, 1, 1, 2),
		p(3, "Fone Bluetooth ProSound", "Cancelamento ativo de ruído", 349.90, 60, 1, 1),
		p(4, "Smart TV 50\" 4K", "HDR10, 3 HDMI", 2899.00, 12, 1, 1),
		p(5, "Camiseta Básica Algodão", "100% algodão, várias cores", 49.90, 120, 2, 3),
		p(6, "Vestido Floral Verão", "Tecido leve, estampa floral", 159.90, 35, 2, 3),
		p(7, "Tênis Casual Urbano", "Solado em borracha, cadarço elástico", 229.90, 18, 2, 3, 5),
		p(8, "Jogo de Panelas Antiaderente", "5 peças, cabo baquelite", 389.90, 22, 3, 4),
		p(9, "Luminária de Mesa LED", "3 níveis de intensidade, bivolt", 119.90, 9, 3, 4),
		p(10, "Jogo de Cama Queen", "4 peças, 200 fios", 199.90, 40, 3, 4),
		p(11, "Bicicleta Aro 29", "21 marchas, freio a disco", 1899.00, 6, 4, 5),
		p(12, "Halteres 10kg (par)", "Revestimento emborrachado", 149.90, 50, 4, 5),
		p(13, "Bola de Futebol Oficial", "Costura termofixada", 99.90, 75, 4, 5),
		p(14, "Box Crônicas de Gelo e Fogo", "5 volumes, capa comum", 249.90, 15, 5, 6),
		p(15, "Teclado Mecânico RGB", "Switch blue, ABNT2", 459.90, 30, 1, 2),
		p(16, "Jaqueta Jeans", "Lavagem média, unissex", 189.90, 25, 2, 3),
		p(17, "Tapete Sala 2x1,5m", "Pelo baixo, antiderrapante", 279.90, 14, 3, 4),
		p(18, "Corda de Pular Profissional", "Rolamento de aço, cabo ajustável", 39.90, 90, 4, 5),
		p(19, "Dicionário Houaiss", "Edição completa, capa dura", 129.90, 10, 5, 6),
		p(20, "Ração Premium Cães 15kg", "Adultos de porte médio", 219.90, 28, 6, 7, 10),
	}
}

func SeedEnderecos() []domain.Endereco {
	return []domain.Endereco{
		{ID: 1, Rua: "Rua das Acácias", Numero: "120", CEP: "01310-100", Cidade: "São Paulo", Estado: "SP", CompradorID: 7},
		{ID: 2, Rua: "Av. Paulista", Numero: "1500", CEP: "01310-200", Cidade: "São Paulo", Estado: "SP", Complemento: "Apto 72", CompradorID: 8},
		{ID: 3, Rua: "Rua do Catete", Numero: "45", CEP: "22220-000", Cidade: "Rio de Janeiro", Estado: "RJ", CompradorID: 9},
		{ID: 4, Rua: "Av. Atlântica", Numero: "3000", CEP: "22070-001", Cidade: "Rio de Janeiro", Estado: "RJ", Complemento: "Bloco B", CompradorID: 10},
		{ID: 5, Rua: "Rua da Bahia", Numero: "890", CEP: "30160-011", Cidade: "Belo Horizonte", Estado: "MG", CompradorID: 11},
		{ID: 6, Rua: "Av. Afonso Pena", Numero: "2200", CEP: "30130-007", Cidade: "Belo Horizonte", Estado: "MG", CompradorID: 12},
		{ID: 7, Rua: "Rua XV de Novembro", Numero: "310", CEP: "80020-310", Cidade: "Curitiba", Estado: "PR", CompradorID: 13},
		{ID: 8, Rua: "Av. Ipiranga", Numero: "6681", CEP: "90619-900", Cidade: "Porto Alegre", Estado: "RS", CompradorID: 14},
		{ID: 9, Rua: "Rua dos Andradas", Numero: "1001", CEP: "90020-007", Cidade: "Porto Alegre", Estado: "RS", CompradorID: 6},
		{ID: 10, Rua: "Rua Augusta", Numero: "2840", CEP: "01412-100", Cidade: "São Paulo", Estado: "SP", Complemento: "Casa 2", CompradorID: 7},
		{ID: 11, Rua: "Rua Voluntários da Pátria", Numero: "77", CEP: "22270-000", Cidade: "Rio de Janeiro", Estado: "RJ", CompradorID: 9},
	}
}

func SeedCartoes() []domain.Cartao {
	return []domain.Cartao{
		{ID: 1, NomeTitular: "Ana P Souza", NumeroMascarado: "**** **** **** 4242", Bandeira: "Visa", Validade: "08/2028", CompradorID: 7},
		{ID: 2, NomeTitular: "Bruno Oliveira", NumeroMascarado: "**** **** **** 5521", Bandeira: "Mastercard", Validade: "01/2027", CompradorID: 8},
		{ID: 3, NomeTitular: "Camila R Santos", NumeroMascarado: "**** **** **** 4815", Bandeira: "Visa", Validade: "11/2029", CompradorID: 9},
		{ID: 4, NomeTitular: "Diego Pereira", NumeroMascarado: "**** **** **** 6362", Bandeira: "Elo", Validade: "05/2027", CompradorID: 10},
		{ID: 5, NomeTitular: "Elisa M Rocha", NumeroMascarado: "**** **** **** 5190", Bandeira: "Mastercard", Validade: "03/2028", CompradorID: 11},
		{ID: 6, NomeTitular: "Felipe Martins", NumeroMascarado: "**** **** **** 4003", Bandeira: "Visa", Validade: "09/2026", CompradorID: 12},
		{ID: 7, NomeTitular: "Mariana Costa", NumeroMascarado: "**** **** **** 3742", Bandeira: "Amex", Validade: "12/2028", CompradorID: 6},
	}
}

func SeedPagamentos() []domain.Pagamento {
	ptr := func(s string) *string { return &s }
	uptr := func(u uint) *uint { return &u }
	tptr := func(t time.Time) *time.Time { return &t }
	return []domain.Pagamento{
		{ID: 1, Metodo: domain.MetodoCartao, Data: dia(time.January, 15), Valor: 3199.70, Status: domain.PagamentoAprovado, CartaoID: uptr(1)},
		{ID: 2, Metodo: domain.MetodoPix, Data: dia(time.February, 3), Valor: 309.60, Status: domain.PagamentoAprovado, ChavePix: ptr("ana.souza@gmail.com")},
		{ID: 3, Metodo: domain.MetodoBoleto, Data: dia(time.February, 20), Valor: 789.70, Status: domain.PagamentoAprovado, LinhaDigitavel: ptr("34191.79001 01043.510047 91020.150008 6 96610000078970"), VencimentoBoleto: tptr(dia(time.February, 23))},
		{ID: 4, Metodo: domain.MetodoCartao, Data: dia(time.March, 11), Valor: 1899.00, Status: domain.PagamentoAprovado, CartaoID: uptr(4)},
		{ID: 5, Metodo: domain.MetodoPix, Data: dia(time.April, 7), Valor: 349.80, Status: domain.PagamentoAprovado, ChavePix: ptr("(31) 99902-0011")},
		{ID: 6, Metodo: domain.MetodoCartao, Data: dia(time.May, 19), Valor: 4299.00, Status: domain.PagamentoAprovado, CartaoID: uptr(1)},
		{ID: 7, Metodo: domain.MetodoPix, Data: dia(time.June, 2), Valor: 599.50, Status: domain.PagamentoAprovado, ChavePix: ptr("666.777.888-99")},
		{ID: 8, Metodo: domain.MetodoBoleto, Data: dia(time.July, 14), Valor: 2899.00, Status: domain.PagamentoProcessando, LinhaDigitavel: ptr("34191.79001 01043.510047 91020.150008 1 96610000289900"), VencimentoBoleto: tptr(dia(time.July, 17))},
		{ID: 9, Metodo: domain.MetodoBoleto, Data: dia(time.August, 5), Valor: 329.70, Status: domain.PagamentoPendente, LinhaDigitavel: ptr("34191.79001 01043.510047 91020.150008 3 96610000032970"), VencimentoBoleto: tptr(dia(time.August, 8))},
		{ID: 10, Metodo: domain.MetodoCartao, Data: dia(time.March, 28), Valor: 239.80, Status: domain.PagamentoEstornado, CartaoID: uptr(7)},
	}
}

func SeedPedidos() []domain.Pedido {
	p := func(id uint, data time.Time, status domain.StatusPedido, comprador, endereco, pagamento uint) domain.Pedido {
		return domain.Pedido{ID: id, Data: data, Status: status, CompradorID: comprador, EnderecoID: endereco, PagamentoID: pagamento}
	}
	return []domain.Pedido{
		p(1, dia(time.January, 15), domain.PedidoEntregue, 7, 1, 1),
		p(2, dia(time.February, 3), domain.PedidoEntregue, 8, 2, 2),
		p(3, dia(time.February, 20), domain.PedidoEntregue, 9, 3, 3),
		p(4, dia(time.March, 11), domain.PedidoEntregue, 10, 4, 4),
		p(5, dia(time.April, 7), domain.PedidoEntregue, 11, 5, 5),
		p(6, dia(time.May, 19), domain.PedidoEnviado, 7, 10, 6),
		p(7, dia(time.June, 2), domain.PedidoEnviado, 12, 6, 7),
		p(8, dia(time.July, 14), domain.PedidoProcessando, 13, 7, 8),
		p(9, dia(time.August, 5), domain.PedidoPendente, 14, 8, 9),
		p(10, dia(time.March, 28), domain.PedidoCancelado, 6, 9, 10),
	}
}

// Produtos 15 a 20 ficam deliberadamente sem venda para alimentar o
// relatório de produtos encalhados.
func SeedItens() []domain.ItemDoPedido {
	i := func(pedido, produto uint, qtd int, preco float64) domain.ItemDoPedido {
		return domain.ItemDoPedido{PedidoID: pedido, ProdutoID: produto, Quantidade: qtd, PrecoNaCompra: preco}
	}
	return []domain.ItemDoPedido{
		i(1, 1, 1, 2499.90),
		i(1, 3, 2, 349.90),
		i(2, 5, 3, 49.90),
		i(2, 6, 1, 159.90),
		i(3, 8, 1, 389.90),
		i(3, 10, 2, 199.90),
		i(4, 11, 1, 1899.00),
		i(5, 14, 1, 249.90),
		i(5, 13, 1, 99.90),
		i(6, 2, 1, 4299.00),
		i(7, 12, 2, 149.90),
		i(7, 13, 3, 99.90),
		i(8, 4, 1, 2899.00),
		i(9, 7, 1, 229.90),
		i(9, 5, 2, 49.90),
		i(10, 9, 2, 119.90),
	}
}

func SeedAvaliacoes() []domain.Avaliacao {
	a := func(id, pedido uint, nota int, comentario string, data time.Time) domain.Avaliacao {
		return domain.Avaliacao{ID: id, PedidoID: pedido, Nota: nota, Comentario: comentario, Data: data}
	}
	return []domain.Avaliacao{
		a(1, 1, 5, "Celular excelente, chegou antes do prazo.", dia(time.January, 22)),
		a(2, 1, 4, "Fone muito bom, só a case que veio arranhada.", dia(time.January, 25)),
		a(3, 2, 5, "Tecido de ótima qualidade.", dia(time.February, 10)),
		a(4, 3, 3, "Panelas boas, mas a entrega atrasou dois dias.", dia(time.March, 1)),
		a(5, 3, 4, "Jogo de cama macio, recomendo.", dia(time.March, 2)),
		a(6, 4, 5, "Bicicleta veio bem embalada e montagem foi fácil.", dia(time.March, 20)),
		a(7, 5, 4, "Box em perfeito estado.", dia(time.April, 15)),
		a(8, 5, 5, "Bola oficial de verdade, ótimo preço.", dia(time.April, 16)),
	}
}
