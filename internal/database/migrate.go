package database

import (
	"gorm.io/gorm"

	"marketplace-api/internal/domain"
)

// AutoMigrate cria/atualiza as tabelas na ordem das dependências de FK.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Usuario{},
		&domain.Comprador{},
		&domain.Vendedor{},
		&domain.Categoria{},
		&domain.Produto{},
		&domain.Endereco{},
		&domain.Cartao{},
		&domain.Pagamento{},
		&domain.Pedido{},
		&domain.ItemDoPedido{},
		&domain.Avaliacao{},
	)
}
