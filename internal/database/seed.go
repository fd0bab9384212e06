package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Seed popula os dados de demonstração. Idempotente: se já existir qualquer
// usuário, não faz nada.
func Seed(db *gorm.DB, log *zap.Logger) error {
	var n int64
	if err := db.Table("usuarios").Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		log.Info("seed ignorado: banco já populado", zap.Int64("usuarios", n))
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		usuarios := SeedUsuarios()
		if err := tx.Create(&usuarios).Error; err != nil {
			return err
		}
		compradores := SeedCompradores()
		if err := tx.Create(&compradores).Error; err != nil {
			return err
		}
		vendedores := SeedVendedores()
		if err := tx.Create(&vendedores).Error; err != nil {
			return err
		}
		categorias := SeedCategorias()
		if err := tx.Create(&categorias).Error; err != nil {
			return err
		}
		produtos := SeedProdutos()
		if err := tx.Create(&produtos).Error; err != nil {
			return err
		}
		enderecos := SeedEnderecos()
		if err := tx.Create(&enderecos).Error; err != nil {
			return err
		}
		cartoes := SeedCartoes()
		if err := tx.Create(&cartoes).Error; err != nil {
			return err
		}
		pagamentos := SeedPagamentos()
		if err := tx.Create(&pagamentos).Error; err != nil {
			return err
		}
		pedidos := SeedPedidos()
		if err := tx.Create(&pedidos).Error; err != nil {
			return err
		}
		itens := SeedItens()
		if err := tx.Create(&itens).Error; err != nil {
			return err
		}
		avaliacoes := SeedAvaliacoes()
		if err := tx.Create(&avaliacoes).Error; err != nil {
			return err
		}

		if err := realinharSequencias(tx); err != nil {
			return err
		}

		log.Info("seed concluído",
			zap.Int("usuarios", len(usuarios)),
			zap.Int("produtos", len(produtos)),
			zap.Int("pedidos", len(pedidos)),
		)
		return nil
	})
}

// realinharSequencias avança as sequences de id após os inserts com chave
// explícita. No postgres um INSERT com id fixo não consome nextval, então
// sem isso o primeiro Create sem id depois do seed colide com uma chave
// já usada.
func realinharSequencias(tx *gorm.DB) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	for _, tabela := range TabelasComSequencia() {
		err := tx.Exec(
			`SELECT setval(pg_get_serial_sequence(?, 'id'), (SELECT MAX(id) FROM `+tabela+`))`,
			tabela,
		).Error
		if err != nil {
			return err
		}
	}
	return nil
}
