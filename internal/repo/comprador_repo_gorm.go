package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"marketplace-api/internal/domain"
)

type CompradorRepo struct{ db *gorm.DB }

func NewCompradorRepo(db *gorm.DB) *CompradorRepo { return &CompradorRepo{db: db} }

// CompradorInfo é o retorno da busca por email (dados de conta + CPF).
type CompradorInfo struct {
	UsuarioID uint   `json:"usuarioId"`
	Nome      string `json:"nome"`
	Email     string `json:"email"`
	Telefone  string `json:"telefone"`
	CPF       string `json:"cpf"`
}

func (r *CompradorRepo) FindByEmail(ctx context.Context, email string) (*CompradorInfo, error) {
	var out CompradorInfo
	err := r.db.WithContext(ctx).Table("usuarios u").
		Select("u.id AS usuario_id, u.nome, u.email, u.telefone, c.cpf").
		Joins("JOIN compradores c ON u.id = c.usuario_id").
		Where("u.email = ? AND u.deleted_at IS NULL", email).
		Take(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *CompradorRepo) FindByUsuarioID(ctx context.Context, usuarioID uint) (*domain.Comprador, error) {
	var c domain.Comprador
	err := r.db.WithContext(ctx).First(&c, "usuario_id = ?", usuarioID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &c, err
}

func (r *CompradorRepo) Create(ctx context.Context, c *domain.Comprador) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// Enderecos lista os endereços do comprador, do mais antigo para o mais novo.
func (r *CompradorRepo) Enderecos(ctx context.Context, compradorID uint) ([]domain.Endereco, error) {
	var out []domain.Endereco
	err := r.db.WithContext(ctx).
		Where("comprador_id = ?", compradorID).
		Order("id").
		Find(&out).Error
	return out, err
}

type VendedorRepo struct{ db *gorm.DB }

func NewVendedorRepo(db *gorm.DB) *VendedorRepo { return &VendedorRepo{db: db} }

func (r *VendedorRepo) Create(ctx context.Context, v *domain.Vendedor) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *VendedorRepo) FindByUsuarioID(ctx context.Context, usuarioID uint) (*domain.Vendedor, error) {
	var v domain.Vendedor
	err := r.db.WithContext(ctx).First(&v, "usuario_id = ?", usuarioID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &v, err
}
