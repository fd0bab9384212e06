package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"marketplace-api/internal/domain"
	"marketplace-api/internal/repo"
	"marketplace-api/pkg/utils"
)

var (
	ErrTipoInvalido       = errors.New("tipo de usuário inválido")
	ErrEmailEmUso         = errors.New("email já cadastrado")
	ErrCPFEmUso           = errors.New("CPF já cadastrado")
	ErrCNPJEmUso          = errors.New("CNPJ já cadastrado")
	ErrPerfilExistente    = errors.New("perfil já existe para este usuário")
	ErrUsuarioInexistente = errors.New("usuário não encontrado")
)

type CadastroService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewCadastroService(db *gorm.DB, log *zap.Logger) *CadastroService {
	return &CadastroService{db: db, log: log}
}

type NovoUsuario struct {
	Nome     string
	Email    string
	Senha    string
	Telefone string
	Tipo     string
}

func (s *CadastroService) CriarUsuario(ctx context.Context, in NovoUsuario) (*domain.Usuario, error) {
	if !domain.TipoValido(in.Tipo) {
		return nil, ErrTipoInvalido
	}
	u := domain.Usuario{
		Nome:      strings.TrimSpace(in.Nome),
		Email:     strings.TrimSpace(strings.ToLower(in.Email)),
		SenhaHash: utils.HashPassword(in.Senha),
		Telefone:  in.Telefone,
		Tipo:      in.Tipo,
	}
	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		if repo.IsDupKey(err) {
			return nil, ErrEmailEmUso
		}
		return nil, err
	}
	s.log.Info("usuário criado", zap.Uint("usuario_id", u.ID), zap.String("tipo", u.Tipo))
	return &u, nil
}

// CriarPerfilComprador anexa a especialização de compra a um usuário.
// Não há exclusividade: o mesmo usuário pode também virar vendedor.
func (s *CadastroService) CriarPerfilComprador(ctx context.Context, usuarioID uint, cpf string) (*domain.Comprador, error) {
	c := domain.Comprador{UsuarioID: usuarioID, CPF: strings.TrimSpace(cpf)}
	if err := repo.NewCompradorRepo(s.db).Create(ctx, &c); err != nil {
		switch {
		case repo.IsDupKey(err) && strings.Contains(strings.ToLower(err.Error()), "cpf"):
			return nil, ErrCPFEmUso
		case repo.IsDupKey(err):
			return nil, ErrPerfilExistente
		case repo.IsFKViolation(err):
			return nil, ErrUsuarioInexistente
		}
		return nil, err
	}
	return &c, nil
}

func (s *CadastroService) CriarPerfilVendedor(ctx context.Context, usuarioID uint, nomeLoja, cnpj string) (*domain.Vendedor, error) {
	v := domain.Vendedor{
		UsuarioID: usuarioID,
		NomeLoja:  strings.TrimSpace(nomeLoja),
		CNPJ:      strings.TrimSpace(cnpj),
	}
	if err := repo.NewVendedorRepo(s.db).Create(ctx, &v); err != nil {
		switch {
		case repo.IsDupKey(err) && strings.Contains(strings.ToLower(err.Error()), "cnpj"):
			return nil, ErrCNPJEmUso
		case repo.IsDupKey(err):
			return nil, ErrPerfilExistente
		case repo.IsFKViolation(err):
			return nil, ErrUsuarioInexistente
		}
		return nil, err
	}
	return &v, nil
}
