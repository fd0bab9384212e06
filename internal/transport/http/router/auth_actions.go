package router

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"marketplace-api/internal/domain"
	"marketplace-api/internal/repo"
	"marketplace-api/internal/service"
	httpez "marketplace-api/internal/transport/http/ez"
	"marketplace-api/pkg/utils"
)

func mountAuthActions(api, authed *gin.RouterGroup, d Deps) {
	ezPublic := httpez.New(api)

	// /auth/login: email desconhecido registra na hora e já devolve o token.
	type loginIn struct {
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Nome     string `json:"nome"     binding:"omitempty,max=100"`
		Tipo     string `json:"tipo"     binding:"omitempty,oneof=comprador vendedor"`
	}
	type loginOut struct {
		Token string      `json:"token"`
		IsNew bool        `json:"isNew"`
		User  interface{} `json:"user"`
	}
	httpez.RegisterAction[loginIn, loginOut](ezPublic, d.DB, httpez.Action[loginIn, loginOut]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, tx *gorm.DB, in *loginIn) (loginOut, error) {
			email := strings.TrimSpace(strings.ToLower(in.Email))

			var u domain.Usuario
			err := tx.Where("email = ?", email).First(&u).Error

			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				nome := strings.TrimSpace(in.Nome)
				if nome == "" {
					if at := strings.IndexByte(email, '@'); at > 0 {
						nome = email[:at]
					} else {
						nome = "usuario"
					}
				}
				tipo := in.Tipo
				if tipo == "" {
					tipo = domain.TipoComprador
				}
				novo, e := d.Cadastro.CriarUsuario(c, service.NovoUsuario{
					Nome: nome, Email: email, Senha: in.Password, Tipo: tipo,
				})
				if e != nil {
					return loginOut{}, mapErr(e)
				}
				u = *novo
				tok, e := d.JWT.Issue(strconv.FormatUint(uint64(u.ID), 10), u.Tipo)
				if e != nil || tok == "" {
					return loginOut{}, httpez.Internal("issue token failed", e)
				}
				return loginOut{
					Token: tok, IsNew: true,
					User: gin.H{"id": u.ID, "email": u.Email, "nome": u.Nome, "tipo": u.Tipo},
				}, nil

			case err != nil:
				return loginOut{}, httpez.Internal("db error", err)

			default:
				if !utils.CheckPassword(in.Password, u.SenhaHash) {
					return loginOut{}, httpez.Unauthorized("invalid credentials")
				}
				tok, e := d.JWT.Issue(strconv.FormatUint(uint64(u.ID), 10), u.Tipo)
				if e != nil || tok == "" {
					return loginOut{}, httpez.Internal("issue token failed", e)
				}
				return loginOut{
					Token: tok, IsNew: false,
					User: gin.H{"id": u.ID, "email": u.Email, "nome": u.Nome, "tipo": u.Tipo},
				}, nil
			}
		},
	})

	ezAuth := httpez.New(authed)

	type meOut struct {
		ID       uint   `json:"id"`
		Email    string `json:"email"`
		Nome     string `json:"nome"`
		Telefone string `json:"telefone"`
		Tipo     string `json:"tipo"`
		// perfis anexados, quando existem
		Comprador *domain.Comprador `json:"comprador,omitempty"`
		Vendedor  *domain.Vendedor  `json:"vendedor,omitempty"`
	}
	httpez.RegisterAction[struct{}, meOut](ezAuth, d.DB, httpez.Action[struct{}, meOut]{
		Method: http.MethodGet,
		Path:   "/me",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (meOut, error) {
			uid := c.GetString("userId")
			var u domain.Usuario
			if err := tx.Where("id = ?", uid).First(&u).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return meOut{}, httpez.NotFound("usuário não encontrado")
				}
				return meOut{}, httpez.Internal("db error", err)
			}
			comp, err := repo.NewCompradorRepo(tx).FindByUsuarioID(c, u.ID)
			if err != nil {
				return meOut{}, httpez.Internal("db error", err)
			}
			vend, err := repo.NewVendedorRepo(tx).FindByUsuarioID(c, u.ID)
			if err != nil {
				return meOut{}, httpez.Internal("db error", err)
			}
			return meOut{
				ID: u.ID, Email: u.Email, Nome: u.Nome, Telefone: u.Telefone, Tipo: u.Tipo,
				Comprador: comp, Vendedor: vend,
			}, nil
		},
	})

	// especializações: o mesmo usuário pode criar os dois perfis
	type perfilCompradorIn struct {
		CPF string `json:"cpf" binding:"required"`
	}
	httpez.RegisterAction[perfilCompradorIn, *domain.Comprador](ezAuth, d.DB, httpez.Action[perfilCompradorIn, *domain.Comprador]{
		Method: http.MethodPost,
		Path:   "/perfil/comprador",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, in *perfilCompradorIn) (*domain.Comprador, error) {
			uid := mustUID(c)
			out, err := d.Cadastro.CriarPerfilComprador(c, uid, in.CPF)
			if err != nil {
				return nil, mapErr(err)
			}
			return out, nil
		},
	})

	type perfilVendedorIn struct {
		NomeLoja string `json:"nomeLoja" binding:"required,max=100"`
		CNPJ     string `json:"cnpj" binding:"required"`
	}
	httpez.RegisterAction[perfilVendedorIn, *domain.Vendedor](ezAuth, d.DB, httpez.Action[perfilVendedorIn, *domain.Vendedor]{
		Method: http.MethodPost,
		Path:   "/perfil/vendedor",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, in *perfilVendedorIn) (*domain.Vendedor, error) {
			uid := mustUID(c)
			out, err := d.Cadastro.CriarPerfilVendedor(c, uid, in.NomeLoja, in.CNPJ)
			if err != nil {
				return nil, mapErr(err)
			}
			return out, nil
		},
	})
}

// mustUID lê o userId já validado pelo middleware.
func mustUID(c *gin.Context) uint {
	n, _ := strconv.ParseUint(c.GetString("userId"), 10, 64)
	return uint(n)
}
