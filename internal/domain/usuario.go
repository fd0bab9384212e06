package domain

import (
	"time"

	"gorm.io/gorm"
)

const (
	TipoComprador = "comprador"
	TipoVendedor  = "vendedor"
	TipoAdmin     = "admin"
)

// Usuario é a conta base. O Tipo indica o papel declarado no cadastro,
// mas a associação real vem das linhas Comprador/Vendedor; um usuário
// pode legitimamente ter as duas.
type Usuario struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Nome      string `gorm:"size:100;not null" json:"nome"`
	Email     string `gorm:"uniqueIndex;size:191;not null" json:"email"`
	SenhaHash string `gorm:"size:100;not null" json:"-"`
	Telefone  string `gorm:"size:20" json:"telefone"`
	Tipo      string `gorm:"size:16;not null" json:"tipo"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Usuario) TableName() string { return "usuarios" }

func TipoValido(t string) bool {
	return t == TipoComprador || t == TipoVendedor || t == TipoAdmin
}

// Comprador estende Usuario com o perfil de compra.
type Comprador struct {
	UsuarioID uint    `gorm:"primaryKey" json:"usuarioId"`
	Usuario   Usuario `gorm:"foreignKey:UsuarioID" json:"-"`
	CPF       string  `gorm:"uniqueIndex;size:14;not null" json:"cpf"`
}

func (Comprador) TableName() string { return "compradores" }

// Vendedor estende Usuario com o perfil de venda.
type Vendedor struct {
	UsuarioID uint    `gorm:"primaryKey" json:"usuarioId"`
	Usuario   Usuario `gorm:"foreignKey:UsuarioID" json:"-"`
	NomeLoja  string  `gorm:"size:100;not null" json:"nomeLoja"`
	CNPJ      string  `gorm:"uniqueIndex;size:18;not null" json:"cnpj"`
}

func (Vendedor) TableName() string { return "vendedores" }
