package domain

// Endereco é um local de entrega de um comprador.
type Endereco struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Rua         string `gorm:"size:150;not null" json:"rua"`
	Numero      string `gorm:"size:20;not null" json:"numero"`
	CEP         string `gorm:"size:10;not null" json:"cep"`
	Cidade      string `gorm:"size:100;not null" json:"cidade"`
	Estado      string `gorm:"size:2;not null" json:"estado"`
	Complemento string `gorm:"size:100" json:"complemento,omitempty"`

	CompradorID uint      `gorm:"not null;index" json:"compradorId"`
	Comprador   Comprador `gorm:"foreignKey:CompradorID;references:UsuarioID" json:"-"`
}

func (Endereco) TableName() string { return "enderecos" }

// Cartao guarda apenas o número mascarado; o número real nunca é persistido.
type Cartao struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	NomeTitular     string `gorm:"size:100;not null" json:"nomeTitular"`
	NumeroMascarado string `gorm:"size:25;not null" json:"numeroMascarado"`
	Bandeira        string `gorm:"size:30;not null" json:"bandeira"`
	Validade        string `gorm:"size:7;not null" json:"validade"` // MM/AAAA

	CompradorID uint      `gorm:"not null;index" json:"compradorId"`
	Comprador   Comprador `gorm:"foreignKey:CompradorID;references:UsuarioID" json:"-"`
}

func (Cartao) TableName() string { return "cartoes" }
