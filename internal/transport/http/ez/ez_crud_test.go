package ez

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestToSnake(t *testing.T) {
	casos := map[string]string{
		"ID":          "id",
		"CompradorID": "comprador_id",
		"NomeTitular": "nome_titular",
		"CEP":         "cep",
		"Nome":        "nome",
		"":            "",
	}
	for in, want := range casos {
		if got := toSnake(in); got != want {
			t.Errorf("toSnake(%q): esperado %q, veio %q", in, want, got)
		}
	}
}

func TestUintFieldPtr(t *testing.T) {
	type modelo struct {
		ID          uint
		CompradorID uint
		Nome        string
	}
	m := &modelo{}
	p, ok := uintFieldPtr(m, "CompradorID")
	if !ok {
		t.Fatal("campo uint não encontrado")
	}
	*p = 42
	if m.CompradorID != 42 {
		t.Errorf("escrita via ponteiro não refletiu: %+v", m)
	}
	if _, ok := uintFieldPtr(m, "Nome"); ok {
		t.Error("campo string não deveria servir")
	}
	if _, ok := uintFieldPtr(modelo{}, "ID"); ok {
		t.Error("valor (não ponteiro) não deveria servir")
	}
}

func TestAtoiDefault(t *testing.T) {
	if atoiDefault("25", 10) != 25 {
		t.Error("número válido ignorado")
	}
	if atoiDefault("", 10) != 10 {
		t.Error("vazio não caiu no default")
	}
	if atoiDefault("-3", 10) != 10 {
		t.Error("negativo não caiu no default")
	}
	if atoiDefault("abc", 10) != 10 {
		t.Error("lixo não caiu no default")
	}
}

func TestOwnerFromCtx(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if _, ok := ownerFromCtx(c); ok {
		t.Error("contexto sem userId deveria falhar")
	}
	c.Set("userId", "7")
	if owner, ok := ownerFromCtx(c); !ok || owner != 7 {
		t.Errorf("veio %d, %v", owner, ok)
	}
	c.Set("userId", "não-numérico")
	if _, ok := ownerFromCtx(c); ok {
		t.Error("userId não numérico deveria falhar")
	}
}
