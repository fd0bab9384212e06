package response

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDataNuncaSerializaNull(t *testing.T) {
	b, err := json.Marshal(New(CodeOK, "OK", nil))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(b), `"data":null`) {
		t.Errorf("data veio null: %s", b)
	}
}

func TestErrorUsaMsgDoMapaQuandoVazia(t *testing.T) {
	r := Error(CodeNotFound, "")
	if r.Msg != "Not Found" {
		t.Errorf("msg padrão: veio %q", r.Msg)
	}
	r = Error(CodeConflict, "cpf já cadastrado")
	if r.Msg != "cpf já cadastrado" {
		t.Errorf("msg custom: veio %q", r.Msg)
	}
	if r.Code != CodeConflict {
		t.Errorf("code: veio %d", r.Code)
	}
}

func TestOK(t *testing.T) {
	r := OK(map[string]int{"x": 1})
	if r.Code != CodeOK || r.Msg != "OK" {
		t.Errorf("envelope: %+v", r)
	}
}
