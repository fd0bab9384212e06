package utils

import "testing"

func TestHashECheckPassword(t *testing.T) {
	h := HashPassword("123456")
	if h == "" || h == "123456" {
		t.Fatalf("hash suspeito: %q", h)
	}
	if !CheckPassword("123456", h) {
		t.Error("senha correta rejeitada")
	}
	if CheckPassword("654321", h) {
		t.Error("senha errada aceita")
	}
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	if len(a) != 32 {
		t.Errorf("tamanho: %d", len(a))
	}
	if a == b {
		t.Error("dois ids iguais seguidos")
	}
}
