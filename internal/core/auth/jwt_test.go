package auth

import (
	"testing"
	"time"
)

func novoJWTer() *JWTer {
	return &JWTer{Secret: []byte("segredo-de-teste"), Issuer: "marketplace-api", TTL: time.Hour}
}

func TestIssueEParse(t *testing.T) {
	j := novoJWTer()
	tok, err := j.Issue("42", "comprador")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims, err := j.Parse(tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UID != "42" || claims.Role != "comprador" {
		t.Errorf("claims trocadas: %+v", claims)
	}
}

func TestParseRejeitaSegredoErrado(t *testing.T) {
	j := novoJWTer()
	tok, err := j.Issue("42", "admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	outro := &JWTer{Secret: []byte("outro-segredo"), Issuer: j.Issuer, TTL: j.TTL}
	if _, err := outro.Parse(tok); err == nil {
		t.Fatal("token assinado com outro segredo passou")
	}
}

func TestParseRejeitaIssuerErrado(t *testing.T) {
	emissor := &JWTer{Secret: []byte("segredo-de-teste"), Issuer: "outra-api", TTL: time.Hour}
	tok, err := emissor.Issue("42", "admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := novoJWTer().Parse(tok); err == nil {
		t.Fatal("token de outro emissor passou")
	}
}

func TestParseRejeitaLixo(t *testing.T) {
	if _, err := novoJWTer().Parse("nem.um.jwt"); err == nil {
		t.Fatal("string arbitrária passou")
	}
}
