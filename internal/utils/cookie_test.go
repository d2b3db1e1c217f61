package utils

import "testing"

func TestSignAndVerifyToken(t *testing.T) {
	const secret = "test_secret"
	signed := SignToken("1f1b7e9a-1111-2222-3333-444455556666", secret)

	token, ok := VerifyToken(signed, secret)
	if !ok {
		t.Fatalf("valid cookie rejected")
	}
	if token != "1f1b7e9a-1111-2222-3333-444455556666" {
		t.Fatalf("unexpected token %q", token)
	}
}

func TestVerifyTokenRejectsTampering(t *testing.T) {
	const secret = "test_secret"
	signed := SignToken("token", secret)

	if _, ok := VerifyToken(signed+"x", secret); ok {
		t.Fatalf("tampered signature accepted")
	}
	if _, ok := VerifyToken("other."+signed, secret); ok {
		t.Fatalf("tampered token accepted")
	}
	if _, ok := VerifyToken(signed, "wrong_secret"); ok {
		t.Fatalf("wrong secret accepted")
	}
	if _, ok := VerifyToken("no-signature", secret); ok {
		t.Fatalf("unsigned value accepted")
	}
}
