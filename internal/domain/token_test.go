package domain

import (
	"bytes"
	"crypto/sha256"
	"testing"
	"time"
)

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken(7, 24*time.Hour, AuthenticationScope)
	if err != nil {
		t.Fatal(err)
	}

	if len(token.Plaintext) != 43 {
		t.Errorf("plaintext length = %d, want 43", len(token.Plaintext))
	}

	hash := sha256.Sum256([]byte(token.Plaintext))
	if !bytes.Equal(token.Hash, hash[:]) {
		t.Error("stored hash does not match the plaintext's sha256")
	}

	if token.UserId != 7 {
		t.Errorf("user id = %d, want 7", token.UserId)
	}

	if token.Scope != AuthenticationScope {
		t.Errorf("scope = %q, want %q", token.Scope, AuthenticationScope)
	}

	if until := time.Until(token.Expiry); until < 23*time.Hour || until > 24*time.Hour {
		t.Errorf("expiry %v is not roughly 24h away", token.Expiry)
	}

	other, err := GenerateToken(7, 24*time.Hour, AuthenticationScope)
	if err != nil {
		t.Fatal(err)
	}

	if token.Plaintext == other.Plaintext {
		t.Error("two generated tokens share the same plaintext")
	}
}

func TestPasswordSetAndMatches(t *testing.T) {
	var p password

	if err := p.Set("Cosmos123!"); err != nil {
		t.Fatal(err)
	}

	matches, err := p.Matches("Cosmos123!")
	if err != nil {
		t.Fatal(err)
	}
	if !matches {
		t.Error("correct password did not match")
	}

	matches, err = p.Matches("WrongPass1!")
	if err != nil {
		t.Fatal(err)
	}
	if matches {
		t.Error("wrong password matched")
	}
}
