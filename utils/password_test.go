package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "password123" {
		t.Fatal("HashPassword() returned the plaintext password")
	}

	if !CheckPasswordHash("password123", hash) {
		t.Error("CheckPasswordHash() = false for the correct password")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Error("CheckPasswordHash() = true for a wrong password")
	}
}
