package auth

import (
	"strings"
	"testing"
)

func TestPasswordService_HashAndVerify(t *testing.T) {
	svc := NewPasswordService(4) // minimum cost keeps the test fast

	hash, err := svc.Hash("Abcdef12")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hash == "Abcdef12" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("expected a bcrypt hash, got %q", hash)
	}

	if !svc.Verify(hash, "Abcdef12") {
		t.Error("Verify should succeed for the original plaintext")
	}
	if svc.Verify(hash, "Abcdef13") {
		t.Error("Verify should fail for any other plaintext")
	}
	if svc.Verify(hash, "") {
		t.Error("Verify should fail for the empty plaintext")
	}
}

func TestPasswordService_HashesAreSalted(t *testing.T) {
	svc := NewPasswordService(4)

	h1, err := svc.Hash("Abcdef12")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	h2, err := svc.Hash("Abcdef12")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	if h1 == h2 {
		t.Error("two hashes of the same password must differ (salting)")
	}
}

func TestNewPasswordService_CostFallback(t *testing.T) {
	// Out-of-range costs fall back to the bcrypt default instead of
	// failing at hash time.
	svc := NewPasswordService(99)
	if _, err := svc.Hash("Abcdef12"); err != nil {
		t.Fatalf("Hash with fallback cost: %v", err)
	}
}
