package auth

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/ororso11/m-led/internal/shared/apperr"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")); err != nil {
		t.Fatalf("hash does not verify: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("wrong")); err == nil {
		t.Fatal("hash verified a wrong password")
	}
}

func TestLoginRejectsBlankCredentials(t *testing.T) {
	s := NewService(nil)

	for _, tc := range []struct{ email, password string }{
		{"", "pw"},
		{"admin@example.com", ""},
		{"   ", "pw"},
	} {
		_, err := s.Login(context.Background(), tc.email, tc.password)
		ae, ok := apperr.As(err)
		if !ok || ae.Kind != apperr.Unauthorized {
			t.Fatalf("Login(%q, %q) error = %v, want unauthorized", tc.email, tc.password, err)
		}
	}
}
