package auth_test

import (
	"strings"
	"testing"

	"github.com/foodipy/foodipy/internal/auth"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := auth.HashPassword("secret123")
	if err != nil {
		t.Fatal(err)
	}
	if hash == "secret123" {
		t.Fatal("hash must not equal the plain password")
	}

	if !auth.CheckPassword(hash, "secret123") {
		t.Fatal("correct password rejected")
	}
	if auth.CheckPassword(hash, "secret124") {
		t.Fatal("wrong password accepted")
	}
	if auth.CheckPassword(hash, "") {
		t.Fatal("empty password accepted")
	}
}

func TestCheckPasswordRejectsNonHash(t *testing.T) {
	if auth.CheckPassword("plaintext", "plaintext") {
		t.Fatal("a stored plain string is not a valid hash and must never match")
	}
}

type profile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func TestSessionTokenRoundTrip(t *testing.T) {
	in := profile{ID: "u1", Email: "asha@example.com"}

	token, err := auth.SignSession(in)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(token, ".") != 2 {
		t.Fatalf("expected a three-part token, got %q", token)
	}

	out, err := auth.ParseSession[profile](token)
	if err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Fatalf("got %+v want %+v", out, in)
	}
}

func TestParseSessionRejectsTampering(t *testing.T) {
	token, err := auth.SignSession(profile{ID: "u1"})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := auth.ParseSession[profile](token + "x"); err == nil {
		t.Fatal("tampered signature accepted")
	}
	if _, err := auth.ParseSession[profile]("not-a-token"); err == nil {
		t.Fatal("garbage accepted")
	}
	if _, err := auth.ParseSession[profile](""); err == nil {
		t.Fatal("empty token accepted")
	}
}
