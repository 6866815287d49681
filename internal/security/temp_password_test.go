package security

import (
	"strings"
	"testing"
)

func TestTemporaryPasswordRejectsShortLengths(t *testing.T) {
	t.Parallel()

	for _, length := range []int{-1, 0, 7} {
		if _, err := TemporaryPassword(length); err == nil {
			t.Fatalf("expected length %d to be rejected", length)
		}
	}
}

func TestTemporaryPasswordUsesOnlyAlphabetCharacters(t *testing.T) {
	t.Parallel()

	password, err := TemporaryPassword(64)
	if err != nil {
		t.Fatalf("generate password: %v", err)
	}
	if len(password) != 64 {
		t.Fatalf("expected length 64, got %d", len(password))
	}
	for _, char := range password {
		if !strings.ContainsRune(tempPasswordAlphabet, char) {
			t.Fatalf("character %q outside alphabet", char)
		}
	}
	for _, ambiguous := range "0O1lI" {
		if strings.ContainsRune(password, ambiguous) {
			t.Fatalf("ambiguous character %q in password", ambiguous)
		}
	}
}

func TestTemporaryPasswordValuesDiffer(t *testing.T) {
	t.Parallel()

	first, err := TemporaryPassword(32)
	if err != nil {
		t.Fatalf("generate first password: %v", err)
	}
	second, err := TemporaryPassword(32)
	if err != nil {
		t.Fatalf("generate second password: %v", err)
	}
	if first == second {
		t.Fatal("expected distinct passwords across calls")
	}
}
