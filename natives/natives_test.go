package natives

import (
	"testing"

	"loxvm/value"
)

func TestClockReturnsNonNegativeNumber(t *testing.T) {
	v, err := Clock(nil)
	if err != nil {
		t.Fatalf("Clock: unexpected error: %v", err)
	}
	if !v.IsNumber() || v.AsNumber() < 0 {
		t.Errorf("Clock() = %v, want a non-negative number", v)
	}
}

func TestHashIsStableAndKnownLength(t *testing.T) {
	interner := value.NewInterner()
	hashFn := hash(interner)

	v, err := hashFn([]value.Value{interner.String("hello")})
	if err != nil {
		t.Fatalf("hash: unexpected error: %v", err)
	}
	if !v.IsString() {
		t.Fatalf("hash() did not return a string")
	}
	// RIPEMD-160 digests are 20 bytes, 40 hex characters.
	if len(v.AsString()) != 40 {
		t.Errorf("hash digest length = %d, want 40", len(v.AsString()))
	}

	v2, err := hashFn([]value.Value{interner.String("hello")})
	if err != nil {
		t.Fatalf("hash: unexpected error: %v", err)
	}
	if v.AsString() != v2.AsString() {
		t.Error("hash() is not deterministic for the same input")
	}
}

func TestHashRejectsNonStringArgument(t *testing.T) {
	interner := value.NewInterner()
	hashFn := hash(interner)

	if _, err := hashFn([]value.Value{value.Number(1)}); err == nil {
		t.Error("expected an error for a non-string argument")
	}
}

func TestCryptProducesMatchingSaltPrefix(t *testing.T) {
	interner := value.NewInterner()
	cryptFn := crypt(interner)

	v, err := cryptFn([]value.Value{interner.String("password"), interner.String("ab")})
	if err != nil {
		t.Fatalf("crypt: unexpected error: %v", err)
	}
	if !v.IsString() {
		t.Fatalf("crypt() did not return a string")
	}
	if len(v.AsString()) < 2 || v.AsString()[:2] != "ab" {
		t.Errorf("crypt() result %q does not start with the salt %q", v.AsString(), "ab")
	}
}
