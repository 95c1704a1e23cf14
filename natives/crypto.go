package natives

import (
	"encoding/hex"
	"fmt"

	smcrypt "github.com/sergeymakinen/go-crypt"
	"golang.org/x/crypto/ripemd160"

	"loxvm/value"
)

// crypt backs the crypt(password, salt) native: traditional Unix
// DES-crypt password hashing, grounded on the teacher's
// builtins/crypto_unix.go concern (password verification) but through a
// pure-Go library instead of the teacher's cgo wrapper around the
// system crypt(3), since this core has no platform-specific account
// store to justify linking against it.
func crypt(interner *value.Interner) value.NativeFunc {
	return func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return value.Nil(), fmt.Errorf("crypt() takes exactly 2 arguments (%d given)", len(args))
		}
		password, err := argString(args, 0, "crypt")
		if err != nil {
			return value.Nil(), err
		}
		salt, err := argString(args, 1, "crypt")
		if err != nil {
			return value.Nil(), err
		}
		hashed, err := smcrypt.Crypt(password, salt)
		if err != nil {
			return value.Nil(), fmt.Errorf("crypt(): %w", err)
		}
		return interner.String(hashed), nil
	}
}

// hash backs the hash(str) native: a RIPEMD-160 digest rendered as lower
// case hex, exercising the same golang.org/x/crypto/ripemd160 package
// the teacher's builtins/crypto.go uses for its own string_hash family.
func hash(interner *value.Interner) value.NativeFunc {
	return func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return value.Nil(), fmt.Errorf("hash() takes exactly 1 argument (%d given)", len(args))
		}
		s, err := argString(args, 0, "hash")
		if err != nil {
			return value.Nil(), err
		}
		h := ripemd160.New()
		h.Write([]byte(s))
		return interner.String(hex.EncodeToString(h.Sum(nil))), nil
	}
}
