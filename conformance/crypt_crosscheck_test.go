package conformance

import (
	"testing"

	amcrypt "github.com/amoghe/go-crypt"
	smcrypt "github.com/sergeymakinen/go-crypt"
)

// TestCryptCrossCheck runs the same password/salt pairs through both
// DES-crypt libraries the go.mod carries and checks they agree, the
// "two independent implementations agreeing is a stronger conformance
// signal than one" role the domain-stack writeup gives the second
// library. The natives package only calls sergeymakinen/go-crypt at
// runtime; amoghe/go-crypt exists solely as this cross-check's oracle.
func TestCryptCrossCheck(t *testing.T) {
	cases := []struct {
		password, salt string
	}{
		{"password", "ab"},
		{"letmein", "xy"},
		{"s3cr3t!", "zz"},
	}

	for _, tc := range cases {
		got, err := smcrypt.Crypt(tc.password, tc.salt)
		if err != nil {
			t.Fatalf("sergeymakinen/go-crypt.Crypt(%q, %q): %v", tc.password, tc.salt, err)
		}
		want := amcrypt.Crypt(tc.password, tc.salt)
		if got != want {
			t.Errorf("crypt(%q, %q): sergeymakinen=%q amoghe=%q disagree", tc.password, tc.salt, got, want)
		}
	}
}
