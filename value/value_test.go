package value

import "testing"

func TestTruthy(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{Nil(), false},
		{Bool(false), false},
		{Bool(true), true},
		{Number(0), true},
		{Number(-1), true},
	}
	for _, c := range cases {
		if got := c.v.Truthy(); got != c.want {
			t.Errorf("%v.Truthy() = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestEqualNumbers(t *testing.T) {
	if !Number(1).Equal(Number(1)) {
		t.Error("equal numbers compared unequal")
	}
	if Number(1).Equal(Number(2)) {
		t.Error("unequal numbers compared equal")
	}
	if Number(1).Equal(Bool(true)) {
		t.Error("values of different types compared equal")
	}
}

func TestInternedStringEquality(t *testing.T) {
	in := NewInterner()
	a := in.String("hello")
	b := in.String("hello")
	if !a.Equal(b) {
		t.Error("two interned copies of the same content should be equal")
	}
	if a.AsObject() != b.AsObject() {
		t.Error("two interned copies of the same content should share one heap object")
	}

	c := in.String("world")
	if a.Equal(c) {
		t.Error("interned strings with different content compared equal")
	}
}

func TestNumberFormatting(t *testing.T) {
	cases := map[float64]string{
		7:    "7",
		-3:   "-3",
		1.5:  "1.5",
		0:    "0",
	}
	for n, want := range cases {
		if got := Number(n).String(); got != want {
			t.Errorf("Number(%v).String() = %q, want %q", n, got, want)
		}
	}
}
