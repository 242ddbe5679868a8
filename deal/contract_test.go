package deal

import (
	"testing"

	"github.com/ninetrick/bridgeplay/card"
)

func TestContractStringRoundTrip(t *testing.T) {
	tests := []struct {
		s    string
		want Contract
	}{
		{"", None},
		{"3N", Contract{Level: 3, Strain: card.NoTrump}},
		{"4H", Contract{Level: 4, Strain: card.Hearts}},
		{"1C", Contract{Level: 1, Strain: card.Clubs}},
	}
	for _, test := range tests {
		got, ok := ParseContract(test.s)
		if !ok {
			t.Fatalf("ParseContract(%q) failed", test.s)
		}
		if got != test.want {
			t.Errorf("ParseContract(%q) = %+v, want %+v", test.s, got, test.want)
		}
	}
}

func TestContractFormat(t *testing.T) {
	if got := None.String(); got != "-" {
		t.Errorf("None.String() = %q, want %q", got, "-")
	}
	c := Contract{Level: 4, Strain: card.NoTrump}
	if got := c.String(); got != "4NT" {
		t.Errorf("4NT contract String() = %q, want %q", got, "4NT")
	}
	c = Contract{Level: 2, Strain: card.Spades}
	if got := c.String(); got != "2S" {
		t.Errorf("2S contract String() = %q, want %q", got, "2S")
	}
}

func TestParseContractRejectsGarbage(t *testing.T) {
	for _, s := range []string{"8N", "0S", "3X", "NT3"} {
		if _, ok := ParseContract(s); ok {
			t.Errorf("ParseContract(%q) should fail", s)
		}
	}
}
