package deal

import (
	"fmt"

	"github.com/ninetrick/bridgeplay/card"
)

// Contract is a declared level+strain. Here it supplies only the
// strain — the trump suit (or NoTrump) used to resolve tricks.
type Contract struct {
	Level  int
	Strain card.Suit
}

// None is the sentinel "no contract": level=0, strain=NoTrump.
var None = Contract{Level: 0, Strain: card.NoTrump}

// String formats the contract as a level digit followed by C/D/H/S/NT,
// or "-" for the None sentinel.
func (c Contract) String() string {
	if c == None {
		return "-"
	}
	if c.Strain == card.NoTrump {
		return fmt.Sprintf("%dNT", c.Level)
	}
	return fmt.Sprintf("%d%s", c.Level, c.Strain)
}

// ParseContract parses a level digit (1..7) followed by C|D|H|S|N. An
// empty string parses as the None sentinel. ok is false for anything
// else unparseable.
func ParseContract(s string) (c Contract, ok bool) {
	if s == "" {
		return None, true
	}
	if len(s) != 2 {
		return Contract{}, false
	}
	level := int(s[0] - '0')
	if level < 1 || level > 7 {
		return Contract{}, false
	}
	strain, sok := card.SuitFromRune(rune(s[1]))
	if !sok {
		return Contract{}, false
	}
	return Contract{Level: level, Strain: strain}, true
}
