// Package card encodes the 52-card deck, suits, and seat rotation used by
// the rest of the engine. Cards are plain value types indexed 0..51 in
// suit-major order so a hand or pool can be carried as a 52-bit mask.
package card

import "fmt"

// Suit is a playing suit, plus the NoTrump sentinel used only for strain.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
	NoTrump
)

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	case NoTrump:
		return "N"
	default:
		return "?"
	}
}

// SuitFromRune parses a suit letter, case-insensitively. ok is false for
// anything else.
func SuitFromRune(r rune) (s Suit, ok bool) {
	switch r {
	case 'C', 'c':
		return Clubs, true
	case 'D', 'd':
		return Diamonds, true
	case 'H', 'h':
		return Hearts, true
	case 'S', 's':
		return Spades, true
	case 'N', 'n':
		return NoTrump, true
	}
	return 0, false
}

// SuitMask returns the 13 consecutive bits belonging to suit.
func SuitMask(s Suit) uint64 {
	if s > Spades {
		return 0
	}
	return uint64(0x1FFF) << (uint(s) * 13)
}

// AllCardsMask is the full 52-card universe.
const AllCardsMask = (uint64(1) << 52) - 1

// Card is a single card, index = suit*13 + rank - 2, rank in 2..14 (14=Ace).
type Card uint8

// NumCards is the size of a standard deck.
const NumCards = 52

// NewCard builds a Card from a suit and a rank in 2..14.
func NewCard(s Suit, rank int) Card {
	return Card(uint8(s)*13 + uint8(rank-2))
}

// Index returns the card's 0..51 deck index, matching its bit position.
func (c Card) Index() int { return int(c) }

// Bit returns the single-bit mask for this card.
func (c Card) Bit() uint64 { return uint64(1) << uint(c) }

// Suit returns the card's suit.
func (c Card) Suit() Suit { return Suit(uint8(c) / 13) }

// Rank returns the card's rank, 2..14 (14=Ace).
func (c Card) Rank() int { return int(uint8(c)%13) + 2 }

// HCP returns the card's high-card-point value: A=4, K=3, Q=2, J=1, else 0.
func (c Card) HCP() int {
	if v := c.Rank() - 10; v > 0 {
		return v
	}
	return 0
}

var rankBytes = [...]byte{'2', '3', '4', '5', '6', '7', '8', '9', 'T', 'J', 'Q', 'K', 'A'}

func rankByte(rank int) byte { return rankBytes[rank-2] }

func rankFromByte(b byte) (int, bool) {
	switch b {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return int(b - '0'), true
	case 'T', 't':
		return 10, true
	case 'J', 'j':
		return 11, true
	case 'Q', 'q':
		return 12, true
	case 'K', 'k':
		return 13, true
	case 'A', 'a':
		return 14, true
	}
	return 0, false
}

// String formats the card as rank+suit, both uppercase, e.g. "AS", "TC".
func (c Card) String() string {
	return fmt.Sprintf("%c%s", rankByte(c.Rank()), c.Suit())
}

// ParseCard parses a two-character card string (rank then suit),
// case-insensitive. ok is false if the string is not a valid card.
func ParseCard(s string) (c Card, ok bool) {
	if len(s) != 2 {
		return 0, false
	}
	rank, rok := rankFromByte(s[0])
	if !rok {
		return 0, false
	}
	suit, sok := SuitFromRune(rune(s[1]))
	if !sok || suit == NoTrump {
		return 0, false
	}
	return NewCard(suit, rank), true
}

// Deck returns the 52 cards of a standard deck in index order.
func Deck() [NumCards]Card {
	var d [NumCards]Card
	for i := range d {
		d[i] = Card(i)
	}
	return d
}
