package deal

// Presets is a table of named opening-bid shape/HCP presets, applied to
// a seat's Constraints in one call rather than setting each Range by
// hand — pure sugar over the Constraints Range fields, grounded on
// signalnine-darwindeck/evolution/fitness/styles.go's named-preset
// table idiom (style name -> tuned parameter struct, with a "custom"
// escape hatch when the caller supplies its own values directly).
var Presets = map[string]Constraints{
	"1nt-opener": {
		HCP:      Range{Min: 15, Max: 17},
		Clubs:    Range{Min: 0, Max: 4},
		Diamonds: Range{Min: 0, Max: 4},
		Hearts:   Range{Min: 2, Max: 4},
		Spades:   Range{Min: 2, Max: 4},
		Edited:   true,
	},
	"2nt-opener": {
		HCP:      Range{Min: 20, Max: 21},
		Clubs:    Range{Min: 0, Max: 4},
		Diamonds: Range{Min: 0, Max: 4},
		Hearts:   Range{Min: 2, Max: 4},
		Spades:   Range{Min: 2, Max: 4},
		Edited:   true,
	},
	"weak-two": {
		HCP:      Range{Min: 5, Max: 11},
		Clubs:    Range{Min: 0, Max: 13},
		Diamonds: Range{Min: 0, Max: 13},
		Hearts:   Range{Min: 0, Max: 13},
		Spades:   Range{Min: 6, Max: 6},
		Edited:   true,
	},
	"strong-two-club": {
		HCP:      Range{Min: 22, Max: 37},
		Clubs:    Range{Min: 0, Max: 13},
		Diamonds: Range{Min: 0, Max: 13},
		Hearts:   Range{Min: 0, Max: 13},
		Spades:   Range{Min: 0, Max: 13},
		Edited:   true,
	},
}

// Preset looks up a named constraint preset. ok is false for an unknown
// name; callers fall back to Unconstrained or a hand-built Constraints.
func Preset(name string) (c Constraints, ok bool) {
	c, ok = Presets[name]
	return c, ok
}
