package slz

// levelParams holds the internal behavior switched by a compression level.
// All fields are unexported; the type is used only inside the package.
type levelParams struct {
	useMatchFinder bool // run the LZ77 hash table; false means stored blocks only
}

// levelTable indexes by Level (0 or 1).
var levelTable = [2]levelParams{
	{useMatchFinder: false}, // Level0: stored only
	{useMatchFinder: true},  // Level1: LZ77 + fixed Huffman
}

func (l Level) params() levelParams {
	return levelTable[l]
}
