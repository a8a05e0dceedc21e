package tetris

import "math/rand/v2"

// ShapeKind identifies one of the seven tetromino patterns.
type ShapeKind int

const (
	ShapeI ShapeKind = iota
	ShapeO
	ShapeT
	ShapeJ
	ShapeL
	ShapeS
	ShapeZ
)

// ShapeCount is the number of patterns in the catalog.
const ShapeCount = 7

func (k ShapeKind) String() string {
	switch k {
	case ShapeI:
		return "I"
	case ShapeO:
		return "O"
	case ShapeT:
		return "T"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	case ShapeS:
		return "S"
	case ShapeZ:
		return "Z"
	}
	return "?"
}

var shapes = [ShapeCount][][]bool{
	ShapeI: {
		{true, true, true, true},
	},
	ShapeO: {
		{true, true},
		{true, true},
	},
	ShapeT: {
		{false, true, false},
		{true, true, true},
	},
	ShapeJ: {
		{true, false, false},
		{true, true, true},
	},
	ShapeL: {
		{false, false, true},
		{true, true, true},
	},
	ShapeS: {
		{true, true, false},
		{false, true, true},
	},
	ShapeZ: {
		{false, true, true},
		{true, true, false},
	},
}

// Shape returns a copy of the occupancy pattern for kind.
func Shape(kind ShapeKind) [][]bool {
	return copyShape(shapes[kind])
}

// RandomSource picks a uniform integer in [0, n). *rand.Rand satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// Catalog produces new pieces with a uniformly random pattern and an
// independently chosen uniformly random color.
type Catalog struct {
	rng RandomSource
}

// NewCatalog creates a catalog drawing from rng. A nil rng is replaced by
// a randomly seeded PCG source.
func NewCatalog(rng RandomSource) *Catalog {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Catalog{rng: rng}
}

// NewSeededCatalog creates a catalog whose sequence is fixed by seed.
func NewSeededCatalog(seed uint64) *Catalog {
	return NewCatalog(rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)))
}

// Spawn returns a new piece horizontally centered at the top of board.
// The placement is not validated.
func (c *Catalog) Spawn(board *Board) *Piece {
	kind := ShapeKind(c.rng.IntN(ShapeCount))
	col := palette[c.rng.IntN(len(palette))]

	return NewPiece(board.Width/2-2, 0, kind, shapes[kind], col)
}
