package ecm

import "fmt"

// Kind tags the variant held by a Point.
type Kind uint8

const (
	// Infinity is the identity of the curve group.
	Infinity Kind = iota
	// Affine is an ordinary point (x, y) with coordinates reduced mod n.
	Affine
	// FactorFound is not a curve point: it carries a non-trivial divisor of
	// n uncovered while inverting a slope denominator.
	FactorFound
)

func (k Kind) String() string {
	switch k {
	case Infinity:
		return "infinity"
	case Affine:
		return "affine"
	case FactorFound:
		return "factor"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Point is a tagged variant {Infinity | Affine(x, y) | FactorFound(d)}. The
// zero value is the point at infinity. Fields are unexported so a discovered
// factor can only be read back through Factor, never used as a coordinate.
type Point struct {
	kind Kind
	x, y uint64
	d    uint64
}

// Inf returns the point at infinity.
func Inf() Point { return Point{} }

// NewPoint returns the affine point (x, y). Coordinates are expected to be
// reduced mod the curve modulus.
func NewPoint(x, y uint64) Point { return Point{kind: Affine, x: x, y: y} }

func factorFound(d uint64) Point { return Point{kind: FactorFound, d: d} }

func (p Point) Kind() Kind             { return p.kind }
func (p Point) IsInfinity() bool       { return p.kind == Infinity }
func (p Point) IsFactor() bool         { return p.kind == FactorFound }
func (p Point) XY() (x, y uint64)      { return p.x, p.y }
func (p Point) Factor() (uint64, bool) { return p.d, p.kind == FactorFound }

// Equal reports whether p and q hold the same variant and payload.
func (p Point) Equal(q Point) bool {
	if p.kind != q.kind {
		return false
	}
	switch p.kind {
	case Affine:
		return p.x == q.x && p.y == q.y
	case FactorFound:
		return p.d == q.d
	}
	return true
}

func (p Point) String() string {
	switch p.kind {
	case Infinity:
		return "O"
	case Affine:
		return fmt.Sprintf("(%d, %d)", p.x, p.y)
	default:
		return fmt.Sprintf("factor(%d)", p.d)
	}
}
