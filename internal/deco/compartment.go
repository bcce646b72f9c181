package deco

import (
	"errors"
	"fmt"
	"math"
)

// Model construction and lookup errors.
var (
	// ErrInvalidCompartment rejects a constants table containing a
	// non-physiological row (half-time or a not positive, b outside (0,1)).
	ErrInvalidCompartment = errors.New("deco: invalid compartment constant")

	// ErrUnknownCompartment is returned when a sample references a tissue
	// index with no matching compartment.
	ErrUnknownCompartment = errors.New("deco: unknown compartment")
)

// Compartment holds the nitrogen constants of one tissue compartment.
// K is derived from the half-time at table construction and never set directly.
type Compartment struct {
	Index    int     // 1-based tissue number
	HalfTime float64 // minutes
	A        float64 // bar, Workman intercept
	B        float64 // dimensionless, reciprocal Workman slope
	K        float64 // per-minute decay constant, ln2 / HalfTime
}

// Table is an immutable, validated set of tissue compartments. It is built
// once at startup and shared read-only by every computation.
type Table struct {
	rows []Compartment
}

// NewTable validates raw compartment rows, derives each decay constant and
// returns the table. A single bad row rejects the whole set.
func NewTable(rows []Compartment) (*Table, error) {
	out := make([]Compartment, len(rows))
	for i, c := range rows {
		if c.HalfTime <= 0 {
			return nil, fmt.Errorf("%w: tissue %d half-time %v", ErrInvalidCompartment, c.Index, c.HalfTime)
		}
		if c.A <= 0 {
			return nil, fmt.Errorf("%w: tissue %d a=%v", ErrInvalidCompartment, c.Index, c.A)
		}
		if c.B <= 0 || c.B >= 1 {
			return nil, fmt.Errorf("%w: tissue %d b=%v", ErrInvalidCompartment, c.Index, c.B)
		}
		c.K = math.Ln2 / c.HalfTime
		out[i] = c
	}
	return &Table{rows: out}, nil
}

// ByIndex returns the compartment with the given 1-based tissue index.
func (t *Table) ByIndex(index int) (Compartment, error) {
	for _, c := range t.rows {
		if c.Index == index {
			return c, nil
		}
	}
	return Compartment{}, fmt.Errorf("%w: tissue %d", ErrUnknownCompartment, index)
}

// Compartments returns a copy of the table rows in index order.
func (t *Table) Compartments() []Compartment {
	out := make([]Compartment, len(t.rows))
	copy(out, t.rows)
	return out
}

// Len returns the number of compartments in the table.
func (t *Table) Len() int { return len(t.rows) }

// zhL16B is the ZH-L16B nitrogen parameter set (Buhlmann, revised B variant
// used for table calculations).
var zhL16B = []Compartment{
	{Index: 1, HalfTime: 5.0, A: 1.1696, B: 0.5578},
	{Index: 2, HalfTime: 8.0, A: 1.0000, B: 0.6514},
	{Index: 3, HalfTime: 12.5, A: 0.8618, B: 0.7222},
	{Index: 4, HalfTime: 18.5, A: 0.7562, B: 0.7825},
	{Index: 5, HalfTime: 27.0, A: 0.6667, B: 0.8126},
	{Index: 6, HalfTime: 38.3, A: 0.5600, B: 0.8434},
	{Index: 7, HalfTime: 54.3, A: 0.4947, B: 0.8693},
	{Index: 8, HalfTime: 77.0, A: 0.4500, B: 0.8910},
	{Index: 9, HalfTime: 109.0, A: 0.4187, B: 0.9092},
	{Index: 10, HalfTime: 146.0, A: 0.3798, B: 0.9222},
	{Index: 11, HalfTime: 187.0, A: 0.3497, B: 0.9319},
	{Index: 12, HalfTime: 239.0, A: 0.3223, B: 0.9403},
	{Index: 13, HalfTime: 305.0, A: 0.2850, B: 0.9477},
	{Index: 14, HalfTime: 390.0, A: 0.2737, B: 0.9544},
	{Index: 15, HalfTime: 498.0, A: 0.2523, B: 0.9602},
	{Index: 16, HalfTime: 635.0, A: 0.2327, B: 0.9653},
}

var zhL16BTable = func() *Table {
	t, err := NewTable(zhL16B)
	if err != nil {
		panic(err)
	}
	return t
}()

// ZHL16B returns the process-wide ZH-L16B nitrogen table.
func ZHL16B() *Table { return zhL16BTable }
