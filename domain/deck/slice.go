package deck

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SliceExpr selects a range of positions with start, stop and step.
// A nil bound is omitted and takes the default for the direction of the step:
// a nil Step means 1.
type SliceExpr struct {
	Start *int
	Stop  *int
	Step  *int
}

// Idx returns a pointer to i, to fill the bounds of a SliceExpr inline.
func Idx(i int) *int {
	return &i
}

// Indices resolves the expression against a sequence of the given length.
// Out of range bounds are clamped rather than rejected; the only failure is
// a zero step.
func (e SliceExpr) Indices(length int) (start, stop, step int, err error) {
	step = 1
	if e.Step != nil {
		step = *e.Step
		if step == 0 {
			return 0, 0, 0, ErrZeroStep
		}
	}

	lower, upper := 0, length
	if step < 0 {
		lower, upper = -1, length-1
	}
	clamp := func(bound *int, def int) int {
		if bound == nil {
			return def
		}
		v := *bound
		if v < 0 {
			v += length
			if v < lower {
				v = lower
			}
		} else if v > upper {
			v = upper
		}
		return v
	}

	if step > 0 {
		start = clamp(e.Start, lower)
		stop = clamp(e.Stop, upper)
	} else {
		start = clamp(e.Start, upper)
		stop = clamp(e.Stop, lower)
	}
	return start, stop, step, nil
}

// Positions returns the positions selected by the expression, in order.
// The count is computed up front so that huge steps cannot overflow the
// running position.
func (e SliceExpr) Positions(length int) ([]int, error) {
	start, stop, step, err := e.Indices(length)
	if err != nil {
		return nil, err
	}
	if step == math.MinInt {
		step = -math.MaxInt
	}
	var count int
	switch {
	case step > 0 && start < stop:
		count = (stop-start-1)/step + 1
	case step < 0 && stop < start:
		count = (start-stop-1)/(-step) + 1
	}
	if count == 0 {
		return nil, nil
	}
	positions := make([]int, count)
	for k := range positions {
		positions[k] = start + k*step
	}
	return positions, nil
}

// String renders the expression in the "start:stop:step" notation
// accepted by ParseSlice. The step is omitted when nil.
func (e SliceExpr) String() string {
	bound := func(p *int) string {
		if p == nil {
			return ""
		}
		return strconv.Itoa(*p)
	}
	s := bound(e.Start) + ":" + bound(e.Stop)
	if e.Step != nil {
		s += ":" + bound(e.Step)
	}
	return s
}

// ParseSlice parses expressions like ":3", "12::13" or "[::-1]".
// Empty fields are left nil.
func ParseSlice(s string) (SliceExpr, error) {
	raw := strings.TrimSpace(s)
	raw = strings.TrimPrefix(raw, "[")
	raw = strings.TrimSuffix(raw, "]")

	fields := strings.Split(raw, ":")
	if len(fields) < 2 || len(fields) > 3 {
		return SliceExpr{}, fmt.Errorf("%w: %q", ErrInvalidSlice, s)
	}

	bounds := make([]*int, 3)
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return SliceExpr{}, fmt.Errorf("%w: %q: %w", ErrInvalidSlice, s, err)
		}
		bounds[i] = Idx(v)
	}
	return SliceExpr{Start: bounds[0], Stop: bounds[1], Step: bounds[2]}, nil
}
