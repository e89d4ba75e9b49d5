package replay

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/percolation/percolation"
)

// Parse reads a trace from r.
// Returns ErrEmptyTrace when r holds no tokens and ErrMalformedTrace for a
// non-numeric or negative token or a trailing row without a column.
// Read errors from r are returned wrapped.
func Parse(r io.Reader) (*Trace, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var values []int
	for sc.Scan() {
		v, err := strconv.Atoi(sc.Text())
		if err != nil || v < 0 {
			return nil, fmt.Errorf("replay: token %d %q: %w", len(values), sc.Text(), ErrMalformedTrace)
		}
		values = append(values, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("replay: read: %w", err)
	}
	if len(values) == 0 {
		return nil, ErrEmptyTrace
	}
	pairs := values[1:]
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("replay: row %d has no column: %w", pairs[len(pairs)-1], ErrMalformedTrace)
	}

	t := &Trace{Size: values[0], Sites: make([]Site, 0, len(pairs)/2)}
	for i := 0; i < len(pairs); i += 2 {
		t.Sites = append(t.Sites, Site{Row: pairs[i], Col: pairs[i+1]})
	}

	return t, nil
}

// Replay builds a fresh Grid of t.Size and applies every recorded Open in
// order. onStep, when non-nil, runs after each Open.
// An invalid site stops the replay with the step number and the wrapped
// percolation error; the partially replayed grid is returned alongside it.
func (t *Trace) Replay(onStep StepFunc) (*percolation.Grid, error) {
	g, err := percolation.New(t.Size)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	for i, s := range t.Sites {
		if err := g.Open(s.Row, s.Col); err != nil {
			return g, fmt.Errorf("replay: step %d: %w", i, err)
		}
		if onStep != nil {
			if err := onStep(i, s, g); err != nil {
				return g, err
			}
		}
	}

	return g, nil
}

// WriteTo writes t in the line-per-pair text layout with a single Write
// call, so the returned count is exactly what w accepted.
// It implements io.WriterTo.
func (t *Trace) WriteTo(w io.Writer) (int64, error) {
	buf := strconv.AppendInt(make([]byte, 0, 8+8*len(t.Sites)), int64(t.Size), 10)
	buf = append(buf, '\n')
	for _, s := range t.Sites {
		buf = strconv.AppendInt(buf, int64(s.Row), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(s.Col), 10)
		buf = append(buf, '\n')
	}
	n, err := w.Write(buf)

	return int64(n), err
}

// NewRecorder returns a Recorder over g. The trace starts empty.
func NewRecorder(g *percolation.Grid) *Recorder {
	return &Recorder{grid: g, trace: Trace{Size: g.Size()}}
}

// Open forwards to the wrapped Grid and records the call when it succeeds.
// Re-opening an open site is recorded too, as it was issued.
func (r *Recorder) Open(row, col int) error {
	if err := r.grid.Open(row, col); err != nil {
		return err
	}
	r.trace.Sites = append(r.trace.Sites, Site{Row: row, Col: col})

	return nil
}

// Grid returns the wrapped grid.
func (r *Recorder) Grid() *percolation.Grid {
	return r.grid
}

// Trace returns a copy of the calls recorded so far.
func (r *Recorder) Trace() *Trace {
	return &Trace{Size: r.trace.Size, Sites: append([]Site(nil), r.trace.Sites...)}
}

// WriteTo writes the recorded trace to w.
func (r *Recorder) WriteTo(w io.Writer) (int64, error) {
	return r.trace.WriteTo(w)
}
