package dataset

// Column is one named feature column of a Table. Implementations are
// FloatColumn and StringColumn; the interface is sealed so Gather and
// Append can rely on the concrete set.
type Column interface {
	// Len returns the number of rows in the column.
	Len() int
	// Name returns the column label.
	Name() string

	gather(rows []int) Column
	sealedColumn()
}

// FloatColumn is a named numeric column.
type FloatColumn struct {
	Label  string
	Values []float64
}

// Len returns the number of rows.
func (c FloatColumn) Len() int { return len(c.Values) }

// Name returns the column label.
func (c FloatColumn) Name() string { return c.Label }

func (c FloatColumn) gather(rows []int) Column {
	out := make([]float64, len(rows))
	for k, r := range rows {
		out[k] = c.Values[r]
	}

	return FloatColumn{Label: c.Label, Values: out}
}

func (FloatColumn) sealedColumn() {}

// StringColumn is a named categorical column.
type StringColumn struct {
	Label  string
	Values []string
}

// Len returns the number of rows.
func (c StringColumn) Len() int { return len(c.Values) }

// Name returns the column label.
func (c StringColumn) Name() string { return c.Label }

func (c StringColumn) gather(rows []int) Column {
	out := make([]string, len(rows))
	for k, r := range rows {
		out[k] = c.Values[r]
	}

	return StringColumn{Label: c.Label, Values: out}
}

func (StringColumn) sealedColumn() {}

// Table is a column-oriented feature store with mixed column types. It
// satisfies Storage only: samplers can duplicate or drop its rows verbatim,
// but any path that must read feature values as floats reports
// ErrNonNumeric instead.
type Table struct {
	rows int
	cols []Column
}

// NewTable builds a Table from one or more columns of equal length.
// The column slice is copied; the backing value slices are shared.
func NewTable(cols ...Column) (*Table, error) {
	if len(cols) == 0 {
		return nil, ErrBadShape
	}
	rows := cols[0].Len()
	if rows == 0 {
		return nil, ErrBadShape
	}
	for _, c := range cols {
		if c.Len() != rows {
			return nil, ErrShapeMismatch
		}
	}

	return &Table{rows: rows, cols: append([]Column(nil), cols...)}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (t *Table) Rows() int { return t.rows }

// Cols returns the number of columns. Complexity: O(1).
func (t *Table) Cols() int { return len(t.cols) }

// Kind returns KindTable.
func (t *Table) Kind() Kind { return KindTable }

// Column returns the i-th column.
func (t *Table) Column(i int) (Column, error) {
	if i < 0 || i >= len(t.cols) {
		return nil, ErrColIndex
	}

	return t.cols[i], nil
}

// Gather returns a new Table holding the listed rows in order.
// Complexity: O(len(rows)·c).
func (t *Table) Gather(rows []int) (Storage, error) {
	if err := checkRows(rows, t.rows); err != nil {
		return nil, err
	}
	cols := make([]Column, len(t.cols))
	for i, c := range t.cols {
		cols[i] = c.gather(rows)
	}

	return &Table{rows: len(rows), cols: cols}, nil
}

// Append returns a new Table with the receiver's rows followed by every
// block's rows. Blocks must be Tables with the same column names and types
// in the same order. Complexity: O(total rows · c).
func (t *Table) Append(blocks ...Storage) (Storage, error) {
	parts := make([]*Table, 0, len(blocks)+1)
	parts = append(parts, t)
	total := t.rows
	for _, b := range blocks {
		if b.Kind() != KindTable {
			return nil, ErrKindMismatch
		}
		bt := b.(*Table)
		if len(bt.cols) != len(t.cols) {
			return nil, ErrShapeMismatch
		}
		total += bt.rows
		parts = append(parts, bt)
	}
	cols := make([]Column, len(t.cols))
	for i := range t.cols {
		switch base := t.cols[i].(type) {
		case FloatColumn:
			vals := make([]float64, 0, total)
			for _, p := range parts {
				pc, ok := p.cols[i].(FloatColumn)
				if !ok || pc.Label != base.Label {
					return nil, ErrSchemaMismatch
				}
				vals = append(vals, pc.Values...)
			}
			cols[i] = FloatColumn{Label: base.Label, Values: vals}
		case StringColumn:
			vals := make([]string, 0, total)
			for _, p := range parts {
				pc, ok := p.cols[i].(StringColumn)
				if !ok || pc.Label != base.Label {
					return nil, ErrSchemaMismatch
				}
				vals = append(vals, pc.Values...)
			}
			cols[i] = StringColumn{Label: base.Label, Values: vals}
		}
	}

	return &Table{rows: total, cols: cols}, nil
}
