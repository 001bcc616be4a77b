package datatable

// Visibility maps column key to whether the column is currently shown.
// Locked columns always read true; every constructor and mutator below
// preserves that invariant.
type Visibility map[string]bool

// NewVisibility seeds the map from each column's static Hidden flag.
func NewVisibility(columns []Column) Visibility {
	v := make(Visibility, len(columns))
	for _, col := range columns {
		v[col.Key] = !col.Hidden || col.Locked
	}
	return v
}

// Toggle flips one column and returns a new map. Toggling a locked
// column is a silent no-op.
func (v Visibility) Toggle(key string, columns []Column) Visibility {
	out := v.clone()
	if col, ok := columnByKey(columns, key); ok && col.Locked {
		return out
	}
	out[key] = !out[key]
	return out
}

// SelectAll shows every column.
func SelectAll(columns []Column) Visibility {
	v := make(Visibility, len(columns))
	for _, col := range columns {
		v[col.Key] = true
	}
	return v
}

// SelectNone hides every column the user is allowed to hide; locked
// columns stay visible.
func SelectNone(columns []Column) Visibility {
	v := make(Visibility, len(columns))
	for _, col := range columns {
		v[col.Key] = col.Locked
	}
	return v
}

// ResetVisibility restores the layout declared by the column model.
func ResetVisibility(columns []Column) Visibility {
	return NewVisibility(columns)
}

// VisibleColumns filters the column list down to what is shown. This
// derived list is what feeds the header, body cells and export; the
// free-text search still covers every row field.
func VisibleColumns(columns []Column, v Visibility) []Column {
	out := make([]Column, 0, len(columns))
	for _, col := range columns {
		if v[col.Key] {
			out = append(out, col)
		}
	}
	return out
}

// AnnotateColumns re-stamps each column's Hidden flag from the current
// visibility, producing the list handed to the owner so a column layout
// can be persisted.
func AnnotateColumns(columns []Column, v Visibility) []Column {
	out := append([]Column(nil), columns...)
	for i := range out {
		out[i].Hidden = !v[out[i].Key]
	}
	return out
}

func (v Visibility) clone() Visibility {
	out := make(Visibility, len(v))
	for key, shown := range v {
		out[key] = shown
	}
	return out
}
