package domain

// A raw row of a sales export: ordered text fields with no schema beyond
// position.
type ShipmentRow []string

// Field returns the raw value at index i, or "" when the row is
// too short.
func (r ShipmentRow) Field(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// A line removed from the export, with its 1-based line number.
type SkippedLine struct {
	Line   int
	Reason string
}

// Outcome of cleaning a sales export.
// Considered counts complete data rows, Accepted those matching an
// accepted shipping method, Written the data lines in Output (header
// excluded).
type FilterResult struct {
	Output     string
	Considered int
	Accepted   int
	Written    int
	Skipped    []SkippedLine
}

// Branch resolution for one order row of a sales export.
type OrderResolution struct {
	Line       int
	OrderID    string
	Locality   string
	Province   string
	PostalCode string
	Address    string
	Match      BranchMatch
	Cached     bool
}

// Query returns the branch lookup input for the order.
func (r OrderResolution) Query() BranchQuery {
	return BranchQuery{
		Locality:   r.Locality,
		Province:   r.Province,
		PostalCode: r.PostalCode,
		Address:    r.Address,
	}
}
