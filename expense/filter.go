package expense

// FilterByPeriod returns the records whose date falls within the period,
// both bounds inclusive. Matches come back in the input slice's order and
// the input is never modified; downstream tie-break rules depend on this.
func FilterByPeriod(records []Record, p Period) []Record {
	var out []Record
	for _, r := range records {
		if p.Contains(r.Date) {
			out = append(out, r)
		}
	}
	return out
}

// FilterByRange filters records to the inclusive [start, end] interval given
// as "YYYY-MM-DD" strings. Fails with ErrBadDate on a malformed bound.
func FilterByRange(records []Record, start, end string) ([]Record, error) {
	p, err := ParseRange("Custom", start, end)
	if err != nil {
		return nil, err
	}
	return FilterByPeriod(records, p), nil
}
