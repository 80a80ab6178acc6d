package pos

import "fmt"

// Validate checks a record against the schema invariants: every schema row
// present, no extra rows, and the two derived summary rows equal to the sum
// of their constituents. Aggregate always produces valid records; this guard
// exists for the CLI's verify pass and for tests.
func Validate(r *Record) error {
	if len(r.fields) != len(rowOrder) {
		return fmt.Errorf("Validate: record has %d rows, schema has %d", len(r.fields), len(rowOrder))
	}
	for _, row := range rowOrder {
		if _, ok := r.fields[row]; !ok {
			return fmt.Errorf("Validate: missing schema row %q", row)
		}
	}

	if got, want := r.Get(FieldCreditCardsTotal), sumFields(r.fields, cardFields); !got.Equal(want) {
		return fmt.Errorf("Validate: %s = %s, want %s", FieldCreditCardsTotal, got, want)
	}
	if got, want := r.Get(FieldFBTotal), sumFields(r.fields, categoryFields); !got.Equal(want) {
		return fmt.Errorf("Validate: %s = %s, want %s", FieldFBTotal, got, want)
	}

	return nil
}
