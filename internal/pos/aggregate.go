package pos

import (
	"regexp"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dvloznov/report-ledger/internal/document"
	"github.com/dvloznov/report-ledger/internal/extract"
	"github.com/dvloznov/report-ledger/internal/money"
)

// Record is one store's aggregated point-of-sale report. It is created once
// per source document and immutable thereafter; journals and tables are
// derived views.
type Record struct {
	StoreID string
	fields  map[string]decimal.Decimal
}

// Get returns the value of a schema row, zero for anything never touched.
func (r *Record) Get(field string) decimal.Decimal {
	return r.fields[field]
}

// Fields returns a copy of the row → value mapping.
func (r *Record) Fields() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(r.fields))
	for k, v := range r.fields {
		out[k] = v
	}
	return out
}

// houseSalesParens matches a parenthesized House Account Sales amount. The
// parentheses are load-bearing: they mean sales on account (a credit-side
// item stored negative), as opposed to House Account Payments which report
// money collected.
var houseSalesParens = regexp.MustCompile(`(?i)House\s+Account\s+Sales\s+\(\$?\s*([\d,]+\.\d{2})\)`)

// itemCategories is the sectioned table of item-category sales. The section
// runs from the "ITEM CATEGORIES SOLD" heading to the next report heading;
// when reflow drops the heading, the table's own column header anchors the
// search instead.
var itemCategories = extract.Table{
	Section: extract.Section{
		Start:  regexp.MustCompile(`(?i)ITEM\s+CATEGORIES\s+SOLD`),
		End:    regexp.MustCompile(`(?i)Sales\s*/\s*Tender|SpeedLine`),
		Anchor: regexp.MustCompile(`(?i)Category\s+Units\s+Gross`),
		MinLen: 40,
	},
	Categories: []extract.Category{
		{Name: FieldBeverage},
		{Name: FieldCatering},
		{Name: FieldDessert},
		{Name: FieldJetsBread, Synonyms: []string{"Jets Bread"}},
		{Name: FieldPizza},
		{Name: FieldSalad},
		{Name: FieldSandwiches, Synonyms: []string{"Sandwich"}},
		{Name: FieldSides, Synonyms: []string{"Side"}},
		{Name: FieldWings, Synonyms: []string{"Wing"}},
	},
}

// Aggregate extracts every schema field from one report's text. Missing
// fields default to zero; nothing here is an error condition.
func Aggregate(text string) *Record {
	fields := make(map[string]decimal.Decimal, len(rowOrder))

	for _, rule := range fieldRules {
		fields[rule.Field] = rule.Extract(text)
	}

	// Two raw fields combine into the single Delivery Fees schema row.
	fields[FieldDeliveryFees] = fields[rawDeliveryCharges].Add(fields[rawMinCharges])
	delete(fields, rawDeliveryCharges)
	delete(fields, rawMinCharges)

	// House Account Sales only counts when parenthesized (sales on account);
	// a bare positive figure on that line is not a sale and stays zero.
	if m := houseSalesParens.FindStringSubmatch(text); m != nil {
		if d, ok := money.Parse(m[1]); ok {
			fields[FieldHouseSales] = d.Neg()
		}
	}

	for name, v := range itemCategories.Extract(text) {
		fields[name] = v
	}

	// Derived summary rows are always recomputed, never extracted.
	fields[FieldCreditCardsTotal] = sumFields(fields, cardFields)
	fields[FieldFBTotal] = sumFields(fields, categoryFields)

	// Every schema row is present in every record.
	for _, row := range rowOrder {
		if _, ok := fields[row]; !ok {
			fields[row] = decimal.Zero
		}
	}

	return &Record{fields: fields}
}

func sumFields(fields map[string]decimal.Decimal, names []string) decimal.Decimal {
	total := decimal.Zero
	for _, n := range names {
		total = total.Add(fields[n])
	}
	return total
}

// NewRecord builds a record from explicit row values, filling the rest of
// the schema with zeros. Names outside the schema are dropped so the
// no-extra-fields invariant holds no matter the input.
func NewRecord(storeID string, values map[string]decimal.Decimal) *Record {
	fields := make(map[string]decimal.Decimal, len(rowOrder))
	for _, row := range rowOrder {
		fields[row] = decimal.Zero
	}
	for name, v := range values {
		if _, ok := fields[name]; ok {
			fields[name] = v
		}
	}
	return &Record{StoreID: storeID, fields: fields}
}

// Batch holds one aggregated record per store for a conversion run.
type Batch struct {
	RunID   string
	Records map[string]*Record
}

// Convert aggregates a set of parsed documents into one record per store,
// keyed by store identifier.
func Convert(docs []document.Document) *Batch {
	b := &Batch{
		RunID:   uuid.NewString(),
		Records: make(map[string]*Record, len(docs)),
	}
	for _, doc := range docs {
		rec := Aggregate(doc.Text)
		rec.StoreID = doc.StoreID
		b.Records[doc.StoreID] = rec
	}
	return b
}

// Stores returns the batch's store identifiers in lexical order, the order
// used for consolidated-table columns.
func (b *Batch) Stores() []string {
	stores := make([]string, 0, len(b.Records))
	for id := range b.Records {
		stores = append(stores, id)
	}
	sort.Strings(stores)
	return stores
}
