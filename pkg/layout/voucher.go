package layout

import "time"

// Voucher is the print-time value object the engine lays out. It is NOT a
// database entity — it is composed from a record plus the ledger aggregator's
// output, so the engine never computes money itself.
type Voucher struct {
	Kind         Kind
	VoucherNo    string
	Counterparty string
	Date         time.Time
	PayMethod    string

	// Cutting bills
	PeriodStart time.Time
	PeriodEnd   time.Time

	// Payroll
	PayType       string
	WorkDays      float64
	PricePerDay   float64
	MonthlySalary float64
	Months        float64

	// Extra header lines under the title (export invoices).
	Meta []string

	Items    []Line
	Sections []Section

	Deductions []DeductionLine

	Gross          float64
	TotalDeduction float64
	Net            float64

	// Free-text closing block (export brand summary).
	NoteHeading string
	Note        string
}

// Line is one itemized voucher row with its aggregator-computed subtotal.
type Line struct {
	Label      string
	SubWeights []float64
	Quantity   float64
	UnitPrice  float64
	Subtotal   float64

	// Breakdown, when set, replaces the default "qty × price" caption with a
	// caller-formatted one (container codes, boxes × weight chains).
	Breakdown string
}

// Section is a headed group of lines, used by the multi-part export invoice.
type Section struct {
	Heading string
	Items   []Line
}

// DeductionLine is one row of the deduction block. Quantity > 0 marks an
// itemized deduction rendered as "label - qty × price = amount". Extra rows
// print in a second block under the template's extra heading on kinds that
// have one (cutting bills).
type DeductionLine struct {
	Label     string
	Quantity  float64
	UnitPrice float64
	Amount    float64
	Extra     bool
}

// LayoutError reports a record field that a required layout slot needs but
// that is absent. No instructions are emitted when it is returned.
type LayoutError struct {
	Field string
}

func (e *LayoutError) Error() string {
	return "layout: missing required field " + e.Field
}
