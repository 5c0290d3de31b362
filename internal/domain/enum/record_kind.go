package enum

// RecordKind identifies which of the seven voucher document types a record is.
// The string values are the kind tags stored in the database and used to key
// the layout template table.
type RecordKind string

const (
	KindPurchaseBill     RecordKind = "bill"
	KindSellBill         RecordKind = "sell"
	KindCuttingBill      RecordKind = "cutting"
	KindPacking          RecordKind = "packing"
	KindContainerLoading RecordKind = "container_loading"
	KindChemicalDip      RecordKind = "chemical_dip"
	KindPayroll          RecordKind = "payroll"
)

// Kinds returns all supported record kinds.
func Kinds() []RecordKind {
	return []RecordKind{
		KindPurchaseBill,
		KindSellBill,
		KindCuttingBill,
		KindPacking,
		KindContainerLoading,
		KindChemicalDip,
		KindPayroll,
	}
}

// Valid reports whether k is a known record kind.
func (k RecordKind) Valid() bool {
	switch k {
	case KindPurchaseBill, KindSellBill, KindCuttingBill, KindPacking,
		KindContainerLoading, KindChemicalDip, KindPayroll:
		return true
	}
	return false
}

// VoucherPrefix returns the short prefix used when generating voucher numbers,
// e.g. "PB" for purchase bills ("PB-1a2b3c4d").
func (k RecordKind) VoucherPrefix() string {
	switch k {
	case KindPurchaseBill:
		return "PB"
	case KindSellBill:
		return "SB"
	case KindCuttingBill:
		return "CT"
	case KindPacking:
		return "PK"
	case KindContainerLoading:
		return "CL"
	case KindChemicalDip:
		return "CD"
	case KindPayroll:
		return "PR"
	}
	return "RC"
}

// Slug returns the kind segment used in PDF filenames, matching the names the
// front office already prints and archives ("receipt-sell-12.pdf" etc.).
func (k RecordKind) Slug() string {
	switch k {
	case KindPurchaseBill:
		return "bill"
	case KindSellBill:
		return "receipt-sell"
	case KindCuttingBill:
		return "cutting"
	case KindPacking:
		return "packing"
	case KindContainerLoading:
		return "container-loading"
	case KindChemicalDip:
		return "chemical-dip"
	case KindPayroll:
		return "payroll"
	}
	return string(k)
}
