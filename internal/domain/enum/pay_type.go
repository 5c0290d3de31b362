package enum

// PayType selects the payroll pay model. The Thai values are what the clerk
// UI submits and what gets printed on the voucher, so they are stored as-is.
type PayType string

const (
	PayTypeDaily   PayType = "รายวัน"
	PayTypeMonthly PayType = "รายเดือน"
)

// Valid reports whether t is a known pay type.
func (t PayType) Valid() bool {
	return t == PayTypeDaily || t == PayTypeMonthly
}
