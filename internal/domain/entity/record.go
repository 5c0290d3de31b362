package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/suriya388/backoffice-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Record is one persisted business transaction: a purchase bill, sell bill,
// cutting-labor bill, packing cost, container-loading cost, chemical-dip cost
// or payroll voucher. The kind tag decides which optional fields apply and
// which layout template renders it.
type Record struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Kind         enum.RecordKind `gorm:"size:32;not null;index" json:"kind"`
	VoucherNo    string          `gorm:"size:100;unique;not null" json:"voucher_no"`
	Counterparty string          `gorm:"size:255" json:"counterparty"`
	Date         time.Time       `gorm:"not null;index" json:"date"`
	PayMethod    string          `gorm:"size:50" json:"pay_method,omitempty"`

	// Cutting bills cover a harvest period rather than a single day.
	PeriodStart *time.Time `json:"period_start,omitempty"`
	PeriodEnd   *time.Time `json:"period_end,omitempty"`

	// Payroll: either the daily model (WorkDays, PricePerDay) or the monthly
	// model (MonthlySalary, Months) is set, never both.
	PayType       enum.PayType `gorm:"size:32" json:"pay_type,omitempty"`
	Period        string       `gorm:"size:100" json:"period,omitempty"`
	WorkDays      *float64     `json:"work_days,omitempty"`
	PricePerDay   *float64     `json:"price_per_day,omitempty"`
	MonthlySalary *float64     `json:"monthly_salary,omitempty"`
	Months        *float64     `json:"months,omitempty"`

	// Totals are derived from the children at write time so list views never
	// re-aggregate.
	TotalAmount    float64 `gorm:"not null;default:0" json:"total_amount"`
	TotalDeduction float64 `gorm:"not null;default:0" json:"total_deduction"`
	NetAmount      float64 `gorm:"not null;default:0" json:"net_amount"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Items      []LineItem  `gorm:"foreignKey:RecordID;constraint:OnDelete:CASCADE" json:"items"`
	Deductions []Deduction `gorm:"foreignKey:RecordID;constraint:OnDelete:CASCADE" json:"deductions"`
}

// BeforeCreate generates a UUID before creating a new record
func (r *Record) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Record model
func (Record) TableName() string {
	return "records"
}

// LineItem is one itemized row contributing Quantity × UnitPrice to the
// record's gross total. Quantity is a weight in kilograms for fruit rows, a
// box count for packing rows, and so on.
type LineItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecordID uuid.UUID `gorm:"type:uuid;not null;index" json:"record_id"`
	Position int       `gorm:"not null" json:"position"`

	Variety string `gorm:"size:100" json:"variety,omitempty"`
	Grade   string `gorm:"size:50" json:"grade,omitempty"`
	Label   string `gorm:"size:255" json:"label,omitempty"`

	Quantity  float64 `gorm:"not null" json:"quantity"`
	UnitPrice float64 `gorm:"not null" json:"unit_price"`

	// Per-basket weight breakdown. Display-only: never validated against
	// Quantity and never aggregated.
	SubWeights []float64 `gorm:"serializer:json" json:"sub_weights,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new line item
func (li *LineItem) BeforeCreate(tx *gorm.DB) error {
	if li.ID == uuid.Nil {
		li.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the LineItem model
func (LineItem) TableName() string {
	return "line_items"
}

// DisplayLabel is the category label printed on the voucher body line.
func (li *LineItem) DisplayLabel() string {
	if li.Variety != "" {
		if li.Grade != "" {
			return li.Variety + " เกรด " + li.Grade
		}
		return li.Variety
	}
	return li.Label
}

// Deduction is a labeled amount subtracted from the record's gross total.
// Itemized deductions (cutting-bill deduct rows) carry Quantity and UnitPrice
// and their Amount is the product; flat deductions carry Amount only.
type Deduction struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecordID uuid.UUID `gorm:"type:uuid;not null;index" json:"record_id"`
	Position int       `gorm:"not null" json:"position"`

	Label     string   `gorm:"size:255" json:"label"`
	Quantity  *float64 `json:"quantity,omitempty"`
	UnitPrice *float64 `json:"unit_price,omitempty"`
	Amount    float64  `gorm:"not null" json:"amount"`

	// Extra rows print in the voucher's second deduction block (cutting
	// bills' "additional deductions" list).
	Extra bool `gorm:"not null;default:false" json:"extra,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new deduction
func (d *Deduction) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Deduction model
func (Deduction) TableName() string {
	return "deductions"
}
