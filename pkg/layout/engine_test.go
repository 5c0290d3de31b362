package layout

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCompany = Company{
	Name:    "บริษัท ทดสอบ จำกัด",
	Address: "1 ถนนทดสอบ จันทบุรี",
	Phone:   "039-000-000",
}

func testDate() time.Time {
	return time.Date(2025, time.August, 15, 10, 30, 0, 0, bangkok)
}

// sampleVoucher builds a minimal valid voucher for any kind.
func sampleVoucher(kind Kind) *Voucher {
	v := &Voucher{
		Kind:         kind,
		VoucherNo:    "TT-1a2b3c4d",
		Counterparty: "สมชาย",
		Date:         testDate(),
		Items: []Line{
			{Label: "หมอนทอง เกรด A", SubWeights: []float64{18, 17.5}, Quantity: 35.5, UnitPrice: 120, Subtotal: 4260},
		},
		Gross: 4260,
		Net:   4260,
	}
	switch kind {
	case KindCuttingBill:
		v.PeriodStart = testDate().AddDate(0, 0, -7)
		v.PeriodEnd = testDate()
	case KindPayroll:
		v.PayType = "รายวัน"
		v.WorkDays = 26
		v.PricePerDay = 450
		v.Gross = 11700
		v.Net = 11700
	}
	return v
}

func texts(doc *Document) []string {
	var out []string
	for _, in := range doc.Instructions {
		if in.Op == OpText {
			out = append(out, in.Text)
		}
	}
	return out
}

func containsText(doc *Document, substr string) bool {
	for _, s := range texts(doc) {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

func TestRenderAllKinds(t *testing.T) {
	e := NewEngine(testCompany)
	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			doc, err := e.Render(sampleVoucher(kind))
			require.NoError(t, err)
			require.NotEmpty(t, doc.Instructions)

			tpl, _ := TemplateFor(kind)
			size := tpl.PageSize()
			assert.Equal(t, size, doc.Page)

			for i, in := range doc.Instructions {
				assert.GreaterOrEqual(t, in.X, 0.0, "instruction %d X", i)
				assert.GreaterOrEqual(t, in.Y, 0.0, "instruction %d Y", i)
				assert.LessOrEqual(t, in.X, size.W, "instruction %d X", i)
				assert.LessOrEqual(t, in.Y, size.H, "instruction %d Y", i)
			}
		})
	}
}

func TestRenderUnknownKind(t *testing.T) {
	e := NewEngine(testCompany)
	_, err := e.Render(&Voucher{Kind: Kind("unknown"), Date: testDate()})
	var lerr *LayoutError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, "kind", lerr.Field)
}

func TestRenderMissingDataEmitsNothing(t *testing.T) {
	e := NewEngine(testCompany)
	tests := []struct {
		name string
		v    *Voucher
		want string
	}{
		{"zero date", &Voucher{Kind: KindPurchaseBill, Counterparty: "x"}, "date"},
		{"no counterparty", &Voucher{Kind: KindPurchaseBill, Date: testDate()}, "counterparty"},
		{"cutting without period", &Voucher{Kind: KindCuttingBill, Counterparty: "x", Date: testDate()}, "period"},
		{"payroll without pay type", &Voucher{Kind: KindPayroll, Counterparty: "x", Date: testDate()}, "payType"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := e.Render(tt.v)
			var lerr *LayoutError
			require.ErrorAs(t, err, &lerr)
			assert.Equal(t, tt.want, lerr.Field)
			assert.Nil(t, doc)
		})
	}
}

// Pinned signature blocks must sit near the bottom edge even for a long body,
// while flow signatures follow the content.
func TestSignaturePlacement(t *testing.T) {
	e := NewEngine(testCompany)

	v := sampleVoucher(KindSellBill)
	for i := 0; i < 10; i++ {
		v.Items = append(v.Items, Line{Label: "ชะนี เกรด B", Quantity: 20, UnitPrice: 80, Subtotal: 1600})
	}
	doc, err := e.Render(v)
	require.NoError(t, err)

	tpl, _ := TemplateFor(KindSellBill)
	sigY := tpl.PageSize().H - 60
	found := false
	for _, in := range doc.Instructions {
		if in.Op == OpText && strings.HasPrefix(in.Text, "ลงชื่อ") && in.Y == sigY {
			found = true
		}
	}
	assert.True(t, found, "pinned signature line at %v", sigY)
	assert.True(t, containsText(doc, "( ผู้ขาย )"))
	assert.True(t, containsText(doc, "( ผู้รับเงิน )"))
}

func TestRenderPurchaseBill(t *testing.T) {
	e := NewEngine(testCompany)
	v := sampleVoucher(KindPurchaseBill)
	v.Deductions = []DeductionLine{{Label: "เบิกล่วงหน้า", Amount: 1000}}
	v.TotalDeduction = 1000
	v.Net = 3260

	doc, err := e.Render(v)
	require.NoError(t, err)

	assert.True(t, containsText(doc, "รหัสบิล: TT-1a2b3c4d"))
	assert.True(t, containsText(doc, "จ่ายให้: สมชาย"))
	assert.True(t, containsText(doc, "น้ำหนักต่อเข่ง: 18 + 17.5 กก."))
	assert.True(t, containsText(doc, "รวมเงิน: 4,260 บาท"))
	assert.True(t, containsText(doc, "หักเบิก: 1,000 บาท"))
	assert.True(t, containsText(doc, "คงเหลือหลังหัก: 3,260 บาท"))
	assert.True(t, containsText(doc, "วันที่: 15 สิงหาคม 2568 เวลา: 10:30 น."))
	assert.True(t, containsText(doc, testCompany.Name))
}

func TestRenderWithoutDeductionsSkipsDeductionBlock(t *testing.T) {
	e := NewEngine(testCompany)
	doc, err := e.Render(sampleVoucher(KindPurchaseBill))
	require.NoError(t, err)

	assert.False(t, containsText(doc, "รายการหัก"))
	assert.False(t, containsText(doc, "หักเบิก"))
	assert.True(t, containsText(doc, "รวมเงิน: 4,260 บาท"))
}

func TestRenderCuttingBill(t *testing.T) {
	e := NewEngine(testCompany)
	v := sampleVoucher(KindCuttingBill)
	v.Deductions = []DeductionLine{{Label: "ค่าแรงลูกทีม", Quantity: 5, UnitPrice: 400, Amount: 2000}}
	v.TotalDeduction = 2000
	v.Net = 2260

	doc, err := e.Render(v)
	require.NoError(t, err)

	assert.True(t, containsText(doc, "ช่วงวันที่: 8 ส.ค. 2568 - 15 ส.ค. 2568"))
	assert.True(t, containsText(doc, "1. ค่าแรงลูกทีม - 5 × 400 = 2,000 บาท"))
	assert.True(t, containsText(doc, "ยอดสุทธิ: 2,260 บาท"))
}

// Cutting vouchers print extra deductions in their own block, each block
// numbered from 1.
func TestRenderCuttingExtraDeductionBlock(t *testing.T) {
	e := NewEngine(testCompany)
	v := sampleVoucher(KindCuttingBill)
	v.Deductions = []DeductionLine{
		{Label: "ค่าแรงลูกทีม", Quantity: 5, UnitPrice: 400, Amount: 2000},
		{Label: "ค่าน้ำมัน", Amount: 300, Extra: true},
	}
	v.TotalDeduction = 2300
	v.Net = 1960

	doc, err := e.Render(v)
	require.NoError(t, err)

	assert.True(t, containsText(doc, "รายการหัก:"))
	assert.True(t, containsText(doc, "รายการหักเพิ่มเติม:"))
	assert.True(t, containsText(doc, "1. ค่าแรงลูกทีม - 5 × 400 = 2,000 บาท"))
	assert.True(t, containsText(doc, "1. ค่าน้ำมัน: 300 บาท"))
}

// Kinds without an extra heading merge extra rows into the single block.
func TestRenderExtraDeductionsMergeWithoutSecondHeading(t *testing.T) {
	e := NewEngine(testCompany)
	v := sampleVoucher(KindPurchaseBill)
	v.Deductions = []DeductionLine{
		{Label: "เบิกล่วงหน้า", Amount: 1000},
		{Label: "ค่าเข่ง", Amount: 200, Extra: true},
	}
	v.TotalDeduction = 1200
	v.Net = 3060

	doc, err := e.Render(v)
	require.NoError(t, err)

	assert.False(t, containsText(doc, "รายการหักเพิ่มเติม:"))
	assert.True(t, containsText(doc, "1. เบิกล่วงหน้า: 1,000 บาท"))
	assert.True(t, containsText(doc, "2. ค่าเข่ง: 200 บาท"))
}

func TestRenderPayroll(t *testing.T) {
	e := NewEngine(testCompany)
	doc, err := e.Render(sampleVoucher(KindPayroll))
	require.NoError(t, err)

	assert.True(t, containsText(doc, "ใบสำคัญจ่าย PAYMENT VOUCHER"))
	assert.True(t, containsText(doc, "รายวัน: 26 วัน × 450 บาท = 11,700 บาท"))
}

func TestRenderPayrollMonthly(t *testing.T) {
	e := NewEngine(testCompany)
	v := sampleVoucher(KindPayroll)
	v.PayType = "รายเดือน"
	v.MonthlySalary = 15000
	v.Months = 2
	v.Gross = 30000
	v.Net = 30000

	doc, err := e.Render(v)
	require.NoError(t, err)
	assert.True(t, containsText(doc, "รายเดือน: 15,000 บาท × 2 เดือน = 30,000 บาท"))
}

func TestRenderExportSections(t *testing.T) {
	e := NewEngine(testCompany)
	v := &Voucher{
		Kind:      KindExport,
		VoucherNo: "INV-2025-001",
		Date:      testDate(),
		Meta:      []string{"ลูกค้า / Customer: Chengdu Fruit Co."},
		Sections: []Section{{
			Heading: "รายการทุเรียนส่งออก / Export Items:",
			Items: []Line{{
				Label:     "1. หมอนทอง เกรด A",
				Subtotal:  13500,
				Breakdown: "5 กล่อง × 18 กก. = 90 กก. × 150 บาท = 13,500 บาท",
			}},
		}},
		NoteHeading: "สรุปกล่องตามแบรนด์ / Brand-wise Box Summary:",
		Note:        "SURIYA GOLD: 5 กล่อง",
		Gross:       13500,
		Net:         13500,
	}

	doc, err := e.Render(v)
	require.NoError(t, err)

	assert.True(t, containsText(doc, "ลูกค้า / Customer: Chengdu Fruit Co."))
	assert.True(t, containsText(doc, "1. หมอนทอง เกรด A: 5 กล่อง × 18 กก. = 90 กก. × 150 บาท = 13,500 บาท"))
	assert.True(t, containsText(doc, "รวมยอด / Total: 13,500 บาท"))
	assert.True(t, containsText(doc, "SURIYA GOLD: 5 กล่อง"))

	// Export invoices carry no signature block.
	assert.False(t, containsText(doc, "ลงชื่อ"))
}
