package layout

// Kind keys the template table. The values match the record kind tags used by
// the rest of the system.
type Kind string

const (
	KindPurchaseBill     Kind = "bill"
	KindSellBill         Kind = "sell"
	KindCuttingBill      Kind = "cutting"
	KindPacking          Kind = "packing"
	KindContainerLoading Kind = "container_loading"
	KindChemicalDip      Kind = "chemical_dip"
	KindPayroll          Kind = "payroll"
	KindExport           Kind = "export"
)

// HeaderStyle selects the header block variant.
type HeaderStyle int

const (
	// HeaderVoucher is the three-column voucher header: record metadata,
	// logo, company identity block.
	HeaderVoucher HeaderStyle = iota
	// HeaderSimple is a logo in the top-left corner with a centered document
	// title and a date line, used by the cost-summary sheets.
	HeaderSimple
)

// LogoAnchor places the logo within a voucher header.
type LogoAnchor int

const (
	LogoLeft LogoAnchor = iota
	LogoCenter
)

// BodyStyle selects how the itemized body is rendered.
type BodyStyle int

const (
	// BodyWeighed: numbered lines with per-basket breakdown, total weight,
	// price per kg and subtotal (purchase and sell bills).
	BodyWeighed BodyStyle = iota
	// BodyCutting: harvest period line plus a single weight × price line;
	// the deduction blocks carry the detail.
	BodyCutting
	// BodyPayroll: one daily or monthly wage line from the payroll fields.
	BodyPayroll
	// BodyPriced: numbered "label: qty × price = total" lines (packing,
	// container loading, export sections).
	BodyPriced
	// BodyChemical: big weight / price-per-ton / total lines.
	BodyChemical
)

// SignatureMode anchors the signature block.
type SignatureMode int

const (
	// SignatureNone omits the block (export summaries).
	SignatureNone SignatureMode = iota
	// SignatureFlow places the block below whatever was drawn last.
	SignatureFlow
	// SignaturePinned places the block at a fixed offset from the bottom
	// edge so it is always reachable regardless of body length.
	SignaturePinned
)

// Template describes one document kind's fixed visual layout. Geometry is in
// points; page sizes are the declared pdf sizes, swapped when Landscape.
type Template struct {
	Kind      Kind
	Page      Size
	Landscape bool
	Margin    float64

	Header            HeaderStyle
	Logo              LogoAnchor
	LogoSize          float64
	CounterpartyLabel string
	PurposeLine       string
	ShowPayMethod     bool
	ShowTime          bool

	Title     string
	TitleSize float64
	Subtitle  string

	Body             BodyStyle
	BodyHeading      string
	HeadingSize      float64
	BodySize         float64
	BodyBold         bool
	SubWeightLabel   string
	Unit             string
	DeductionHeading string
	// ExtraDeductionHeading, when set, gives Extra deduction rows their own
	// second block instead of merging them under DeductionHeading.
	ExtraDeductionHeading string

	ShowGross  bool
	GrossLabel string
	DeductLabel string
	NetLabel   string
	TotalsAlign Align
	TotalSize  float64

	Signatures    SignatureMode
	SignatureLeft string
	SignatureRight string
}

// PageSize returns the effective canvas size after applying the landscape
// flag.
func (t Template) PageSize() Size {
	if t.Landscape {
		return Size{W: t.Page.H, H: t.Page.W}
	}
	return t.Page
}

var a4 = Size{W: 595.28, H: 841.89}

// templates reproduces the per-document geometry of the print shop's voucher
// stock: a 9×5.5 inch landscape sheet for vouchers and A4 for cost summaries.
var templates = map[Kind]Template{
	KindPurchaseBill: {
		Kind:   KindPurchaseBill,
		Page:   Size{W: 648, H: 396},
		Margin: 20,

		Header:            HeaderVoucher,
		Logo:              LogoCenter,
		LogoSize:          80,
		CounterpartyLabel: "จ่ายให้",
		PurposeLine:       "เพื่อชำระ: ค่าทุเรียน",
		ShowPayMethod:     true,
		ShowTime:          true,

		Body:           BodyWeighed,
		BodyHeading:    "รายการที่ซื้อ:",
		HeadingSize:    13,
		BodySize:       11,
		SubWeightLabel: "น้ำหนักต่อเข่ง",
		Unit:           "กก.",
		DeductionHeading: "รายการหัก:",

		ShowGross:   true,
		GrossLabel:  "รวมเงิน",
		DeductLabel: "หักเบิก",
		NetLabel:    "คงเหลือหลังหัก",
		TotalsAlign: AlignRight,
		TotalSize:   12,

		Signatures:     SignatureFlow,
		SignatureLeft:  "ผู้จ่ายเงิน",
		SignatureRight: "ผู้รับเงิน",
	},
	KindSellBill: {
		Kind:      KindSellBill,
		Page:      Size{W: 396, H: 648},
		Landscape: true,
		Margin:    20,

		Header:            HeaderVoucher,
		Logo:              LogoLeft,
		LogoSize:          70,
		CounterpartyLabel: "ลูกค้า",
		PurposeLine:       "รายการขายทุเรียน",
		ShowTime:          true,

		Title:     "ใบเสร็จการขายทุเรียน",
		TitleSize: 17,

		Body:           BodyWeighed,
		BodyHeading:    "รายการที่ขาย:",
		HeadingSize:    17,
		BodySize:       17,
		BodyBold:       true,
		SubWeightLabel: "เข่ง",
		Unit:           "กก.",
		DeductionHeading: "รายการหัก:",

		ShowGross:   true,
		GrossLabel:  "รวมเงิน",
		DeductLabel: "หักเบิก",
		NetLabel:    "คงเหลือหลังหัก",
		TotalsAlign: AlignCenter,
		TotalSize:   17,

		Signatures:     SignaturePinned,
		SignatureLeft:  "ผู้ขาย",
		SignatureRight: "ผู้รับเงิน",
	},
	KindCuttingBill: {
		Kind:      KindCuttingBill,
		Page:      Size{W: 396, H: 648},
		Landscape: true,
		Margin:    20,

		Header:            HeaderVoucher,
		Logo:              LogoLeft,
		LogoSize:          70,
		CounterpartyLabel: "สายตัด",

		Title:     "ใบรายการค่าตัดทุเรียน",
		TitleSize: 17,

		Body:                  BodyCutting,
		HeadingSize:           15,
		BodySize:              14,
		BodyBold:              true,
		Unit:                  "กก.",
		DeductionHeading:      "รายการหัก:",
		ExtraDeductionHeading: "รายการหักเพิ่มเติม:",

		GrossLabel:  "รวมเงิน",
		DeductLabel: "หักเบิก",
		NetLabel:    "ยอดสุทธิ",
		TotalsAlign: AlignRight,
		TotalSize:   18,

		Signatures:     SignaturePinned,
		SignatureLeft:  "ผู้จ่ายเงิน",
		SignatureRight: "ผู้รับเงิน",
	},
	KindPayroll: {
		Kind:      KindPayroll,
		Page:      Size{W: 396, H: 648},
		Landscape: true,
		Margin:    20,

		Header:            HeaderVoucher,
		Logo:              LogoLeft,
		LogoSize:          70,
		CounterpartyLabel: "จ่ายให้",
		PurposeLine:       "เพื่อชำระ: ค่าจ้างพนักงาน",
		ShowPayMethod:     true,

		Title:     "ใบสำคัญจ่าย PAYMENT VOUCHER",
		TitleSize: 17,
		Subtitle:  "ใบสรุปเงินเดือนพนักงาน",

		Body:             BodyPayroll,
		BodyHeading:      "รายละเอียดค่าจ้าง:",
		HeadingSize:      16,
		BodySize:         16,
		DeductionHeading: "รายละเอียดรายการหัก:",

		ShowGross:   true,
		GrossLabel:  "รวมทั้งหมด",
		DeductLabel: "หักเบิก",
		NetLabel:    "คงเหลือหลังหัก",
		TotalsAlign: AlignLeft,
		TotalSize:   16,

		Signatures:     SignaturePinned,
		SignatureLeft:  "ผู้จ่ายเงิน",
		SignatureRight: "ผู้รับเงิน",
	},
	KindPacking: {
		Kind:   KindPacking,
		Page:   a4,
		Margin: 40,

		Header:   HeaderSimple,
		LogoSize: 60,

		Title:     "ใบสรุปค่าแพ็คทุเรียน / Durian Packing Cost Summary",
		TitleSize: 16,

		Body:             BodyPriced,
		BodyHeading:      "รายละเอียดค่าแพ็ค:",
		HeadingSize:      13,
		BodySize:         12,
		Unit:             "กล่อง",
		DeductionHeading: "หักค่าของ / หักเบิก:",

		ShowGross:   true,
		GrossLabel:  "รวมค่ากล่อง",
		DeductLabel: "หักค่าของ / หักเบิก",
		NetLabel:    "คงเหลือที่ต้องจ่าย",
		TotalsAlign: AlignLeft,
		TotalSize:   12,

		Signatures:     SignatureFlow,
		SignatureLeft:  "ผู้จ่ายเงิน / Paid By",
		SignatureRight: "ผู้รับเงิน / Received By",
	},
	KindContainerLoading: {
		Kind:   KindContainerLoading,
		Page:   Size{W: 648, H: 396},
		Margin: 40,

		Header:   HeaderSimple,
		LogoSize: 60,

		Title:     "ใบสรุปค่าขึ้นตู้ทุเรียน / Durian Container Loading Cost Summary",
		TitleSize: 16,

		Body:             BodyPriced,
		BodyHeading:      "รายละเอียดค่าขึ้นตู้:",
		HeadingSize:      13,
		BodySize:         12,
		Unit:             "ตู้",
		DeductionHeading: "รายละเอียดหักเบิก:",

		ShowGross:   true,
		GrossLabel:  "รวมทั้งหมด",
		DeductLabel: "หักเบิก",
		NetLabel:    "คงเหลือหลังหัก",
		TotalsAlign: AlignLeft,
		TotalSize:   12,

		Signatures:     SignatureFlow,
		SignatureLeft:  "ผู้จ่ายเงิน / Paid By",
		SignatureRight: "ผู้รับเงิน / Received By",
	},
	KindChemicalDip: {
		Kind:   KindChemicalDip,
		Page:   Size{W: 648, H: 396},
		Margin: 40,

		Header:   HeaderSimple,
		LogoSize: 60,

		Title:     "ใบสรุปค่าชุบน้ำยาทุเรียน / Durian Chemical Dip Summary",
		TitleSize: 16,

		Body:             BodyChemical,
		BodyHeading:      "รายละเอียดค่าชุบน้ำยา:",
		HeadingSize:      15,
		BodySize:         19,
		Unit:             "ตัน",
		DeductionHeading: "รายการหัก:",

		ShowGross:   true,
		GrossLabel:  "รวมทั้งหมด",
		DeductLabel: "หักเบิก",
		NetLabel:    "คงเหลือหลังหัก",
		TotalsAlign: AlignLeft,
		TotalSize:   19,

		Signatures:     SignatureFlow,
		SignatureLeft:  "ผู้จ่ายเงิน / Paid By",
		SignatureRight: "ผู้รับเงิน / Received By",
	},
	KindExport: {
		Kind:   KindExport,
		Page:   a4,
		Margin: 30,

		Header:   HeaderSimple,
		LogoSize: 60,

		Title:     "ใบส่งออกทุเรียน SURIYA 388 / Durian Export Invoice - SURIYA 388",
		TitleSize: 16,

		Body:        BodyPriced,
		HeadingSize: 13,
		BodySize:    12,
		Unit:        "กล่อง",

		ShowGross:   true,
		GrossLabel:  "รวมยอด / Total",
		TotalsAlign: AlignRight,
		TotalSize:   13,

		Signatures: SignatureNone,
	},
}

// TemplateFor returns the layout template for a document kind.
func TemplateFor(kind Kind) (Template, bool) {
	t, ok := templates[kind]
	return t, ok
}

// Kinds returns every kind with a registered template.
func Kinds() []Kind {
	out := make([]Kind, 0, len(templates))
	for k := range templates {
		out = append(out, k)
	}
	return out
}
