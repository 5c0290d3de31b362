package layout

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// LogoAsset is the asset name the engine emits for the company logo. The
// renderer resolves it against the configured asset store.
const LogoAsset = "logo"

const payMethodLine = "โดย: ___ เงินสด   ___ โอนผ่านบัญชีธนาคาร"

// Company is the identity block printed in voucher headers.
type Company struct {
	Name    string
	Address string
	Phone   string
}

// Engine lays a voucher out against its kind's template. It performs no
// arithmetic: every money figure on the page comes from the voucher.
type Engine struct {
	company Company
}

func NewEngine(company Company) *Engine {
	return &Engine{company: company}
}

// Render produces the instruction stream for one voucher. A *LayoutError is
// returned, with no instructions emitted, when a field a required slot of the
// template needs is absent.
func (e *Engine) Render(v *Voucher) (*Document, error) {
	tpl, ok := TemplateFor(v.Kind)
	if !ok {
		return nil, &LayoutError{Field: "kind"}
	}
	if err := checkRequired(tpl, v); err != nil {
		return nil, err
	}

	page := NewPage(tpl.PageSize(), tpl.Margin)

	switch tpl.Header {
	case HeaderVoucher:
		e.voucherHeader(page, tpl, v)
	case HeaderSimple:
		e.simpleHeader(page, tpl, v)
	}

	title(page, tpl)
	body(page, tpl, v)
	deductions(page, tpl, v)
	totals(page, tpl, v)
	note(page, v)
	signatures(page, tpl)

	return page.Document(), nil
}

// checkRequired rejects vouchers missing a field the template prints into a
// required slot, before anything is emitted.
func checkRequired(tpl Template, v *Voucher) error {
	if v.Date.IsZero() {
		return &LayoutError{Field: "date"}
	}
	if tpl.CounterpartyLabel != "" && v.Counterparty == "" {
		return &LayoutError{Field: "counterparty"}
	}
	switch tpl.Body {
	case BodyCutting:
		if v.PeriodStart.IsZero() || v.PeriodEnd.IsZero() {
			return &LayoutError{Field: "period"}
		}
	case BodyPayroll:
		if v.PayType == "" {
			return &LayoutError{Field: "payType"}
		}
	}
	return nil
}

// voucherHeader draws the three-column header: record metadata on the left,
// logo and company identity to the right of it (LogoLeft) or metadata left of
// a centered logo with the identity on the far right (LogoCenter).
func (e *Engine) voucherHeader(p *Page, tpl Template, v *Voucher) {
	top := tpl.Margin
	size := tpl.PageSize()

	var metaX, logoX, companyX float64
	switch tpl.Logo {
	case LogoCenter:
		metaX = tpl.Margin
		logoX = size.W/2 - tpl.LogoSize/2 + 16
		companyX = logoX + tpl.LogoSize + 10
	default: // LogoLeft
		logoX = tpl.Margin
		companyX = logoX + tpl.LogoSize + 15
		metaX = companyX + 250
	}

	p.Image(LogoAsset, logoX, top+5, tpl.LogoSize, tpl.LogoSize)

	companySize := 11.0
	if tpl.Logo == LogoLeft {
		companySize = 13
	}
	p.SetFont(Bold, companySize+1).TextAt(e.company.Name, companyX, top)
	p.SetFont(Regular, companySize)
	p.TextAt(e.company.Address, companyX, top+18)
	p.TextAt("โทร: "+e.company.Phone, companyX, top+36)

	p.SetFont(Regular, 11)
	y := top
	for _, line := range headerMeta(tpl, v) {
		p.TextAt(line, metaX, y)
		y += 15
	}

	p.SetY(top + tpl.LogoSize + 15)
}

// headerMeta builds the metadata column: voucher number and counterparty,
// then pay method and purpose, then the print date.
func headerMeta(tpl Template, v *Voucher) []string {
	lines := []string{
		fmt.Sprintf("รหัสบิล: %s    %s: %s", v.VoucherNo, tpl.CounterpartyLabel, v.Counterparty),
	}
	switch {
	case tpl.ShowPayMethod && tpl.PurposeLine != "":
		lines = append(lines, payMethodLine+"   "+tpl.PurposeLine)
	case tpl.ShowPayMethod:
		lines = append(lines, payMethodLine)
	case tpl.PurposeLine != "":
		lines = append(lines, tpl.PurposeLine)
	}
	date := "วันที่: " + ThaiDate(v.Date)
	if tpl.ShowTime {
		date += " เวลา: " + ThaiTime(v.Date) + " น."
	}
	return append(lines, date)
}

// simpleHeader draws the cost-summary header: corner logo, centered title,
// date line and any extra meta lines.
func (e *Engine) simpleHeader(p *Page, tpl Template, v *Voucher) {
	p.Image(LogoAsset, tpl.Margin, tpl.Margin-10, tpl.LogoSize, tpl.LogoSize)

	p.SetFont(Bold, tpl.TitleSize).TextCentered(tpl.Title)
	underlineCentered(p, tpl.Title, tpl.TitleSize)
	p.MoveDown(0.5)

	p.SetFont(Regular, 12)
	p.Text("วันที่: " + ThaiDate(v.Date))
	for _, m := range v.Meta {
		p.Text(m)
	}
	p.MoveDown(0.5)
}

// title draws the centered underlined title of voucher-header documents. The
// simple header already carries its own.
func title(p *Page, tpl Template) {
	if tpl.Header != HeaderVoucher || tpl.Title == "" {
		return
	}
	p.SetFont(Bold, tpl.TitleSize).TextCentered(tpl.Title)
	underlineCentered(p, tpl.Title, tpl.TitleSize)
	if tpl.Subtitle != "" {
		p.SetFont(Regular, tpl.TitleSize-1).Text(tpl.Subtitle)
	}
	p.MoveDown(0.3)
}

func body(p *Page, tpl Template, v *Voucher) {
	switch tpl.Body {
	case BodyWeighed:
		weighedBody(p, tpl, v)
	case BodyCutting:
		cuttingBody(p, tpl, v)
	case BodyPayroll:
		payrollBody(p, tpl, v)
	case BodyPriced:
		pricedBody(p, tpl, v)
	case BodyChemical:
		chemicalBody(p, tpl, v)
	}
}

func bodyStyle(tpl Template) Style {
	if tpl.BodyBold {
		return Bold
	}
	return Regular
}

func heading(p *Page, tpl Template, text string, underline bool) {
	if text == "" {
		return
	}
	p.SetFont(Bold, tpl.HeadingSize).Text(text)
	if underline {
		w := textWidth(text, tpl.HeadingSize)
		p.Rule(tpl.Margin, p.Y()-3, w)
	}
}

func weighedBody(p *Page, tpl Template, v *Voucher) {
	heading(p, tpl, tpl.BodyHeading, false)
	p.SetFont(bodyStyle(tpl), tpl.BodySize)
	for i, it := range v.Items {
		sub := "-"
		if len(it.SubWeights) > 0 {
			parts := make([]string, len(it.SubWeights))
			for j, w := range it.SubWeights {
				parts[j] = Num(w)
			}
			sub = strings.Join(parts, " + ")
		}
		p.Text(fmt.Sprintf("%d. %s | %s: %s %s | น้ำหนักรวม: %s %s × %s = %s บาท",
			i+1, it.Label, tpl.SubWeightLabel, sub, tpl.Unit,
			Num(it.Quantity), tpl.Unit, Num(it.UnitPrice), Money(it.Subtotal)))
	}
	p.MoveDown(0.5)
}

func cuttingBody(p *Page, tpl Template, v *Voucher) {
	p.SetFont(Bold, tpl.BodySize)
	p.Text(fmt.Sprintf("ช่วงวันที่: %s - %s", ThaiDateShort(v.PeriodStart), ThaiDateShort(v.PeriodEnd)))
	p.MoveDown(0.3)
	for _, it := range v.Items {
		p.Text(fmt.Sprintf("น้ำหนักรวม: %s %s × %s บาท = %s บาท",
			Num(it.Quantity), tpl.Unit, Num(it.UnitPrice), Money(it.Subtotal)))
	}
	p.MoveDown(0.5)
}

func payrollBody(p *Page, tpl Template, v *Voucher) {
	heading(p, tpl, tpl.BodyHeading, false)
	p.SetFont(Regular, tpl.BodySize)
	if v.PayType == "รายเดือน" {
		p.Text(fmt.Sprintf("รายเดือน: %s บาท × %s เดือน = %s บาท",
			Money(v.MonthlySalary), Num(v.Months), Money(v.Gross)))
	} else {
		p.Text(fmt.Sprintf("รายวัน: %s วัน × %s บาท = %s บาท",
			Num(v.WorkDays), Money(v.PricePerDay), Money(v.Gross)))
	}
	p.MoveDown(0.5)
}

func pricedBody(p *Page, tpl Template, v *Voucher) {
	sections := v.Sections
	if len(sections) == 0 {
		sections = []Section{{Heading: tpl.BodyHeading, Items: v.Items}}
	}
	for _, sec := range sections {
		heading(p, tpl, sec.Heading, true)
		p.SetFont(Regular, tpl.BodySize)
		for _, it := range sec.Items {
			if it.Breakdown != "" {
				p.Text(it.Label + ": " + it.Breakdown)
				continue
			}
			p.Text(fmt.Sprintf("%s: %s %s × %s บาท = %s บาท",
				it.Label, Num(it.Quantity), tpl.Unit, Num(it.UnitPrice), Money(it.Subtotal)))
		}
		p.MoveDown(0.5)
	}
}

func chemicalBody(p *Page, tpl Template, v *Voucher) {
	heading(p, tpl, tpl.BodyHeading, true)
	p.SetFont(Regular, tpl.BodySize)
	for _, it := range v.Items {
		p.Text(fmt.Sprintf("น้ำหนักทุเรียน: %s %s", Num(it.Quantity), tpl.Unit))
		p.Text(fmt.Sprintf("ราคาต่อ%s: %s บาท", tpl.Unit, Money(it.UnitPrice)))
	}
	p.MoveDown(0.3)
}

// deductions prints the deduction rows. Kinds with an extra heading print two
// blocks, each numbered from 1, matching the archived cutting vouchers; on
// every other kind extra rows merge into the single block.
func deductions(p *Page, tpl Template, v *Voucher) {
	if tpl.DeductionHeading == "" {
		return
	}
	primary := make([]DeductionLine, 0, len(v.Deductions))
	var extra []DeductionLine
	for _, d := range v.Deductions {
		if d.Extra && tpl.ExtraDeductionHeading != "" {
			extra = append(extra, d)
			continue
		}
		primary = append(primary, d)
	}
	deductionBlock(p, tpl, tpl.DeductionHeading, primary)
	deductionBlock(p, tpl, tpl.ExtraDeductionHeading, extra)
}

func deductionBlock(p *Page, tpl Template, heading string, rows []DeductionLine) {
	if len(rows) == 0 {
		return
	}
	p.SetFont(Bold, tpl.HeadingSize).Text(heading)
	p.SetFont(Regular, tpl.BodySize)
	for i, d := range rows {
		if d.Quantity > 0 {
			p.Text(fmt.Sprintf("%d. %s - %s × %s = %s บาท",
				i+1, d.Label, Num(d.Quantity), Money(d.UnitPrice), Money(d.Amount)))
			continue
		}
		p.Text(fmt.Sprintf("%d. %s: %s บาท", i+1, d.Label, Money(d.Amount)))
	}
	p.MoveDown(0.5)
}

// totals prints the gross line and, when deductions were applied, the
// deduction and net lines. Templates without a gross line always print net.
func totals(p *Page, tpl Template, v *Voucher) {
	lines := make([]string, 0, 3)
	if tpl.ShowGross {
		lines = append(lines, fmt.Sprintf("%s: %s บาท", tpl.GrossLabel, Money(v.Gross)))
		if v.TotalDeduction > 0 {
			lines = append(lines,
				fmt.Sprintf("%s: %s บาท", tpl.DeductLabel, Money(v.TotalDeduction)),
				fmt.Sprintf("%s: %s บาท", tpl.NetLabel, Money(v.Net)))
		}
	} else {
		if v.TotalDeduction > 0 {
			lines = append(lines,
				fmt.Sprintf("%s: %s บาท", tpl.GrossLabel, Money(v.Gross)),
				fmt.Sprintf("%s: %s บาท", tpl.DeductLabel, Money(v.TotalDeduction)))
		}
		lines = append(lines, fmt.Sprintf("%s: %s บาท", tpl.NetLabel, Money(v.Net)))
	}

	p.SetFont(Bold, tpl.TotalSize)
	for _, line := range lines {
		switch tpl.TotalsAlign {
		case AlignRight:
			p.TextRight(line)
		case AlignCenter:
			p.TextCentered(line)
		default:
			p.Text(line)
		}
	}
}

func note(p *Page, v *Voucher) {
	if v.Note == "" {
		return
	}
	p.MoveDown(0.7)
	if v.NoteHeading != "" {
		p.SetFont(Bold, 14).Text(v.NoteHeading)
		p.Rule(p.Document().Margin, p.Y()-3, textWidth(v.NoteHeading, 14))
	}
	p.SetFont(Regular, 12)
	for _, line := range strings.Split(v.Note, "\n") {
		p.Text(line)
	}
}

// signatures draws the two signature columns. Pinned mode anchors them near
// the bottom edge so a long body never pushes them off the sheet.
func signatures(p *Page, tpl Template) {
	if tpl.Signatures == SignatureNone {
		return
	}
	var y float64
	switch tpl.Signatures {
	case SignaturePinned:
		y = p.Document().Page.H - 60
	default:
		p.MoveDown(1.5)
		y = p.Y()
	}

	p.SetFont(Regular, 11)
	for _, col := range []struct {
		x     float64
		label string
	}{
		{40, tpl.SignatureLeft},
		{340, tpl.SignatureRight},
	} {
		p.TextAt("ลงชื่อ ...............................................", col.x, y)
		p.TextAt("( "+col.label+" )", col.x+20, y+15)
		p.TextAt("ลงวันที่: ........../........../..........", col.x, y+30)
	}
}

func underlineCentered(p *Page, text string, size float64) {
	w := textWidth(text, size)
	pageW := p.Document().Page.W
	if w > pageW-2*p.Document().Margin {
		w = pageW - 2*p.Document().Margin
	}
	p.Rule((pageW-w)/2, p.Y()-3, w)
}

// textWidth estimates rendered width for rule sizing. Thai glyphs in the
// voucher face average about half an em, which is close enough for an
// underline.
func textWidth(s string, size float64) float64 {
	return float64(utf8.RuneCountInString(s)) * size * 0.5
}
