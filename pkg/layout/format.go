package layout

import (
	"strconv"
	"strings"
	"time"
)

// Vouchers print dates in the Thai Buddhist calendar, Bangkok time.
var bangkok = time.FixedZone("Asia/Bangkok", 7*60*60)

var thaiMonths = [12]string{
	"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน",
	"กรกฎาคม", "สิงหาคม", "กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม",
}

var thaiMonthsShort = [12]string{
	"ม.ค.", "ก.พ.", "มี.ค.", "เม.ย.", "พ.ค.", "มิ.ย.",
	"ก.ค.", "ส.ค.", "ก.ย.", "ต.ค.", "พ.ย.", "ธ.ค.",
}

// ThaiDate formats t as a long Thai date with the Buddhist-era year,
// e.g. "15 สิงหาคม 2568".
func ThaiDate(t time.Time) string {
	t = t.In(bangkok)
	return strconv.Itoa(t.Day()) + " " + thaiMonths[t.Month()-1] + " " + strconv.Itoa(t.Year()+543)
}

// ThaiDateShort formats t with an abbreviated month, e.g. "15 ส.ค. 2568".
func ThaiDateShort(t time.Time) string {
	t = t.In(bangkok)
	return strconv.Itoa(t.Day()) + " " + thaiMonthsShort[t.Month()-1] + " " + strconv.Itoa(t.Year()+543)
}

// ThaiTime formats the clock part of t in Bangkok time, e.g. "14:05".
func ThaiTime(t time.Time) string {
	return t.In(bangkok).Format("15:04")
}

// Money formats an amount with thousands separators, up to three fraction
// digits, trailing zeros trimmed: 29500 → "29,500", 29500/900 → "32.778".
func Money(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")

	intPart := s
	fracPart := ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, fracPart = s[:dot], s[dot:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	b.WriteString(fracPart)
	return b.String()
}

// Num formats a quantity or unit price the way the clerk typed it: no
// separators, no trailing zeros (100 → "100", 12.5 → "12.5").
func Num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
