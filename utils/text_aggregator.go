package utils

import (
	"regexp"
	"strings"

	"github.com/h4mmerjp/nikkeihyou/dto"
)

// categoryRowPattern matches a printed category total row:
// label, count, point total, burden amount, e.g. "社保 10 50,000 30,000".
func categoryRowPattern(label string) *regexp.Regexp {
	return regexp.MustCompile(label + `\s+(\d+)\s+[\d,]+\s+([\d,]+)`)
}

var (
	shahoRowRegex      = categoryRowPattern("社保")
	kokuhoRowRegex     = categoryRowPattern("国保")
	koukiRowRegex      = categoryRowPattern("後期")
	hokenNashiRowRegex = categoryRowPattern("保険なし")
	totalRowRegex      = categoryRowPattern("合計")

	jihiRegex   = regexp.MustCompile(`自費\s+([\d,]+)`)
	bushanRegex = regexp.MustCompile(`物販合計\s+([\d,]+)`)
	// 介護 appears with variable wording ("介護保険 請求額 30,000"); take the
	// nearest following amount.
	kaigoRegex = regexp.MustCompile(`介護.*?([\d,]+)`)
)

// grandTotalLayout describes the column contract of the full-width 合計 row.
// The row prints count, point total, and amount followed by ten
// whitespace-separated numeric groups whose meaning is purely positional;
// a report layout change is a change to this descriptor, not to code.
type grandTotalLayout struct {
	version string
	// groups are the capture patterns after the 合計 label, in print order.
	groups []string
	// 1-based indexes into groups.
	selfPayGroup   int
	priorDiffGroup int
}

// Layout of the current report family: count, points, amount, two zero
// columns, 自費, 物販, 前回差額 (signed), 領収額, 差額 (signed).
var currentGrandTotalLayout = grandTotalLayout{
	version: "r7",
	groups: []string{
		`(\d+)`,      // 1: count
		`([\d,]+)`,   // 2: point total
		`([\d,]+)`,   // 3: burden amount
		`(\d+)`,      // 4: kaigo units
		`(\d+)`,      // 5: kaigo burden
		`([\d,]+)`,   // 6: jihi
		`([\d,]+)`,   // 7: bushan
		`(-?[\d,]+)`, // 8: zenkai sagaku
		`([\d,]+)`,   // 9: receipt amount
		`(-?\d+)`,    // 10: sagaku
	},
	selfPayGroup:   6,
	priorDiffGroup: 8,
}

func (l grandTotalLayout) compile() *regexp.Regexp {
	return regexp.MustCompile(`合計\s+` + strings.Join(l.groups, `\s+`))
}

var grandTotalRegex = currentGrandTotalLayout.compile()

// AggregateText derives a ReportSummary from the concatenated page text
// using positional and labeled patterns. Subtotal rows may precede the
// grand totals, so for each category the last match is authoritative. Any
// pattern that does not match leaves its field at zero; a missing label is
// normal on thin reports, not an error.
func AggregateText(pageTexts []string) dto.ReportSummary {
	allText := strings.Join(pageTexts, "\n")

	var summary dto.ReportSummary

	categoryRows := []struct {
		re     *regexp.Regexp
		count  *int
		amount *int
	}{
		{shahoRowRegex, &summary.ShahoCount, &summary.ShahoAmount},
		{kokuhoRowRegex, &summary.KokuhoCount, &summary.KokuhoAmount},
		{koukiRowRegex, &summary.KoukiCount, &summary.KoukiAmount},
		{hokenNashiRowRegex, &summary.HokenNashiCount, &summary.HokenNashiAmount},
	}
	for _, row := range categoryRows {
		matches := row.re.FindAllStringSubmatch(allText, -1)
		if len(matches) == 0 {
			continue
		}
		last := matches[len(matches)-1]
		*row.count = SafeInt(last[1])
		*row.amount = SafeInt(last[2])
	}

	if m := totalRowRegex.FindStringSubmatch(allText); m != nil {
		summary.TotalCount = SafeInt(m[1])
		summary.TotalAmount = SafeInt(m[2])
	}

	// 自費 and 前回差額 come from the full-width 合計 row by column position.
	// When that row is absent or reflowed, fall back to the labeled 自費
	// pattern and leave 前回差額 at zero.
	if m := grandTotalRegex.FindStringSubmatch(allText); m != nil {
		summary.JihiAmount = SafeInt(m[currentGrandTotalLayout.selfPayGroup])
		summary.ZenkaiSagaku = SafeInt(m[currentGrandTotalLayout.priorDiffGroup])
	} else if m := jihiRegex.FindStringSubmatch(allText); m != nil {
		summary.JihiAmount = SafeInt(m[1])
	}

	if m := bushanRegex.FindStringSubmatch(allText); m != nil {
		summary.BushanAmount = SafeInt(m[1])
	}
	if m := kaigoRegex.FindStringSubmatch(allText); m != nil {
		summary.KaigoAmount = SafeInt(m[1])
	}

	summary.InsuredCount = summary.ShahoCount + summary.KokuhoCount +
		summary.KoukiCount + summary.HokenNashiCount

	return summary
}
