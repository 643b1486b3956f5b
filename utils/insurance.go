package utils

import "strings"

// InsuranceCategory is the classified insurance bucket of a line item.
type InsuranceCategory string

const (
	CategoryShaho      InsuranceCategory = "shaho"       // 社保 employer-based
	CategoryKokuho     InsuranceCategory = "kokuho"      // 国保 municipal
	CategoryKouki      InsuranceCategory = "kouki"       // 後期 late-stage elderly
	CategoryHokenNashi InsuranceCategory = "hoken_nashi" // 保険なし uninsured
	CategoryOther      InsuranceCategory = "other"
)

// categoryMarkers is the classification priority order: the first marker
// contained in the label wins, so a label carrying both 社保 and 国保
// classifies as 社保.
var categoryMarkers = []struct {
	marker   string
	category InsuranceCategory
}{
	{"社保", CategoryShaho},
	{"国保", CategoryKokuho},
	{"後期", CategoryKouki},
	{"保険なし", CategoryHokenNashi},
}

// ClassifyInsurance maps the raw 保険種別 label of a line item to one of the
// four recognized categories by substring containment. Empty or unknown
// labels classify as CategoryOther, which is excluded from insured totals
// but still counts toward the line-item count.
func ClassifyInsurance(label string) InsuranceCategory {
	for _, cm := range categoryMarkers {
		if strings.Contains(label, cm.marker) {
			return cm.category
		}
	}
	return CategoryOther
}
