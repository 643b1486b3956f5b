package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyInsurance(t *testing.T) {
	tests := []struct {
		label string
		want  InsuranceCategory
	}{
		{"社保", CategoryShaho},
		{"国保", CategoryKokuho},
		{"後期", CategoryKouki},
		{"保険なし", CategoryHokenNashi},
		{"社保 本人", CategoryShaho},
		{"後期高齢", CategoryKouki},
		{"社家 乳無", CategoryOther},
		{"労災", CategoryOther},
		{"", CategoryOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyInsurance(tt.label), "label %q", tt.label)
	}
}

func TestClassifyInsurancePriorityOrder(t *testing.T) {
	// A label carrying two markers classifies as the earlier one.
	assert.Equal(t, CategoryShaho, ClassifyInsurance("社保 国保"))
	assert.Equal(t, CategoryKokuho, ClassifyInsurance("国保 後期"))
}
