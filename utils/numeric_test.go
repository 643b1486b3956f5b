package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeInt(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"plain digits", "1234", 1234},
		{"thousands separators", "1,234,567", 1234567},
		{"surrounding spaces", "  1,500  ", 1500},
		{"interior newline", "1,\n500", 1500},
		{"interior spaces", "1 500", 1500},
		{"negative", "-500", -500},
		{"negative with commas", "-1,234", -1234},
		{"zero", "0", 0},
		{"percentage label", "30%", 0},
		{"letters", "abc", 0},
		{"negative garbage", "-abc", 0},
		{"lone minus", "-", 0},
		{"mixed", "12a4", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeInt(tt.input))
		})
	}
}

func TestSafeText(t *testing.T) {
	assert.Equal(t, "", SafeText(""))
	assert.Equal(t, "再初診", SafeText("再初診"))
	assert.Equal(t, "社家 乳無", SafeText("社家\n乳無"))
	assert.Equal(t, "一 二 三", SafeText("  一  \n\n 二 \n三"))
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, SplitLines(""))
	assert.Equal(t, []string{"No.10003", "佐藤次郎"}, SplitLines("No.10003\n佐藤次郎"))
	assert.Equal(t, []string{"a"}, SplitLines("\n a \n \n"))
}
