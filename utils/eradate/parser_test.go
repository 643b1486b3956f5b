package eradate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"standard date", "令和7年1月15日", "2025-01-15"},
		{"spaces between tokens", "令和 7 年 1 月 15 日", "2025-01-15"},
		{"extra spaces", "令和  7  年  1  月  15  日", "2025-01-15"},
		{"reiwa 1 is 2019", "令和1年4月1日", "2019-04-01"},
		{"december", "令和6年12月31日", "2024-12-31"},
		{"embedded in surrounding text", "○○医院  日計表\n令和7年3月20日\n受付一覧", "2025-03-20"},
		{"zero padding", "令和7年2月5日", "2025-02-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.text))
		})
	}
}

func TestResolveFallsBackToToday(t *testing.T) {
	today := time.Now().Format("2006-01-02")

	assert.Equal(t, today, Resolve(""))
	assert.Equal(t, today, Resolve("このページには日付がありません"))
}
