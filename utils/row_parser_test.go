package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcceptRow(t *testing.T) {
	tests := []struct {
		name string
		row  []string
		want bool
	}{
		{"data row", []string{"3", "佐藤次郎"}, true},
		{"padded number", []string{" 12 ", "x"}, true},
		{"total row", []string{"合計", "53"}, false},
		{"category row", []string{"社保", "25"}, false},
		{"revisit recap row", []string{"訪問（再掲）", "2"}, false},
		{"header row", []string{"受付番号", "患者名"}, false},
		{"blank first cell", []string{"", "x"}, false},
		{"too short", []string{"3"}, false},
		{"empty row", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AcceptRow(tt.row))
		})
	}
}

func TestParseLineItemMultiLineIdentityCell(t *testing.T) {
	row := []string{
		"3",
		"No.10003\n佐藤次郎",
		"社家 乳無",
		"200",
		"0%\n0",
		"", "",
		"3000",
		"",
		"",
		"3000",
		"0",
	}

	item, err := ParseLineItem(row)
	require.NoError(t, err)

	assert.Equal(t, 3, item.Number)
	assert.Equal(t, "No.10003", item.PatientID)
	assert.Equal(t, "佐藤次郎", item.Name)
	assert.Equal(t, "社家 乳無", item.InsuranceType)
	assert.Equal(t, 200, item.Points)
	assert.Equal(t, 0, item.BurdenAmount)
	assert.Equal(t, 3000, item.Jihi)
	assert.Equal(t, 3000, item.ReceiptAmount)
	assert.Equal(t, 0, item.Sagaku)
}

func TestParseLineItemIdentityInFirstCell(t *testing.T) {
	// Some report revisions pack number, id, and name into the first cell.
	row := []string{
		"5\nNo.20001\n山田太郎",
		"",
		"国保",
		"300",
		"30%\n900",
		"", "", "", "", "", "1,000", "100",
	}

	item, err := ParseLineItem(row)
	require.NoError(t, err)

	assert.Equal(t, 5, item.Number)
	assert.Equal(t, "No.20001", item.PatientID)
	assert.Equal(t, "山田太郎", item.Name)
	assert.Equal(t, 900, item.BurdenAmount)
	assert.Equal(t, 1000, item.ReceiptAmount)
	assert.Equal(t, 100, item.Sagaku)
}

func TestParseLineItemBurdenCellTakesFirstNumericLine(t *testing.T) {
	row := []string{"1", "鈴木花子", "社保", "500", "30%\n1,500", "", "", "", "", "", "1,500", "0"}

	item, err := ParseLineItem(row)
	require.NoError(t, err)

	assert.Equal(t, 1500, item.BurdenAmount)
}

func TestParseLineItemNegativeDifference(t *testing.T) {
	row := []string{"7", "田中一郎", "後期", "420", "1,260", "", "", "", "", "-200", "1,060", "-500"}

	item, err := ParseLineItem(row)
	require.NoError(t, err)

	assert.Equal(t, -200, item.ZenkaiSagaku)
	assert.Equal(t, -500, item.Sagaku)
}

func TestParseLineItemShortRowZeroFills(t *testing.T) {
	// Narrow rows from older report revisions zero-fill the missing cells.
	item, err := ParseLineItem([]string{"2", "高橋三郎", "社保", "150"})
	require.NoError(t, err)

	assert.Equal(t, 2, item.Number)
	assert.Equal(t, 150, item.Points)
	assert.Equal(t, 0, item.BurdenAmount)
	assert.Equal(t, 0, item.ReceiptAmount)
	assert.Equal(t, "", item.Remarks)
}

func TestParseLineItemRemarksColumn(t *testing.T) {
	row := []string{"4", "伊藤桜", "社保", "100", "300", "", "", "", "", "", "300", "0", "次回\n予約あり"}

	item, err := ParseLineItem(row)
	require.NoError(t, err)

	assert.Equal(t, "次回 予約あり", item.Remarks)
}

func TestParseLineItemNoName(t *testing.T) {
	row := []string{"9", "No.30005", "国保", "210", "630", "", "", "", "", "", "630", "0"}

	item, err := ParseLineItem(row)
	require.NoError(t, err)

	assert.Equal(t, "No.30005", item.PatientID)
	assert.Equal(t, "", item.Name)
}

func TestParseLineItemUnusableRow(t *testing.T) {
	_, err := ParseLineItem([]string{"3"})
	assert.Error(t, err)

	_, err = ParseLineItem([]string{"", "名前だけ"})
	assert.Error(t, err)
}
