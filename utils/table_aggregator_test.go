package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/h4mmerjp/nikkeihyou/dto"
)

func TestAggregateLineItemsCategoryGrouping(t *testing.T) {
	items := []dto.LineItem{
		{Number: 1, InsuranceType: "社保", Points: 500, BurdenAmount: 1500, ReceiptAmount: 1500},
		{Number: 2, InsuranceType: "社保 本人", Points: 300, BurdenAmount: 900, ReceiptAmount: 900},
		{Number: 3, InsuranceType: "国保", Points: 400, BurdenAmount: 1200, ReceiptAmount: 1200},
		{Number: 4, InsuranceType: "後期高齢", Points: 420, BurdenAmount: 420, ReceiptAmount: 420},
		{Number: 5, InsuranceType: "保険なし", Points: 0, BurdenAmount: 0, ReceiptAmount: 5000, Jihi: 5000},
	}

	s := AggregateLineItems(items)

	assert.Equal(t, 2, s.ShahoCount)
	assert.Equal(t, 800, s.ShahoPoints)
	assert.Equal(t, 2400, s.ShahoAmount)
	assert.Equal(t, 1, s.KokuhoCount)
	assert.Equal(t, 400, s.KokuhoPoints)
	assert.Equal(t, 1200, s.KokuhoAmount)
	assert.Equal(t, 1, s.KoukiCount)
	assert.Equal(t, 1, s.HokenNashiCount)
	assert.Equal(t, 5, s.InsuredCount)
	assert.Equal(t, 5, s.TotalCount)
	assert.Equal(t, 5, s.LineItemCount)
}

func TestAggregateLineItemsOtherCategoryStillCounted(t *testing.T) {
	// A 労災 or 社家 item joins no insured bucket but its money still flows
	// into the cross-cutting sums and the line item count.
	items := []dto.LineItem{
		{Number: 1, InsuranceType: "社保", Points: 100, BurdenAmount: 300, ReceiptAmount: 300},
		{Number: 2, InsuranceType: "社家 乳無", Jihi: 3000, ReceiptAmount: 3000},
	}

	s := AggregateLineItems(items)

	assert.Equal(t, 1, s.ShahoCount)
	assert.Equal(t, 1, s.InsuredCount)
	assert.Equal(t, 2, s.TotalCount)
	assert.Equal(t, 2, s.LineItemCount)
	assert.Equal(t, 3000, s.JihiAmount)
	assert.Equal(t, 3300, s.ReceiptTotal)
}

func TestAggregateLineItemsCrossCuttingSums(t *testing.T) {
	items := []dto.LineItem{
		{Number: 1, InsuranceType: "社保", BurdenAmount: 1000, Jihi: 500, Bushan: 800, KaigoBurden: 200, ZenkaiSagaku: -300, ReceiptAmount: 2200},
		{Number: 2, InsuranceType: "国保", BurdenAmount: 600, Bushan: 200, ZenkaiSagaku: 100, ReceiptAmount: 900},
	}

	s := AggregateLineItems(items)

	assert.Equal(t, 1600, s.TotalAmount)
	assert.Equal(t, 500, s.JihiAmount)
	assert.Equal(t, 1000, s.BushanAmount)
	assert.Equal(t, 200, s.KaigoAmount)
	assert.Equal(t, -200, s.ZenkaiSagaku)
	assert.Equal(t, 3100, s.ReceiptTotal)
}

func TestAggregateLineItemsEmpty(t *testing.T) {
	s := AggregateLineItems(nil)

	assert.Equal(t, 0, s.LineItemCount)
	assert.Equal(t, 0, s.TotalCount)
	assert.Equal(t, 0, s.InsuredCount)
	assert.Equal(t, 0, s.ReceiptTotal)
}
