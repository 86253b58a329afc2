package model_test

import (
	"testing"

	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestDecodeLineItems_Empty(t *testing.T) {
	items, dropped := model.DecodeLineItems("")
	assert.Equal(t, []model.LineItem{}, items)
	assert.Empty(t, dropped)
}

func TestDecodeLineItems_TwoItems(t *testing.T) {
	items, dropped := model.DecodeLineItems("33944:6;34080:2")
	assert.Equal(t, []model.LineItem{
		{ProductID: 33944, Quantity: 6},
		{ProductID: 34080, Quantity: 2},
	}, items)
	assert.Empty(t, dropped)
}

func TestDecodeLineItems_TrailingSeparator(t *testing.T) {
	items, dropped := model.DecodeLineItems("33944:6;34080:2;")
	assert.Equal(t, []model.LineItem{
		{ProductID: 33944, Quantity: 6},
		{ProductID: 34080, Quantity: 2},
	}, items)
	assert.Empty(t, dropped)
}

func TestDecodeLineItems_NonIntegerIDDropped(t *testing.T) {
	items, dropped := model.DecodeLineItems("abc:6;34080:2")
	assert.Equal(t, []model.LineItem{{ProductID: 34080, Quantity: 2}}, items)
	assert.Equal(t, []string{"abc:6"}, dropped)
}

func TestDecodeLineItems_NonIntegerQuantityDropped(t *testing.T) {
	items, dropped := model.DecodeLineItems("33944:x;34080:2")
	assert.Equal(t, []model.LineItem{{ProductID: 34080, Quantity: 2}}, items)
	assert.Equal(t, []string{"33944:x"}, dropped)
}

func TestDecodeLineItems_NoColonDropped(t *testing.T) {
	items, dropped := model.DecodeLineItems("33944-6")
	assert.Equal(t, []model.LineItem{}, items)
	assert.Equal(t, []string{"33944-6"}, dropped)
}

func TestDecodeLineItems_SplitsOnFirstColon(t *testing.T) {
	//2つ目以降の ':' は数量側に残って数値にならない
	items, dropped := model.DecodeLineItems("1:2:3;4:5")
	assert.Equal(t, []model.LineItem{{ProductID: 4, Quantity: 5}}, items)
	assert.Equal(t, []string{"1:2:3"}, dropped)
}

func TestDecodeLineItems_EmptySegmentsSkipped(t *testing.T) {
	//空セグメントは捨て扱いにもしない
	items, dropped := model.DecodeLineItems("1:2;;3:4")
	assert.Equal(t, []model.LineItem{
		{ProductID: 1, Quantity: 2},
		{ProductID: 3, Quantity: 4},
	}, items)
	assert.Empty(t, dropped)
}

func TestDecodeLineItems_OrderPreserved(t *testing.T) {
	items, _ := model.DecodeLineItems("9:1;3:1;7:1;1:1")
	ids := make([]int64, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	assert.Equal(t, []int64{9, 3, 7, 1}, ids)
}

func TestDecodeLineItems_AllMalformed(t *testing.T) {
	items, dropped := model.DecodeLineItems("a;b;c")
	assert.Equal(t, []model.LineItem{}, items)
	assert.Len(t, dropped, 3)
}
