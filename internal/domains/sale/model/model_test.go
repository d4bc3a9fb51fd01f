package model_test

import (
	"testing"
	"time"

	"hotel/internal/domains/sale/model"
	"hotel/shared/constant"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func sale(category string, amount int64) model.Sale {
	return model.Sale{Category: category, Amount: decimal.NewFromInt(amount)}
}

func TestSummarize(t *testing.T) {
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("food and room", func(t *testing.T) {
		summary := model.Summarize("emp-1", date, []model.Sale{
			sale(constant.CategoryFood, 20),
			sale(constant.CategoryRoom, 30),
		})

		assert.Equal(t, "emp-1", summary.EmployeeID)
		assert.Equal(t, date, summary.SaleDate)
		assert.True(t, summary.TotalSales.Equal(decimal.NewFromInt(50)))
		assert.True(t, summary.FoodSales.Equal(decimal.NewFromInt(20)))
		assert.True(t, summary.RoomSales.Equal(decimal.NewFromInt(30)))
		assert.True(t, summary.BeverageSales.IsZero())
		assert.Equal(t, 2, summary.TransactionCount)
	})

	t.Run("order does not matter", func(t *testing.T) {
		first := model.Summarize("emp-1", date, []model.Sale{sale(constant.CategoryFood, 20), sale(constant.CategoryRoom, 30)})
		second := model.Summarize("emp-1", date, []model.Sale{sale(constant.CategoryRoom, 30), sale(constant.CategoryFood, 20)})

		assert.True(t, first.TotalSales.Equal(second.TotalSales))
		assert.Equal(t, first.TransactionCount, second.TransactionCount)
	})

	t.Run("other counts towards total only", func(t *testing.T) {
		summary := model.Summarize("emp-1", date, []model.Sale{
			sale(constant.CategoryOther, 5),
			sale(constant.CategoryServices, 15),
			sale(constant.CategoryBeverage, 7),
		})

		assert.True(t, summary.TotalSales.Equal(decimal.NewFromInt(27)))
		assert.True(t, summary.ServiceSales.Equal(decimal.NewFromInt(15)))
		assert.True(t, summary.BeverageSales.Equal(decimal.NewFromInt(7)))
		assert.Equal(t, 3, summary.TransactionCount)
	})

	t.Run("no sales", func(t *testing.T) {
		summary := model.Summarize("emp-1", date, nil)

		assert.True(t, summary.TotalSales.IsZero())
		assert.Equal(t, 0, summary.TransactionCount)
	})
}
