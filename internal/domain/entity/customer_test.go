package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/eesaa/retail-suite/internal/domain/entity"
)

func TestCustomer_OverLimit(t *testing.T) {
	c := entity.Customer{
		Outstanding: decimal.NewFromInt(50000),
		CreditLimit: decimal.NewFromInt(50000),
	}
	assert.False(t, c.OverLimit(), "at the limit is not over it")

	c.Outstanding = decimal.NewFromInt(50001)
	assert.True(t, c.OverLimit())
}

func TestCustomer_WouldExceedLimit(t *testing.T) {
	c := entity.Customer{
		Outstanding: decimal.NewFromInt(15400),
		CreditLimit: decimal.NewFromInt(50000),
	}
	assert.False(t, c.WouldExceedLimit(decimal.NewFromInt(34600)), "lands exactly on the limit")
	assert.True(t, c.WouldExceedLimit(decimal.NewFromInt(34601)))
}

func TestProduct_StockStatusAt(t *testing.T) {
	p := entity.Product{
		MinStock:   20,
		StockCount: map[string]int{"B1": 5, "B2": 20, "B3": 0},
	}
	assert.Equal(t, entity.StockStatusLow, p.StockStatusAt("B1"))
	assert.Equal(t, entity.StockStatusOK, p.StockStatusAt("B2"), "at the minimum counts as in stock")
	assert.Equal(t, entity.StockStatusOut, p.StockStatusAt("B3"))
	assert.Equal(t, entity.StockStatusOut, p.StockStatusAt("B9"), "unknown branch holds nothing")
}

func TestProduct_TotalStock(t *testing.T) {
	p := entity.Product{StockCount: map[string]int{"FACTORY": 100, "B1": 5}}
	assert.Equal(t, 105, p.TotalStock())

	empty := entity.Product{}
	assert.Equal(t, 0, empty.TotalStock())
}
