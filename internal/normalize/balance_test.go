package normalize

import (
	"encoding/json"
	"math"
	"testing"

	"monetrix-dashboard/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestExtractBalance(t *testing.T) {
	tests := []struct {
		name   string
		record models.RawRecord
		want   string
	}{
		{"float balance", models.RawRecord{"balance": 1000.25}, "1000.25"},
		{"int balance", models.RawRecord{"balance": 7}, "7"},
		{"json number", models.RawRecord{"balance": json.Number("12.10")}, "12.1"},
		{"decimal balance", models.RawRecord{"balance": decimal.RequireFromString("3.33")}, "3.33"},
		{"numeric text", models.RawRecord{"balance": "500"}, "500"},
		{"grouped text", models.RawRecord{"balance": "1 240,50"}, "1240.5"},
		{"garbage text", models.RawRecord{"balance": "abc"}, "0"},
		{"amount fallback", models.RawRecord{"amount": -15}, "-15"},
		{"balance beats amount", models.RawRecord{"balance": 1, "amount": 2}, "1"},
		{"null balance falls to amount", models.RawRecord{"balance": nil, "amount": 2}, "2"},
		{"nested amount", models.RawRecord{"amount": map[string]interface{}{"value": 200}}, "200"},
		{"nested amount key first", models.RawRecord{"balance": map[string]interface{}{"amount": "10", "value": 20}}, "10"},
		{"nested raw record", models.RawRecord{"balance": models.RawRecord{"value": "99.9"}}, "99.9"},
		{"nested garbage", models.RawRecord{"balance": map[string]interface{}{"value": "n/a"}}, "0"},
		{"nested two levels", models.RawRecord{"balance": map[string]interface{}{"value": map[string]interface{}{"amount": 5}}}, "0"},
		{"nested empty", models.RawRecord{"balance": map[string]interface{}{}}, "0"},
		{"boolean", models.RawRecord{"balance": true}, "0"},
		{"list", models.RawRecord{"balance": []interface{}{1, 2}}, "0"},
		{"NaN", models.RawRecord{"balance": math.NaN()}, "0"},
		{"infinity", models.RawRecord{"balance": math.Inf(1)}, "0"},
		{"huge exponent text", models.RawRecord{"balance": "1e200000000"}, "0"},
		{"huge exponent json number", models.RawRecord{"balance": json.Number("1e200000000")}, "0"},
		{"huge exponent decimal", models.RawRecord{"balance": decimal.New(1, 200000000)}, "0"},
		{"beyond float range", models.RawRecord{"balance": "-2e308"}, "0"},
		{"nested huge exponent", models.RawRecord{"balance": map[string]interface{}{"amount": "9e999999"}}, "0"},
		{"vanishing fraction", models.RawRecord{"balance": json.Number("1e-200000000")}, "0"},
		{"long fraction rounded", models.RawRecord{"balance": "0.1234567890123456789012345678901234567"}, "0.12345678901234567890123456789012"},
		{"absent", models.RawRecord{}, "0"},
		{"nil record", nil, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractBalance(tt.record).String())
		})
	}
}

func TestExtractBalance_DoesNotMutateInput(t *testing.T) {
	record := models.RawRecord{"balance": map[string]interface{}{"value": "1 000"}}
	before, err := json.Marshal(record)
	assert.NoError(t, err)

	ExtractBalance(record)

	after, err := json.Marshal(record)
	assert.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
}

func TestExtractBalance_LargeFiniteKept(t *testing.T) {
	got := ExtractBalance(models.RawRecord{"balance": json.Number("1e300")})

	assert.True(t, got.Equal(decimal.New(1, 300)))
}

func TestAggregateBanks_OutOfRangeBalanceCountsAsZero(t *testing.T) {
	banks := AggregateBanks([]models.RawRecord{
		{"bank": "x", "id": "a", "balance": "1e200000000"},
		{"bank": "x", "id": "b", "balance": 25},
	})

	assert.Len(t, banks, 1)
	assert.Len(t, banks[0].Accounts, 2)
	assert.True(t, banks[0].Accounts[0].BalanceValue.IsZero())
	assert.Equal(t, "25", banks[0].TotalBalance.String())
}
