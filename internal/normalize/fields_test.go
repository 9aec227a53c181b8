package normalize

import (
	"encoding/json"
	"math"
	"testing"

	"monetrix-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestResolveAccountName(t *testing.T) {
	tests := []struct {
		name   string
		record models.RawRecord
		want   string
	}{
		{"name wins", models.RawRecord{"name": "Зарплатная", "accountType": "Card"}, "Зарплатная"},
		{"accountType second", models.RawRecord{"accountType": "Savings", "type": "x"}, "Savings"},
		{"type third", models.RawRecord{"type": "Deposit", "productType": "y"}, "Deposit"},
		{"productType last", models.RawRecord{"productType": "Credit"}, "Credit"},
		{"empty string skipped", models.RawRecord{"name": "", "type": "Card"}, "Card"},
		{"null skipped", models.RawRecord{"name": nil, "accountType": "Card"}, "Card"},
		{"bool skipped", models.RawRecord{"name": true, "type": "Card"}, "Card"},
		{"nothing present", models.RawRecord{}, DefaultAccountLabel},
		{"nil record", nil, DefaultAccountLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveAccountName(tt.record))
		})
	}
}

func TestResolveAccountID(t *testing.T) {
	tests := []struct {
		name   string
		record models.RawRecord
		index  int
		want   string
	}{
		{"id wins", models.RawRecord{"id": "acc-1", "accountId": "x"}, 0, "acc-1"},
		{"accountId second", models.RawRecord{"accountId": "40817"}, 0, "40817"},
		{"number third", models.RawRecord{"number": "4081781000"}, 0, "4081781000"},
		{"numeric id", models.RawRecord{"id": float64(42)}, 0, "42"},
		{"json number id", models.RawRecord{"id": json.Number("1001")}, 0, "1001"},
		{"NaN id skipped", models.RawRecord{"id": math.NaN()}, 3, "3"},
		{"index fallback", models.RawRecord{"bank": "sber"}, 7, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveAccountID(tt.record, tt.index))
		})
	}
}

func TestResolveBankCodeAndLabel(t *testing.T) {
	tests := []struct {
		name      string
		record    models.RawRecord
		wantCode  string
		wantLabel string
	}{
		{"label wins", models.RawRecord{"bank": "sber", "bankLabel": "Сбер", "bankName": "Сбербанк"}, "sber", "Сбер"},
		{"bankName second", models.RawRecord{"bank": "vtb", "bankName": "ВТБ"}, "vtb", "ВТБ"},
		{"upper-cased code", models.RawRecord{"bank": "tbank"}, "tbank", "TBANK"},
		{"unknown bank", models.RawRecord{}, UnknownBankCode, "UNKNOWN"},
		{"empty code", models.RawRecord{"bank": ""}, UnknownBankCode, "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, ResolveBankCode(tt.record))
			assert.Equal(t, tt.wantLabel, ResolveBankLabel(tt.record))
		})
	}
}

func TestParseDecimalText(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"500", "500", true},
		{" -12.5 ", "-12.5", true},
		{"1 240,50", "1240.5", true},
		{"1 000", "1000", true},
		{"2 500.75", "2500.75", true},
		{"1,000.50", "", false},
		{"abc", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseDecimalText(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got.String())
			}
		})
	}
}

func TestResolveText(t *testing.T) {
	record := models.RawRecord{"name": "", "accountType": "Вклад", "bank": "sber"}

	got, ok := ResolveText(record, "name", "accountType", "bank")
	assert.True(t, ok)
	assert.Equal(t, "Вклад", got)

	_, ok = ResolveText(record, "missing")
	assert.False(t, ok)
}
