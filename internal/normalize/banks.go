package normalize

import (
	"monetrix-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// AggregateBanks groups account records by bank code. Groups come out in
// first-seen order of their code and accounts keep their input order.
// A nil input yields an empty, non-nil slice.
func (n *Normalizer) AggregateBanks(records []models.RawRecord) []models.AggregatedBank {
	banks := make([]models.AggregatedBank, 0)
	index := make(map[string]int)

	for i, record := range records {
		code := ResolveBankCode(record)
		label := resolveBankLabel(record, code)
		balance := ExtractBalance(record)

		pos, seen := index[code]
		if !seen {
			pos = len(banks)
			index[code] = pos
			banks = append(banks, models.AggregatedBank{
				Code:         code,
				Name:         label,
				TotalBalance: decimal.Zero,
				Accounts:     make([]models.AggregatedAccount, 0, 1),
			})
		}

		group := &banks[pos]
		group.Accounts = append(group.Accounts, models.AggregatedAccount{
			ID:           ResolveAccountID(record, i),
			Bank:         label,
			Type:         ResolveAccountName(record),
			BalanceValue: balance,
			BalanceText:  n.FormatCurrency(balance),
		})
		group.TotalBalance = group.TotalBalance.Add(balance)
	}

	for i := range banks {
		banks[i].TotalText = n.FormatCurrency(banks[i].TotalBalance)
	}
	return banks
}
