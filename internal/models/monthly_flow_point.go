package models

// MonthlyFlowPoint is one month of the cashflow trend.
// Key has the form "<year>-<zeroBasedMonth>". Income and Outcome are
// rounded half away from zero and saturate at math.MaxInt64.
type MonthlyFlowPoint struct {
	Key     string `json:"key"`
	Month   string `json:"month"`
	Income  int64  `json:"income"`
	Outcome int64  `json:"outcome"`
}
