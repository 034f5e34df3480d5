// Package stats derives presentation metrics from a client's projects and
// payments. Every function is pure; amounts use exact decimal arithmetic so
// aggregate totals never drift from their inputs.
package stats

import (
	"github.com/shopspring/decimal"

	"github.com/trinextgen/backoffice/internal/model"
)

// maxBarLabelLen is the rune budget for bar chart labels before truncation.
const maxBarLabelLen = 12

var hundred = decimal.NewFromInt(100)

// ComputeTotals sums contract values and received funds across a client's
// portfolio:
//
//	totalPaid      = Σ advancePaid + Σ payment.amount
//	totalRemaining = Σ totalAmount - totalPaid
//
// The stored remainingAmount on each project is ignored; the recomputed
// aggregate is the single source of truth. Remaining goes negative on
// overpayment and is reported as such.
func ComputeTotals(projects []*model.Project, payments []*model.Payment) model.Totals {
	deal := decimal.Zero
	paid := decimal.Zero
	for _, p := range projects {
		deal = deal.Add(p.TotalAmount)
		paid = paid.Add(p.AdvancePaid)
	}
	for _, y := range payments {
		paid = paid.Add(y.Amount)
	}
	return model.Totals{
		TotalDealValue: deal,
		TotalPaid:      paid,
		TotalRemaining: deal.Sub(paid),
	}
}

// ProgressRatio returns advancePaid/totalAmount for one project, or 0 when
// the contract value is zero. Never NaN or Inf.
func ProgressRatio(p *model.Project) float64 {
	if p.TotalAmount.IsZero() {
		return 0
	}
	ratio, _ := p.AdvancePaid.Div(p.TotalAmount).Float64()
	return ratio
}

// CollectionRate is the share of total contracted value received to date,
// rounded to a whole percent and clamped to [0,100]. Defined as 0 when the
// portfolio has no contract value.
func CollectionRate(t model.Totals) int {
	if !t.TotalDealValue.IsPositive() {
		return 0
	}
	rate := t.TotalPaid.Div(t.TotalDealValue).Mul(hundred).Round(0).IntPart()
	if rate < 0 {
		return 0
	}
	if rate > 100 {
		return 100
	}
	return int(rate)
}

// BarSeries maps projects onto contract-vs-paid bar chart entries, one per
// project, preserving input order.
func BarSeries(projects []*model.Project) []model.BarPoint {
	series := make([]model.BarPoint, 0, len(projects))
	for _, p := range projects {
		series = append(series, model.BarPoint{
			Label: TruncateLabel(p.Title),
			Total: p.TotalAmount,
			Paid:  p.AdvancePaid,
		})
	}
	return series
}

// TruncateLabel cuts titles longer than 12 runes to their first 12 runes
// plus an ellipsis marker. Shorter titles pass through unchanged.
func TruncateLabel(title string) string {
	runes := []rune(title)
	if len(runes) <= maxBarLabelLen {
		return title
	}
	return string(runes[:maxBarLabelLen]) + "..."
}

// StatusDistribution counts projects per status label. Grouping is
// case-sensitive with no normalization; groups appear in order of first
// occurrence so the output is deterministic.
func StatusDistribution(projects []*model.Project) []model.StatusCount {
	index := make(map[string]int, len(projects))
	counts := make([]model.StatusCount, 0, len(projects))
	for _, p := range projects {
		if i, ok := index[p.Status]; ok {
			counts[i].Value++
			continue
		}
		index[p.Status] = len(counts)
		counts = append(counts, model.StatusCount{Name: p.Status, Value: 1})
	}
	return counts
}
