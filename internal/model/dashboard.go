package model

import "github.com/shopspring/decimal"

// Totals are the aggregate financials for one client across all projects
// and payments. TotalRemaining may be negative when a client has overpaid;
// that is shown as-is rather than rejected.
type Totals struct {
	TotalDealValue decimal.Decimal `json:"totalDealValue"`
	TotalPaid      decimal.Decimal `json:"totalPaid"`
	TotalRemaining decimal.Decimal `json:"totalRemaining"`
}

// BarPoint is one per-project entry in the contract-vs-paid bar chart.
type BarPoint struct {
	Label string          `json:"label"`
	Total decimal.Decimal `json:"total"`
	Paid  decimal.Decimal `json:"paid"`
}

// StatusCount is one slice of the project status distribution chart.
type StatusCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Dashboard is the fully derived view for one client: the three fetched
// collections plus every chart-ready series computed from them. It is only
// built once all three fetches have succeeded.
type Dashboard struct {
	Client         *Client       `json:"client"`
	Projects       []*Project    `json:"projects"`
	Payments       []*Payment    `json:"payments"`
	Totals         Totals        `json:"totals"`
	BarSeries      []BarPoint    `json:"barSeries"`
	StatusCounts   []StatusCount `json:"statusDistribution"`
	CollectionRate int           `json:"collectionRate"` // whole percent, 0-100
}
