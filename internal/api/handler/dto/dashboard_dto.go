package dto

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"credit-dashboard/internal/analytics"
	"credit-dashboard/internal/domain/portfolio"
	"credit-dashboard/internal/pkg/apperrors"
)

// Default analysis window when the caller sends no date range, matching the
// dashboard's initial view.
const defaultRangeDays = 180

// ParseFilterQuery builds the analytics filter from the shared query
// parameters. Set-valued parameters distinguish "absent" from "empty": an
// absent parameter selects every member, an explicitly empty one selects
// nothing and yields empty results.
func ParseFilterQuery(q url.Values, generatedAt time.Time) (analytics.Filter, error) {
	f := analytics.Filter{
		From: generatedAt.AddDate(0, 0, -defaultRangeDays),
		To:   generatedAt,
	}

	if raw := q.Get("from"); raw != "" {
		t, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return f, apperrors.NewValidationError("from", "invalid date, expected YYYY-MM-DD")
		}
		f.From = t
	}
	if raw := q.Get("to"); raw != "" {
		t, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return f, apperrors.NewValidationError("to", "invalid date, expected YYYY-MM-DD")
		}
		f.To = t
	}

	categories, err := parseSet(q, "categories", portfolio.ClientCategories, func(s string) portfolio.ClientCategory {
		return portfolio.ClientCategory(s)
	})
	if err != nil {
		return f, err
	}
	f.Categories = categories

	statuses, err := parseSet(q, "loanStatuses", portfolio.LoanStatuses, func(s string) portfolio.LoanStatus {
		return portfolio.LoanStatus(s)
	})
	if err != nil {
		return f, err
	}
	f.LoanStatuses = statuses

	states, err := parseSet(q, "installmentStates", portfolio.InstallmentStates, func(s string) portfolio.InstallmentState {
		return portfolio.InstallmentState(s)
	})
	if err != nil {
		return f, err
	}
	f.InstallmentStates = states

	return f, nil
}

func parseSet[T ~string](q url.Values, param string, all []T, conv func(string) T) ([]T, error) {
	if !q.Has(param) {
		return all, nil
	}

	raw := strings.TrimSpace(q.Get(param))
	if raw == "" {
		return []T{}, nil
	}

	var out []T
	for _, item := range strings.Split(raw, ",") {
		candidate := conv(strings.ToUpper(strings.TrimSpace(item)))
		valid := false
		for _, member := range all {
			if candidate == member {
				valid = true
				break
			}
		}
		if !valid {
			return nil, apperrors.NewValidationError(param, fmt.Sprintf("unknown value %q", item))
		}
		out = append(out, candidate)
	}
	return out, nil
}

func formatMoney(amount portfolio.Money) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}

type SummaryResponse struct {
	TotalDisbursed  string  `json:"totalDisbursed"`
	OverdueTotal    string  `json:"overdueTotal"`
	OverdueCount    int     `json:"overdueCount"`
	PendingTotal    string  `json:"pendingTotal"`
	DelinquencyRate float64 `json:"delinquencyRate"`
	AlertLevel      string  `json:"alertLevel"`
}

func NewSummaryResponse(s analytics.Summary, level analytics.AlertLevel) SummaryResponse {
	return SummaryResponse{
		TotalDisbursed:  formatMoney(s.TotalDisbursed),
		OverdueTotal:    formatMoney(s.OverdueTotal),
		OverdueCount:    s.OverdueCount,
		PendingTotal:    formatMoney(s.PendingTotal),
		DelinquencyRate: s.DelinquencyRate,
		AlertLevel:      string(level),
	}
}

type StateSliceResponse struct {
	State string `json:"state"`
	Total string `json:"total"`
	Count int    `json:"count"`
}

type InstallmentStatesResponse struct {
	Items   []StateSliceResponse `json:"items"`
	HasData bool                 `json:"hasData"`
}

func NewInstallmentStatesResponse(slices []analytics.StateSlice) InstallmentStatesResponse {
	resp := InstallmentStatesResponse{Items: make([]StateSliceResponse, 0, len(slices)), HasData: len(slices) > 0}
	for _, s := range slices {
		resp.Items = append(resp.Items, StateSliceResponse{
			State: string(s.State),
			Total: formatMoney(s.Total),
			Count: s.Count,
		})
	}
	return resp
}

type CategorySliceResponse struct {
	Category       string `json:"category"`
	TotalPrincipal string `json:"totalPrincipal"`
	LoanCount      int    `json:"loanCount"`
}

type ClientCategoriesResponse struct {
	Items   []CategorySliceResponse `json:"items"`
	HasData bool                    `json:"hasData"`
}

func NewClientCategoriesResponse(slices []analytics.CategorySlice) ClientCategoriesResponse {
	resp := ClientCategoriesResponse{Items: make([]CategorySliceResponse, 0, len(slices)), HasData: len(slices) > 0}
	for _, s := range slices {
		resp.Items = append(resp.Items, CategorySliceResponse{
			Category:       string(s.Category),
			TotalPrincipal: formatMoney(s.TotalPrincipal),
			LoanCount:      s.LoanCount,
		})
	}
	return resp
}

type MonthlyPointResponse struct {
	Month string `json:"month"`
	Total string `json:"total"`
	Count int    `json:"count"`
}

type MonthlyDisbursementsResponse struct {
	Items   []MonthlyPointResponse `json:"items"`
	HasData bool                   `json:"hasData"`
}

func NewMonthlyDisbursementsResponse(points []analytics.MonthlyPoint) MonthlyDisbursementsResponse {
	resp := MonthlyDisbursementsResponse{Items: make([]MonthlyPointResponse, 0, len(points)), HasData: len(points) > 0}
	for _, p := range points {
		resp.Items = append(resp.Items, MonthlyPointResponse{Month: p.Month, Total: formatMoney(p.Total), Count: p.Count})
	}
	return resp
}

type ClientDebtResponse struct {
	ClientName string `json:"clientName"`
	Total      string `json:"total"`
	Count      int    `json:"count"`
}

type TopDelinquentResponse struct {
	Items   []ClientDebtResponse `json:"items"`
	HasData bool                 `json:"hasData"`
}

func NewTopDelinquentResponse(debts []analytics.ClientDebt) TopDelinquentResponse {
	resp := TopDelinquentResponse{Items: make([]ClientDebtResponse, 0, len(debts)), HasData: len(debts) > 0}
	for _, d := range debts {
		resp.Items = append(resp.Items, ClientDebtResponse{ClientName: d.ClientName, Total: formatMoney(d.Total), Count: d.Count})
	}
	return resp
}

type AgingBucketResponse struct {
	Label string `json:"label"`
	Total string `json:"total"`
	Count int    `json:"count"`
}

type AgingResponse struct {
	Buckets []AgingBucketResponse `json:"buckets"`
	HasData bool                  `json:"hasData"`
}

func NewAgingResponse(buckets []analytics.AgingBucket) AgingResponse {
	resp := AgingResponse{Buckets: make([]AgingBucketResponse, 0, len(buckets))}
	for _, b := range buckets {
		resp.Buckets = append(resp.Buckets, AgingBucketResponse{Label: b.Label, Total: formatMoney(b.Total), Count: b.Count})
		if b.Count > 0 {
			resp.HasData = true
		}
	}
	return resp
}

type WeeklyProjectionResponse struct {
	Week  string `json:"week"`
	Total string `json:"total"`
	Count int    `json:"count"`
}

type CollectionProjectionResponse struct {
	Items   []WeeklyProjectionResponse `json:"items"`
	HasData bool                       `json:"hasData"`
}

func NewCollectionProjectionResponse(points []analytics.WeeklyProjection) CollectionProjectionResponse {
	resp := CollectionProjectionResponse{Items: make([]WeeklyProjectionResponse, 0, len(points)), HasData: len(points) > 0}
	for _, p := range points {
		resp.Items = append(resp.Items, WeeklyProjectionResponse{Week: p.Week, Total: formatMoney(p.Total), Count: p.Count})
	}
	return resp
}

type ClientActivityResponse struct {
	ClientName     string `json:"clientName"`
	LoanCount      int    `json:"loanCount"`
	TotalPrincipal string `json:"totalPrincipal"`
}

type TopActiveClientsResponse struct {
	Items   []ClientActivityResponse `json:"items"`
	HasData bool                     `json:"hasData"`
}

func NewTopActiveClientsResponse(activity []analytics.ClientActivity) TopActiveClientsResponse {
	resp := TopActiveClientsResponse{Items: make([]ClientActivityResponse, 0, len(activity)), HasData: len(activity) > 0}
	for _, a := range activity {
		resp.Items = append(resp.Items, ClientActivityResponse{
			ClientName:     a.ClientName,
			LoanCount:      a.LoanCount,
			TotalPrincipal: formatMoney(a.TotalPrincipal),
		})
	}
	return resp
}

type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type LoanStatusesResponse struct {
	Items   []StatusCountResponse `json:"items"`
	HasData bool                  `json:"hasData"`
}

func NewLoanStatusesResponse(counts []analytics.StatusCount) LoanStatusesResponse {
	resp := LoanStatusesResponse{Items: make([]StatusCountResponse, 0, len(counts)), HasData: len(counts) > 0}
	for _, c := range counts {
		resp.Items = append(resp.Items, StatusCountResponse{Status: string(c.Status), Count: c.Count})
	}
	return resp
}

type OverdueInstallmentResponse struct {
	ClientName     string `json:"clientName"`
	ClientCategory string `json:"clientCategory"`
	SequenceNumber int    `json:"sequenceNumber"`
	Total          string `json:"total"`
	DueDate        string `json:"dueDate"`
	DaysOverdue    int    `json:"daysOverdue"`
}

type OverdueStatsResponse struct {
	Count           int     `json:"count"`
	AvgDaysOverdue  float64 `json:"avgDaysOverdue"`
	MaxDaysOverdue  int     `json:"maxDaysOverdue"`
	DistinctClients int     `json:"distinctClients"`
}

type OverdueDetailResponse struct {
	Items   []OverdueInstallmentResponse `json:"items"`
	Stats   OverdueStatsResponse         `json:"stats"`
	HasData bool                         `json:"hasData"`
}

func NewOverdueDetailResponse(installments []portfolio.Installment, stats analytics.OverdueStats) OverdueDetailResponse {
	resp := OverdueDetailResponse{
		Items: make([]OverdueInstallmentResponse, 0, len(installments)),
		Stats: OverdueStatsResponse{
			Count:           stats.Count,
			AvgDaysOverdue:  stats.AvgDaysOverdue,
			MaxDaysOverdue:  stats.MaxDaysOverdue,
			DistinctClients: stats.DistinctClients,
		},
		HasData: len(installments) > 0,
	}
	for _, inst := range installments {
		resp.Items = append(resp.Items, OverdueInstallmentResponse{
			ClientName:     inst.ClientName,
			ClientCategory: string(inst.ClientCategory),
			SequenceNumber: inst.SequenceNumber,
			Total:          formatMoney(inst.TotalDue),
			DueDate:        inst.DueDate.Format(time.DateOnly),
			DaysOverdue:    inst.DaysOverdue,
		})
	}
	return resp
}

type ErrorDetail struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
