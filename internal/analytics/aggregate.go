package analytics

import (
	"fmt"
	"sort"
	"time"

	"credit-dashboard/internal/domain/portfolio"
)

// Summary holds the headline portfolio figures. DelinquencyRate is a
// percentage of overdue debt against total disbursed principal, defined as 0
// when nothing was disbursed so an empty view never yields NaN or Inf.
type Summary struct {
	TotalDisbursed  portfolio.Money `json:"totalDisbursed"`
	OverdueTotal    portfolio.Money `json:"overdueTotal"`
	OverdueCount    int             `json:"overdueCount"`
	PendingTotal    portfolio.Money `json:"pendingTotal"`
	DelinquencyRate float64         `json:"delinquencyRate"`
}

func (v *View) Summarize() Summary {
	var s Summary
	for i := range v.Loans {
		s.TotalDisbursed += v.Loans[i].Principal
	}
	for i := range v.Installments {
		switch v.Installments[i].State {
		case portfolio.StateOverdue:
			s.OverdueTotal += v.Installments[i].TotalDue
			s.OverdueCount++
		case portfolio.StatePending:
			s.PendingTotal += v.Installments[i].TotalDue
		}
	}
	if s.TotalDisbursed > 0 {
		s.DelinquencyRate = s.OverdueTotal / s.TotalDisbursed * 100
	}
	return s
}

// StateSlice is one wedge of the installment-state breakdown.
type StateSlice struct {
	State portfolio.InstallmentState `json:"state"`
	Total portfolio.Money            `json:"total"`
	Count int                        `json:"count"`
}

// ByInstallmentState groups the filtered installments by lifecycle state, in
// the fixed presentation order. States with no installments are omitted so an
// empty result is an empty slice.
func (v *View) ByInstallmentState() []StateSlice {
	totals := map[portfolio.InstallmentState]*StateSlice{}
	for i := range v.Installments {
		inst := &v.Installments[i]
		slice, ok := totals[inst.State]
		if !ok {
			slice = &StateSlice{State: inst.State}
			totals[inst.State] = slice
		}
		slice.Total += inst.TotalDue
		slice.Count++
	}

	out := make([]StateSlice, 0, len(totals))
	for _, state := range portfolio.InstallmentStates {
		if slice, ok := totals[state]; ok {
			out = append(out, *slice)
		}
	}
	return out
}

// CategorySlice is the disbursed principal attributed to one client category.
type CategorySlice struct {
	Category       portfolio.ClientCategory `json:"category"`
	TotalPrincipal portfolio.Money          `json:"totalPrincipal"`
	LoanCount      int                      `json:"loanCount"`
}

func (v *View) ByClientCategory() []CategorySlice {
	totals := map[portfolio.ClientCategory]*CategorySlice{}
	for i := range v.Loans {
		l := &v.Loans[i]
		slice, ok := totals[l.ClientCategory]
		if !ok {
			slice = &CategorySlice{Category: l.ClientCategory}
			totals[l.ClientCategory] = slice
		}
		slice.TotalPrincipal += l.Principal
		slice.LoanCount++
	}

	out := make([]CategorySlice, 0, len(totals))
	for _, cat := range portfolio.ClientCategories {
		if slice, ok := totals[cat]; ok {
			out = append(out, *slice)
		}
	}
	return out
}

// MonthlyPoint is one month of disbursement volume. Month is the calendar
// year-month truncation of the disbursement date ("2026-03"), computed
// independently of the 30-day installment periods.
type MonthlyPoint struct {
	Month string          `json:"month"`
	Total portfolio.Money `json:"total"`
	Count int             `json:"count"`
}

func (v *View) MonthlyDisbursements() []MonthlyPoint {
	totals := map[string]*MonthlyPoint{}
	for i := range v.Loans {
		key := v.Loans[i].DisbursementDate.Format("2006-01")
		point, ok := totals[key]
		if !ok {
			point = &MonthlyPoint{Month: key}
			totals[key] = point
		}
		point.Total += v.Loans[i].Principal
		point.Count++
	}

	out := make([]MonthlyPoint, 0, len(totals))
	for _, point := range totals {
		out = append(out, *point)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// ClientDebt is one client's overdue exposure.
type ClientDebt struct {
	ClientName string          `json:"clientName"`
	Total      portfolio.Money `json:"total"`
	Count      int             `json:"count"`
}

// TopDelinquentClients ranks clients by total overdue debt and keeps the n
// largest. The result is ascending, worst client last, matching the
// horizontal bar chart it feeds. Ties keep input order: the sort is stable
// over clients in order of first appearance.
func (v *View) TopDelinquentClients(n int) []ClientDebt {
	index := map[string]int{}
	var debts []ClientDebt
	for i := range v.Installments {
		inst := &v.Installments[i]
		if inst.State != portfolio.StateOverdue {
			continue
		}
		pos, ok := index[inst.ClientName]
		if !ok {
			pos = len(debts)
			index[inst.ClientName] = pos
			debts = append(debts, ClientDebt{ClientName: inst.ClientName})
		}
		debts[pos].Total += inst.TotalDue
		debts[pos].Count++
	}

	sort.SliceStable(debts, func(i, j int) bool { return debts[i].Total < debts[j].Total })
	if len(debts) > n {
		debts = debts[len(debts)-n:]
	}
	return debts
}

// Aging bucket edges in days overdue, per the fixed reporting intervals
// [0,30], (30,60], (60,90], (90,180], (180,∞).
var agingBuckets = []struct {
	label string
	max   int
}{
	{"0-30 days", 30},
	{"31-60 days", 60},
	{"61-90 days", 90},
	{"91-180 days", 180},
	{">180 days", 0},
}

type AgingBucket struct {
	Label string          `json:"label"`
	Total portfolio.Money `json:"total"`
	Count int             `json:"count"`
}

// AgingBuckets distributes overdue debt across the fixed arrears intervals.
// All five buckets are always returned, empty ones with zero values; callers
// detect the no-overdue case through Summary.OverdueCount.
func (v *View) AgingBuckets() []AgingBucket {
	out := make([]AgingBucket, len(agingBuckets))
	for i, b := range agingBuckets {
		out[i].Label = b.label
	}

	for i := range v.Installments {
		inst := &v.Installments[i]
		if inst.State != portfolio.StateOverdue {
			continue
		}
		idx := len(out) - 1
		for j, b := range agingBuckets {
			if b.max > 0 && inst.DaysOverdue <= b.max {
				idx = j
				break
			}
		}
		out[idx].Total += inst.TotalDue
		out[idx].Count++
	}
	return out
}

// WeeklyProjection is the expected collection volume of one ISO week.
type WeeklyProjection struct {
	Week  string          `json:"week"`
	Total portfolio.Money `json:"total"`
	Count int             `json:"count"`
}

// CollectionProjection sums pending installments due within the projection
// horizon (90 days from the snapshot's frozen "now"), grouped by the ISO week
// of their due date.
func (v *View) CollectionProjection() []WeeklyProjection {
	horizon := v.GeneratedAt.AddDate(0, 0, portfolio.ProjectionHorizonDays)

	totals := map[string]*WeeklyProjection{}
	for i := range v.Installments {
		inst := &v.Installments[i]
		if inst.State != portfolio.StatePending || inst.DueDate.After(horizon) {
			continue
		}
		key := isoWeekKey(inst.DueDate)
		point, ok := totals[key]
		if !ok {
			point = &WeeklyProjection{Week: key}
			totals[key] = point
		}
		point.Total += inst.TotalDue
		point.Count++
	}

	out := make([]WeeklyProjection, 0, len(totals))
	for _, point := range totals {
		out = append(out, *point)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Week < out[j].Week })
	return out
}

func isoWeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// ClientActivity is one client's footprint among active loans.
type ClientActivity struct {
	ClientName     string          `json:"clientName"`
	LoanCount      int             `json:"loanCount"`
	TotalPrincipal portfolio.Money `json:"totalPrincipal"`
}

// TopActiveClients ranks clients by disbursed principal across their ACTIVE
// loans, largest first, keeping the top n.
func (v *View) TopActiveClients(n int) []ClientActivity {
	index := map[string]int{}
	var activity []ClientActivity
	for i := range v.Loans {
		l := &v.Loans[i]
		if l.Status != portfolio.LoanStatusActive {
			continue
		}
		pos, ok := index[l.ClientName]
		if !ok {
			pos = len(activity)
			index[l.ClientName] = pos
			activity = append(activity, ClientActivity{ClientName: l.ClientName})
		}
		activity[pos].LoanCount++
		activity[pos].TotalPrincipal += l.Principal
	}

	sort.SliceStable(activity, func(i, j int) bool {
		return activity[i].TotalPrincipal > activity[j].TotalPrincipal
	})
	if len(activity) > n {
		activity = activity[:n]
	}
	return activity
}

// StatusCount is the loan tally of one declared status.
type StatusCount struct {
	Status portfolio.LoanStatus `json:"status"`
	Count  int                  `json:"count"`
}

func (v *View) LoanStatusDistribution() []StatusCount {
	totals := map[portfolio.LoanStatus]int{}
	for i := range v.Loans {
		totals[v.Loans[i].Status]++
	}

	out := make([]StatusCount, 0, len(totals))
	for _, status := range portfolio.LoanStatuses {
		if count, ok := totals[status]; ok {
			out = append(out, StatusCount{Status: status, Count: count})
		}
	}
	return out
}

// OverdueStats summarizes the overdue installment detail table.
type OverdueStats struct {
	Count           int     `json:"count"`
	AvgDaysOverdue  float64 `json:"avgDaysOverdue"`
	MaxDaysOverdue  int     `json:"maxDaysOverdue"`
	DistinctClients int     `json:"distinctClients"`
}

// OverdueDetail returns every overdue installment sorted by days in arrears,
// worst first, plus summary statistics. Stats are all zero when nothing is
// overdue.
func (v *View) OverdueDetail() ([]portfolio.Installment, OverdueStats) {
	var detail []portfolio.Installment
	clients := map[int64]struct{}{}
	var stats OverdueStats
	totalDays := 0

	for i := range v.Installments {
		inst := v.Installments[i]
		if inst.State != portfolio.StateOverdue {
			continue
		}
		detail = append(detail, inst)
		clients[inst.ClientID] = struct{}{}
		totalDays += inst.DaysOverdue
		if inst.DaysOverdue > stats.MaxDaysOverdue {
			stats.MaxDaysOverdue = inst.DaysOverdue
		}
	}

	stats.Count = len(detail)
	stats.DistinctClients = len(clients)
	if stats.Count > 0 {
		stats.AvgDaysOverdue = float64(totalDays) / float64(stats.Count)
	}

	sort.SliceStable(detail, func(i, j int) bool { return detail[i].DaysOverdue > detail[j].DaysOverdue })
	return detail, stats
}
