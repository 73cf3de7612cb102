package analytics_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"credit-dashboard/internal/analytics"
	"credit-dashboard/internal/domain/portfolio"
)

func overdueInstallment(client string, clientID int64, amount portfolio.Money, daysOverdue int) portfolio.Installment {
	return portfolio.Installment{
		ClientID:       clientID,
		ClientName:     client,
		ClientCategory: portfolio.CategoryNatural,
		TotalDue:       amount,
		DueDate:        viewNow.AddDate(0, 0, -daysOverdue),
		State:          portfolio.StateOverdue,
		DaysOverdue:    daysOverdue,
	}
}

func pendingInstallment(amount portfolio.Money, dueInDays int) portfolio.Installment {
	return portfolio.Installment{
		ClientCategory: portfolio.CategoryNatural,
		TotalDue:       amount,
		DueDate:        viewNow.AddDate(0, 0, dueInDays),
		State:          portfolio.StatePending,
	}
}

func TestSummarize(t *testing.T) {
	t.Run("Figures", func(t *testing.T) {
		view := &analytics.View{
			Loans: []portfolio.Loan{
				{Principal: 6000},
				{Principal: 4000},
			},
			Installments: []portfolio.Installment{
				overdueInstallment("A", 1, 300, 10),
				overdueInstallment("B", 2, 200, 40),
				pendingInstallment(1000, 20),
				{State: portfolio.StatePaid, TotalDue: 500},
			},
			GeneratedAt: viewNow,
		}

		s := view.Summarize()
		assert.InDelta(t, 10000.0, s.TotalDisbursed, 1e-9)
		assert.InDelta(t, 500.0, s.OverdueTotal, 1e-9)
		assert.Equal(t, 2, s.OverdueCount)
		assert.InDelta(t, 1000.0, s.PendingTotal, 1e-9)
		assert.InDelta(t, 5.0, s.DelinquencyRate, 1e-9)
	})

	t.Run("EmptyViewYieldsZeroRate", func(t *testing.T) {
		view := &analytics.View{GeneratedAt: viewNow}
		s := view.Summarize()
		assert.Zero(t, s.TotalDisbursed)
		assert.Zero(t, s.DelinquencyRate)
	})

	t.Run("ConsistentOverGeneratedData", func(t *testing.T) {
		snap := fixtureSnapshot(t)
		view, err := analytics.NewView(snap, allFilter(viewNow.AddDate(-2, 0, 0), viewNow))
		require.NoError(t, err)

		s := view.Summarize()

		var overdue, pending, paid portfolio.Money
		for _, inst := range view.Installments {
			switch inst.State {
			case portfolio.StateOverdue:
				overdue += inst.TotalDue
			case portfolio.StatePending:
				pending += inst.TotalDue
			case portfolio.StatePaid:
				paid += inst.TotalDue
			}
		}
		assert.InDelta(t, overdue, s.OverdueTotal, 1e-6)
		assert.InDelta(t, pending, s.PendingTotal, 1e-6)
		assert.Greater(t, paid, 0.0)
		assert.Greater(t, s.DelinquencyRate, 0.0)

		var allDue portfolio.Money
		for _, inst := range view.Installments {
			allDue += inst.TotalDue
		}
		assert.InDelta(t, allDue, s.OverdueTotal+s.PendingTotal+paid, 1e-6)
	})
}

func TestByInstallmentState(t *testing.T) {
	view := &analytics.View{
		Installments: []portfolio.Installment{
			overdueInstallment("A", 1, 100, 5),
			pendingInstallment(250, 10),
			pendingInstallment(250, 40),
		},
		GeneratedAt: viewNow,
	}

	slices := view.ByInstallmentState()
	require.Len(t, slices, 2)

	// Fixed presentation order: PENDING before OVERDUE, PAID omitted.
	assert.Equal(t, portfolio.StatePending, slices[0].State)
	assert.InDelta(t, 500.0, slices[0].Total, 1e-9)
	assert.Equal(t, 2, slices[0].Count)
	assert.Equal(t, portfolio.StateOverdue, slices[1].State)
	assert.Equal(t, 1, slices[1].Count)
}

func TestByClientCategory(t *testing.T) {
	view := &analytics.View{
		Loans: []portfolio.Loan{
			{ClientCategory: portfolio.CategoryLegal, Principal: 8000},
			{ClientCategory: portfolio.CategoryNatural, Principal: 1500},
			{ClientCategory: portfolio.CategoryNatural, Principal: 500},
		},
		GeneratedAt: viewNow,
	}

	slices := view.ByClientCategory()
	require.Len(t, slices, 2)

	assert.Equal(t, portfolio.CategoryNatural, slices[0].Category)
	assert.InDelta(t, 2000.0, slices[0].TotalPrincipal, 1e-9)
	assert.Equal(t, 2, slices[0].LoanCount)
	assert.Equal(t, portfolio.CategoryLegal, slices[1].Category)
	assert.Equal(t, 1, slices[1].LoanCount)
}

func TestMonthlyDisbursements(t *testing.T) {
	view := &analytics.View{
		Loans: []portfolio.Loan{
			{Principal: 1000, DisbursementDate: time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC)},
			{Principal: 3000, DisbursementDate: time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)},
			{Principal: 2000, DisbursementDate: time.Date(2026, time.January, 28, 0, 0, 0, 0, time.UTC)},
		},
		GeneratedAt: viewNow,
	}

	points := view.MonthlyDisbursements()
	require.Len(t, points, 2)

	assert.Equal(t, "2026-01", points[0].Month)
	assert.InDelta(t, 5000.0, points[0].Total, 1e-9)
	assert.Equal(t, 2, points[0].Count)
	assert.Equal(t, "2026-02", points[1].Month)
	assert.Equal(t, 1, points[1].Count)
}

func TestTopDelinquentClients(t *testing.T) {
	t.Run("AscendingWorstLast", func(t *testing.T) {
		view := &analytics.View{
			Installments: []portfolio.Installment{
				overdueInstallment("Ana", 1, 500, 10),
				overdueInstallment("Luis", 2, 2000, 20),
				overdueInstallment("Ana", 1, 700, 35),
				overdueInstallment("Carlos", 3, 100, 5),
			},
			GeneratedAt: viewNow,
		}

		top := view.TopDelinquentClients(2)
		require.Len(t, top, 2)

		assert.Equal(t, "Ana", top[0].ClientName)
		assert.InDelta(t, 1200.0, top[0].Total, 1e-9)
		assert.Equal(t, 2, top[0].Count)
		assert.Equal(t, "Luis", top[1].ClientName)
		assert.InDelta(t, 2000.0, top[1].Total, 1e-9)
	})

	t.Run("TiesKeepFirstAppearanceOrder", func(t *testing.T) {
		view := &analytics.View{
			Installments: []portfolio.Installment{
				overdueInstallment("First", 1, 100, 5),
				overdueInstallment("Second", 2, 100, 5),
			},
			GeneratedAt: viewNow,
		}

		top := view.TopDelinquentClients(5)
		require.Len(t, top, 2)
		assert.Equal(t, "First", top[0].ClientName)
		assert.Equal(t, "Second", top[1].ClientName)
	})

	t.Run("NoOverdue", func(t *testing.T) {
		view := &analytics.View{GeneratedAt: viewNow}
		assert.Empty(t, view.TopDelinquentClients(5))
	})
}

func TestAgingBuckets(t *testing.T) {
	view := &analytics.View{
		Installments: []portfolio.Installment{
			overdueInstallment("A", 1, 100, 1),
			overdueInstallment("A", 1, 100, 30),
			overdueInstallment("B", 2, 200, 31),
			overdueInstallment("B", 2, 200, 90),
			overdueInstallment("C", 3, 300, 180),
			overdueInstallment("C", 3, 400, 181),
			pendingInstallment(999, 10),
		},
		GeneratedAt: viewNow,
	}

	buckets := view.AgingBuckets()
	require.Len(t, buckets, 5)

	assert.Equal(t, "0-30 days", buckets[0].Label)
	assert.Equal(t, 2, buckets[0].Count)
	assert.Equal(t, "31-60 days", buckets[1].Label)
	assert.Equal(t, 1, buckets[1].Count)
	assert.Equal(t, "61-90 days", buckets[2].Label)
	assert.Equal(t, 1, buckets[2].Count)
	assert.Equal(t, "91-180 days", buckets[3].Label)
	assert.Equal(t, 1, buckets[3].Count)
	assert.Equal(t, ">180 days", buckets[4].Label)
	assert.Equal(t, 1, buckets[4].Count)
	assert.InDelta(t, 400.0, buckets[4].Total, 1e-9)
}

func TestAgingBuckets_EmptyViewKeepsAllBuckets(t *testing.T) {
	view := &analytics.View{GeneratedAt: viewNow}

	buckets := view.AgingBuckets()
	require.Len(t, buckets, 5)
	for _, b := range buckets {
		assert.Zero(t, b.Count)
		assert.Zero(t, b.Total)
	}
}

func TestCollectionProjection(t *testing.T) {
	view := &analytics.View{
		Installments: []portfolio.Installment{
			pendingInstallment(100, 1),
			pendingInstallment(200, 2),
			pendingInstallment(300, 89),
			pendingInstallment(999, 91),               // beyond the horizon
			overdueInstallment("A", 1, 500, 5),        // not pending
			{State: portfolio.StatePaid, TotalDue: 1}, // not pending
		},
		GeneratedAt: viewNow,
	}

	points := view.CollectionProjection()

	var total portfolio.Money
	var count int
	for _, p := range points {
		total += p.Total
		count += p.Count
	}
	assert.InDelta(t, 600.0, total, 1e-9)
	assert.Equal(t, 3, count)

	// Keys are ISO weeks in ascending order.
	for i := 1; i < len(points); i++ {
		assert.Less(t, points[i-1].Week, points[i].Week)
	}
	year, week := viewNow.AddDate(0, 0, 1).ISOWeek()
	assert.Equal(t, fmt.Sprintf("%d-W%02d", year, week), points[0].Week)
}

func TestTopActiveClients(t *testing.T) {
	view := &analytics.View{
		Loans: []portfolio.Loan{
			{ClientName: "Ana", Status: portfolio.LoanStatusActive, Principal: 1000},
			{ClientName: "Luis", Status: portfolio.LoanStatusActive, Principal: 5000},
			{ClientName: "Ana", Status: portfolio.LoanStatusActive, Principal: 2000},
			{ClientName: "Carlos", Status: portfolio.LoanStatusDelinquent, Principal: 9000},
		},
		GeneratedAt: viewNow,
	}

	top := view.TopActiveClients(2)
	require.Len(t, top, 2)

	assert.Equal(t, "Luis", top[0].ClientName)
	assert.Equal(t, 1, top[0].LoanCount)
	assert.Equal(t, "Ana", top[1].ClientName)
	assert.Equal(t, 2, top[1].LoanCount)
	assert.InDelta(t, 3000.0, top[1].TotalPrincipal, 1e-9)
}

func TestLoanStatusDistribution(t *testing.T) {
	view := &analytics.View{
		Loans: []portfolio.Loan{
			{Status: portfolio.LoanStatusDelinquent},
			{Status: portfolio.LoanStatusActive},
			{Status: portfolio.LoanStatusActive},
		},
		GeneratedAt: viewNow,
	}

	counts := view.LoanStatusDistribution()
	require.Len(t, counts, 2)

	assert.Equal(t, portfolio.LoanStatusActive, counts[0].Status)
	assert.Equal(t, 2, counts[0].Count)
	assert.Equal(t, portfolio.LoanStatusDelinquent, counts[1].Status)
	assert.Equal(t, 1, counts[1].Count)
}

func TestOverdueDetail(t *testing.T) {
	t.Run("SortedWorstFirstWithStats", func(t *testing.T) {
		view := &analytics.View{
			Installments: []portfolio.Installment{
				overdueInstallment("Ana", 1, 100, 10),
				overdueInstallment("Luis", 2, 200, 50),
				overdueInstallment("Ana", 1, 300, 30),
				pendingInstallment(999, 5),
			},
			GeneratedAt: viewNow,
		}

		detail, stats := view.OverdueDetail()
		require.Len(t, detail, 3)

		assert.Equal(t, 50, detail[0].DaysOverdue)
		assert.Equal(t, 30, detail[1].DaysOverdue)
		assert.Equal(t, 10, detail[2].DaysOverdue)

		assert.Equal(t, 3, stats.Count)
		assert.InDelta(t, 30.0, stats.AvgDaysOverdue, 1e-9)
		assert.Equal(t, 50, stats.MaxDaysOverdue)
		assert.Equal(t, 2, stats.DistinctClients)
	})

	t.Run("EmptyStats", func(t *testing.T) {
		view := &analytics.View{GeneratedAt: viewNow}
		detail, stats := view.OverdueDetail()
		assert.Empty(t, detail)
		assert.Zero(t, stats.Count)
		assert.Zero(t, stats.AvgDaysOverdue)
	})
}
