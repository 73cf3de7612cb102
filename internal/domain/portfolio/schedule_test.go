package portfolio_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"credit-dashboard/internal/domain/portfolio"
)

func delinquentFixtureLoan(now time.Time) portfolio.Loan {
	return portfolio.Loan{
		ID:               1,
		ClientID:         1,
		ClientName:       "Juan Pérez García",
		ClientCategory:   portfolio.CategoryNatural,
		Principal:        12000,
		AnnualRate:       12,
		DisbursementDate: now.AddDate(0, 0, -400),
		TermMonths:       12,
		Status:           portfolio.LoanStatusDelinquent,
	}
}

func TestExpandLoan_ScheduleShape(t *testing.T) {
	now := testNow
	loan := delinquentFixtureLoan(now)
	rng := rand.New(rand.NewSource(1))

	schedule := portfolio.ExpandLoan(rng, &loan, now)
	require.Len(t, schedule, 12)

	for i, inst := range schedule {
		assert.Equal(t, i+1, inst.SequenceNumber)
		assert.Equal(t, loan.ID, inst.LoanID)
		assert.Equal(t, loan.ClientName, inst.ClientName)

		expectedDue := loan.DisbursementDate.AddDate(0, 0, 30*(i+1))
		assert.Equal(t, expectedDue, inst.DueDate)

		assert.InDelta(t, 1000.0, inst.PrincipalComponent, 1e-9)
		assert.InDelta(t, 120.0, inst.InterestComponent, 1e-9)
		assert.InDelta(t, 1120.0, inst.TotalDue, 1e-9)
	}
}

func TestExpandLoan_FlatInterestDoesNotAmortize(t *testing.T) {
	now := testNow
	loan := delinquentFixtureLoan(now)
	rng := rand.New(rand.NewSource(1))

	schedule := portfolio.ExpandLoan(rng, &loan, now)

	first := schedule[0]
	for _, inst := range schedule[1:] {
		assert.Equal(t, first.InterestComponent, inst.InterestComponent)
		assert.Equal(t, first.TotalDue, inst.TotalDue)
	}
}

func TestExpandLoan_StatePartition(t *testing.T) {
	now := testNow
	loan := delinquentFixtureLoan(now)
	rng := rand.New(rand.NewSource(5))

	schedule := portfolio.ExpandLoan(rng, &loan, now)
	oldCutoff := now.AddDate(0, 0, -30)

	for _, inst := range schedule {
		switch {
		case inst.DueDate.Before(oldCutoff):
			assert.Contains(t, []portfolio.InstallmentState{portfolio.StatePaid, portfolio.StateOverdue}, inst.State)
		case inst.DueDate.Before(now):
			assert.Contains(t, []portfolio.InstallmentState{portfolio.StatePaid, portfolio.StateOverdue}, inst.State)
		default:
			assert.Equal(t, portfolio.StatePending, inst.State)
			assert.Nil(t, inst.PaidDate)
			assert.Zero(t, inst.DaysOverdue)
		}

		switch inst.State {
		case portfolio.StateOverdue:
			assert.Nil(t, inst.PaidDate)
			assert.Equal(t, int(now.Sub(inst.DueDate).Hours()/24), inst.DaysOverdue)
			assert.Greater(t, inst.DaysOverdue, 0)
		case portfolio.StatePaid:
			require.NotNil(t, inst.PaidDate)
			lag := int(inst.PaidDate.Sub(inst.DueDate).Hours() / 24)
			if lag > 0 {
				assert.Equal(t, lag, inst.DaysOverdue)
			} else {
				assert.Zero(t, inst.DaysOverdue)
			}
		}
	}
}

func TestExpandLoan_NonDelinquentOldInstallmentsAlwaysPaid(t *testing.T) {
	now := testNow
	for _, status := range []portfolio.LoanStatus{portfolio.LoanStatusActive, portfolio.LoanStatusCancelled} {
		loan := delinquentFixtureLoan(now)
		loan.Status = status
		// Term short enough that the whole schedule sits in the old window.
		loan.TermMonths = 6
		loan.DisbursementDate = now.AddDate(0, 0, -400)

		rng := rand.New(rand.NewSource(11))
		schedule := portfolio.ExpandLoan(rng, &loan, now)

		for _, inst := range schedule {
			assert.Equal(t, portfolio.StatePaid, inst.State,
				"old installments of a %s loan must be paid", status)
		}
	}
}

func TestExpandLoan_OldWindowOverdueProbability(t *testing.T) {
	now := testNow

	overdue, total := 0, 0
	for trial := 0; trial < 2000; trial++ {
		loan := delinquentFixtureLoan(now)
		loan.TermMonths = 6
		loan.DisbursementDate = now.AddDate(0, 0, -400)

		rng := rand.New(rand.NewSource(int64(trial)))
		for _, inst := range portfolio.ExpandLoan(rng, &loan, now) {
			total++
			if inst.State == portfolio.StateOverdue {
				overdue++
			}
		}
	}

	assert.InDelta(t, 0.7, float64(overdue)/float64(total), 0.02)
}

func TestExpandLoan_RecentWindowOverdueProbability(t *testing.T) {
	now := testNow

	overdue, total := 0, 0
	for trial := 0; trial < 5000; trial++ {
		loan := delinquentFixtureLoan(now)
		loan.Status = portfolio.LoanStatusActive
		loan.TermMonths = 3
		// First installment falls 15 days before now, inside the recent window;
		// the rest are in the future.
		loan.DisbursementDate = now.AddDate(0, 0, -45)

		rng := rand.New(rand.NewSource(int64(trial)))
		schedule := portfolio.ExpandLoan(rng, &loan, now)

		total++
		if schedule[0].State == portfolio.StateOverdue {
			overdue++
		}
		assert.Equal(t, portfolio.StatePending, schedule[1].State)
		assert.Equal(t, portfolio.StatePending, schedule[2].State)
	}

	assert.InDelta(t, 0.3, float64(overdue)/float64(total), 0.02)
}
