package analytics_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"credit-dashboard/internal/analytics"
	"credit-dashboard/internal/domain/portfolio"
	"credit-dashboard/internal/pkg/apperrors"
)

var viewNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func allFilter(from, to time.Time) analytics.Filter {
	return analytics.Filter{
		From:              from,
		To:                to,
		Categories:        portfolio.ClientCategories,
		LoanStatuses:      portfolio.LoanStatuses,
		InstallmentStates: portfolio.InstallmentStates,
	}
}

func fixtureSnapshot(t *testing.T) *portfolio.Snapshot {
	t.Helper()
	snap, err := portfolio.BuildSnapshot(42, 200, viewNow)
	require.NoError(t, err)
	return snap
}

func TestNewView_InvalidRange(t *testing.T) {
	snap := fixtureSnapshot(t)
	f := allFilter(viewNow, viewNow.AddDate(0, 0, -1))

	_, err := analytics.NewView(snap, f)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidRange))
}

func TestNewView_FullExtentKeepsEverything(t *testing.T) {
	snap := fixtureSnapshot(t)
	f := allFilter(viewNow.AddDate(-2, 0, 0), viewNow)

	view, err := analytics.NewView(snap, f)
	require.NoError(t, err)

	assert.Len(t, view.Loans, len(snap.Loans))
	assert.Len(t, view.Installments, len(snap.Installments))
	assert.Equal(t, snap.GeneratedAt, view.GeneratedAt)
}

func TestNewView_DateRangeIsInclusive(t *testing.T) {
	snap := fixtureSnapshot(t)
	target := snap.Loans[0].DisbursementDate

	f := allFilter(target, target)
	view, err := analytics.NewView(snap, f)
	require.NoError(t, err)

	require.NotEmpty(t, view.Loans)
	for _, l := range view.Loans {
		assert.Equal(t, target, l.DisbursementDate)
	}
}

func TestNewView_EmptySetMatchesNothing(t *testing.T) {
	snap := fixtureSnapshot(t)

	t.Run("EmptyCategories", func(t *testing.T) {
		f := allFilter(viewNow.AddDate(-2, 0, 0), viewNow)
		f.Categories = []portfolio.ClientCategory{}

		view, err := analytics.NewView(snap, f)
		require.NoError(t, err)
		assert.Empty(t, view.Loans)
		assert.Empty(t, view.Installments)
	})

	t.Run("EmptyLoanStatuses", func(t *testing.T) {
		f := allFilter(viewNow.AddDate(-2, 0, 0), viewNow)
		f.LoanStatuses = []portfolio.LoanStatus{}

		view, err := analytics.NewView(snap, f)
		require.NoError(t, err)
		assert.Empty(t, view.Loans)
		// Installments ignore the loan status filter entirely.
		assert.NotEmpty(t, view.Installments)
	})

	t.Run("EmptyInstallmentStates", func(t *testing.T) {
		f := allFilter(viewNow.AddDate(-2, 0, 0), viewNow)
		f.InstallmentStates = []portfolio.InstallmentState{}

		view, err := analytics.NewView(snap, f)
		require.NoError(t, err)
		assert.NotEmpty(t, view.Loans)
		assert.Empty(t, view.Installments)
	})
}

func TestNewView_InstallmentsIgnoreDateRange(t *testing.T) {
	snap := fixtureSnapshot(t)

	// A one-day range keeps almost no loans, but installments of every client
	// category and state survive untouched.
	day := snap.Loans[0].DisbursementDate
	f := allFilter(day, day)

	view, err := analytics.NewView(snap, f)
	require.NoError(t, err)

	assert.Less(t, len(view.Loans), len(snap.Loans))
	assert.Len(t, view.Installments, len(snap.Installments))
}

func TestNewView_CategoryFilterAppliesToBoth(t *testing.T) {
	snap := fixtureSnapshot(t)
	f := allFilter(viewNow.AddDate(-2, 0, 0), viewNow)
	f.Categories = []portfolio.ClientCategory{portfolio.CategoryLegal}

	view, err := analytics.NewView(snap, f)
	require.NoError(t, err)

	require.NotEmpty(t, view.Loans)
	for _, l := range view.Loans {
		assert.Equal(t, portfolio.CategoryLegal, l.ClientCategory)
	}
	require.NotEmpty(t, view.Installments)
	for _, inst := range view.Installments {
		assert.Equal(t, portfolio.CategoryLegal, inst.ClientCategory)
	}
}

func TestNewView_StateFilterSelectsSubset(t *testing.T) {
	snap := fixtureSnapshot(t)
	f := allFilter(viewNow.AddDate(-2, 0, 0), viewNow)
	f.InstallmentStates = []portfolio.InstallmentState{portfolio.StateOverdue}

	view, err := analytics.NewView(snap, f)
	require.NoError(t, err)

	require.NotEmpty(t, view.Installments)
	for _, inst := range view.Installments {
		assert.Equal(t, portfolio.StateOverdue, inst.State)
	}
}
