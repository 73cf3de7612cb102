package dto

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"credit-dashboard/internal/domain/portfolio"
	"credit-dashboard/internal/pkg/apperrors"
)

var generatedAt = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func TestParseFilterQuery_Defaults(t *testing.T) {
	f, err := ParseFilterQuery(url.Values{}, generatedAt)
	require.NoError(t, err)

	assert.Equal(t, generatedAt.AddDate(0, 0, -180), f.From)
	assert.Equal(t, generatedAt, f.To)
	assert.Equal(t, portfolio.ClientCategories, f.Categories)
	assert.Equal(t, portfolio.LoanStatuses, f.LoanStatuses)
	assert.Equal(t, portfolio.InstallmentStates, f.InstallmentStates)
}

func TestParseFilterQuery_ExplicitRange(t *testing.T) {
	q := url.Values{}
	q.Set("from", "2026-01-01")
	q.Set("to", "2026-02-01")

	f, err := ParseFilterQuery(q, generatedAt)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), f.From)
	assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), f.To)
}

func TestParseFilterQuery_BadDates(t *testing.T) {
	for _, param := range []string{"from", "to"} {
		q := url.Values{}
		q.Set(param, "01/02/2026")

		_, err := ParseFilterQuery(q, generatedAt)
		assert.True(t, errors.Is(err, apperrors.ErrValidation), "param %s should fail validation", param)
	}
}

func TestParseFilterQuery_SetSemantics(t *testing.T) {
	t.Run("AbsentMeansAll", func(t *testing.T) {
		f, err := ParseFilterQuery(url.Values{}, generatedAt)
		require.NoError(t, err)
		assert.Len(t, f.Categories, len(portfolio.ClientCategories))
	})

	t.Run("EmptyMeansNone", func(t *testing.T) {
		q := url.Values{}
		q.Set("categories", "")

		f, err := ParseFilterQuery(q, generatedAt)
		require.NoError(t, err)
		assert.NotNil(t, f.Categories)
		assert.Empty(t, f.Categories)
	})

	t.Run("ExplicitSubset", func(t *testing.T) {
		q := url.Values{}
		q.Set("loanStatuses", "active,delinquent")

		f, err := ParseFilterQuery(q, generatedAt)
		require.NoError(t, err)
		assert.Equal(t, []portfolio.LoanStatus{portfolio.LoanStatusActive, portfolio.LoanStatusDelinquent}, f.LoanStatuses)
	})

	t.Run("UnknownMemberRejected", func(t *testing.T) {
		q := url.Values{}
		q.Set("installmentStates", "PAID,BOGUS")

		_, err := ParseFilterQuery(q, generatedAt)
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
	})
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "1120.00", formatMoney(1120))
	assert.Equal(t, "0.10", formatMoney(0.1))
	assert.Equal(t, "12345.68", formatMoney(12345.675))
}
