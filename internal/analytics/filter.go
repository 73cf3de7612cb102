package analytics

import (
	"fmt"
	"time"

	"credit-dashboard/internal/domain/portfolio"
	"credit-dashboard/internal/pkg/apperrors"
)

// Filter restricts a snapshot before aggregation. The set-valued fields are
// literal memberships: an empty set matches nothing, it is not "no filter".
//
// Loans and installments are filtered independently. Loans see the date range,
// category and loan status; installments see only category and installment
// state. In particular an installment survives the filter even when its parent
// loan's disbursement date falls outside the range — observable in the output
// and kept that way on purpose.
type Filter struct {
	From              time.Time
	To                time.Time
	Categories        []portfolio.ClientCategory
	LoanStatuses      []portfolio.LoanStatus
	InstallmentStates []portfolio.InstallmentState
}

// Validate rejects a range whose end precedes its start. Both ends are
// inclusive.
func (f Filter) Validate() error {
	if f.To.Before(f.From) {
		return fmt.Errorf("%w: end %s before start %s",
			apperrors.ErrInvalidRange, f.To.Format(time.DateOnly), f.From.Format(time.DateOnly))
	}
	return nil
}

func (f Filter) matchLoan(l *portfolio.Loan) bool {
	if !containsCategory(f.Categories, l.ClientCategory) {
		return false
	}
	if !containsStatus(f.LoanStatuses, l.Status) {
		return false
	}
	return !l.DisbursementDate.Before(f.From) && !l.DisbursementDate.After(f.To)
}

func (f Filter) matchInstallment(i *portfolio.Installment) bool {
	return containsCategory(f.Categories, i.ClientCategory) && containsState(f.InstallmentStates, i.State)
}

// View is a filtered snapshot: the loan and installment subsets every
// aggregate in this package is computed over. All aggregates are pure reads;
// a View can be shared freely.
type View struct {
	Loans        []portfolio.Loan
	Installments []portfolio.Installment

	// GeneratedAt is carried from the snapshot so forward-looking aggregates
	// use the same frozen "now" the installment states were derived with.
	GeneratedAt time.Time
}

// NewView validates the filter and applies it to the snapshot. Empty results
// are valid; callers distinguish them through zero-valued aggregates.
func NewView(snap *portfolio.Snapshot, f Filter) (*View, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	v := &View{GeneratedAt: snap.GeneratedAt}
	for i := range snap.Loans {
		if f.matchLoan(&snap.Loans[i]) {
			v.Loans = append(v.Loans, snap.Loans[i])
		}
	}
	for i := range snap.Installments {
		if f.matchInstallment(&snap.Installments[i]) {
			v.Installments = append(v.Installments, snap.Installments[i])
		}
	}
	return v, nil
}

func containsCategory(set []portfolio.ClientCategory, c portfolio.ClientCategory) bool {
	for _, m := range set {
		if m == c {
			return true
		}
	}
	return false
}

func containsStatus(set []portfolio.LoanStatus, s portfolio.LoanStatus) bool {
	for _, m := range set {
		if m == s {
			return true
		}
	}
	return false
}

func containsState(set []portfolio.InstallmentState, s portfolio.InstallmentState) bool {
	for _, m := range set {
		if m == s {
			return true
		}
	}
	return false
}
