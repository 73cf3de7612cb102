package portfolio

import "time"

type Money = float64

type LoanStatus string

const (
	LoanStatusActive     LoanStatus = "ACTIVE"
	LoanStatusCancelled  LoanStatus = "CANCELLED"
	LoanStatusDelinquent LoanStatus = "DELINQUENT"
)

// LoanStatuses lists every status in a fixed presentation order.
var LoanStatuses = []LoanStatus{LoanStatusActive, LoanStatusCancelled, LoanStatusDelinquent}

// LoanTermChoices are the only term lengths the generator produces, in months.
var LoanTermChoices = []int{3, 6, 12, 18, 24}

// Loan is a disbursed credit. It is immutable once generated: Status is an
// independent label assigned at generation time, not derived from the
// installment states, and the two may disagree for any single loan.
type Loan struct {
	ID               int64          `json:"id"`
	ClientID         int64          `json:"clientId"`
	ClientName       string         `json:"clientName"`
	ClientCategory   ClientCategory `json:"clientCategory"`
	Principal        Money          `json:"principal"`
	AnnualRate       float64        `json:"annualRate"`
	DisbursementDate time.Time      `json:"disbursementDate"`
	TermMonths       int            `json:"termMonths"`
	Status           LoanStatus     `json:"status"`
}

// PrincipalComponent is the per-installment share of the principal.
func (l *Loan) PrincipalComponent() Money {
	return l.Principal / float64(l.TermMonths)
}

// InterestComponent is the flat monthly interest charged on every installment:
// the annual percentage applied to the original principal, divided by twelve.
// It does not amortize.
func (l *Loan) InterestComponent() Money {
	return l.Principal * l.AnnualRate / 100 / 12
}

// InstallmentDue is the constant amount due on each installment of the loan.
func (l *Loan) InstallmentDue() Money {
	return l.PrincipalComponent() + l.InterestComponent()
}
