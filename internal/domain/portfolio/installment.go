package portfolio

import "time"

type InstallmentState string

const (
	StatePending InstallmentState = "PENDING"
	StatePaid    InstallmentState = "PAID"
	StateOverdue InstallmentState = "OVERDUE"
)

// InstallmentStates lists every state in a fixed presentation order.
var InstallmentStates = []InstallmentState{StatePending, StatePaid, StateOverdue}

// Installment is one scheduled repayment of a loan. State is fixed at
// generation time against the snapshot's frozen "now"; nothing mutates an
// installment afterwards.
//
// DaysOverdue is the current arrears for OVERDUE installments, and the payment
// lag (clamped at zero) for PAID ones; it is always zero for PENDING.
type Installment struct {
	ID                 int64            `json:"id"`
	LoanID             int64            `json:"loanId"`
	ClientID           int64            `json:"clientId"`
	ClientName         string           `json:"clientName"`
	ClientCategory     ClientCategory   `json:"clientCategory"`
	SequenceNumber     int              `json:"sequenceNumber"`
	PrincipalComponent Money            `json:"principalComponent"`
	InterestComponent  Money            `json:"interestComponent"`
	TotalDue           Money            `json:"totalDue"`
	DueDate            time.Time        `json:"dueDate"`
	PaidDate           *time.Time       `json:"paidDate,omitempty"`
	State              InstallmentState `json:"state"`
	DaysOverdue        int              `json:"daysOverdue"`
}
