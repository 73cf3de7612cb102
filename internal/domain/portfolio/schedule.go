package portfolio

import (
	"math/rand"
	"time"
)

// Installment lifecycle policy constants. An installment more than 30 days
// past due sits in the "old" window, where only delinquent loans keep unpaid
// installments (with probability 0.7); anything due within the last 30 days is
// in the "recent" window and goes overdue with probability 0.3 regardless of
// the loan's status.
const (
	oldWindowDays      = 30
	oldOverdueProb     = 0.7
	recentOverdueProb  = 0.3
	projectionHorizon  = 90 // days, used by the aggregation layer
	schedulePeriodDays = 30
)

// ProjectionHorizonDays is the forward window of the collection projection.
const ProjectionHorizonDays = projectionHorizon

// ExpandLoan generates the loan's full installment schedule against the frozen
// "now". Due dates are flat 30-day periods from disbursement, deliberately not
// calendar-month arithmetic; monthly reporting truncates the disbursement date
// independently, so the two must not be conflated.
//
// Each installment consumes its own draws from rng in sequence order, so the
// expansion is deterministic for a given source position.
func ExpandLoan(rng *rand.Rand, loan *Loan, now time.Time) []Installment {
	principalPart := loan.PrincipalComponent()
	interestPart := loan.InterestComponent()

	schedule := make([]Installment, 0, loan.TermMonths)
	for seq := 1; seq <= loan.TermMonths; seq++ {
		inst := Installment{
			LoanID:             loan.ID,
			ClientID:           loan.ClientID,
			ClientName:         loan.ClientName,
			ClientCategory:     loan.ClientCategory,
			SequenceNumber:     seq,
			PrincipalComponent: principalPart,
			InterestComponent:  interestPart,
			TotalDue:           principalPart + interestPart,
			DueDate:            loan.DisbursementDate.AddDate(0, 0, schedulePeriodDays*seq),
		}
		assignState(rng, &inst, loan.Status, now)
		schedule = append(schedule, inst)
	}
	return schedule
}

// assignState applies the delinquency policy. Draw order matters: in the old
// window the Bernoulli draw happens only for delinquent loans, and the paid
// jitter draw happens only when the installment ends up paid.
func assignState(rng *rand.Rand, inst *Installment, status LoanStatus, now time.Time) {
	oldCutoff := now.AddDate(0, 0, -oldWindowDays)

	switch {
	case inst.DueDate.Before(oldCutoff):
		if status == LoanStatusDelinquent && rng.Float64() < oldOverdueProb {
			markOverdue(inst, now)
			return
		}
		markPaid(inst, rng.Intn(15)-5)
	case inst.DueDate.Before(now):
		if rng.Float64() < recentOverdueProb {
			markOverdue(inst, now)
			return
		}
		markPaid(inst, rng.Intn(8)-3)
	default:
		inst.State = StatePending
	}
}

func markOverdue(inst *Installment, now time.Time) {
	inst.State = StateOverdue
	inst.DaysOverdue = daysBetween(inst.DueDate, now)
}

// markPaid records a payment jittered around the due date. A positive jitter
// is a late payment and is kept as DaysOverdue even though the installment
// ultimately got paid.
func markPaid(inst *Installment, jitterDays int) {
	paid := inst.DueDate.AddDate(0, 0, jitterDays)
	inst.State = StatePaid
	inst.PaidDate = &paid
	if jitterDays > 0 {
		inst.DaysOverdue = jitterDays
	}
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
