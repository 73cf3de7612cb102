package portfolio

import (
	"fmt"
	"math/rand"
	"time"

	"credit-dashboard/internal/pkg/apperrors"
)

const DefaultLoanCount = 200

// Loan status draw weights: ACTIVE 0.60, CANCELLED 0.25, DELINQUENT 0.15.
const (
	activeWeight    = 0.60
	cancelledWeight = 0.25
)

// Generator produces the synthetic credit population. It owns an explicit
// seeded source so that a fixed seed yields a bit-identical dataset on every
// run; nothing in this package touches the global rand.
type Generator struct {
	rng       *rand.Rand
	roster    []Client
	loanCount int
}

func NewGenerator(seed int64, roster []Client, loanCount int) (*Generator, error) {
	if loanCount <= 0 {
		return nil, fmt.Errorf("%w: loan count must be positive, got %d", apperrors.ErrConfiguration, loanCount)
	}
	if len(roster) == 0 {
		return nil, fmt.Errorf("%w: client roster is empty", apperrors.ErrConfiguration)
	}
	return &Generator{
		rng:       rand.New(rand.NewSource(seed)),
		roster:    roster,
		loanCount: loanCount,
	}, nil
}

// Generate builds the full population against the given frozen "now": the
// roster, one year of loans, and every loan's installment schedule with
// lifecycle states already assigned.
//
// The draw order is fixed and part of the contract: per loan it is client,
// principal, rate, disbursement offset, term, status; then schedules are
// expanded in loan order, consuming the same stream.
func (g *Generator) Generate(now time.Time) ([]Client, []Loan, []Installment) {
	clients := make([]Client, len(g.roster))
	copy(clients, g.roster)

	yearStart := now.AddDate(0, 0, -365)

	loans := make([]Loan, 0, g.loanCount)
	for i := 0; i < g.loanCount; i++ {
		client := g.roster[g.rng.Intn(len(g.roster))]
		loans = append(loans, Loan{
			ID:               int64(i + 1),
			ClientID:         client.ID,
			ClientName:       client.Name,
			ClientCategory:   client.Category,
			Principal:        500 + g.rng.Float64()*14500,
			AnnualRate:       5 + g.rng.Float64()*13,
			DisbursementDate: yearStart.AddDate(0, 0, g.rng.Intn(365)),
			TermMonths:       LoanTermChoices[g.rng.Intn(len(LoanTermChoices))],
			Status:           g.drawStatus(),
		})
	}

	installments := make([]Installment, 0, g.loanCount*12)
	nextID := int64(1)
	for i := range loans {
		schedule := ExpandLoan(g.rng, &loans[i], now)
		for j := range schedule {
			schedule[j].ID = nextID
			nextID++
		}
		installments = append(installments, schedule...)
	}

	return clients, loans, installments
}

func (g *Generator) drawStatus() LoanStatus {
	r := g.rng.Float64()
	switch {
	case r < activeWeight:
		return LoanStatusActive
	case r < activeWeight+cancelledWeight:
		return LoanStatusCancelled
	default:
		return LoanStatusDelinquent
	}
}
