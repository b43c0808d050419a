package breakeven

import (
	"context"
	"errors"

	"github.com/rgehrsitz/fvgo/internal/domain"
	"github.com/shopspring/decimal"
)

// Ladder is the required contribution for each of several goals
type Ladder struct {
	Results     []Result
	Unreachable []decimal.Decimal
}

// ContributionLadder solves RequiredContribution for every goal. Unreachable goals are
// collected rather than failing the whole run.
func (s *Solver) ContributionLadder(ctx context.Context, in domain.MonthlyContributionsInput, goals []decimal.Decimal) (*Ladder, error) {
	ladder := &Ladder{}
	for _, goal := range goals {
		result, err := s.RequiredContribution(ctx, in, goal)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			var be *BreakEvenError
			if errors.As(err, &be) && be.Cause == nil {
				ladder.Unreachable = append(ladder.Unreachable, goal)
				continue
			}
			return nil, err
		}
		ladder.Results = append(ladder.Results, *result)
	}

	if len(ladder.Results) == 0 {
		return nil, &BreakEvenError{
			Operation: "contribution_ladder",
			Message:   "no goal is reachable",
		}
	}
	return ladder, nil
}
