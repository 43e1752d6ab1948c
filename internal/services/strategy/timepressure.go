package strategy

import (
	"fmt"
	"time"

	"counsel/internal/domain"
)

// Leverage thresholds in whole days before the earliest relevant deadline.
const (
	leverageHighAbove    = 14
	leverageLowAtOrUnder = 3
)

// ComputeTimePressure derives negotiating leverage from the earliest of the
// next hearing date and the disclosure deadline, relative to now. With no
// dates on file the leverage defaults to medium; the state is never absent.
func ComputeTimePressure(snap domain.CaseSnapshot, now time.Time) domain.TimePressureState {
	deadline, label, ok := earliestDeadline(snap, now)
	if !ok {
		return domain.TimePressureState{
			CurrentLeverage:     domain.LeverageMedium,
			LeverageExplanation: "No scheduled hearing or disclosure deadline on file; leverage assessed as medium by default.",
		}
	}

	days := int(deadline.Sub(now).Hours() / 24)
	state := domain.TimePressureState{DaysToHearing: &days}

	switch {
	case deadline.Before(now):
		state.CurrentLeverage = domain.LeverageLow
		state.LeverageExplanation = fmt.Sprintf("The %s has passed; time-based leverage has been lost.", label)
	case days <= leverageLowAtOrUnder:
		state.CurrentLeverage = domain.LeverageLow
		state.LeverageExplanation = fmt.Sprintf("Only %d day(s) until the %s; leverage is nearly exhausted.", days, label)
	case days <= leverageHighAbove:
		state.CurrentLeverage = domain.LeverageMedium
		state.LeverageExplanation = fmt.Sprintf("%d days until the %s; moderate leverage remains.", days, label)
	default:
		state.CurrentLeverage = domain.LeverageHigh
		state.LeverageExplanation = fmt.Sprintf("%d days until the %s; time pressure favours the defence.", days, label)
	}
	return state
}

// earliestDeadline picks the sooner of the next hearing and the disclosure
// deadline. A passed disclosure deadline still counts: lost leverage must be
// reported, not ignored.
func earliestDeadline(snap domain.CaseSnapshot, now time.Time) (time.Time, string, bool) {
	var deadline time.Time
	label := ""
	found := false

	if h, ok := snap.NextHearing(now); ok {
		deadline, label, found = h.Date, fmt.Sprintf("next hearing (%s)", h.Type), true
	}
	if d := snap.DisclosureDeadline; d != nil {
		if !found || d.Before(deadline) {
			deadline, label, found = *d, "disclosure deadline", true
		}
	}
	return deadline, label, found
}
