package service

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sourcegraph/conc/pool"
	"github.com/stayrate/stayrate/internal/domain/rateplan"
	ierr "github.com/stayrate/stayrate/internal/errors"
	"github.com/stayrate/stayrate/internal/types"
)

// RateResolverService computes nightly rates for a plan. Resolution is a
// pure computation over an immutable plan snapshot plus a context record:
// the same inputs always produce the same entry.
type RateResolverService interface {
	// ResolveNightlyRate resolves the rate for a single night
	ResolveNightlyRate(ctx context.Context, plan *rateplan.RatePlan, date time.Time, rctx rateplan.RuleContext, opts *ResolveOptions) (*rateplan.RateCalendarEntry, error)

	// ResolveCalendar resolves every night in [start, end) concurrently
	// and returns the entries in date order
	ResolveCalendar(ctx context.Context, plan *rateplan.RatePlan, start, end time.Time, rctx rateplan.RuleContext, opts *ResolveOptions) ([]*rateplan.RateCalendarEntry, error)
}

// ResolveOptions tunes a single resolution request
type ResolveOptions struct {
	// DisableWeekendMultiplier skips the plan-level weekend multiplier
	// step regardless of plan settings. The interaction between the
	// weekend multiplier and explicit day-of-week rules is an operator
	// policy, so callers can opt out per request.
	DisableWeekendMultiplier bool

	// DisableAutomation skips the automation adjustment pipeline
	DisableAutomation bool

	// Precision overrides the currency's minor-unit rounding precision
	Precision *int32
}

type rateResolverService struct {
	ServiceParams
}

// NewRateResolverService creates a new rate resolver service
func NewRateResolverService(params ServiceParams) RateResolverService {
	return &rateResolverService{ServiceParams: params}
}

func (s *rateResolverService) ResolveNightlyRate(
	ctx context.Context,
	plan *rateplan.RatePlan,
	date time.Time,
	rctx rateplan.RuleContext,
	opts *ResolveOptions,
) (*rateplan.RateCalendarEntry, error) {
	if opts == nil {
		opts = &ResolveOptions{}
	}
	if !plan.IsActive() {
		return nil, ierr.NewError("rate plan is not active").
			WithHintf("Rate plan %s has status %s and cannot resolve rates", plan.Name, plan.PlanStatus).
			WithReportableDetails(map[string]any{"rate_plan_id": plan.ID, "plan_status": plan.PlanStatus}).
			Mark(ierr.ErrInvalidPlanState)
	}
	if date.IsZero() {
		return nil, ierr.NewError("date is outside the representable calendar range").
			WithHint("A valid calendar date is required").
			Mark(ierr.ErrInvalidDate)
	}

	night := types.TruncateToDate(date)
	rctx.Date = night

	// Collect enabled rules that match the context, preserving list order
	// so the priority sort below can break ties deterministically.
	matched := make([]rateplan.PricingRule, 0, len(plan.Rules))
	for _, rule := range plan.Rules {
		if rule.Matches(rctx) {
			matched = append(matched, rule)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Priority > matched[j].Priority
	})

	running := plan.BaseRate
	matchedRuleIDs := make([]string, 0, len(matched))
	applied := make([]rateplan.AppliedModifier, 0)

	for _, rule := range matched {
		matchedRuleIDs = append(matchedRuleIDs, rule.ID)
		for _, modifier := range rule.Modifiers {
			next, err := modifier.Apply(running, plan.BaseRate)
			if err != nil {
				return nil, err
			}
			running = next
			applied = append(applied, rateplan.AppliedModifier{
				ModifierID:  modifier.ID,
				RuleID:      rule.ID,
				Name:        modifier.Name,
				Kind:        modifier.Kind,
				Value:       modifier.Value,
				RunningRate: running,
			})
		}
	}

	// Weekend multiplier step: Friday and Saturday nights, unless an
	// explicit day-of-week rule already matched covering that weekday.
	weekendApplied := false
	if plan.AllowWeekendPricing && !opts.DisableWeekendMultiplier && isWeekendNight(night) {
		covered := false
		for _, rule := range matched {
			if rule.CoversWeekday(night.Weekday()) {
				covered = true
				break
			}
		}
		if !covered {
			running = running.Mul(plan.GetWeekendMultiplier())
			weekendApplied = true
		}
	}

	preClamp := running
	running = plan.ClampRate(running)

	// The automation pipeline runs after the plan clamp and before final
	// rounding, bounded by the same clamp bounds plus its own constraints.
	if plan.Automation != nil && plan.Automation.Enabled && !opts.DisableAutomation {
		running = s.applyAutomation(plan, running, rctx)
	}

	precision := types.GetCurrencyPrecision(plan.Currency)
	if opts.Precision != nil {
		precision = *opts.Precision
	}

	return &rateplan.RateCalendarEntry{
		ID:                       types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CALENDAR_ENTRY),
		RatePlanID:               plan.ID,
		Date:                     night,
		BaseRate:                 plan.BaseRate,
		PreClampRate:             preClamp,
		FinalRate:                running.Round(precision),
		Currency:                 plan.Currency,
		MatchedRuleIDs:           matchedRuleIDs,
		AppliedModifiers:         applied,
		WeekendMultiplierApplied: weekendApplied,
		OccupancyPct:             rctx.OccupancyPct,
	}, nil
}

func (s *rateResolverService) ResolveCalendar(
	ctx context.Context,
	plan *rateplan.RatePlan,
	start, end time.Time,
	rctx rateplan.RuleContext,
	opts *ResolveOptions,
) ([]*rateplan.RateCalendarEntry, error) {
	nights := types.NightsBetween(start, end)
	if nights <= 0 {
		return nil, ierr.NewError("calendar range is empty or inverted").
			WithHint("End date must be after the start date").
			Mark(ierr.ErrInvalidDateRange)
	}
	if max := s.Config.Quote.MaxCalendarDays; max > 0 && nights > max {
		return nil, ierr.NewError("calendar range too large").
			WithHintf("A single calendar request covers at most %d nights", max).
			Mark(ierr.ErrValidation)
	}

	// Nightly resolutions are independent pure computations, so each night
	// is resolved on its own goroutine. Entries land at their date index,
	// which keeps the output in date order without any post-sort.
	entries := make([]*rateplan.RateCalendarEntry, nights)
	first := types.TruncateToDate(start)

	p := pool.New().WithErrors().WithContext(ctx)
	for i := 0; i < nights; i++ {
		i := i
		p.Go(func(ctx context.Context) error {
			night := first.AddDate(0, 0, i)
			entry, err := s.ResolveNightlyRate(ctx, plan, night, rctx, opts)
			if err != nil {
				return err
			}
			entries[i] = entry
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	return entries, nil
}

func isWeekendNight(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Friday || wd == time.Saturday
}

// applyAutomation runs the plan's automation pipeline on a clamped nightly
// rate and returns the adjusted rate, still within the plan's clamp bounds.
func (s *rateResolverService) applyAutomation(
	plan *rateplan.RatePlan,
	rate decimal.Decimal,
	rctx rateplan.RuleContext,
) decimal.Decimal {
	a := plan.Automation
	adjusted := rate
	hundred := decimal.NewFromInt(100)

	// Occupancy thresholds: the highest threshold at or below the current
	// occupancy wins.
	var best *rateplan.OccupancyThreshold
	for i := range a.OccupancyThresholds {
		t := &a.OccupancyThresholds[i]
		if rctx.OccupancyPct >= t.ThresholdPct && (best == nil || t.ThresholdPct > best.ThresholdPct) {
			best = t
		}
	}
	if best != nil {
		adjusted = adjusted.Add(adjusted.Mul(best.AdjustmentPct).Div(hundred))
	}

	if a.DemandMultiplier != nil {
		adjusted = adjusted.Mul(*a.DemandMultiplier)
	}

	if a.CompetitorAdjustmentPct != nil {
		adjusted = adjusted.Add(adjusted.Mul(*a.CompetitorAdjustmentPct).Div(hundred))
	}

	if a.EarlyBird != nil && rctx.AdvanceBookingDays >= a.EarlyBird.DaysInAdvance {
		adjusted = adjusted.Sub(adjusted.Mul(a.EarlyBird.DiscountPct).Div(hundred))
	}
	if a.LastMinute != nil && rctx.AdvanceBookingDays <= a.LastMinute.DaysInAdvance {
		adjusted = adjusted.Sub(adjusted.Mul(a.LastMinute.DiscountPct).Div(hundred))
	}

	// Cap the absolute delta automation may introduce on a single night
	if maxDelta := a.Constraints.MaxAdjustmentPerDay; maxDelta != nil {
		delta := adjusted.Sub(rate)
		if delta.Abs().GreaterThan(*maxDelta) {
			if delta.IsNegative() {
				adjusted = rate.Sub(*maxDelta)
			} else {
				adjusted = rate.Add(*maxDelta)
			}
		}
	}

	adjusted = a.Constraints.ClampRate(adjusted)
	return plan.ClampRate(adjusted)
}
