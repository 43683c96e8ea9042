package service

import (
	"testing"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/stayrate/stayrate/internal/api/dto"
	"github.com/stayrate/stayrate/internal/domain/rateplan"
	ierr "github.com/stayrate/stayrate/internal/errors"
	"github.com/stayrate/stayrate/internal/testutil"
	"github.com/stayrate/stayrate/internal/types"
)

type RatePlanServiceSuite struct {
	testutil.BaseServiceTestSuite
	service RatePlanService
}

func TestRatePlanService(t *testing.T) {
	suite.Run(t, new(RatePlanServiceSuite))
}

func (s *RatePlanServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	stores := s.GetStores()
	s.service = NewRatePlanService(ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		Cache:        s.GetCache(),
		RatePlanRepo: stores.RatePlanRepo,
		PropertyRepo: stores.PropertyRepo,
		BookingRepo:  stores.BookingRepo,
	})
}

func (s *RatePlanServiceSuite) createRequest() dto.CreateRatePlanRequest {
	return dto.CreateRatePlanRequest{
		Name:            "Summer Standard",
		Type:            types.RATE_PLAN_TYPE_SEASONAL,
		BaseRate:        decimal.NewFromInt(150),
		Currency:        "usd",
		PricingStrategy: types.PRICING_STRATEGY_FIXED,
	}
}

func (s *RatePlanServiceSuite) TestCreateRatePlan() {
	resp, err := s.service.CreateRatePlan(s.GetContext(), s.createRequest())
	s.NoError(err)
	s.NotEmpty(resp.ID)
	s.Equal("Summer Standard", resp.Name)
	s.Equal(types.RATE_PLAN_STATUS_DRAFT, resp.PlanStatus)

	got, err := s.service.GetRatePlan(s.GetContext(), resp.ID)
	s.NoError(err)
	s.Equal(resp.ID, got.ID)
}

func (s *RatePlanServiceSuite) TestCreateRatePlanRejectsUnknownCurrency() {
	req := s.createRequest()
	req.Currency = "xxx"
	_, err := s.service.CreateRatePlan(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *RatePlanServiceSuite) TestUpdateRatePlan() {
	resp, err := s.service.CreateRatePlan(s.GetContext(), s.createRequest())
	s.NoError(err)

	updated, err := s.service.UpdateRatePlan(s.GetContext(), resp.ID, dto.UpdateRatePlanRequest{
		PlanStatus:  lo.ToPtr(types.RATE_PLAN_STATUS_ACTIVE),
		MinimumRate: lo.ToPtr(decimal.NewFromInt(100)),
		MaximumRate: lo.ToPtr(decimal.NewFromInt(300)),
	})
	s.NoError(err)
	s.Equal(types.RATE_PLAN_STATUS_ACTIVE, updated.PlanStatus)
	s.True(decimal.NewFromInt(100).Equal(*updated.MinimumRate))
}

func (s *RatePlanServiceSuite) TestRejectedUpdateLeavesStoredPlanUntouched() {
	resp, err := s.service.CreateRatePlan(s.GetContext(), s.createRequest())
	s.NoError(err)

	_, err = s.service.UpdateRatePlan(s.GetContext(), resp.ID, dto.UpdateRatePlanRequest{
		Name:     lo.ToPtr("Corrupted"),
		BaseRate: lo.ToPtr(decimal.NewFromInt(-50)),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	got, err := s.service.GetRatePlan(s.GetContext(), resp.ID)
	s.NoError(err)
	s.Equal("Summer Standard", got.Name, "rejected update must not mutate the stored plan")
	s.True(decimal.NewFromInt(150).Equal(got.BaseRate))
}

func (s *RatePlanServiceSuite) TestDeleteRatePlanArchives() {
	resp, err := s.service.CreateRatePlan(s.GetContext(), s.createRequest())
	s.NoError(err)

	s.NoError(s.service.DeleteRatePlan(s.GetContext(), resp.ID))

	got, err := s.service.GetRatePlan(s.GetContext(), resp.ID)
	s.NoError(err)
	s.Equal(types.RATE_PLAN_STATUS_ARCHIVED, got.PlanStatus)
}

func (s *RatePlanServiceSuite) TestAddAndRemovePricingRule() {
	resp, err := s.service.CreateRatePlan(s.GetContext(), s.createRequest())
	s.NoError(err)

	withRule, err := s.service.AddPricingRule(s.GetContext(), resp.ID, dto.CreatePricingRuleRequest{
		Name:       "Weekend Premium",
		RuleType:   types.RULE_TYPE_DAY_OF_WEEK,
		Priority:   7,
		DaysOfWeek: &rateplan.DayOfWeekCondition{Days: []int{5, 6}},
		Modifiers: []dto.CreateRateModifierRequest{
			{Name: "premium", Kind: types.MODIFIER_KIND_PERCENTAGE, Value: decimal.NewFromInt(20), ApplyToBaseRate: true},
		},
	})
	s.NoError(err)
	s.Len(withRule.Rules, 1)
	s.True(withRule.Rules[0].Enabled, "enabled must default to true")

	without, err := s.service.RemovePricingRule(s.GetContext(), resp.ID, withRule.Rules[0].ID)
	s.NoError(err)
	s.Empty(without.Rules)
}

func (s *RatePlanServiceSuite) TestRemoveUnknownRule() {
	resp, err := s.service.CreateRatePlan(s.GetContext(), s.createRequest())
	s.NoError(err)

	_, err = s.service.RemovePricingRule(s.GetContext(), resp.ID, "rule_missing")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *RatePlanServiceSuite) TestListRatePlans() {
	_, err := s.service.CreateRatePlan(s.GetContext(), s.createRequest())
	s.NoError(err)

	req := s.createRequest()
	req.Name = "Corporate Flex"
	req.Type = types.RATE_PLAN_TYPE_CORPORATE
	_, err = s.service.CreateRatePlan(s.GetContext(), req)
	s.NoError(err)

	list, err := s.service.ListRatePlans(s.GetContext(), types.NewRatePlanFilter())
	s.NoError(err)
	s.Equal(2, list.Total)

	filtered, err := s.service.ListRatePlans(s.GetContext(), &types.RatePlanFilter{
		QueryFilter: types.NewDefaultQueryFilter(),
		PlanType:    lo.ToPtr(types.RATE_PLAN_TYPE_CORPORATE),
	})
	s.NoError(err)
	s.Equal(1, filtered.Total)
	s.Equal("Corporate Flex", filtered.Plans[0].Name)
}
