package request

import (
	"errors"

	"github.com/MAZTEK-CODENIGHT/backend/internal/domain/entities"
)

var (
	ErrEmptyScenario  = errors.New("scenario must contain at least one field")
	ErrTooManyAddOns  = errors.New("too many add-ons")
	ErrInvalidAddOnID = errors.New("invalid add-on id")
)

const maxAddOnsPerScenario = 5

// ScenarioRequest is the wire form of a what-if scenario. Pointer fields
// distinguish "absent" from zero values so the at-least-one-field rule can
// be enforced here, before the engine is invoked.
type ScenarioRequest struct {
	PlanID             *string  `json:"plan_id"`
	AddOns             []string `json:"addons"`
	DisableVAS         *bool    `json:"disable_vas"`
	BlockPremiumSMS    *bool    `json:"block_premium_sms"`
	EnableRoamingBlock *bool    `json:"enable_roaming_block"`
}

func (r ScenarioRequest) Validate() error {
	if r.PlanID == nil && r.AddOns == nil && r.DisableVAS == nil &&
		r.BlockPremiumSMS == nil && r.EnableRoamingBlock == nil {
		return ErrEmptyScenario
	}
	if len(r.AddOns) > maxAddOnsPerScenario {
		return ErrTooManyAddOns
	}
	for _, id := range r.AddOns {
		if id == "" {
			return ErrInvalidAddOnID
		}
	}
	return nil
}

func (r ScenarioRequest) ToScenario() entities.Scenario {
	sc := entities.Scenario{AddOns: r.AddOns}
	if r.PlanID != nil {
		sc.PlanID = *r.PlanID
	}
	if r.DisableVAS != nil {
		sc.DisableVAS = *r.DisableVAS
	}
	if r.BlockPremiumSMS != nil {
		sc.BlockPremiumSMS = *r.BlockPremiumSMS
	}
	if r.EnableRoamingBlock != nil {
		sc.EnableRoamingBlock = *r.EnableRoamingBlock
	}
	return sc
}

// WhatIfRequest is the payload of POST /v1/whatif/:user_id.
type WhatIfRequest struct {
	Period   string          `json:"period" binding:"required"`
	Scenario ScenarioRequest `json:"scenario" binding:"required"`
}

// CompareRequest is the payload of POST /v1/whatif/:user_id/compare.
type CompareRequest struct {
	Period    string            `json:"period" binding:"required"`
	Scenarios []ScenarioRequest `json:"scenarios" binding:"required,min=1,max=5"`
}

func (r CompareRequest) ToScenarios() ([]entities.Scenario, error) {
	scenarios := make([]entities.Scenario, 0, len(r.Scenarios))
	for _, sr := range r.Scenarios {
		if err := sr.Validate(); err != nil {
			return nil, err
		}
		scenarios = append(scenarios, sr.ToScenario())
	}
	return scenarios, nil
}
