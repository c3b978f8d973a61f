package models

import "time"

// PersonalDetails is the identity section of an onboarding profile.
type PersonalDetails struct {
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Email string `json:"email"`
}

// OnboardingProfile captures the answers collected during onboarding.
// The personal email is unique across profiles.
type OnboardingProfile struct {
	ID              string          `json:"id"`
	Theme           string          `json:"theme"`
	PersonalDetails PersonalDetails `json:"personalDetails"`
	ReferralSource  string          `json:"referralSource"`
	Persona         string          `json:"persona"`
	PricingPlan     string          `json:"pricingPlan"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
