package domain

import "strings"

type RiskTolerance string

const (
	RiskConservative RiskTolerance = "conservative"
	RiskModerate     RiskTolerance = "moderate"
	RiskAggressive   RiskTolerance = "aggressive"
)

// ParseRiskTolerance normalizes a free-text tolerance label.
// Unrecognized values fall back to moderate, matching the advice rules.
func ParseRiskTolerance(s string) RiskTolerance {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "conservative":
		return RiskConservative
	case "aggressive":
		return RiskAggressive
	default:
		return RiskModerate
	}
}

type UserType string

const (
	UserStudent      UserType = "student"
	UserProfessional UserType = "professional"
	UserRetiree      UserType = "retiree"
)

type Intent string

const (
	IntentBudgeting  Intent = "budgeting"
	IntentInvestment Intent = "investment"
	IntentSavings    Intent = "savings"
	IntentDebt       Intent = "debt"
	IntentTax        Intent = "tax"
	IntentInsurance  Intent = "insurance"
	IntentRetirement Intent = "retirement"
	IntentGeneral    Intent = "general"
)

// ClassifiableIntents lists the intents the classifier scores, in the
// canonical order used to break ties. IntentGeneral is the zero-match
// fallback and is never scored.
var ClassifiableIntents = []Intent{
	IntentBudgeting,
	IntentInvestment,
	IntentSavings,
	IntentDebt,
	IntentTax,
	IntentInsurance,
	IntentRetirement,
}

type Sentiment string

const (
	SentimentPositive Sentiment = "POSITIVE"
	SentimentNegative Sentiment = "NEGATIVE"
	SentimentNeutral  Sentiment = "NEUTRAL"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)
