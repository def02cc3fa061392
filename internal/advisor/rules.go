package advisor

import (
	"fmt"
	"strings"

	"github.com/finovahq/finova/internal/domain"
	"github.com/finovahq/finova/internal/finance"
)

// The rule table. Each intent has one pure rule function over the profile
// and static advice templates; dispatch is an exhaustive switch in
// advice_service.go.

func budgetingAdvice(p *domain.UserProfile) string {
	monthlyIncome := p.MonthlyIncome()
	surplus := p.MonthlySurplus()

	var b strings.Builder
	b.WriteString("## 📊 Budgeting Advice\n\n")

	if surplus > 0 {
		savingsRate := surplus / monthlyIncome * 100
		fmt.Fprintf(&b, "Great news! You have a monthly surplus of **%s** (%s%% savings rate).\n\n",
			money(surplus), percent(savingsRate))

		switch {
		case savingsRate < 10:
			b.WriteString("**Recommendation:** Try to increase your savings rate to at least 10-15% of income.\n")
		case savingsRate < 20:
			b.WriteString("**Recommendation:** You're doing well! Consider pushing towards a 20% savings rate.\n")
		default:
			b.WriteString("**Excellent!** You're exceeding the recommended 20% savings rate.\n")
		}
	} else {
		fmt.Fprintf(&b, "⚠️ You're spending **%s** more than you earn monthly.\n\n", money(-surplus))
		b.WriteString("**Immediate Actions:**\n")
		b.WriteString("1. Track every expense for 30 days\n")
		b.WriteString("2. Identify your top 3 expense categories\n")
		b.WriteString("3. Find ways to reduce spending by 10-15%\n")
	}

	switch p.UserType {
	case domain.UserStudent:
		b.WriteString("\n**Student-Specific Tips:**\n")
		b.WriteString("- Use the 50/30/20 rule: 50% needs, 30% wants, 20% savings\n")
		b.WriteString("- Take advantage of student discounts\n")
		b.WriteString("- Consider part-time work or freelancing\n")
	case domain.UserProfessional:
		b.WriteString("\n**Professional Tips:**\n")
		b.WriteString("- Automate your savings and investments\n")
		b.WriteString("- Review and optimize subscription services\n")
		b.WriteString("- Consider meal prepping to reduce food costs\n")
	}

	return b.String()
}

// riskProfile is one fixed allocation/instrument/return triple.
type riskProfile struct {
	allocation     string
	instruments    string
	expectedReturn string
}

var riskProfiles = map[domain.RiskTolerance]riskProfile{
	domain.RiskConservative: {
		allocation:     "20% stocks, 80% bonds/CDs",
		instruments:    "Treasury bonds, high-grade corporate bonds, CDs",
		expectedReturn: "3-5% annually",
	},
	domain.RiskModerate: {
		allocation:     "60% stocks, 40% bonds",
		instruments:    "Index funds, target-date funds, balanced funds",
		expectedReturn: "6-8% annually",
	},
	domain.RiskAggressive: {
		allocation:     "80-90% stocks, 10-20% bonds",
		instruments:    "Growth stocks, small-cap funds, international funds",
		expectedReturn: "8-12% annually (with higher volatility)",
	},
}

func investmentAdvice(p *domain.UserProfile) string {
	var b strings.Builder
	b.WriteString("## 💰 Investment Advice\n\n")

	rp, ok := riskProfiles[p.RiskTolerance]
	if !ok {
		rp = riskProfiles[domain.RiskModerate]
	}

	fmt.Fprintf(&b, "Based on your **%s** risk tolerance:\n\n", p.RiskTolerance)
	fmt.Fprintf(&b, "**Recommended Allocation:** %s\n", rp.allocation)
	fmt.Fprintf(&b, "**Investment Types:** %s\n", rp.instruments)
	fmt.Fprintf(&b, "**Expected Returns:** %s\n\n", rp.expectedReturn)

	if p.Age < 30 {
		b.WriteString("**Age Advantage:** You have time for aggressive growth. Consider:\n")
		b.WriteString("- Maximum 401(k) employer match\n")
		b.WriteString("- Roth IRA for tax-free growth\n")
		b.WriteString("- Growth-focused index funds\n")
	} else if p.Age > 50 {
		b.WriteString("**Pre-Retirement Focus:** Start shifting towards preservation:\n")
		b.WriteString("- Gradually reduce stock allocation\n")
		b.WriteString("- Increase bond/stable investments\n")
		b.WriteString("- Consider catch-up contributions\n")
	}

	surplus := p.MonthlySurplus()
	if surplus > 0 && p.SavingsAmount > 0 {
		const years, rate = 10, 0.07
		futureValue, err := finance.CompoundInterest(
			p.SavingsAmount+surplus*12*years, rate, years, 1)
		if err == nil {
			fmt.Fprintf(&b, "\n**Growth Projection:** If you invest %s/month for %d years at 7%% return, ",
				money(surplus), years)
			fmt.Fprintf(&b, "you could have approximately **%s**\n", money(futureValue))
		}
	}

	return b.String()
}

func savingsAdvice(p *domain.UserProfile) string {
	var b strings.Builder
	b.WriteString("## 🏦 Savings Strategy\n\n")

	target := finance.EmergencyFundTarget(p.MonthlyExpenses, 6)
	var coverage float64
	if target > 0 {
		coverage = p.SavingsAmount / target
	}

	b.WriteString("**Emergency Fund Status:**\n")
	switch {
	case coverage >= 1:
		fmt.Fprintf(&b, "✅ Excellent! You have %s months of expenses covered.\n", percent(coverage))
		b.WriteString("Consider high-yield savings accounts or short-term CDs for this money.\n\n")
	case coverage >= 0.5:
		fmt.Fprintf(&b, "⚠️ You're halfway there! Need %s more for full 6-month coverage.\n",
			money(target-p.SavingsAmount))
		b.WriteString("Priority: Complete your emergency fund before aggressive investing.\n\n")
	default:
		fmt.Fprintf(&b, "❌ Emergency fund needs attention. Target: %s\n", money(target))
		fmt.Fprintf(&b, "Current: %s\n", money(p.SavingsAmount))
		b.WriteString("**Action Plan:** Save $500-1000/month until you reach your target.\n\n")
	}

	b.WriteString("**Best Savings Options:**\n")
	b.WriteString("1. **High-Yield Savings Account** (4-5% APY) - Emergency fund\n")
	b.WriteString("2. **Certificate of Deposits** (4-6% APY) - Short-term goals\n")
	b.WriteString("3. **Money Market Account** (3-4% APY) - Medium liquidity needs\n\n")

	if len(p.FinancialGoals) > 0 {
		b.WriteString("**Goal-Based Savings:**\n")
		for _, goal := range p.FinancialGoals {
			switch strings.ToLower(goal) {
			case "buy a house":
				fmt.Fprintf(&b, "🏠 **%s:** Save 20%% down payment + closing costs\n", goal)
			case "retirement":
				fmt.Fprintf(&b, "🏖️ **%s:** Target 25x annual expenses by retirement\n", goal)
			default:
				fmt.Fprintf(&b, "🎯 **%s:** Create specific savings timeline\n", goal)
			}
		}
	}

	return b.String()
}

func debtAdvice() string {
	var b strings.Builder
	b.WriteString("## 💳 Debt Management Strategy\n\n")

	b.WriteString("**Debt Elimination Methods:**\n\n")
	b.WriteString("**1. Debt Avalanche (Mathematically Optimal):**\n")
	b.WriteString("- Pay minimums on all debts\n")
	b.WriteString("- Put extra money toward highest interest rate debt\n")
	b.WriteString("- Saves most money long-term\n\n")

	b.WriteString("**2. Debt Snowball (Psychologically Motivating):**\n")
	b.WriteString("- Pay minimums on all debts\n")
	b.WriteString("- Put extra money toward smallest balance\n")
	b.WriteString("- Builds momentum and motivation\n\n")

	b.WriteString("**Priority Order (Avalanche Method):**\n")
	b.WriteString("1. Credit Cards (15-25% interest)\n")
	b.WriteString("2. Personal Loans (8-15% interest)\n")
	b.WriteString("3. Auto Loans (3-7% interest)\n")
	b.WriteString("4. Student Loans (3-6% interest)\n")
	b.WriteString("5. Mortgage (3-5% interest)\n\n")

	b.WriteString("**Prevention Strategies:**\n")
	b.WriteString("- Build emergency fund to avoid new debt\n")
	b.WriteString("- Use credit cards only if you can pay full balance\n")
	b.WriteString("- Consider debt consolidation for multiple high-interest debts\n")
	b.WriteString("- Negotiate with creditors for better rates\n")

	return b.String()
}

func taxAdvice(p *domain.UserProfile) string {
	var b strings.Builder
	b.WriteString("## 📋 Tax Optimization\n\n")

	if p.UserType == domain.UserStudent {
		b.WriteString("**Student Tax Benefits:**\n")
		b.WriteString("- American Opportunity Tax Credit (up to $2,500)\n")
		b.WriteString("- Student loan interest deduction\n")
		b.WriteString("- Tax-free scholarships and grants\n\n")
	} else {
		b.WriteString("**Key Tax Strategies:**\n")
		b.WriteString("- Maximize 401(k) contributions ($23,000 limit for 2024)\n")
		b.WriteString("- Contribute to Traditional or Roth IRA ($7,000 limit)\n")
		b.WriteString("- Use HSA if eligible (triple tax advantage)\n")
		b.WriteString("- Track deductible expenses throughout the year\n\n")
	}

	if p.Income > 100000 {
		b.WriteString("**Higher Income Strategies:**\n")
		b.WriteString("- Consider backdoor Roth IRA conversion\n")
		b.WriteString("- Maximize pre-tax retirement contributions\n")
		b.WriteString("- Look into tax-loss harvesting\n")
	}

	return b.String()
}

func insuranceAdvice(p *domain.UserProfile) string {
	var b strings.Builder
	b.WriteString("## 🛡️ Insurance Protection\n\n")

	b.WriteString("**Essential Insurance Types:**\n\n")

	if p.UserType == domain.UserStudent {
		b.WriteString("**Student Priorities:**\n")
		b.WriteString("1. Health insurance (stay on parents' plan if possible)\n")
		b.WriteString("2. Renter's insurance (very affordable)\n")
		b.WriteString("3. Auto insurance (if you have a car)\n\n")
	} else {
		b.WriteString("**Professional Priorities:**\n")
		b.WriteString("1. Health insurance (employer or marketplace)\n")
		b.WriteString("2. Life insurance (10x annual income if dependents)\n")
		b.WriteString("3. Disability insurance (60% of income replacement)\n")
		b.WriteString("4. Auto insurance (appropriate coverage limits)\n")
		b.WriteString("5. Homeowner's/Renter's insurance\n\n")
	}

	b.WriteString("**Money-Saving Tips:**\n")
	b.WriteString("- Shop around annually for better rates\n")
	b.WriteString("- Increase deductibles to lower premiums\n")
	b.WriteString("- Bundle policies with same company for discounts\n")
	b.WriteString("- Maintain good credit score for better rates\n")

	return b.String()
}

func retirementAdvice(p *domain.UserProfile) string {
	var b strings.Builder
	b.WriteString("## 🏖️ Retirement Planning\n\n")

	const retirementAge = 65
	yearsLeft := retirementAge - p.Age
	if yearsLeft < 0 {
		yearsLeft = 0
	}

	if yearsLeft > 0 {
		needs := finance.RetirementNeeds(p.Age, retirementAge, p.Income, 0.8)

		fmt.Fprintf(&b, "**Retirement Timeline:** %d years to go\n", yearsLeft)
		fmt.Fprintf(&b, "**Estimated Need:** %s (using 4%% withdrawal rule)\n\n", money(needs))

		monthlyNeeded := needs / float64(yearsLeft*12)
		fmt.Fprintf(&b, "**Monthly Savings Target:** %s\n\n", money(monthlyNeeded))
	} else {
		b.WriteString("**Already at retirement age!** Focus on:\n")
		b.WriteString("- Optimizing withdrawal strategies\n")
		b.WriteString("- Healthcare planning\n")
		b.WriteString("- Estate planning\n\n")
	}

	b.WriteString("**Retirement Accounts Priority:**\n")
	b.WriteString("1. 401(k) up to employer match (free money!)\n")
	b.WriteString("2. Roth IRA (tax-free growth)\n")
	b.WriteString("3. Max out 401(k) contribution\n")
	b.WriteString("4. Taxable investment accounts\n\n")

	switch {
	case p.Age < 30:
		b.WriteString("**20s Advantage:** Time is your biggest asset!\n")
		b.WriteString("- Start with any amount, even $50/month\n")
		b.WriteString("- Take advantage of compound growth\n")
		b.WriteString("- Focus on growth investments\n")
	case p.Age < 50:
		b.WriteString("**Peak Earning Years:** Accelerate savings\n")
		b.WriteString("- Increase contributions with raises\n")
		b.WriteString("- Diversify investment portfolio\n")
		b.WriteString("- Consider professional financial advice\n")
	default:
		b.WriteString("**Pre-Retirement:** Catch-up mode\n")
		b.WriteString("- Use catch-up contributions ($7,500 extra for 401k)\n")
		b.WriteString("- Shift towards more conservative investments\n")
		b.WriteString("- Plan for healthcare costs\n")
	}

	return b.String()
}

func (s *adviceService) generalAdvice(p *domain.UserProfile) string {
	var b strings.Builder
	b.WriteString("## 💼 General Financial Guidance\n\n")

	health := s.health.Score(p, nil)
	fmt.Fprintf(&b, "**Your Financial Health Score:** %.1f/100 (Grade: %s)\n\n", health.Score, health.Grade)

	surplus := p.MonthlySurplus()

	b.WriteString("**Personalized Action Plan:**\n")

	target := finance.EmergencyFundTarget(p.MonthlyExpenses, 6)
	if p.SavingsAmount < target {
		deficit := target - p.SavingsAmount
		fmt.Fprintf(&b, "1. **Build Emergency Fund:** Save %s more (%s/month for 6 months)\n",
			money(deficit), money(deficit/6))
	} else {
		b.WriteString("1. ✅ **Emergency Fund Complete:** Well done!\n")
	}

	b.WriteString("2. **Eliminate High-Interest Debt:** Pay off credit cards and personal loans first\n")

	if p.Age < 65 {
		b.WriteString("3. **Retirement Savings:** Aim for 10-15% of income in retirement accounts\n")
	}

	if surplus > 0 {
		fmt.Fprintf(&b, "4. **Investment Growth:** With %s monthly surplus, consider diversified investing\n",
			money(surplus))
	}

	b.WriteString("\n**Key Financial Principles:**\n")
	b.WriteString("- Pay yourself first (automate savings)\n")
	b.WriteString("- Live below your means\n")
	b.WriteString("- Diversify investments\n")
	b.WriteString("- Review and adjust regularly\n")

	return b.String()
}
