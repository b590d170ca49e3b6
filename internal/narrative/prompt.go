package narrative

import (
	"fmt"
	"sort"
	"strings"

	"github.com/finguard/finguard/internal/advisor"
	"github.com/finguard/finguard/internal/model"
)

// itemPriceGuide is the reference table shown to the provider so its prose
// agrees with the rule engine's price sanity check.
const itemPriceGuide = `- chai/tea: Rs.10-30
- coffee: Rs.50-200
- snack/samosa/vada pav: Rs.20-80
- burger: Rs.80-300
- pizza: Rs.150-600
- meal/lunch/dinner/thali: Rs.100-500
- biryani: Rs.150-400
- groceries/vegetables/fruits: Rs.200-3000
- sweets/dessert: Rs.50-300
- auto/rickshaw: Rs.30-200
- cab/uber/ola: Rs.100-800
- bus/metro/train ticket: Rs.10-100
- petrol/fuel: Rs.200-3000
- clothes/shirt/pants: Rs.300-3000
- shoes/footwear: Rs.500-5000
- phone/mobile: Rs.8000-50000
- laptop/computer: Rs.25000-100000
- rent/housing: Rs.5000-30000
- electricity/water bill: Rs.200-3000
- internet/wifi/recharge: Rs.200-1000
- movie/cinema: Rs.150-500
- subscription/netflix/spotify: Rs.100-700
- gym/fitness: Rs.500-3000
- medicine/pharmacy: Rs.50-2000
- doctor/consultation: Rs.200-2000`

// buildVerdictPrompt serializes the classifier's facts into the intervention
// instruction. The seed exists purely to encourage lexical variety across
// identical inputs.
func buildVerdictPrompt(proposal model.ExpenseProposal, facts advisor.Facts, seed int) string {
	subject := proposal.Description
	if subject == "" {
		subject = string(proposal.Category)
	}

	described := ""
	if proposal.Description != "" {
		described = fmt.Sprintf(" (%s)", proposal.Description)
	}

	return fmt.Sprintf(`You are Gemma, the AI guardian inside Finguard — a behavioral finance app. You care deeply about the user's financial wellbeing. You speak like a protective friend: warm but honest. NEVER be generic. Always reference the SPECIFIC numbers below.

IMPORTANT: Each response must be UNIQUE. Vary your tone — sometimes be encouraging, sometimes stern, sometimes use an analogy or metaphor, sometimes ask a rhetorical question. Random seed for variety: %d.

CRITICAL — ITEM-LEVEL PRICE CHECK:
You MUST match the description/category to the CLOSEST item below and check Rs.%.0f against that SPECIFIC item's range:
%s

STEPS:
1. Identify which item above best matches "%s"
2. If Rs.%.0f is WITHIN or up to 1.5x the item's max → price is REASONABLE. Do NOT flag it.
3. If Rs.%.0f is 1.5x-3x the item's max → WARN about the price being on the higher side.
4. If Rs.%.0f is 3x+ above the item's max → FLAG IT CLEARLY as overpriced. Set severity to "high" or "critical" and recommendation to "caution" or "stop".
5. If no specific item matches, use the broad category and be lenient.

User's financial snapshot:
- Monthly budget: Rs.%s | Spent so far: Rs.%s (%.0f%%) | Left: Rs.%s
- This purchase: Rs.%.0f for %s%s
- Same category purchases recently: %d times
- Today's total spending: Rs.%.0f
- Total expenses logged: %d

Rules:
1. Be 2-3 sentences MAX. Be specific — mention actual amounts.
2. If the PRICE is unreasonable for the specific item (3x+ above its max), flag it FIRST. This overrides budget rules.
3. If price is 1.5x-3x above max, mention it's pricey but evaluate with budget context too.
4. If price is within range, DO NOT mention pricing at all — focus only on budget health.
5. If budget usage is under 50%%, be supportive but still mention the numbers.
6. If 50-80%%, gently warn with specific projections.
7. If over 80%%, be firm and protective. Use urgency.
8. If this pushes over 100%%, be very direct — tell them they cannot afford this.
9. If same category count >= 3, call out the pattern by name.
10. Pick ONE severity: low, medium, high, or critical.
11. Pick ONE recommendation: proceed, caution, or stop.

Respond with ONLY valid JSON (no markdown, no code blocks, no explanation):
{"severity":"low|medium|high|critical","message":"your unique intervention","recommendation":"proceed|caution|stop","pattern":"null or detected pattern"}`,
		seed,
		proposal.Amount, itemPriceGuide,
		subject,
		proposal.Amount, proposal.Amount, proposal.Amount,
		advisor.Rupees(facts.MonthlyBudget), advisor.Rupees(facts.MonthlyBudget-facts.Remaining), facts.PercentUsed, advisor.Rupees(facts.Remaining),
		proposal.Amount, proposal.Category, described,
		facts.SameCategoryCount,
		facts.TodaySpent,
		facts.TotalLogged)
}

// buildInsightsPrompt serializes the summarizer's facts into the period
// analysis instruction.
func buildInsightsPrompt(snapshot model.InsightsSnapshot, facts advisor.InsightFacts, seed int) string {
	breakdown := formatBreakdown(snapshot.CategoryBreakdown)

	return fmt.Sprintf(`You are Gemma, a sharp AI financial analyst inside Finguard. Give an honest, data-driven assessment referencing EXACT numbers from the data. No generic advice. Seed: %d

USER'S FINANCIAL SNAPSHOT:
- Monthly income: Rs.%s
- Monthly budget limit: Rs.%s
- Spent so far: Rs.%s (%.1f%% of budget used)
- Days: %d of %d elapsed (%d remaining)
- Monthly budget remaining: Rs.%s
- Daily average spending: Rs.%s
- Projected month-end spending: Rs.%s
- Projected monthly savings: Rs.%s
- Category breakdown: %s
- Savings goal: "%s" (target: Rs.%s)
- Total transactions: %d

RULES:
- 3 insights: one about spending pattern with specific Rs. amounts, one about budget health comparing spent vs budget, one actionable tip referencing their numbers.
- monthEndForecast: 1-2 sentences predicting month outcome. Reference projected spend vs budget.
- savingsAdvice: 1 sentence about reaching their %s goal of Rs.%s. Be specific about timeline.
- spendingHealth: "excellent" if <50%% budget used, "good" if 50-80%%, "fair" if 80-100%%, "poor" if >100%%.

Return ONLY valid JSON (no markdown, no code blocks):
{"insights":["...","...","..."],"monthEndForecast":"...","savingsAdvice":"...","spendingHealth":"excellent|good|fair|poor"}`,
		seed,
		advisor.Rupees(snapshot.MonthlyIncome),
		advisor.Rupees(snapshot.MonthlyBudget),
		advisor.Rupees(snapshot.MonthTotal), facts.BudgetPct,
		snapshot.DaysElapsed, snapshot.DaysInMonth, facts.DaysLeft,
		advisor.Rupees(facts.BudgetRemaining),
		advisor.Rupees(facts.DailyAvg),
		advisor.Rupees(facts.ProjectedSpend),
		advisor.Rupees(facts.ProjectedSave),
		breakdown,
		snapshot.SavingsGoal, advisor.Rupees(snapshot.SavingsTarget),
		snapshot.TransactionCount,
		snapshot.SavingsGoal, advisor.Rupees(snapshot.SavingsTarget))
}

// formatBreakdown renders the category breakdown sorted by amount descending.
func formatBreakdown(breakdown map[model.Category]float64) string {
	if len(breakdown) == 0 {
		return "no expenses yet"
	}

	type entry struct {
		category model.Category
		amount   float64
	}
	entries := make([]entry, 0, len(breakdown))
	for cat, amount := range breakdown {
		entries = append(entries, entry{cat, amount})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].amount != entries[j].amount {
			return entries[i].amount > entries[j].amount
		}
		return entries[i].category < entries[j].category
	})

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, fmt.Sprintf("%s: Rs.%s", e.category, advisor.Rupees(e.amount)))
	}
	return strings.Join(parts, ", ")
}
