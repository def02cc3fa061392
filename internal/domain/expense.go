package domain

// ExpenseLedger accumulates per-category expense totals for one session.
// Re-adding to an existing category sums into the running total; individual
// transactions are not retained. Category insertion order is preserved so
// summaries stay deterministic.
type ExpenseLedger struct {
	order   []string
	amounts map[string]float64
}

func NewExpenseLedger() *ExpenseLedger {
	return &ExpenseLedger{amounts: make(map[string]float64)}
}

// Add accumulates amount into the category's running total.
func (l *ExpenseLedger) Add(category string, amount float64) {
	if _, ok := l.amounts[category]; !ok {
		l.order = append(l.order, category)
	}
	l.amounts[category] += amount
}

// Categories returns category names in insertion order.
func (l *ExpenseLedger) Categories() []string {
	out := make([]string, len(l.order))
	copy(out, l.order)
	return out
}

// Amount returns the accumulated total for a category, 0 if absent.
func (l *ExpenseLedger) Amount(category string) float64 {
	return l.amounts[category]
}

// Total returns the sum across all categories.
func (l *ExpenseLedger) Total() float64 {
	var total float64
	for _, v := range l.amounts {
		total += v
	}
	return total
}

func (l *ExpenseLedger) Len() int {
	return len(l.order)
}

// Clear resets the ledger to empty.
func (l *ExpenseLedger) Clear() {
	l.order = nil
	l.amounts = make(map[string]float64)
}
