package banksim

// Count-based rewards: reaching a number of committed payments to the same
// commerciant earns a pending rate for one category, redeemed on the next
// payment to any commerciant of that category.
var countTiers = []struct {
	visits   int
	category string
	rate     Rate
}{
	{2, "Food", R(0.02)},
	{5, "Clothes", R(0.05)},
	{10, "Tech", R(0.10)},
}

// Spend-based rewards: cumulative RON spend at spendingThreshold
// commerciants unlocks a plan-keyed rate, credited immediately on the
// payment that holds the tier.
var spendTiers = []struct {
	threshold Money
	rates     map[Plan]Rate
}{
	{M(500, "RON"), map[Plan]Rate{
		Standard: R(0.0025), Student: R(0.0025),
		Silver: R(0.005), Gold: R(0.007),
	}},
	{M(300, "RON"), map[Plan]Rate{
		Standard: R(0.002), Student: R(0.002),
		Silver: R(0.004), Gold: R(0.0055),
	}},
	{M(100, "RON"), map[Plan]Rate{
		Standard: R(0.001), Student: R(0.001),
		Silver: R(0.003), Gold: R(0.005),
	}},
}

// ApplyCashback runs both reward paths for one committed card payment and
// returns the amount to credit back to the account, in account currency.
//
// The pending reward for the commerciant's category, if any, is always
// redeemed first, whatever strategy earned it. Then the commerciant's own
// strategy accrues: nrOfTransactions counts the visit and may grant a new
// pending reward; spendingThreshold accumulates RON spend and pays its tier
// rate immediately.
func ApplyCashback(a *Account, plan Plan, c *Commerciant, amount, amountRON Money, rates *CurrencyGraph) Money {
	credit := M(0, a.Currency())

	if r, ok := a.TakeCashback(c.Category); ok {
		credit = credit.Add(r.Of(amount))
	}

	switch c.Strategy {
	case CashbackTransactions:
		visits := a.RecordVisit(c.Name)
		for _, t := range countTiers {
			if visits == t.visits {
				a.GrantCashback(t.category, t.rate)
			}
		}
	case CashbackSpending:
		a.AddThresholdSpend(amountRON)
		total := a.ThresholdTotal()
		for _, t := range spendTiers {
			if total.GreaterThanOrEqual(t.threshold) {
				credit = credit.Add(t.rates[plan].Of(amount))
				break
			}
		}
	}
	return credit
}
