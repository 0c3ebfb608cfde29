package banksim

import (
	"errors"
	"fmt"
)

// Plan is a user's subscription tier. It controls the commission charged on
// outgoing payments and the cost of moving to a higher tier. Plans never
// downgrade.
type Plan int

const (
	Standard Plan = iota
	Student
	Silver
	Gold
)

func (p Plan) String() string {
	switch p {
	case Standard:
		return "standard"
	case Student:
		return "student"
	case Silver:
		return "silver"
	case Gold:
		return "gold"
	default:
		return "unknown"
	}
}

// ParsePlan parses a plan name as it appears in operation records.
func ParsePlan(s string) (Plan, error) {
	switch s {
	case "standard":
		return Standard, nil
	case "student":
		return Student, nil
	case "silver":
		return Silver, nil
	case "gold":
		return Gold, nil
	default:
		return 0, fmt.Errorf("unknown plan type: %q", s)
	}
}

// Commission schedule. The silver carve-out applies to the RON-denominated
// amount: below it silver pays no commission at all.
const silverFreeBelowRON = 500

var (
	standardCommission = R(0.002)
	silverCommission   = R(0.001)
)

// CommissionRate returns the commission rate for an amount already converted
// to RON.
func (p Plan) CommissionRate(amountRON Money) Rate {
	switch p {
	case Standard:
		return standardCommission
	case Silver:
		if amountRON.LessThan(M(silverFreeBelowRON, "RON")) {
			return Rate{}
		}
		return silverCommission
	default: // student and gold pay no commission
		return Rate{}
	}
}

// Fee computes the commission for an operation amount: the amount is
// converted to RON, the plan rate applied, and the resulting fee converted
// back into the operation's currency.
func (p Plan) Fee(amount Money, rates *CurrencyGraph) Money {
	amountRON := rates.Convert(amount, "RON")
	feeRON := p.CommissionRate(amountRON).Of(amountRON)
	return rates.Convert(feeRON, amount.Currency())
}

// Upgrade fee schedule, in RON.
const (
	upgradeToSilverRON = 100
	upgradeToGoldRON   = 350
	silverToGoldRON    = 250

	// A silver user with this many eligible large payments upgrades to gold
	// for free.
	silverEligibleCount = 5
)

var (
	// ErrSamePlan signals an upgrade to the tier the user already has.
	ErrSamePlan = errors.New("user already has this plan")
	// ErrPlanDowngrade signals a transition to a lower tier.
	ErrPlanDowngrade = errors.New("plan downgrades are not allowed")
)

// UpgradeFee returns the RON-denominated fee for moving from p to target.
// waived is true when the fee is dropped because the user accumulated enough
// silver-eligible payments; the caller must then reset the counter.
func (p Plan) UpgradeFee(target Plan, eligiblePayments int) (fee Money, waived bool, err error) {
	if target == p {
		return Money{}, false, ErrSamePlan
	}
	if target == Standard || target == Student || (target == Silver && p == Gold) {
		return Money{}, false, ErrPlanDowngrade
	}
	switch {
	case (p == Standard || p == Student) && target == Silver:
		return M(upgradeToSilverRON, "RON"), false, nil
	case (p == Standard || p == Student) && target == Gold:
		return M(upgradeToGoldRON, "RON"), false, nil
	case p == Silver && target == Gold:
		if eligiblePayments >= silverEligibleCount {
			return M(0, "RON"), true, nil
		}
		return M(silverToGoldRON, "RON"), false, nil
	default:
		return Money{}, false, fmt.Errorf("no upgrade path from %s to %s", p, target)
	}
}
