package banksim

// AccountKind tags the account variant. Variant behavior is dispatched by
// switching on the kind rather than through subtypes.
type AccountKind int

const (
	KindClassic AccountKind = iota
	KindSavings
	KindBusiness
)

func (k AccountKind) String() string {
	switch k {
	case KindSavings:
		return "savings"
	case KindBusiness:
		return "business"
	default:
		return "classic"
	}
}

// Account holds a balance in a single currency, its cards, and the cashback
// state accumulated by payments through it. Savings accounts add an interest
// rate; business accounts add associate and limit data.
type Account struct {
	IBAN           string
	Kind           AccountKind
	Balance        Money
	MinimumBalance Money
	Cards          []*Card

	// savings only
	InterestRate Rate

	// business only, nil otherwise
	Business *BusinessData

	merchantVisits  map[string]int  // per-merchant committed payment count
	thresholdTotal  Money           // cumulative RON spend for threshold cashback
	grantedCashback map[string]bool // categories whose count reward was already granted
	pendingCashback map[string]Rate // category -> pending reward rate
}

func NewAccount(iban, currency string, kind AccountKind) *Account {
	a := &Account{
		IBAN:            iban,
		Kind:            kind,
		Balance:         M(0, currency),
		MinimumBalance:  M(0, currency),
		thresholdTotal:  M(0, "RON"),
		merchantVisits:  make(map[string]int),
		grantedCashback: make(map[string]bool),
		pendingCashback: make(map[string]Rate),
	}
	if kind == KindBusiness {
		a.Business = newBusinessData()
	}
	return a
}

func (a *Account) Currency() string { return a.Balance.Currency() }
func (a *Account) IsSavings() bool  { return a.Kind == KindSavings }
func (a *Account) IsBusiness() bool { return a.Kind == KindBusiness }
func (a *Account) IsClassic() bool  { return a.Kind == KindClassic }

// AddFunds credits (or, for a negative amount, debits) the balance.
func (a *Account) AddFunds(m Money) { a.Balance = a.Balance.Add(m) }

// Debit removes an amount from the balance. Callers check sufficiency first;
// a committing operation never leaves the balance negative.
func (a *Account) Debit(m Money) { a.Balance = a.Balance.Sub(m) }

func (a *Account) CardByNumber(number string) *Card {
	for _, c := range a.Cards {
		if c.Number == number {
			return c
		}
	}
	return nil
}

func (a *Account) AddCard(c *Card) { a.Cards = append(a.Cards, c) }

// DeleteCard removes the card with the given number. It reports whether a
// card was removed.
func (a *Account) DeleteCard(number string) bool {
	for i, c := range a.Cards {
		if c.Number == number {
			a.Cards = append(a.Cards[:i], a.Cards[i+1:]...)
			return true
		}
	}
	return false
}

// CheckCardAccess reports whether the user may pay with a card on this
// account: any holder of a classic or savings account, and any associate of
// a business account.
func (a *Account) CheckCardAccess(u *User) bool {
	if a.IsBusiness() {
		return a.Business.IsAssociate(u.Email)
	}
	return u.AccountByIBAN(a.IBAN) != nil
}

// RecordVisit increments the committed-payment counter for a merchant and
// returns the new count.
func (a *Account) RecordVisit(merchant string) int {
	a.merchantVisits[merchant]++
	return a.merchantVisits[merchant]
}

// VisitCount returns the number of committed payments to a merchant.
func (a *Account) VisitCount(merchant string) int { return a.merchantVisits[merchant] }

// GrantCashback stores a pending reward for a category. The grant fires only
// once per category for the life of the account.
func (a *Account) GrantCashback(category string, rate Rate) {
	if a.grantedCashback[category] {
		return
	}
	a.grantedCashback[category] = true
	a.pendingCashback[category] = rate
}

// TakeCashback removes and returns the pending reward for a category.
func (a *Account) TakeCashback(category string) (Rate, bool) {
	r, ok := a.pendingCashback[category]
	if ok {
		delete(a.pendingCashback, category)
	}
	return r, ok
}

// PendingCashback returns the pending reward rate for a category without
// consuming it.
func (a *Account) PendingCashback(category string) (Rate, bool) {
	r, ok := a.pendingCashback[category]
	return r, ok
}

// AddThresholdSpend accumulates RON-denominated spend for the
// spending-threshold cashback strategy.
func (a *Account) AddThresholdSpend(ron Money) {
	a.thresholdTotal = a.thresholdTotal.Add(ron)
}

// ThresholdTotal is the cumulative RON spend counted toward threshold tiers.
func (a *Account) ThresholdTotal() Money { return a.thresholdTotal }
