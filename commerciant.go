package banksim

import "fmt"

// CashbackStrategy selects how a commerciant rewards repeat customers.
type CashbackStrategy int

const (
	CashbackNone CashbackStrategy = iota
	CashbackTransactions
	CashbackSpending
)

func (s CashbackStrategy) String() string {
	switch s {
	case CashbackTransactions:
		return "nrOfTransactions"
	case CashbackSpending:
		return "spendingThreshold"
	default:
		return "none"
	}
}

func ParseCashbackStrategy(s string) (CashbackStrategy, error) {
	switch s {
	case "nrOfTransactions":
		return CashbackTransactions, nil
	case "spendingThreshold":
		return CashbackSpending, nil
	case "", "none":
		return CashbackNone, nil
	}
	return CashbackNone, fmt.Errorf("unknown cashback strategy %q", s)
}

// Commerciant is a payment receiver with a settlement account and a cashback
// policy.
type Commerciant struct {
	Name     string
	ID       int
	IBAN     string
	Category string // Food, Clothes, Tech, ...
	Strategy CashbackStrategy
}
