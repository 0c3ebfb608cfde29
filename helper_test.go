package banksim

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// RON is a helper for test to create lei money from const
func RON(v float64) Money { return M(v, "RON") }

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// testRates builds the usual three-currency graph: 1 USD = 4.5 RON,
// 1 EUR = 1.1 USD.
func testRates() *CurrencyGraph {
	g := NewCurrencyGraph()
	g.AddRate("USD", "RON", decimal.NewFromFloat(4.5))
	g.AddRate("EUR", "USD", decimal.NewFromFloat(1.1))
	return g
}

// testBank builds a bank with two adult users, one student, one commerciant
// per cashback strategy, and the usual rate graph.
func testBank(t *testing.T) *Bank {
	t.Helper()
	b := NewBank()
	b.Rates = testRates()
	b.AddUser(NewUser("Ana", "Pop", "ana@mail.com", NewDate(1990, time.March, 12), "engineer"))
	b.AddUser(NewUser("Dan", "Ionescu", "dan@mail.com", NewDate(1988, time.July, 3), "manager"))
	b.AddUser(NewUser("Ioana", "Marin", "ioana@mail.com", NewDate(2008, time.May, 20), "student"))
	b.AddCommerciant(&Commerciant{Name: "CoffeeShop", ID: 1, IBAN: "RO12COMM0000000000000001", Category: "Food", Strategy: CashbackTransactions})
	b.AddCommerciant(&Commerciant{Name: "MegaStore", ID: 2, IBAN: "RO12COMM0000000000000002", Category: "Tech", Strategy: CashbackSpending})
	return b
}

// openAccount is a shortcut for AddAccount + lookup.
func openAccount(t *testing.T, b *Bank, email, currency string, kind AccountKind) *Account {
	t.Helper()
	if desc := b.AddAccount(1, email, currency, kind, Rate{}); desc != "" {
		t.Fatalf("AddAccount(%s) failed: %s", email, desc)
	}
	u := b.UserByEmail(email)
	a := u.Accounts[len(u.Accounts)-1]
	return a
}

// issueCard creates a card on the account and returns it.
func issueCard(t *testing.T, b *Bank, a *Account, email string) *Card {
	t.Helper()
	if desc := b.CreateCard(2, a.IBAN, email, false); desc != "" {
		t.Fatalf("CreateCard failed: %s", desc)
	}
	return a.Cards[len(a.Cards)-1]
}
