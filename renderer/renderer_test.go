package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/AraAlexandru/banksim"
)

func testUser(t *testing.T) (*banksim.Bank, *banksim.User, *banksim.Account) {
	t.Helper()
	b := banksim.NewBank()
	b.AddUser(banksim.NewUser("Ana", "Pop", "ana@mail.com", banksim.NewDate(1990, time.March, 12), "engineer"))
	if desc := b.AddAccount(1, "ana@mail.com", "RON", banksim.KindClassic, banksim.Rate{}); desc != "" {
		t.Fatalf("AddAccount failed: %s", desc)
	}
	u := b.UserByEmail("ana@mail.com")
	return b, u, u.Accounts[0]
}

func TestHistoryMarkdown(t *testing.T) {
	_, u, a := testUser(t)
	u.Append(&banksim.Record{
		Timestamp:   5,
		Kind:        banksim.RecCardPayment,
		AccountIBAN: a.IBAN,
		Amount:      banksim.M(50, "RON"),
		Commerciant: "CoffeeShop",
	})

	md := HistoryMarkdown(u)
	for _, want := range []string{
		"# History for Ana Pop",
		"ana@mail.com",
		"New account created",
		"Card payment",
		"CoffeeShop",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("history markdown missing %q:\n%s", want, md)
		}
	}
}

func TestAccountMarkdownFiltersRange(t *testing.T) {
	_, u, a := testUser(t)
	u.Append(&banksim.Record{Timestamp: 5, Kind: banksim.RecCardPayment, AccountIBAN: a.IBAN, Amount: banksim.M(10, "RON"), Commerciant: "Early"})
	u.Append(&banksim.Record{Timestamp: 50, Kind: banksim.RecCardPayment, AccountIBAN: a.IBAN, Amount: banksim.M(10, "RON"), Commerciant: "Late"})

	md := AccountMarkdown(u, a, 0, 10)
	if !strings.Contains(md, "Early") {
		t.Errorf("report missing in-range record:\n%s", md)
	}
	if strings.Contains(md, "Late") {
		t.Errorf("report includes out-of-range record:\n%s", md)
	}
}

func TestBusinessMarkdown(t *testing.T) {
	b := banksim.NewBank()
	b.AddUser(banksim.NewUser("Dan", "Ionescu", "dan@mail.com", banksim.NewDate(1988, time.July, 3), "manager"))
	b.AddUser(banksim.NewUser("Ana", "Pop", "ana@mail.com", banksim.NewDate(1990, time.March, 12), "engineer"))
	if desc := b.AddAccount(1, "dan@mail.com", "RON", banksim.KindBusiness, banksim.Rate{}); desc != "" {
		t.Fatalf("AddAccount failed: %s", desc)
	}
	account := b.UserByEmail("dan@mail.com").Accounts[0]
	if desc := b.AddNewBusinessAssociate(2, account.IBAN, "employee", "ana@mail.com"); desc != "" {
		t.Fatalf("AddNewBusinessAssociate failed: %s", desc)
	}
	account.Business.RecordSpend(5, "ana@mail.com", banksim.M(120, "RON"))

	md := BusinessMarkdown(b, account, 0, 100)
	for _, want := range []string{
		"# Business report for " + account.IBAN,
		"Pop Ana",
		"120.00 RON",
		"Spending limit: 500.00 RON",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("business markdown missing %q:\n%s", want, md)
		}
	}
}
