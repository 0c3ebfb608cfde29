package banksim

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Query projections over the bank state. Each returns a json.Marshaler whose
// field order follows the output format, or a description when the target
// does not exist.

func marshalCard(c *Card) json.Marshaler {
	w := &jsonObjectWriter{}
	w.Append("cardNumber", c.Number)
	w.Append("status", string(c.Status))
	return w
}

func marshalAccount(a *Account) json.Marshaler {
	cards := make([]json.Marshaler, 0, len(a.Cards))
	for _, c := range a.Cards {
		cards = append(cards, marshalCard(c))
	}
	w := &jsonObjectWriter{}
	w.Append("IBAN", a.IBAN)
	w.Append("balance", a.Balance)
	w.Append("currency", a.Currency())
	w.Append("type", a.Kind.String())
	w.Append("cards", cards)
	return w
}

func marshalUser(u *User) json.Marshaler {
	accounts := make([]json.Marshaler, 0, len(u.Accounts))
	for _, a := range u.Accounts {
		accounts = append(accounts, marshalAccount(a))
	}
	w := &jsonObjectWriter{}
	w.Append("firstName", u.FirstName)
	w.Append("lastName", u.LastName)
	w.Append("email", u.Email)
	w.Append("accounts", accounts)
	return w
}

// PrintUsers snapshots every user, their accounts, and their cards, in
// declaration order.
func (b *Bank) PrintUsers() json.Marshaler {
	users := make(marshalerSlice, 0, len(b.users))
	for _, u := range b.users {
		users = append(users, marshalUser(u))
	}
	return users
}

// marshalerSlice lets a list of ordered objects marshal as a JSON array.
type marshalerSlice []json.Marshaler

func (s marshalerSlice) MarshalJSON() ([]byte, error) {
	items := make([]json.RawMessage, 0, len(s))
	for _, m := range s {
		raw, err := m.MarshalJSON()
		if err != nil {
			return nil, err
		}
		items = append(items, raw)
	}
	return json.Marshal(items)
}

// PrintTransactions returns a user's full record history in timestamp order.
func (b *Bank) PrintTransactions(email string) (json.Marshaler, string) {
	u := b.UserByEmail(email)
	if u == nil {
		return nil, msgUserNotFound
	}
	records := make(marshalerSlice, 0, len(u.Records()))
	for _, r := range u.Records() {
		records = append(records, r)
	}
	return records, ""
}

// Report projects an account's records over a timestamp range.
func (b *Bank) Report(accountIBAN string, from, to int) (json.Marshaler, string) {
	user, account := b.FindAccount(accountIBAN)
	if account == nil {
		return nil, msgAccountNotFound
	}
	records := make(marshalerSlice, 0)
	for _, r := range user.Records() {
		if r.Timestamp >= from && r.Timestamp <= to && r.Concerns(accountIBAN) {
			records = append(records, r)
		}
	}
	w := &jsonObjectWriter{}
	w.Append("IBAN", account.IBAN)
	w.Append("balance", account.Balance)
	w.Append("currency", account.Currency())
	w.Append("transactions", records)
	return w, ""
}

const msgSavingsSpendingsReport = "This kind of report is not supported for a saving account"

// SpendingsReport projects an account's card payments per commerciant over a
// timestamp range. Savings accounts don't support it.
func (b *Bank) SpendingsReport(accountIBAN string, from, to int) (json.Marshaler, string) {
	user, account := b.FindAccount(accountIBAN)
	if account == nil {
		return nil, msgAccountNotFound
	}
	if account.IsSavings() {
		return nil, msgSavingsSpendingsReport
	}
	records := make(marshalerSlice, 0)
	totals := make(map[string]Money)
	for _, r := range user.Records() {
		if r.Kind != RecCardPayment || r.Timestamp < from || r.Timestamp > to || r.AccountIBAN != accountIBAN {
			continue
		}
		records = append(records, r)
		totals[r.Commerciant] = totals[r.Commerciant].Add(r.Amount)
	}
	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)
	merchants := make(marshalerSlice, 0, len(names))
	for _, name := range names {
		mw := &jsonObjectWriter{}
		mw.Append("commerciant", name)
		mw.Append("total", totals[name])
		merchants = append(merchants, mw)
	}
	w := &jsonObjectWriter{}
	w.Append("IBAN", account.IBAN)
	w.Append("balance", account.Balance)
	w.Append("currency", account.Currency())
	w.Append("transactions", records)
	w.Append("commerciants", merchants)
	return w, ""
}

// BusinessReport projects a business account's per-associate activity over a
// timestamp range.
func (b *Bank) BusinessReport(accountIBAN string, from, to int) (json.Marshaler, string) {
	_, account := b.FindAccount(accountIBAN)
	if account == nil {
		return nil, msgAccountNotFound
	}
	if !account.IsBusiness() {
		return nil, msgNotBusiness
	}
	bd := account.Business
	cur := account.Currency()

	associateRow := func(email string) (json.Marshaler, Money, Money) {
		spent := bd.SpentBy(email, from, to, cur)
		deposited := bd.DepositedBy(email, from, to, cur)
		w := &jsonObjectWriter{}
		w.Append("username", b.displayName(email))
		w.Append("spent", spent)
		w.Append("deposited", deposited)
		return w, spent, deposited
	}

	totalSpent, totalDeposited := M(0, cur), M(0, cur)
	managers := make(marshalerSlice, 0, len(bd.Managers()))
	for _, email := range bd.Managers() {
		row, s, d := associateRow(email)
		managers = append(managers, row)
		totalSpent = totalSpent.Add(s)
		totalDeposited = totalDeposited.Add(d)
	}
	employees := make(marshalerSlice, 0, len(bd.Employees()))
	for _, email := range bd.Employees() {
		row, s, d := associateRow(email)
		employees = append(employees, row)
		totalSpent = totalSpent.Add(s)
		totalDeposited = totalDeposited.Add(d)
	}

	w := &jsonObjectWriter{}
	w.Append("IBAN", account.IBAN)
	w.Append("balance", account.Balance)
	w.Append("currency", cur)
	w.Append("spending limit", bd.SpendingLimit())
	w.Append("deposit limit", bd.DepositLimit())
	w.Append("statistics type", "transaction")
	w.Append("managers", managers)
	w.Append("employees", employees)
	w.Append("total spent", totalSpent)
	w.Append("total deposited", totalDeposited)
	return w, ""
}

// displayName renders a user as "Last First" for report rows.
func (b *Bank) displayName(email string) string {
	u := b.UserByEmail(email)
	if u == nil {
		return email
	}
	return fmt.Sprintf("%s %s", u.LastName, u.FirstName)
}
