package renderer

import (
	"fmt"

	"github.com/AraAlexandru/banksim"
)

// BusinessReportView is the view model of a business account report.
type BusinessReportView struct {
	IBAN          string
	Balance       string
	SpendingLimit string
	DepositLimit  string
	Managers      []AssociateRow
	Employees     []AssociateRow
	TotalSpent    string
	TotalDeposit  string
}

type AssociateRow struct {
	Name      string
	Spent     string
	Deposited string
}

// BusinessMarkdown renders a business account's per-associate activity over
// a timestamp range.
func BusinessMarkdown(b *banksim.Bank, account *banksim.Account, from, to int) string {
	bd := account.Business
	cur := account.Currency()
	view := BusinessReportView{
		IBAN:          account.IBAN,
		Balance:       money(account.Balance),
		SpendingLimit: money(bd.SpendingLimit()),
		DepositLimit:  money(bd.DepositLimit()),
	}

	totalSpent, totalDeposit := banksim.M(0, cur), banksim.M(0, cur)
	row := func(email string) AssociateRow {
		spent := bd.SpentBy(email, from, to, cur)
		deposited := bd.DepositedBy(email, from, to, cur)
		totalSpent = totalSpent.Add(spent)
		totalDeposit = totalDeposit.Add(deposited)
		name := email
		if u := b.UserByEmail(email); u != nil {
			name = fmt.Sprintf("%s %s", u.LastName, u.FirstName)
		}
		return AssociateRow{Name: name, Spent: money(spent), Deposited: money(deposited)}
	}
	for _, email := range bd.Managers() {
		view.Managers = append(view.Managers, row(email))
	}
	for _, email := range bd.Employees() {
		view.Employees = append(view.Employees, row(email))
	}
	view.TotalSpent = money(totalSpent)
	view.TotalDeposit = money(totalDeposit)

	return renderTemplate("business", "business.md", &view)
}

func money(m banksim.Money) string {
	return fmt.Sprintf("%.2f %s", m.AsFloat(), m.Currency())
}
