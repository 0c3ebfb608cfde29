package renderer

import "github.com/AraAlexandru/banksim"

// AccountReportView is the view model of a single account's report.
type AccountReportView struct {
	IBAN    string
	Type    string
	Balance string
	Rows    []HistoryRow
}

// AccountMarkdown renders an account's records over a timestamp range.
func AccountMarkdown(u *banksim.User, account *banksim.Account, from, to int) string {
	view := AccountReportView{
		IBAN:    account.IBAN,
		Type:    account.Kind.String(),
		Balance: money(account.Balance),
	}
	for _, r := range u.Records() {
		if r.Timestamp < from || r.Timestamp > to || !r.Concerns(account.IBAN) {
			continue
		}
		view.Rows = append(view.Rows, HistoryRow{
			Timestamp:   r.Timestamp,
			Description: r.Describe(),
			Detail:      recordDetail(r),
		})
	}
	return renderTemplate("account", "account.md", &view)
}
