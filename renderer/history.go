package renderer

import (
	"fmt"

	"github.com/AraAlexandru/banksim"
)

// HistoryReport is the view model of one user's record history.
type HistoryReport struct {
	Name  string
	Email string
	Plan  string
	Rows  []HistoryRow
}

type HistoryRow struct {
	Timestamp   int
	Description string
	Detail      string
}

// HistoryMarkdown renders a user's history as a markdown table.
func HistoryMarkdown(u *banksim.User) string {
	report := HistoryReport{
		Name:  fmt.Sprintf("%s %s", u.FirstName, u.LastName),
		Email: u.Email,
		Plan:  u.Plan.String(),
	}
	for _, r := range u.Records() {
		report.Rows = append(report.Rows, HistoryRow{
			Timestamp:   r.Timestamp,
			Description: r.Describe(),
			Detail:      recordDetail(r),
		})
	}
	return renderTemplate("history", "history.md", &report)
}

// recordDetail summarizes the variant fields that matter for a human reader.
func recordDetail(r *banksim.Record) string {
	switch r.Kind {
	case banksim.RecCardPayment:
		return fmt.Sprintf("%v %s at %s", r.Amount.AsFloat(), r.Amount.Currency(), r.Commerciant)
	case banksim.RecTransfer:
		return fmt.Sprintf("%v %s %s", r.Amount.AsFloat(), r.Amount.Currency(), r.TransferType)
	case banksim.RecCardCreated, banksim.RecCardDestroyed:
		return r.Card
	case banksim.RecCashWithdrawal, banksim.RecInterestIncome, banksim.RecWithdrawSavings:
		return fmt.Sprintf("%v %s", r.Amount.AsFloat(), r.Amount.Currency())
	case banksim.RecUpgradePlan:
		return r.NewPlan.String()
	case banksim.RecSplitPayment:
		if r.Error != "" {
			return r.Error
		}
		return fmt.Sprintf("%d accounts", len(r.InvolvedAccounts))
	default:
		return ""
	}
}
