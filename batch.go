package banksim

import (
	"encoding/json"

	"github.com/rs/zerolog"
)

// Runner executes one batch against a fresh bank. The zero logger is fine;
// pass a real one for per-command tracing.
type Runner struct {
	Bank *Bank
	Now  Date // reference date for age checks
	Log  zerolog.Logger

	outputs marshalerSlice
}

// NewRunner builds a runner over a bank seeded from the input's setup
// section. The age-check reference date comes from the input when set.
func NewRunner(in *BatchInput) *Runner {
	now := in.ReferenceDate
	if now.IsZero() {
		now = Today()
	}
	return &Runner{Bank: BuildBank(in), Now: now, Log: zerolog.Nop()}
}

// Run applies every command in order and returns the output array. Domain
// failures become output or record entries; Run itself never fails.
func (r *Runner) Run(commands []Command) marshalerSlice {
	for _, c := range commands {
		r.Log.Debug().Str("command", c.Command).Int("timestamp", c.Timestamp).Msg("applying")
		r.apply(c)
	}
	return r.outputs
}

// commandOutput wraps a payload in the output envelope.
func commandOutput(name string, ts int, payload json.Marshaler) json.Marshaler {
	w := &jsonObjectWriter{}
	w.Append("command", name)
	w.Append("output", payload)
	w.Append("timestamp", ts)
	return w
}

// descriptionOutput is the envelope of a failed command: the payload carries
// only the description and the timestamp.
func descriptionOutput(name string, ts int, desc string) json.Marshaler {
	inner := &jsonObjectWriter{}
	inner.Append("timestamp", ts)
	inner.Append("description", desc)
	return commandOutput(name, ts, inner)
}

func (r *Runner) emit(m json.Marshaler) { r.outputs = append(r.outputs, m) }

// fail emits the standard failure envelope when desc is non-empty, and
// reports whether it did.
func (r *Runner) fail(c Command, desc string) bool {
	if desc == "" {
		return false
	}
	r.emit(descriptionOutput(c.Command, c.Timestamp, desc))
	return true
}

func (r *Runner) apply(c Command) {
	b := r.Bank
	switch c.Command {
	case "addAccount":
		kind := KindClassic
		switch c.AccountType {
		case "savings":
			kind = KindSavings
		case "business":
			kind = KindBusiness
		}
		r.fail(c, b.AddAccount(c.Timestamp, c.Email, c.Currency, kind, R(c.InterestRate)))

	case "createCard":
		r.fail(c, b.CreateCard(c.Timestamp, c.Account, c.Email, false))
	case "createOneTimeCard":
		r.fail(c, b.CreateCard(c.Timestamp, c.Account, c.Email, true))
	case "deleteCard":
		r.fail(c, b.DeleteCard(c.Timestamp, c.CardNumber, c.Email))

	case "addFunds":
		_, account := b.FindAccount(c.Account)
		if account == nil {
			return
		}
		r.fail(c, b.AddFunds(c.Timestamp, c.Account, M(c.Amount, account.Currency()), c.Email))

	case "deleteAccount":
		ok, desc := b.DeleteAccount(c.Timestamp, c.Email, c.Account)
		if r.fail(c, desc) {
			return
		}
		inner := &jsonObjectWriter{}
		if ok {
			inner.Append("success", "Account deleted")
		} else {
			inner.Append("error", msgFundsRemaining)
		}
		inner.Append("timestamp", c.Timestamp)
		r.emit(commandOutput(c.Command, c.Timestamp, inner))

	case "setMinimumBalance":
		_, account := b.FindAccount(c.Account)
		if account == nil {
			r.fail(c, msgAccountNotFound)
			return
		}
		r.fail(c, b.SetMinimumBalance(c.Timestamp, c.Account, M(c.Amount, account.Currency())))
	case "checkCardStatus":
		r.fail(c, b.CheckCardStatus(c.Timestamp, c.CardNumber))

	case "payOnline":
		r.fail(c, b.PayOnline(c.Timestamp, c.CardNumber, M(c.Amount, c.Currency), c.Email, c.Commerciant))
	case "sendMoney":
		sender := r.senderCurrency(c)
		r.fail(c, b.SendMoney(c.Timestamp, c.Account, M(c.Amount, sender), c.Receiver, c.Email, c.Description))
	case "cashWithdrawal":
		r.fail(c, b.CashWithdrawal(c.Timestamp, c.CardNumber, M(c.Amount, "RON"), c.Email))
	case "withdrawSavings":
		r.fail(c, b.WithdrawSavings(c.Timestamp, c.Account, M(c.Amount, c.Currency), r.Now))
	case "upgradePlan":
		r.fail(c, b.UpgradePlan(c.Timestamp, c.Account, c.NewPlanType))

	case "splitPayment":
		var shares []Money
		for _, a := range c.AmountForUsers {
			shares = append(shares, M(a, c.Currency))
		}
		s := NewSplitPayment(b, c.SplitPaymentType, c.Timestamp, M(c.Amount, c.Currency), c.Accounts, shares)
		b.RegisterSplit(s)
	case "acceptSplitPayment":
		r.answerSplit(c, true)
	case "rejectSplitPayment":
		r.answerSplit(c, false)

	case "addInterest":
		r.fail(c, b.AddInterest(c.Timestamp, c.Account))
	case "changeInterestRate":
		r.fail(c, b.ChangeInterestRate(c.Timestamp, c.Account, R(c.InterestRate)))

	case "addNewBusinessAssociate":
		r.fail(c, b.AddNewBusinessAssociate(c.Timestamp, c.Account, c.Role, c.Email))
	case "changeSpendingLimit":
		r.limitChange(c, b.ChangeSpendingLimit)
	case "changeDepositLimit":
		r.limitChange(c, b.ChangeDepositLimit)

	case "printUsers":
		r.emit(commandOutput(c.Command, c.Timestamp, b.PrintUsers()))
	case "printTransactions":
		out, desc := b.PrintTransactions(c.Email)
		if !r.fail(c, desc) {
			r.emit(commandOutput(c.Command, c.Timestamp, out))
		}
	case "report":
		out, desc := b.Report(c.Account, c.StartTimestamp, c.EndTimestamp)
		if !r.fail(c, desc) {
			r.emit(commandOutput(c.Command, c.Timestamp, out))
		}
	case "spendingsReport":
		out, desc := b.SpendingsReport(c.Account, c.StartTimestamp, c.EndTimestamp)
		if !r.fail(c, desc) {
			r.emit(commandOutput(c.Command, c.Timestamp, out))
		}
	case "businessReport":
		out, desc := b.BusinessReport(c.Account, c.StartTimestamp, c.EndTimestamp)
		if !r.fail(c, desc) {
			r.emit(commandOutput(c.Command, c.Timestamp, out))
		}

	default:
		r.Log.Warn().Str("command", c.Command).Msg("unknown command, skipped")
	}
}

// limitChange applies a business limit command, with the amount denominated
// in the account's own currency.
func (r *Runner) limitChange(c Command, set func(ts int, iban, email string, amount Money) string) {
	_, account := r.Bank.FindAccount(c.Account)
	if account == nil {
		r.fail(c, msgAccountNotFound)
		return
	}
	r.fail(c, set(c.Timestamp, c.Account, c.Email, M(c.Amount, account.Currency())))
}

// senderCurrency resolves the currency a sendMoney amount is denominated in:
// the sender account's own currency.
func (r *Runner) senderCurrency(c Command) string {
	if _, account := r.Bank.FindAccount(c.Account); account != nil {
		return account.Currency()
	}
	return c.Currency
}

// answerSplit applies one accept or reject to the user's first unanswered
// agreement of the requested type.
func (r *Runner) answerSplit(c Command, accept bool) {
	u := r.Bank.UserByEmail(c.Email)
	if u == nil {
		r.fail(c, msgUserNotFound)
		return
	}
	s := u.NextPendingSplit(r.splitType(c))
	if s == nil {
		return
	}
	if accept {
		s.Accept(r.Bank, c.Email)
	} else {
		s.Reject(r.Bank)
	}
}

func (r *Runner) splitType(c Command) string {
	if c.SplitPaymentType == "" {
		return "equal"
	}
	return c.SplitPaymentType
}

// RunBatch is the one-call form: decode already done, run everything, return
// the output array ready for json marshaling.
func RunBatch(in *BatchInput, log zerolog.Logger) ([]byte, error) {
	r := NewRunner(in)
	r.Log = log
	out := r.Run(in.Commands)
	return json.MarshalIndent(out, "", "  ")
}
