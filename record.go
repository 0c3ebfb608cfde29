package banksim

import (
	"encoding/json"
	"fmt"
)

// RecordKind tags the variant of a history record.
type RecordKind int

const (
	RecAccountCreated RecordKind = iota
	RecInsufficientFunds
	RecCardPayment
	RecCardCreated
	RecCardDestroyed
	RecCardFrozen
	RecFreezeWarning
	RecTransfer
	RecSplitPayment
	RecMinimumAge
	RecNoClassicAccount
	RecWithdrawSavings
	RecCashWithdrawal
	RecUpgradePlan
	RecInterestIncome
	RecInterestRateChanged
	RecAccountNotDeleted
)

// Record is one entry of a user's history. A single struct carries every
// variant; the kind selects which fields are meaningful and how the record
// is marshaled. Field order in the JSON output is fixed per kind.
type Record struct {
	Timestamp int
	Kind      RecordKind

	// which account the record concerns, for account-scoped reports
	AccountIBAN string

	Amount      Money
	Card        string
	CardHolder  string
	Commerciant string

	// transfers
	Description  string
	SenderIBAN   string
	ReceiverIBAN string
	TransferType string // "sent" or "received"

	// split payments
	SplitType        string // "equal" or "custom"
	InvolvedAccounts []string
	AmountPerUser    []Money
	Error            string

	// savings withdrawal
	SavingsIBAN string
	ClassicIBAN string

	// plan upgrade
	NewPlan Plan

	// interest rate change
	Rate Rate
}

const (
	msgAccountCreated    = "New account created"
	msgInsufficientFunds = "Insufficient funds"
	msgCardPayment       = "Card payment"
	msgCardCreated       = "New card created"
	msgCardDestroyed     = "The card has been destroyed"
	msgCardFrozen        = "The card is frozen"
	msgFreezeWarning     = "You have reached the minimum amount of funds, the card will be frozen"
	msgMinimumAge        = "You don't have the minimum age required."
	msgNoClassicAccount  = "You do not have a classic account."
	msgWithdrawSavings   = "Withdraw savings"
	msgUpgradePlan       = "Upgrade plan"
	msgInterestIncome    = "Interest rate income"
	msgSplitRejected     = "One user rejected the payment."
	msgFundsRemaining    = "Account couldn't be deleted - there are funds remaining"
)

func splitShortfallError(iban string) string {
	return fmt.Sprintf("Account %s has insufficient funds for a split payment.", iban)
}

// Describe returns the fixed wording of the record's variant.
func (r *Record) Describe() string {
	switch r.Kind {
	case RecAccountCreated:
		return msgAccountCreated
	case RecInsufficientFunds:
		return msgInsufficientFunds
	case RecCardPayment:
		return msgCardPayment
	case RecCardCreated:
		return msgCardCreated
	case RecCardDestroyed:
		return msgCardDestroyed
	case RecCardFrozen:
		return msgCardFrozen
	case RecFreezeWarning:
		return msgFreezeWarning
	case RecTransfer:
		return r.Description
	case RecSplitPayment:
		return fmt.Sprintf("Split payment of %.2f %s", r.Amount.AsFloat(), r.Amount.Currency())
	case RecMinimumAge:
		return msgMinimumAge
	case RecNoClassicAccount:
		return msgNoClassicAccount
	case RecWithdrawSavings:
		return msgWithdrawSavings
	case RecCashWithdrawal:
		return fmt.Sprintf("Cash withdrawal of %v", r.Amount.AsFloat())
	case RecUpgradePlan:
		return msgUpgradePlan
	case RecInterestIncome:
		return msgInterestIncome
	case RecInterestRateChanged:
		return fmt.Sprintf("Interest rate of the account changed to %v", r.Rate.AsFloat())
	case RecAccountNotDeleted:
		return msgFundsRemaining
	default:
		return ""
	}
}

// MarshalJSON writes the record in the output wire format, fields ordered
// per kind.
func (r *Record) MarshalJSON() ([]byte, error) {
	w := &jsonObjectWriter{}
	w.Append("timestamp", r.Timestamp)
	w.Append("description", r.Describe())
	switch r.Kind {
	case RecCardPayment:
		w.Append("amount", r.Amount)
		w.Append("commerciant", r.Commerciant)
	case RecCardCreated, RecCardDestroyed:
		w.Append("card", r.Card)
		w.Append("cardHolder", r.CardHolder)
		w.Append("account", r.AccountIBAN)
	case RecTransfer:
		w.Append("senderIBAN", r.SenderIBAN)
		w.Append("receiverIBAN", r.ReceiverIBAN)
		w.Append("amount", fmt.Sprintf("%v %s", r.Amount.AsFloat(), r.Amount.Currency()))
		w.Append("transferType", r.TransferType)
	case RecSplitPayment:
		w.Append("splitPaymentType", r.SplitType)
		w.Append("currency", r.Amount.Currency())
		switch {
		case r.SplitType == "custom":
			w.Append("amountForUsers", r.AmountPerUser)
		case len(r.InvolvedAccounts) > 0:
			w.Append("amount", r.Amount.Div(len(r.InvolvedAccounts)))
		default:
			w.Append("amount", r.Amount)
		}
		w.Append("involvedAccounts", r.InvolvedAccounts)
		w.Optional("error", r.Error)
	case RecWithdrawSavings:
		w.Append("amount", r.Amount)
		w.Append("classicAccountIBAN", r.ClassicIBAN)
		w.Append("savingsAccountIBAN", r.SavingsIBAN)
	case RecCashWithdrawal:
		w.Append("amount", r.Amount)
	case RecUpgradePlan:
		w.Append("accountIBAN", r.AccountIBAN)
		w.Append("newPlanType", r.NewPlan.String())
	case RecInterestIncome:
		w.Append("amount", r.Amount)
		w.Append("currency", r.Amount.Currency())
	}
	return w.MarshalJSON()
}

var _ json.Marshaler = (*Record)(nil)

// Concerns reports whether the record belongs to the given account's report:
// either it is tagged with the IBAN or it carries no account tag at all.
func (r *Record) Concerns(iban string) bool {
	if r.AccountIBAN == "" {
		return true
	}
	if r.AccountIBAN == iban {
		return true
	}
	for _, acc := range r.InvolvedAccounts {
		if acc == iban {
			return true
		}
	}
	return r.ClassicIBAN == iban || r.SavingsIBAN == iban
}
