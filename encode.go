package banksim

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	// amounts travel as plain JSON numbers in this format
	decimal.MarshalJSONWithoutQuotes = true
}

// BatchInput is one complete run: the world setup followed by the command
// list. ReferenceDate pins the date used by age checks, so the same input
// replays identically regardless of when it runs; unset, the runner uses
// today.
type BatchInput struct {
	Users         []UserInput        `json:"users"`
	Commerciants  []CommerciantInput `json:"commerciants"`
	ExchangeRates []RateInput        `json:"exchangeRates"`
	ReferenceDate Date               `json:"referenceDate"`
	Commands      []Command          `json:"commands"`
}

type UserInput struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	BirthDate  Date   `json:"birthDate"`
	Occupation string `json:"occupation"`
}

type CommerciantInput struct {
	Commerciant      string `json:"commerciant"`
	ID               int    `json:"id"`
	Account          string `json:"account"`
	Type             string `json:"type"`
	CashbackStrategy string `json:"cashbackStrategy"`
}

type RateInput struct {
	From string          `json:"from"`
	To   string          `json:"to"`
	Rate decimal.Decimal `json:"rate"`
}

// Command is one timestamped operation. The same struct carries every
// command's fields; the Command name selects which ones matter.
type Command struct {
	Command   string `json:"command"`
	Timestamp int    `json:"timestamp"`

	Email       string  `json:"email,omitempty"`
	Account     string  `json:"account,omitempty"`
	Currency    string  `json:"currency,omitempty"`
	Amount      float64 `json:"amount,omitempty"`
	AccountType string  `json:"accountType,omitempty"`

	InterestRate float64 `json:"interestRate,omitempty"`

	CardNumber  string `json:"cardNumber,omitempty"`
	Commerciant string `json:"commerciant,omitempty"`

	Receiver    string `json:"receiver,omitempty"`
	Description string `json:"description,omitempty"`

	SplitPaymentType string    `json:"splitPaymentType,omitempty"`
	Accounts         []string  `json:"accounts,omitempty"`
	AmountForUsers   []float64 `json:"amountForUsers,omitempty"`

	NewPlanType string `json:"newPlanType,omitempty"`
	Role        string `json:"role,omitempty"`

	StartTimestamp int `json:"startTimestamp,omitempty"`
	EndTimestamp   int `json:"endTimestamp,omitempty"`
}

// DecodeBatch reads one batch input document.
func DecodeBatch(r io.Reader) (*BatchInput, error) {
	var in BatchInput
	dec := json.NewDecoder(r)
	if err := dec.Decode(&in); err != nil {
		return nil, fmt.Errorf("decoding batch input: %w", err)
	}
	return &in, nil
}

// BuildBank seeds a fresh bank from the batch setup section.
func BuildBank(in *BatchInput) *Bank {
	b := NewBank()
	for _, u := range in.Users {
		b.AddUser(NewUser(u.FirstName, u.LastName, u.Email, u.BirthDate, u.Occupation))
	}
	for _, c := range in.Commerciants {
		strategy, err := ParseCashbackStrategy(c.CashbackStrategy)
		if err != nil {
			strategy = CashbackNone
		}
		b.AddCommerciant(&Commerciant{
			Name:     c.Commerciant,
			ID:       c.ID,
			IBAN:     c.Account,
			Category: c.Type,
			Strategy: strategy,
		})
	}
	for _, r := range in.ExchangeRates {
		b.Rates.AddRate(r.From, r.To, r.Rate)
	}
	return b
}
