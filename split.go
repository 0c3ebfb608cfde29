package banksim

// SplitPayment is a pending multi-account settlement. It stays open until
// every involved user has accepted, or any one of them rejects. Resolution
// is all-or-nothing: either every account is debited its share or none is.
type SplitPayment struct {
	Type      string // "equal" or "custom"
	Timestamp int
	Total     Money
	Accounts  []string // IBANs, input order
	Shares    []Money  // per-account share, split currency, same order

	participants []string // holder emails, one slot per account, same order
	accepted     []bool   // per account slot, same order
	resolved     bool
}

// NewSplitPayment builds an agreement over the given accounts. For an equal
// split the shares are the total divided evenly; a custom split carries
// explicit per-account amounts.
func NewSplitPayment(b *Bank, splitType string, timestamp int, total Money, accounts []string, shares []Money) *SplitPayment {
	s := &SplitPayment{
		Type:      splitType,
		Timestamp: timestamp,
		Total:     total,
		Accounts:  accounts,
		Shares:    shares,
		accepted:  make([]bool, len(accounts)),
	}
	if s.Type == "" {
		s.Type = "equal"
	}
	if len(s.Shares) == 0 && len(accounts) > 0 {
		share := total.Div(len(accounts))
		for range accounts {
			s.Shares = append(s.Shares, share)
		}
	}
	for i, iban := range accounts {
		u, _ := b.FindAccount(iban)
		if u == nil {
			// no holder to ask; settle reports the missing account
			s.participants = append(s.participants, "")
			s.accepted[i] = true
			continue
		}
		s.participants = append(s.participants, u.Email)
	}
	return s
}

// Participants returns the holder emails of the involved accounts.
func (s *SplitPayment) Participants() []string { return s.participants }

func (s *SplitPayment) Resolved() bool { return s.resolved }

// Answered reports whether the user has accepted for every involved account
// they hold.
func (s *SplitPayment) Answered(email string) bool {
	for i, p := range s.participants {
		if p == email && !s.accepted[i] {
			return false
		}
	}
	return true
}

// Accept marks one of the caller's account slots; a user holding two of the
// involved accounts accepts once per account. When the last slot is marked
// the agreement settles immediately.
func (s *SplitPayment) Accept(b *Bank, email string) {
	if s.resolved {
		return
	}
	for i, p := range s.participants {
		if p == email && !s.accepted[i] {
			s.accepted[i] = true
			break
		}
	}
	for _, ok := range s.accepted {
		if !ok {
			return
		}
	}
	s.settle(b)
}

// Reject cancels the agreement. No account is debited; every participant
// gets the rejection record.
func (s *SplitPayment) Reject(b *Bank) {
	if s.resolved {
		return
	}
	s.resolve(b, msgSplitRejected)
}

// settle checks every account before touching any balance. The first account
// short of its share fails the whole agreement; otherwise all shares are
// debited in input order.
func (s *SplitPayment) settle(b *Bank) {
	type leg struct {
		account *Account
		due     Money
	}
	legs := make([]leg, 0, len(s.Accounts))
	for i, iban := range s.Accounts {
		_, a := b.FindAccount(iban)
		if a == nil {
			s.resolve(b, splitShortfallError(iban))
			return
		}
		due := b.Rates.Convert(s.Shares[i], a.Currency())
		if a.Balance.LessThan(due) {
			s.resolve(b, splitShortfallError(iban))
			return
		}
		legs = append(legs, leg{account: a, due: due})
	}
	for _, l := range legs {
		l.account.Debit(l.due)
	}
	s.resolve(b, "")
}

// resolve closes the agreement and appends one uniform record, with the
// original command timestamp, to every participant's history.
func (s *SplitPayment) resolve(b *Bank, errMsg string) {
	s.resolved = true
	for _, email := range s.participants {
		u := b.UserByEmail(email)
		if u == nil {
			continue
		}
		u.Append(&Record{
			Timestamp:        s.Timestamp,
			Kind:             RecSplitPayment,
			Amount:           s.Total,
			SplitType:        s.Type,
			InvolvedAccounts: s.Accounts,
			AmountPerUser:    s.customShares(),
			Error:            errMsg,
		})
		u.DropResolvedSplits()
	}
}

func (s *SplitPayment) customShares() []Money {
	if s.Type != "custom" {
		return nil
	}
	return s.Shares
}
