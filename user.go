package banksim

import "sort"

// User owns accounts and a personal record history. The plan applies to the
// user as a whole, not per account.
type User struct {
	FirstName  string
	LastName   string
	Email      string
	Birth      Date
	Occupation string

	Plan     Plan
	Accounts []*Account

	// payments of at least 300 RON since the last fee waiver, counted
	// toward the automatic gold upgrade
	eligiblePayments int

	records []*Record

	pendingSplits []*SplitPayment
}

// NewUser creates a user on the plan implied by the occupation: students
// start on the student plan, everyone else on standard.
func NewUser(first, last, email string, birth Date, occupation string) *User {
	plan := Standard
	if occupation == "student" {
		plan = Student
	}
	return &User{
		FirstName:  first,
		LastName:   last,
		Email:      email,
		Birth:      birth,
		Occupation: occupation,
		Plan:       plan,
	}
}

// Age returns the user's age in full years at the given date.
func (u *User) Age(at Date) int { return u.Birth.YearsUntil(at) }

func (u *User) AccountByIBAN(iban string) *Account {
	for _, a := range u.Accounts {
		if a.IBAN == iban {
			return a
		}
	}
	return nil
}

// FirstClassicAccount returns the user's oldest classic account, in the
// given currency if one exists, else nil.
func (u *User) FirstClassicAccount(currency string) *Account {
	for _, a := range u.Accounts {
		if a.IsClassic() && a.Currency() == currency {
			return a
		}
	}
	return nil
}

func (u *User) AddAccount(a *Account) { u.Accounts = append(u.Accounts, a) }

// RemoveAccount drops the account with the given IBAN from the user.
func (u *User) RemoveAccount(iban string) {
	for i, a := range u.Accounts {
		if a.IBAN == iban {
			u.Accounts = append(u.Accounts[:i], u.Accounts[i+1:]...)
			return
		}
	}
}

// Append adds a record to the user's history, keeping timestamp order.
// Insertion is stable: records sharing a timestamp stay in arrival order.
func (u *User) Append(r *Record) {
	u.records = append(u.records, r)
	sort.SliceStable(u.records, func(i, j int) bool {
		return u.records[i].Timestamp < u.records[j].Timestamp
	})
}

// Records returns the user's history in timestamp order.
func (u *User) Records() []*Record { return u.records }

// CountEligiblePayment bumps the counter of payments of at least 300 RON.
func (u *User) CountEligiblePayment() { u.eligiblePayments++ }

// EligiblePayments is the number of qualifying payments since the last
// upgrade fee waiver.
func (u *User) EligiblePayments() int { return u.eligiblePayments }

// ResetEligiblePayments clears the counter after a waived upgrade.
func (u *User) ResetEligiblePayments() { u.eligiblePayments = 0 }

// EnqueueSplit registers a pending split agreement involving this user.
func (u *User) EnqueueSplit(s *SplitPayment) {
	u.pendingSplits = append(u.pendingSplits, s)
}

// NextPendingSplit returns the first agreement of the given type that this
// user has not yet answered, or nil.
func (u *User) NextPendingSplit(splitType string) *SplitPayment {
	for _, s := range u.pendingSplits {
		if s.Type == splitType && !s.Resolved() && !s.Answered(u.Email) {
			return s
		}
	}
	return nil
}

// DropResolvedSplits compacts the pending queue.
func (u *User) DropResolvedSplits() {
	kept := u.pendingSplits[:0]
	for _, s := range u.pendingSplits {
		if !s.Resolved() {
			kept = append(kept, s)
		}
	}
	u.pendingSplits = kept
}
