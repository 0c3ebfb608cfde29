package banksim

// Account lifecycle operations. Like the settlement operations, each returns
// a non-empty description only when the command fails before reaching any
// account state; domain failures turn into history records.

// AddAccount opens a new account for a user. Savings accounts take their
// initial interest rate here; business accounts get the default employee
// limits and the creating user as owner.
func (b *Bank) AddAccount(ts int, email, currency string, kind AccountKind, interest Rate) string {
	user := b.UserByEmail(email)
	if user == nil {
		return msgUserNotFound
	}
	if err := ValidateCurrency(currency); err != nil {
		return err.Error()
	}
	a := NewAccount(b.NewIBAN(), currency, kind)
	switch kind {
	case KindSavings:
		a.InterestRate = interest
	case KindBusiness:
		a.Business.OwnerEmail = email
		a.Business.SetDefaultLimits(currency, b.Rates)
	}
	user.AddAccount(a)
	user.Append(&Record{Timestamp: ts, Kind: RecAccountCreated, AccountIBAN: a.IBAN})
	return ""
}

// CreateCard issues a card on an account. On business accounts any associate
// may create one, and the creator is remembered for delete checks. Requests
// from a user without access are silently ignored.
func (b *Bank) CreateCard(ts int, accountIBAN, email string, oneTime bool) string {
	user := b.UserByEmail(email)
	if user == nil {
		return msgUserNotFound
	}
	_, account := b.FindAccount(accountIBAN)
	if account == nil {
		return ""
	}
	if !account.CheckCardAccess(user) {
		return ""
	}
	card := &Card{Number: b.NewCardNumber(), Status: CardActive, OneTime: oneTime}
	account.AddCard(card)
	if account.IsBusiness() {
		account.Business.RecordCard(card.Number, email)
	}
	user.Append(&Record{
		Timestamp:   ts,
		Kind:        RecCardCreated,
		AccountIBAN: account.IBAN,
		Card:        card.Number,
		CardHolder:  email,
	})
	return ""
}

// AddFunds credits an account. On business accounts only associates may
// deposit; an employee deposit over the limit is refused without a record.
func (b *Bank) AddFunds(ts int, accountIBAN string, amount Money, email string) string {
	_, account := b.FindAccount(accountIBAN)
	if account == nil {
		return ""
	}
	if account.IsBusiness() {
		if !account.Business.IsAssociate(email) {
			return ""
		}
		if !account.Business.CanDeposit(email, amount) {
			return ""
		}
		account.Business.RecordDeposit(ts, email, amount)
	}
	account.AddFunds(amount)
	return ""
}

// DeleteAccount closes an account, but only when its balance is zero. It
// reports whether the account was actually deleted; a refused delete leaves a
// funds-remaining record in the holder's history.
func (b *Bank) DeleteAccount(ts int, email, accountIBAN string) (ok bool, errMsg string) {
	user := b.UserByEmail(email)
	if user == nil {
		return false, msgUserNotFound
	}
	account := user.AccountByIBAN(accountIBAN)
	if account == nil {
		return false, msgAccountNotFound
	}
	if !account.Balance.IsZero() {
		user.Append(&Record{Timestamp: ts, Kind: RecAccountNotDeleted, AccountIBAN: account.IBAN})
		return false, ""
	}
	user.RemoveAccount(accountIBAN)
	return true, ""
}

// DeleteCard destroys a card. On business accounts an employee may only
// destroy a card they created.
func (b *Bank) DeleteCard(ts int, cardNumber, email string) string {
	user := b.UserByEmail(email)
	if user == nil {
		return msgUserNotFound
	}
	_, account, card := b.FindCard(cardNumber)
	if card == nil || !account.CheckCardAccess(user) {
		return ""
	}
	if account.IsBusiness() && !account.Business.CanDeleteCard(email, cardNumber) {
		return ""
	}
	account.DeleteCard(cardNumber)
	if account.IsBusiness() {
		account.Business.ForgetCard(cardNumber)
	}
	user.Append(&Record{
		Timestamp:   ts,
		Kind:        RecCardDestroyed,
		AccountIBAN: account.IBAN,
		Card:        cardNumber,
		CardHolder:  email,
	})
	return ""
}

// SetMinimumBalance sets the freeze threshold of an account.
func (b *Bank) SetMinimumBalance(ts int, accountIBAN string, amount Money) string {
	_, account := b.FindAccount(accountIBAN)
	if account == nil {
		return msgAccountNotFound
	}
	account.MinimumBalance = amount
	return ""
}

// CheckCardStatus freezes a card whose account has fallen to or below the
// minimum balance, warning the holder.
func (b *Bank) CheckCardStatus(ts int, cardNumber string) string {
	holder, account, card := b.FindCard(cardNumber)
	if card == nil {
		return msgCardNotFound
	}
	if card.IsActive() && account.Balance.LessThanOrEqual(account.MinimumBalance) {
		card.Status = CardFrozen
		holder.Append(&Record{Timestamp: ts, Kind: RecFreezeWarning, AccountIBAN: account.IBAN})
	}
	return ""
}

const msgNotSavings = "This is not a savings account"

// AddInterest credits one interest period to a savings account.
func (b *Bank) AddInterest(ts int, accountIBAN string) string {
	user, account := b.FindAccount(accountIBAN)
	if account == nil {
		return msgAccountNotFound
	}
	if !account.IsSavings() {
		return msgNotSavings
	}
	income := account.InterestRate.Of(account.Balance)
	account.AddFunds(income)
	user.Append(&Record{Timestamp: ts, Kind: RecInterestIncome, AccountIBAN: account.IBAN, Amount: income})
	return ""
}

// ChangeInterestRate replaces a savings account's rate.
func (b *Bank) ChangeInterestRate(ts int, accountIBAN string, rate Rate) string {
	user, account := b.FindAccount(accountIBAN)
	if account == nil {
		return msgAccountNotFound
	}
	if !account.IsSavings() {
		return msgNotSavings
	}
	account.InterestRate = rate
	user.Append(&Record{Timestamp: ts, Kind: RecInterestRateChanged, AccountIBAN: account.IBAN, Rate: rate})
	return ""
}
