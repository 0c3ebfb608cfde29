package banksim

import "errors"

// Output wordings for commands that fail before reaching any account. These
// become output objects in the batch result, not history records.
const (
	msgUserNotFound    = "User not found"
	msgCardNotFound    = "Card not found"
	msgAccountNotFound = "Account not found"
	msgInvalidPlan     = "Invalid plan type"
)

// silverEligibleRON is the payment size, in RON, that counts toward a free
// silver-to-gold upgrade.
var silverEligibleRON = M(300, "RON")

// creditEligibility bumps the user's qualifying-payment counter. Only silver
// users accumulate credit toward the free gold upgrade, and only for
// RON-denominated payments large enough.
func creditEligibility(u *User, amountRON Money) {
	if u.Plan != Silver {
		return
	}
	if amountRON.GreaterThanOrEqual(silverEligibleRON) {
		u.CountEligiblePayment()
	}
}

// PayOnline settles one card payment to a commerciant. It returns a non-empty
// description when the command fails before reaching the account; every other
// failure is a history record and the return is empty.
func (b *Bank) PayOnline(ts int, cardNumber string, amount Money, email, merchantName string) string {
	if amount.IsZero() {
		return ""
	}
	user := b.UserByEmail(email)
	if user == nil {
		return msgUserNotFound
	}
	holder, account, card := b.FindCard(cardNumber)
	if card == nil || !account.CheckCardAccess(user) {
		return msgCardNotFound
	}
	if !card.IsActive() {
		user.Append(&Record{Timestamp: ts, Kind: RecCardFrozen, AccountIBAN: account.IBAN})
		return ""
	}
	merchant := b.CommerciantByName(merchantName)
	if merchant == nil {
		return msgUserNotFound
	}

	due := b.Rates.Convert(amount, account.Currency())
	if account.IsBusiness() && !account.Business.CanSpend(email, due) {
		return ""
	}
	fee := holder.Plan.Fee(due, b.Rates)
	if account.Balance.LessThan(due.Add(fee)) {
		user.Append(&Record{Timestamp: ts, Kind: RecInsufficientFunds, AccountIBAN: account.IBAN})
		return ""
	}

	account.Debit(due.Add(fee))
	user.Append(&Record{
		Timestamp:   ts,
		Kind:        RecCardPayment,
		AccountIBAN: account.IBAN,
		Amount:      due,
		Commerciant: merchant.Name,
	})
	if account.IsBusiness() {
		account.Business.RecordSpend(ts, email, due)
	}

	dueRON := b.Rates.Convert(due, "RON")
	account.AddFunds(ApplyCashback(account, holder.Plan, merchant, due, dueRON, b.Rates))
	creditEligibility(holder, dueRON)

	if card.OneTime {
		b.recycleCard(ts, user, account, card)
	}
	return ""
}

// recycleCard destroys a spent one-time card and issues a replacement under a
// fresh number.
func (b *Bank) recycleCard(ts int, user *User, account *Account, card *Card) {
	user.Append(&Record{
		Timestamp:   ts,
		Kind:        RecCardDestroyed,
		AccountIBAN: account.IBAN,
		Card:        card.Number,
		CardHolder:  user.Email,
	})
	if account.IsBusiness() {
		account.Business.ForgetCard(card.Number)
	}
	card.Number = b.NewCardNumber()
	card.Status = CardActive
	if account.IsBusiness() {
		account.Business.RecordCard(card.Number, user.Email)
	}
	user.Append(&Record{
		Timestamp:   ts,
		Kind:        RecCardCreated,
		AccountIBAN: account.IBAN,
		Card:        card.Number,
		CardHolder:  user.Email,
	})
}

// SendMoney transfers from one account to another account or to a
// commerciant's settlement IBAN. Both sides of an account-to-account transfer
// get a history record at the same timestamp. Any associate may send from a
// business account; employees are capped by the spending limit.
func (b *Bank) SendMoney(ts int, senderIBAN string, amount Money, receiverIBAN, email, desc string) string {
	user := b.UserByEmail(email)
	if user == nil {
		return msgUserNotFound
	}
	owner, sender := b.FindAccount(senderIBAN)
	if sender == nil {
		return msgUserNotFound
	}
	if owner != user {
		if !sender.IsBusiness() || !sender.Business.IsAssociate(email) {
			return msgUserNotFound
		}
	}

	recvUser, recvAccount := b.FindAccount(receiverIBAN)
	merchant := b.CommerciantByIBAN(receiverIBAN)
	if recvAccount == nil && merchant == nil {
		return msgUserNotFound
	}

	if sender.IsBusiness() && !sender.Business.CanSpend(email, amount) {
		return ""
	}
	fee := owner.Plan.Fee(amount, b.Rates)
	if sender.Balance.LessThan(amount.Add(fee)) {
		user.Append(&Record{Timestamp: ts, Kind: RecInsufficientFunds, AccountIBAN: sender.IBAN})
		return ""
	}

	sender.Debit(amount.Add(fee))
	if sender.IsBusiness() {
		sender.Business.RecordSpend(ts, email, amount)
	}
	user.Append(&Record{
		Timestamp:    ts,
		Kind:         RecTransfer,
		AccountIBAN:  sender.IBAN,
		Description:  desc,
		SenderIBAN:   sender.IBAN,
		ReceiverIBAN: receiverIBAN,
		Amount:       amount,
		TransferType: "sent",
	})

	amountRON := b.Rates.Convert(amount, "RON")
	if merchant != nil {
		sender.AddFunds(ApplyCashback(sender, owner.Plan, merchant, amount, amountRON, b.Rates))
		creditEligibility(owner, amountRON)
		return ""
	}

	received := b.Rates.Convert(amount, recvAccount.Currency())
	recvAccount.AddFunds(received)
	recvUser.Append(&Record{
		Timestamp:    ts,
		Kind:         RecTransfer,
		AccountIBAN:  recvAccount.IBAN,
		Description:  desc,
		SenderIBAN:   sender.IBAN,
		ReceiverIBAN: receiverIBAN,
		Amount:       received,
		TransferType: "received",
	})
	creditEligibility(owner, amountRON)
	return ""
}

// CashWithdrawal takes a RON-denominated amount out of a card's account,
// commission included. Non-positive amounts are refused: a negative debit
// would credit the account.
func (b *Bank) CashWithdrawal(ts int, cardNumber string, amountRON Money, email string) string {
	if !amountRON.IsPositive() {
		return ""
	}
	user := b.UserByEmail(email)
	if user == nil {
		return msgUserNotFound
	}
	_, account, card := b.FindCard(cardNumber)
	if card == nil || !account.CheckCardAccess(user) {
		return msgCardNotFound
	}
	if !card.IsActive() {
		user.Append(&Record{Timestamp: ts, Kind: RecCardFrozen, AccountIBAN: account.IBAN})
		return ""
	}

	due := b.Rates.Convert(amountRON, account.Currency())
	fee := user.Plan.Fee(due, b.Rates)
	if account.Balance.LessThan(due.Add(fee)) {
		user.Append(&Record{Timestamp: ts, Kind: RecInsufficientFunds, AccountIBAN: account.IBAN})
		return ""
	}
	account.Debit(due.Add(fee))
	user.Append(&Record{Timestamp: ts, Kind: RecCashWithdrawal, AccountIBAN: account.IBAN, Amount: amountRON})
	return ""
}

// minSavingsWithdrawalAge gates savings withdrawals.
const minSavingsWithdrawalAge = 21

// WithdrawSavings moves funds from a savings account into the user's first
// classic account in the requested currency. Callers pass the batch's notion
// of "now" for the age check.
func (b *Bank) WithdrawSavings(ts int, savingsIBAN string, amount Money, now Date) string {
	user, savings := b.FindAccount(savingsIBAN)
	if savings == nil {
		return msgAccountNotFound
	}
	if user.Age(now) < minSavingsWithdrawalAge {
		user.Append(&Record{Timestamp: ts, Kind: RecMinimumAge, AccountIBAN: savings.IBAN})
		return ""
	}
	if !savings.IsSavings() {
		return ""
	}
	classic := user.FirstClassicAccount(amount.Currency())
	if classic == nil {
		user.Append(&Record{Timestamp: ts, Kind: RecNoClassicAccount, AccountIBAN: savings.IBAN})
		return ""
	}

	needed := b.Rates.Convert(amount, savings.Currency())
	if savings.Balance.LessThan(needed) {
		user.Append(&Record{Timestamp: ts, Kind: RecInsufficientFunds, AccountIBAN: savings.IBAN})
		return ""
	}
	savings.Debit(needed)
	classic.AddFunds(amount)
	// one record per side, so both account reports show the withdrawal
	for _, iban := range []string{savings.IBAN, classic.IBAN} {
		user.Append(&Record{
			Timestamp:   ts,
			Kind:        RecWithdrawSavings,
			AccountIBAN: iban,
			Amount:      amount,
			SavingsIBAN: savings.IBAN,
			ClassicIBAN: classic.IBAN,
		})
	}
	return ""
}

// UpgradePlan moves the holder of an account to a higher tier, charging the
// upgrade fee to that account. Same-plan requests and downgrades are silently
// refused.
func (b *Bank) UpgradePlan(ts int, accountIBAN, planName string) string {
	user, account := b.FindAccount(accountIBAN)
	if account == nil {
		return msgAccountNotFound
	}
	target, err := ParsePlan(planName)
	if err != nil {
		return msgInvalidPlan
	}
	feeRON, waived, err := user.Plan.UpgradeFee(target, user.EligiblePayments())
	if errors.Is(err, ErrSamePlan) || errors.Is(err, ErrPlanDowngrade) {
		return ""
	}
	if err != nil {
		return ""
	}
	fee := b.Rates.Convert(feeRON, account.Currency())
	if !waived {
		if account.Balance.LessThan(fee) {
			user.Append(&Record{Timestamp: ts, Kind: RecInsufficientFunds, AccountIBAN: account.IBAN})
			return ""
		}
		account.Debit(fee)
	} else {
		user.ResetEligiblePayments()
	}
	user.Plan = target
	user.Append(&Record{Timestamp: ts, Kind: RecUpgradePlan, AccountIBAN: account.IBAN, NewPlan: target})
	return ""
}
