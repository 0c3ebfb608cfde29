package banksim

// businessEntry is one logged associate action on a business account, kept
// for the business report projections.
type businessEntry struct {
	Timestamp int
	Email     string
	Deposit   bool // false means spending
	Amount    Money
}

// BusinessData carries the associate roles, limits, and activity log of a
// business account.
type BusinessData struct {
	OwnerEmail string

	managers  []string // in association order
	employees []string

	spendingLimit Money // employee cap per operation
	depositLimit  Money

	cardCreators map[string]string // card number -> associate email
	log          []businessEntry
}

func newBusinessData() *BusinessData {
	return &BusinessData{cardCreators: make(map[string]string)}
}

// SetDefaultLimits installs the initial employee limits: 500 RON converted
// into the account currency, for both spending and deposits.
func (b *BusinessData) SetDefaultLimits(currency string, rates *CurrencyGraph) {
	def := rates.Convert(M(500, "RON"), currency)
	b.spendingLimit = def
	b.depositLimit = def
}

func (b *BusinessData) IsOwner(email string) bool { return email == b.OwnerEmail }

func (b *BusinessData) IsManager(email string) bool {
	for _, m := range b.managers {
		if m == email {
			return true
		}
	}
	return false
}

func (b *BusinessData) IsEmployee(email string) bool {
	for _, e := range b.employees {
		if e == email {
			return true
		}
	}
	return false
}

func (b *BusinessData) IsAssociate(email string) bool {
	return b.IsOwner(email) || b.IsManager(email) || b.IsEmployee(email)
}

// AddManager registers a manager. Adding an existing associate (the owner
// included) is refused.
func (b *BusinessData) AddManager(email string) bool {
	if b.IsAssociate(email) {
		return false
	}
	b.managers = append(b.managers, email)
	return true
}

// AddEmployee registers an employee. Adding an existing associate is refused.
func (b *BusinessData) AddEmployee(email string) bool {
	if b.IsAssociate(email) {
		return false
	}
	b.employees = append(b.employees, email)
	return true
}

// Managers returns manager emails in association order.
func (b *BusinessData) Managers() []string { return b.managers }

// Employees returns employee emails in association order.
func (b *BusinessData) Employees() []string { return b.employees }

func (b *BusinessData) SpendingLimit() Money { return b.spendingLimit }
func (b *BusinessData) DepositLimit() Money  { return b.depositLimit }

func (b *BusinessData) SetSpendingLimit(m Money) { b.spendingLimit = m }
func (b *BusinessData) SetDepositLimit(m Money)  { b.depositLimit = m }

// CanSpend reports whether an associate may spend the given amount, in
// account currency. Owners and managers are unlimited; employees are capped
// by the spending limit.
func (b *BusinessData) CanSpend(email string, amount Money) bool {
	if b.IsOwner(email) || b.IsManager(email) {
		return true
	}
	return amount.LessThanOrEqual(b.spendingLimit)
}

// CanDeposit reports whether an associate may deposit the given amount.
func (b *BusinessData) CanDeposit(email string, amount Money) bool {
	if b.IsOwner(email) || b.IsManager(email) {
		return true
	}
	return amount.LessThanOrEqual(b.depositLimit)
}

// RecordCard remembers which associate created a card, for delete checks.
func (b *BusinessData) RecordCard(number, email string) { b.cardCreators[number] = email }

func (b *BusinessData) ForgetCard(number string) { delete(b.cardCreators, number) }

// CanDeleteCard reports whether an associate may delete a card. Owners and
// managers may delete any card; an employee only one they created.
func (b *BusinessData) CanDeleteCard(email, number string) bool {
	if b.IsOwner(email) || b.IsManager(email) {
		return true
	}
	return b.cardCreators[number] == email
}

// RecordSpend logs a committed spending by an associate, in account currency.
func (b *BusinessData) RecordSpend(timestamp int, email string, amount Money) {
	b.log = append(b.log, businessEntry{Timestamp: timestamp, Email: email, Amount: amount})
}

// RecordDeposit logs a committed deposit by an associate.
func (b *BusinessData) RecordDeposit(timestamp int, email string, amount Money) {
	b.log = append(b.log, businessEntry{Timestamp: timestamp, Email: email, Deposit: true, Amount: amount})
}

// SpentBy sums the spending logged for an associate within [from, to].
func (b *BusinessData) SpentBy(email string, from, to int, currency string) Money {
	total := M(0, currency)
	for _, e := range b.log {
		if !e.Deposit && e.Email == email && e.Timestamp >= from && e.Timestamp <= to {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// DepositedBy sums the deposits logged for an associate within [from, to].
func (b *BusinessData) DepositedBy(email string, from, to int, currency string) Money {
	total := M(0, currency)
	for _, e := range b.log {
		if e.Deposit && e.Email == email && e.Timestamp >= from && e.Timestamp <= to {
			total = total.Add(e.Amount)
		}
	}
	return total
}
