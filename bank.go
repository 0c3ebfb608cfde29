package banksim

import "fmt"

// Bank is the whole in-memory world of one batch run: every user, account,
// card, and commerciant, plus the exchange-rate graph. It is built from the
// batch setup section and mutated only by the command loop; nothing persists
// across runs.
type Bank struct {
	Rates *CurrencyGraph

	users   []*User // declaration order, kept for printUsers
	byEmail map[string]*User

	commerciants []*Commerciant
	byName       map[string]*Commerciant
	byIBAN       map[string]*Commerciant

	cards cardNumberer
	ibans int64

	splits []*SplitPayment
}

func NewBank() *Bank {
	return &Bank{
		Rates:   NewCurrencyGraph(),
		byEmail: make(map[string]*User),
		byName:  make(map[string]*Commerciant),
		byIBAN:  make(map[string]*Commerciant),
	}
}

func (b *Bank) AddUser(u *User) {
	b.users = append(b.users, u)
	b.byEmail[u.Email] = u
}

func (b *Bank) AddCommerciant(c *Commerciant) {
	b.commerciants = append(b.commerciants, c)
	b.byName[c.Name] = c
	b.byIBAN[c.IBAN] = c
}

// Users returns every user in declaration order.
func (b *Bank) Users() []*User { return b.users }

func (b *Bank) UserByEmail(email string) *User { return b.byEmail[email] }

func (b *Bank) CommerciantByName(name string) *Commerciant { return b.byName[name] }
func (b *Bank) CommerciantByIBAN(iban string) *Commerciant { return b.byIBAN[iban] }

// FindAccount locates an account by IBAN, returning its holder too.
func (b *Bank) FindAccount(iban string) (*User, *Account) {
	for _, u := range b.users {
		if a := u.AccountByIBAN(iban); a != nil {
			return u, a
		}
	}
	return nil, nil
}

// FindCard locates a card by number, returning the account it is attached to
// and the account holder. For business accounts the holder is the owner, not
// necessarily whoever is paying.
func (b *Bank) FindCard(number string) (*User, *Account, *Card) {
	for _, u := range b.users {
		for _, a := range u.Accounts {
			if c := a.CardByNumber(number); c != nil {
				return u, a, c
			}
		}
	}
	return nil, nil, nil
}

// NewIBAN hands out the next account IBAN of the run. Deterministic for a
// given batch, so replays produce identical accounts.
func (b *Bank) NewIBAN() string {
	b.ibans++
	return fmt.Sprintf("RO69BNKS%016d", b.ibans)
}

// NewCardNumber hands out the next card number of the run.
func (b *Bank) NewCardNumber() string { return b.cards.generate() }

// RegisterSplit tracks a split agreement and enqueues it with every involved
// user.
func (b *Bank) RegisterSplit(s *SplitPayment) {
	b.splits = append(b.splits, s)
	for _, email := range s.Participants() {
		if u := b.byEmail[email]; u != nil {
			u.EnqueueSplit(s)
		}
	}
}
