package banksim

import "fmt"

// CardStatus is the lifecycle state of a card.
type CardStatus string

const (
	CardActive CardStatus = "active"
	CardFrozen CardStatus = "frozen"
)

// Card is a payment card attached to an account. A one-time card is
// destroyed and re-issued under a fresh number after every committed payment.
type Card struct {
	Number  string
	Status  CardStatus
	OneTime bool
}

func (c *Card) IsActive() bool { return c.Status == CardActive }

// cardNumberer hands out card numbers for one batch run. Numbers are drawn
// from a plain sequence so a replayed batch produces identical cards.
type cardNumberer struct {
	next int64
}

func (n *cardNumberer) generate() string {
	n.next++
	return fmt.Sprintf("4%015d", n.next)
}
