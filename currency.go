package banksim

import (
	"github.com/shopspring/decimal"
)

// RateEdge is one declared conversion step between two currencies.
type RateEdge struct {
	From, To string
	Rate     decimal.Decimal
}

// CurrencyGraph is a directed weighted graph of currency pairs. It is built
// once per batch run from the declared exchange rates and is read-only
// afterwards.
//
// Path search returns the first path found, not the cheapest: when several
// conversion chains exist the composite rate depends on declaration order.
// That looseness is part of the contract.
type CurrencyGraph struct {
	edges map[string][]RateEdge
}

func NewCurrencyGraph() *CurrencyGraph {
	return &CurrencyGraph{edges: make(map[string][]RateEdge)}
}

// AddRate inserts the edge from->to. If rate is non-zero the reverse edge is
// inserted too, with weight 1/rate.
func (g *CurrencyGraph) AddRate(from, to string, rate decimal.Decimal) {
	g.edges[from] = append(g.edges[from], RateEdge{From: from, To: to, Rate: rate})
	if !rate.IsZero() {
		inverse := decimal.NewFromInt(1).Div(rate)
		g.edges[to] = append(g.edges[to], RateEdge{From: to, To: from, Rate: inverse})
	}
}

// FindPath returns a sequence of edges connecting from to to, or nil when the
// currencies are not connected. Equal currencies yield an empty, non-nil path
// (composite rate 1). The search is breadth-first over edges in declaration
// order, so replay is deterministic for a given input.
func (g *CurrencyGraph) FindPath(from, to string) []RateEdge {
	if from == to {
		return []RateEdge{}
	}
	visited := map[string]bool{from: true}
	type node struct {
		cur  string
		path []RateEdge
	}
	queue := []node{{cur: from}}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, e := range g.edges[n.cur] {
			if visited[e.To] {
				continue
			}
			path := append(append([]RateEdge{}, n.path...), e)
			if e.To == to {
				return path
			}
			visited[e.To] = true
			queue = append(queue, node{cur: e.To, path: path})
		}
	}
	return nil
}

// Rate returns the composite conversion rate from one currency to another,
// and whether a conversion path exists.
func (g *CurrencyGraph) Rate(from, to string) (decimal.Decimal, bool) {
	path := g.FindPath(from, to)
	if path == nil {
		return decimal.Decimal{}, false
	}
	rate := decimal.NewFromInt(1)
	for _, e := range path {
		rate = rate.Mul(e.Rate)
	}
	return rate, true
}

// Convert re-denominates an amount into the target currency. When no
// conversion path exists the numeric amount is left unchanged; callers must
// not fail an operation solely because rate data is missing.
func (g *CurrencyGraph) Convert(m Money, to string) Money {
	if m.Currency() == to {
		return m
	}
	rate, ok := g.Rate(m.Currency(), to)
	if !ok {
		return M(m.value, to)
	}
	return M(m.value.Mul(rate), to)
}
