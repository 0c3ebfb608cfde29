package banksim

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const batchInput = `{
  "users": [
    {"firstName": "Ana", "lastName": "Pop", "email": "ana@mail.com", "birthDate": "1990-03-12", "occupation": "engineer"},
    {"firstName": "Dan", "lastName": "Ionescu", "email": "dan@mail.com", "birthDate": "1988-07-03", "occupation": "manager"}
  ],
  "commerciants": [
    {"commerciant": "CoffeeShop", "id": 1, "account": "RO12COMM0000000000000001", "type": "Food", "cashbackStrategy": "nrOfTransactions"}
  ],
  "exchangeRates": [
    {"from": "USD", "to": "RON", "rate": 4.5}
  ],
  "commands": [
    {"command": "addAccount", "email": "ana@mail.com", "currency": "RON", "accountType": "classic", "timestamp": 1},
    {"command": "printUsers", "timestamp": 2},
    {"command": "addFunds", "email": "ana@mail.com", "account": "RO69BNKS0000000000000001", "amount": 100, "timestamp": 3},
    {"command": "createCard", "email": "ana@mail.com", "account": "RO69BNKS0000000000000001", "timestamp": 4},
    {"command": "payOnline", "email": "ana@mail.com", "cardNumber": "4000000000000001", "amount": 50, "currency": "RON", "commerciant": "CoffeeShop", "timestamp": 5},
    {"command": "payOnline", "email": "ghost@mail.com", "cardNumber": "4000000000000001", "amount": 5, "currency": "RON", "commerciant": "CoffeeShop", "timestamp": 6},
    {"command": "printTransactions", "email": "ana@mail.com", "timestamp": 7}
  ]
}`

// runProbe decodes, runs and re-parses the output for jsonpath probes.
func runProbe(t *testing.T, input string) interface{} {
	t.Helper()
	in, err := DecodeBatch(strings.NewReader(input))
	require.NoError(t, err)
	out, err := RunBatch(in, zerolog.Nop())
	require.NoError(t, err)
	var parsed interface{}
	require.NoError(t, json.Unmarshal(out, &parsed))
	return parsed
}

func probe(t *testing.T, doc interface{}, path string) interface{} {
	t.Helper()
	val, err := jsonpath.Get(path, doc)
	require.NoError(t, err, "path %s", path)
	return val
}

func TestBatchEndToEnd(t *testing.T) {
	doc := runProbe(t, batchInput)

	// printUsers snapshot before any funds
	assert.Equal(t, "printUsers", probe(t, doc, `$[0].command`))
	assert.Equal(t, "Ana", probe(t, doc, `$[0].output[0].firstName`))
	assert.Equal(t, "RO69BNKS0000000000000001", probe(t, doc, `$[0].output[0].accounts[0].IBAN`))
	assert.Equal(t, "classic", probe(t, doc, `$[0].output[0].accounts[0].type`))
	assert.Equal(t, float64(0), probe(t, doc, `$[0].output[0].accounts[0].balance`))

	// unknown payer produces the failure envelope
	assert.Equal(t, "payOnline", probe(t, doc, `$[1].command`))
	assert.Equal(t, "User not found", probe(t, doc, `$[1].output.description`))
	assert.Equal(t, float64(6), probe(t, doc, `$[1].output.timestamp`))

	// history: account created, card created, then the payment
	assert.Equal(t, "New account created", probe(t, doc, `$[2].output[0].description`))
	assert.Equal(t, "New card created", probe(t, doc, `$[2].output[1].description`))
	assert.Equal(t, "4000000000000001", probe(t, doc, `$[2].output[1].card`))
	assert.Equal(t, "Card payment", probe(t, doc, `$[2].output[2].description`))
	assert.Equal(t, float64(50), probe(t, doc, `$[2].output[2].amount`))
	assert.Equal(t, "CoffeeShop", probe(t, doc, `$[2].output[2].commerciant`))
}

func TestBatchDeterministicReplay(t *testing.T) {
	in1, err := DecodeBatch(strings.NewReader(batchInput))
	require.NoError(t, err)
	out1, err := RunBatch(in1, zerolog.Nop())
	require.NoError(t, err)

	in2, err := DecodeBatch(strings.NewReader(batchInput))
	require.NoError(t, err)
	out2, err := RunBatch(in2, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, string(out1), string(out2))
}

func TestBatchFieldOrder(t *testing.T) {
	in, err := DecodeBatch(strings.NewReader(batchInput))
	require.NoError(t, err)
	out, err := RunBatch(in, zerolog.Nop())
	require.NoError(t, err)

	// ordered writer puts command before output before timestamp
	s := string(out)
	cmd := strings.Index(s, `"command"`)
	output := strings.Index(s, `"output"`)
	assert.True(t, cmd >= 0 && output > cmd, "command must precede output in %q", s[:80])
}

func TestBatchReferenceDatePinsAgeChecks(t *testing.T) {
	const input = `{
  "users": [
    {"firstName": "Ioana", "lastName": "Marin", "email": "ioana@mail.com", "birthDate": "2008-05-20", "occupation": "student"}
  ],
  "commerciants": [],
  "exchangeRates": [],
  "referenceDate": "2026-01-15",
  "commands": [
    {"command": "addAccount", "email": "ioana@mail.com", "currency": "RON", "accountType": "savings", "interestRate": 0.05, "timestamp": 1},
    {"command": "addFunds", "email": "ioana@mail.com", "account": "RO69BNKS0000000000000001", "amount": 500, "timestamp": 2},
    {"command": "withdrawSavings", "email": "ioana@mail.com", "account": "RO69BNKS0000000000000001", "amount": 100, "currency": "RON", "timestamp": 3},
    {"command": "printTransactions", "email": "ioana@mail.com", "timestamp": 4}
  ]
}`
	in, err := DecodeBatch(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, NewDate(2026, time.January, 15), NewRunner(in).Now)

	// at the pinned date the holder is 17, whatever the wall clock says
	doc := runProbe(t, input)
	assert.Equal(t, "You don't have the minimum age required.",
		probe(t, doc, `$[0].output[1].description`))
}

func TestBatchSplitPaymentFlow(t *testing.T) {
	const input = `{
  "users": [
    {"firstName": "Ana", "lastName": "Pop", "email": "ana@mail.com", "birthDate": "1990-03-12", "occupation": "engineer"},
    {"firstName": "Dan", "lastName": "Ionescu", "email": "dan@mail.com", "birthDate": "1988-07-03", "occupation": "manager"}
  ],
  "commerciants": [],
  "exchangeRates": [],
  "commands": [
    {"command": "addAccount", "email": "ana@mail.com", "currency": "RON", "accountType": "classic", "timestamp": 1},
    {"command": "addAccount", "email": "dan@mail.com", "currency": "RON", "accountType": "classic", "timestamp": 2},
    {"command": "addFunds", "email": "ana@mail.com", "account": "RO69BNKS0000000000000001", "amount": 100, "timestamp": 3},
    {"command": "addFunds", "email": "dan@mail.com", "account": "RO69BNKS0000000000000002", "amount": 100, "timestamp": 4},
    {"command": "splitPayment", "splitPaymentType": "equal", "currency": "RON", "amount": 80,
     "accounts": ["RO69BNKS0000000000000001", "RO69BNKS0000000000000002"], "timestamp": 5},
    {"command": "acceptSplitPayment", "email": "ana@mail.com", "splitPaymentType": "equal", "timestamp": 6},
    {"command": "acceptSplitPayment", "email": "dan@mail.com", "splitPaymentType": "equal", "timestamp": 7},
    {"command": "printTransactions", "email": "dan@mail.com", "timestamp": 8},
    {"command": "printUsers", "timestamp": 9}
  ]
}`
	doc := runProbe(t, input)

	// dan's history: account created, then the split record at the original timestamp
	assert.Equal(t, "Split payment of 80.00 RON", probe(t, doc, `$[0].output[1].description`))
	assert.Equal(t, float64(5), probe(t, doc, `$[0].output[1].timestamp`))
	assert.Equal(t, "equal", probe(t, doc, `$[0].output[1].splitPaymentType`))
	assert.Equal(t, float64(40), probe(t, doc, `$[0].output[1].amount`))

	// both balances debited their share
	assert.Equal(t, float64(60), probe(t, doc, `$[1].output[0].accounts[0].balance`))
	assert.Equal(t, float64(60), probe(t, doc, `$[1].output[1].accounts[0].balance`))
}
