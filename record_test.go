package banksim

import (
	"encoding/json"
	"testing"
)

func TestRecordMarshal(t *testing.T) {
	tests := []struct {
		name   string
		record *Record
		want   string
	}{
		{
			name:   "account created",
			record: &Record{Timestamp: 1, Kind: RecAccountCreated},
			want:   `{"timestamp":1,"description":"New account created"}`,
		},
		{
			name:   "insufficient funds",
			record: &Record{Timestamp: 3, Kind: RecInsufficientFunds},
			want:   `{"timestamp":3,"description":"Insufficient funds"}`,
		},
		{
			name: "card payment",
			record: &Record{
				Timestamp: 5, Kind: RecCardPayment,
				Amount: RON(50), Commerciant: "CoffeeShop",
			},
			want: `{"timestamp":5,"description":"Card payment","amount":50,"commerciant":"CoffeeShop"}`,
		},
		{
			name: "card created",
			record: &Record{
				Timestamp: 2, Kind: RecCardCreated,
				Card: "4000000000000001", CardHolder: "ana@mail.com", AccountIBAN: "RO69",
			},
			want: `{"timestamp":2,"description":"New card created","card":"4000000000000001","cardHolder":"ana@mail.com","account":"RO69"}`,
		},
		{
			name: "transfer sent",
			record: &Record{
				Timestamp: 7, Kind: RecTransfer, Description: "rent",
				SenderIBAN: "RO01", ReceiverIBAN: "RO02",
				Amount: RON(45), TransferType: "sent",
			},
			want: `{"timestamp":7,"description":"rent","senderIBAN":"RO01","receiverIBAN":"RO02","amount":"45 RON","transferType":"sent"}`,
		},
		{
			name: "equal split",
			record: &Record{
				Timestamp: 9, Kind: RecSplitPayment, SplitType: "equal",
				Amount:           RON(80),
				InvolvedAccounts: []string{"RO01", "RO02"},
			},
			want: `{"timestamp":9,"description":"Split payment of 80.00 RON","splitPaymentType":"equal","currency":"RON","amount":40,"involvedAccounts":["RO01","RO02"]}`,
		},
		{
			name: "rejected split",
			record: &Record{
				Timestamp: 9, Kind: RecSplitPayment, SplitType: "equal",
				Amount:           RON(80),
				InvolvedAccounts: []string{"RO01", "RO02"},
				Error:            msgSplitRejected,
			},
			want: `{"timestamp":9,"description":"Split payment of 80.00 RON","splitPaymentType":"equal","currency":"RON","amount":40,"involvedAccounts":["RO01","RO02"],"error":"One user rejected the payment."}`,
		},
		{
			name:   "frozen card",
			record: &Record{Timestamp: 4, Kind: RecCardFrozen},
			want:   `{"timestamp":4,"description":"The card is frozen"}`,
		},
		{
			name:   "minimum age",
			record: &Record{Timestamp: 4, Kind: RecMinimumAge},
			want:   `{"timestamp":4,"description":"You don't have the minimum age required."}`,
		},
		{
			name: "upgrade plan",
			record: &Record{
				Timestamp: 11, Kind: RecUpgradePlan,
				AccountIBAN: "RO01", NewPlan: Gold,
			},
			want: `{"timestamp":11,"description":"Upgrade plan","accountIBAN":"RO01","newPlanType":"gold"}`,
		},
		{
			name:   "cash withdrawal",
			record: &Record{Timestamp: 12, Kind: RecCashWithdrawal, Amount: RON(500)},
			want:   `{"timestamp":12,"description":"Cash withdrawal of 500","amount":500}`,
		},
		{
			name:   "interest income",
			record: &Record{Timestamp: 13, Kind: RecInterestIncome, Amount: RON(52.5)},
			want:   `{"timestamp":13,"description":"Interest rate income","amount":52.5,"currency":"RON"}`,
		},
		{
			name: "withdraw savings",
			record: &Record{
				Timestamp: 14, Kind: RecWithdrawSavings,
				Amount: RON(100), ClassicIBAN: "RO01", SavingsIBAN: "RO02",
			},
			want: `{"timestamp":14,"description":"Withdraw savings","amount":100,"classicAccountIBAN":"RO01","savingsAccountIBAN":"RO02"}`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := json.Marshal(tc.record)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(got) != tc.want {
				t.Errorf("got  %s\nwant %s", got, tc.want)
			}
		})
	}
}

func TestRecordConcerns(t *testing.T) {
	r := &Record{Kind: RecSplitPayment, InvolvedAccounts: []string{"RO01", "RO02"}}
	if !r.Concerns("RO01") || !r.Concerns("RO02") {
		t.Error("split record must concern every involved account")
	}
	tagged := &Record{Kind: RecCardPayment, AccountIBAN: "RO01"}
	if !tagged.Concerns("RO01") || tagged.Concerns("RO03") {
		t.Error("tagged record must concern only its account")
	}
	untagged := &Record{Kind: RecAccountCreated}
	if !untagged.Concerns("RO09") {
		t.Error("untagged records concern every account")
	}
}
