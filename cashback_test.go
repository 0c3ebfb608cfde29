package banksim

import "testing"

func payTo(b *Bank, a *Account, plan Plan, merchant string, amount Money) Money {
	c := b.CommerciantByName(merchant)
	return ApplyCashback(a, plan, c, amount, b.Rates.Convert(amount, "RON"), b.Rates)
}

func TestCountCashbackGrantAndRedeem(t *testing.T) {
	b := testBank(t)
	a := openAccount(t, b, "ana@mail.com", "RON", KindClassic)

	// CoffeeShop counts transactions; the second payment grants 2% on Food.
	if credit := payTo(b, a, Standard, "CoffeeShop", RON(10)); !credit.IsZero() {
		t.Fatalf("first payment credited %v, want 0", credit.AsFloat())
	}
	if credit := payTo(b, a, Standard, "CoffeeShop", RON(10)); !credit.IsZero() {
		t.Fatalf("second payment credited %v, want 0 (reward is pending)", credit.AsFloat())
	}
	if _, ok := a.PendingCashback("Food"); !ok {
		t.Fatal("second payment did not grant the Food reward")
	}

	// The next Food payment redeems the pending 2%.
	credit := payTo(b, a, Standard, "CoffeeShop", RON(50))
	if !almost(credit.AsFloat(), 1.0) {
		t.Errorf("redeemed credit = %v, want 1.0 (2%% of 50)", credit.AsFloat())
	}
	if _, ok := a.PendingCashback("Food"); ok {
		t.Error("reward was not consumed on redemption")
	}
}

func TestCountCashbackGrantsOncePerCategory(t *testing.T) {
	b := testBank(t)
	a := openAccount(t, b, "ana@mail.com", "RON", KindClassic)

	for i := 0; i < 2; i++ {
		payTo(b, a, Standard, "CoffeeShop", RON(10))
	}
	if _, ok := a.TakeCashback("Food"); !ok {
		t.Fatal("expected a pending Food reward")
	}
	// Visits keep counting but Food was already granted for this account.
	a.merchantVisits["CoffeeShop"] = 1
	payTo(b, a, Standard, "CoffeeShop", RON(10))
	if _, ok := a.PendingCashback("Food"); ok {
		t.Error("Food reward granted twice")
	}
}

func TestSpendingThresholdTiers(t *testing.T) {
	testCases := []struct {
		name  string
		plan  Plan
		spent float64 // cumulative RON before the probe payment
		want  float64 // rate applied to the probe payment
	}{
		{name: "below first tier", plan: Standard, spent: 50, want: 0},
		{name: "standard tier 100", plan: Standard, spent: 100, want: 0.001},
		{name: "standard tier 300", plan: Standard, spent: 300, want: 0.002},
		{name: "standard tier 500", plan: Standard, spent: 500, want: 0.0025},
		{name: "silver tier 500", plan: Silver, spent: 500, want: 0.005},
		{name: "gold tier 100", plan: Gold, spent: 100, want: 0.005},
		{name: "gold tier 500", plan: Gold, spent: 600, want: 0.007},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := testBank(t)
			a := openAccount(t, b, "ana@mail.com", "RON", KindClassic)
			probe := RON(100)
			// seed the cumulative total so the probe payment lands in the tier
			a.AddThresholdSpend(RON(tc.spent - probe.AsFloat()))
			credit := payTo(b, a, tc.plan, "MegaStore", probe)
			if !almost(credit.AsFloat(), tc.want*probe.AsFloat()) {
				t.Errorf("credit = %v, want %v", credit.AsFloat(), tc.want*probe.AsFloat())
			}
		})
	}
}
