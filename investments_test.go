package finanzas

import "testing"

func TestCalculateInvestmentSummary(t *testing.T) {
	investments := Investments{
		&Platform{Name: "Broker", Balance: dec(1000), Currency: "EUR"},
		&Asset{Name: "ACME", Quantity: dec(10), PurchasePrice: dec(20), CurrentPrice: dec(30), Currency: "EUR"},
		&Asset{Name: "INIT", Quantity: dec(4), PurchasePrice: dec(100), CurrentPrice: dec(100), Currency: "USD"},
	}
	s := CalculateInvestmentSummary(investments, usdToEur, "EUR")

	tests := []struct {
		name      string
		got, want Money
	}{
		{"value", s.Value, EUR(1500)},
		{"cost", s.Cost, EUR(400)},
		{"gain", s.Gain, EUR(100)},
	}
	for _, tt := range tests {
		if !tt.got.Equal(tt.want) {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
	if got, want := s.Return, Percent(25); !got.Equal(want) {
		t.Errorf("return = %v, want %v", got, want)
	}
	if s.Platforms != 1 || s.Assets != 2 {
		t.Errorf("counts = %d platforms %d assets, want 1 and 2", s.Platforms, s.Assets)
	}
}

func TestCalculateInvestmentSummary_PlatformsOnly(t *testing.T) {
	s := CalculateInvestmentSummary(Investments{&Platform{Balance: dec(50), Currency: "EUR"}}, Identity, "EUR")
	if s.Return != 0 {
		t.Errorf("return = %v, want 0", s.Return)
	}
	if !s.Gain.IsZero() {
		t.Errorf("gain = %v, want 0", s.Gain)
	}
}

func TestGoalProgress(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		target  float64
		want    Percent
	}{
		{"half", 50, 100, 50},
		{"reached", 150, 100, 100},
		{"no target", 150, 0, 0},
		{"overdrawn", -10, 100, 0},
	}
	for _, tt := range tests {
		g := SavingsGoal{CurrentAmount: dec(tt.current), TargetAmount: dec(tt.target), Currency: "EUR"}
		if got := GoalProgress(g, Identity, "EUR"); !got.Equal(tt.want) {
			t.Errorf("%s: GoalProgress() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
