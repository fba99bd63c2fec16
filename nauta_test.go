package finanzas

import (
	"math"
	"reflect"
	"testing"
)

func boolPtr(b bool) *bool { return &b }

// baseline is the reference snapshot: 700 EUR budgeted out of a 3500 EUR income.
func baseline() Data {
	return Data{
		Categories: []Category{
			{Name: "Rent", Budget: dec(500), Currency: "EUR"},
			{Name: "Food", Budget: dec(200), Currency: "EUR"},
		},
		Ynab: YnabConfig{MonthlyIncome: dec(3500), Currency: "EUR"},
	}
}

func TestCalculateNautaIndex_Baseline(t *testing.T) {
	idx := CalculateNautaIndex(baseline(), Identity, "EUR")

	b := idx.Breakdown
	if got, want := b.SavingsRate.Score, 20.0; got != want {
		t.Errorf("savings score = %v, want %v", got, want)
	}
	if got, want := b.EmergencyFund.Score, 0.0; got != want {
		t.Errorf("emergency score = %v, want %v", got, want)
	}
	if got, want := b.EmergencyFund.Status, StatusNoFund; got != want {
		t.Errorf("emergency status = %q, want %q", got, want)
	}
	if got, want := b.ToxicDebts.Score, 10.0; got != want {
		t.Errorf("toxic debts score = %v, want %v", got, want)
	}
	if got, want := b.Insurance.Score, 0.0; got != want {
		t.Errorf("insurance score = %v, want %v", got, want)
	}
	if got, want := b.Retirement.Score, 0.0; got != want {
		t.Errorf("retirement score = %v, want %v", got, want)
	}
	if got, want := idx.Total, 30.0; got != want {
		t.Errorf("total = %v, want %v", got, want)
	}
	if got, want := idx.Score, 30.0/70*100; math.Abs(got-want) > 1e-9 {
		t.Errorf("score = %v, want %v", got, want)
	}
	if got, want := idx.Status, StatusRegular; got != want {
		t.Errorf("status = %q, want %q", got, want)
	}
}

func TestCalculateNautaIndex_EmergencyFundSixMonths(t *testing.T) {
	data := baseline()
	data.SavingsGoals = []SavingsGoal{
		{Name: "Fondo de Emergencia", CurrentAmount: dec(4200), Currency: "EUR"},
	}
	c := CalculateNautaIndex(data, Identity, "EUR").Breakdown.EmergencyFund
	if got, want := c.MonthsCovered, 6.0; got != want {
		t.Errorf("months covered = %v, want %v", got, want)
	}
	if got, want := c.Score, 20.0; got != want {
		t.Errorf("score = %v, want %v", got, want)
	}
	if got, want := c.Status, StatusExcellent; got != want {
		t.Errorf("status = %q, want %q", got, want)
	}
}

func TestEmergencyFundScore(t *testing.T) {
	tests := []struct {
		name       string
		amount     float64
		wantScore  float64
		wantStatus string
	}{
		{"capped", 70000, 20, StatusExcellent},
		{"three months", 2100, 10, StatusGood},
		{"one month", 700, 20.0 / 6, StatusRegular},
		{"half a month", 350, 10.0 / 6, StatusInsufficient},
		{"empty", 0, 0, StatusInsufficient},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := baseline()
			data.SavingsGoals = []SavingsGoal{{Name: "Rainy days", IsEmergencyFund: true, CurrentAmount: dec(tt.amount), Currency: "EUR"}}
			c := CalculateNautaIndex(data, Identity, "EUR").Breakdown.EmergencyFund
			if math.Abs(c.Score-tt.wantScore) > 1e-9 {
				t.Errorf("score = %v, want %v", c.Score, tt.wantScore)
			}
			if c.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", c.Status, tt.wantStatus)
			}
		})
	}
}

func TestEmergencyFundScore_NoExpenses(t *testing.T) {
	data := Data{SavingsGoals: []SavingsGoal{{Name: "Emergency", CurrentAmount: dec(1000), Currency: "EUR"}}}
	c := CalculateNautaIndex(data, Identity, "EUR").Breakdown.EmergencyFund
	if c.Score != 0 {
		t.Errorf("score = %v, want 0", c.Score)
	}
	if got, want := c.Status, StatusNoExpenses; got != want {
		t.Errorf("status = %q, want %q", got, want)
	}
	if got, want := c.Amount, EUR(1000); !got.Equal(want) {
		t.Errorf("amount = %v, want %v", got, want)
	}
}

func TestSavingsRateScore(t *testing.T) {
	tests := []struct {
		name       string
		income     float64
		expenses   float64
		wantScore  float64
		wantStatus string
	}{
		{"twenty percent", 1000, 800, 20, StatusExcellent},
		{"above target", 1000, 100, 20, StatusExcellent},
		{"ten percent", 1000, 900, 10, StatusGood},
		{"five percent", 1000, 950, 5, StatusRegular},
		{"negative savings", 1000, 1500, 0, StatusInsufficient},
		{"no income", 0, 500, 0, StatusNoIncome},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := savingsRateScore(EUR(tt.income), EUR(tt.expenses))
			if math.Abs(c.Score-tt.wantScore) > 1e-9 {
				t.Errorf("score = %v, want %v", c.Score, tt.wantScore)
			}
			if c.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", c.Status, tt.wantStatus)
			}
		})
	}
}

func TestToxicDebtsScore(t *testing.T) {
	card := Debt{Name: "Visa", Type: "Tarjeta de Crédito", CurrentBalance: dec(900), Currency: "EUR"}
	mortgage := Debt{Name: "House", Type: "Hipotecario", CurrentBalance: dec(90000), Currency: "EUR"}
	flagged := Debt{Name: "Friend", Type: "Otro", IsToxic: boolPtr(true), Currency: "EUR"}
	cleared := Debt{Name: "Car", Type: "Préstamo Automotriz", IsToxic: boolPtr(false), Currency: "EUR"}

	tests := []struct {
		name       string
		debts      []Debt
		wantScore  float64
		wantCount  int
		wantStatus string
	}{
		{"none", nil, 10, 0, StatusExcellent},
		{"safe debts only", []Debt{mortgage, cleared}, 10, 0, StatusExcellent},
		{"two toxic", []Debt{card, mortgage, flagged}, 5, 2, StatusImprovable},
		{"three toxic", []Debt{card, card, card}, 2.5, 3, StatusCritical},
		{"four toxic floors at zero", []Debt{card, card, card, flagged}, 0, 4, StatusCritical},
		{"many toxic", []Debt{card, card, card, card, card, card}, 0, 6, StatusCritical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := toxicDebtsScore(tt.debts)
			if c.Score != tt.wantScore {
				t.Errorf("score = %v, want %v", c.Score, tt.wantScore)
			}
			if c.Count != tt.wantCount {
				t.Errorf("count = %v, want %v", c.Count, tt.wantCount)
			}
			if c.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", c.Status, tt.wantStatus)
			}
		})
	}
}

func TestInsuranceScore(t *testing.T) {
	tests := []struct {
		name       string
		categories []Category
		config     *InsuranceConfig
		wantScore  float64
		wantStatus string
	}{
		{"nothing", []Category{{Name: "Rent"}}, nil, 0, StatusNoProtection},
		{"health by name", []Category{{Name: "Seguro Médico"}}, nil, 4, StatusBasicProtected},
		{"keyword without seguro", []Category{{Name: "Salud dental"}}, nil, 0, StatusNoProtection},
		{"all by name", []Category{{Name: "Seguro de Salud"}, {Name: "Seguro de Vida"}, {Name: "Seguro Catastrófico"}}, nil, 10, StatusGoodProtection},
		{"life from config", nil, &InsuranceConfig{HasLifeInsurance: true}, 3, StatusNoProtection},
		{"config and names combine", []Category{{Name: "Seguro GES"}}, &InsuranceConfig{HasHealthInsurance: true}, 7, StatusGoodProtection},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := insuranceScore(tt.categories, tt.config)
			if c.Score != tt.wantScore {
				t.Errorf("score = %v, want %v", c.Score, tt.wantScore)
			}
			if c.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", c.Status, tt.wantStatus)
			}
		})
	}
}

func TestRetirementScore(t *testing.T) {
	apvPlatform := &Platform{Name: "Fintual", Type: "APV"}
	tests := []struct {
		name        string
		categories  []Category
		investments Investments
		wantScore   float64
		wantStatus  string
	}{
		{"none", []Category{{Name: "Rent"}}, nil, 0, StatusNoneDetected},
		{"category", []Category{{Name: "Ahorro Previsional"}}, nil, 5, StatusGood},
		{"investment", nil, Investments{apvPlatform}, 5, StatusGood},
		{"investment by name", nil, Investments{&Asset{Name: "Fondo APV A", Quantity: dec(1)}}, 5, StatusGood},
		{"both", []Category{{Name: "AFP"}}, Investments{apvPlatform}, 10, StatusExcellent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := retirementScore(tt.categories, tt.investments)
			if c.Score != tt.wantScore {
				t.Errorf("score = %v, want %v", c.Score, tt.wantScore)
			}
			if c.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", c.Status, tt.wantStatus)
			}
		})
	}
}

func TestCalculateNautaIndex_Bounds(t *testing.T) {
	snapshots := map[string]Data{
		"empty": {},
		"baseline": baseline(),
		"everything": {
			Categories: []Category{
				{Name: "Rent", Budget: dec(500), Currency: "EUR"},
				{Name: "Seguro de Salud", Budget: dec(50), Currency: "EUR"},
				{Name: "Seguro de Vida", Budget: dec(20), Currency: "EUR"},
				{Name: "Seguro Catastrófico", Budget: dec(10), Currency: "EUR"},
				{Name: "APV", Budget: dec(100), Currency: "EUR"},
			},
			SavingsGoals: []SavingsGoal{{Name: "Emergency", CurrentAmount: dec(100000), Currency: "EUR"}},
			Investments:  Investments{&Platform{Name: "APV", Type: "apv", Balance: dec(1000), Currency: "EUR"}},
			Ynab:         YnabConfig{MonthlyIncome: dec(10000), Currency: "EUR"},
		},
		"broke": {
			Categories: []Category{{Name: "Rent", Budget: dec(5000), Currency: "USD"}},
			Debts: []Debt{
				{Type: "Tarjeta de Crédito"}, {Type: "Préstamo Personal"},
				{Type: "Préstamo de Consumo"}, {Type: "Préstamo Automotriz"}, {Type: "Tarjeta de Crédito"},
			},
			Ynab: YnabConfig{MonthlyIncome: dec(100), Currency: "USD"},
		},
	}
	for name, data := range snapshots {
		t.Run(name, func(t *testing.T) {
			idx := CalculateNautaIndex(data, usdToEur, "EUR")
			if idx.Score < 0 || idx.Score > 100 {
				t.Errorf("score = %v, want within [0, 100]", idx.Score)
			}
			for _, c := range idx.Breakdown.Components() {
				if c.Score < 0 || c.Score > c.Max {
					t.Errorf("%s score = %v, want within [0, %v]", c.Name, c.Score, c.Max)
				}
			}
			again := CalculateNautaIndex(data, usdToEur, "EUR")
			if !reflect.DeepEqual(idx, again) {
				t.Errorf("index is not deterministic: %+v != %+v", idx, again)
			}
		})
	}
}

func TestCalculateNautaIndex_Everything(t *testing.T) {
	data := Data{
		Categories: []Category{
			{Name: "Rent", Budget: dec(500), Currency: "EUR"},
			{Name: "Seguro de Salud", Budget: dec(50), Currency: "EUR"},
			{Name: "Seguro de Vida", Budget: dec(20), Currency: "EUR"},
			{Name: "Seguro Catastrófico", Budget: dec(10), Currency: "EUR"},
			{Name: "APV", Budget: dec(20), Currency: "EUR"},
		},
		SavingsGoals: []SavingsGoal{{Name: "Emergency", CurrentAmount: dec(100000), Currency: "EUR"}},
		Investments:  Investments{&Platform{Name: "APV", Type: "apv", Balance: dec(1000), Currency: "EUR"}},
		Ynab:         YnabConfig{MonthlyIncome: dec(10000), Currency: "EUR"},
	}
	idx := CalculateNautaIndex(data, Identity, "EUR")
	if got, want := idx.Score, 100.0; got != want {
		t.Errorf("score = %v, want %v", got, want)
	}
	if got, want := idx.Status, StatusExcellent; got != want {
		t.Errorf("status = %q, want %q", got, want)
	}
}

func TestOverallStatus(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, StatusExcellent},
		{80, StatusExcellent},
		{79.9, StatusGood},
		{60, StatusGood},
		{42.86, StatusRegular},
		{40, StatusRegular},
		{39.9, StatusCritical},
		{0, StatusCritical},
	}
	for _, tt := range tests {
		if got, _ := overallStatus(tt.score); got != tt.want {
			t.Errorf("overallStatus(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, limit, want float64
	}{
		{5, 10, 5},
		{15, 10, 10},
		{-1, 10, 0},
		{math.NaN(), 10, 0},
		{math.Inf(1), 10, 10},
	}
	for _, tt := range tests {
		if got := clamp(tt.v, tt.limit); got != tt.want {
			t.Errorf("clamp(%v, %v) = %v, want %v", tt.v, tt.limit, got, tt.want)
		}
	}
}
