package domain

import "testing"

func f64(v float64) *float64 { return &v }
func str(v string) *string   { return &v }

var testProduct = Product{
	Brand:      "Samsung",
	Name:       "Galaxy S24 Ultra",
	Price:      129999,
	Camera:     200,
	Battery:    5000,
	Charging:   45,
	RAM:        12,
	ScreenSize: 6.8,
	OS:         "Android",
	Features:   []string{"has 5g", "has nfc"},
}

func TestFilterSet_Matches(t *testing.T) {
	tests := []struct {
		name    string
		filters FilterSet
		want    bool
	}{
		{"empty filter matches everything", FilterSet{}, true},
		{"max price pass", FilterSet{MaxPrice: f64(150000)}, true},
		{"max price fail", FilterSet{MaxPrice: f64(100000)}, false},
		{"max price boundary inclusive", FilterSet{MaxPrice: f64(129999)}, true},
		{"min price pass", FilterSet{MinPrice: f64(100000)}, true},
		{"min price fail", FilterSet{MinPrice: f64(150000)}, false},
		{"brand substring case-insensitive", FilterSet{Brand: str("samsung")}, true},
		{"brand partial", FilterSet{Brand: str("sam")}, true},
		{"brand mismatch", FilterSet{Brand: str("apple")}, false},
		{"min camera pass", FilterSet{MinCamera: f64(108)}, true},
		{"min camera fail", FilterSet{MinCamera: f64(201)}, false},
		{"min battery pass", FilterSet{MinBattery: f64(5000)}, true},
		{"min charging fail", FilterSet{MinCharging: f64(65)}, false},
		{"os substring", FilterSet{OS: str("android")}, true},
		{"os mismatch", FilterSet{OS: str("ios")}, false},
		{"max screen pass", FilterSet{MaxScreenSize: f64(7)}, true},
		{"max screen fail", FilterSet{MaxScreenSize: f64(6.5)}, false},
		{
			"all constraints AND pass",
			FilterSet{MaxPrice: f64(150000), Brand: str("Samsung"), MinBattery: f64(4000)},
			true,
		},
		{
			"one failing constraint fails the set",
			FilterSet{MaxPrice: f64(150000), Brand: str("Samsung"), MinBattery: f64(6000)},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filters.Matches(testProduct); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterSet_IsEmpty(t *testing.T) {
	if !(FilterSet{}).IsEmpty() {
		t.Error("zero FilterSet should be empty")
	}
	if (FilterSet{OS: str("Android")}).IsEmpty() {
		t.Error("FilterSet with a constraint should not be empty")
	}
}

func TestParseIntent(t *testing.T) {
	tests := []struct {
		in   string
		want Intent
	}{
		{"recommendation", Recommendation},
		{"comparison", Comparison},
		{"explanation", Explanation},
		{"details", Details},
		{"unknown", Unknown},
		{"", Unknown},
		{"garbage", Unknown},
	}
	for _, tt := range tests {
		if got := ParseIntent(tt.in); got != tt.want {
			t.Errorf("ParseIntent(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDefaultIntentResult(t *testing.T) {
	ir := DefaultIntentResult()
	if ir.Intent != Recommendation {
		t.Errorf("default intent = %v, want %v", ir.Intent, Recommendation)
	}
	if ir.Confidence != 0.7 {
		t.Errorf("default confidence = %v, want 0.7", ir.Confidence)
	}
	if !ir.Filters.IsEmpty() {
		t.Error("default filters should be empty")
	}
}
