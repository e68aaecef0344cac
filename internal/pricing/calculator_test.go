package pricing

import "testing"

func TestCalculateBaseOnly(t *testing.T) {
	catalog := DefaultCatalog()
	for size, base := range catalog[CategorySize] {
		t.Run(size, func(t *testing.T) {
			b := Calculate(Selections{Size: size})
			if b.BasePriceCents != base {
				t.Errorf("base = %d, want %d", b.BasePriceCents, base)
			}
			if b.PorchPriceCents != 0 || b.EquipmentPriceCents != 0 || b.CustomizationPriceCents != 0 {
				t.Errorf("non-base components not zero: %+v", b)
			}
			if b.TaxCents != 0 {
				t.Errorf("tax = %d, want 0", b.TaxCents)
			}
			if b.TotalCents != base {
				t.Errorf("total = %d, want %d", b.TotalCents, base)
			}
			if want := MonthlyPaymentCents(base); b.MonthlyPaymentCents != want {
				t.Errorf("monthly = %d, want %d", b.MonthlyPaymentCents, want)
			}
		})
	}
}

func TestCalculateUnknownSelectionsPriceZero(t *testing.T) {
	b := Calculate(Selections{
		Size:           "9x99",
		Porch:          "12ft",
		RangeHood:      "none",
		Griddle:        "",
		Refrigeration:  []string{"walk-in"},
		ExteriorColor:  "chartreuse",
		InteriorFinish: "none",
	})
	if b.TotalCents != 0 {
		t.Errorf("total = %d, want 0 for unmatched selections", b.TotalCents)
	}
	if b.MonthlyPaymentCents != 0 {
		t.Errorf("monthly = %d, want 0", b.MonthlyPaymentCents)
	}
}

func TestCalculateEquipmentSum(t *testing.T) {
	b := Calculate(Selections{
		Size:            "7x12",
		RangeHood:       "6ft",
		FireSuppression: "yes",
		Griddle:         "24in",
		Refrigeration:   []string{"reach-in", "reach-in"},
	})
	// 320000 + 380000 + 115000 + 2*160000; duplicates double-count.
	if want := int64(1135000); b.EquipmentPriceCents != want {
		t.Errorf("equipment = %d, want %d", b.EquipmentPriceCents, want)
	}
}

func TestCalculateRefrigerationOrderIndependent(t *testing.T) {
	ab := Calculate(Selections{Refrigeration: []string{"reach-in", "freezer"}})
	ba := Calculate(Selections{Refrigeration: []string{"freezer", "reach-in"}})
	if ab.EquipmentPriceCents != ba.EquipmentPriceCents {
		t.Errorf("order dependent: %d vs %d", ab.EquipmentPriceCents, ba.EquipmentPriceCents)
	}
}

func TestCalculateCustomization(t *testing.T) {
	b := Calculate(Selections{ExteriorColor: "matte-black", InteriorFinish: "stainless"})
	if want := int64(120000 + 240000); b.CustomizationPriceCents != want {
		t.Errorf("customization = %d, want %d", b.CustomizationPriceCents, want)
	}
}

func TestMonthlyPaymentCents(t *testing.T) {
	tests := []struct {
		name       string
		totalCents int64
		want       int64
	}{
		{"zero total", 0, 0},
		{"one thousand dollars", 100000, 2000}, // $19.80 rounds to $20
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MonthlyPaymentCents(tt.totalCents); got != tt.want {
				t.Errorf("MonthlyPaymentCents(%d) = %d, want %d", tt.totalCents, got, tt.want)
			}
		})
	}
}

func TestMonthlyPaymentMonotonic(t *testing.T) {
	totals := []int64{0, 50000, 100000, 2590000, 2590100, 10000000}
	prev := int64(-1)
	for _, total := range totals {
		got := MonthlyPaymentCents(total)
		if got < prev {
			t.Errorf("payment decreased: total %d -> %d, previous %d", total, got, prev)
		}
		prev = got
	}
}
