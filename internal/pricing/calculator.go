package pricing

import "math"

// Financing terms used for the monthly payment estimate shown in the
// configurator. Final terms come from the lender at quoting time.
const (
	loanTermMonths = 60
	annualRate     = 0.07
)

// Selections holds the priced option choices of a trailer configuration.
// Empty or unknown values price at zero; every field is optional.
type Selections struct {
	Size            string   `json:"trailerSize"`
	Porch           string   `json:"porch"`
	RangeHood       string   `json:"rangeHood"`
	FireSuppression string   `json:"fireSuppressionSystem"`
	Griddle         string   `json:"griddle"`
	Charbroiler     string   `json:"charbroiler"`
	DeepFryer       string   `json:"deepFryer"`
	Range           string   `json:"range"`
	SteamWell       string   `json:"steamWell"`
	WarmingCabinet  string   `json:"warmingCabinet"`
	Refrigeration   []string `json:"refrigeration"`
	ExteriorColor   string   `json:"exteriorColor"`
	InteriorFinish  string   `json:"interiorFinish"`
}

func (s Selections) value(cat Category) string {
	switch cat {
	case CategorySize:
		return s.Size
	case CategoryPorch:
		return s.Porch
	case CategoryRangeHood:
		return s.RangeHood
	case CategoryFireSuppression:
		return s.FireSuppression
	case CategoryGriddle:
		return s.Griddle
	case CategoryCharbroiler:
		return s.Charbroiler
	case CategoryDeepFryer:
		return s.DeepFryer
	case CategoryRange:
		return s.Range
	case CategorySteamWell:
		return s.SteamWell
	case CategoryWarmingCabinet:
		return s.WarmingCabinet
	case CategoryExteriorColor:
		return s.ExteriorColor
	case CategoryInteriorFinish:
		return s.InteriorFinish
	}
	return ""
}

// Breakdown is a derived snapshot of the configured price. All amounts are in
// cents; MonthlyPaymentCents is rounded to a whole dollar.
type Breakdown struct {
	BasePriceCents          int64 `json:"basePriceCents"`
	PorchPriceCents         int64 `json:"porchPriceCents"`
	EquipmentPriceCents     int64 `json:"equipmentPriceCents"`
	CustomizationPriceCents int64 `json:"customizationPriceCents"`
	SubtotalCents           int64 `json:"subtotalCents"`
	TaxCents                int64 `json:"taxCents"`
	TotalCents              int64 `json:"totalCents"`
	MonthlyPaymentCents     int64 `json:"monthlyPaymentCents"`
}

func (c Catalog) price(cat Category, value string) int64 {
	return c[cat][value]
}

// Calculate prices a configuration against the catalog. Pure: same input,
// same breakdown. Duplicate refrigeration entries are each counted.
func (c Catalog) Calculate(sel Selections) Breakdown {
	var b Breakdown

	b.BasePriceCents = c.price(CategorySize, sel.Size)
	b.PorchPriceCents = c.price(CategoryPorch, sel.Porch)

	for _, cat := range equipmentCategories {
		b.EquipmentPriceCents += c.price(cat, sel.value(cat))
	}
	for _, r := range sel.Refrigeration {
		b.EquipmentPriceCents += c.price(CategoryRefrigeration, r)
	}

	b.CustomizationPriceCents = c.price(CategoryExteriorColor, sel.ExteriorColor) +
		c.price(CategoryInteriorFinish, sel.InteriorFinish)

	b.SubtotalCents = b.BasePriceCents + b.PorchPriceCents +
		b.EquipmentPriceCents + b.CustomizationPriceCents

	// Tax is resolved during the quoting step, not here.
	b.TaxCents = 0
	b.TotalCents = b.SubtotalCents + b.TaxCents
	b.MonthlyPaymentCents = MonthlyPaymentCents(b.TotalCents)

	return b
}

// Calculate prices a configuration against the default catalog.
func Calculate(sel Selections) Breakdown {
	return DefaultCatalog().Calculate(sel)
}

// MonthlyPaymentCents returns the annuity payment for the financed total at
// 7% APR over 60 months, rounded to the nearest whole dollar. A zero total
// yields a zero payment.
func MonthlyPaymentCents(totalCents int64) int64 {
	if totalCents == 0 {
		return 0
	}
	monthlyRate := annualRate / 12
	pow := math.Pow(1+monthlyRate, loanTermMonths)
	payment := float64(totalCents) / 100 * monthlyRate * pow / (pow - 1)
	return int64(math.Round(payment)) * 100
}

// Dollars converts a cents amount for the JSON presentation boundary.
func Dollars(cents int64) float64 {
	return float64(cents) / 100
}

// Cents converts a dollar amount received at the JSON boundary, rounding to
// the nearest cent.
func Cents(dollars float64) int64 {
	return int64(math.Round(dollars * 100))
}
