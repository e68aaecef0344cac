package pricing

// Category identifies one configurable aspect of a trailer build.
type Category string

const (
	CategorySize            Category = "trailerSize"
	CategoryPorch           Category = "porch"
	CategoryRangeHood       Category = "rangeHood"
	CategoryFireSuppression Category = "fireSuppressionSystem"
	CategoryGriddle         Category = "griddle"
	CategoryCharbroiler     Category = "charbroiler"
	CategoryDeepFryer       Category = "deepFryer"
	CategoryRange           Category = "range"
	CategorySteamWell       Category = "steamWell"
	CategoryWarmingCabinet  Category = "warmingCabinet"
	CategoryRefrigeration   Category = "refrigeration"
	CategoryExteriorColor   Category = "exteriorColor"
	CategoryInteriorFinish  Category = "interiorFinish"
)

// Table maps an option value to its price in cents. Values not present
// contribute nothing.
type Table map[string]int64

// Catalog maps each option category to its price table.
type Catalog map[Category]Table

// equipmentCategories are the single-select equipment tables summed into the
// equipment component. Refrigeration is multi-select and handled separately.
var equipmentCategories = []Category{
	CategoryRangeHood,
	CategoryFireSuppression,
	CategoryGriddle,
	CategoryCharbroiler,
	CategoryDeepFryer,
	CategoryRange,
	CategorySteamWell,
	CategoryWarmingCabinet,
}

// DefaultCatalog returns the standard build sheet. Prices are list prices in
// cents.
func DefaultCatalog() Catalog {
	return Catalog{
		CategorySize: {
			"7x12": 2590000,
			"7x14": 2790000,
			"7x16": 2990000,
			"8x16": 3290000,
			"8x20": 3690000,
			"8x24": 4190000,
			"8x28": 4690000,
		},
		CategoryPorch: {
			"4ft": 350000,
			"6ft": 480000,
			"8ft": 590000,
		},
		CategoryRangeHood: {
			"6ft":  320000,
			"8ft":  390000,
			"10ft": 460000,
		},
		CategoryFireSuppression: {
			"yes": 380000,
		},
		CategoryGriddle: {
			"24in": 115000,
			"36in": 145000,
			"48in": 185000,
		},
		CategoryCharbroiler: {
			"24in": 125000,
			"36in": 165000,
		},
		CategoryDeepFryer: {
			"single": 95000,
			"double": 150000,
			"triple": 210000,
		},
		CategoryRange: {
			"4-burner": 140000,
			"6-burner": 190000,
		},
		CategorySteamWell: {
			"3-well": 110000,
			"5-well": 150000,
		},
		CategoryWarmingCabinet: {
			"half": 130000,
			"full": 180000,
		},
		CategoryRefrigeration: {
			"reach-in":     160000,
			"undercounter": 120000,
			"prep-table":   220000,
			"freezer":      190000,
			"display":      240000,
		},
		CategoryExteriorColor: {
			"standard-white": 0,
			"matte-black":    120000,
			"two-tone":       180000,
			"custom-wrap":    350000,
		},
		CategoryInteriorFinish: {
			"standard":  0,
			"stainless": 240000,
			"premium":   390000,
		},
	}
}

// Upgrade is a paid add-on attachable to a cart line item.
type Upgrade struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
}

// DefaultUpgrades lists the add-ons offered on stock trucks in the shop.
func DefaultUpgrades() []Upgrade {
	return []Upgrade{
		{ID: "generator", Name: "Onboard Generator", PriceCents: 450000},
		{ID: "solar", Name: "Solar Package", PriceCents: 320000},
		{ID: "pos-window", Name: "Second Service Window", PriceCents: 200000},
		{ID: "awning", Name: "Retractable Awning", PriceCents: 140000},
		{ID: "sound", Name: "Exterior Sound System", PriceCents: 110000},
		{ID: "wrap", Name: "Full Vehicle Wrap", PriceCents: 350000},
	}
}

// UpgradePrice resolves an upgrade id against the default upgrade list.
func UpgradePrice(id string) (int64, bool) {
	for _, u := range DefaultUpgrades() {
		if u.ID == id {
			return u.PriceCents, true
		}
	}
	return 0, false
}
