// Package configurator holds the in-progress custom build across the
// five-step design flow and keeps it synchronized with local storage.
package configurator

import "github.com/trailercraft/storefront/internal/pricing"

// Configuration is the full wizard record: priced selections plus budget,
// financing and contact fields. Field names on the wire match the
// design-request submission payload.
type Configuration struct {
	pricing.Selections

	Budget        string `json:"budget"`
	NeedFinancing string `json:"needFinancing"`

	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phoneNumber"`
	Address        string `json:"address"`
	ZipCode        string `json:"zipcode"`
	PaymentMethod  string `json:"paymentMethods"`
	AdditionalInfo string `json:"additionalInfo"`
}

// Defaults returns a fresh configuration. Choice fields start unselected;
// optional equipment starts at the "none" sentinel.
func Defaults() Configuration {
	return Configuration{
		Selections: pricing.Selections{
			Griddle:        "none",
			Charbroiler:    "none",
			DeepFryer:      "none",
			Range:          "none",
			SteamWell:      "none",
			WarmingCabinet: "none",
			Refrigeration:  []string{},
		},
		NeedFinancing: "no",
	}
}

// requiredFields is the fixed list counted by Completion. A field counts only
// when set and not left at a "none"/"no" sentinel.
var requiredFields = []func(Configuration) string{
	func(c Configuration) string { return c.Size },
	func(c Configuration) string { return c.RangeHood },
	func(c Configuration) string { return c.FireSuppression },
	func(c Configuration) string { return c.ExteriorColor },
	func(c Configuration) string { return c.InteriorFinish },
	func(c Configuration) string { return c.Budget },
	func(c Configuration) string { return c.NeedFinancing },
	func(c Configuration) string { return c.FirstName },
	func(c Configuration) string { return c.LastName },
	func(c Configuration) string { return c.Email },
	func(c Configuration) string { return c.Phone },
	func(c Configuration) string { return c.Address },
	func(c Configuration) string { return c.ZipCode },
	func(c Configuration) string { return c.PaymentMethod },
}
