package impact

// Result is the sustainability impact attributed to distributing one item of a
// given category. Values are derived deterministically and never persisted on
// their own; the distribution ledger copies them at distribution time.
type Result struct {
	CO2SavedKg      float64 `json:"co2_saved_kg"`
	LandfillSavedKg float64 `json:"landfill_saved_kg"`
	Beneficiaries   int32   `json:"beneficiaries"`
}

// Per-category CO2 savings in kg for one reused garment.
var co2ByCategory = map[string]float64{
	"Jacket":  20.0,
	"Coat":    18.0,
	"Shoes":   12.0,
	"Jeans":   10.5,
	"Dress":   9.0,
	"Sweater": 8.0,
	"Hoodie":  6.5,
	"Skirt":   4.5,
	"Shirt":   4.0,
	"Shorts":  3.5,
	"T-shirt": 2.1,
	"Scarf":   1.5,
}

const (
	// defaultCO2SavedKg applies to any category not in the table.
	defaultCO2SavedKg = 3.0

	// landfillSavedKg is a flat per-item figure regardless of category.
	landfillSavedKg = 0.8

	// beneficiariesPerItem credits one beneficiary per distributed unit.
	beneficiariesPerItem = 1
)

// Of returns the impact for one distributed item of the given category.
// Unknown categories fall back to the default CO2 figure.
func Of(category string) Result {
	co2, ok := co2ByCategory[category]
	if !ok {
		co2 = defaultCO2SavedKg
	}
	return Result{
		CO2SavedKg:      co2,
		LandfillSavedKg: landfillSavedKg,
		Beneficiaries:   beneficiariesPerItem,
	}
}

// Categories returns the category names with a dedicated CO2 figure.
func Categories() []string {
	names := make([]string, 0, len(co2ByCategory))
	for name := range co2ByCategory {
		names = append(names, name)
	}
	return names
}
