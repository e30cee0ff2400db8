package location

// defaultAliases is the hand-curated alias set for the cities the product
// serves. Loaded once at startup; do not mutate at runtime.
var defaultAliases = []Alias{
	{Canonical: "Bangalore", Variants: []string{"Bengaluru", "Banglore", "Bangaluru", "BLR"}},
	{Canonical: "Mumbai", Variants: []string{"Bombay", "Navi Mumbai", "BOM"}},
	{Canonical: "Delhi", Variants: []string{"New Delhi", "Delhi NCR", "NCR"}},
	{Canonical: "Hyderabad", Variants: []string{"Hyderbad", "HYD", "Secunderabad"}},
	{Canonical: "Chennai", Variants: []string{"Madras", "MAA"}},
	{Canonical: "Pune", Variants: []string{"Poona", "PNQ"}},
	{Canonical: "Gurgaon", Variants: []string{"Gurugram", "GGN"}},
	{Canonical: "Noida", Variants: []string{"Greater Noida"}},
	{Canonical: "Kolkata", Variants: []string{"Calcutta", "CCU"}},
	{Canonical: "Ahmedabad", Variants: []string{"Amdavad", "AMD"}},
	{Canonical: "Jaipur", Variants: []string{"JAI"}},
	{Canonical: "Kochi", Variants: []string{"Cochin", "COK"}},
	{Canonical: "Remote", Variants: []string{"Work From Home", "WFH", "Anywhere", "Fully Remote"}},
}

// popularLocations is the curated list shown for an empty location query.
// It is a product choice, not derived from the alias table.
var popularLocations = []string{
	"Bangalore",
	"Mumbai",
	"Delhi",
	"Hyderabad",
	"Pune",
	"Chennai",
	"Remote",
}
