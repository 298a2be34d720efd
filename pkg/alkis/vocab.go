package alkis

// nutzartToBezeich maps the nutzart labels of the Brandenburg "ALKIS
// vereinfacht" dataset onto the Berlin-style AX_* identifiers the map
// application renders. Labels change only with data-model releases, so the
// table is compiled in.
var nutzartToBezeich = map[string]string{
	// Wohnen
	"Wohnbaufläche": "AX_Wohnbauflaeche",
	// Industrie/Gewerbe
	"Industrie- und Gewerbefläche": "AX_IndustrieUndGewerbeflaeche",
	// Gemischte Nutzung
	"Fläche gemischter Nutzung": "AX_FlaecheGemischterNutzung",
	// Besondere funktionale Prägung
	"Fläche besonderer funktionaler Prägung": "AX_FlaecheBesondererFunktionalerPraegung",
	// Sport/Freizeit
	"Sport-, Freizeit- und Erholungsfläche": "AX_SportFreizeitUndErholungsflaeche",
	// Verkehr
	"Straßenverkehr": "AX_Strassenverkehr",
	"Weg":            "AX_Weg",
	"Platz":          "AX_Platz",
	"Bahnverkehr":    "AX_Bahnverkehr",
	"Flugverkehr":    "AX_Flugverkehr",
	"Schiffsverkehr": "AX_Schiffsverkehr",
	// Natur
	"Wald":           "AX_Wald",
	"Gehölz":         "AX_Gehoelz",
	"Heide":          "AX_Heide",
	"Moor":           "AX_Moor",
	"Sumpf":          "AX_Sumpf",
	"Landwirtschaft": "AX_Landwirtschaft",
	"Unland/Vegetationslose Fläche": "AX_UnlandVegetationsloseFlaeche",
	"Friedhof":                      "AX_Friedhof",
	// Wasser
	"Fließgewässer":      "AX_Fliessgewaesser",
	"Stehendes Gewässer": "AX_StehendesGewaesser",
	"Hafenbecken":        "AX_Hafenbecken",
	// Sonstiges
	"Tagebau, Grube, Steinbruch": "AX_TagebauGrubeSteinbruch",
	"Halde":                      "AX_Halde",
}

// MapNutzart returns the bezeich identifier for a nutzart label. Matching
// is exact and case-sensitive; ok is false for any label outside the
// vocabulary, which callers treat as "drop this feature".
func MapNutzart(nutzart string) (string, bool) {
	bezeich, ok := nutzartToBezeich[nutzart]
	return bezeich, ok
}
