// Package catalog provides types and a client for the le-systeme-solaire
// public body catalog.
package catalog

// BodyType values the synthesizer distinguishes. The API emits free-form
// strings; anything outside these two falls back to the default family.
const (
	TypeGasGiant = "Gas Giant"
	TypeRocky    = "Rocky"
)

// AroundPlanet identifies the host planet of a moon. The API uses short
// French keys (e.g. "terre", "mars") that index the reference temperature
// table.
type AroundPlanet struct {
	Planet string `json:"planet"`
}

// Body is a single catalog record. MeanRadius is a unitless scale factor,
// AvgTemp is Kelvin, Density is g/cm3, AxialTilt is degrees. Aphelion,
// Eccentricity and the discovery fields are carried for display only and
// never feed the synthesizer.
type Body struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	EnglishName   string        `json:"englishName"`
	AltName       string        `json:"alternativeName"`
	BodyType      string        `json:"bodyType"`
	MeanRadius    float64       `json:"meanRadius"`
	AvgTemp       float64       `json:"avgTemp"`
	Density       float64       `json:"density"`
	AxialTilt     float64       `json:"axialTilt"`
	Aphelion      float64       `json:"aphelion"`
	Eccentricity  float64       `json:"eccentricity"`
	DiscoveredBy  string        `json:"discoveredBy"`
	DiscoveryDate string        `json:"discoveryDate"`
	AroundPlanet  *AroundPlanet `json:"aroundPlanet"`
}

// DisplayName prefers the English name when the catalog provides one.
func (b Body) DisplayName() string {
	if b.EnglishName != "" {
		return b.EnglishName
	}
	return b.Name
}

// IsDense reports whether the body triggers tint darkening.
func (b Body) IsDense() bool {
	return b.Density > 5
}

// HasIceCaps reports whether the body's tilt triggers the polar ice overlay.
func (b Body) HasIceCaps() bool {
	return b.AxialTilt > 20
}

// bodiesResponse is the catalog API envelope.
type bodiesResponse struct {
	Bodies []Body `json:"bodies"`
}
