package catalog

// RefTemp is a reference mean temperature in Kelvin. Known is false when the
// catalog has no measurement for the body; callers must not do arithmetic on
// Kelvin in that case.
type RefTemp struct {
	Kelvin float64
	Known  bool
}

// RefTemps maps host-planet keys (the API's French identifiers) to reference
// mean temperatures. Moons inherit their host's temperature through this
// table. Immutable after init.
var RefTemps = map[string]RefTemp{
	"soleil":   {Kelvin: 5778, Known: true},
	"mercure":  {Kelvin: 440, Known: true},
	"venus":    {Kelvin: 737, Known: true},
	"terre":    {Kelvin: 288, Known: true},
	"lune":     {Kelvin: 250, Known: true},
	"mars":     {Kelvin: 210, Known: true},
	"ceres":    {Kelvin: 167, Known: true},
	"jupiter":  {Kelvin: 165, Known: true},
	"saturne":  {Kelvin: 134, Known: true},
	"uranus":   {Kelvin: 76, Known: true},
	"neptune":  {Kelvin: 72, Known: true},
	"pluton":   {Kelvin: 44, Known: true},
	"eris":     {Kelvin: 42, Known: true},
	"makemake": {Kelvin: 40, Known: true},
	"quaoar":   {Kelvin: 41, Known: true},
	"sedna":    {Kelvin: 12, Known: true},
	"haumea":   {Known: false}, // no published mean temperature
}

// LookupRefTemp resolves a host-planet key. Unknown keys behave exactly like
// a known key with no data.
func LookupRefTemp(key string) RefTemp {
	if t, ok := RefTemps[key]; ok {
		return t
	}
	return RefTemp{}
}

// EffectiveTemp returns the temperature the synthesizer should tint with.
// A moon whose host appears in RefTemps uses the host's value even when the
// host entry has no data (ok=false then, and the tint clamps to the cold end
// of the scale). Everything else uses the body's own AvgTemp.
func EffectiveTemp(b Body) (kelvin float64, ok bool) {
	if b.AroundPlanet != nil && b.AroundPlanet.Planet != "" {
		if ref, ok := RefTemps[b.AroundPlanet.Planet]; ok {
			return ref.Kelvin, ref.Known
		}
	}
	if b.AvgTemp == 0 {
		return 0, false
	}
	return b.AvgTemp, true
}
