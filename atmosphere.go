package rocket

import "math"

// AtmProperties holds the local atmospheric properties at a given altitude.
type AtmProperties struct {
	Density      float64 // kg/m³
	Pressure     float64 // Pa
	Temperature  float64 // K
	SpeedOfSound float64 // m/s
}

// Atmosphere maps altitude to local atmospheric properties.
// Negative altitudes clamp to sea level; anything above the Karman line is
// treated as vacuum.
type Atmosphere interface {
	Density(altitude float64) float64
	Properties(altitude float64) AtmProperties
}

// ExponentialAtmosphere is the simple scale-height decay model
// ρ = ρ₀·exp(-h/H). Pressure and temperature follow an isothermal column,
// which is crude but self-consistent.
type ExponentialAtmosphere struct {
	Planet Planet
}

// Density implements the Atmosphere interface.
func (a ExponentialAtmosphere) Density(altitude float64) float64 {
	if altitude < 0 {
		altitude = 0
	}
	if altitude >= a.Planet.KarmanAlt {
		return 0
	}
	return a.Planet.SeaLevelDensity * math.Exp(-altitude/a.Planet.ScaleHeight)
}

// Properties implements the Atmosphere interface.
func (a ExponentialAtmosphere) Properties(altitude float64) AtmProperties {
	ρ := a.Density(altitude)
	if ρ == 0 {
		return AtmProperties{}
	}
	// Isothermal column at the temperature implied by the scale height.
	T := StdGravity * a.Planet.ScaleHeight / GasConstant
	return AtmProperties{
		Density:      ρ,
		Pressure:     ρ * GasConstant * T,
		Temperature:  T,
		SpeedOfSound: math.Sqrt(HeatRatio * GasConstant * T),
	}
}

// atmLayer is one band of the layered atmosphere table.
type atmLayer struct {
	baseAlt  float64 // m
	baseTemp float64 // K
	basePres float64 // Pa
	lapse    float64 // K/m
}

// stdLayers is the US Standard Atmosphere 1976 table up to the mesopause.
var stdLayers = []atmLayer{
	{0, 288.15, 101325.0, -0.0065},
	{11000, 216.65, 22632.1, 0},
	{20000, 216.65, 5474.89, 0.001},
	{32000, 228.65, 868.019, 0.0028},
	{47000, 270.65, 110.906, 0},
	{51000, 270.65, 66.9389, -0.0028},
	{71000, 214.65, 3.95642, -0.002},
	{84852, 186.946, 0.3734, 0},
}

// LayeredAtmosphere integrates the barometric formula through a fixed table
// of lapse-rate layers (isothermal form when the lapse rate is zero,
// polytropic otherwise) and derives density via the ideal gas law.
type LayeredAtmosphere struct {
	planet Planet
	layers []atmLayer
}

// NewLayeredAtmosphere returns the layered model for the given planet.
// Only Earth has a layer table; other planets fall back to scaling the
// standard table by their sea-level density, which is enough for
// illustrative runs with alternate planetary parameters.
func NewLayeredAtmosphere(p Planet) LayeredAtmosphere {
	layers := stdLayers
	if !p.Equals(Earth) && Earth.SeaLevelDensity > 0 {
		scale := p.SeaLevelDensity / Earth.SeaLevelDensity
		layers = make([]atmLayer, len(stdLayers))
		copy(layers, stdLayers)
		for i := range layers {
			layers[i].basePres *= scale
		}
	}
	return LayeredAtmosphere{planet: p, layers: layers}
}

// Density implements the Atmosphere interface.
func (a LayeredAtmosphere) Density(altitude float64) float64 {
	return a.Properties(altitude).Density
}

// Properties implements the Atmosphere interface.
func (a LayeredAtmosphere) Properties(altitude float64) AtmProperties {
	if altitude < 0 {
		altitude = 0
	}
	if altitude >= a.planet.KarmanAlt {
		return AtmProperties{}
	}
	layer := a.layers[0]
	for _, l := range a.layers {
		if l.baseAlt > altitude {
			break
		}
		layer = l
	}
	Δh := altitude - layer.baseAlt
	var T, P float64
	if nearZero(layer.lapse) {
		T = layer.baseTemp
		P = layer.basePres * math.Exp(-StdGravity*Δh/(GasConstant*T))
	} else {
		T = layer.baseTemp + layer.lapse*Δh
		P = layer.basePres * math.Pow(T/layer.baseTemp, -StdGravity/(GasConstant*layer.lapse))
	}
	ρ := P / (GasConstant * T)
	return AtmProperties{
		Density:      ρ,
		Pressure:     P,
		Temperature:  T,
		SpeedOfSound: math.Sqrt(HeatRatio * GasConstant * T),
	}
}
