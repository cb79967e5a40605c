package merge

import "math"

// Physical constants (SI). Catalog radii and distances arrive in solar
// radii, Earth radii and au; orbital periods in days.
const (
	gravConst  = 6.6743e-11      // m3 kg-1 s-2
	au         = 1.495978707e11  // m
	solarMass  = 1.9885e30       // kg
	solarRad   = 6.957e8         // m
	earthRad   = 6.3781e6        // m
	secondsDay = 86400.0
)

var twoPi = 2.0 * math.Pi
