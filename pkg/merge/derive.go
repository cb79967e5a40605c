package merge

import "math"

// Complete solves the three physically-coupled parameter triples of an
// entry whenever exactly one member is missing and the other two are
// known. Each solve is a pure algebraic closure; with two or more
// members missing the triple stays unresolved, no partial inference.
func Complete(e Entry) Entry {
	e.Rplanet, e.Rstar, e.RatRor = solveRpRs(e.Rplanet, e.Rstar, e.RatRor)
	e.SMA, e.Rstar, e.RatDor = solveARs(e.SMA, e.Rstar, e.RatDor)
	e.Period, e.SMA = solvePeriodSMA(e.Period, e.SMA, e.Mstar)
	return e
}

// solvePeriodSMA closes the (orbital period, semi-major axis, stellar
// mass) triple via Kepler's third law. The stellar mass is never
// derived; a missing or zero mass leaves the pair untouched.
func solvePeriodSMA(period, sma, mstar *float64) (*float64, *float64) {
	if mstar == nil || *mstar == 0 {
		return period, sma
	}
	gm := gravConst * *mstar * solarMass
	if period == nil && sma != nil {
		a := *sma * au
		p := twoPi * math.Sqrt(a*a*a/gm) / secondsDay
		period = &p
	} else if sma == nil && period != nil {
		p := *period * secondsDay / twoPi
		a := math.Cbrt(p*p*gm) / au
		sma = &a
	}
	return period, sma
}

// solveRpRs closes the (planet radius, stellar radius, radius ratio)
// triple via the ratio definition.
func solveRpRs(rp, rs, ratror *float64) (*float64, *float64, *float64) {
	if rp == nil && rs != nil && ratror != nil {
		v := *ratror * (*rs * solarRad) / earthRad
		rp = &v
	}
	if rs == nil && rp != nil && ratror != nil {
		v := *rp * earthRad / *ratror / solarRad
		rs = &v
	}
	if ratror == nil && rp != nil && rs != nil {
		v := *rp * earthRad / (*rs * solarRad)
		ratror = &v
	}
	return rp, rs, ratror
}

// solveARs closes the (semi-major axis, stellar radius, distance ratio)
// triple via the ratio definition.
func solveARs(a, rs, ratdor *float64) (*float64, *float64, *float64) {
	if a == nil && rs != nil && ratdor != nil {
		v := *ratdor * (*rs * solarRad) / au
		a = &v
	}
	if rs == nil && a != nil && ratdor != nil {
		v := *a * au / *ratdor / solarRad
		rs = &v
	}
	if ratdor == nil && a != nil && rs != nil {
		v := *a * au / (*rs * solarRad)
		ratdor = &v
	}
	return a, rs, ratdor
}

// EquilibriumTemp fills the zero-albedo equilibrium temperature when
// stellar temperature, stellar radius and semi-major axis are all
// present. With any of the three missing the field stays nil; it is
// never estimated from partial data.
func EquilibriumTemp(e *Entry) {
	if e.Teq != nil {
		return
	}
	if e.Teff == nil || e.Rstar == nil || e.SMA == nil {
		return
	}
	teq := *e.Teff * math.Sqrt(*e.Rstar*solarRad/(2.0 * *e.SMA * au))
	e.Teq = &teq
}
