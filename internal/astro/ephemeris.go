package astro

import (
	"math"
	"time"
)

// Provider computes apparent geocentric positions from the built-in
// analytic series. It is stateless; the zero value is ready to use.
type Provider struct{}

// NormalizeDeg wraps an angle into [0, 360).
func NormalizeDeg(x float64) float64 {
	x = math.Mod(x, 360)
	if x < 0 {
		x += 360
	}
	return x
}

// Wrap180 wraps an angle into [-180, 180).
func Wrap180(x float64) float64 {
	y := math.Mod(x+180, 360)
	if y < 0 {
		y += 360
	}
	return y - 180
}

func sinDeg(x float64) float64 { return math.Sin(x * math.Pi / 180) }
func cosDeg(x float64) float64 { return math.Cos(x * math.Pi / 180) }

// SunLongitude returns the apparent geocentric ecliptic longitude of the
// Sun at t, in degrees [0, 360).
func (Provider) SunLongitude(t time.Time) float64 {
	T := JulianCenturiesTT(t)

	// Geometric mean longitude and mean anomaly.
	l0 := 280.46646 + T*(36000.76983+T*0.0003032)
	m := 357.52911 + T*(35999.05029-T*0.0001537)

	// Equation of center.
	c := (1.914602-T*(0.004817+T*0.000014))*sinDeg(m) +
		(0.019993-T*0.000101)*sinDeg(2*m) +
		0.000289*sinDeg(3*m)

	trueLon := l0 + c

	// Nutation and aberration give the apparent longitude.
	omega := 125.04 - 1934.136*T
	apparent := trueLon - 0.00569 - 0.00478*sinDeg(omega)

	return NormalizeDeg(apparent)
}

// MoonLongitude returns the apparent geocentric ecliptic longitude of the
// Moon at t, in degrees [0, 360). The series keeps the dominant periodic
// terms of the lunar theory.
func (Provider) MoonLongitude(t time.Time) float64 {
	T := JulianCenturiesTT(t)
	lp, d, m, mp, f := moonFundamentals(T)

	lon := lp +
		6.288774*sinDeg(mp) +
		1.274027*sinDeg(2*d-mp) +
		0.658314*sinDeg(2*d) +
		0.213618*sinDeg(2*mp) -
		0.185116*sinDeg(m) -
		0.114332*sinDeg(2*f) +
		0.058793*sinDeg(2*d-2*mp) +
		0.057066*sinDeg(2*d-m-mp) +
		0.053322*sinDeg(2*d+mp) +
		0.045758*sinDeg(2*d-m) -
		0.040923*sinDeg(m-mp) -
		0.034720*sinDeg(d) -
		0.030383*sinDeg(m+mp) +
		0.015327*sinDeg(2*d-2*f) -
		0.012528*sinDeg(mp+2*f) +
		0.010980*sinDeg(mp-2*f) +
		0.010675*sinDeg(4*d-mp) +
		0.010034*sinDeg(3*mp) +
		0.008548*sinDeg(4*d-2*mp) -
		0.007888*sinDeg(2*d+m-mp) -
		0.006766*sinDeg(2*d+m) -
		0.005163*sinDeg(d-mp)

	// Apply nutation in longitude so Sun and Moon share a frame.
	omega := 125.04 - 1934.136*T
	lon -= 0.00478 * sinDeg(omega)

	return NormalizeDeg(lon)
}

// MoonLatitude returns the geocentric ecliptic latitude of the Moon at t,
// in degrees. Needed for rise/set geometry, not for any calendrical index.
func (Provider) MoonLatitude(t time.Time) float64 {
	T := JulianCenturiesTT(t)
	_, d, _, mp, f := moonFundamentals(T)

	return 5.128122*sinDeg(f) +
		0.280602*sinDeg(mp+f) +
		0.277693*sinDeg(mp-f) +
		0.173237*sinDeg(2*d-f) +
		0.055413*sinDeg(2*d+f-mp) +
		0.046271*sinDeg(2*d-f-mp) +
		0.032573*sinDeg(2*d+f) +
		0.017198*sinDeg(2*mp+f)
}

// moonFundamentals returns the Moon's mean longitude and the four
// fundamental arguments (elongation, solar anomaly, lunar anomaly,
// argument of latitude) in degrees for Julian centuries T.
func moonFundamentals(T float64) (lp, d, m, mp, f float64) {
	lp = 218.3164477 + T*(481267.88123421-T*0.0015786)
	d = 297.8501921 + T*(445267.1114034-T*0.0018819)
	m = 357.5291092 + T*(35999.0502909-T*0.0001536)
	mp = 134.9633964 + T*(477198.8675055+T*0.0087414)
	f = 93.2720950 + T*(483202.0175233-T*0.0036539)
	return
}

// Elongation returns the Moon-Sun longitude difference at t, in [0, 360).
func (p Provider) Elongation(t time.Time) float64 {
	return NormalizeDeg(p.MoonLongitude(t) - p.SunLongitude(t))
}

// Obliquity returns the mean obliquity of the ecliptic at t, in degrees.
func Obliquity(t time.Time) float64 {
	T := JulianCenturiesTT(t)
	return 23.4392911 - T*(0.0130042+T*0.00000016)
}
