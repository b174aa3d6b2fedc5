package domain

import "fmt"

// LatLon is a geodetic position in decimal degrees (WGS84).
type LatLon struct {
	Lat float64
	Lon float64
}

// String implements fmt.Stringer.
func (p LatLon) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", p.Lat, p.Lon)
}

// Northern reports whether the position lies on or north of the equator.
func (p LatLon) Northern() bool {
	return p.Lat >= 0
}

// UTMPoint is a position on the Universal Transverse Mercator grid.
type UTMPoint struct {
	Easting    float64
	Northing   float64
	ZoneNumber int
	ZoneLetter string
}

// String implements fmt.Stringer.
func (u UTMPoint) String() string {
	return fmt.Sprintf("%d%s %.0fE %.0fN", u.ZoneNumber, u.ZoneLetter, u.Easting, u.Northing)
}

// Offset returns a copy of u shifted by east and north meters within the same zone.
func (u UTMPoint) Offset(east, north float64) UTMPoint {
	u.Easting += east
	u.Northing += north
	return u
}

// DMS is an angle in degrees, minutes and seconds.
type DMS struct {
	Negative bool
	Degrees  int
	Minutes  int
	Seconds  float64
}

// Decimal returns the angle in decimal degrees.
func (d DMS) Decimal() float64 {
	v := float64(d.Degrees) + float64(d.Minutes)/60 + d.Seconds/3600
	if d.Negative {
		return -v
	}
	return v
}

// DMSFromDecimalMinutes splits a degrees / decimal-minutes angle into whole
// minutes and seconds.
func DMSFromDecimalMinutes(negative bool, degrees int, minutes float64) DMS {
	whole := int(minutes)
	return DMS{
		Negative: negative,
		Degrees:  degrees,
		Minutes:  whole,
		Seconds:  (minutes - float64(whole)) * 60,
	}
}
