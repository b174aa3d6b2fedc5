// Package geodesy converts WGS84 positions to and from the UTM grid.
package geodesy

import (
	"fmt"

	"github.com/im7mortal/UTM"
	"go.trai.ch/toolbelt/internal/core/domain"
	"go.trai.ch/toolbelt/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Projector = (*Projector)(nil)

// Projector implements ports.Projector.
type Projector struct{}

// NewProjector creates a new Projector.
func NewProjector() *Projector {
	return &Projector{}
}

// ToUTM projects p onto its UTM zone.
func (*Projector) ToUTM(p domain.LatLon) (domain.UTMPoint, error) {
	easting, northing, zone, letter, err := UTM.FromLatLon(p.Lat, p.Lon, p.Northern())
	if err != nil {
		return domain.UTMPoint{}, zerr.With(fmt.Errorf("%w: %w", domain.ErrInvalidCoordinate, err), "position", p.String())
	}
	return domain.UTMPoint{
		Easting:    easting,
		Northing:   northing,
		ZoneNumber: zone,
		ZoneLetter: letter,
	}, nil
}

// ToLatLon converts u back to a geodetic position.
func (*Projector) ToLatLon(u domain.UTMPoint) (domain.LatLon, error) {
	lat, lon, err := UTM.ToLatLon(u.Easting, u.Northing, u.ZoneNumber, u.ZoneLetter)
	if err != nil {
		return domain.LatLon{}, zerr.With(fmt.Errorf("%w: %w", domain.ErrInvalidCoordinate, err), "position", u.String())
	}
	return domain.LatLon{Lat: lat, Lon: lon}, nil
}

// Offset returns the position east and north meters away from origin,
// measured on origin's UTM grid.
func (p *Projector) Offset(origin domain.LatLon, east, north float64) (domain.LatLon, error) {
	u, err := p.ToUTM(origin)
	if err != nil {
		return domain.LatLon{}, err
	}
	return p.ToLatLon(u.Offset(east, north))
}

// MGRS returns the military grid reference of pos at the given precision.
func (p *Projector) MGRS(pos domain.LatLon, digits int) (string, error) {
	u, err := p.ToUTM(pos)
	if err != nil {
		return "", err
	}
	return EncodeMGRS(u, digits)
}
