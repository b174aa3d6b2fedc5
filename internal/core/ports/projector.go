package ports

import "go.trai.ch/toolbelt/internal/core/domain"

// Projector converts between geodetic and grid coordinates.
type Projector interface {
	ToUTM(p domain.LatLon) (domain.UTMPoint, error)
	ToLatLon(u domain.UTMPoint) (domain.LatLon, error)
}
