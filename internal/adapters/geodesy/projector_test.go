package geodesy_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/toolbelt/internal/adapters/geodesy"
	"go.trai.ch/toolbelt/internal/core/domain"
)

func TestProjector_RoundTrip(t *testing.T) {
	p := geodesy.NewProjector()
	origin := domain.LatLon{Lat: 40.7128, Lon: -74.0060}

	u, err := p.ToUTM(origin)
	require.NoError(t, err)
	assert.Equal(t, 18, u.ZoneNumber)
	assert.Equal(t, "T", u.ZoneLetter)
	assert.InDelta(t, 583959, u.Easting, 1)
	assert.InDelta(t, 4507350, u.Northing, 1)

	back, err := p.ToLatLon(u)
	require.NoError(t, err)
	assert.InDelta(t, origin.Lat, back.Lat, 1e-6)
	assert.InDelta(t, origin.Lon, back.Lon, 1e-6)
}

func TestProjector_SouthernHemisphere(t *testing.T) {
	p := geodesy.NewProjector()
	sydney := domain.LatLon{Lat: -33.8688, Lon: 151.2093}

	u, err := p.ToUTM(sydney)
	require.NoError(t, err)
	assert.Equal(t, 56, u.ZoneNumber)
	assert.Equal(t, "H", u.ZoneLetter)

	back, err := p.ToLatLon(u)
	require.NoError(t, err)
	assert.InDelta(t, sydney.Lat, back.Lat, 1e-6)
	assert.InDelta(t, sydney.Lon, back.Lon, 1e-6)
}

func TestProjector_Offset(t *testing.T) {
	p := geodesy.NewProjector()
	origin := domain.LatLon{Lat: 40.7128, Lon: -74.0060}

	moved, err := p.Offset(origin, 0, 1000)
	require.NoError(t, err)
	assert.Greater(t, moved.Lat, origin.Lat)
	// One kilometer of northing is roughly 0.009 degrees of latitude.
	assert.InDelta(t, 0.009, moved.Lat-origin.Lat, 0.0005)

	u0, err := p.ToUTM(origin)
	require.NoError(t, err)
	u1, err := p.ToUTM(moved)
	require.NoError(t, err)
	assert.InDelta(t, u0.Easting, u1.Easting, 0.01)
	assert.InDelta(t, u0.Northing+1000, u1.Northing, 0.01)
}

func TestProjector_MGRS(t *testing.T) {
	got, err := geodesy.NewProjector().MGRS(domain.LatLon{Lat: 40.7128, Lon: -74.0060}, 3)
	require.NoError(t, err)
	assert.Equal(t, "18TWL", got[:5])
	assert.Len(t, got, 11)
}

func TestProjector_OutOfRange(t *testing.T) {
	_, err := geodesy.NewProjector().ToUTM(domain.LatLon{Lat: 89.5, Lon: 10})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidCoordinate))
}
