package geodesy

import (
	"fmt"

	"go.trai.ch/toolbelt/internal/core/domain"
	"go.trai.ch/zerr"
)

// MaxMGRSDigits is the finest supported precision: 1 m.
const MaxMGRSDigits = 5

// 100 km square column letters repeat every three zones.
var columnSets = [3]string{"ABCDEFGH", "JKLMNPQR", "STUVWXYZ"}

const rowLetters = "ABCDEFGHJKLMNPQRSTUV"

// EncodeMGRS renders u as a grid reference with digits digits per axis,
// e.g. 18TWL8395907350 for 583959E 4507350N in zone 18T at 5 digits.
// Coordinates are truncated, not rounded.
func EncodeMGRS(u domain.UTMPoint, digits int) (string, error) {
	if digits < 0 || digits > MaxMGRSDigits {
		return "", zerr.With(zerr.Wrap(domain.ErrInvalidCoordinate, "unsupported MGRS precision"), "digits", digits)
	}
	if u.ZoneNumber < 1 || u.ZoneNumber > 60 || u.ZoneLetter == "" || u.Easting < 0 || u.Northing < 0 {
		return "", zerr.With(zerr.Wrap(domain.ErrInvalidCoordinate, "position outside the UTM grid"), "position", u.String())
	}

	set := u.ZoneNumber % 6
	if set == 0 {
		set = 6
	}

	col := int(u.Easting/100000) - 1
	columns := columnSets[(set-1)%3]
	if col < 0 || col >= len(columns) {
		return "", zerr.With(zerr.Wrap(domain.ErrInvalidCoordinate, "easting outside the zone"), "position", u.String())
	}

	row := int(u.Northing/100000) % 20
	if set%2 == 0 {
		row = (row + 5) % 20
	}

	e := fmt.Sprintf("%05d", int(u.Easting)%100000)
	n := fmt.Sprintf("%05d", int(u.Northing)%100000)

	return fmt.Sprintf("%d%s%c%c%s%s",
		u.ZoneNumber, u.ZoneLetter, columns[col], rowLetters[row], e[:digits], n[:digits]), nil
}
