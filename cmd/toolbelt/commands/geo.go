package commands

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/toolbelt/internal/adapters/geodesy"
	"go.trai.ch/toolbelt/internal/core/domain"
	"go.trai.ch/toolbelt/internal/ui/style"
	"go.trai.ch/zerr"
)

func (c *CLI) newUTMCmd() *cobra.Command {
	var east, north float64
	cmd := &cobra.Command{
		Use:     "utm <lat> <lon>",
		Short:   "Convert latitude and longitude to UTM",
		Example: "  toolbelt utm 40.7128 -74.0060\n  toolbelt utm --east 500 --north -250 -- -33.8688 151.2093",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parseLatLon(args[0], args[1])
			if err != nil {
				return err
			}
			p := newPrinter(cmd)

			if east != 0 || north != 0 {
				pos, err = c.app.Offset(pos, east, north)
				if err != nil {
					return err
				}
				p.faint(style.Arrow + " " + pos.String())
			}

			u, err := c.app.ToUTM(pos)
			if err != nil {
				return err
			}
			p.line(u.String())
			return nil
		},
	}
	cmd.Flags().Float64Var(&east, "east", 0, "Move the position this many meters east first")
	cmd.Flags().Float64Var(&north, "north", 0, "Move the position this many meters north first")
	return cmd
}

func (c *CLI) newLatLonCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "latlon <zone> <easting> <northing>",
		Short:   "Convert a UTM position to latitude and longitude",
		Example: "  toolbelt latlon 18T 583959 4507350",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := parseUTM(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			pos, err := c.app.FromUTM(u)
			if err != nil {
				return err
			}
			newPrinter(cmd).line(pos.String())
			return nil
		},
	}
}

func (c *CLI) newMGRSCmd() *cobra.Command {
	var digits int
	cmd := &cobra.Command{
		Use:     "mgrs <lat> <lon>",
		Short:   "Convert latitude and longitude to an MGRS grid reference",
		Example: "  toolbelt mgrs 40.7128 -74.0060\n  toolbelt mgrs --digits 3 -- -33.8688 151.2093",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parseLatLon(args[0], args[1])
			if err != nil {
				return err
			}
			ref, err := c.app.MGRS(pos, digits)
			if err != nil {
				return err
			}
			newPrinter(cmd).line(ref)
			return nil
		},
	}
	cmd.Flags().IntVarP(&digits, "digits", "d", geodesy.MaxMGRSDigits, "Digits per easting and northing (0-5)")
	return cmd
}

func parseLatLon(lat, lon string) (domain.LatLon, error) {
	la, err := parseFloat("latitude", lat)
	if err != nil {
		return domain.LatLon{}, err
	}
	lo, err := parseFloat("longitude", lon)
	if err != nil {
		return domain.LatLon{}, err
	}
	return domain.LatLon{Lat: la, Lon: lo}, nil
}

func parseUTM(zone, easting, northing string) (domain.UTMPoint, error) {
	zone = strings.ToUpper(strings.TrimSpace(zone))
	split := strings.IndexFunc(zone, func(r rune) bool { return r < '0' || r > '9' })
	if split <= 0 || split != len(zone)-1 {
		return domain.UTMPoint{}, zerr.With(zerr.Wrap(domain.ErrInvalidCoordinate, "zone must be a number and a band letter"), "zone", zone)
	}
	number, err := strconv.Atoi(zone[:split])
	if err != nil {
		return domain.UTMPoint{}, zerr.With(zerr.Wrap(domain.ErrInvalidCoordinate, "invalid zone number"), "zone", zone)
	}
	e, err := parseFloat("easting", easting)
	if err != nil {
		return domain.UTMPoint{}, err
	}
	n, err := parseFloat("northing", northing)
	if err != nil {
		return domain.UTMPoint{}, err
	}
	return domain.UTMPoint{Easting: e, Northing: n, ZoneNumber: number, ZoneLetter: zone[split:]}, nil
}

func parseFloat(name, value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(domain.ErrInvalidCoordinate, "not a number"), name, value)
	}
	return f, nil
}
