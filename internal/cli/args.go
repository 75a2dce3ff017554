package cli

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/signalsfoundry/llh2ecef/core"
)

// argNames are the positional arguments in the order they are read.
var argNames = [...]string{"lat_deg", "lon_deg", "hae_km"}

var (
	// ErrArgCount is returned by ParseArgs when it is not given exactly
	// three arguments.
	ErrArgCount = errors.New("expected lat_deg lon_deg hae_km")
	// ErrNonFinite rejects NaN and infinite spellings that ParseFloat accepts.
	ErrNonFinite = errors.New("not a finite number")
)

// ArgError reports a positional argument that is not a usable number.
type ArgError struct {
	Name  string // lat_deg, lon_deg or hae_km
	Value string
	Err   error
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Name, e.Value, e.Err)
}

func (e *ArgError) Unwrap() error { return e.Err }

// ParseArgs reads latitude, longitude and height from three positional
// arguments. Surrounding whitespace is ignored.
func ParseArgs(args []string) (core.Geodetic, error) {
	if len(args) != len(argNames) {
		return core.Geodetic{}, fmt.Errorf("got %d arguments: %w", len(args), ErrArgCount)
	}
	var vals [len(argNames)]float64
	for i, name := range argNames {
		v, err := parseFloat(name, args[i])
		if err != nil {
			return core.Geodetic{}, err
		}
		vals[i] = v
	}
	return core.Geodetic{LatDeg: vals[0], LonDeg: vals[1], HeightKm: vals[2]}, nil
}

func parseFloat(name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, &ArgError{Name: name, Value: raw, Err: err}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ArgError{Name: name, Value: raw, Err: ErrNonFinite}
	}
	return v, nil
}
