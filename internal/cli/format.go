package cli

import (
	"fmt"

	"github.com/signalsfoundry/llh2ecef/core"
)

// FormatECEF renders X, Y and Z on separate lines with six decimals.
func FormatECEF(p core.ECEF) string {
	return fmt.Sprintf("%.6f\n%.6f\n%.6f\n", p.X, p.Y, p.Z)
}

// UsageLine is the message printed when the argument count is wrong.
func UsageLine(program string) string {
	return fmt.Sprintf("Usage: %s lat_deg lon_deg hae_km\n", program)
}
