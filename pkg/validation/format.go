package validation

import (
	"fmt"

	"github.com/crickwise/declare-forecast/pkg/constants"
)

// ValidateOutputFormat returns an error when the requested output format is
// not one of the supported names.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV:
		return nil
	default:
		return fmt.Errorf("invalid output format: %s", format)
	}
}
