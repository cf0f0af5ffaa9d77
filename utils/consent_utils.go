package utils

import (
	"fmt"
	"time"
)

// consentBrand is the fixed brand token embedded in every consent filename.
const consentBrand = "AswajithSS"

// ConsentFilename derives the name of the consent PDF for a signing.
// Format: Consent_<brand>_<client_name>_<YYYY-MM-DD>.pdf with the date in UTC.
func ConsentFilename(clientName string, at time.Time) string {
	return fmt.Sprintf("Consent_%s_%s_%s.pdf", consentBrand, clientName, at.UTC().Format("2006-01-02"))
}
