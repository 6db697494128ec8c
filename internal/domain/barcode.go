package domain

import (
	"regexp"
	"strings"
)

// barcodePattern accepts EAN-8 through EAN-13 and UPC-A numeric codes.
var barcodePattern = regexp.MustCompile(`^\d{8,13}$`)

// NormalizeBarcode prepares a scanned or manually entered code for
// storage and comparison. Scanners occasionally emit surrounding
// whitespace; nothing else is touched.
func NormalizeBarcode(code string) string {
	return strings.TrimSpace(code)
}

// ValidBarcode reports whether code looks like an EAN/UPC barcode
// (8 to 13 digits). Used for quality reporting; lookup accepts any
// non-empty code since older stock carries nonstandard labels.
func ValidBarcode(code string) bool {
	return barcodePattern.MatchString(code)
}
