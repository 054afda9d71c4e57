package barcode

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidInput means the input is neither a 5/6-digit DOC number
	// nor a 12-digit GTIN barcode.
	ErrInvalidInput = errors.New("invalid DOC number")
	// ErrInvalidBarcode means a 12-digit GTIN failed its mod-10 checksum.
	ErrInvalidBarcode = errors.New("invalid GTIN barcode")
)

// GTINLength is the scanned barcode length: prefix digit + 10-digit body + check digit.
const GTINLength = 12

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// CheckDigitIsValid reports whether the trailing digit of gtin satisfies the
// GS1 mod-10 checksum: leading zeros stripped, remaining digits (minus the
// check digit) weighted x3/x1 alternately from the rightmost, summed, and
// compared against (10 - sum%10) % 10.
func CheckDigitIsValid(gtin string) bool {
	gtin = strings.TrimLeft(gtin, "0")
	if gtin == "" || !allDigits(gtin) {
		return false
	}

	body := gtin[:len(gtin)-1]
	sum := 0
	for i := 0; i < len(body); i++ {
		d := int(body[len(body)-1-i] - '0')
		if i%2 == 0 {
			sum += d * 3
		} else {
			sum += d
		}
	}

	return (10-sum%10)%10 == int(gtin[len(gtin)-1]-'0')
}

// CheckDigit computes the GS1 mod-10 check digit for a barcode body
// (a GTIN without its trailing check digit).
func CheckDigit(body string) (int, error) {
	body = strings.TrimLeft(body, "0")
	if body == "" || !allDigits(body) {
		return 0, ErrInvalidInput
	}

	sum := 0
	for i := 0; i < len(body); i++ {
		d := int(body[len(body)-1-i] - '0')
		if i%2 == 0 {
			sum += d * 3
		} else {
			sum += d
		}
	}

	return (10 - sum%10) % 10, nil
}

// DOCFromGTIN converts a 12-digit GTIN barcode into a DOC number by stripping
// the leading prefix digit, the trailing check digit, and any leading zeros.
// The checksum must validate first; on mismatch the caller is expected to
// re-prompt rather than truncate the scan.
func DOCFromGTIN(gtin string) (string, error) {
	if len(gtin) != GTINLength {
		return "", ErrInvalidInput
	}
	if !CheckDigitIsValid(gtin) {
		return "", ErrInvalidBarcode
	}
	return strings.TrimLeft(gtin[1:len(gtin)-1], "0"), nil
}

// NormalizeDOC accepts either a keyed-in 5/6-digit DOC number or a scanned
// 12-digit GTIN barcode and returns the plain DOC number.
func NormalizeDOC(input string) (string, error) {
	switch len(input) {
	case 5, 6:
		if !allDigits(input) {
			return "", ErrInvalidInput
		}
		return input, nil
	case GTINLength:
		return DOCFromGTIN(input)
	default:
		return "", ErrInvalidInput
	}
}
