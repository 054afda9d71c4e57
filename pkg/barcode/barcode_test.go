package barcode

import (
	"errors"
	"fmt"
	"testing"
)

func TestCheckDigit_RoundTrip(t *testing.T) {
	// For every valid barcode, recomputing the check digit from the body
	// must reproduce the dropped digit.
	bodies := []string{
		"41234567890",
		"00000123456",
		"99999999999",
		"10000000000",
		"41230045678",
	}
	for _, body := range bodies {
		cd, err := CheckDigit(body)
		if err != nil {
			t.Fatalf("CheckDigit(%q): %v", body, err)
		}
		gtin := fmt.Sprintf("%s%d", body, cd)
		if !CheckDigitIsValid(gtin) {
			t.Errorf("CheckDigitIsValid(%q) = false, want true", gtin)
		}
		// Flipping the check digit must invalidate the barcode.
		bad := fmt.Sprintf("%s%d", body, (cd+1)%10)
		if CheckDigitIsValid(bad) {
			t.Errorf("CheckDigitIsValid(%q) = true, want false", bad)
		}
	}
}

func TestCheckDigitIsValid_Known(t *testing.T) {
	// 036000291452 is the canonical GS1 example UPC.
	if !CheckDigitIsValid("036000291452") {
		t.Error("known-good UPC rejected")
	}
	if CheckDigitIsValid("036000291453") {
		t.Error("known-bad UPC accepted")
	}
	if CheckDigitIsValid("0000000000") {
		t.Error("all-zero input accepted")
	}
	if CheckDigitIsValid("03600029145x") {
		t.Error("non-digit input accepted")
	}
}

func TestDOCFromGTIN(t *testing.T) {
	body := "40012345600"
	cd, err := CheckDigit(body)
	if err != nil {
		t.Fatal(err)
	}
	gtin := fmt.Sprintf("%s%d", body, cd)

	doc, err := DOCFromGTIN(gtin)
	if err != nil {
		t.Fatalf("DOCFromGTIN(%q): %v", gtin, err)
	}
	// Prefix digit '4' and the check digit are stripped, leading zeros removed.
	if doc != "12345600" {
		t.Errorf("doc = %q, want %q", doc, "12345600")
	}

	if _, err := DOCFromGTIN(fmt.Sprintf("%s%d", body, (cd+5)%10)); !errors.Is(err, ErrInvalidBarcode) {
		t.Errorf("bad checksum: err = %v, want ErrInvalidBarcode", err)
	}
	if _, err := DOCFromGTIN("12345"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("short input: err = %v, want ErrInvalidInput", err)
	}
}

func TestNormalizeDOC(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr error
	}{
		{"12345", "12345", nil},
		{"123456", "123456", nil},
		{"1234", "", ErrInvalidInput},
		{"1234567", "", ErrInvalidInput},
		{"12a456", "", ErrInvalidInput},
		{"", "", ErrInvalidInput},
		{"036000291452", "3600029145", nil}, // valid GTIN
		{"036000291453", "", ErrInvalidBarcode},
	}
	for _, tt := range tests {
		got, err := NormalizeDOC(tt.in)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("NormalizeDOC(%q) err = %v, want %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeDOC(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
