package febraban

import (
	"errors"
	"strings"
	"testing"
	"time"
)

// Canonical FEBRABAN sample (Banco do Brasil layout manual): factor 3737,
// value R$ 1,00. The published linha digitável for this barcode is
// "00190.50095 40144.816069 06809.350314 3 37370000000100".
const sampleBarcode = "00193373700000001000500940144816060680935031"

func TestFatorVencimento(t *testing.T) {
	t.Run("epoch", func(t *testing.T) {
		f, err := FatorVencimento(time.Date(1997, 10, 7, 0, 0, 0, 0, time.UTC))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f != 0 {
			t.Fatalf("expected factor 0, got %d", f)
		}
	})

	t.Run("known factor 1000", func(t *testing.T) {
		f, err := FatorVencimento(time.Date(2000, 7, 3, 0, 0, 0, 0, time.UTC))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f != 1000 {
			t.Fatalf("expected factor 1000, got %d", f)
		}
	})

	t.Run("before epoch", func(t *testing.T) {
		_, err := FatorVencimento(time.Date(1997, 10, 6, 0, 0, 0, 0, time.UTC))
		if !errors.Is(err, ErrFatorBeforeEpoch) {
			t.Fatalf("expected ErrFatorBeforeEpoch, got %v", err)
		}
	})

	t.Run("rollover flagged", func(t *testing.T) {
		// 9999 days past the epoch lands on 2025-02-21; anything later
		// overflows the 4-digit field.
		f, err := FatorVencimento(time.Date(2025, 2, 21, 0, 0, 0, 0, time.UTC))
		if err != nil {
			t.Fatalf("unexpected error at boundary: %v", err)
		}
		if f != 9999 {
			t.Fatalf("expected factor 9999, got %d", f)
		}

		_, err = FatorVencimento(time.Date(2025, 2, 22, 0, 0, 0, 0, time.UTC))
		if !errors.Is(err, ErrFatorRollover) {
			t.Fatalf("expected ErrFatorRollover, got %v", err)
		}
	})
}

func TestModulo10(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"01230067896", 3}, // published example
		{"001905009", 5},
		{"4014481606", 9},
		{"0680935031", 4},
	}
	for _, c := range cases {
		if got := Modulo10(c.in); got != c.want {
			t.Errorf("Modulo10(%q) = %d, want %d", c.in, got, c.want)
		}
	}

	// Deterministic and in range.
	for i := 0; i < 3; i++ {
		got := Modulo10("123456789")
		if got < 0 || got > 9 {
			t.Fatalf("check digit out of range: %d", got)
		}
		if got != Modulo10("123456789") {
			t.Fatal("Modulo10 is not deterministic")
		}
	}
}

func TestModulo11(t *testing.T) {
	// General DV of the canonical sample (position 5 of the barcode).
	body := sampleBarcode[:4] + sampleBarcode[5:]
	if got := Modulo11(body); got != 3 {
		t.Fatalf("Modulo11(%q) = %d, want 3", body, got)
	}

	// Substitution rule: raw results 0, 1 and >9 all map to 1.
	if got := Modulo11("0"); got != 1 {
		t.Errorf("Modulo11(\"0\") = %d, want 1", got)
	}
	if got := Modulo11("31"); got != 1 { // sum%11 == 0
		t.Errorf("Modulo11(\"31\") = %d, want 1", got)
	}
	if got := Modulo11("4"); got != 3 {
		t.Errorf("Modulo11(\"4\") = %d, want 3", got)
	}
}

func TestLinhaDigitavel(t *testing.T) {
	want := "0019050095 40144816069 06809350314 3 37370000000100"

	got, err := LinhaDigitavel(sampleBarcode)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("linha digitavel mismatch:\n got %s\nwant %s", got, want)
	}

	// Deterministic.
	again, err := LinhaDigitavel(sampleBarcode)
	if err != nil || again != got {
		t.Fatalf("expected identical output on repeat call, got %q (%v)", again, err)
	}

	// Field widths per the layout.
	fields := strings.Fields(got)
	if len(fields) != 5 {
		t.Fatalf("expected 5 fields, got %d", len(fields))
	}
	widths := []int{10, 11, 11, 1, 14}
	for i, f := range fields {
		if len(f) != widths[i] {
			t.Errorf("field %d: expected width %d, got %d (%q)", i+1, widths[i], len(f), f)
		}
	}
}

func TestLinhaDigitavel_Errors(t *testing.T) {
	if _, err := LinhaDigitavel("123"); !errors.Is(err, ErrBarcodeLength) {
		t.Fatalf("expected ErrBarcodeLength, got %v", err)
	}
	bad := strings.Repeat("1", 43) + "x"
	if _, err := LinhaDigitavel(bad); !errors.Is(err, ErrBarcodeNotNumeric) {
		t.Fatalf("expected ErrBarcodeNotNumeric, got %v", err)
	}
}

func TestGerarCodigoBarras(t *testing.T) {
	due := time.Date(2008, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("round trip with linha digitavel", func(t *testing.T) {
		campoLivre := "0500940144816060680935031"
		code, err := GerarCodigoBarras("001", due, 1.00, campoLivre)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(code) != BarcodeLength {
			t.Fatalf("expected 44 digits, got %d", len(code))
		}
		if code[:4] != "0019" {
			t.Fatalf("expected bank+currency prefix 0019, got %s", code[:4])
		}
		if code[19:] != campoLivre {
			t.Fatalf("free field not preserved: %s", code[19:])
		}
		if _, err := LinhaDigitavel(code); err != nil {
			t.Fatalf("generated barcode rejected by LinhaDigitavel: %v", err)
		}
	})

	t.Run("value encoded in cents", func(t *testing.T) {
		code, err := GerarCodigoBarras("001", due, 1500.00, strings.Repeat("0", 25))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if code[9:19] != "0000150000" {
			t.Fatalf("expected value field 0000150000, got %s", code[9:19])
		}
	})

	t.Run("invalid inputs", func(t *testing.T) {
		if _, err := GerarCodigoBarras("1", due, 1, strings.Repeat("0", 25)); err == nil {
			t.Fatal("expected error for short bank code")
		}
		if _, err := GerarCodigoBarras("001", due, 1, "123"); !errors.Is(err, ErrCampoLivreLength) {
			t.Fatalf("expected ErrCampoLivreLength, got %v", err)
		}
		if _, err := GerarCodigoBarras("001", due, 0, strings.Repeat("0", 25)); !errors.Is(err, ErrValorInvalido) {
			t.Fatalf("expected ErrValorInvalido, got %v", err)
		}
	})
}
