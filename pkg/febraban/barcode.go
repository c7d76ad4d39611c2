package febraban

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// Layout of the 44-position bank-slip barcode:
//
//	pos 1-3   bank code
//	pos 4     currency code ("9" = BRL)
//	pos 5     general check digit (modulo 11)
//	pos 6-9   due-date factor
//	pos 10-19 value in cents, zero padded
//	pos 20-44 free field (bank-specific: agency/wallet/nosso número/account)

const (
	BarcodeLength = 44
	CampoLivreLen = 25
	MoedaReal     = "9"
	fatorMax      = 9999
)

// fatorEpoch is the fixed FEBRABAN base date for the due-date factor.
var fatorEpoch = time.Date(1997, time.October, 7, 0, 0, 0, 0, time.UTC)

var (
	ErrBarcodeLength     = errors.New("codigo de barras deve ter exatamente 44 posicoes")
	ErrBarcodeNotNumeric = errors.New("codigo de barras deve conter apenas digitos")
	ErrFatorRollover     = errors.New("fator de vencimento excede 4 digitos (rollover da base 07/10/1997)")
	ErrFatorBeforeEpoch  = errors.New("vencimento anterior a base 07/10/1997")
	ErrCampoLivreLength  = errors.New("campo livre deve ter exatamente 25 posicoes")
	ErrValorInvalido     = errors.New("valor deve ser maior que zero")
)

// FatorVencimento returns the 4-digit due-date factor: whole days elapsed
// between the FEBRABAN epoch and the due date.
//
// The factor recycles after 9999 days; the standard does not define behavior
// past that point, so the rollover is surfaced as an error instead of being
// truncated.
func FatorVencimento(due time.Time) (int, error) {
	d := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	days := int(d.Sub(fatorEpoch).Hours() / 24)
	if days < 0 {
		return 0, ErrFatorBeforeEpoch
	}
	if days > fatorMax {
		return 0, ErrFatorRollover
	}
	return days, nil
}

// Modulo10 computes the DAC for the linha digitável fields: alternating
// weights 2 and 1 starting from the rightmost digit, products above 9
// reduced by summing their decimal digits.
func Modulo10(digits string) int {
	sum := 0
	weight := 2
	for i := len(digits) - 1; i >= 0; i-- {
		p := int(digits[i]-'0') * weight
		if p > 9 {
			p = p/10 + p%10
		}
		sum += p
		if weight == 2 {
			weight = 1
		} else {
			weight = 2
		}
	}
	rest := sum % 10
	if rest == 0 {
		return 0
	}
	return 10 - rest
}

// Modulo11 computes the barcode's general check digit: weights cycling 2..9
// right-to-left; results 0, 1 and anything above 9 map to 1 per the FEBRABAN
// substitution rule. This differs from the CPF/CNPJ modulo 11.
func Modulo11(digits string) int {
	sum := 0
	weight := 2
	for i := len(digits) - 1; i >= 0; i-- {
		sum += int(digits[i]-'0') * weight
		weight++
		if weight > 9 {
			weight = 2
		}
	}
	dv := 11 - sum%11
	if dv == 0 || dv == 1 || dv > 9 {
		return 1
	}
	return dv
}

// GerarCodigoBarras assembles the 44-digit barcode for a bank slip.
// campoLivre carries the bank-specific 25 positions (agency, wallet,
// nosso número, account).
func GerarCodigoBarras(banco string, due time.Time, valor float64, campoLivre string) (string, error) {
	if len(banco) != 3 || !isNumeric(banco) {
		return "", fmt.Errorf("codigo do banco invalido: %q", banco)
	}
	if len(campoLivre) != CampoLivreLen || !isNumeric(campoLivre) {
		return "", ErrCampoLivreLength
	}
	if valor <= 0 {
		return "", ErrValorInvalido
	}

	fator, err := FatorVencimento(due)
	if err != nil {
		return "", err
	}

	centavos := int64(math.Round(valor * 100))
	if centavos <= 0 || centavos > 9999999999 {
		return "", ErrValorInvalido
	}

	body := fmt.Sprintf("%s%s%04d%010d%s", banco, MoedaReal, fator, centavos, campoLivre)
	dv := Modulo11(body)

	return fmt.Sprintf("%s%d%s", body[:4], dv, body[4:]), nil
}

// LinhaDigitavel derives the human-typeable line from a 44-digit barcode.
//
// FEBRABAN regrouping:
//
//	campo 1: positions 1-4 + 20-24, plus a modulo-10 DAC  (10 digits)
//	campo 2: positions 25-34, plus a modulo-10 DAC        (11 digits)
//	campo 3: positions 35-44, plus a modulo-10 DAC        (11 digits)
//	campo 4: the barcode's general check digit            (1 digit)
//	campo 5: due-date factor + value                      (14 digits)
//
// Fields are joined with single spaces: 47 digits, 5 groups.
func LinhaDigitavel(barcode string) (string, error) {
	if len(barcode) != BarcodeLength {
		return "", ErrBarcodeLength
	}
	if !isNumeric(barcode) {
		return "", ErrBarcodeNotNumeric
	}

	campo1 := barcode[0:4] + barcode[19:24]
	campo2 := barcode[24:34]
	campo3 := barcode[34:44]
	campo4 := barcode[4:5]
	campo5 := barcode[5:19]

	return strings.Join([]string{
		fmt.Sprintf("%s%d", campo1, Modulo10(campo1)),
		fmt.Sprintf("%s%d", campo2, Modulo10(campo2)),
		fmt.Sprintf("%s%d", campo3, Modulo10(campo3)),
		campo4,
		campo5,
	}, " "), nil
}

func isNumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
