package documento

import "strings"

// IsValid reports whether raw contains a valid CPF (11 digits) or CNPJ
// (14 digits) after stripping formatting characters. A 13-digit value is
// treated as a CNPJ missing its leading zero.
//
// Sequences of a single repeated digit ("11111111111") pass the checksum but
// are not issuable documents, so they are rejected.
func IsValid(raw string) bool {
	digits := onlyDigits(raw)
	if len(digits) == 13 {
		digits = "0" + digits
	}

	switch len(digits) {
	case 11:
		return isValidCPF(digits)
	case 14:
		return isValidCNPJ(digits)
	default:
		return false
	}
}

// IsCNPJ reports whether raw normalizes to a 14-digit document.
func IsCNPJ(raw string) bool {
	n := len(onlyDigits(raw))
	return n == 13 || n == 14
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func allSameDigit(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

func isValidCPF(d string) bool {
	if allSameDigit(d) {
		return false
	}
	// First check digit: weights 10..2 over the first 9 digits.
	if cpfCheckDigit(d[:9], 10) != int(d[9]-'0') {
		return false
	}
	// Second check digit: weights 11..2 over the first 10 digits.
	return cpfCheckDigit(d[:10], 11) == int(d[10]-'0')
}

func cpfCheckDigit(d string, startWeight int) int {
	sum := 0
	for i := 0; i < len(d); i++ {
		sum += int(d[i]-'0') * (startWeight - i)
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}

var (
	cnpjWeightsFirst  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeightsSecond = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

func isValidCNPJ(d string) bool {
	if allSameDigit(d) {
		return false
	}
	if cnpjCheckDigit(d[:12], cnpjWeightsFirst) != int(d[12]-'0') {
		return false
	}
	return cnpjCheckDigit(d[:13], cnpjWeightsSecond) == int(d[13]-'0')
}

func cnpjCheckDigit(d string, weights []int) int {
	sum := 0
	for i := 0; i < len(d); i++ {
		sum += int(d[i]-'0') * weights[i]
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}
