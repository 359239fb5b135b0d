// Package checkdigit implements the two FEBRABAN check digit (DAC)
// algorithms used by boleto barcodes and their fields.
package checkdigit

// Modulo11 computes the barcode-level check digit of a string of ASCII
// decimal digits. Digits are weighted right to left by the cyclic
// sequence 2..9; the digit is 11 - (sum % 11), except that results of
// 0, 10 and 11 collapse to '1' per the FEBRABAN barcode convention
// (this differs from the generic modulo-11 rule used by CPF/CNPJ).
// The input must be non-empty and all digits; callers validate.
func Modulo11(digits string) byte {
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
	if dv == 0 || dv == 10 || dv == 11 {
		return '1'
	}
	return byte('0' + dv)
}

// Modulo10 computes the field-level DAC used inside the linha digitável
// and by bank-specific campo livre layouts. Digits are weighted right to
// left alternating 2 and 1; products above 9 are reduced by summing
// their own digits before entering the total.
func Modulo10(digits string) byte {
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
	r := sum % 10
	if r == 0 {
		return '0'
	}
	return byte('0' + 10 - r)
}
