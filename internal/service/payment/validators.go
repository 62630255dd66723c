package payment

import "regexp"

var cardNumberPattern = regexp.MustCompile(`^\d{16}$`)

func isValidCardNumber(number string) bool {
	return cardNumberPattern.MatchString(number)
}
