package cart

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Checkout form messages, first failing rule wins.
const (
	MsgInvalidName    = "Veuillez entrer un nom complet valide."
	MsgInvalidAddress = "Veuillez entrer une adresse valide."
	MsgInvalidPhone   = "Numéro de téléphone invalide (ex: 0612345678)."
	MsgEmptyCart      = "Votre panier est vide."
)

// Moroccan mobile numbering: (+212 | 00212 | 0), then 5/6/7, then 8 digits.
var phoneRx = regexp.MustCompile(`^(\+212|00212|0)(5|6|7)\d{8}$`)

// whitespace inside a phone number is insignificant
var spaceRx = regexp.MustCompile(`\s+`)

// ValidateCheckoutForm returns an empty string when the form is valid, else
// the user-facing message for the first failing rule: name, then address,
// then phone.
func ValidateCheckoutForm(name, address, phone string) string {
	if utf8.RuneCountInString(strings.TrimSpace(name)) < 2 {
		return MsgInvalidName
	}
	if utf8.RuneCountInString(strings.TrimSpace(address)) < 5 {
		return MsgInvalidAddress
	}
	if !phoneRx.MatchString(spaceRx.ReplaceAllString(phone, "")) {
		return MsgInvalidPhone
	}
	return ""
}
