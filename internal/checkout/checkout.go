// Package checkout turns a validated cart into a WhatsApp order handoff:
// a formatted text message and the wa.me deep link that carries it.
package checkout

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"github.com/eafshoop/storefront/internal/cart"
)

// The contact number ships reversed and base64-encoded to deter casual
// scraping of the page source. Deterrence only, not a security boundary.
const encodedContact = "NDA5NDk5NTQ2MjE="

// Form is the buyer information collected by the checkout drawer, already
// validated by cart.ValidateCheckoutForm.
type Form struct {
	Name    string
	Address string
	Phone   string
}

// DecodeContact reverses the obfuscation on an encoded contact number.
func DecodeContact(encoded string) (string, error) {
	b, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decode contact: %w", err)
	}
	r := []rune(string(b))
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r), nil
}

// ContactNumber returns the built-in contact identifier.
func ContactNumber() string {
	n, err := DecodeContact(encodedContact)
	if err != nil {
		return ""
	}
	return n
}

// ComposeMessage formats the order summary: header, buyer block, one bullet
// per line item with its reference and subtotal, then the grand total.
func ComposeMessage(f Form, items []cart.LineItem) string {
	var b strings.Builder
	b.WriteString("*Nouvelle Commande — EAF Shoop*\n\n")
	fmt.Fprintf(&b, "*Client:* %s\n", f.Name)
	fmt.Fprintf(&b, "*Adresse:* %s\n", f.Address)
	fmt.Fprintf(&b, "*Téléphone:* %s\n\n", f.Phone)
	b.WriteString("*Commande:*\n")
	for _, it := range items {
		ref := it.CodeBar
		if ref == "" {
			ref = "N/A"
		}
		fmt.Fprintf(&b, "• %d × %s (Réf: %s) — %s MAD\n", it.Quantity, it.Name, ref, it.Subtotal())
	}
	fmt.Fprintf(&b, "\n*Total: %s MAD*", cart.TotalOf(items))
	return b.String()
}

// OrderLink builds the outbound deep link with the message URL-encoded.
func OrderLink(contact, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", contact, url.QueryEscape(message))
}
