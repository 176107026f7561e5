package checkout

import (
	"encoding/base64"
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eafshoop/storefront/internal/cart"
)

func TestDecodeContact(t *testing.T) {
	// encoded form is base64 of the reversed number
	enc := base64.StdEncoding.EncodeToString([]byte("321"))
	got, err := DecodeContact(enc)
	require.NoError(t, err)
	assert.Equal(t, "123", got)

	_, err = DecodeContact("not base64 !!")
	assert.Error(t, err)
}

func TestContactNumberDecodesBuiltin(t *testing.T) {
	assert.Equal(t, "12645994904", ContactNumber())
}

func TestComposeMessage(t *testing.T) {
	items := []cart.LineItem{
		{ID: "a", Name: "Produit A", Price: decimal.RequireFromString("10.50"), CodeBar: "CB-1", Quantity: 2},
		{ID: "b", Name: "Produit B", Price: decimal.RequireFromString("5.00"), Quantity: 1},
	}
	f := Form{Name: "Amine", Address: "1 rue du Soleil", Phone: "0612345678"}

	msg := ComposeMessage(f, items)

	assert.True(t, strings.HasPrefix(msg, "*Nouvelle Commande — EAF Shoop*\n\n"))
	assert.Contains(t, msg, "*Client:* Amine\n")
	assert.Contains(t, msg, "*Adresse:* 1 rue du Soleil\n")
	assert.Contains(t, msg, "*Téléphone:* 0612345678\n")
	assert.Contains(t, msg, "• 2 × Produit A (Réf: CB-1) — 21.00 MAD\n")
	assert.Contains(t, msg, "• 1 × Produit B (Réf: N/A) — 5.00 MAD\n", "missing barcode falls back to N/A")
	assert.True(t, strings.HasSuffix(msg, "*Total: 26.00 MAD*"))
}

func TestOrderLink(t *testing.T) {
	link := OrderLink("212600000000", "héllo & welcome")

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "wa.me", u.Host)
	assert.Equal(t, "/212600000000", u.Path)
	assert.Equal(t, "héllo & welcome", u.Query().Get("text"), "message survives a URL round trip")
}
