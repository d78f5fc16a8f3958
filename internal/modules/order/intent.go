// Package order builds the WhatsApp deep link a customer follows to
// order a product. Nothing is sent from here; the storefront renders the
// link and the customer's own WhatsApp takes over.
package order

import (
	"net/url"
	"os"
	"strings"
)

const (
	defaultBaseURL = "https://wa.me"
	// The shop's WhatsApp number, overridable via WHATSAPP_PHONE.
	defaultPhone = "918344197738"
)

type Composer struct {
	BaseURL string
	Phone   string
}

func New(baseURL, phone string) Composer {
	return Composer{BaseURL: strings.TrimRight(baseURL, "/"), Phone: phone}
}

func FromEnv() Composer {
	base := os.Getenv("WHATSAPP_BASE_URL")
	if base == "" {
		base = defaultBaseURL
	}
	phone := os.Getenv("WHATSAPP_PHONE")
	if phone == "" {
		phone = defaultPhone
	}
	return New(base, phone)
}

// Link composes the order-intent URL for a product name:
// <base>/<phone>?text=<encoded "Hi, I would like to order {name}">.
func (c Composer) Link(productName string) string {
	q := url.Values{}
	q.Set("text", "Hi, I would like to order "+productName)
	return c.BaseURL + "/" + c.Phone + "?" + q.Encode()
}
