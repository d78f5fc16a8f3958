// Package flash signs one-shot notices into a cookie so they survive the
// redirect after a form post.
package flash

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"

	"github.com/Code0plux/Website/pkg/view"
)

var ErrInvalid = errors.New("invalid flash cookie")

type Codec struct {
	Secret     []byte
	CookieName string
	Secure     bool
}

func NewCodec(secret []byte, cookieName string, secure bool) *Codec {
	return &Codec{Secret: secret, CookieName: cookieName, Secure: secure}
}

// Encode produces base64(json) + "." + base64(hmac).
func (c *Codec) Encode(f view.Flash) (string, error) {
	b, err := json.Marshal(f)
	if err != nil {
		return "", err
	}
	payload := base64.RawURLEncoding.EncodeToString(b)
	return payload + "." + c.sign(payload), nil
}

func (c *Codec) Decode(v string) (*view.Flash, error) {
	payload, sig, ok := strings.Cut(v, ".")
	if !ok {
		return nil, ErrInvalid
	}
	if !hmac.Equal([]byte(c.sign(payload)), []byte(sig)) {
		return nil, ErrInvalid
	}
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalid
	}
	var f view.Flash
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, ErrInvalid
	}
	if strings.TrimSpace(f.Message) == "" {
		return nil, ErrInvalid
	}
	return &f, nil
}

// CookieMaxAge keeps the cookie just long enough to survive a redirect.
func (c *Codec) CookieMaxAge() int { return 60 }

func (c *Codec) sign(payload string) string {
	m := hmac.New(sha256.New, c.Secret)
	m.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(m.Sum(nil))
}
