package session

import "encoding/base64"

// Cookie values may not contain commas, semicolons or spaces, so the profile
// JSON travels base64-encoded.

func encodeCookieValue(raw []byte) string {
	return base64.RawURLEncoding.EncodeToString(raw)
}

func decodeCookieValue(value string) []byte {
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	return raw
}
