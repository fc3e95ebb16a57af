package utils

import (
	"errors"
	"time"

	"github.com/eassylife/b2bportal/config"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	secret := config.AppConfig.SessionSecret
	if secret == "" {
		secret = "b2bportal-dev"
	}
	return []byte(secret)
}

// GenerateSessionToken creates a signed JWT wrapping the upstream identity
// token for the given subject (the B2B user ID). The portal session cookie
// carries this JWT rather than the raw upstream token so a client cannot
// forge authentication by editing the cookie.
func GenerateSessionToken(subject, upstreamToken string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": subject,
		"tok": upstreamToken,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateSessionToken parses and validates a session JWT string.
func ValidateSessionToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ExtractSessionClaims extracts the user ID (subject) and the wrapped
// upstream token from a valid session JWT.
func ExtractSessionClaims(tokenString string) (userID string, upstreamToken string, err error) {
	token, err := ValidateSessionToken(tokenString)
	if err != nil {
		return "", "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", "", errors.New("token does not contain a valid 'sub' claim")
	}
	tok, ok := claims["tok"].(string)
	if !ok || tok == "" {
		return "", "", errors.New("token does not contain a valid 'tok' claim")
	}

	return sub, tok, nil
}
