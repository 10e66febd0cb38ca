package token

import (
	"errors"
	"fmt"
	"strconv"

	"festa/internal/domain/model"

	"github.com/golang-jwt/jwt/v4"
)

// 署名不正・期限切れ・形式不正はすべてこれ
var ErrInvalidToken = errors.New("invalid session token")

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// HS256でセッショントークンを作る/検証する
type JWTCodec struct {
	secret []byte
	parser *jwt.Parser
}

// DI
func NewJWTCodec(secret string) *JWTCodec {
	return &JWTCodec{
		secret: []byte(secret),
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}
}

func (c *JWTCodec) Encode(t model.SessionToken) (string, error) {
	if t.SessionID == "" || t.UserID <= 0 {
		return "", fmt.Errorf("encode session token: %w", ErrInvalidToken)
	}
	claims := sessionClaims{
		SessionID: t.SessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(t.UserID, 10),
			ExpiresAt: jwt.NewNumericDate(t.ExpiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// 署名と期限を確認して中身を返す
func (c *JWTCodec) Decode(raw string) (model.SessionToken, error) {
	if raw == "" {
		return model.SessionToken{}, ErrInvalidToken
	}

	var claims sessionClaims
	tok, err := c.parser.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return c.secret, nil
	})
	if err != nil || tok == nil || !tok.Valid {
		return model.SessionToken{}, ErrInvalidToken
	}

	// expなしは受け付けない
	if claims.ExpiresAt == nil || claims.SessionID == "" {
		return model.SessionToken{}, ErrInvalidToken
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return model.SessionToken{}, ErrInvalidToken
	}

	return model.SessionToken{
		SessionID: claims.SessionID,
		UserID:    userID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
