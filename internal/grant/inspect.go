package grant

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const _VIDEO_CLAIM = "video"

type VideoClaims struct {
	Room string `json:"room"`
	Permissions
}

// GrantClaims is the decoded form of an access token issued by TokenService.
type GrantClaims struct {
	APIKey    string      `json:"apiKey"`
	Identity  string      `json:"identity"`
	Name      string      `json:"name"`
	Video     VideoClaims `json:"video"`
	NotBefore time.Time   `json:"notBefore"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

// Inspect verifies the HS256 signature with secret, validates the time
// claims and decodes the LiveKit grant layout.
func (s *TokenService) Inspect(insecureToken, secret string) (*GrantClaims, error) {
	if insecureToken == "" || secret == "" {
		return nil, ErrEmptyField
	}

	token, err := jwt.Parse([]byte(insecureToken),
		jwt.WithKey(jwa.HS256, []byte(secret)),
		jwt.WithValidate(true),
		jwt.WithClock(jwt.ClockFunc(s.now)),
		jwt.WithAcceptableSkew(10*time.Second),
	)
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}

	claims := &GrantClaims{
		APIKey:    token.Issuer(),
		Identity:  token.Subject(),
		NotBefore: token.NotBefore(),
		ExpiresAt: token.Expiration(),
	}

	if name, ok := token.Get("name"); ok {
		if str, ok := name.(string); ok {
			claims.Name = str
		}
	}

	rawVideo, ok := token.Get(_VIDEO_CLAIM)
	if !ok {
		return nil, fmt.Errorf("%w: missing `%s` claim", ErrMalformedGrant, _VIDEO_CLAIM)
	}

	videoBytes, err := json.Marshal(rawVideo)
	if err != nil {
		return nil, errors.Join(ErrMalformedGrant, err)
	}
	if err = json.Unmarshal(videoBytes, &claims.Video); err != nil {
		return nil, errors.Join(ErrMalformedGrant, err)
	}

	return claims, nil
}
