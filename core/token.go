package core

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	TokenPayloadFormatJSONV1 = "oauth_token_json"
	TokenPayloadVersionV1    = 1
)

// Token is the persisted OAuth2 credential material. Expiry is nil for
// tokens without a known lifetime.
type Token struct {
	TokenType    string
	AccessToken  string
	RefreshToken string
	Expiry       *time.Time
	Scopes       []string
	Metadata     map[string]any
}

func (t Token) IsZero() bool {
	return strings.TrimSpace(t.AccessToken) == "" && strings.TrimSpace(t.RefreshToken) == ""
}

// TokenCodec serializes tokens for persistence. Stores record the format and
// version alongside the payload so older payloads stay decodable.
type TokenCodec interface {
	Format() string
	Version() int
	Encode(token Token) ([]byte, error)
	Decode(payload []byte) (Token, error)
}

type JSONTokenCodec struct{}

func (JSONTokenCodec) Format() string {
	return TokenPayloadFormatJSONV1
}

func (JSONTokenCodec) Version() int {
	return TokenPayloadVersionV1
}

type jsonTokenPayload struct {
	TokenType    string         `json:"token_type,omitempty"`
	AccessToken  string         `json:"access_token,omitempty"`
	RefreshToken string         `json:"refresh_token,omitempty"`
	Expiry       *time.Time     `json:"expiry,omitempty"`
	Scopes       []string       `json:"scopes,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

func (JSONTokenCodec) Encode(token Token) ([]byte, error) {
	payload := jsonTokenPayload{
		TokenType:    strings.TrimSpace(token.TokenType),
		AccessToken:  strings.TrimSpace(token.AccessToken),
		RefreshToken: strings.TrimSpace(token.RefreshToken),
		Expiry:       cloneTimePointer(token.Expiry),
		Scopes:       append([]string(nil), token.Scopes...),
		Metadata:     copyAnyMap(token.Metadata),
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("core: encode token payload: %w", err)
	}
	return encoded, nil
}

func (JSONTokenCodec) Decode(payload []byte) (Token, error) {
	if len(payload) == 0 {
		return Token{}, fmt.Errorf("core: token payload is empty")
	}
	decoded := jsonTokenPayload{}
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return Token{}, fmt.Errorf("core: decode token payload: %w", err)
	}
	return Token{
		TokenType:    strings.TrimSpace(decoded.TokenType),
		AccessToken:  strings.TrimSpace(decoded.AccessToken),
		RefreshToken: strings.TrimSpace(decoded.RefreshToken),
		Expiry:       cloneTimePointer(decoded.Expiry),
		Scopes:       append([]string(nil), decoded.Scopes...),
		Metadata:     copyAnyMap(decoded.Metadata),
	}, nil
}

func cloneTimePointer(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	clone := value.UTC()
	return &clone
}

func copyAnyMap(input map[string]any) map[string]any {
	if len(input) == 0 {
		return nil
	}
	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = value
	}
	return out
}
