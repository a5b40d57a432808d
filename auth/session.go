package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-eaccounting/core"
	"golang.org/x/oauth2"
)

// SessionConfig carries the OAuth2 authorization-code settings for a
// Visma eAccounting session.
type SessionConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	Scopes       []string
	AuthURL      string
	TokenURL     string
	HTTPClient   *http.Client
	Now          func() time.Time
}

// Session drives the OAuth2 authorization-code flow and keeps the
// resulting token fresh. Tokens are persisted through the configured
// core.TokenStore whenever they are issued or rotated, so a session can
// be restored across process restarts without re-running the consent
// flow.
type Session struct {
	config     SessionConfig
	oauth      oauth2.Config
	store      core.TokenStore
	httpClient *http.Client

	mu      sync.Mutex
	current *oauth2.Token
}

// NewSession builds a Session from explicit OAuth settings. The token
// store is optional; without it tokens live only in memory.
func NewSession(cfg SessionConfig, store core.TokenStore) (*Session, error) {
	clientID := strings.TrimSpace(cfg.ClientID)
	if clientID == "" {
		return nil, fmt.Errorf("auth: session client_id is required")
	}
	authURL := strings.TrimSpace(cfg.AuthURL)
	if authURL == "" {
		authURL = core.DefaultAuthURL
	}
	tokenURL := strings.TrimSpace(cfg.TokenURL)
	if tokenURL == "" {
		tokenURL = core.DefaultTokenURL
	}
	now := cfg.Now
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	normalized := SessionConfig{
		ClientID:     clientID,
		ClientSecret: strings.TrimSpace(cfg.ClientSecret),
		RedirectURI:  strings.TrimSpace(cfg.RedirectURI),
		Scopes:       normalizeScopes(cfg.Scopes),
		AuthURL:      authURL,
		TokenURL:     tokenURL,
		HTTPClient:   httpClient,
		Now:          now,
	}

	return &Session{
		config: normalized,
		oauth: oauth2.Config{
			ClientID:     normalized.ClientID,
			ClientSecret: normalized.ClientSecret,
			RedirectURL:  normalized.RedirectURI,
			Scopes:       append([]string(nil), normalized.Scopes...),
			Endpoint: oauth2.Endpoint{
				AuthURL:  normalized.AuthURL,
				TokenURL: normalized.TokenURL,
			},
		},
		store:      store,
		httpClient: httpClient,
	}, nil
}

// SessionFromConfig builds a Session from a resolved service config.
func SessionFromConfig(cfg core.Config, store core.TokenStore) (*Session, error) {
	return NewSession(SessionConfig{
		ClientID:     cfg.OAuth.ClientID,
		ClientSecret: cfg.OAuth.ClientSecret,
		RedirectURI:  cfg.OAuth.RedirectURI,
		Scopes:       cfg.OAuth.Scopes,
		AuthURL:      cfg.OAuth.AuthURL,
		TokenURL:     cfg.OAuth.TokenURL,
	}, store)
}

// AuthorizationURL returns the consent URL the user must visit to
// authorize the application. State is echoed back on the redirect.
func (s *Session) AuthorizationURL(state string, opts ...oauth2.AuthCodeOption) string {
	if s == nil {
		return ""
	}
	return s.oauth.AuthCodeURL(strings.TrimSpace(state), opts...)
}

// Exchange trades an authorization code for a token, installs it as the
// session's current token, and persists it when a store is configured.
func (s *Session) Exchange(ctx context.Context, code string) (core.Token, error) {
	if s == nil {
		return core.Token{}, fmt.Errorf("auth: session is not configured")
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return core.Token{}, fmt.Errorf("auth: authorization code is required")
	}

	issued, err := s.oauth.Exchange(s.oauthContext(ctx), code)
	if err != nil {
		return core.Token{}, fmt.Errorf("auth: exchange authorization code: %w", err)
	}

	s.mu.Lock()
	s.current = issued
	s.mu.Unlock()

	token := s.tokenFromOAuth2(issued)
	if err := s.persist(ctx, token); err != nil {
		return core.Token{}, err
	}
	return token, nil
}

// Restore loads the most recent token from the store and installs it as
// the session's current token. It reports false when the store holds no
// token yet.
func (s *Session) Restore(ctx context.Context) (bool, error) {
	if s == nil {
		return false, fmt.Errorf("auth: session is not configured")
	}
	if s.store == nil {
		return false, nil
	}
	token, found, err := s.store.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("auth: restore session token: %w", err)
	}
	if !found || token.IsZero() {
		return false, nil
	}
	s.mu.Lock()
	s.current = oauth2FromToken(token)
	s.mu.Unlock()
	return true, nil
}

// SetToken installs a token obtained out of band and persists it.
func (s *Session) SetToken(ctx context.Context, token core.Token) error {
	if s == nil {
		return fmt.Errorf("auth: session is not configured")
	}
	if token.IsZero() {
		return fmt.Errorf("auth: session token is required")
	}
	s.mu.Lock()
	s.current = oauth2FromToken(token)
	s.mu.Unlock()
	return s.persist(ctx, token)
}

// Token returns the session's current token, refreshing it first when
// it has expired. Refreshed tokens are persisted before they are
// returned.
func (s *Session) Token(ctx context.Context) (core.Token, error) {
	tok, err := s.freshToken(ctx)
	if err != nil {
		return core.Token{}, err
	}
	return s.tokenFromOAuth2(tok), nil
}

// Authorized reports whether the session currently holds a token.
func (s *Session) Authorized() bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil && s.current.AccessToken != ""
}

// Do executes an HTTP request with the session's bearer token attached,
// refreshing the token first when needed. Session satisfies the REST
// adapter's HTTPDoer contract.
func (s *Session) Do(req *http.Request) (*http.Response, error) {
	if s == nil {
		return nil, fmt.Errorf("auth: session is not configured")
	}
	if req == nil {
		return nil, fmt.Errorf("auth: request is required")
	}
	tok, err := s.freshToken(req.Context())
	if err != nil {
		return nil, err
	}
	authorized := req.Clone(req.Context())
	tok.SetAuthHeader(authorized)
	return s.httpClient.Do(authorized)
}

func (s *Session) freshToken(ctx context.Context) (*oauth2.Token, error) {
	if s == nil {
		return nil, fmt.Errorf("auth: session is not configured")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil && s.store != nil {
		stored, found, err := s.store.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("auth: load session token: %w", err)
		}
		if found && !stored.IsZero() {
			s.current = oauth2FromToken(stored)
		}
	}
	if s.current == nil || s.current.AccessToken == "" {
		return nil, fmt.Errorf("auth: session is not authorized; complete the authorization flow first")
	}
	if s.current.Valid() {
		return s.current, nil
	}
	if s.current.RefreshToken == "" {
		return nil, fmt.Errorf("auth: session token expired and no refresh token is available")
	}

	refreshed, err := s.oauth.TokenSource(s.oauthContext(ctx), s.current).Token()
	if err != nil {
		return nil, fmt.Errorf("auth: refresh session token: %w", err)
	}
	rotated := refreshed.AccessToken != s.current.AccessToken ||
		refreshed.RefreshToken != s.current.RefreshToken
	s.current = refreshed
	if rotated {
		if err := s.persist(ctx, s.tokenFromOAuth2(refreshed)); err != nil {
			return nil, err
		}
	}
	return refreshed, nil
}

func (s *Session) persist(ctx context.Context, token core.Token) error {
	if s.store == nil {
		return nil
	}
	if err := s.store.Save(ctx, token); err != nil {
		return fmt.Errorf("auth: persist session token: %w", err)
	}
	return nil
}

// oauthContext pins the session's HTTP client onto the context so the
// oauth2 package uses it for token endpoint calls.
func (s *Session) oauthContext(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)
}

func (s *Session) tokenFromOAuth2(tok *oauth2.Token) core.Token {
	if tok == nil {
		return core.Token{}
	}
	token := core.Token{
		TokenType:    strings.TrimSpace(tok.TokenType),
		AccessToken:  strings.TrimSpace(tok.AccessToken),
		RefreshToken: strings.TrimSpace(tok.RefreshToken),
		Scopes:       append([]string(nil), s.config.Scopes...),
	}
	if token.TokenType == "" {
		token.TokenType = "Bearer"
	}
	if !tok.Expiry.IsZero() {
		expiry := tok.Expiry.UTC()
		token.Expiry = &expiry
	}
	return token
}

func oauth2FromToken(token core.Token) *oauth2.Token {
	tok := &oauth2.Token{
		TokenType:    token.TokenType,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
	}
	if token.Expiry != nil {
		tok.Expiry = token.Expiry.UTC()
	}
	return tok
}

func normalizeScopes(values []string) []string {
	normalized := make([]string, 0, len(values))
	seen := map[string]struct{}{}
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		normalized = append(normalized, trimmed)
	}
	return normalized
}
