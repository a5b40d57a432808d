package eaccounting

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-eaccounting/auth"
	"github.com/goliatone/go-eaccounting/core"
	"github.com/goliatone/go-eaccounting/model"
	filestore "github.com/goliatone/go-eaccounting/store/file"
	"github.com/goliatone/go-eaccounting/transport"
	"golang.org/x/oauth2"
)

// Client is the assembled eAccounting API client: an OAuth session, a
// REST transport bound to it, and the typed resource operations.
type Client struct {
	service *core.Service
	session *auth.Session
	store   core.TokenStore
}

// New builds a client with the default wiring: a file-backed token
// store when the config names a token path, an OAuth session over it,
// and a REST adapter that sends requests through the session.
func New(cfg Config, opts ...Option) (*Client, error) {
	var store core.TokenStore
	if path := strings.TrimSpace(cfg.TokenPath); path != "" {
		fileStore, err := filestore.New(path, nil)
		if err != nil {
			return nil, err
		}
		store = fileStore
	}
	return NewWithStore(cfg, store, opts...)
}

// NewWithStore builds a client persisting tokens through the given
// store. Pass nil to keep tokens in memory only.
func NewWithStore(cfg Config, store core.TokenStore, opts ...Option) (*Client, error) {
	session, err := auth.SessionFromConfig(cfg, store)
	if err != nil {
		return nil, err
	}
	return NewWithSession(cfg, session, store, opts...)
}

// NewWithSession builds a client around an existing OAuth session.
func NewWithSession(cfg Config, session *auth.Session, store core.TokenStore, opts ...Option) (*Client, error) {
	if session == nil {
		return nil, fmt.Errorf("eaccounting: session is required")
	}

	serviceOpts := make([]Option, 0, len(opts)+2)
	serviceOpts = append(serviceOpts, WithTransport(transport.NewRESTAdapter(session)))
	if store != nil {
		serviceOpts = append(serviceOpts, WithTokenStore(store))
	}
	serviceOpts = append(serviceOpts, opts...)

	service, err := core.NewService(cfg, serviceOpts...)
	if err != nil {
		return nil, err
	}

	return &Client{service: service, session: session, store: store}, nil
}

// Service exposes the underlying dispatch service.
func (c *Client) Service() *core.Service {
	if c == nil {
		return nil
	}
	return c.service
}

// Session exposes the OAuth session driving the client's transport.
func (c *Client) Session() *auth.Session {
	if c == nil {
		return nil
	}
	return c.session
}

// AuthorizationURL returns the consent URL for the authorization-code
// flow.
func (c *Client) AuthorizationURL(state string, opts ...oauth2.AuthCodeOption) string {
	if c == nil || c.session == nil {
		return ""
	}
	return c.session.AuthorizationURL(state, opts...)
}

// Authorize completes the authorization-code flow and persists the
// resulting token.
func (c *Client) Authorize(ctx context.Context, code string) (Token, error) {
	if c == nil || c.session == nil {
		return Token{}, fmt.Errorf("eaccounting: client session is not configured")
	}
	return c.session.Exchange(ctx, code)
}

// Restore loads a previously persisted token into the session. It
// reports false when no token has been stored yet.
func (c *Client) Restore(ctx context.Context) (bool, error) {
	if c == nil || c.session == nil {
		return false, fmt.Errorf("eaccounting: client session is not configured")
	}
	return c.session.Restore(ctx)
}

// GetCustomer fetches a customer by id.
func (c *Client) GetCustomer(ctx context.Context, id string) (*model.Customer, error) {
	return core.Get[model.Customer](ctx, c.Service(), id)
}

// CreateCustomer posts a new customer and refreshes it with the
// server-assigned fields.
func (c *Client) CreateCustomer(ctx context.Context, customer *model.Customer) error {
	return c.Service().Add(ctx, customer)
}

// UpdateCustomer puts the customer's current state and refreshes it
// with the server response.
func (c *Client) UpdateCustomer(ctx context.Context, customer *model.Customer) error {
	return c.Service().Update(ctx, customer)
}

// ListTermsOfPayment lists the payment terms configured for the
// company.
func (c *Client) ListTermsOfPayment(ctx context.Context, filters map[string]string) ([]*model.TermsOfPayment, error) {
	return core.List[model.TermsOfPayment](ctx, c.Service(), filters)
}

// GetTermsOfPayment fetches a single payment term by id.
func (c *Client) GetTermsOfPayment(ctx context.Context, id string) (*model.TermsOfPayment, error) {
	return core.Get[model.TermsOfPayment](ctx, c.Service(), id)
}

// ListDeliveryMethods lists the delivery methods configured for the
// company.
func (c *Client) ListDeliveryMethods(ctx context.Context, filters map[string]string) ([]*model.DeliveryMethod, error) {
	return core.List[model.DeliveryMethod](ctx, c.Service(), filters)
}

// GetDeliveryMethod fetches a single delivery method by id.
func (c *Client) GetDeliveryMethod(ctx context.Context, id string) (*model.DeliveryMethod, error) {
	return core.Get[model.DeliveryMethod](ctx, c.Service(), id)
}

// ListDeliveryTerms lists the delivery terms configured for the
// company.
func (c *Client) ListDeliveryTerms(ctx context.Context, filters map[string]string) ([]*model.DeliveryTerms, error) {
	return core.List[model.DeliveryTerms](ctx, c.Service(), filters)
}

// GetDeliveryTerms fetches a single delivery term by id.
func (c *Client) GetDeliveryTerms(ctx context.Context, id string) (*model.DeliveryTerms, error) {
	return core.Get[model.DeliveryTerms](ctx, c.Service(), id)
}

// Add sends any wire model through the service. Kept generic so new
// resources compose without client changes.
func (c *Client) Add(ctx context.Context, m core.WireModel) error {
	return c.Service().Add(ctx, m)
}

// Update sends any wire model's current state through the service.
func (c *Client) Update(ctx context.Context, m core.WireModel) error {
	return c.Service().Update(ctx, m)
}

// Remove deletes any wire model through the service.
func (c *Client) Remove(ctx context.Context, m core.WireModel) error {
	return c.Service().Remove(ctx, m)
}
