package eaccounting

import (
	"github.com/goliatone/go-eaccounting/core"
)

type Config = core.Config

type OAuthConfig = core.OAuthConfig

type Option = core.Option

type Service = core.Service

type Token = core.Token

type TokenStore = core.TokenStore

type TokenCodec = core.TokenCodec

type TransportAdapter = core.TransportAdapter

type TransportRequest = core.TransportRequest

type TransportResponse = core.TransportResponse

type WireModel = core.WireModel

type Resource = core.Resource

type Operation = core.Operation

var (
	WithLogger          = core.WithLogger
	WithLoggerProvider  = core.WithLoggerProvider
	WithMetricsRecorder = core.WithMetricsRecorder
	WithErrorMapper     = core.WithErrorMapper
	WithTransport       = core.WithTransport
	WithTokenStore      = core.WithTokenStore
	WithTokenCodec      = core.WithTokenCodec
	WithConfigProvider  = core.WithConfigProvider
	WithOptionsResolver = core.WithOptionsResolver
)

func DefaultConfig() Config {
	return core.DefaultConfig()
}

// NewService builds the bare request/dispatch service. Most callers
// want New, which also wires the OAuth session, REST transport, and
// token persistence.
func NewService(cfg Config, opts ...Option) (*Service, error) {
	return core.NewService(cfg, opts...)
}
