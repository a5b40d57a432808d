package core

import (
	"context"
	"time"

	glog "github.com/goliatone/go-logger/glog"
)

type Logger = glog.Logger

type LoggerProvider = glog.LoggerProvider

type FieldsLogger = glog.FieldsLogger

// TransportRequest is the request descriptor produced by the builders in
// resource.go. URL is relative to the Service base URL unless absolute.
type TransportRequest struct {
	Method   string
	URL      string
	Headers  map[string]string
	Query    map[string]string
	Body     []byte
	Metadata map[string]any
	Timeout  time.Duration
}

type TransportResponse struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
	Metadata   map[string]any
}

// TransportAdapter executes a request descriptor against the vendor API.
// Implementations own connection handling and authentication headers.
type TransportAdapter interface {
	Kind() string
	Do(ctx context.Context, req TransportRequest) (TransportResponse, error)
}

// WireModel is the conversion contract every concrete model implements.
// EncodeWire produces the vendor's PascalCase JSON object; DecodeWire
// refreshes the receiver from a decoded payload. Constructor-style decoding
// is provided by the generic Get/List functions, which allocate a fresh
// instance before calling DecodeWire.
type WireModel interface {
	Resource() Resource
	Identity() string
	EncodeWire() (map[string]any, error)
	DecodeWire(payload map[string]any) error
}

// Wire adapts a model value type to its pointer WireModel implementation so
// the generic Get/List helpers can allocate instances.
type Wire[M any] interface {
	*M
	WireModel
}

// TokenStore persists OAuth2 tokens between process runs. Load reports
// found=false when no token has been saved yet; that is a normal condition,
// not an error.
type TokenStore interface {
	Load(ctx context.Context) (Token, bool, error)
	Save(ctx context.Context, token Token) error
}

type MetricsRecorder interface {
	IncCounter(ctx context.Context, name string, value int64, tags map[string]string)
	ObserveHistogram(ctx context.Context, name string, value float64, tags map[string]string)
}
