package core

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	glog "github.com/goliatone/go-logger/glog"
)

// Service executes the request descriptors produced by the resource builders
// and turns vendor responses back into model instances. All operations are
// synchronous request/response round trips; there is no retry or backoff.
type Service struct {
	config          Config
	logger          Logger
	loggerProvider  LoggerProvider
	metricsRecorder MetricsRecorder
	errorMapper     ErrorMapper
	transport       TransportAdapter
	tokenStore      TokenStore
	tokenCodec      TokenCodec
}

func NewService(cfg Config, options ...Option) (*Service, error) {
	builder := defaultServiceBuilder(cfg)
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&builder)
	}

	provider, logger := glog.Resolve("eaccounting", builder.loggerProvider, builder.logger)
	logger = glog.Ensure(logger)
	if provider != nil {
		if named := provider.GetLogger("eaccounting"); named != nil {
			logger = glog.Ensure(named)
		}
	}
	if builder.metricsRecorder == nil {
		builder.metricsRecorder = NopMetricsRecorder{}
	}
	if builder.errorMapper == nil {
		builder.errorMapper = defaultErrorMapper
	}
	if builder.tokenCodec == nil {
		builder.tokenCodec = JSONTokenCodec{}
	}
	if builder.configProvider == nil {
		builder.configProvider = NewCfgxConfigProvider(nil)
	}
	if builder.optionsResolver == nil {
		builder.optionsResolver = GoOptionsResolver{}
	}

	defaults := DefaultConfig()
	loaded, err := builder.configProvider.Load(context.Background(), defaults)
	if err != nil {
		return nil, mapBuildError(builder.errorMapper, err)
	}
	finalConfig, err := builder.optionsResolver.Resolve(defaults, loaded, builder.runtimeConfig)
	if err != nil {
		return nil, mapBuildError(builder.errorMapper, err)
	}

	return &Service{
		config:          finalConfig,
		logger:          logger,
		loggerProvider:  provider,
		metricsRecorder: builder.metricsRecorder,
		errorMapper:     builder.errorMapper,
		transport:       builder.transport,
		tokenStore:      builder.tokenStore,
		tokenCodec:      builder.tokenCodec,
	}, nil
}

func (s *Service) Config() Config {
	if s == nil {
		return Config{}
	}
	return s.config
}

func (s *Service) TokenStore() TokenStore {
	if s == nil {
		return nil
	}
	return s.tokenStore
}

func (s *Service) TokenCodec() TokenCodec {
	if s == nil {
		return nil
	}
	return s.tokenCodec
}

// List fetches every item of M matching the filters and decodes each element
// of the JSON array into a fresh instance.
func List[M any, P Wire[M]](ctx context.Context, s *Service, filters map[string]string) ([]*M, error) {
	res := P(new(M)).Resource()
	req, err := BuildListRequest(res, filters)
	if err != nil {
		return nil, err
	}
	response, err := s.execute(ctx, res, OperationList, req)
	if err != nil {
		return nil, err
	}

	payloads := []map[string]any{}
	if err := json.Unmarshal(response.Body, &payloads); err != nil {
		return nil, NewDecodeError(err, res.Name)
	}
	out := make([]*M, 0, len(payloads))
	for _, payload := range payloads {
		item := P(new(M))
		if err := item.DecodeWire(payload); err != nil {
			return nil, err
		}
		out = append(out, (*M)(item))
	}
	return out, nil
}

// Get fetches a single item of M by its vendor ID.
func Get[M any, P Wire[M]](ctx context.Context, s *Service, id string) (*M, error) {
	res := P(new(M)).Resource()
	req, err := BuildGetRequest(res, id)
	if err != nil {
		return nil, err
	}
	response, err := s.execute(ctx, res, OperationGet, req)
	if err != nil {
		return nil, err
	}

	item := P(new(M))
	if err := decodeInto(response.Body, item, res); err != nil {
		return nil, err
	}
	return (*M)(item), nil
}

// Add stores m with the vendor and refresh-decodes the response back into m
// so server-assigned fields, the identity included, populate the caller's
// instance.
func (s *Service) Add(ctx context.Context, m WireModel) error {
	res := m.Resource()
	req, err := BuildAddRequest(m)
	if err != nil {
		return err
	}
	response, err := s.execute(ctx, res, OperationAdd, req)
	if err != nil {
		return err
	}
	return decodeInto(response.Body, m, res)
}

// Update persists m's current field values and refresh-decodes the response
// back into m.
func (s *Service) Update(ctx context.Context, m WireModel) error {
	res := m.Resource()
	req, err := BuildUpdateRequest(m)
	if err != nil {
		return err
	}
	response, err := s.execute(ctx, res, OperationUpdate, req)
	if err != nil {
		return err
	}
	return decodeInto(response.Body, m, res)
}

// Remove deletes m from the vendor. The local instance is left untouched.
func (s *Service) Remove(ctx context.Context, m WireModel) error {
	res := m.Resource()
	req, err := BuildRemoveRequest(m)
	if err != nil {
		return err
	}
	_, err = s.execute(ctx, res, OperationRemove, req)
	return err
}

func (s *Service) execute(ctx context.Context, res Resource, op Operation, req TransportRequest) (TransportResponse, error) {
	if s == nil || s.transport == nil {
		return TransportResponse{}, NewResourceConfigError(res.Name, "service transport is not configured")
	}
	startedAt := time.Now().UTC()
	req.URL = resolveRequestURL(s.config.BaseURL, req.URL)
	if req.Timeout <= 0 && s.config.RequestTimeout > 0 {
		req.Timeout = s.config.RequestTimeout
	}

	response, err := s.transport.Do(ctx, req)
	if err == nil && !isSuccessStatus(response.StatusCode) {
		err = NewRequestFailedError(res.Name, op, response.StatusCode, response.Body)
	}
	s.observeOperation(ctx, startedAt, string(op), err, map[string]any{
		"resource": res.Name,
		"method":   req.Method,
		"url":      req.URL,
	})
	if err != nil {
		return TransportResponse{}, s.mapError(err)
	}
	return response, nil
}

func (s *Service) mapError(err error) error {
	if err == nil {
		return nil
	}
	if s == nil || s.errorMapper == nil {
		return err
	}
	if mapped := s.errorMapper(err); mapped != nil {
		return mapped
	}
	return err
}

func mapBuildError(mapper ErrorMapper, err error) error {
	if err == nil {
		return nil
	}
	if mapper == nil {
		return err
	}
	if mapped := mapper(err); mapped != nil {
		return mapped
	}
	return err
}

func decodeInto(body []byte, m WireModel, res Resource) error {
	payload := map[string]any{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return NewDecodeError(err, res.Name)
	}
	return m.DecodeWire(payload)
}

func isSuccessStatus(status int) bool {
	return status >= 200 && status < 300
}

func resolveRequestURL(baseURL string, requestURL string) string {
	trimmed := strings.TrimSpace(requestURL)
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return trimmed
	}
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return trimmed
	}
	return base + "/" + strings.TrimLeft(trimmed, "/")
}
