package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/goliatone/go-eaccounting/core"
)

const defaultFileMode = 0o600

// TokenStore persists a single OAuth token as a JSON document on disk.
// It mirrors the on-disk session files the eAccounting CLI tooling
// reads, so a token written here can be shared with other processes.
type TokenStore struct {
	path  string
	codec core.TokenCodec

	mu sync.Mutex
}

// New builds a file-backed token store at path. The codec defaults to
// the JSON token codec when nil.
func New(path string, codec core.TokenCodec) (*TokenStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("filestore: token path is required")
	}
	if codec == nil {
		codec = core.JSONTokenCodec{}
	}
	return &TokenStore{path: path, codec: codec}, nil
}

// Path returns the location the store reads and writes.
func (s *TokenStore) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Load reads the persisted token. A missing file is not an error; it
// reports found=false so callers can start a fresh authorization flow.
func (s *TokenStore) Load(ctx context.Context) (core.Token, bool, error) {
	if s == nil {
		return core.Token{}, false, fmt.Errorf("filestore: token store is not configured")
	}
	if err := ctx.Err(); err != nil {
		return core.Token{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return core.Token{}, false, nil
		}
		return core.Token{}, false, fmt.Errorf("filestore: read token file %s: %w", s.path, err)
	}
	if len(strings.TrimSpace(string(payload))) == 0 {
		return core.Token{}, false, nil
	}

	token, err := s.codec.Decode(payload)
	if err != nil {
		return core.Token{}, false, fmt.Errorf("filestore: decode token file %s: %w", s.path, err)
	}
	return token, !token.IsZero(), nil
}

// Save writes the token atomically: the payload lands in a temp file in
// the same directory and replaces the target with a rename.
func (s *TokenStore) Save(ctx context.Context, token core.Token) error {
	if s == nil {
		return fmt.Errorf("filestore: token store is not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if token.IsZero() {
		return fmt.Errorf("filestore: token is required")
	}

	payload, err := s.codec.Encode(token)
	if err != nil {
		return fmt.Errorf("filestore: encode token: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("filestore: create token directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".token-*")
	if err != nil {
		return fmt.Errorf("filestore: create temp token file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("filestore: write token file: %w", err)
	}
	if err := tmp.Chmod(defaultFileMode); err != nil {
		tmp.Close()
		return fmt.Errorf("filestore: set token file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("filestore: close token file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("filestore: replace token file %s: %w", s.path, err)
	}
	return nil
}

var _ core.TokenStore = (*TokenStore)(nil)
