package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/goliatone/go-eaccounting/core"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// TokenStore persists OAuth tokens as an append-only version chain: each
// Save inserts a new row and marks the previous active row superseded,
// so the token history survives rotations.
type TokenStore struct {
	db    *bun.DB
	repo  repository.Repository[*tokenRecord]
	codec core.TokenCodec
}

// Save appends a new token version and supersedes the current one.
func (s *TokenStore) Save(ctx context.Context, token core.Token) error {
	if s == nil || s.db == nil || s.repo == nil {
		return fmt.Errorf("sqlstore: token store is not configured")
	}
	if token.IsZero() {
		return fmt.Errorf("sqlstore: token is required")
	}

	payload, err := s.codec.Encode(token)
	if err != nil {
		return fmt.Errorf("sqlstore: encode token: %w", err)
	}

	now := time.Now().UTC()
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		nextVersion, versionErr := s.nextVersion(ctx, tx)
		if versionErr != nil {
			return versionErr
		}

		if _, updateErr := tx.NewUpdate().
			Model((*tokenRecord)(nil)).
			Set("status = ?", tokenStatusSuperseded).
			Set("updated_at = ?", now).
			Where("status = ?", tokenStatusActive).
			Exec(ctx); updateErr != nil {
			return updateErr
		}

		record := newTokenRecord(token, payload, s.codec, nextVersion, now)
		if _, createErr := s.repo.CreateTx(ctx, tx, record); createErr != nil {
			return createErr
		}
		return nil
	})
}

// Load returns the latest active token. It reports found=false when no
// token has been saved yet.
func (s *TokenStore) Load(ctx context.Context) (core.Token, bool, error) {
	if s == nil || s.repo == nil {
		return core.Token{}, false, fmt.Errorf("sqlstore: token store is not configured")
	}

	records, _, err := s.repo.List(ctx,
		repository.SelectBy("status", "=", tokenStatusActive),
		repository.OrderBy("version DESC"),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return core.Token{}, false, err
	}
	if len(records) == 0 {
		return core.Token{}, false, nil
	}

	token, err := s.codec.Decode(records[0].Payload)
	if err != nil {
		return core.Token{}, false, fmt.Errorf("sqlstore: decode token payload: %w", err)
	}
	return token, !token.IsZero(), nil
}

// History returns persisted token versions, newest first.
func (s *TokenStore) History(ctx context.Context, limit int) ([]core.Token, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("sqlstore: token store is not configured")
	}
	if limit <= 0 {
		limit = 10
	}

	records, _, err := s.repo.List(ctx,
		repository.OrderBy("version DESC"),
		repository.SelectPaginate(limit, 0),
	)
	if err != nil {
		return nil, err
	}

	tokens := make([]core.Token, 0, len(records))
	for _, record := range records {
		token, decodeErr := s.codec.Decode(record.Payload)
		if decodeErr != nil {
			return nil, fmt.Errorf("sqlstore: decode token payload version %d: %w", record.Version, decodeErr)
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}

func (s *TokenStore) nextVersion(ctx context.Context, tx bun.Tx) (int, error) {
	var maxVersion int
	if err := tx.NewSelect().
		Model((*tokenRecord)(nil)).
		ColumnExpr("COALESCE(MAX(version), 0)").
		Scan(ctx, &maxVersion); err != nil {
		return 0, err
	}
	return maxVersion + 1, nil
}

func newTokenRecord(token core.Token, payload []byte, codec core.TokenCodec, version int, now time.Time) *tokenRecord {
	record := &tokenRecord{
		ID:             uuid.NewString(),
		Version:        version,
		Payload:        payload,
		PayloadFormat:  codec.Format(),
		PayloadVersion: codec.Version(),
		TokenType:      token.TokenType,
		Scopes:         append([]string{}, token.Scopes...),
		Status:         tokenStatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if token.Expiry != nil {
		expiry := token.Expiry.UTC()
		record.ExpiresAt = &expiry
	}
	return record
}
