package sqlstore

import (
	"time"

	"github.com/uptrace/bun"
)

const (
	tokenStatusActive     = "active"
	tokenStatusSuperseded = "superseded"
)

type tokenRecord struct {
	bun.BaseModel `bun:"table:oauth_tokens,alias:ot"`

	ID             string     `bun:"id,pk"`
	Version        int        `bun:"version,notnull"`
	Payload        []byte     `bun:"payload,notnull"`
	PayloadFormat  string     `bun:"payload_format,notnull"`
	PayloadVersion int        `bun:"payload_version,notnull"`
	TokenType      string     `bun:"token_type"`
	Scopes         []string   `bun:"scopes,type:jsonb,notnull"`
	ExpiresAt      *time.Time `bun:"expires_at,nullzero"`
	Status         string     `bun:"status,notnull"`
	CreatedAt      time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt      time.Time  `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}
