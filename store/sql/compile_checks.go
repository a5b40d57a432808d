package sqlstore

import "github.com/goliatone/go-eaccounting/core"

var _ core.TokenStore = (*TokenStore)(nil)
