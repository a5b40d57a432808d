// Package model holds the typed eAccounting entities and their mapping to
// the vendor's PascalCase JSON wire format. Every entity implements the
// core.WireModel conversion contract; decoding normalizes empty strings and
// JSON nulls to unset fields so callers only ever see meaningful values.
package model
