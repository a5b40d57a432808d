// Package core contains the canonical eAccounting client contracts: resource
// descriptors, request builders, the Service dispatcher, token persistence
// contracts, and the error taxonomy. Model and adapter packages depend on
// core; core must not depend on model-specific or transport-specific code.
package core
