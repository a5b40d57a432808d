package core

import (
	"encoding/json"
	"net/http"
	"strings"
)

type Operation string

const (
	OperationList   Operation = "list"
	OperationGet    Operation = "get"
	OperationAdd    Operation = "add"
	OperationUpdate Operation = "update"
	OperationRemove Operation = "remove"
)

// Resource is the static per-type metadata a model exposes: the API path
// segment, the wire field holding the vendor-assigned identity, the allowed
// operations, and the API version tag. An empty Path means the type cannot
// build any direct-resource URL. APIVersion is carried for forward
// compatibility and does not participate in URL construction.
type Resource struct {
	Name        string
	Path        string
	IdentityKey string
	APIVersion  string
	Operations  []Operation
}

func (r Resource) Supports(op Operation) bool {
	for _, allowed := range r.Operations {
		if allowed == op {
			return true
		}
	}
	return false
}

func (r Resource) itemPath(id string) string {
	return r.Path + "/" + id
}

// BuildListRequest produces a GET request for the resource collection with
// the given filters as query parameters.
func BuildListRequest(res Resource, filters map[string]string) (TransportRequest, error) {
	if !res.Supports(OperationList) {
		return TransportRequest{}, NewUnsupportedOperationError(res.Name, OperationList)
	}
	if strings.TrimSpace(res.Path) == "" {
		return TransportRequest{}, NewResourceConfigError(res.Name, "resource path is not defined for "+res.Name)
	}
	query := make(map[string]string, len(filters))
	for key, value := range filters {
		if strings.TrimSpace(key) == "" {
			continue
		}
		query[key] = value
	}
	return TransportRequest{
		Method: http.MethodGet,
		URL:    res.Path,
		Query:  query,
	}, nil
}

// BuildGetRequest produces a GET request for a single item by vendor ID.
func BuildGetRequest(res Resource, id string) (TransportRequest, error) {
	if !res.Supports(OperationGet) {
		return TransportRequest{}, NewUnsupportedOperationError(res.Name, OperationGet)
	}
	if strings.TrimSpace(res.Path) == "" {
		return TransportRequest{}, NewResourceConfigError(res.Name, "resource path is not defined for "+res.Name)
	}
	if strings.TrimSpace(id) == "" {
		return TransportRequest{}, NewBadInputError("id is required to get " + res.Name)
	}
	return TransportRequest{
		Method: http.MethodGet,
		URL:    res.itemPath(strings.TrimSpace(id)),
	}, nil
}

// BuildAddRequest produces a POST request carrying the model's wire payload.
func BuildAddRequest(m WireModel) (TransportRequest, error) {
	res := m.Resource()
	if !res.Supports(OperationAdd) {
		return TransportRequest{}, NewUnsupportedOperationError(res.Name, OperationAdd)
	}
	if strings.TrimSpace(res.Path) == "" {
		return TransportRequest{}, NewResourceConfigError(res.Name, "resource path is not defined for "+res.Name)
	}
	body, err := encodeBody(m, res)
	if err != nil {
		return TransportRequest{}, err
	}
	return TransportRequest{
		Method:  http.MethodPost,
		URL:     res.Path,
		Headers: jsonHeaders(),
		Body:    body,
	}, nil
}

// BuildUpdateRequest produces a PUT request addressed by the model's
// identity value.
func BuildUpdateRequest(m WireModel) (TransportRequest, error) {
	res := m.Resource()
	if !res.Supports(OperationUpdate) {
		return TransportRequest{}, NewUnsupportedOperationError(res.Name, OperationUpdate)
	}
	if strings.TrimSpace(res.Path) == "" {
		return TransportRequest{}, NewResourceConfigError(res.Name, "resource path is not defined for "+res.Name)
	}
	if strings.TrimSpace(res.IdentityKey) == "" {
		return TransportRequest{}, NewResourceConfigError(res.Name, "identity key is not defined for "+res.Name)
	}
	id := strings.TrimSpace(m.Identity())
	if id == "" {
		return TransportRequest{}, NewBadInputError("identity value is required to update " + res.Name)
	}
	body, err := encodeBody(m, res)
	if err != nil {
		return TransportRequest{}, err
	}
	return TransportRequest{
		Method:  http.MethodPut,
		URL:     res.itemPath(id),
		Headers: jsonHeaders(),
		Body:    body,
	}, nil
}

// BuildRemoveRequest produces a DELETE request addressed by the model's
// identity value.
func BuildRemoveRequest(m WireModel) (TransportRequest, error) {
	res := m.Resource()
	if !res.Supports(OperationRemove) {
		return TransportRequest{}, NewUnsupportedOperationError(res.Name, OperationRemove)
	}
	if strings.TrimSpace(res.Path) == "" {
		return TransportRequest{}, NewResourceConfigError(res.Name, "resource path is not defined for "+res.Name)
	}
	if strings.TrimSpace(res.IdentityKey) == "" {
		return TransportRequest{}, NewResourceConfigError(res.Name, "identity key is not defined for "+res.Name)
	}
	id := strings.TrimSpace(m.Identity())
	if id == "" {
		return TransportRequest{}, NewBadInputError("identity value is required to remove " + res.Name)
	}
	return TransportRequest{
		Method: http.MethodDelete,
		URL:    res.itemPath(id),
	}, nil
}

func encodeBody(m WireModel, res Resource) ([]byte, error) {
	payload, err := m.EncodeWire()
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, NewDecodeError(err, res.Name)
	}
	return body, nil
}

func jsonHeaders() map[string]string {
	return map[string]string{"Content-Type": "application/json"}
}
