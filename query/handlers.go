package query

import (
	"context"

	"github.com/goliatone/go-eaccounting/model"
)

type CustomerReader interface {
	GetCustomer(ctx context.Context, id string) (*model.Customer, error)
}

type ReferenceReader interface {
	ListTermsOfPayment(ctx context.Context, filters map[string]string) ([]*model.TermsOfPayment, error)
	ListDeliveryMethods(ctx context.Context, filters map[string]string) ([]*model.DeliveryMethod, error)
	ListDeliveryTerms(ctx context.Context, filters map[string]string) ([]*model.DeliveryTerms, error)
}

type GetCustomerQuery struct {
	reader CustomerReader
}

func NewGetCustomerQuery(reader CustomerReader) *GetCustomerQuery {
	return &GetCustomerQuery{reader: reader}
}

func (q *GetCustomerQuery) Query(ctx context.Context, msg GetCustomerMessage) (*model.Customer, error) {
	if q == nil || q.reader == nil {
		return nil, queryDependencyError("query: customer reader is required")
	}
	return q.reader.GetCustomer(ctx, msg.CustomerID)
}

type ListTermsOfPaymentQuery struct {
	reader ReferenceReader
}

func NewListTermsOfPaymentQuery(reader ReferenceReader) *ListTermsOfPaymentQuery {
	return &ListTermsOfPaymentQuery{reader: reader}
}

func (q *ListTermsOfPaymentQuery) Query(ctx context.Context, msg ListTermsOfPaymentMessage) ([]*model.TermsOfPayment, error) {
	if q == nil || q.reader == nil {
		return nil, queryDependencyError("query: reference reader is required")
	}
	return q.reader.ListTermsOfPayment(ctx, msg.Filters)
}

type ListDeliveryMethodsQuery struct {
	reader ReferenceReader
}

func NewListDeliveryMethodsQuery(reader ReferenceReader) *ListDeliveryMethodsQuery {
	return &ListDeliveryMethodsQuery{reader: reader}
}

func (q *ListDeliveryMethodsQuery) Query(ctx context.Context, msg ListDeliveryMethodsMessage) ([]*model.DeliveryMethod, error) {
	if q == nil || q.reader == nil {
		return nil, queryDependencyError("query: reference reader is required")
	}
	return q.reader.ListDeliveryMethods(ctx, msg.Filters)
}

type ListDeliveryTermsQuery struct {
	reader ReferenceReader
}

func NewListDeliveryTermsQuery(reader ReferenceReader) *ListDeliveryTermsQuery {
	return &ListDeliveryTermsQuery{reader: reader}
}

func (q *ListDeliveryTermsQuery) Query(ctx context.Context, msg ListDeliveryTermsMessage) ([]*model.DeliveryTerms, error) {
	if q == nil || q.reader == nil {
		return nil, queryDependencyError("query: reference reader is required")
	}
	return q.reader.ListDeliveryTerms(ctx, msg.Filters)
}
