package query

import (
	gocmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-eaccounting/model"
)

var (
	_ gocmd.Querier[GetCustomerMessage, *model.Customer]                  = (*GetCustomerQuery)(nil)
	_ gocmd.Querier[ListTermsOfPaymentMessage, []*model.TermsOfPayment]   = (*ListTermsOfPaymentQuery)(nil)
	_ gocmd.Querier[ListDeliveryMethodsMessage, []*model.DeliveryMethod]  = (*ListDeliveryMethodsQuery)(nil)
	_ gocmd.Querier[ListDeliveryTermsMessage, []*model.DeliveryTerms]     = (*ListDeliveryTermsQuery)(nil)
)
