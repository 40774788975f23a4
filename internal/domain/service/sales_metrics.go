package service

import "pos/internal/domain/entity"

// SalesMetrics records business counters for the register.
type SalesMetrics interface {
	// OrderFinalized records a completed sale.
	OrderFinalized(order entity.Order)

	// CartRejected records a cart or checkout operation refused by validation.
	CartRejected(reason string)
}
