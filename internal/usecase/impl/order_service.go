package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	deliverycontext "pos/internal/delivery/context"
	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/repository"
	"pos/internal/domain/service"
	"pos/internal/errors"
	"pos/internal/state"
	"pos/internal/usecase"

	"go.uber.org/fx"
)

type orderService struct {
	store     *state.Store
	stateRepo repository.StateRepository
	qrService service.QRCodeService
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	Store     *state.Store
	StateRepo repository.StateRepository
	QRService service.QRCodeService
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		store:     params.Store,
		stateRepo: params.StateRepo,
		qrService: params.QRService,
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// ListOrders returns the sales history, newest first
func (s *orderService) ListOrders(ctx context.Context) entity.Orders {
	orders := s.store.GetState().Orders
	if orders == nil {
		return entity.Orders{}
	}
	slices.Reverse(orders)

	return orders
}

func (s *orderService) GetOrder(ctx context.Context, orderNumber string) (*entity.Order, error) {
	orders := s.store.GetState().Orders
	idx := orders.IndexOf(orderNumber)
	if idx < 0 {
		return nil, domainerrors.ErrOrderNotFound.WithDetails(orderNumber)
	}

	return &orders[idx], nil
}

// DeleteOrder removes an order from the history after confirmation
func (s *orderService) DeleteOrder(ctx context.Context, orderNumber string, confirmer service.Confirmer) error {
	if s.store.GetState().Orders.IndexOf(orderNumber) < 0 {
		return domainerrors.ErrOrderNotFound.WithDetails(orderNumber)
	}

	if err := confirm(ctx, confirmer, fmt.Sprintf("Hapus pesanan %s?", orderNumber)); err != nil {
		return err
	}

	var deleted entity.Order
	err := s.store.Mutate(func(cur entity.AppState) (state.Patch, error) {
		idx := cur.Orders.IndexOf(orderNumber)
		if idx < 0 {
			return state.Patch{}, domainerrors.ErrOrderNotFound.WithDetails(orderNumber)
		}
		deleted = cur.Orders[idx]

		orders := slices.Delete(cur.Orders, idx, idx+1)
		s.stateRepo.SaveOrders(ctx, orders)

		return state.Patch{Orders: orders}, nil
	})
	if err != nil {
		return err
	}

	logger := requestLogger(ctx, s.logger)
	logger.Info("Order deleted", slog.String("order_number", orderNumber))

	event := &service.OrderEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		Type:          service.OrderEventDeleted,
		OrderNumber:   deleted.OrderNumber,
		Timestamp:     s.now(),
		TotalAmount:   deleted.TotalAmount,
		PaymentMethod: deleted.PaymentMethod.String(),
		ItemsSold:     deleted.ItemsSold(),
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish order event",
			slog.String("order_number", orderNumber),
			slog.Any("error", err),
		)
	}

	return nil
}

// ReceiptQR renders the receipt QR code of an existing order
func (s *orderService) ReceiptQR(ctx context.Context, orderNumber string) ([]byte, error) {
	if s.store.GetState().Orders.IndexOf(orderNumber) < 0 {
		return nil, domainerrors.ErrOrderNotFound.WithDetails(orderNumber)
	}

	png, err := s.qrService.GenerateReceiptQR(orderNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate receipt QR code")
	}

	return png, nil
}
