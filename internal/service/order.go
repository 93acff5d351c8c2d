package service

import (
	"context"

	"go.uber.org/zap"

	"grubdash/internal/domain"
	"grubdash/internal/events"
	"grubdash/internal/ids"
	"grubdash/internal/observability"
)

type OrderStore interface {
	List() []domain.Order
	Get(id string) (domain.Order, bool)
	Append(order domain.Order)
	Replace(id string, order domain.Order) bool
	Remove(id string) bool
}

type OrderCache interface {
	Get(id string) (domain.Order, bool)
	Set(id string, order domain.Order)
	Remove(id string)
}

type Orders struct {
	store   OrderStore
	cache   OrderCache
	ids     ids.Generator
	events  events.Publisher
	logger  *zap.Logger
	metrics observability.Metrics
}

func NewOrders(store OrderStore, cache OrderCache, gen ids.Generator, pub events.Publisher, logger *zap.Logger, metrics observability.Metrics) *Orders {
	return &Orders{
		store:   store,
		cache:   cache,
		ids:     gen,
		events:  pub,
		logger:  logger,
		metrics: metrics,
	}
}

func (s *Orders) List() []domain.Order {
	return s.store.List()
}

// Create stores the submitted status verbatim, whatever it is. Nothing
// forces a fresh order to start out pending.
func (s *Orders) Create(ctx context.Context, in OrderInput) (domain.Order, *domain.RequestError) {
	items, isArray := in.items()
	if err := runChecks(
		orderHasRequiredFields(in),
		orderHasDishes(items, isArray),
		orderDishesHaveValidQty(items),
	); err != nil {
		return domain.Order{}, err
	}

	order := in.toOrder()
	order.ID = s.ids.Next()
	s.store.Append(order)
	s.cache.Set(order.ID, order)
	s.publish(ctx, events.Event{Event: events.OrderCreated, OrderID: order.ID, Status: order.Status})

	s.logger.Info("order created",
		zap.String("order_id", order.ID),
		zap.String("status", order.Status),
		zap.Int("dishes", len(order.Dishes)),
	)
	return order, nil
}

func (s *Orders) Get(id string) (domain.Order, *domain.RequestError) {
	if order, ok := s.cache.Get(id); ok {
		s.metrics.IncCacheHit()
		return order, nil
	}
	s.metrics.IncCacheMiss()

	order, ok := s.store.Get(id)
	if !ok {
		return domain.Order{}, domain.NotFound("Order id not found: %s", id)
	}
	s.cache.Set(order.ID, order)
	return order, nil
}

func (s *Orders) Update(ctx context.Context, routeID string, in OrderInput) (domain.Order, *domain.RequestError) {
	items, isArray := in.items()
	if err := runChecks(
		s.orderExists(routeID),
		orderHasRequiredFields(in),
		orderHasDishes(items, isArray),
		orderDishesHaveValidQty(items),
		orderHasUpdatableStatus(in),
		idMatchesRoute("Order", in.ID, routeID),
	); err != nil {
		return domain.Order{}, err
	}

	order := in.toOrder()
	order.ID = routeID
	s.store.Replace(routeID, order)
	s.cache.Set(routeID, order)
	s.publish(ctx, events.Event{Event: events.OrderUpdated, OrderID: routeID, Status: order.Status})

	s.logger.Info("order updated",
		zap.String("order_id", routeID),
		zap.String("status", order.Status),
	)
	return order, nil
}

func (s *Orders) Delete(ctx context.Context, id string) *domain.RequestError {
	if err := runChecks(
		s.orderExists(id),
		s.orderIsPending(id),
	); err != nil {
		return err
	}

	// A record that vanished between the existence check and here is a
	// no-op; Remove reports it but there is nothing left to undo.
	s.store.Remove(id)
	s.cache.Remove(id)
	s.publish(ctx, events.Event{Event: events.OrderDeleted, OrderID: id})

	s.logger.Info("order deleted", zap.String("order_id", id))
	return nil
}

func (s *Orders) publish(ctx context.Context, ev events.Event) {
	if err := s.events.Publish(ctx, ev); err != nil {
		s.logger.Error("publish order event",
			zap.String("event", ev.Event),
			zap.String("order_id", ev.OrderID),
			zap.Error(err),
		)
	}
}

func (s *Orders) orderExists(id string) check {
	return func() *domain.RequestError {
		if _, ok := s.store.Get(id); ok {
			return nil
		}
		return domain.NotFound("Order id not found: %s", id)
	}
}

func (s *Orders) orderIsPending(id string) check {
	return func() *domain.RequestError {
		if order, ok := s.store.Get(id); ok && order.Status == domain.StatusPending {
			return nil
		}
		return domain.BadRequest("An order cannot be deleted unless it is pending")
	}
}

func orderHasRequiredFields(in OrderInput) check {
	return func() *domain.RequestError {
		if in.DeliverTo == "" {
			return domain.BadRequest("Order must include a deliverTo")
		}
		if in.MobileNumber == "" {
			return domain.BadRequest("Order must include a mobileNumber")
		}
		if !in.dishesPresent() {
			// singular on purpose, unlike the generic field wording
			return domain.BadRequest("Order must include a dish")
		}
		return nil
	}
}

func orderHasDishes(items []OrderItemInput, isArray bool) check {
	return func() *domain.RequestError {
		if !isArray || len(items) == 0 {
			return domain.BadRequest("Order must include at least one dish")
		}
		return nil
	}
}

func orderDishesHaveValidQty(items []OrderItemInput) check {
	return func() *domain.RequestError {
		// When several line items are bad, the last offending index wins.
		invalid := -1
		for i, item := range items {
			if _, ok := positiveInt(item.Quantity); !ok {
				invalid = i
			}
		}
		if invalid >= 0 {
			return domain.BadRequest("Dish %d must have a quantity that is an integer greater than 0", invalid)
		}
		return nil
	}
}

// orderHasUpdatableStatus validates the status of the incoming payload:
// a delivered order is terminal, everything outside the four known states
// is rejected outright.
func orderHasUpdatableStatus(in OrderInput) check {
	return func() *domain.RequestError {
		switch in.Status {
		case domain.StatusPending, domain.StatusPreparing, domain.StatusOutForDelivery:
			return nil
		case domain.StatusDelivered:
			return domain.BadRequest("A delivered order cannot be changed")
		default:
			return domain.BadRequest("Order must have a status of pending, preparing, out-for-delivery, delivered")
		}
	}
}
