package service

import (
	"go.uber.org/zap"

	"grubdash/internal/domain"
	"grubdash/internal/ids"
	"grubdash/internal/observability"
)

type DishStore interface {
	List() []domain.Dish
	Get(id string) (domain.Dish, bool)
	Append(dish domain.Dish)
	Replace(id string, dish domain.Dish) bool
}

type DishCache interface {
	Get(id string) (domain.Dish, bool)
	Set(id string, dish domain.Dish)
}

type Dishes struct {
	store   DishStore
	cache   DishCache
	ids     ids.Generator
	logger  *zap.Logger
	metrics observability.Metrics
}

func NewDishes(store DishStore, cache DishCache, gen ids.Generator, logger *zap.Logger, metrics observability.Metrics) *Dishes {
	return &Dishes{
		store:   store,
		cache:   cache,
		ids:     gen,
		logger:  logger,
		metrics: metrics,
	}
}

func (s *Dishes) List() []domain.Dish {
	return s.store.List()
}

func (s *Dishes) Create(in DishInput) (domain.Dish, *domain.RequestError) {
	if err := runChecks(
		dishHasRequiredFields(in),
		dishHasValidPrice(in),
	); err != nil {
		return domain.Dish{}, err
	}

	dish := in.toDish()
	dish.ID = s.ids.Next()
	s.store.Append(dish)
	s.cache.Set(dish.ID, dish)

	s.logger.Info("dish created",
		zap.String("dish_id", dish.ID),
		zap.String("name", dish.Name),
	)
	return dish, nil
}

func (s *Dishes) Get(id string) (domain.Dish, *domain.RequestError) {
	if dish, ok := s.cache.Get(id); ok {
		s.metrics.IncCacheHit()
		return dish, nil
	}
	s.metrics.IncCacheMiss()

	dish, ok := s.store.Get(id)
	if !ok {
		return domain.Dish{}, domain.NotFound("Dish id not found: %s", id)
	}
	s.cache.Set(dish.ID, dish)
	return dish, nil
}

func (s *Dishes) Update(routeID string, in DishInput) (domain.Dish, *domain.RequestError) {
	if err := runChecks(
		s.dishExists(routeID),
		dishHasRequiredFields(in),
		dishHasValidPrice(in),
		idMatchesRoute("Dish", in.ID, routeID),
	); err != nil {
		return domain.Dish{}, err
	}

	dish := in.toDish()
	dish.ID = routeID
	s.store.Replace(routeID, dish)
	s.cache.Set(routeID, dish)

	s.logger.Info("dish updated", zap.String("dish_id", routeID))
	return dish, nil
}

func (s *Dishes) dishExists(id string) check {
	return func() *domain.RequestError {
		if _, ok := s.store.Get(id); ok {
			return nil
		}
		return domain.NotFound("Dish id not found: %s", id)
	}
}

func dishHasRequiredFields(in DishInput) check {
	return func() *domain.RequestError {
		required := []struct {
			name  string
			value any
		}{
			{"name", in.Name},
			{"description", in.Description},
			{"price", in.Price},
			{"image_url", in.ImageURL},
		}
		for _, f := range required {
			if falsy(f.value) {
				return domain.BadRequest("Dish must include a %s", f.name)
			}
		}
		return nil
	}
}

func dishHasValidPrice(in DishInput) check {
	return func() *domain.RequestError {
		if _, ok := positiveInt(in.Price); !ok {
			return domain.BadRequest("Dish must have a price that is an integer greater than 0")
		}
		return nil
	}
}
