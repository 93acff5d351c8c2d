package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"grubdash/internal/domain"
	"grubdash/internal/observability"
	"grubdash/internal/service"
)

//go:generate mockgen -source internal/httpapi/httpapi.go -destination=internal/httpapi/httpapi_mock_test.go -package=httpapi

type DishService interface {
	List() []domain.Dish
	Create(in service.DishInput) (domain.Dish, *domain.RequestError)
	Get(id string) (domain.Dish, *domain.RequestError)
	Update(routeID string, in service.DishInput) (domain.Dish, *domain.RequestError)
}

type OrderService interface {
	List() []domain.Order
	Create(ctx context.Context, in service.OrderInput) (domain.Order, *domain.RequestError)
	Get(id string) (domain.Order, *domain.RequestError)
	Update(ctx context.Context, routeID string, in service.OrderInput) (domain.Order, *domain.RequestError)
	Delete(ctx context.Context, id string) *domain.RequestError
}

type Server struct {
	dishes  DishService
	orders  OrderService
	router  *chi.Mux
	logger  *zap.Logger
	metrics observability.Metrics
}

func New(dishes DishService, orders OrderService, logger *zap.Logger, metrics observability.Metrics) *Server {
	s := &Server{
		dishes:  dishes,
		orders:  orders,
		router:  chi.NewRouter(),
		logger:  logger,
		metrics: metrics,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		ServerTimingApp(s.metrics),
	)

	// Set before the subrouters are mounted so they inherit it.
	s.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		s.respondError(w, &domain.RequestError{
			Status:  http.StatusMethodNotAllowed,
			Message: "method not allowed",
		})
	})

	s.router.Route("/dishes", func(r chi.Router) {
		r.Get("/", s.listDishes)
		r.Post("/", s.createDish)
		r.Get("/{dishId}", s.getDish)
		r.Put("/{dishId}", s.updateDish)
	})

	s.router.Route("/orders", func(r chi.Router) {
		r.Get("/", s.listOrders)
		r.Post("/", s.createOrder)
		r.Get("/{orderId}", s.getOrder)
		r.Put("/{orderId}", s.updateOrder)
		r.Delete("/{orderId}", s.deleteOrder)
	})
}

// envelope is the success wire shape; failures use errorBody instead.
type envelope struct {
	Data any `json:"data"`
}

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) respondData(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(envelope{Data: v}); err != nil {
		s.logger.Error("encode response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, rerr *domain.RequestError) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(rerr.Status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: rerr.Message})
}

// decodeData unwraps the {"data": {...}} envelope create/update bodies
// arrive in.
func decodeData[T any](r *http.Request) (T, error) {
	var body struct {
		Data T `json:"data"`
	}
	err := json.NewDecoder(r.Body).Decode(&body)
	return body.Data, err
}

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	return srv.ListenAndServe()
}

func (s *Server) Handler() http.Handler { return s.router }
