package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"grubdash/internal/domain"
	"grubdash/internal/service"
)

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	s.respondData(w, http.StatusOK, s.orders.List())
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	in, err := decodeData[service.OrderInput](r)
	if err != nil {
		s.logger.Error("decode order payload", zap.Error(err))
		s.respondError(w, domain.BadRequest("bad json"))
		return
	}

	order, rerr := s.orders.Create(r.Context(), in)
	if rerr != nil {
		s.respondError(w, rerr)
		return
	}
	s.respondData(w, http.StatusCreated, order)
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	order, rerr := s.orders.Get(chi.URLParam(r, "orderId"))
	if rerr != nil {
		s.respondError(w, rerr)
		return
	}
	s.respondData(w, http.StatusOK, order)
}

func (s *Server) updateOrder(w http.ResponseWriter, r *http.Request) {
	in, err := decodeData[service.OrderInput](r)
	if err != nil {
		s.logger.Error("decode order payload", zap.Error(err))
		s.respondError(w, domain.BadRequest("bad json"))
		return
	}

	order, rerr := s.orders.Update(r.Context(), chi.URLParam(r, "orderId"), in)
	if rerr != nil {
		s.respondError(w, rerr)
		return
	}
	s.respondData(w, http.StatusOK, order)
}

func (s *Server) deleteOrder(w http.ResponseWriter, r *http.Request) {
	if rerr := s.orders.Delete(r.Context(), chi.URLParam(r, "orderId")); rerr != nil {
		s.respondError(w, rerr)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
