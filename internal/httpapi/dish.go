package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"grubdash/internal/domain"
	"grubdash/internal/service"
)

func (s *Server) listDishes(w http.ResponseWriter, r *http.Request) {
	s.respondData(w, http.StatusOK, s.dishes.List())
}

func (s *Server) createDish(w http.ResponseWriter, r *http.Request) {
	in, err := decodeData[service.DishInput](r)
	if err != nil {
		s.logger.Error("decode dish payload", zap.Error(err))
		s.respondError(w, domain.BadRequest("bad json"))
		return
	}

	dish, rerr := s.dishes.Create(in)
	if rerr != nil {
		s.respondError(w, rerr)
		return
	}
	s.respondData(w, http.StatusCreated, dish)
}

func (s *Server) getDish(w http.ResponseWriter, r *http.Request) {
	dish, rerr := s.dishes.Get(chi.URLParam(r, "dishId"))
	if rerr != nil {
		s.respondError(w, rerr)
		return
	}
	s.respondData(w, http.StatusOK, dish)
}

func (s *Server) updateDish(w http.ResponseWriter, r *http.Request) {
	in, err := decodeData[service.DishInput](r)
	if err != nil {
		s.logger.Error("decode dish payload", zap.Error(err))
		s.respondError(w, domain.BadRequest("bad json"))
		return
	}

	dish, rerr := s.dishes.Update(chi.URLParam(r, "dishId"), in)
	if rerr != nil {
		s.respondError(w, rerr)
		return
	}
	s.respondData(w, http.StatusOK, dish)
}
