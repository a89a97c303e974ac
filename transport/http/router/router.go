package router

import (
	"viagem/internal/handlers/accommodation"
	"viagem/internal/handlers/booking"
	"viagem/internal/handlers/tour"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Accommodation accommodation.Handler
	Tour          tour.Handler
	Booking       booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Accommodation.Router(routerGroup)
		r.DomainHandlers.Tour.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
