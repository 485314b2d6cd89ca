package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/tundex/billtracker/docs" // swagger docs
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)
		r.HandleFunc("/swagger/*", httpSwagger.Handler())

		r.Route("/creditors", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Post("/", h.CreateCreditor)
			r.Get("/", h.Creditors)
			r.Get("/find", h.FindCreditor)
			r.Get("/{creditor_id}", h.Creditor)
			r.Patch("/{creditor_id}", h.UpdateCreditor)
		})

		r.Route("/bills", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Post("/", h.CreateBill)
			r.Get("/", h.Bills)
			r.Get("/{bill_id}", h.Bill)
			r.Delete("/{bill_id}", h.DeleteBill)
			r.Get("/{bill_id}/payments", h.BillPayments)
		})

		r.Route("/payments", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Post("/", h.CreatePayment)
			r.Get("/", h.Payments)
		})
	})

	return mux
}
