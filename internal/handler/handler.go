// Package handler exposes the storefront over JSON/HTTP.
package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"storefront-be/internal/auth"
	"storefront-be/internal/cart"
	"storefront-be/internal/checkout"
	"storefront-be/internal/metrics"
	"storefront-be/internal/middleware"
	"storefront-be/internal/order"
	"storefront-be/internal/product"
	"storefront-be/internal/session"
	"storefront-be/internal/shipping"
	"storefront-be/internal/user"
	"storefront-be/internal/verification"
)

type Deps struct {
	Catalog      product.Catalog
	Sessions     session.Store
	Carts        cart.Service
	Users        user.Service
	Verification verification.Service
	Orders       order.Service
	Checkout     checkout.Service
	Shipping     shipping.Tracker
	Tokens       *auth.Tokens
	Metrics      *metrics.Registry

	AdminKey      string
	SessionTTL    time.Duration
	SecureCookies bool
}

type Handler struct {
	Deps
	now func() time.Time
}

func New(d Deps) *Handler {
	return &Handler{Deps: d, now: time.Now}
}

// Mount registers every storefront route on r. Session handling is applied
// here; logging, CORS and token parsing are left to the caller.
func (h *Handler) Mount(r chi.Router) {
	r.Get("/health", h.Health)
	r.Get("/metrics", h.Metrics.Handler())

	r.Group(func(r chi.Router) {
		r.Use(h.SessionMiddleware)

		r.Get("/success", h.PaymentSuccess)
		r.Get("/fail", h.PaymentFail)

		r.Route("/api", func(r chi.Router) {
			r.Get("/products", h.ListProducts)
			r.Get("/products/{slug}", h.GetProduct)
			r.Get("/categories", h.ListCategories)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", h.GetCart)
				r.Post("/items", h.AddCartItem)
				r.Patch("/items/{id}", h.UpdateCartItem)
				r.Delete("/items/{id}", h.RemoveCartItem)
				r.Post("/open", h.OpenCart)
				r.Post("/close", h.CloseCart)
			})

			r.Post("/auth/register", h.Register)
			r.Post("/auth/login", h.Login)
			r.Post("/auth/logout", h.Logout)

			r.Get("/verification", h.GetVerification)
			r.Post("/verification/send", h.SendVerification)
			r.Post("/verification/verify", h.VerifyCode)

			r.Post("/checkout", h.PrepareCheckout)
			r.Post("/payment/confirm", h.ConfirmPayment)

			r.Post("/sms/send", h.SendVerificationSMS)

			r.Get("/shipping/{trackingNumber}", h.TrackShipment)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Get("/users/me", h.Me)
				r.Patch("/users/me", h.UpdateMe)
				r.Get("/orders/me", h.MyOrders)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdminKey(h.AdminKey))
				r.Post("/sms/payment-complete", h.SendPaymentCompleteSMS)
				r.Post("/sms/tracking", h.SendTrackingSMS)
				r.Get("/admin/orders", h.AdminOrders)
				r.Post("/admin/users/consumer-ids", h.BackfillConsumerIDs)
				r.Post("/admin/tracking-numbers", h.GenerateTrackingNumber)
			})
		})
	})
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
