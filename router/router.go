package router

import (
	"context"
	"evently-catalog-backend/catalog"
	"evently-catalog-backend/factory"
	"evently-catalog-backend/handler"
	"evently-catalog-backend/healthcheck"
	"evently-catalog-backend/middleware"
	"evently-catalog-backend/response"
	"evently-catalog-backend/store"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
)

// Router returns the router for all the API handlers.
func Router(ctx context.Context) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.SetCorrelationIDHeader)
	r.Use(middleware.PanicHandler)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.ResourceNotFound(fmt.Sprintf("The requested resource was not found: path: %s, method: %s", req.URL.Path, req.Method), "The requested resource was not found!").Send(req.Context(), w)
	})

	r.Use(middleware.ResponseTimeLogging)
	r.Use(middleware.RequestLogging)
	r.Use(middleware.SetContentTypeHeader)

	f := factory.NewFactory()

	eventStore := store.NewEvent(f.Revalidator(ctx))
	userStore := store.NewUser()
	categoryStore := store.NewCategory()
	orderStore := store.NewOrder()
	catalogService := catalog.New(eventStore, userStore, orderStore)

	r.HandleFunc("/healthcheck", healthcheck.Self).Methods(http.MethodGet)
	baseRouter := r.PathPrefix("/v1").Subrouter()

	userRouter := baseRouter.PathPrefix("/users").Subrouter()
	userRouter.HandleFunc("", handler.CreateUser(userStore, f)).Methods(http.MethodPost)
	userRouter.HandleFunc("/{userID}", handler.GetUser(userStore, f)).Methods(http.MethodGet)
	userRouter.HandleFunc("/{authID}", handler.UpdateUser(userStore, f)).Methods(http.MethodPatch)
	userRouter.HandleFunc("/{authID}", handler.DeleteUser(userStore, f)).Methods(http.MethodDelete)
	userRouter.HandleFunc("/{userID}/events", handler.ListUserEvents(catalogService, f)).Methods(http.MethodGet)
	userRouter.HandleFunc("/{userID}/orders", handler.ListUserOrders(catalogService, f)).Methods(http.MethodGet)

	eventRouter := baseRouter.PathPrefix("/events").Subrouter()
	eventRouter.HandleFunc("", handler.CreateEvent(eventStore, f)).Methods(http.MethodPost)
	eventRouter.HandleFunc("", handler.ListEvents(catalogService, f)).Methods(http.MethodGet)
	eventRouter.HandleFunc("/{eventID}", handler.GetEvent(eventStore, f)).Methods(http.MethodGet)
	eventRouter.HandleFunc("/{eventID}", handler.UpdateEvent(eventStore, f)).Methods(http.MethodPatch)
	eventRouter.HandleFunc("/{eventID}", handler.DeleteEvent(eventStore, f)).Methods(http.MethodDelete)
	eventRouter.HandleFunc("/{eventID}/related", handler.RelatedEvents(eventStore, catalogService, f)).Methods(http.MethodGet)

	categoryRouter := baseRouter.PathPrefix("/categories").Subrouter()
	categoryRouter.HandleFunc("", handler.CreateCategory(categoryStore, f)).Methods(http.MethodPost)
	categoryRouter.HandleFunc("", handler.ListCategories(categoryStore, f)).Methods(http.MethodGet)

	orderRouter := baseRouter.PathPrefix("/orders").Subrouter()
	orderRouter.HandleFunc("", handler.CreateOrder(orderStore, f)).Methods(http.MethodPost)

	return r
}
