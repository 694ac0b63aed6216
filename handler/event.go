package handler

import (
	"encoding/json"
	"evently-catalog-backend/catalog"
	"evently-catalog-backend/factory"
	"evently-catalog-backend/logger"
	"evently-catalog-backend/model"
	"evently-catalog-backend/response"
	"evently-catalog-backend/store"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
)

type eventRequest struct {
	Event       *model.Event `json:"event" validate:"required"`
	OrganizerID string       `json:"organizer_id" validate:"required"`
	Path        string       `json:"path"`
}

func CreateEvent(service *store.Event, f factory.Factory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if _, ok := verifiedUID(r); !ok {
			response.Unauthorized().Send(ctx, w)
			return
		}

		var req eventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Errorf(ctx, "createEvent: error unmarshalling request body: %+v", err)
			response.BadRequest("invalid request body", "").Send(ctx, w)
			return
		}

		if err := validate.Struct(req); err != nil {
			response.InvalidData(fmt.Sprintf("createEvent: invalid request: %+v", err)).Send(ctx, w)
			return
		}

		created, err := service.Create(ctx, f.DB(ctx), req.Event, req.OrganizerID, req.Path)
		if err != nil {
			logger.Errorf(ctx, "createEvent: unable to create event: %+v", err)
			response.FromError(err).Send(ctx, w)
			return
		}

		response.SuccessResponse{
			Data:       &response.Data{Event: created},
			StatusCode: http.StatusCreated,
		}.Send(w)
	}
}

func GetEvent(service *store.Event, f factory.Factory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		eventID := mux.Vars(r)["eventID"]

		event, err := service.GetByID(ctx, f.DB(ctx), eventID)
		if err != nil {
			logger.Errorf(ctx, "getEvent: unable to get event: %+v", err)
			response.FromError(err).Send(ctx, w)
			return
		}

		response.SuccessResponse{
			Data:       &response.Data{EventDetails: event},
			StatusCode: http.StatusOK,
		}.Send(w)
	}
}

func ListEvents(service *catalog.Service, f factory.Factory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		limit, page := paging(r)

		events := service.GetAllEvents(ctx, f.DB(ctx),
			r.URL.Query().Get("query"),
			r.URL.Query().Get("category"),
			limit, page)

		response.SuccessResponse{
			Data:       &response.Data{Events: &events},
			StatusCode: http.StatusOK,
		}.Send(w)
	}
}

// RelatedEvents lists other events sharing the category. The category can be
// passed explicitly; otherwise it is taken from the event itself.
func RelatedEvents(events *store.Event, service *catalog.Service, f factory.Factory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		eventID := mux.Vars(r)["eventID"]
		limit, page := paging(r)

		categoryID := r.URL.Query().Get("category_id")
		if categoryID == "" {
			event, err := events.GetByID(ctx, f.DB(ctx), eventID)
			if err != nil {
				logger.Errorf(ctx, "relatedEvents: unable to get event: %+v", err)
				response.FromError(err).Send(ctx, w)
				return
			}
			if event.CategoryID != nil {
				categoryID = *event.CategoryID
			}
		}

		related := service.GetRelatedEventsByCategory(ctx, f.DB(ctx), categoryID, eventID, limit, page)

		response.SuccessResponse{
			Data:       &response.Data{Events: &related},
			StatusCode: http.StatusOK,
		}.Send(w)
	}
}

func UpdateEvent(service *store.Event, f factory.Factory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		eventID := mux.Vars(r)["eventID"]

		if _, ok := verifiedUID(r); !ok {
			response.Unauthorized().Send(ctx, w)
			return
		}

		var req eventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Errorf(ctx, "updateEvent: error unmarshalling request body: %+v", err)
			response.BadRequest("invalid request body", "").Send(ctx, w)
			return
		}

		if err := validate.Struct(req); err != nil {
			response.InvalidData(fmt.Sprintf("updateEvent: invalid request: %+v", err)).Send(ctx, w)
			return
		}

		req.Event.EventID = eventID

		updated, err := service.Update(ctx, f.DB(ctx), req.OrganizerID, req.Event, req.Path)
		if err != nil {
			logger.Errorf(ctx, "updateEvent: unable to update event: %+v", err)
			response.FromError(err).Send(ctx, w)
			return
		}

		response.SuccessResponse{
			Data:       &response.Data{Event: updated},
			StatusCode: http.StatusOK,
		}.Send(w)
	}
}

func DeleteEvent(service *store.Event, f factory.Factory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		eventID := mux.Vars(r)["eventID"]

		if _, ok := verifiedUID(r); !ok {
			response.Unauthorized().Send(ctx, w)
			return
		}

		if err := service.Delete(ctx, f.DB(ctx), eventID, r.URL.Query().Get("path")); err != nil {
			logger.Errorf(ctx, "deleteEvent: unable to delete event: %+v", err)
			response.FromError(err).Send(ctx, w)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
