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

type userRequest struct {
	User *model.User `json:"user" validate:"required"`
}

func CreateUser(service *store.User, f factory.Factory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		uid, ok := verifiedUID(r)
		if !ok {
			response.Unauthorized().Send(ctx, w)
			return
		}

		var req userRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Errorf(ctx, "createUser: error unmarshalling request body: %+v", err)
			response.BadRequest("invalid request body", "").Send(ctx, w)
			return
		}

		if err := validate.Struct(req); err != nil {
			response.InvalidData(fmt.Sprintf("createUser: invalid request: %+v", err)).Send(ctx, w)
			return
		}

		// The stored auth id is always the verified one.
		req.User.AuthID = uid

		created, err := service.Create(ctx, f.DB(ctx), req.User)
		if err != nil {
			logger.Errorf(ctx, "createUser: unable to create user: %+v", err)
			response.FromError(err).Send(ctx, w)
			return
		}

		response.SuccessResponse{
			Data:       &response.Data{User: created},
			StatusCode: http.StatusCreated,
		}.Send(w)
	}
}

func GetUser(service *store.User, f factory.Factory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := mux.Vars(r)["userID"]

		user, err := service.GetByID(ctx, f.DB(ctx), userID)
		if err != nil {
			logger.Errorf(ctx, "getUser: unable to get user: %+v", err)
			response.FromError(err).Send(ctx, w)
			return
		}

		response.SuccessResponse{
			Data:       &response.Data{User: user},
			StatusCode: http.StatusOK,
		}.Send(w)
	}
}

func UpdateUser(service *store.User, f factory.Factory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		authID := mux.Vars(r)["authID"]

		if _, ok := verifiedUID(r); !ok {
			response.Unauthorized().Send(ctx, w)
			return
		}

		var req userRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Errorf(ctx, "updateUser: error unmarshalling request body: %+v", err)
			response.BadRequest("invalid request body", "").Send(ctx, w)
			return
		}

		if err := validate.Struct(req); err != nil {
			response.InvalidData(fmt.Sprintf("updateUser: invalid request: %+v", err)).Send(ctx, w)
			return
		}

		updated, err := service.Update(ctx, f.DB(ctx), authID, req.User)
		if err != nil {
			logger.Errorf(ctx, "updateUser: unable to update user: %+v", err)
			response.FromError(err).Send(ctx, w)
			return
		}

		response.SuccessResponse{
			Data:       &response.Data{User: updated},
			StatusCode: http.StatusOK,
		}.Send(w)
	}
}

func DeleteUser(service *store.User, f factory.Factory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		authID := mux.Vars(r)["authID"]

		if _, ok := verifiedUID(r); !ok {
			response.Unauthorized().Send(ctx, w)
			return
		}

		deleted, err := service.Delete(ctx, f.DB(ctx), authID)
		if err != nil {
			logger.Errorf(ctx, "deleteUser: unable to delete user: %+v", err)
			response.FromError(err).Send(ctx, w)
			return
		}

		response.SuccessResponse{
			Data:       &response.Data{User: deleted},
			StatusCode: http.StatusOK,
		}.Send(w)
	}
}

func ListUserEvents(service *catalog.Service, f factory.Factory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := mux.Vars(r)["userID"]
		limit, page := paging(r)

		events, err := service.GetEventsByUser(ctx, f.DB(ctx), userID, limit, page)
		if err != nil {
			logger.Errorf(ctx, "listUserEvents: unable to list events: %+v", err)
			response.FromError(err).Send(ctx, w)
			return
		}

		response.SuccessResponse{
			Data:       &response.Data{Events: &events},
			StatusCode: http.StatusOK,
		}.Send(w)
	}
}

func ListUserOrders(service *catalog.Service, f factory.Factory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := mux.Vars(r)["userID"]
		limit, page := paging(r)

		orders, err := service.GetOrdersByUser(ctx, f.DB(ctx), userID, limit, page)
		if err != nil {
			logger.Errorf(ctx, "listUserOrders: unable to list orders: %+v", err)
			response.FromError(err).Send(ctx, w)
			return
		}

		response.SuccessResponse{
			Data:       &response.Data{Orders: &orders},
			StatusCode: http.StatusOK,
		}.Send(w)
	}
}
