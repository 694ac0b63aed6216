package handler

import (
	"encoding/json"
	"evently-catalog-backend/factory"
	"evently-catalog-backend/logger"
	"evently-catalog-backend/response"
	"evently-catalog-backend/store"
	"fmt"
	"net/http"
)

type categoryRequest struct {
	Name string `json:"name" validate:"required"`
}

func CreateCategory(service *store.Category, f factory.Factory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if _, ok := verifiedUID(r); !ok {
			response.Unauthorized().Send(ctx, w)
			return
		}

		var req categoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Errorf(ctx, "createCategory: error unmarshalling request body: %+v", err)
			response.BadRequest("invalid request body", "").Send(ctx, w)
			return
		}

		if err := validate.Struct(req); err != nil {
			response.InvalidData(fmt.Sprintf("createCategory: invalid request: %+v", err)).Send(ctx, w)
			return
		}

		// A nil category means the store swallowed a failure; report it as
		// "not created" rather than "absent".
		category := service.Create(ctx, f.DB(ctx), req.Name)
		if category == nil {
			response.SomethingWrong().Send(ctx, w)
			return
		}

		response.SuccessResponse{
			Data:       &response.Data{Category: category},
			StatusCode: http.StatusCreated,
		}.Send(w)
	}
}

func ListCategories(service *store.Category, f factory.Factory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if name := r.URL.Query().Get("name"); name != "" {
			category, err := service.GetByName(ctx, f.DB(ctx), name)
			if err != nil {
				logger.Errorf(ctx, "listCategories: unable to look up category: %+v", err)
				response.FromError(err).Send(ctx, w)
				return
			}

			response.SuccessResponse{
				Data:       &response.Data{Category: category},
				StatusCode: http.StatusOK,
			}.Send(w)
			return
		}

		categories, err := service.GetAll(ctx, f.DB(ctx))
		if err != nil {
			logger.Errorf(ctx, "listCategories: unable to list categories: %+v", err)
			response.FromError(err).Send(ctx, w)
			return
		}

		response.SuccessResponse{
			Data:       &response.Data{Categories: categories},
			StatusCode: http.StatusOK,
		}.Send(w)
	}
}
