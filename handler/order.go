package handler

import (
	"encoding/json"
	"evently-catalog-backend/factory"
	"evently-catalog-backend/logger"
	"evently-catalog-backend/model"
	"evently-catalog-backend/response"
	"evently-catalog-backend/store"
	"fmt"
	"net/http"
)

type orderRequest struct {
	Order *model.Order `json:"order" validate:"required"`
}

func CreateOrder(service *store.Order, f factory.Factory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if _, ok := verifiedUID(r); !ok {
			response.Unauthorized().Send(ctx, w)
			return
		}

		var req orderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Errorf(ctx, "createOrder: error unmarshalling request body: %+v", err)
			response.BadRequest("invalid request body", "").Send(ctx, w)
			return
		}

		if err := validate.Struct(req); err != nil {
			response.InvalidData(fmt.Sprintf("createOrder: invalid request: %+v", err)).Send(ctx, w)
			return
		}

		created, err := service.Create(ctx, f.DB(ctx), req.Order)
		if err != nil {
			logger.Errorf(ctx, "createOrder: unable to create order: %+v", err)
			response.FromError(err).Send(ctx, w)
			return
		}

		response.SuccessResponse{
			Data:       &response.Data{Order: created},
			StatusCode: http.StatusCreated,
		}.Send(w)
	}
}
