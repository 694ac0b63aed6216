package response

import (
	"encoding/json"
	"evently-catalog-backend/model"
	"net/http"
)

type SuccessResponse struct {
	Data       *Data `json:"data"`
	StatusCode int   `json:"-"`
}

type Data struct {
	User         *model.User             `json:"user,omitempty"`
	Event        *model.Event            `json:"event,omitempty"`
	EventDetails *model.EventWithDetails `json:"event_details,omitempty"`
	Events       *model.EventPage        `json:"events,omitempty"`
	Category     *model.Category         `json:"category,omitempty"`
	Categories   []model.Category        `json:"categories,omitempty"`
	Order        *model.Order            `json:"order,omitempty"`
	Orders       *model.OrderPage        `json:"orders,omitempty"`
}

func (r SuccessResponse) Send(w http.ResponseWriter) {
	w.WriteHeader(r.StatusCode)
	json.NewEncoder(w).Encode(r)
}
