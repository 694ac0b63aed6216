package handler

import (
	"evently-catalog-backend/config"
	"evently-catalog-backend/firebase"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

var validate = validator.New()

// verifiedUID checks the bearer token on mutating routes. Repositories trust
// the id they are handed; verification happens only here at the edge.
func verifiedUID(r *http.Request) (string, bool) {
	const prefix = "Bearer "

	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, prefix) {
		return "", false
	}

	return firebase.VerifyJWTIDToken(
		strings.TrimPrefix(h, prefix),
		viper.GetString(config.FirebaseProjectID),
		time.Duration(viper.GetInt(config.JWTOfflineInterval))*time.Second)
}

func paging(r *http.Request) (limit, page int64) {
	limit, _ = strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)
	page, _ = strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	if page == 0 {
		page = 1
	}
	return limit, page
}
