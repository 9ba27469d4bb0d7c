package utils

import (
	"net/http"
	"sirsak-service/internal/pkg/constvars"
	"sirsak-service/internal/pkg/dto/requests"
	"sirsak-service/internal/pkg/exceptions"
	"strconv"

	"github.com/goccy/go-json"
)

// DecodeAndValidate reads a JSON body into dst and runs struct validation on it.
func DecodeAndValidate(r *http.Request, dst interface{}) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	err = ValidateStruct(dst)
	if err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

func BuildRoomSearchRequest(r *http.Request) *requests.RoomSearch {
	query := r.URL.Query()
	return &requests.RoomSearch{
		Page:     parsePositiveInt(query.Get(constvars.QueryParamPage)),
		Search:   query.Get(constvars.QueryParamSearch),
		Location: query.Get(constvars.QueryParamLocation),
		Capacity: parsePositiveInt(query.Get(constvars.QueryParamCapacity)),
	}
}

func parsePositiveInt(raw string) int {
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0
	}
	return value
}
