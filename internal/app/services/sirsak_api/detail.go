package sirsak_api

import (
	"github.com/tidwall/gjson"
)

// ExtractErrorDetail pulls a human readable message out of an error body.
// The API reports errors as {"detail": "..."}, as {"non_field_errors": [...]}
// or as a map of field names to message lists.
func ExtractErrorDetail(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}

	result := gjson.ParseBytes(body)
	for _, path := range []string{"detail", "non_field_errors.0", "message", "error"} {
		value := result.Get(path)
		if value.Exists() && value.String() != "" {
			return value.String()
		}
	}

	if result.IsArray() {
		return result.Get("0").String()
	}

	var detail string
	result.ForEach(func(key, value gjson.Result) bool {
		message := value.String()
		if value.IsArray() {
			message = value.Get("0").String()
		}
		if message == "" {
			return true
		}
		detail = key.String() + ": " + message
		return false
	})
	return detail
}
