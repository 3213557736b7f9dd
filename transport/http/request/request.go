package request

import (
	"cowork/shared/failure"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// IDParam reads a positive integer path parameter.
func IDParam(req *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(chi.URLParam(req, name))

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.BadRequestFromString(name + " must be a positive integer")
	}

	return id, nil
}
