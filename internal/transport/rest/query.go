package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/promptmixer/promptmixer-backend/internal/domain"
)

const (
	defaultSkip  = 0
	defaultLimit = 100
)

// pagination reads skip/limit query parameters. Range validation is left to
// the services; only parse failures are rejected here.
func pagination(r *http.Request) (skip, limit int, err error) {
	skip, err = queryInt(r, "skip", defaultSkip)
	if err != nil {
		return 0, 0, err
	}
	limit, err = queryInt(r, "limit", defaultLimit)
	if err != nil {
		return 0, 0, err
	}
	return skip, limit, nil
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrValidation, name)
	}
	return n, nil
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", domain.ErrValidation, name)
	}
	return id, nil
}
