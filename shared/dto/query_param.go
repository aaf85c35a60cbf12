package dto

import (
	"lendit/shared/constant"
	"lendit/shared/failure"
	"net/http"
	"strconv"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// PageWindow is the offset-based pagination pair used by the listing
// endpoints: from is the index of the first record, size the page length.
type PageWindow struct {
	From int
	Size int
}

// PageWindowFromRequest reads from/size query parameters, applying the
// documented defaults when they are absent. Malformed integers surface the
// respective failure instead of being silently replaced.
func PageWindowFromRequest(r *http.Request) (PageWindow, error) {
	window := PageWindow{
		From: constant.DefaultValueFrom,
		Size: constant.DefaultValueSize,
	}

	queryParams := r.URL.Query()

	if from := queryParams.Get(constant.RequestParamFrom); from != "" {
		fromInt, err := strconv.Atoi(from)
		if err != nil {
			return window, failure.InvalidFromParam
		}

		window.From = fromInt
	}

	if size := queryParams.Get(constant.RequestParamSize); size != "" {
		sizeInt, err := strconv.Atoi(size)
		if err != nil {
			return window, failure.InvalidSizeParam
		}

		window.Size = sizeInt
	}

	return window, nil
}

// Validate enforces the pagination invariants before any query executes.
func (w PageWindow) Validate() error {
	if w.From < 0 {
		return failure.InvalidFromParam
	}

	if w.Size < 1 {
		return failure.InvalidSizeParam
	}

	return nil
}

// ToQueryParams converts the offset window into the page/limit pair the
// repository understands. Offsets are aligned to page boundaries, matching
// the from/size division used by the listing contract.
func (w PageWindow) ToQueryParams(sortBy, sortDir string) QueryParams {
	return QueryParams{
		Page:    w.From/w.Size + 1,
		Limit:   w.Size,
		SortBy:  sortBy,
		SortDir: sortDir,
	}
}
