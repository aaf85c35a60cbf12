package model

import (
	"lendit/shared/dto"
	"lendit/shared/failure"
	"time"
)

// SearchStatus is the query-time lens applied to booking listings. It is
// never persisted; the temporal variants are resolved against a single
// `now` snapshot taken once per request.
type SearchStatus string

const (
	SearchAll      SearchStatus = "ALL"
	SearchCurrent  SearchStatus = "CURRENT"
	SearchPast     SearchStatus = "PAST"
	SearchFuture   SearchStatus = "FUTURE"
	SearchWaiting  SearchStatus = "WAITING"
	SearchRejected SearchStatus = "REJECTED"
)

// ParseSearchStatus maps the raw state token onto a SearchStatus. An empty
// token defaults to ALL; anything else unknown is a validation failure, it
// must never silently widen to ALL.
func ParseSearchStatus(raw string) (SearchStatus, error) {
	if raw == "" {
		return SearchAll, nil
	}

	switch s := SearchStatus(raw); s {
	case SearchAll, SearchCurrent, SearchPast, SearchFuture, SearchWaiting, SearchRejected:
		return s, nil
	default:
		return "", failure.BadRequestFromString("Unknown state: UNSUPPORTED_STATUS") //nolint:wrapcheck
	}
}

// searchPredicates is the single predicate table shared by the booker view
// and the owner view, so the two listings cannot drift apart.
var searchPredicates = map[SearchStatus]func(now time.Time) []any{
	SearchAll: func(time.Time) []any {
		return nil
	},
	SearchCurrent: func(now time.Time) []any {
		return []any{
			dto.Filter{Field: FieldStartTime, Operator: dto.FilterOperatorLess, Value: now, Table: TableName},
			dto.Filter{Field: FieldEndTime, ArgName: "end_after", Operator: dto.FilterOperatorGreater, Value: now, Table: TableName},
		}
	},
	SearchPast: func(now time.Time) []any {
		return []any{
			dto.Filter{Field: FieldEndTime, Operator: dto.FilterOperatorLess, Value: now, Table: TableName},
		}
	},
	SearchFuture: func(now time.Time) []any {
		return []any{
			dto.Filter{Field: FieldStartTime, Operator: dto.FilterOperatorGreater, Value: now, Table: TableName},
		}
	},
	SearchWaiting: func(time.Time) []any {
		return []any{
			dto.Filter{Field: FieldStatus, Operator: dto.FilterOperatorEq, Value: string(StatusWaiting), Table: TableName},
		}
	},
	SearchRejected: func(time.Time) []any {
		return []any{
			dto.Filter{Field: FieldStatus, Operator: dto.FilterOperatorEq, Value: string(StatusRejected), Table: TableName},
		}
	},
}

// Filter combines the scope filter (who is asking, and in which role) with
// the predicate for this search status, evaluated against the given `now`.
func (s SearchStatus) Filter(scope dto.Filter, now time.Time) dto.FilterGroup {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters:  []any{scope},
	}

	predicate, ok := searchPredicates[s]
	if !ok {
		return group
	}

	for _, filter := range predicate(now) {
		group.Filters = append(group.Filters, filter)
	}

	return group
}
