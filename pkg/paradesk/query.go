package paradesk

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Criteria is a filter comparison operator in the vendor's query syntax.
type Criteria string

// Filter criteria.
const (
	CriteriaEqual    Criteria = "_equal_"
	CriteriaNotEqual Criteria = "_notequal_"
	CriteriaLike     Criteria = "_like_"
	CriteriaMin      Criteria = "_min_"
	CriteriaMax      Criteria = "_max_"
)

// SortDirection orders list results.
type SortDirection string

// Sort directions.
const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// dateFormat is the timestamp layout the list endpoints accept.
const dateFormat = "2006-01-02T15:04:05Z"

// Query assembles the argument list for a list call: paging, sorting,
// static-field and custom-field criteria. The zero value asks for the
// first page at the server's default page size.
type Query struct {
	// PageNumber selects the page to fetch, 1-based. 0 means first page.
	PageNumber int

	// PageSize is the number of records per page. 0 uses the server default.
	PageSize int

	// RetrieveAll makes the facades loop through every page until all
	// matching records have been pulled.
	RetrieveAll bool

	// TotalOnly asks the server for the record count alone.
	TotalOnly bool

	// IncludeAllCustomFields makes the facades fetch the module schema
	// first and include every custom field in the list output.
	IncludeAllCustomFields bool

	filters        []queryFilter
	sorts          []string
	includedFields []int64
}

type queryFilter struct {
	field    string
	criteria Criteria
	value    string
}

// NewQuery returns a query for the first page at the default page size.
func NewQuery() *Query {
	return &Query{PageNumber: 1}
}

// AddFilter adds a static-field criteria filter.
func (q *Query) AddFilter(field string, criteria Criteria, value string) *Query {
	q.upsertFilter(queryFilter{field: field, criteria: criteria, value: value})

	return q
}

// AddDateFilter adds a static-field filter with the timestamp layout the
// server expects.
func (q *Query) AddDateFilter(field string, criteria Criteria, value time.Time) *Query {
	return q.AddFilter(field, criteria, value.UTC().Format(dateFormat))
}

// AddCustomFieldFilter adds a criteria filter on a custom field by id.
func (q *Query) AddCustomFieldFilter(fieldID int64, criteria Criteria, value string) *Query {
	q.upsertFilter(queryFilter{field: "FID" + strconv.FormatInt(fieldID, 10), criteria: criteria, value: value})

	return q
}

// SortBy appends a sort key. Multiple calls sort by the first key first.
func (q *Query) SortBy(field string, direction SortDirection) *Query {
	q.sorts = append(q.sorts, fmt.Sprintf("%s_%s_", field, direction))

	return q
}

// IncludeCustomField adds custom fields to the list output by id.
func (q *Query) IncludeCustomField(fieldIDs ...int64) *Query {
	q.includedFields = append(q.includedFields, fieldIDs...)

	return q
}

// A later filter on the same field and criteria replaces the earlier one.
func (q *Query) upsertFilter(f queryFilter) {
	for i, existing := range q.filters {
		if existing.field == f.field && existing.criteria == f.criteria {
			q.filters[i] = f

			return
		}
	}

	q.filters = append(q.filters, f)
}

// BuildArguments renders the query into the flat `name=value` argument
// strings the URL builder appends to a list call.
func (q *Query) BuildArguments() []string {
	var args []string

	for _, f := range q.filters {
		args = append(args, f.field+string(f.criteria)+"="+url.QueryEscape(f.value))
	}

	if len(q.includedFields) > 0 {
		fields := ""

		for i, id := range q.includedFields {
			if i > 0 {
				fields += ","
			}

			fields += strconv.FormatInt(id, 10)
		}

		args = append(args, "_fields_="+fields)
	}

	if len(q.sorts) > 0 {
		order := ""

		for i, s := range q.sorts {
			if i > 0 {
				order += ","
			}

			order += s
		}

		args = append(args, "_order_="+order)
	}

	if q.TotalOnly {
		args = append(args, "_total_=true")

		return args
	}

	if q.PageNumber > 0 {
		args = append(args, "_startPage_="+strconv.Itoa(q.PageNumber))
	}

	if q.PageSize > 0 {
		args = append(args, "_pageSize_="+strconv.Itoa(q.PageSize))
	}

	return args
}
