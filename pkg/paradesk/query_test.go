package paradesk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQuery_BuildArguments_Defaults(t *testing.T) {
	args := NewQuery().BuildArguments()

	assert.Equal(t, []string{"_startPage_=1"}, args)
}

func TestQuery_BuildArguments_PagingAndFilters(t *testing.T) {
	q := NewQuery().
		AddFilter("Email", CriteriaLike, "smith").
		SortBy("Date_Created", SortDesc)
	q.PageNumber = 3
	q.PageSize = 50

	args := q.BuildArguments()

	assert.Equal(t, []string{
		"Email_like_=smith",
		"_order_=Date_Created_desc_",
		"_startPage_=3",
		"_pageSize_=50",
	}, args)
}

func TestQuery_BuildArguments_EscapesFilterValues(t *testing.T) {
	args := NewQuery().AddFilter("Email", CriteriaEqual, "a&b c").BuildArguments()

	assert.Contains(t, args, "Email_equal_=a%26b+c")
}

func TestQuery_DateFilterUsesServerLayout(t *testing.T) {
	when := time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC)

	args := NewQuery().AddDateFilter("Date_Created", CriteriaMin, when).BuildArguments()

	assert.Contains(t, args, "Date_Created_min_=2026-02-14T09%3A30%3A00Z")
}

func TestQuery_CustomFieldFilterUsesFieldID(t *testing.T) {
	args := NewQuery().AddCustomFieldFilter(312, CriteriaEqual, "gold").BuildArguments()

	assert.Contains(t, args, "FID312_equal_=gold")
}

func TestQuery_LaterFilterReplacesSameFieldAndCriteria(t *testing.T) {
	q := NewQuery().
		AddFilter("Email", CriteriaEqual, "old").
		AddFilter("Email", CriteriaEqual, "new").
		AddFilter("Email", CriteriaLike, "partial")

	args := q.BuildArguments()

	assert.Contains(t, args, "Email_equal_=new")
	assert.NotContains(t, args, "Email_equal_=old")
	assert.Contains(t, args, "Email_like_=partial")
}

func TestQuery_IncludedCustomFields(t *testing.T) {
	args := NewQuery().IncludeCustomField(3, 7, 12).BuildArguments()

	assert.Contains(t, args, "_fields_=3,7,12")
}

func TestQuery_TotalOnlySkipsPaging(t *testing.T) {
	q := NewQuery().AddFilter("Status", CriteriaEqual, "open")
	q.TotalOnly = true
	q.PageSize = 50

	args := q.BuildArguments()

	assert.Equal(t, []string{"Status_equal_=open", "_total_=true"}, args)
}

func TestQuery_MultipleSortKeysKeepOrder(t *testing.T) {
	args := NewQuery().
		SortBy("Last_Name", SortAsc).
		SortBy("First_Name", SortDesc).
		BuildArguments()

	assert.Contains(t, args, "_order_=Last_Name_asc_,First_Name_desc_")
}
