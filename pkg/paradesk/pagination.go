package paradesk

// PagedList holds one or more pages of entities plus the list metadata the
// server reports on the list document's root element.
type PagedList[T any] struct {
	// Data is the accumulated entities.
	Data []T

	// Total is the number of records matching the query server-side.
	Total int

	// PageNumber is the page the last call returned.
	PageNumber int

	// PageSize is the server-applied page size.
	PageSize int

	// ResultsReturned is the number of entities in Data.
	ResultsReturned int

	// CallResult describes the last call made while filling the list.
	CallResult CallResult
}

// listEnvelope captures every child element of a list document into T.
type listEnvelope[T any] struct {
	Items []T `xml:",any"`
}

// ParsePage decodes one list document into a page of T. The list metadata
// lives in attributes on the root element; a count-only response carries
// just `total`.
func ParsePage[T any](doc *Document) (PagedList[T], error) {
	var page PagedList[T]

	if doc == nil {
		return page, ErrNoDocument
	}

	page.Total = int(doc.Root().IntAttr("total"))

	if doc.Root().HasAttr("page-size") {
		page.PageNumber = int(doc.Root().IntAttr("page"))
		page.PageSize = int(doc.Root().IntAttr("page-size"))
		page.ResultsReturned = int(doc.Root().IntAttr("results"))
	}

	var envelope listEnvelope[T]

	err := doc.Decode(&envelope)
	if err != nil {
		return page, err
	}

	page.Data = envelope.Items

	return page, nil
}
