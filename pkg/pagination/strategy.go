package pagination

// Strategy turns request parameters into query parameters and response
// metadata. Handlers and services depend on it rather than on the offset
// arithmetic directly.
type Strategy interface {
	// CalculateQuery returns the window to fetch for params.
	CalculateQuery(params Params) QueryParams

	// BuildMetadata constructs pagination metadata once the total is known.
	BuildMetadata(params Params, total int) Metadata
}

// QueryParams represents the calculated query parameters for database queries.
type QueryParams struct {
	Offset int
	Limit  int
}

// OffsetStrategy implements offset-based pagination on top of Helper.
// A nil Recorder disables page metrics.
type OffsetStrategy struct {
	Recorder Recorder
}

// CalculateQuery calculates offset and limit for offset-based pagination.
func (s OffsetStrategy) CalculateQuery(params Params) QueryParams {
	h := params.Helper(0)
	if s.Recorder != nil {
		s.Recorder.RecordPage(h.Page())
	}
	return QueryParams{
		Offset: h.Offset(),
		Limit:  h.Limit(),
	}
}

// BuildMetadata constructs pagination metadata for offset-based pagination.
func (s OffsetStrategy) BuildMetadata(params Params, total int) Metadata {
	return params.Helper(total).Metadata()
}
