// Package pagination converts between page-number and offset/limit addressing.
//
// A Helper tracks three numbers (limit, page, total) and derives everything
// else on demand: page count, offset, next/previous page and validity.
// Invalid input is normalized, never rejected:
//
//	h := pagination.New(pagination.Options{Limit: 10, Page: 5, Total: 100})
//	h.Offset()          // 40
//	h.Next().Offset()   // 50
//	h.ClosestPage(25)   // 10
//
// Params, Config and OffsetStrategy adapt HTTP query parameters and
// deployment configuration to a Helper.
package pagination
