package pagination

// DefaultLimit is the page size New uses when Options.Limit is left at zero.
const DefaultLimit = 20

// Options holds the three fields a Helper is built from.
type Options struct {
	Limit int // Items per page; 0 means DefaultLimit, negative means 0
	Page  int // 1-based page; values below 1 mean the first page
	Total int // Items across all pages; negative means 0
}

// Helper holds pagination state and derives page count, offset and
// navigation from it.
//
// Mutators change the receiver and return it so calls can be chained:
//
//	h.SetLimit(25).SetPage(3).Next()
//
// A Helper is not safe for concurrent mutation. Use Clone to hand out
// independent copies.
type Helper struct {
	limit    int
	page     int
	total    int
	recorder Recorder
}

// New creates a Helper from opts. It never fails: out-of-range values are
// normalized as described on Options. The page is not clamped to the page
// count; use ClosestPage for that.
func New(opts Options) *Helper {
	h := &Helper{
		limit:    opts.Limit,
		page:     opts.Page,
		total:    opts.Total,
		recorder: NewNoOpRecorder(),
	}
	if h.limit == 0 {
		h.limit = DefaultLimit
	}
	if h.limit < 0 {
		h.limit = 0
	}
	if h.page < 1 {
		h.page = 1
	}
	if h.total < 0 {
		h.total = 0
	}
	return h
}

// WithRecorder attaches r to h. A nil r restores the no-op recorder.
func (h *Helper) WithRecorder(r Recorder) *Helper {
	if r == nil {
		r = NewNoOpRecorder()
	}
	h.recorder = r
	return h
}

// Clone returns an independent copy of h sharing its recorder.
func (h *Helper) Clone() *Helper {
	c := *h
	return &c
}

// ClosestPage returns the page within [1, PageCount()] nearest to page.
// When there are no pages at all it returns 1.
func (h *Helper) ClosestPage(page int) int {
	if page < 1 {
		return 1
	}
	if count := h.PageCount(); page > count {
		if count < 1 {
			return 1
		}
		return count
	}
	return page
}

// LastPage returns the number of the last page, which is the page count.
func (h *Helper) LastPage() int {
	return h.PageCount()
}

// Limit returns the number of items per page.
func (h *Helper) Limit() int {
	return h.limit
}

// NextPage returns the page after the current one, or the current page when
// there is none.
func (h *Helper) NextPage() int {
	if h.HasNext() {
		return h.page + 1
	}
	return h.page
}

// Offset returns (page - 1) * limit, never less than 0.
func (h *Helper) Offset() int {
	return CalculateOffset(h.page, h.limit)
}

// Page returns the current page.
func (h *Helper) Page() int {
	return h.page
}

// PageCount returns ceil(total / limit), or 0 when the limit is 0.
func (h *Helper) PageCount() int {
	return CalculateTotalPages(h.total, h.limit)
}

// PreviousPage returns the page before the current one, or the current page
// when there is none.
func (h *Helper) PreviousPage() int {
	if h.HasPrevious() {
		return h.page - 1
	}
	return h.page
}

// Total returns the number of items across all pages.
func (h *Helper) Total() int {
	return h.total
}

// HasNext reports whether a page follows the current one.
func (h *Helper) HasNext() bool {
	return h.page < h.PageCount()
}

// HasPrevious reports whether a page precedes the current one.
func (h *Helper) HasPrevious() bool {
	return h.page > 1
}

// IsPageValid reports whether page lies within [1, PageCount()].
func (h *Helper) IsPageValid(page int) bool {
	return page >= 1 && page <= h.PageCount()
}

// Next moves to the following page. It is a no-op on the last page.
func (h *Helper) Next() *Helper {
	moved := h.HasNext()
	if moved {
		h.page++
	}
	h.recorder.RecordNavigation(DirectionNext, moved)
	return h
}

// Previous moves to the preceding page. It is a no-op on the first page.
func (h *Helper) Previous() *Helper {
	moved := h.HasPrevious()
	if moved {
		h.page--
	}
	h.recorder.RecordNavigation(DirectionPrevious, moved)
	return h
}

// SetLimit sets the number of items per page. Negative values become 0.
// The current page is kept as is.
func (h *Helper) SetLimit(limit int) *Helper {
	if limit < 0 {
		h.recorder.RecordClamp(FieldLimit)
		limit = 0
	}
	h.limit = limit
	return h
}

// SetOffset moves to the page containing offset, so Offset() afterwards is
// offset rounded down to a multiple of the limit. Negative values become 0.
// With a limit of 0 every offset maps to page 1.
func (h *Helper) SetOffset(offset int) *Helper {
	if offset < 0 {
		h.recorder.RecordClamp(FieldOffset)
		offset = 0
	}
	h.page = pageForOffset(offset, h.limit)
	return h
}

// SetPage sets the current page without clamping it to the page count.
func (h *Helper) SetPage(page int) *Helper {
	h.page = page
	return h
}

// SetTotal sets the number of items across all pages. Negative values become 0.
func (h *Helper) SetTotal(total int) *Helper {
	if total < 0 {
		h.recorder.RecordClamp(FieldTotal)
		total = 0
	}
	h.total = total
	return h
}
