package tui

// pager tracks the five-rows-at-a-time raw data walk.
type pager struct {
	total    int
	pageSize int
	offset   int
}

func newPager(total, pageSize int) pager {
	return pager{total: total, pageSize: pageSize}
}

// bounds returns the half-open row range of the current page.
func (p pager) bounds() (start, end int) {
	start = p.offset
	end = p.offset + p.pageSize
	if end > p.total {
		end = p.total
	}
	if start > end {
		start = end
	}
	return start, end
}

// advance moves to the next page; ok is false once past the last row.
func (p pager) advance() (pager, bool) {
	next := p.offset + p.pageSize
	if next >= p.total {
		p.offset = p.total
		return p, false
	}
	p.offset = next
	return p, true
}

func (p pager) exhausted() bool { return p.offset >= p.total }
