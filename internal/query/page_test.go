package query

import "testing"

func intRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginate(t *testing.T) {
	page := Paginate(intRange(25), 1, 10)
	if page.TotalItems != 25 || page.TotalPages != 3 {
		t.Fatalf("expected 25 items over 3 pages, got %d over %d", page.TotalItems, page.TotalPages)
	}
	if len(page.Items) != 10 || page.Items[0] != 1 || page.Items[9] != 10 {
		t.Errorf("unexpected first page contents")
	}

	page = Paginate(intRange(25), 3, 10)
	if len(page.Items) != 5 || page.Items[0] != 21 {
		t.Errorf("expected final partial page starting at 21, got %d items starting at %v", len(page.Items), page.Items)
	}
}

func TestPaginateClampsOutOfRangePages(t *testing.T) {
	// Past the end clamps to the last page
	page := Paginate(intRange(25), 5, 10)
	if page.Page != 3 {
		t.Errorf("expected clamp to page 3, got %d", page.Page)
	}
	if len(page.Items) != 5 || page.Items[0] != 21 || page.Items[4] != 25 {
		t.Errorf("expected items 21..25, got %v", page.Items)
	}

	// Zero and negative clamp to page 1
	for _, p := range []int{0, -3} {
		page = Paginate(intRange(25), p, 10)
		if page.Page != 1 || page.Items[0] != 1 {
			t.Errorf("Paginate(page=%d) did not clamp to page 1", p)
		}
	}
}

func TestPaginateEmptyInput(t *testing.T) {
	page := Paginate([]int{}, 4, 10)
	if page.Page != 1 || page.TotalPages != 1 || page.TotalItems != 0 {
		t.Errorf("expected page 1 of 1 with nothing, got page %d of %d", page.Page, page.TotalPages)
	}
	if len(page.Items) != 0 {
		t.Errorf("expected no items, got %d", len(page.Items))
	}
}

func TestPaginateDefaultsPageSize(t *testing.T) {
	page := Paginate(intRange(25), 1, 0)
	if page.PageSize != DefaultPageSize {
		t.Errorf("expected default page size %d, got %d", DefaultPageSize, page.PageSize)
	}
	if page.TotalPages != 3 {
		t.Errorf("expected 3 pages, got %d", page.TotalPages)
	}
}

func TestPaginateExactMultiple(t *testing.T) {
	page := Paginate(intRange(20), 2, 10)
	if page.TotalPages != 2 {
		t.Errorf("expected 2 pages, got %d", page.TotalPages)
	}
	if len(page.Items) != 10 || page.Items[9] != 20 {
		t.Errorf("unexpected second page: %v", page.Items)
	}
}
