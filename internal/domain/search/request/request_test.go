package request

import "testing"

func TestNewNormalizesText(t *testing.T) {
	req, err := New("  birthday  ", " party ", 10, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Query() != "birthday" || req.Filter() != "party" {
		t.Errorf("normalized to %q/%q", req.Query(), req.Filter())
	}
}

func TestNewWhitespaceOnlyIsEmpty(t *testing.T) {
	req, err := New("   ", "\t", 10, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.HasQuery() || req.HasFilter() {
		t.Errorf("whitespace-only input must read as empty, got %q/%q", req.Query(), req.Filter())
	}
}

func TestNewRejectsBadPaging(t *testing.T) {
	if _, err := New("x", "", 0, 0, 0); err == nil {
		t.Error("zero page size accepted")
	}
	if _, err := New("x", "", -5, 0, 0); err == nil {
		t.Error("negative page size accepted")
	}
	if _, err := New("x", "", 10, -1, 0); err == nil {
		t.Error("negative page accepted")
	}
	if _, err := New("x", "", 10, 0, -0.5); err == nil {
		t.Error("negative min score accepted")
	}
}

func TestNewClampsPageSize(t *testing.T) {
	req, err := New("x", "", 10_000, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.PageSize() != MaxPageSize {
		t.Errorf("page size = %d, want clamped to %d", req.PageSize(), MaxPageSize)
	}
}

func TestOffset(t *testing.T) {
	req, err := New("x", "", 25, 3, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Offset() != 75 {
		t.Errorf("offset = %d, want 75", req.Offset())
	}
}
