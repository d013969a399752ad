package correct

import "testing"

// ---------------------------------------------------------------------------
// TestSetError
// ---------------------------------------------------------------------------

func TestSetError(t *testing.T) {
	t.Parallel()

	tok := Word("orð", nil)
	if tok.Err() != nil {
		t.Fatalf("fresh token carries error %v", tok.Err())
	}
	if tok.ErrorSpan() != 1 {
		t.Errorf("ErrorSpan() = %d before any error, want 1", tok.ErrorSpan())
	}

	first := SpellingError("002", "fyrsta villan", 1)
	if !tok.SetError(first) {
		t.Fatal("SetError rejected the first error")
	}
	if tok.ErrorCode() != "S002" {
		t.Errorf("ErrorCode() = %q, want %q", tok.ErrorCode(), "S002")
	}

	// Later attempts must be ignored: the first writer wins.
	second := UnknownWordError("001", "seinni villan")
	if tok.SetError(second) {
		t.Fatal("SetError overwrote an existing error")
	}
	if tok.Err() != first {
		t.Errorf("Err() = %v, want the first error to stick", tok.Err())
	}

	if tok.SetError(nil) {
		t.Fatal("SetError accepted nil")
	}
}

// ---------------------------------------------------------------------------
// TestCopyErrorFrom
// ---------------------------------------------------------------------------

func TestCopyErrorFrom(t *testing.T) {
	t.Parallel()

	clean := Word("hestur", nil)
	tagged := Word("hestr", nil)
	tagged.SetError(SpellingError("002", "leiðrétt", 1))

	dst := Word("hestur", nil)
	if dst.CopyErrorFrom(clean) {
		t.Fatal("CopyErrorFrom reported an error copied from a clean token")
	}
	if !dst.CopyErrorFrom(clean, nil, tagged) {
		t.Fatal("CopyErrorFrom missed the first tagged token")
	}
	if dst.ErrorCode() != "S002" {
		t.Errorf("ErrorCode() = %q, want %q", dst.ErrorCode(), "S002")
	}

	// An error already present is never overwritten.
	other := Word("annað", nil)
	other.SetError(CompoundError("001", "tvítekning", 1))
	if !dst.CopyErrorFrom(other) {
		t.Fatal("CopyErrorFrom on a tagged destination returned false")
	}
	if dst.ErrorCode() != "S002" {
		t.Errorf("ErrorCode() = %q after second copy, want %q", dst.ErrorCode(), "S002")
	}
}

// ---------------------------------------------------------------------------
// TestErrorCodes
// ---------------------------------------------------------------------------

func TestErrorCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"duplicate removed", CompoundError("001", "", 1), "C001"},
		{"compound split", CompoundError("002", "", 1), "C002"},
		{"split compound united", CompoundError("003", "", 1), "C003"},
		{"unknown word", UnknownWordError("001", ""), "U001"},
		{"unique error", SpellingError("001", "", 2), "S001"},
		{"corrector replacement", SpellingError("002", "", 1), "S002"},
		{"error form", SpellingError("003", "", 1), "S003"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Code(); got != tt.want {
				t.Errorf("Code() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestErrorSpanFloor
// ---------------------------------------------------------------------------

func TestErrorSpanFloor(t *testing.T) {
	t.Parallel()

	if got := SpellingError("001", "", 0).Span(); got != 1 {
		t.Errorf("Span() = %d for zero span, want 1", got)
	}
	if got := SpellingError("001", "", 3).Span(); got != 3 {
		t.Errorf("Span() = %d, want 3", got)
	}
}
