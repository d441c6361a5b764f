package browse

import "testing"

func TestToggle_Idempotence(t *testing.T) {
	s := NewState()
	s.Toggle(DimDomain, "NLP")

	before := s.Clone()

	s.Toggle(DimYear, "2023")
	s.Toggle(DimYear, "2023")

	if !s.Equal(before) {
		t.Fatalf("toggle twice should restore the selection: got %q, want %q",
			Encode(s), Encode(before))
	}
}

func TestToggle_AddRemove(t *testing.T) {
	s := NewState()

	s.Toggle(DimConference, "ACL")
	if !s.Selected(DimConference, "ACL") {
		t.Fatal("value should be selected after first toggle")
	}

	s.Toggle(DimConference, "ACL")
	if s.Selected(DimConference, "ACL") {
		t.Fatal("value should be deselected after second toggle")
	}
	if s.HasSelection(DimConference) {
		t.Fatal("dimension should be inactive after removing its only value")
	}
}

func TestSelection_SortedCopy(t *testing.T) {
	s := NewState()
	s.Toggle(DimKeyword, "survey")
	s.Toggle(DimKeyword, "benchmark")

	sel := s.Selection(DimKeyword)
	if len(sel) != 2 || sel[0] != "benchmark" || sel[1] != "survey" {
		t.Fatalf("Selection should be sorted, got %v", sel)
	}

	sel[0] = "mutated"
	if !s.Selected(DimKeyword, "benchmark") {
		t.Fatal("mutating the returned slice must not affect the state")
	}
}

func TestReset(t *testing.T) {
	s := NewState()
	s.SetQuery("transformers")
	s.Toggle(DimDomain, "NLP")
	s.Toggle(DimYear, "2024")

	s.Reset()

	if !s.IsEmpty() {
		t.Fatalf("state should be empty after reset, got %q", Encode(s))
	}
	if Encode(s) != "" {
		t.Fatalf("reset state should encode to empty string, got %q", Encode(s))
	}
}

func TestClone_Independent(t *testing.T) {
	s := NewState()
	s.Toggle(DimDomain, "CV")

	c := s.Clone()
	c.Toggle(DimDomain, "NLP")

	if s.Selected(DimDomain, "NLP") {
		t.Fatal("mutating the clone must not affect the original")
	}
	if !c.Selected(DimDomain, "CV") {
		t.Fatal("clone should carry the original selection")
	}
}

func TestEqual(t *testing.T) {
	a := NewState()
	a.SetQuery("bench")
	a.Toggle(DimDomain, "CV")
	a.Toggle(DimDomain, "NLP")

	b := NewState()
	b.SetQuery("bench")
	// Different insertion order, same set.
	b.Toggle(DimDomain, "NLP")
	b.Toggle(DimDomain, "CV")

	if !a.Equal(b) {
		t.Fatal("states with equal sets should be equal regardless of order")
	}

	b.Toggle(DimYear, "2023")
	if a.Equal(b) {
		t.Fatal("states with different selections should not be equal")
	}
}
