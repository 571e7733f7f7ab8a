package syscalls

import (
	"slices"
	"testing"
)

func TestSet_Add(t *testing.T) {
	s := NewSet()

	s.Add("read")
	s.Add("read")
	s.Add("")
	if s.Len() != 1 {
		t.Errorf("Len() = %d; expected 1", s.Len())
	}
	if !s.Has("read") {
		t.Errorf("Has(\"read\") = false; expected true")
	}
	if s.Has("") {
		t.Errorf("Has(\"\") = true; expected empty name to be ignored")
	}
}

func TestSet_Difference(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []string
		expected []string
	}{
		{"Disjoint", []string{"openat"}, []string{"read"}, []string{"openat"}},
		{"Subset", []string{"read"}, []string{"read", "write"}, []string{}},
		{"Both empty", nil, nil, []string{}},
		{"Partial", []string{"read", "openat", "mmap"}, []string{"read"}, []string{"mmap", "openat"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := NewSet(test.a...).Difference(NewSet(test.b...)).Sorted()
			if !slices.Equal(got, test.expected) {
				t.Errorf("Difference = %v; expected %v", got, test.expected)
			}
		})
	}
}

func TestSet_Sorted(t *testing.T) {
	s := NewSet("write", "exit_group", "brk", "write")
	expected := []string{"brk", "exit_group", "write"}
	if got := s.Sorted(); !slices.Equal(got, expected) {
		t.Errorf("Sorted() = %v; expected %v", got, expected)
	}
}
