package app

import "testing"

func TestNormalizeExtensions(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil stays nil", nil, nil},
		{"dot added", []string{"py"}, []string{".py"}},
		{"lowercased", []string{".PY", ".Go"}, []string{".py", ".go"}},
		{"whitespace trimmed", []string{" .rs "}, []string{".rs"}},
		{"empties dropped", []string{"", "  "}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := normalizeExtensions(tc.in)
			if tc.want == nil {
				if len(got) != 0 && got != nil {
					// An all-empty input yields an empty, non-nil map;
					// either way nothing must be included.
					for ext := range got {
						t.Errorf("unexpected extension %q", ext)
					}
				}
				return
			}
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			for _, ext := range tc.want {
				if !got[ext] {
					t.Errorf("missing %q in %v", ext, got)
				}
			}
		})
	}
}

func TestToSet(t *testing.T) {
	set := toSet([]string{"vendor", ".git", ""})
	if !set["vendor"] || !set[".git"] {
		t.Errorf("unexpected set: %v", set)
	}
	if set[""] {
		t.Error("empty value must not be included")
	}
}
