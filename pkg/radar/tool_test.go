package radar

import "testing"

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Category
		valid bool
	}{
		{name: "adopt", input: "adopt", want: CategoryAdopt, valid: true},
		{name: "uppercase", input: "TRIAL", want: CategoryTrial, valid: true},
		{name: "mixed case with spaces", input: "  Evaluate ", want: CategoryEvaluate, valid: true},
		{name: "aware", input: "aware", want: CategoryAware, valid: true},
		{name: "unknown", input: "hold", want: Category("hold"), valid: false},
		{name: "empty", input: "", want: Category(""), valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, valid := ParseCategory(tt.input)
			if got != tt.want || valid != tt.valid {
				t.Errorf("ParseCategory(%q) = (%q, %v), want (%q, %v)",
					tt.input, got, valid, tt.want, tt.valid)
			}
		})
	}
}

func TestCategoryIndex(t *testing.T) {
	tests := []struct {
		category Category
		want     int
	}{
		{CategoryAdopt, 0},
		{CategoryTrial, 1},
		{CategoryEvaluate, 2},
		{CategoryAware, 3},
		{Category("hold"), -1},
		{Category(""), -1},
	}

	for _, tt := range tests {
		if got := tt.category.Index(); got != tt.want {
			t.Errorf("Category(%q).Index() = %d, want %d", tt.category, got, tt.want)
		}
	}
}

func TestCategoriesOrder(t *testing.T) {
	got := Categories()
	want := []Category{CategoryAdopt, CategoryTrial, CategoryEvaluate, CategoryAware}

	if len(got) != len(want) {
		t.Fatalf("len(Categories()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// Mutating the returned slice must not affect later calls.
	got[0] = Category("mutated")
	if Categories()[0] != CategoryAdopt {
		t.Error("Categories() returned a shared slice")
	}
}
