package converter

import "testing"

func TestSynthesizeTags_Order(t *testing.T) {
	t.Parallel()

	p := &Product{
		Brand:      "Moms home",
		Category:   "Kids Wear",
		Type:       "Night Suit",
		GenderTags: []string{"Boy", "Unisex"},
	}

	got := SynthesizeTags(p, "0-3M")
	want := "Moms home, Kids Wear, Night Suit, 0-3M, Boy, Unisex"
	if got != want {
		t.Fatalf("tags = %q, want %q", got, want)
	}
}

func TestSynthesizeTags_DefaultSizeSkipped(t *testing.T) {
	t.Parallel()

	p := &Product{Brand: "Moms home"}
	if got := SynthesizeTags(p, DefaultSizeLabel); got != "Moms home" {
		t.Fatalf("tags = %q, want %q", got, "Moms home")
	}
}

func TestSynthesizeTags_DedupeCaseInsensitive(t *testing.T) {
	t.Parallel()

	// 品牌与类目同名（大小写不同）：保留首次出现的写法
	p := &Product{
		Brand:      "Newborn",
		Category:   "NEWBORN",
		GenderTags: []string{"Newborn"},
	}

	if got := SynthesizeTags(p, DefaultSizeLabel); got != "Newborn" {
		t.Fatalf("tags = %q, want %q", got, "Newborn")
	}
}

func TestSynthesizeTags_EmptyFieldsSkipped(t *testing.T) {
	t.Parallel()

	p := &Product{Type: "Romper"}
	if got := SynthesizeTags(p, "S"); got != "Romper, S" {
		t.Fatalf("tags = %q", got)
	}
}

func TestDedupeFold(t *testing.T) {
	t.Parallel()

	got := dedupeFold([]string{"Boy", "boy", "Girl", "BOY", "girl", "Unisex"})
	want := []string{"Boy", "Girl", "Unisex"}
	if len(got) != len(want) {
		t.Fatalf("dedupeFold = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("dedupeFold = %v, want %v", got, want)
		}
	}
}
