package converter

import "testing"

func TestSlugify_Basic(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Green Printed Night Suit":  "green-printed-night-suit",
		"  Baby Romper (2-Pack)!  ": "baby-romper-2-pack",
		"A  --  B":                  "a-b",
		"":                          "",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Fatalf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSlugify_Deterministic(t *testing.T) {
	t.Parallel()

	title := "Green Printed Night Suit"
	first := Slugify(title)
	for i := 0; i < 10; i++ {
		if got := Slugify(title); got != first {
			t.Fatalf("Slugify not deterministic: %q vs %q", got, first)
		}
	}
}

func TestCleanPrice(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"999":      "999",
		" 999 ":    "999",
		"₹1,299":   "1299",
		"231.5":    "231.5",
		"1000.0":   "1000",
		"":         "",
		"nan":      "",
		"N/A":      "",
	}
	for in, want := range cases {
		if got := CleanPrice(in); got != want {
			t.Fatalf("CleanPrice(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsTruthyCell(t *testing.T) {
	t.Parallel()

	truthy := []string{"1", "yes", "Y", "x", "2", "0.5", "TRUE"}
	for _, v := range truthy {
		if !IsTruthyCell(v) {
			t.Fatalf("IsTruthyCell(%q) = false, want true", v)
		}
	}

	falsy := []string{"", "0", "0.0", "nan", "NaN", "false", "FALSE", "no", "  "}
	for _, v := range falsy {
		if IsTruthyCell(v) {
			t.Fatalf("IsTruthyCell(%q) = true, want false", v)
		}
	}
}

func TestIsValueOne(t *testing.T) {
	t.Parallel()

	// 性别标记列只认恰好为 1 的值
	ones := []string{"1", "1.0", " 1 "}
	for _, v := range ones {
		if !IsValueOne(v) {
			t.Fatalf("IsValueOne(%q) = false, want true", v)
		}
	}

	notOnes := []string{"", "0", "2", "yes", "true", "x", "nan", "11", "0.5"}
	for _, v := range notOnes {
		if IsValueOne(v) {
			t.Fatalf("IsValueOne(%q) = true, want false", v)
		}
	}
}

func TestNormalizeMarker(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"*Boy":            "boy",
		"Girls + Unisex":  "girls+unisex",
		"Boys+Unisex":     "boys+unisex",
		"  * Girl  ":      "girl",
	}
	for in, want := range cases {
		if got := NormalizeMarker(in); got != want {
			t.Fatalf("NormalizeMarker(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeKey(t *testing.T) {
	t.Parallel()

	if got := NormalizeKey("Compare-at price"); got != "compareatprice" {
		t.Fatalf("unexpected key: %q", got)
	}
	if got := NormalizeKey("Product image URL"); got != "productimageurl" {
		t.Fatalf("unexpected key: %q", got)
	}
}
