package converter

import "testing"

func TestRoundUpToNine_Examples(t *testing.T) {
	t.Parallel()

	cases := map[float64]int64{
		999:   1009,
		1000:  1009,
		1005:  1009,
		1009:  1019,
		1019:  1029,
		0:     9,
		1:     9,
		9:     19,
		10:    19,
		231.5: 239,
		579:   589,
	}
	for in, want := range cases {
		if got := RoundUpToNine(in); got != want {
			t.Fatalf("RoundUpToNine(%v) = %d, want %d", in, got, want)
		}
	}
}

func TestRoundUpToNine_Properties(t *testing.T) {
	t.Parallel()

	// 结果严格大于输入、以 9 结尾，且是满足前两条的最小值
	for x := 0; x <= 2000; x++ {
		got := RoundUpToNine(float64(x))
		if got <= int64(x) {
			t.Fatalf("RoundUpToNine(%d) = %d, not strictly greater", x, got)
		}
		if got%10 != 9 {
			t.Fatalf("RoundUpToNine(%d) = %d, does not end in 9", x, got)
		}
		if prev := got - 10; prev > int64(x) {
			t.Fatalf("RoundUpToNine(%d) = %d, but %d also exceeds input", x, got, prev)
		}
	}
}

func TestComputePrices_Standard(t *testing.T) {
	t.Parallel()

	p := &Product{FinalPrice: "999", MRP: "579", Cost: "231.5"}
	price, compareAt, costItem := ComputePrices(p, DefaultOptions())

	if price != "1009" {
		t.Fatalf("price = %q, want 1009", price)
	}
	// MRP 与 Cost 原样透传，不做舍入
	if compareAt != "579" {
		t.Fatalf("compareAt = %q, want 579", compareAt)
	}
	if costItem != "231.5" {
		t.Fatalf("costItem = %q, want 231.5", costItem)
	}
}

func TestComputePrices_FallbackToCost(t *testing.T) {
	t.Parallel()

	p := &Product{MRP: "579", Cost: "231.5"}

	price, _, _ := ComputePrices(p, Options{FallbackPriceToCost: true})
	if price != "239" {
		t.Fatalf("fallback price = %q, want 239", price)
	}

	price, _, _ = ComputePrices(p, Options{FallbackPriceToCost: false})
	if price != "" {
		t.Fatalf("price without fallback = %q, want empty", price)
	}
}

func TestComputePrices_UnparsableIsAbsent(t *testing.T) {
	t.Parallel()

	// 无法解析的价格按缺失处理，不报错
	p := &Product{FinalPrice: "", MRP: "", Cost: ""}
	price, compareAt, costItem := ComputePrices(p, DefaultOptions())
	if price != "" || compareAt != "" || costItem != "" {
		t.Fatalf("expected all empty, got %q %q %q", price, compareAt, costItem)
	}
}
