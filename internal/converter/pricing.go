package converter

import (
	"math"
	"strconv"
)

// RoundUpToNine 把价格抬到严格大于原值且以 9 结尾的最小整数
// base = floor(x/10)*10 + 9；base 不大于 x 时再加 10
// 不对已经以 9 结尾的输入做特殊处理：1009 -> 1019
func RoundUpToNine(x float64) int64 {
	base := int64(math.Floor(x/10))*10 + 9
	if float64(base) > x {
		return base
	}
	return base + 10
}

// ComputePrices 计算变体的三个价格字段
// Price 由 Final Price 抬 9 得到；缺失且允许回退时改用 Cost 作基数，否则留空
// Compare-at price 与 Cost per item 原样透传，不做舍入
func ComputePrices(p *Product, opts Options) (price, compareAt, costItem string) {
	basis := p.FinalPrice
	if basis == "" && opts.FallbackPriceToCost {
		basis = p.Cost
	}

	// 负数视同无法解析：字段按缺失处理
	if basis != "" {
		if n, err := strconv.ParseFloat(basis, 64); err == nil && n >= 0 {
			price = strconv.FormatInt(RoundUpToNine(n), 10)
		}
	}

	return price, p.MRP, p.Cost
}
