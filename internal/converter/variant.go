package converter

// DefaultSizeLabel 没有任何尺码勾选时的占位变体标签
const DefaultSizeLabel = "Default"

// ExpandVariants 将产品展开为变体列表
// 勾选的尺码按表头顺序各生成一个变体；一个都没勾选时生成单个 Default 变体
// handle 仅由标题派生，同一产品的所有变体共享
func ExpandVariants(p *Product, opts Options) []*Variant {
	handle := Slugify(p.Title)

	var labels []string
	for _, s := range p.Sizes {
		if s.Active {
			labels = append(labels, s.Label)
		}
	}
	if len(labels) == 0 {
		labels = []string{DefaultSizeLabel}
	}

	variants := make([]*Variant, 0, len(labels))
	for i, label := range labels {
		v := &Variant{
			Product:   p,
			Handle:    handle,
			SizeLabel: label,
			First:     i == 0,
		}
		v.Price, v.CompareAt, v.CostItem = ComputePrices(p, opts)
		v.Tags = SynthesizeTags(p, label)
		variants = append(variants, v)
	}

	return variants
}
