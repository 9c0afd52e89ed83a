package converter

import "strings"

// SynthesizeTags 为一个变体合成标签串
// 顺序固定：品牌 -> 类目 -> 子类目 -> 尺码（Default 跳过）-> 性别/年龄段标签
// 大小写不敏感去重，保留首次出现的写法
func SynthesizeTags(p *Product, sizeLabel string) string {
	var tags []string

	for _, v := range []string{p.Brand, p.Category, p.Type} {
		if v != "" {
			tags = append(tags, v)
		}
	}
	if sizeLabel != DefaultSizeLabel {
		tags = append(tags, sizeLabel)
	}
	tags = append(tags, p.GenderTags...)

	return strings.Join(dedupeFold(tags), ", ")
}

// dedupeFold 大小写不敏感去重，保序
func dedupeFold(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		key := strings.ToLower(item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}
