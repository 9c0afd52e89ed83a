package converter

import (
	"fmt"
	"regexp"
	"strings"
)

// fieldAliases 语义字段别名表，按优先级排列
var fieldAliases = map[Field][]string{
	FieldTitle:      {"Title", "Product Title", "Name"},
	FieldBrand:      {"Brand Name", "Vendor", "Brand"},
	FieldCategory:   {"Product category", "Category"},
	FieldType:       {"Subcategory", "Sub Category", "Type"},
	FieldSubType:    {"Sub Sub Category", "SubSubCategory"},
	FieldCost:       {"Cost to Kiddo", "Cost"},
	FieldMRP:        {"MRP"},
	FieldFinalPrice: {"Final Price", "Final"},
	FieldSizeChart:  {"Size chart", "Sizechart"},
}

// sizeVocabulary 尺码列的封闭词表
var sizeVocabulary = []string{
	"NB", "0-2M", "2-4M", "4-6M", "0-3M", "3-6M", "6-9M", "6-12M", "9-12M",
	"12-18M", "18-24M",
	"1-2Y", "2-3Y", "3-4Y", "4-5Y", "5-6Y",
	"One Size", "S", "M", "L", "XL", "XXL",
}

// sizeRangeRe 兜底匹配 "数字[-数字][M/Y]" 结尾的列名
var sizeRangeRe = regexp.MustCompile(`(?i)\d+\s*-?\s*\d*\s*[my]$`)

// metaAliases 模板透传列：输出列名 -> 源列名候选
var metaAliases = []struct {
	Output  string
	Aliases []string
}{
	{"Fabric", []string{"Fabric", "Fabric (product.metafields.custom.fabric)"}},
	{"Wash Care", []string{"Wash Care", "Wash care", "Wash Care (product.metafields.custom.wash_care)"}},
	{"Material", []string{"Material", "Material (product.metafields.custom.material)"}},
	{"Shelf No", []string{"Shelf No", "Shelf Number", "Shalf"}},
	{"Variant Weight Unit", []string{"Variant Weight Unit", "Variant weight unit"}},
	{"Variant Tax Code", []string{"Variant Tax Code", "Variant tax code"}},
}

// MapColumns 将语义字段解析到源表头列
// Title 解析失败返回 ErrMissingRequiredColumn；其余字段解析不到就缺席，不报错
func MapColumns(headers []string) (*FieldMap, error) {
	fm := &FieldMap{
		Headers: headers,
		Columns: make(map[Field]int),
	}

	for field, aliases := range fieldAliases {
		if idx, ok := Resolve(headers, aliases); ok {
			fm.Columns[field] = idx
		}
	}

	if _, ok := fm.Columns[FieldTitle]; !ok {
		return nil, fmt.Errorf("%w: title", ErrMissingRequiredColumn)
	}

	sizeChartIdx := fm.Col(FieldSizeChart)

	for idx, h := range headers {
		if idx != sizeChartIdx && strings.Contains(strings.ToLower(h), "image") {
			fm.ImageCols = append(fm.ImageCols, idx)
		}
		if isDescriptionColumn(h) {
			fm.DescCols = append(fm.DescCols, idx)
		}
		if isSizeColumn(h) {
			fm.SizeCols = append(fm.SizeCols, idx)
		}
		if tags := genderTagsFor(h); len(tags) > 0 {
			fm.GenderCols = append(fm.GenderCols, GenderColumn{
				Index: idx,
				Name:  strings.TrimSpace(h),
				Tags:  tags,
			})
		}
	}

	for _, meta := range metaAliases {
		if idx, ok := Resolve(headers, meta.Aliases); ok {
			fm.MetaCols = append(fm.MetaCols, MetaColumn{Index: idx, Output: meta.Output})
		}
	}

	return fm, nil
}

// Resolve 在表头中解析别名列表，返回命中的列索引
// 先整轮精确匹配（规范化后相等），再整轮子串匹配（双向包含），首个命中即停
func Resolve(headers []string, aliases []string) (int, bool) {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = NormalizeKey(h)
	}

	for _, alias := range aliases {
		key := NormalizeKey(alias)
		if key == "" {
			continue
		}
		for i, h := range normalized {
			if h == key {
				return i, true
			}
		}
	}

	for _, alias := range aliases {
		key := NormalizeKey(alias)
		if key == "" {
			continue
		}
		for i, h := range normalized {
			if h == "" {
				continue
			}
			if strings.Contains(h, key) || strings.Contains(key, h) {
				return i, true
			}
		}
	}

	return 0, false
}

// isDescriptionColumn 列名是否为商品说明列
// 源表写法不统一，"Specifcation" 的拼写错误也在野外出现过
func isDescriptionColumn(header string) bool {
	h := NormalizeKey(header)
	return strings.Contains(h, "specification") || strings.Contains(h, "specifcation")
}

// isSizeColumn 列名是否为尺码列
func isSizeColumn(header string) bool {
	h := strings.TrimSpace(header)
	for _, size := range sizeVocabulary {
		if strings.EqualFold(h, size) {
			return true
		}
	}
	return sizeRangeRe.MatchString(h)
}

// genderTagsFor 按固定规则表返回列名对应的性别/年龄段标签
// 组合列（Girls+Unisex / Boys+Unisex）优先于单项列判定
func genderTagsFor(header string) []string {
	h := NormalizeMarker(header)
	switch {
	case strings.Contains(h, "girls") && strings.Contains(h, "unisex"):
		return []string{"Girl", "Unisex"}
	case strings.Contains(h, "boys") && strings.Contains(h, "unisex"):
		return []string{"Boy", "Unisex"}
	case h == "boy" || h == "boys":
		return []string{"Boy"}
	case h == "girl" || h == "girls":
		return []string{"Girl"}
	case h == "unisex":
		return []string{"Unisex"}
	case h == "nb" || h == "newborn":
		return []string{"Newborn"}
	}
	return nil
}

// ExtractProduct 按 FieldMap 将一行原始数据提取为 Product
// 所有下游组件只消费 Product，不再接触原始行
func ExtractProduct(fm *FieldMap, row []string) *Product {
	p := &Product{
		Title:      cellAt(row, fm.Col(FieldTitle)),
		Brand:      cleanCell(cellAt(row, fm.Col(FieldBrand))),
		Category:   cleanCell(cellAt(row, fm.Col(FieldCategory))),
		FinalPrice: CleanPrice(cellAt(row, fm.Col(FieldFinalPrice))),
		MRP:        CleanPrice(cellAt(row, fm.Col(FieldMRP))),
		Cost:       CleanPrice(cellAt(row, fm.Col(FieldCost))),
		Meta:       make(map[string]string),
	}

	// 说明列可能拆成多列，非空内容按空行拼接
	var descParts []string
	for _, idx := range fm.DescCols {
		if v := cleanCell(cellAt(row, idx)); v != "" {
			descParts = append(descParts, v)
		}
	}
	p.Description = strings.Join(descParts, "\n\n")

	// Type 优先子类目，为空时回退子子类目
	p.Type = cleanCell(cellAt(row, fm.Col(FieldType)))
	if p.Type == "" {
		p.Type = cleanCell(cellAt(row, fm.Col(FieldSubType)))
	}

	for _, idx := range fm.SizeCols {
		p.Sizes = append(p.Sizes, SizeFlag{
			Label:  strings.TrimSpace(fm.Headers[idx]),
			Active: IsTruthyCell(cellAt(row, idx)),
		})
	}

	p.Images = gatherImages(fm, row)

	for _, gc := range fm.GenderCols {
		if IsValueOne(cellAt(row, gc.Index)) {
			p.GenderTags = append(p.GenderTags, gc.Tags...)
		}
	}

	for _, mc := range fm.MetaCols {
		if v := cleanCell(cellAt(row, mc.Index)); v != "" {
			p.Meta[mc.Output] = v
		}
	}

	return p
}

// cleanCell 过滤导出文件中常见的 "nan" 占位值
func cleanCell(v string) string {
	if strings.EqualFold(v, "nan") {
		return ""
	}
	return v
}
