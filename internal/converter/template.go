package converter

import "strings"

// 输出行的规范化列键
// 模板列名经 NormalizeKey 后与这些键匹配；handle/图片/图片位置列用子串规则兜底
const (
	keyTitle          = "title"
	keyHandle         = "handle"
	keyVendor         = "vendor"
	keyProductCat     = "productcategory"
	keyType           = "type"
	keyTags           = "tags"
	keyDescription    = "description"
	keyPrice          = "price"
	keyCompareAt      = "compareatprice"
	keyCostPerItem    = "costperitem"
	keyOption1Name    = "option1name"
	keyOption1Value   = "option1value"
	keyImageURL       = "imageurl"
	keyImagePosition  = "imageposition"
	keySEOTitle       = "seotitle"
	keySEODescription = "seodescription"
	keyPublished      = "publishedononlinestore"
	keyStatus         = "status"
	keyChargeTax      = "chargetax"
	keyRequiresShip   = "requiresshipping"
	keyFulfillment    = "fulfillmentservice"
	keyGiftCard       = "giftcard"
	keyGoogleCat      = "googleshoppinggoogleproductcategory"
)

// seoDescriptionLimit SEO 描述截断长度
const seoDescriptionLimit = 320

// Template 输出模板：列名序列即输出文件的精确 schema
// 引擎从不增删或重排模板列，没有对应值的列渲染为空串
type Template struct {
	Columns []string // 模板原始列名，保持原有顺序与大小写
	keys    []string // 每列对应的规范化键，无法识别的列为空串
}

// ParseTemplate 从模板表头构建 Template
// 表头为空（无列或全空白）返回 ErrEmptyTemplate
func ParseTemplate(header []string) (*Template, error) {
	var cols []string
	for _, c := range header {
		if strings.TrimSpace(c) != "" {
			cols = append(cols, strings.TrimSpace(c))
		}
	}
	if len(cols) == 0 {
		return nil, ErrEmptyTemplate
	}

	t := &Template{
		Columns: cols,
		keys:    make([]string, len(cols)),
	}
	for i, c := range cols {
		t.keys[i] = columnKey(c)
	}
	return t, nil
}

// columnKey 把模板列名归一到输出行键
// handle、图片 URL、图片位置列的写法差异很大（"URL handle" / "Image Src" /
// "Product image URL" / "Image position"），用子串规则归并；其余列按规范化名直连
func columnKey(col string) string {
	nc := NormalizeKey(col)
	switch {
	case strings.Contains(nc, "handle"):
		return keyHandle
	case strings.Contains(nc, "productimageurl"),
		strings.Contains(nc, "imagesrc"),
		strings.Contains(nc, "productimage"),
		nc == "image":
		return keyImageURL
	case strings.Contains(nc, "image") && strings.Contains(nc, "position"):
		return keyImagePosition
	}
	return nc
}

// Render 把输出行投影为模板列顺序的值序列
func (t *Template) Render(row OutputRow) []string {
	out := make([]string, len(t.Columns))
	for i, key := range t.keys {
		if key == "" {
			continue
		}
		out[i] = row[key]
	}
	return out
}

// BuildVariantRow 为变体构造输出行
// 主图只落在产品首个变体行上，图片位置为 1
func BuildVariantRow(v *Variant) OutputRow {
	p := v.Product

	row := OutputRow{
		keyTitle:       p.Title,
		keyHandle:      v.Handle,
		keyVendor:      p.Brand,
		keyProductCat:  p.Category,
		keyType:        p.Type,
		keyTags:        v.Tags,
		keyDescription: p.Description,
		keyPrice:       v.Price,
		keyCompareAt:   v.CompareAt,
		keyCostPerItem: v.CostItem,
		keySEOTitle:    p.Title,
		keyGoogleCat:   p.Category,

		// 模板带这些列时填的固定值；模板没有就不会出现在输出里
		keyPublished:    "TRUE",
		keyStatus:       "Active",
		keyChargeTax:    "TRUE",
		keyRequiresShip: "TRUE",
		keyFulfillment:  "manual",
		keyGiftCard:     "FALSE",
	}

	if p.Description != "" {
		row[keySEODescription] = truncate(p.Description, seoDescriptionLimit)
	}

	// Default 变体同样落 Option 字段，值就是 "Default"
	row[keyOption1Name] = "Size"
	row[keyOption1Value] = v.SizeLabel

	if v.First && len(p.Images) > 0 {
		row[keyImageURL] = p.Images[0]
		row[keyImagePosition] = "1"
	}

	for name, val := range p.Meta {
		row[NormalizeKey(name)] = val
	}

	return row
}

// truncate 按字节安全截断到 rune 边界
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
