package converter

// Field 语义字段类型
type Field string

const (
	FieldTitle      Field = "title"
	FieldBrand      Field = "brand"
	FieldCategory   Field = "category"
	FieldType       Field = "type"
	FieldSubType    Field = "sub_type"
	FieldFinalPrice Field = "final_price"
	FieldMRP        Field = "mrp"
	FieldCost       Field = "cost"
	FieldSizeChart  Field = "size_chart"
)

// GenderColumn 性别/年龄段标记列
// 列值恰好为 1 时追加 Tags 中的标签
type GenderColumn struct {
	Index int      // 源表列索引
	Name  string   // 源表列名
	Tags  []string // 追加的标签（按规则表顺序）
}

// MetaColumn 模板透传列（Fabric、Wash Care 等元数据）
type MetaColumn struct {
	Index  int    // 源表列索引
	Output string // 输出列名
}

// FieldMap 列映射结果：语义字段 -> 源表列索引
// 未解析的字段不出现在 Columns 中；Title 必须解析成功
type FieldMap struct {
	Headers    []string
	Columns    map[Field]int
	SizeCols   []int // 尺码列，按表头顺序
	ImageCols  []int // 图片列，按表头顺序（不含尺码表列）
	DescCols   []int // 商品说明列（Product Specification 及其变体写法）
	GenderCols []GenderColumn
	MetaCols   []MetaColumn
}

// Col 返回语义字段对应的列索引，未解析返回 -1
func (m *FieldMap) Col(f Field) int {
	if idx, ok := m.Columns[f]; ok {
		return idx
	}
	return -1
}

// SizeFlag 单个尺码及其本行是否勾选
type SizeFlag struct {
	Label  string
	Active bool
}

// Product 从单行源数据提取出的语义记录
type Product struct {
	Title       string
	Brand       string
	Category    string
	Type        string
	Description string
	FinalPrice  string // 清洗后的数字串，缺失为空
	MRP         string
	Cost        string
	Sizes       []SizeFlag // 按尺码列表头顺序
	Images      []string   // 非空图片 URL，尺码表图固定排最后
	GenderTags  []string   // 规则表命中的标签，按列顺序
	Meta        map[string]string
}

// Variant 产品的一个变体（尺码或 Default）
type Variant struct {
	Product   *Product
	Handle    string // 仅由标题派生，同一产品所有变体一致
	SizeLabel string // "Default" 或尺码串
	First     bool   // 是否产品首个变体（承载主图）
	Price     string
	CompareAt string
	CostItem  string
	Tags      string
}

// OutputRow 输出行：规范化列键 -> 值
// 变体行与纯图片行共用此结构，未填充的模板列渲染为空串
type OutputRow map[string]string

// Options 转换选项
type Options struct {
	FallbackPriceToCost bool // Final Price 缺失时是否回退到 Cost
}

// DefaultOptions 默认转换选项
func DefaultOptions() Options {
	return Options{FallbackPriceToCost: true}
}
