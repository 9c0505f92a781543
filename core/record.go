package core

import (
	"math"
	"strconv"
	"strings"
)

// DirectoryEntrySize 一个目录条目占两行 80 列
const DirectoryEntrySize = 160

// Status 目录条目状态号（65-72 列），四组两位数字
type Status string

func (s Status) pair(i int) int {
	v, _ := FixedInt(string(s), i*2, 2)
	return v
}

// Blank 显示状态：0 可见，1 隐藏
func (s Status) Blank() int { return s.pair(0) }

// Subordinate 从属关系
func (s Status) Subordinate() int { return s.pair(1) }

// Use 用途标志：0 几何，1 注释，2 定义...
func (s Status) Use() int { return s.pair(2) }

// Hierarchy 层级标志
func (s Status) Hierarchy() int { return s.pair(3) }

// Directory 目录条目，固定列宽
type Directory struct {
	Type         EntityType // 1-8
	Index        int        // 9-16 参数数据首行指针
	Version      int        // 17-24 结构
	LineType     int        // 25-32
	Level        int        // 33-40
	View         int        // 41-48
	Transform    int        // 49-56 变换矩阵指针
	LabelDisplay int        // 57-64
	Status       Status     // 65-72
	Sequence     int        // 74-80
	LineWeight   int        // 89-96
	Color        int        // 97-104
	ParamLines   int        // 105-112 参数数据行数
	Form         int        // 113-120
	Label        string     // 137-144
	Subscript    int        // 145-152
}

// ParseDirectory 从 160 字符的窗口中按固定列提取目录条目。
// 空白字段解析失败时为 0。
func ParseDirectory(window string) Directory {
	field := func(start int) int {
		v, _ := FixedInt(window, start, 8)
		return v
	}
	seq, _ := FixedInt(window, 73, 7)

	return Directory{
		Type:         EntityType(field(0)),
		Index:        field(8),
		Version:      field(16),
		LineType:     field(24),
		Level:        field(32),
		View:         field(40),
		Transform:    field(48),
		LabelDisplay: field(56),
		Status:       Status(FixedString(window, 64, 8)),
		Sequence:     seq,
		LineWeight:   field(88),
		Color:        field(96),
		ParamLines:   field(104),
		Form:         field(112),
		Label:        FixedString(window, 136, 8),
		Subscript:    field(144),
	}
}

// Params 参数数据中的原始值，按需解码
type Params []string

// Float 第 i 个参数按浮点数解码，越界或非法返回 NaN 和 false
func (p Params) Float(i int) (float64, bool) {
	if i < 0 || i >= len(p) {
		return math.NaN(), false
	}
	f := ParseFloat(p[i])
	return f, !math.IsNaN(f)
}

// Int 第 i 个参数按整数解码，允许 "3." 这种写法
func (p Params) Int(i int) (int, bool) {
	if i < 0 || i >= len(p) {
		return 0, false
	}
	s := strings.TrimSpace(p[i])
	if v, err := strconv.Atoi(s); err == nil {
		return v, true
	}
	f, ok := p.Float(i)
	if !ok || f != float64(int(f)) {
		return 0, false
	}
	return int(f), true
}

// String 第 i 个参数按 Hollerith 字符串解码
func (p Params) String(i int) (string, bool) {
	if i < 0 || i >= len(p) {
		return "", false
	}
	return Hollerith(p[i])
}

// Parameter 一条参数数据记录
type Parameter struct {
	Type    EntityType // 首字段
	Values  Params     // 其余字段
	Line    int        // 记录起始的 P 行号（从 1 开始）
	Pointer int        // 起始行 66-72 列回指的目录序号
}

// Record 按位置合并后的实体：第 i 个目录条目配第 i 条参数数据。
// 创建后不再修改。
type Record struct {
	Type      EntityType
	Directory Directory
	Params    Params
}
