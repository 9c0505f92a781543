package iges

import (
	"math"
	"strings"

	"github.com/zooyer/iges/core"
)

const (
	DefaultParamDelimiter  = ','
	DefaultRecordDelimiter = ';'
)

// Global 全局段参数。字符串字段已按 Hollerith 解码，数值字段保留原文。
type Global struct {
	ParamDelimiter      byte   // 1
	RecordDelimiter     byte   // 2
	SenderID            string // 3 发送方产品标识
	FileName            string // 4
	SystemID            string // 5 原生系统标识
	PreprocessorVersion string // 6
	IntegerBits         string // 7
	SingleMagnitude     string // 8
	SingleSignificance  string // 9
	DoubleMagnitude     string // 10
	DoubleSignificance  string // 11
	ReceiverID          string // 12
	Scale               string // 13 模型空间比例
	UnitsFlag           string // 14
	Units               string // 15
	LineWeights         string // 16 线宽等级数
	MaxLineWidth        string // 17
	Created             string // 18 文件生成时间
	Resolution          string // 19 最小分辨率
	MaxCoordinate       string // 20
	Author              string // 21
	Organization        string // 22
	Version             string // 23 IGES 版本号
	DraftingStandard    string // 24
	Modified            string // 25 模型修改时间
	Protocol            string // 26 应用协议
}

// ScaleValue 模型空间比例，缺省为 1
func (g Global) ScaleValue() float64 {
	if v := core.ParseFloat(g.Scale); !math.IsNaN(v) {
		return v
	}
	return 1
}

// globalFields 第 3 个字段起的位置映射，text 为 Hollerith 字符串字段
func (g *Global) globalFields() []struct {
	dst  *string
	text bool
} {
	return []struct {
		dst  *string
		text bool
	}{
		{&g.SenderID, true},
		{&g.FileName, true},
		{&g.SystemID, true},
		{&g.PreprocessorVersion, true},
		{&g.IntegerBits, false},
		{&g.SingleMagnitude, false},
		{&g.SingleSignificance, false},
		{&g.DoubleMagnitude, false},
		{&g.DoubleSignificance, false},
		{&g.ReceiverID, true},
		{&g.Scale, false},
		{&g.UnitsFlag, false},
		{&g.Units, true},
		{&g.LineWeights, false},
		{&g.MaxLineWidth, false},
		{&g.Created, true},
		{&g.Resolution, false},
		{&g.MaxCoordinate, false},
		{&g.Author, true},
		{&g.Organization, true},
		{&g.Version, false},
		{&g.DraftingStandard, false},
		{&g.Modified, true},
		{&g.Protocol, true},
	}
}

// readDelimiter 读取前两个字段之一：空字段取默认值 def，否则为 1Hx。
// 返回的 rest 以字段之后的分隔符开头。
func readDelimiter(s string, def byte, ends ...byte) (value byte, rest string, ok bool) {
	s = strings.TrimLeft(s, " ")
	if s == "" || strings.IndexByte(string(ends), s[0]) >= 0 {
		return def, s, true
	}

	v, ok := core.Hollerith(s)
	if !ok || len(v) != 1 {
		return def, s, false
	}
	end := strings.IndexByte(s, 'H') + 2
	return v[0], s[end:], true
}

// parseGlobal 先确定分隔符，再按分隔符切分其余字段
func parseGlobal(buf string) (Global, []core.Diagnostic) {
	var (
		g = Global{
			ParamDelimiter:  DefaultParamDelimiter,
			RecordDelimiter: DefaultRecordDelimiter,
		}
		diags []core.Diagnostic
		ok    bool
	)

	if strings.TrimSpace(buf) == "" {
		d := core.Debugf(core.CodeMissingSection, "global section is empty, using default delimiters")
		d.Section = core.SectionGlobal
		return g, []core.Diagnostic{d}
	}

	rest := buf
	if g.ParamDelimiter, rest, ok = readDelimiter(rest, DefaultParamDelimiter, DefaultParamDelimiter, DefaultRecordDelimiter); !ok {
		d := core.Warnf(core.CodeHollerith, "bad parameter delimiter field")
		d.Section = core.SectionGlobal
		diags = append(diags, d)
	}
	rest = strings.TrimPrefix(rest, string(g.ParamDelimiter))

	if g.RecordDelimiter, rest, ok = readDelimiter(rest, DefaultRecordDelimiter, g.ParamDelimiter, DefaultRecordDelimiter); !ok {
		d := core.Warnf(core.CodeHollerith, "bad record delimiter field")
		d.Section = core.SectionGlobal
		diags = append(diags, d)
	}
	if !strings.HasPrefix(rest, string(g.ParamDelimiter)) {
		// 全局段只有两个分隔符字段
		return g, diags
	}

	body := core.Split(rest[1:], g.RecordDelimiter, g.ParamDelimiter)[0]
	tokens := core.Split(body, g.ParamDelimiter)

	for i, field := range g.globalFields() {
		if i >= len(tokens) {
			break
		}
		token := strings.TrimSpace(tokens[i])
		if !field.text || token == "" {
			*field.dst = token
			continue
		}
		// 字符串尾部空格有效，只去掉前导空格
		v, ok := core.Hollerith(strings.TrimLeft(tokens[i], " "))
		if !ok {
			d := core.Warnf(core.CodeHollerith, "global field %d: %q is not a string", i+3, token)
			d.Section = core.SectionGlobal
			diags = append(diags, d)
			continue
		}
		if core.HollerithOverrun(tokens[i]) {
			d := core.Warnf(core.CodeHollerith, "global field %d: %q is shorter than its declared length", i+3, token)
			d.Section = core.SectionGlobal
			diags = append(diags, d)
		}
		*field.dst = v
	}

	return g, diags
}
