package iges

import (
	"strconv"
	"strings"

	"github.com/zooyer/iges/core"
)

// parseParameter 按记录分隔符切分参数段，每条记录再按参数分隔符切分。
// 首字段是实体类型号，其余字段保持原文，由各实体按需解码。
func parseParameter(buf string, pointers []int, g Global) ([]core.Parameter, []core.Diagnostic) {
	var (
		segments = core.Split(buf, g.RecordDelimiter, g.ParamDelimiter)
		params   = make([]core.Parameter, 0, len(segments))
		diags    []core.Diagnostic
		offset   int
	)

	// 最后一个分隔符之后的空白不是记录
	if last := len(segments) - 1; strings.TrimSpace(segments[last]) == "" {
		segments = segments[:last]
	}

	for _, seg := range segments {
		lead := len(seg) - len(strings.TrimLeft(seg, " "))
		line := (offset+lead)/core.ParameterWidth + 1
		offset += len(seg) + 1

		tokens := core.Split(seg, g.ParamDelimiter)
		p := core.Parameter{
			Values: core.Params(tokens[1:]),
			Line:   line,
		}
		if line-1 < len(pointers) {
			p.Pointer = pointers[line-1]
		}

		code, err := strconv.Atoi(strings.TrimSpace(tokens[0]))
		if err != nil {
			d := core.Warnf(core.CodeUnknownType, "parameter record type %q is not a number", strings.TrimSpace(tokens[0]))
			d.Section = core.SectionParameter
			d.Line = line
			diags = append(diags, d)
		}
		p.Type = core.EntityType(code)

		for i, token := range p.Values {
			if core.HollerithOverrun(token) {
				d := core.Warnf(core.CodeHollerith, "parameter %d: %q is shorter than its declared length", i+1, strings.TrimSpace(token))
				d.Section = core.SectionParameter
				d.Line = line
				d.Entity = p.Pointer
				diags = append(diags, d)
			}
		}

		params = append(params, p)
	}

	return params, diags
}
