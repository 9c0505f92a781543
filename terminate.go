package iges

import (
	"fmt"
	"strings"

	"github.com/zooyer/iges/core"
)

// Terminate 结束段声明的各段行数
type Terminate struct {
	Start     int
	Global    int
	Directory int
	Parameter int
	Present   bool
}

// parseTerminate 固定列提取 S/G/D/P 四个 7 位计数
func parseTerminate(buf string) Terminate {
	if strings.TrimSpace(buf) == "" {
		return Terminate{}
	}

	field := func(start int) int {
		v, _ := core.FixedInt(buf, start, 7)
		return v
	}

	return Terminate{
		Start:     field(1),
		Global:    field(9),
		Directory: field(17),
		Parameter: field(25),
		Present:   true,
	}
}

// check 对照实际行数。目录条目数必须等于声明的 D 行数的一半，否则返回 core.ErrStructure；
// 其余计数不一致只产生诊断。
func (t Terminate) check(lines map[core.Section]int, entries int) ([]core.Diagnostic, error) {
	if !t.Present {
		if entries == 0 {
			return nil, nil
		}
		d := core.Warnf(core.CodeMissingSection, "terminate section missing, counts not verified")
		d.Section = core.SectionTerminate
		return []core.Diagnostic{d}, nil
	}

	if t.Directory != 2*entries {
		return nil, fmt.Errorf("%w: terminate declares %d directory lines, assembled %d entities",
			core.ErrStructure, t.Directory, entries)
	}

	var diags []core.Diagnostic
	for _, c := range []struct {
		section  core.Section
		declared int
	}{
		{core.SectionStart, t.Start},
		{core.SectionGlobal, t.Global},
		{core.SectionParameter, t.Parameter},
	} {
		if got := lines[c.section]; got != c.declared {
			d := core.Warnf(core.CodeCountMismatch, "terminate declares %d lines, found %d", c.declared, got)
			d.Section = c.section
			diags = append(diags, d)
		}
	}

	return diags, nil
}
