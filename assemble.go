package iges

import (
	"fmt"

	"github.com/zooyer/iges/core"
)

// assemble 第 i 个目录条目配第 i 条参数记录。
// 目录中的参数指针不参与配对，debug 时只用于交叉校验。
func assemble(dirs []core.Directory, params []core.Parameter, debug bool) ([]core.Record, []core.Diagnostic, error) {
	if len(dirs) != len(params) {
		return nil, nil, fmt.Errorf("%w: %d directory entries, %d parameter records",
			core.ErrStructure, len(dirs), len(params))
	}

	var (
		records = make([]core.Record, 0, len(dirs))
		diags   []core.Diagnostic
	)

	for i, dir := range dirs {
		par := params[i]

		if par.Type != dir.Type {
			d := core.Warnf(core.CodeTypeMismatch, "directory type %d, parameter record type %d", int(dir.Type), int(par.Type))
			d.Section = core.SectionParameter
			d.Line = par.Line
			d.Entity = dir.Sequence
			diags = append(diags, d)
		}

		if debug {
			diags = append(diags, crossCheck(dir, par)...)
		}

		records = append(records, core.Record{
			Type:      dir.Type,
			Directory: dir,
			Params:    par.Values,
		})
	}

	return records, diags, nil
}

// crossCheck 目录的参数行指针应指向记录起始行，参数行的回指应为目录序号
func crossCheck(dir core.Directory, par core.Parameter) []core.Diagnostic {
	var diags []core.Diagnostic

	if dir.Index != par.Line {
		d := core.Warnf(core.CodePointerMismatch, "directory points to P line %d, record starts at %d", dir.Index, par.Line)
		d.Section = core.SectionDirectory
		d.Entity = dir.Sequence
		diags = append(diags, d)
	}
	if par.Pointer != 0 && par.Pointer != dir.Sequence {
		d := core.Warnf(core.CodePointerMismatch, "P line %d points back to DE %d", par.Line, par.Pointer)
		d.Section = core.SectionParameter
		d.Line = par.Line
		d.Entity = dir.Sequence
		diags = append(diags, d)
	}

	return diags
}
