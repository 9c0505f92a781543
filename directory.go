package iges

import (
	"github.com/zooyer/iges/core"
)

// parseDirectory 以 160 列为窗口逐条提取目录条目，保持窗口顺序。
// 目录序号用于诊断和图元归属，不参与参数配对。
func parseDirectory(buf string) ([]core.Directory, []core.Diagnostic) {
	var (
		dirs  = make([]core.Directory, 0, len(buf)/core.DirectoryEntrySize)
		diags []core.Diagnostic
	)

	for off := 0; off < len(buf); off += core.DirectoryEntrySize {
		if off+core.DirectoryEntrySize > len(buf) {
			d := core.Warnf(core.CodePartialEntry, "trailing directory line without its pair")
			d.Section = core.SectionDirectory
			d.Line = off/80 + 1
			diags = append(diags, d)
			break
		}
		dir := core.ParseDirectory(buf[off : off+core.DirectoryEntrySize])
		if dir.Sequence == 0 {
			// 序号列空白时按位置推算，第 i 个条目的首行是 2i+1
			dir.Sequence = 2*len(dirs) + 1
		}
		dirs = append(dirs, dir)
	}

	return dirs, diags
}
