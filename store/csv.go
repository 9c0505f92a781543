package store

import (
	"fmt"
	"os"
	"strings"

	"github.com/zooyer/golib/xos"

	"github.com/zooyer/iges/core"
)

const csvHeader = "seq,type,name,form,level,color,label,primitives,points,min_x,min_y,min_z,max_x,max_y,max_z\n"

// ExportCSV 每个实体一行，最后一行是统计信息
func ExportCSV(filename string, c Catalog) (err error) {
	if err = os.WriteFile(filename, []byte(csvHeader), 0644); err != nil {
		return
	}

	var (
		prims   = c.Primitives()
		total   int
		drawn   int
		skipped = strings.Repeat(",", strings.Count(csvHeader, ",")-1)
	)
	for _, rec := range c.Document.Records {
		var (
			dir    = rec.Directory
			box    = core.EmptyBBox()
			points int
		)
		for _, p := range prims[dir.Sequence] {
			box = box.Union(p.BBox())
			points += len(p.Points)
		}

		var line = fmt.Sprintf("%d,%d,%s,%d,%d,%d,%s,%d,%d,%s\n",
			dir.Sequence, int(dir.Type), csvQuote(dir.Type.String()), dir.Form, dir.Level, dir.Color,
			csvQuote(dir.Label), len(prims[dir.Sequence]), points, boxColumns(box),
		)
		if err = xos.AppendFile(filename, []byte(line), 0644); err != nil {
			return
		}

		total++
		if len(prims[dir.Sequence]) > 0 {
			drawn++
		}
	}

	// 统计信息
	var stat = fmt.Sprintf("total %d,drawn %d%s\n", total, drawn, skipped)
	return xos.AppendFile(filename, []byte(stat), 0644)
}

func boxColumns(box core.BBox) string {
	if box.Empty() {
		return ",,,,,"
	}
	return fmt.Sprintf("%g,%g,%g,%g,%g,%g", box.Min.X, box.Min.Y, box.Min.Z, box.Max.X, box.Max.Y, box.Max.Z)
}

func csvQuote(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
