// Package store 把解码结果导出为 SQLite 目录库或 CSV 表格。
package store

import (
	"slices"

	"github.com/zooyer/iges"
	"github.com/zooyer/iges/core"
	"github.com/zooyer/iges/scene"
)

// Catalog 一次解码的全部结果
type Catalog struct {
	Source      string
	Document    *iges.Document
	Scene       *scene.Group
	Diagnostics []core.Diagnostic // 解码与图元生成的诊断
}

func NewCatalog(source string, doc *iges.Document) Catalog {
	group, diags := doc.Scene()
	return Catalog{
		Source:      source,
		Document:    doc,
		Scene:       group,
		Diagnostics: append(slices.Clone(doc.Diagnostics), diags...),
	}
}

// Primitives 每个目录序号对应的图元
func (c Catalog) Primitives() map[int][]scene.Primitive {
	var prims = make(map[int][]scene.Primitive)
	for _, p := range c.Scene.Children {
		prims[p.Entity] = append(prims[p.Entity], p)
	}
	return prims
}
