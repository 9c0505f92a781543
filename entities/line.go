package entities

import (
	"fmt"

	"github.com/zooyer/iges/core"
	"github.com/zooyer/iges/scene"
)

// Line 类型 110：参数 [X1, Y1, Z1, X2, Y2, Z2]
type Line struct {
	BaseEntity
	Start, End core.Point
}

func init() {
	Register(core.TypeLine, func() Entity { return &Line{BaseEntity: BaseEntity{TypeCode: core.TypeLine}} })
}

func (l *Line) Parse(rec core.Record) error {
	l.Dir = rec.Directory

	// 形式号空白或非数字时按 0 处理
	switch l.Form() {
	case 0, 2:
	default:
		return fmt.Errorf("%w: line form %d", core.ErrUnsupportedForm, l.Form())
	}

	p := rec.Params
	l.Start.X, _ = p.Float(0)
	l.Start.Y, _ = p.Float(1)
	l.Start.Z, _ = p.Float(2)
	l.End.X, _ = p.Float(3)
	l.End.Y, _ = p.Float(4)
	l.End.Z, _ = p.Float(5)
	return nil
}

func (l *Line) Primitives() ([]scene.Primitive, error) {
	return []scene.Primitive{scene.NewPolyline(l.Start, l.End)}, nil
}
