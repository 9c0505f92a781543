package entities

import (
	"github.com/zooyer/iges/core"
	"github.com/zooyer/iges/scene"
)

// Point 类型 116：参数 [X, Y, Z, PTR]
type Point struct {
	BaseEntity
	Position core.Point
}

func init() {
	Register(core.TypePoint, func() Entity { return &Point{BaseEntity: BaseEntity{TypeCode: core.TypePoint}} })
}

func (pt *Point) Parse(rec core.Record) error {
	pt.Dir = rec.Directory
	pt.Position.X, _ = rec.Params.Float(0)
	pt.Position.Y, _ = rec.Params.Float(1)
	pt.Position.Z, _ = rec.Params.Float(2)
	return nil
}

func (pt *Point) Primitives() ([]scene.Primitive, error) {
	return []scene.Primitive{scene.NewPointCloud(pt.Position)}, nil
}
