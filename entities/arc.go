package entities

import (
	"math"

	"github.com/zooyer/golib/xmath"
	"github.com/zooyer/iges/core"
	"github.com/zooyer/iges/scene"
)

// ArcSamples 圆弧采样点数
const ArcSamples = 50

// CircularArc 类型 100：参数 [ZT, X1, Y1, X2, Y2, X3, Y3]，圆心、起点、终点，逆时针
type CircularArc struct {
	BaseEntity
	Z          float64
	Center     core.Point
	Start, End core.Point
}

func init() {
	Register(core.TypeCircularArc, func() Entity {
		return &CircularArc{BaseEntity: BaseEntity{TypeCode: core.TypeCircularArc}}
	})
}

func (a *CircularArc) Parse(rec core.Record) error {
	a.Dir = rec.Directory
	p := rec.Params
	a.Z, _ = p.Float(0)
	a.Center.X, _ = p.Float(1)
	a.Center.Y, _ = p.Float(2)
	a.Start.X, _ = p.Float(3)
	a.Start.Y, _ = p.Float(4)
	a.End.X, _ = p.Float(5)
	a.End.Y, _ = p.Float(6)
	a.Center.Z, a.Start.Z, a.End.Z = a.Z, a.Z, a.Z
	return nil
}

// Angles 起点、终点相对圆心的极角。起点与终点重合时是整圆。
func (a *CircularArc) Angles() (start, end float64) {
	start = math.Atan2(a.Start.Y-a.Center.Y, a.Start.X-a.Center.X)
	end = math.Atan2(a.End.Y-a.Center.Y, a.End.X-a.Center.X)
	if xmath.Equal(a.Start.X, a.End.X, 1e-9) && xmath.Equal(a.Start.Y, a.End.Y, 1e-9) {
		end = start + 2*math.Pi
	}
	return
}

// Radius 起点到圆心的距离
func (a *CircularArc) Radius() float64 {
	return math.Hypot(a.Start.X-a.Center.X, a.Start.Y-a.Center.Y)
}

// Primitives 按单位半径生成，真实半径 Radius() 暂不参与
func (a *CircularArc) Primitives() ([]scene.Primitive, error) {
	start, end := a.Angles()
	curve := scene.Ellipse{
		Center:  a.Center,
		RadiusX: 1,
		RadiusY: 1,
		Start:   start,
		End:     end,
	}
	return []scene.Primitive{scene.NewSampledCurve(curve, ArcSamples)}, nil
}
