package entities

import (
	"fmt"

	"github.com/zooyer/iges/core"
	"github.com/zooyer/iges/scene"
)

// BSplineCurve 类型 126 有理 B 样条曲线。
//
// 参数顺序：K, M, PROP1-4, 节点 T(-M)..T(N+M), 权重 W(0)..W(K), 控制点 P(0)..P(K), ...
// 其中 N = 1+K-M，A = N+2M，控制点从第 8+A+K 个参数开始（从 1 计为第 9+A+K 个）。
type BSplineCurve struct {
	BaseEntity
	K, M     int // 上标上界、次数
	Knots    []float64
	Weights  []float64
	Controls []core.Point
}

func init() {
	Register(core.TypeRationalBSplineCurve, func() Entity {
		return &BSplineCurve{BaseEntity: BaseEntity{TypeCode: core.TypeRationalBSplineCurve}}
	})
}

func (b *BSplineCurve) Parse(rec core.Record) error {
	b.Dir = rec.Directory
	p := rec.Params

	// 形式 2-5 为圆弧、椭圆、抛物线、双曲线的特例，暂未实现
	if form := b.Form(); form != 0 && form != 1 {
		return fmt.Errorf("%w: b-spline form %d", core.ErrUnsupportedForm, form)
	}

	var ok bool
	if b.K, ok = p.Int(0); !ok || b.K < 0 {
		return fmt.Errorf("%w: b-spline K %q", core.ErrShortParams, at(p, 0))
	}
	if b.M, ok = p.Int(1); !ok || b.M < 0 {
		return fmt.Errorf("%w: b-spline M %q", core.ErrShortParams, at(p, 1))
	}
	if b.K+b.M >= len(p) {
		return fmt.Errorf("%w: b-spline K=%d M=%d with %d params", core.ErrShortParams, b.K, b.M, len(p))
	}

	var (
		n       = 1 + b.K - b.M
		a       = n + 2*b.M
		knots   = 6
		weights = 7 + a
		control = 8 + a + b.K
	)

	for i := 0; i <= a; i++ {
		v, _ := p.Float(knots + i)
		b.Knots = append(b.Knots, v)
	}
	for i := 0; i <= b.K; i++ {
		v, _ := p.Float(weights + i)
		b.Weights = append(b.Weights, v)
	}
	for i := 0; i <= b.K; i++ {
		x, _ := p.Float(control + 3*i)
		y, _ := p.Float(control + 3*i + 1)
		z, _ := p.Float(control + 3*i + 2)
		b.Controls = append(b.Controls, core.Point{X: x, Y: y, Z: z})
	}

	return nil
}

// Primitives 以控制点折线近似曲线
func (b *BSplineCurve) Primitives() ([]scene.Primitive, error) {
	return []scene.Primitive{scene.NewPolyline(b.Controls...)}, nil
}
