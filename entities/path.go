package entities

import (
	"fmt"

	"github.com/zooyer/iges/core"
	"github.com/zooyer/iges/scene"
)

// 类型 106 支持的形式号
const (
	PathLinear3D   = 12 // 三维折线，(x,y,z) 三元组
	PathWitness    = 40 // 引出线，共用 Z 的 (x,y) 二元组，N 为奇数且 >= 3
	PathClosedArea = 63 // 简单闭合平面曲线，(x,y) 二元组，Z 取 0
)

// Path 类型 106（Copious Data）：参数 [IP, N, ...]
type Path struct {
	BaseEntity
	Vertices []core.Point
}

func init() {
	Register(core.TypeCopiousData, func() Entity {
		return &Path{BaseEntity: BaseEntity{TypeCode: core.TypeCopiousData}}
	})
}

func (l *Path) Parse(rec core.Record) error {
	l.Dir = rec.Directory
	p := rec.Params

	n, ok := p.Int(1)
	if !ok || n < 0 {
		return fmt.Errorf("%w: path point count %q", core.ErrShortParams, at(p, 1))
	}
	// 点数不可能多于参数个数
	if n > len(p) {
		n = len(p)
	}

	switch l.Form() {
	case PathLinear3D:
		for i := 0; i < n; i++ {
			x, _ := p.Float(2 + 3*i)
			y, _ := p.Float(3 + 3*i)
			z, _ := p.Float(4 + 3*i)
			l.Vertices = append(l.Vertices, core.Point{X: x, Y: y, Z: z})
		}
	case PathWitness:
		z, _ := p.Float(2)
		for i := 0; i < n; i++ {
			x, _ := p.Float(3 + 2*i)
			y, _ := p.Float(4 + 2*i)
			l.Vertices = append(l.Vertices, core.Point{X: x, Y: y, Z: z})
		}
	case PathClosedArea:
		for i := 0; i < n; i++ {
			x, _ := p.Float(3 + 2*i)
			y, _ := p.Float(4 + 2*i)
			l.Vertices = append(l.Vertices, core.Point{X: x, Y: y})
		}
	default:
		return fmt.Errorf("%w: path form %d", core.ErrUnsupportedForm, l.Form())
	}

	return nil
}

func (l *Path) Primitives() ([]scene.Primitive, error) {
	return []scene.Primitive{scene.NewPolyline(l.Vertices...)}, nil
}

// at 第 i 个原始参数，越界为空
func at(p core.Params, i int) string {
	if i < 0 || i >= len(p) {
		return ""
	}
	return p[i]
}
