// Package scene 是几何图元的接收端模型：点云、折线、采样曲线，以及承载它们的分组。
package scene

import (
	"math"

	"github.com/zooyer/iges/core"
)

// Kind 图元种类
type Kind int

const (
	KindPointCloud Kind = iota
	KindPolyline
	KindSampledCurve
)

func (k Kind) String() string {
	switch k {
	case KindPointCloud:
		return "points"
	case KindPolyline:
		return "polyline"
	case KindSampledCurve:
		return "curve"
	}
	return "unknown"
}

// Style 渲染样式。目前所有图元都使用固定默认值，目录条目中的颜色、线宽不参与。
type Style struct {
	Color uint32  // 0xRRGGBB
	Width float64 // 线宽
	Size  float64 // 点大小
}

var (
	DefaultLineStyle  = Style{Color: 0x0000ff, Width: 1}
	DefaultPointStyle = Style{Color: 0x0000ff, Size: 1}
)

// Primitive 一个图元
type Primitive struct {
	Kind   Kind
	Points []core.Point
	Style  Style
	Entity int // 来源目录条目序号
}

func NewPointCloud(points ...core.Point) Primitive {
	return Primitive{Kind: KindPointCloud, Points: points, Style: DefaultPointStyle}
}

func NewPolyline(points ...core.Point) Primitive {
	return Primitive{Kind: KindPolyline, Points: points, Style: DefaultLineStyle}
}

// NewSampledCurve 对曲线均匀采样 n 个点
func NewSampledCurve(curve Ellipse, n int) Primitive {
	return Primitive{Kind: KindSampledCurve, Points: curve.Sample(n), Style: DefaultLineStyle}
}

// Finite 所有坐标都是有限值
func (p Primitive) Finite() bool {
	for _, pt := range p.Points {
		if !pt.Finite() {
			return false
		}
	}
	return true
}

// BBox 图元自身坐标下的包围盒
func (p Primitive) BBox() core.BBox {
	box := core.EmptyBBox()
	for _, pt := range p.Points {
		box = box.Extend(pt)
	}
	return box
}

// Group 图元容器，图元顺序即目录顺序
type Group struct {
	Children  []Primitive
	Position  core.Point
	RotationX float64 // 绕 X 轴旋转（弧度）
}

// NewGroup IGES 为 Z 轴向上，接收端为 Y 轴向上，统一绕 X 轴旋转 -90°
func NewGroup() *Group {
	return &Group{RotationX: -math.Pi / 2}
}

func (g *Group) Add(p ...Primitive) {
	g.Children = append(g.Children, p...)
}

// World 将图元坐标变换到世界坐标
func (g *Group) World(p core.Point) core.Point {
	w := p.RotateX(g.RotationX)
	return core.Point{X: w.X + g.Position.X, Y: w.Y + g.Position.Y, Z: w.Z + g.Position.Z}
}
