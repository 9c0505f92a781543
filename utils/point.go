package utils

import (
	"math"

	"github.com/zooyer/iges/core"
	"github.com/zooyer/iges/scene"
)

// TopView 世界坐标的俯视投影：沿世界 Y 轴向下看，平面坐标为 (X, -Z)。
// 分组绕 X 轴旋转 -90° 后，这正好是 IGES 原始的 XY 平面。
func TopView(g *scene.Group, p core.Point) (x, y float64) {
	w := g.World(p)
	return w.X, -w.Z
}

// Viewport 平面坐标到像素坐标的映射，像素 Y 轴向下
type Viewport struct {
	Width, Height float64
	Scale         float64
	OffsetX       float64
	OffsetY       float64
}

// Fit 让 XY 范围为 box 的内容等比居中放进 width x height、四周留 margin 的画布
func Fit(box core.BBox, width, height, margin float64) Viewport {
	v := Viewport{Width: width, Height: height, Scale: 1}
	if box.Empty() {
		v.OffsetX, v.OffsetY = width/2, height/2
		return v
	}

	var (
		w  = box.Max.X - box.Min.X
		h  = box.Max.Y - box.Min.Y
		aw = math.Max(width-2*margin, 1)
		ah = math.Max(height-2*margin, 1)
	)

	switch {
	case w > 0 && h > 0:
		v.Scale = math.Min(aw/w, ah/h)
	case w > 0:
		v.Scale = aw / w
	case h > 0:
		v.Scale = ah / h
	}

	cx, cy := (box.Min.X+box.Max.X)/2, (box.Min.Y+box.Max.Y)/2
	v.OffsetX = width/2 - cx*v.Scale
	v.OffsetY = height/2 + cy*v.Scale

	return v
}

// Map 平面坐标转像素坐标
func (v Viewport) Map(x, y float64) (px, py float64) {
	return x*v.Scale + v.OffsetX, v.OffsetY - y*v.Scale
}

// ProjectedBBox 分组俯视投影后的 XY 范围
func ProjectedBBox(g *scene.Group) core.BBox {
	box := core.EmptyBBox()
	for _, prim := range g.Children {
		for _, p := range prim.Points {
			x, y := TopView(g, p)
			box = box.Extend(core.Point{X: x, Y: y})
		}
	}
	return box
}
