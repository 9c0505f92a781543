package utils

import (
	"math"

	"github.com/zooyer/iges/core"
	"github.com/zooyer/iges/scene"
)

// TransformBBox 将图元坐标下的包围盒变换到分组所在的世界坐标
func TransformBBox(local core.BBox, g *scene.Group) core.BBox {
	if local.Empty() {
		return local
	}

	corners := []core.Point{
		{X: local.Min.X, Y: local.Min.Y, Z: local.Min.Z},
		{X: local.Max.X, Y: local.Min.Y, Z: local.Min.Z},
		{X: local.Max.X, Y: local.Max.Y, Z: local.Min.Z},
		{X: local.Min.X, Y: local.Max.Y, Z: local.Min.Z},
		{X: local.Min.X, Y: local.Min.Y, Z: local.Max.Z},
		{X: local.Max.X, Y: local.Min.Y, Z: local.Max.Z},
		{X: local.Max.X, Y: local.Max.Y, Z: local.Max.Z},
		{X: local.Min.X, Y: local.Max.Y, Z: local.Max.Z},
	}

	box := core.EmptyBBox()
	for _, p := range corners {
		box = box.Extend(g.World(p))
	}

	return box
}

// GroupBBox 分组内全部图元在图元坐标下的包围盒
func GroupBBox(g *scene.Group) core.BBox {
	box := core.EmptyBBox()
	for _, p := range g.Children {
		box = box.Union(p.BBox())
	}
	return box
}

// GroupBBoxWCS 分组的世界坐标包围盒
func GroupBBoxWCS(g *scene.Group) core.BBox {
	return TransformBBox(GroupBBox(g), g)
}

// PrimitiveBoxes 每个图元的包围盒，没有有限坐标的图元被跳过
func PrimitiveBoxes(g *scene.Group) []core.BBox {
	boxes := make([]core.BBox, 0, len(g.Children))
	for _, p := range g.Children {
		if box := p.BBox(); !box.Empty() {
			boxes = append(boxes, box)
		}
	}
	return boxes
}

// MergeBoxes 合并 XY 平面上重叠的矩形，结果是互相分离的区域
func MergeBoxes(boxes []core.BBox, gap float64) []core.BBox {
	if len(boxes) < 2 {
		return boxes
	}

	for {
		changed := false
		var merged []core.BBox
		visited := make([]bool, len(boxes))
		for i := 0; i < len(boxes); i++ {
			if visited[i] {
				continue
			}
			curr := boxes[i]
			visited[i] = true
			for j := i + 1; j < len(boxes); j++ {
				if !visited[j] && !IsSeparate(curr, boxes[j], gap) {
					curr = curr.Union(boxes[j])
					visited[j], changed = true, true
				}
			}
			merged = append(merged, curr)
		}
		boxes = merged
		if !changed {
			break
		}
	}

	return boxes
}

// IsSeparate 判断两个 BBox 在 XY 平面上是否完全分离
func IsSeparate(a, b core.BBox, gap float64) bool {
	return a.Max.X+gap < b.Min.X || a.Min.X-gap > b.Max.X ||
		a.Max.Y+gap < b.Min.Y || a.Min.Y-gap > b.Max.Y
}

// InBox 点是否落在包围盒的 XY 范围内，空包围盒不包含任何点
func InBox(box core.BBox, p core.Point) bool {
	return !box.Empty() &&
		box.Min.X <= p.X && p.X <= box.Max.X &&
		box.Min.Y <= p.Y && p.Y <= box.Max.Y
}

// Center 包围盒中心
func Center(box core.BBox) core.Point {
	return core.Point{
		X: (box.Min.X + box.Max.X) / 2,
		Y: (box.Min.Y + box.Max.Y) / 2,
		Z: (box.Min.Z + box.Max.Z) / 2,
	}
}

// Size 包围盒三个方向的尺寸，空包围盒为 0
func Size(box core.BBox) core.Point {
	if box.Empty() {
		return core.Point{}
	}
	return core.Point{
		X: math.Abs(box.Max.X - box.Min.X),
		Y: math.Abs(box.Max.Y - box.Min.Y),
		Z: math.Abs(box.Max.Z - box.Min.Z),
	}
}
