package scene

import (
	"math"

	"github.com/zooyer/golib/xmath"
	"github.com/zooyer/iges/core"
)

const epsilon = 2.220446049250313e-16

// Ellipse 平面参数曲线：中心、两个半径、起止角度、方向与自身旋转
type Ellipse struct {
	Center           core.Point
	RadiusX, RadiusY float64
	Start, End       float64 // 弧度
	Clockwise        bool
	Rotation         float64
}

// sweep 起止角之间扫过的角度。
// 起止角相同视为零长度，相差 2π 的整数倍视为整圆。
func (e Ellipse) sweep() float64 {
	const twoPi = 2 * math.Pi

	delta := e.End - e.Start
	same := xmath.Equal(math.Abs(delta), 0, epsilon)

	for delta < 0 {
		delta += twoPi
	}
	for delta > twoPi {
		delta -= twoPi
	}

	if delta < epsilon {
		if same {
			delta = 0
		} else {
			delta = twoPi
		}
	}

	if e.Clockwise && !same {
		if delta == twoPi {
			delta = -twoPi
		} else {
			delta -= twoPi
		}
	}

	return delta
}

// Point 参数 t∈[0,1] 处的点
func (e Ellipse) Point(t float64) core.Point {
	angle := e.Start + t*e.sweep()
	x := e.Center.X + e.RadiusX*math.Cos(angle)
	y := e.Center.Y + e.RadiusY*math.Sin(angle)

	if e.Rotation != 0 {
		sin, cos := math.Sincos(e.Rotation)
		tx, ty := x-e.Center.X, y-e.Center.Y
		x = tx*cos - ty*sin + e.Center.X
		y = tx*sin + ty*cos + e.Center.Y
	}

	return core.Point{X: x, Y: y, Z: e.Center.Z}
}

// Sample 均匀采样 n 个点，首尾分别是起点和终点
func (e Ellipse) Sample(n int) []core.Point {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []core.Point{e.Point(0)}
	}

	points := make([]core.Point, n)
	for i := range points {
		points[i] = e.Point(float64(i) / float64(n-1))
	}
	return points
}
