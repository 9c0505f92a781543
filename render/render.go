// Package render 把图元分组按俯视投影光栅化为 PNG 预览图。
package render

import (
	"errors"
	"io"
	"os"

	"github.com/gogpu/gg"

	"github.com/zooyer/iges/core"
	"github.com/zooyer/iges/scene"
	"github.com/zooyer/iges/utils"
)

var ErrSize = errors.New("render: width and height must be positive")

type Options struct {
	Width      int
	Height     int
	Margin     float64
	Background string  // 十六进制颜色
	LineWidth  float64 // 0 时使用图元样式
	PointSize  float64 // 0 时使用图元样式
}

func DefaultOptions() Options {
	return Options{
		Width:      1024,
		Height:     768,
		Margin:     16,
		Background: "#ffffff",
	}
}

// Draw 绘制到新的画布，调用方负责 Close
func Draw(g *scene.Group, opts Options) (*gg.Context, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, ErrSize
	}

	var (
		dc = gg.NewContext(opts.Width, opts.Height)
		vp = utils.Fit(utils.ProjectedBBox(g), float64(opts.Width), float64(opts.Height), opts.Margin)
	)
	dc.ClearWithColor(gg.Hex(opts.Background))

	for _, prim := range g.Children {
		dc.SetColor(color(prim.Style.Color).Color())

		var err error
		switch prim.Kind {
		case scene.KindPointCloud:
			err = drawPoints(dc, g, vp, prim, pick(opts.PointSize, prim.Style.Size))
		default:
			dc.SetLineWidth(pick(opts.LineWidth, prim.Style.Width))
			err = drawLine(dc, g, vp, prim)
		}
		if err != nil {
			_ = dc.Close()
			return nil, err
		}
	}

	return dc, nil
}

// PNG 绘制并写出 PNG
func PNG(w io.Writer, g *scene.Group, opts Options) (err error) {
	dc, err := Draw(g, opts)
	if err != nil {
		return
	}

	defer func() {
		if e := dc.Close(); e != nil && err == nil {
			err = e
		}
	}()

	return dc.EncodePNG(w)
}

// SavePNG 绘制并保存到文件
func SavePNG(filename string, g *scene.Group, opts Options) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	return PNG(file, g, opts)
}

func drawPoints(dc *gg.Context, g *scene.Group, vp utils.Viewport, prim scene.Primitive, size float64) error {
	var drawn bool
	for _, p := range prim.Points {
		if !p.Finite() {
			continue
		}
		x, y := vp.Map(utils.TopView(g, p))
		dc.DrawPoint(x, y, size)
		drawn = true
	}
	if !drawn {
		return nil
	}
	return dc.Fill()
}

// drawLine 非有限坐标处断开折线
func drawLine(dc *gg.Context, g *scene.Group, vp utils.Viewport, prim scene.Primitive) error {
	var (
		open     bool
		segments int
	)
	for _, p := range prim.Points {
		if !p.Finite() {
			open = false
			continue
		}
		x, y := vp.Map(utils.TopView(g, p))
		if !open {
			dc.MoveTo(x, y)
			open = true
			continue
		}
		dc.LineTo(x, y)
		segments++
	}
	if segments == 0 {
		dc.ClearPath()
		return nil
	}
	return dc.Stroke()
}

func color(rgb uint32) gg.RGBA {
	return gg.RGB(
		float64(rgb>>16&0xff)/255,
		float64(rgb>>8&0xff)/255,
		float64(rgb&0xff)/255,
	)
}

func pick(override, style float64) float64 {
	if override > 0 {
		return override
	}
	return style
}

// Bounds 投影后的内容范围，供调用方检查是否为空
func Bounds(g *scene.Group) core.BBox {
	return utils.ProjectedBBox(g)
}
