package entities

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zooyer/iges/core"
	"github.com/zooyer/iges/scene"
)

func record(t core.EntityType, form int, params string) core.Record {
	return core.Record{
		Type:      t,
		Directory: core.Directory{Type: t, Form: form, Sequence: 1},
		Params:    core.Split(params, ','),
	}
}

func build(t *testing.T, rec core.Record) []scene.Primitive {
	t.Helper()
	ent := CreateEntity(rec.Type)
	require.NotNil(t, ent, "类型 %d 未注册", rec.Type)
	require.NoError(t, ent.Parse(rec))
	prims, err := ent.Primitives()
	require.NoError(t, err)
	return prims
}

func TestPoint(t *testing.T) {
	prims := build(t, record(core.TypePoint, 0, "10.,20.,30.,0"))
	require.Len(t, prims, 1)
	assert.Equal(t, scene.KindPointCloud, prims[0].Kind)
	assert.Equal(t, []core.Point{{X: 10, Y: 20, Z: 30}}, prims[0].Points)
	assert.Equal(t, scene.DefaultPointStyle, prims[0].Style)
}

func TestLine(t *testing.T) {
	for _, form := range []int{0, 2} {
		prims := build(t, record(core.TypeLine, form, "1.,2.,3.,4.D0,5.,6."))
		require.Len(t, prims, 1)
		assert.Equal(t, scene.KindPolyline, prims[0].Kind)
		assert.Equal(t, []core.Point{{X: 1, Y: 2, Z: 3}, {X: 4, Y: 5, Z: 6}}, prims[0].Points)
	}

	err := CreateEntity(core.TypeLine).Parse(record(core.TypeLine, 1, "1.,2.,3.,4.,5.,6."))
	assert.ErrorIs(t, err, core.ErrUnsupportedForm)
}

func TestLine_NaNPropagates(t *testing.T) {
	prims := build(t, record(core.TypeLine, 0, "1.,2.,3.,x"))
	require.Len(t, prims, 1)
	assert.True(t, math.IsNaN(prims[0].Points[1].X))
	assert.False(t, prims[0].Finite())
}

func TestCircularArc(t *testing.T) {
	ent := CreateEntity(core.TypeCircularArc)
	require.NoError(t, ent.Parse(record(core.TypeCircularArc, 0, "5.,0.,0.,3.,0.,0.,3.")))

	arc := ent.(*CircularArc)
	start, end := arc.Angles()
	assert.InDelta(t, 0, start, 1e-12)
	assert.InDelta(t, math.Pi/2, end, 1e-12)
	assert.InDelta(t, 3, arc.Radius(), 1e-12)

	prims, err := ent.Primitives()
	require.NoError(t, err)
	require.Len(t, prims, 1)
	assert.Equal(t, scene.KindSampledCurve, prims[0].Kind)
	require.Len(t, prims[0].Points, ArcSamples)

	// 单位半径，Z 为平面位移
	first, last := prims[0].Points[0], prims[0].Points[ArcSamples-1]
	assert.InDelta(t, 1, first.X, 1e-9)
	assert.InDelta(t, 0, first.Y, 1e-9)
	assert.InDelta(t, 0, last.X, 1e-9)
	assert.InDelta(t, 1, last.Y, 1e-9)
	assert.Equal(t, 5.0, first.Z)
}

func TestCircularArc_FullCircle(t *testing.T) {
	prims := build(t, record(core.TypeCircularArc, 0, "0.,1.,1.,2.,1.,2.,1."))
	points := prims[0].Points
	mid := points[len(points)/2]
	// 中点应接近起点对侧
	assert.Less(t, mid.X, 1.0)
}

func TestPath(t *testing.T) {
	tests := []struct {
		name   string
		form   int
		params string
		want   []core.Point
	}{
		{"linear", PathLinear3D, "2,2,0.,0.,0.,1.,2.,3.", []core.Point{{}, {X: 1, Y: 2, Z: 3}}},
		{"witness", PathWitness, "1,3,7.,0.,0.,1.,1.,2.,0.", []core.Point{{Z: 7}, {X: 1, Y: 1, Z: 7}, {X: 2, Z: 7}}},
		{"closed", PathClosedArea, "1,3,9.,0.,0.,1.,0.,0.,0.", []core.Point{{}, {X: 1}, {}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prims := build(t, record(core.TypeCopiousData, tt.form, tt.params))
			require.Len(t, prims, 1)
			assert.Equal(t, scene.KindPolyline, prims[0].Kind)
			assert.Equal(t, tt.want, prims[0].Points)
		})
	}
}

func TestPath_Errors(t *testing.T) {
	err := CreateEntity(core.TypeCopiousData).Parse(record(core.TypeCopiousData, 11, "1,2,0.,0.,0.,1.,1."))
	assert.ErrorIs(t, err, core.ErrUnsupportedForm)

	err = CreateEntity(core.TypeCopiousData).Parse(record(core.TypeCopiousData, 12, "2"))
	assert.ErrorIs(t, err, core.ErrShortParams)
}

func TestBSplineCurve(t *testing.T) {
	// K=1 M=1：直线，节点 4 个，权重 2 个，控制点从第 12 个参数开始
	params := "1,1,1,0,1,0,0.,0.,1.,1.,1.,1.,0.,0.,0.,1.,2.,3.,0.,1.,0.,0.,1."
	prims := build(t, record(core.TypeRationalBSplineCurve, 0, params))
	require.Len(t, prims, 1)
	assert.Equal(t, []core.Point{{}, {X: 1, Y: 2, Z: 3}}, prims[0].Points)

	ent := CreateEntity(core.TypeRationalBSplineCurve)
	require.NoError(t, ent.Parse(record(core.TypeRationalBSplineCurve, 1, params)))
	b := ent.(*BSplineCurve)
	assert.Equal(t, []float64{0, 0, 1, 1}, b.Knots)
	assert.Equal(t, []float64{1, 1}, b.Weights)

	for form := 2; form <= 5; form++ {
		err := CreateEntity(core.TypeRationalBSplineCurve).Parse(record(core.TypeRationalBSplineCurve, form, params))
		assert.ErrorIs(t, err, core.ErrUnsupportedForm)
	}

	err := CreateEntity(core.TypeRationalBSplineCurve).Parse(record(core.TypeRationalBSplineCurve, 0, "x"))
	assert.ErrorIs(t, err, core.ErrShortParams)
}

func TestUnsupported(t *testing.T) {
	for _, typ := range []core.EntityType{
		core.TypeCompositeCurve, core.TypePlane, core.TypeSurfaceOfRevolution,
		core.TypeTabulatedCylinder, core.TypeTransformationMatrix, core.TypeRationalBSplineSurf,
		core.TypeCurveOnSurface, core.TypeTrimmedSurface, core.TypeGeneralNote, core.TypeLeader,
		core.TypeLinearDimension, core.TypeColorDefinition, core.TypeAssociativity, core.TypeProperty,
	} {
		ent := CreateEntity(typ)
		require.NotNil(t, ent, typ.String())
		assert.Equal(t, typ, ent.Type())
		require.NoError(t, ent.Parse(record(typ, 0, "1,2")))

		prims, err := ent.Primitives()
		assert.Nil(t, prims)
		assert.ErrorIs(t, err, core.ErrNotImplemented)
		assert.True(t, strings.Contains(err.Error(), typ.String()))
	}

	assert.Nil(t, CreateEntity(core.EntityType(999)))
}
