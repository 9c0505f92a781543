package entities

import (
	"fmt"

	"github.com/zooyer/iges/core"
	"github.com/zooyer/iges/scene"
)

// Unsupported 已识别但尚未实现的实体类型，不产生图元。
// 实现某个类型时，在新文件中 Register 同一类型号即可覆盖。
type Unsupported struct {
	BaseEntity
	Params core.Params
}

func init() {
	for _, t := range []core.EntityType{
		core.TypeCompositeCurve,
		core.TypePlane,
		core.TypeSurfaceOfRevolution,
		core.TypeTabulatedCylinder,
		core.TypeTransformationMatrix,
		core.TypeRationalBSplineSurf,
		core.TypeCurveOnSurface,
		core.TypeTrimmedSurface,
		core.TypeGeneralNote,
		core.TypeLeader,
		core.TypeLinearDimension,
		core.TypeColorDefinition,
		core.TypeAssociativity,
		core.TypeProperty,
	} {
		if !Registered(t) {
			Register(t, unsupported(t))
		}
	}
}

func unsupported(t core.EntityType) EntityFactory {
	return func() Entity {
		return &Unsupported{BaseEntity: BaseEntity{TypeCode: t}}
	}
}

func (u *Unsupported) Parse(rec core.Record) error {
	u.Dir = rec.Directory
	u.Params = rec.Params
	return nil
}

func (u *Unsupported) Primitives() ([]scene.Primitive, error) {
	return nil, fmt.Errorf("%w: %s (%d)", core.ErrNotImplemented, u.TypeCode, int(u.TypeCode))
}
