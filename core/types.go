package core

import "strconv"

// Section 第 73 列的段标识
type Section byte

const (
	SectionStart     Section = 'S'
	SectionGlobal    Section = 'G'
	SectionDirectory Section = 'D'
	SectionParameter Section = 'P'
	SectionTerminate Section = 'T'
)

func (s Section) String() string {
	switch s {
	case SectionStart:
		return "start"
	case SectionGlobal:
		return "global"
	case SectionDirectory:
		return "directory"
	case SectionParameter:
		return "parameter"
	case SectionTerminate:
		return "terminate"
	case 0:
		return ""
	}
	return strconv.QuoteRune(rune(s))
}

// EntityType IGES 实体类型号
type EntityType int

const (
	TypeCircularArc          EntityType = 100
	TypeCompositeCurve       EntityType = 102
	TypeCopiousData          EntityType = 106
	TypePlane                EntityType = 108
	TypeLine                 EntityType = 110
	TypePoint                EntityType = 116
	TypeSurfaceOfRevolution  EntityType = 120
	TypeTabulatedCylinder    EntityType = 122
	TypeTransformationMatrix EntityType = 124
	TypeRationalBSplineCurve EntityType = 126
	TypeRationalBSplineSurf  EntityType = 128
	TypeCurveOnSurface       EntityType = 142
	TypeTrimmedSurface       EntityType = 144
	TypeGeneralNote          EntityType = 212
	TypeLeader               EntityType = 214
	TypeLinearDimension      EntityType = 216
	TypeColorDefinition      EntityType = 314
	TypeAssociativity        EntityType = 402
	TypeProperty             EntityType = 406
)

var typeNames = map[EntityType]string{
	TypeCircularArc:          "Circular Arc",
	TypeCompositeCurve:       "Composite Curve",
	TypeCopiousData:          "Path",
	TypePlane:                "Plane",
	TypeLine:                 "Line",
	TypePoint:                "Point",
	TypeSurfaceOfRevolution:  "Surface of Revolution",
	TypeTabulatedCylinder:    "Tabulated Cylinder",
	TypeTransformationMatrix: "Transformation Matrix",
	TypeRationalBSplineCurve: "Rational B-Spline Curve",
	TypeRationalBSplineSurf:  "Rational B-Spline Surface",
	TypeCurveOnSurface:       "Curve on Parametric Surface",
	TypeTrimmedSurface:       "Trimmed Surface",
	TypeGeneralNote:          "General Note",
	TypeLeader:               "Leader",
	TypeLinearDimension:      "Linear Dimension",
	TypeColorDefinition:      "Color Definition",
	TypeAssociativity:        "Associativity Instance",
	TypeProperty:             "Property",
}

// String 返回实体类型名称，未知类型返回数字
func (t EntityType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return strconv.Itoa(int(t))
}

// Known 是否为已识别的实体类型
func (t EntityType) Known() bool {
	_, ok := typeNames[t]
	return ok
}
