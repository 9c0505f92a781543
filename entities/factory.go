package entities

import (
	"github.com/zooyer/iges/core"
	"github.com/zooyer/iges/scene"
)

// Entity 是一切几何实体的接口
type Entity interface {
	// Parse 从合并后的记录中读取参数，不支持的形式号返回 core.ErrUnsupportedForm
	Parse(rec core.Record) error
	Type() core.EntityType
	Directory() core.Directory
	// Primitives 生成图元，未实现的类型返回 core.ErrNotImplemented
	Primitives() ([]scene.Primitive, error)
}

// BaseEntity 存放所有实体通用的目录属性
type BaseEntity struct {
	TypeCode core.EntityType
	Dir      core.Directory
}

func (b *BaseEntity) Type() core.EntityType { return b.TypeCode }

func (b *BaseEntity) Directory() core.Directory { return b.Dir }

// Form 形式号
func (b *BaseEntity) Form() int { return b.Dir.Form }

// EntityFactory 创建一个空实体
type EntityFactory func() Entity

var registry = map[core.EntityType]EntityFactory{}

// Register 注册实体类型，同一类型后注册的覆盖先注册的
func Register(t core.EntityType, factory EntityFactory) {
	registry[t] = factory
}

// CreateEntity 根据实体类型生产对应的结构体，未知类型返回 nil
func CreateEntity(t core.EntityType) Entity {
	if factory, ok := registry[t]; ok {
		return factory()
	}
	return nil
}

// Registered 已注册的实体类型
func Registered(t core.EntityType) bool {
	_, ok := registry[t]
	return ok
}
