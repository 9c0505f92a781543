package core

import "errors"

var (
	// ErrStructure 结构性错误：目录条目数与结束段声明不一致，整个文件解析失败
	ErrStructure = errors.New("iges: structure mismatch")

	// ErrUnsupportedForm 实体类型已实现，但不支持该形式号
	ErrUnsupportedForm = errors.New("iges: unsupported form")

	// ErrNotImplemented 已识别但未实现的实体类型
	ErrNotImplemented = errors.New("iges: entity not implemented")

	// ErrShortParams 参数个数不足
	ErrShortParams = errors.New("iges: not enough parameters")
)
