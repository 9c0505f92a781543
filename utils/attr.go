package utils

import (
	"strconv"

	"github.com/zooyer/iges/core"
)

// GetAttrs 目录条目中的显示属性。这些属性被解析但不参与图元样式。
func GetAttrs(dir core.Directory) map[string]string {
	var attrs = map[string]string{
		"type":        dir.Type.String(),
		"form":        strconv.Itoa(dir.Form),
		"level":       strconv.Itoa(dir.Level),
		"view":        strconv.Itoa(dir.View),
		"transform":   strconv.Itoa(dir.Transform),
		"line_type":   strconv.Itoa(dir.LineType),
		"line_weight": strconv.Itoa(dir.LineWeight),
		"color":       strconv.Itoa(dir.Color),
		"status":      string(dir.Status),
		"blank":       strconv.Itoa(dir.Status.Blank()),
		"use":         strconv.Itoa(dir.Status.Use()),
	}
	if dir.Label != "" {
		attrs["label"] = dir.Label
		attrs["subscript"] = strconv.Itoa(dir.Subscript)
	}

	return attrs
}

func GetAttr(dir core.Directory, key string) string {
	return GetAttrs(dir)[key]
}
