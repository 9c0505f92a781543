package core

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler 丢弃所有日志，Enabled 返回 false 以跳过格式化
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger 设置诊断信息输出的日志，默认不输出。传 nil 恢复静默。
//
// 使用的级别：
//   - [slog.LevelDebug]: 缺少全局段时使用默认分隔符
//   - [slog.LevelInfo]: 未知或未实现的实体类型
//   - [slog.LevelWarn]: 被跳过的行、计数或指针不一致、不支持的形式号、非有限坐标
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger 返回当前日志，并发安全
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
