package core

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Severity 诊断级别，诊断从不中断解析
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarn
)

func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	}
	return "warn"
}

// Level 对应的 slog 级别
func (s Severity) Level() slog.Level {
	switch s {
	case SeverityDebug:
		return slog.LevelDebug
	case SeverityInfo:
		return slog.LevelInfo
	}
	return slog.LevelWarn
}

// 诊断代码
const (
	CodeShortLine       = "short-line"
	CodeUnknownSection  = "unknown-section"
	CodeMissingSection  = "missing-section"
	CodePartialEntry    = "partial-entry"
	CodeCountMismatch   = "count-mismatch"
	CodeTypeMismatch    = "type-mismatch"
	CodePointerMismatch = "pointer-mismatch"
	CodeHollerith       = "bad-hollerith"
	CodeUnknownType     = "unknown-type"
	CodeNotImplemented  = "not-implemented"
	CodeUnsupportedForm = "unsupported-form"
	CodeShortParams     = "short-params"
	CodeNonFinite       = "non-finite"
)

// Diagnostic 可恢复的问题，对应的行或实体被跳过，其余内容照常处理
type Diagnostic struct {
	Severity Severity
	Code     string
	Section  Section // 所在段，0 表示无
	Line     int     // 物理行号（从 1 开始），0 表示无
	Entity   int     // 目录条目序号，0 表示无
	Message  string
}

func (d Diagnostic) String() string {
	var b strings.Builder
	b.WriteString(d.Severity.String())
	b.WriteString(" [")
	b.WriteString(d.Code)
	b.WriteString("]")
	if d.Section != 0 {
		fmt.Fprintf(&b, " %s", d.Section)
	}
	if d.Line > 0 {
		fmt.Fprintf(&b, " line %d", d.Line)
	}
	if d.Entity > 0 {
		fmt.Fprintf(&b, " DE %d", d.Entity)
	}
	if d.Message != "" {
		b.WriteString(": ")
		b.WriteString(d.Message)
	}
	return b.String()
}

// Emit 将诊断写入日志
func Emit(diags ...Diagnostic) {
	l := Logger()
	for _, d := range diags {
		if !l.Enabled(context.Background(), d.Severity.Level()) {
			continue
		}
		attrs := []slog.Attr{slog.String("code", d.Code)}
		if d.Section != 0 {
			attrs = append(attrs, slog.String("section", d.Section.String()))
		}
		if d.Line > 0 {
			attrs = append(attrs, slog.Int("line", d.Line))
		}
		if d.Entity > 0 {
			attrs = append(attrs, slog.Int("entity", d.Entity))
		}
		l.LogAttrs(context.Background(), d.Severity.Level(), d.Message, attrs...)
	}
}

// Warnf 构造 Warn 级别诊断
func Warnf(code string, format string, args ...any) Diagnostic {
	return Diagnostic{Severity: SeverityWarn, Code: code, Message: fmt.Sprintf(format, args...)}
}

// Infof 构造 Info 级别诊断
func Infof(code string, format string, args ...any) Diagnostic {
	return Diagnostic{Severity: SeverityInfo, Code: code, Message: fmt.Sprintf(format, args...)}
}

// Debugf 构造 Debug 级别诊断
func Debugf(code string, format string, args ...any) Diagnostic {
	return Diagnostic{Severity: SeverityDebug, Code: code, Message: fmt.Sprintf(format, args...)}
}

// Count 统计某个代码的诊断数量
func Count(diags []Diagnostic, code string) int {
	var n int
	for _, d := range diags {
		if d.Code == code {
			n++
		}
	}
	return n
}
