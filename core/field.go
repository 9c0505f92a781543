package core

import (
	"bytes"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Hollerith 解析 IGES 字符串 "nHxxx"，返回 H 之后的 n 个字符。
// 没有 H 标记时返回 ok=false（与空字符串 "0H" 区分）。
// n 超出可用长度时尽量截取剩余部分，不做校验。
func Hollerith(token string) (value string, ok bool) {
	s := strings.TrimLeft(token, " ")
	i := strings.IndexByte(s, 'H')
	if i < 0 {
		return "", false
	}

	n, err := strconv.Atoi(strings.TrimSpace(s[:i]))
	if err != nil || n < 0 {
		return "", false
	}

	start := i + 1
	end := start + n
	if end > len(s) {
		end = len(s)
	}

	return decodeText(s[start:end]), true
}

// decodeText 非 UTF-8 的字符串按 Latin-1 转码
func decodeText(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	if text, err := charmap.ISO8859_1.NewDecoder().String(s); err == nil {
		return text
	}
	return s
}

// ParseFloat 解析 IGES 浮点数，双精度指数标记 D 视同 e。
// 空值或非法值返回 NaN。
func ParseFloat(token string) float64 {
	s := strings.TrimSpace(token)
	if s == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(strings.Replace(s, "D", "e", 1), 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// FixedInt 读取 line[start:start+width] 定宽整数字段。
// 空白或非法时返回 ok=false，目录中未使用的属性经常是空白。
func FixedInt(line string, start, width int) (value int, ok bool) {
	field := FixedString(line, start, width)
	if field == "" {
		return 0, false
	}
	v, err := strconv.Atoi(field)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FixedString 读取定宽字段并去掉两端空格，越界部分按空白处理
func FixedString(line string, start, width int) string {
	if start >= len(line) || start < 0 {
		return ""
	}
	end := start + width
	if end > len(line) {
		end = len(line)
	}
	return strings.TrimSpace(line[start:end])
}

// Split 按分隔符切分字段，nH 字符串内部出现的分隔符不参与切分。
// inner 是不参与切分、但之后可能开始新字符串的分隔符，
// 按记录分隔符切分参数段时传入参数分隔符。
func Split(s string, sep byte, inner ...byte) []string {
	var (
		fields []string
		start  int
		fresh  = true
	)

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == sep {
			fields = append(fields, s[start:i])
			start, fresh = i+1, true
			continue
		}
		if bytes.IndexByte(inner, c) >= 0 {
			fresh = true
			continue
		}
		if c == ' ' || !fresh {
			continue
		}
		fresh = false
		if end, ok := skipHollerith(s, i, sep, inner); ok {
			i = end - 1
		}
	}

	return append(fields, s[start:])
}

// skipHollerith 如果 s[i:] 以 nH 开头，返回字符串结束位置。
// 字符串之后（跳过空格）必须是分隔符或结尾，否则长度不可信，按普通字段处理。
func skipHollerith(s string, i int, sep byte, inner []byte) (int, bool) {
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i || j >= len(s) || s[j] != 'H' {
		return 0, false
	}

	n, err := strconv.Atoi(s[i:j])
	if err != nil {
		return 0, false
	}

	end := j + 1 + n
	if end > len(s) {
		return 0, false
	}

	k := end
	for k < len(s) && s[k] == ' ' {
		k++
	}
	if k < len(s) && s[k] != sep && bytes.IndexByte(inner, s[k]) < 0 {
		return 0, false
	}

	return end, true
}

// HollerithOverrun 字符串声明的长度 n 超过了实际可用的字符数
func HollerithOverrun(token string) bool {
	s := strings.TrimLeft(token, " ")
	i := strings.IndexByte(s, 'H')
	if i <= 0 {
		return false
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil || n < 0 {
		return false
	}
	return n > len(s)-i-1
}
