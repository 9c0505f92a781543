package core

import (
	"bufio"
	"io"
	"strings"
)

// ParameterWidth P 段每行的数据宽度，65-72 列是目录回指
const ParameterWidth = 64

const (
	tagColumn    = 72 // 第 73 列段标识
	lineWidth    = 80
	contentWidth = 72
)

// Line 一个非空物理行
type Line struct {
	Number int // 物理行号，从 1 开始，包含被丢弃的空行
	Text   string
}

// Scanner 按行读取，兼容 \n 与 \r\n，空行被跳过
type Scanner struct {
	reader   *bufio.Reader
	LastLine Line
	number   int
	err      error
	eof      bool
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		reader: bufio.NewReader(r),
	}
}

func (s *Scanner) Next() bool {
	for !s.eof {
		text, err := s.reader.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				s.err = err
				return false
			}
			// 最后一行可能没有换行符
			s.eof = true
		}
		if text == "" && s.eof {
			return false
		}

		s.number++
		text = strings.TrimRight(text, "\r\n")
		if text == "" {
			continue
		}

		s.LastLine = Line{Number: s.number, Text: text}
		return true
	}
	return false
}

func (s *Scanner) Err() error {
	return s.err
}

// Sections 五个段的原始内容
type Sections struct {
	Start     string
	Global    string
	Directory string // 每行完整 80 列，不裁剪
	Parameter string // 每行 1-64 列

	// Terminate 结束段 1-72 列
	Terminate string

	// ParameterPointers 每个 P 行 65-72 列的目录回指，下标与 P 行对应
	ParameterPointers []int

	// Lines 各段的物理行数
	Lines map[Section]int
}

// SplitSections 按第 73 列分拣每一行。
// 过短的行与未知段标识只产生诊断，不会使解析失败。
func SplitSections(r io.Reader) (Sections, []Diagnostic, error) {
	var (
		scanner = NewScanner(r)
		diags   []Diagnostic
		buffers = map[Section]*strings.Builder{
			SectionStart:     {},
			SectionGlobal:    {},
			SectionDirectory: {},
			SectionParameter: {},
			SectionTerminate: {},
		}
		sections = Sections{Lines: make(map[Section]int)}
	)

	for scanner.Next() {
		line := scanner.LastLine
		text := line.Text
		if len(text) <= tagColumn {
			d := Warnf(CodeShortLine, "line has %d columns, need at least 73", len(text))
			d.Line = line.Number
			diags = append(diags, d)
			continue
		}
		if len(text) > lineWidth {
			text = text[:lineWidth]
		}

		tag := Section(text[tagColumn])
		buf, ok := buffers[tag]
		if !ok {
			d := Warnf(CodeUnknownSection, "unknown section tag %q", text[tagColumn])
			d.Line = line.Number
			diags = append(diags, d)
			continue
		}
		sections.Lines[tag]++

		switch tag {
		case SectionDirectory:
			// 目录条目按 160 列窗口取值，短行补齐到 80 列保持对齐
			buf.WriteString(text)
			if pad := lineWidth - len(text); pad > 0 {
				buf.WriteString(strings.Repeat(" ", pad))
			}
		case SectionParameter:
			buf.WriteString(text[:ParameterWidth])
			ptr, _ := FixedInt(text, ParameterWidth, contentWidth-ParameterWidth)
			sections.ParameterPointers = append(sections.ParameterPointers, ptr)
		default:
			buf.WriteString(text[:contentWidth])
		}
	}

	sections.Start = buffers[SectionStart].String()
	sections.Global = buffers[SectionGlobal].String()
	sections.Directory = buffers[SectionDirectory].String()
	sections.Parameter = buffers[SectionParameter].String()
	sections.Terminate = buffers[SectionTerminate].String()

	return sections, diags, scanner.Err()
}
