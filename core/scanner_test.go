package core

import (
	"fmt"
	"strings"
	"testing"
)

func igesLine(content string, tag byte, seq int) string {
	return fmt.Sprintf("%-72s%c%07d", content, tag, seq)
}

func TestScanner_Basic(t *testing.T) {
	// \r\n 与 \n 混用，中间的空行被丢弃，最后一行没有换行符
	data := "first\r\n\r\nsecond\n\nthird"
	scanner := NewScanner(strings.NewReader(data))

	expected := []Line{
		{1, "first"},
		{3, "second"},
		{5, "third"},
	}

	for i, exp := range expected {
		if !scanner.Next() {
			t.Fatalf("第 %d 步读取失败: %v", i, scanner.Err())
		}
		if scanner.LastLine != exp {
			t.Errorf("第 %d 步数据不符: 期望 %+v, 得到 %+v", i, exp, scanner.LastLine)
		}
	}
	if scanner.Next() {
		t.Errorf("期望结束, 得到 %+v", scanner.LastLine)
	}
}

func TestSplitSections(t *testing.T) {
	param := fmt.Sprintf("%-64s%8d", "116,1.,2.,3.;", 1)
	data := strings.Join([]string{
		igesLine("comment", 'S', 1),
		igesLine("1H,,1H;;", 'G', 1),
		igesLine("     116       1       0       1       0       0       0       000000000", 'D', 1),
		igesLine("     116       0       0       1       0", 'D', 2),
		param + "P0000001",
		igesLine("S0000001G0000001D0000002P0000001", 'T', 1),
	}, "\r\n")

	sections, diags, err := SplitSections(strings.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if len(diags) != 0 {
		t.Fatalf("不应有诊断: %v", diags)
	}

	if got := strings.TrimSpace(sections.Start); got != "comment" {
		t.Errorf("start = %q", got)
	}
	if len(sections.Start) != 72 {
		t.Errorf("start 应裁剪到 72 列, 得到 %d", len(sections.Start))
	}
	if len(sections.Directory) != 160 {
		t.Errorf("directory 应保留 160 列, 得到 %d", len(sections.Directory))
	}
	if len(sections.Parameter) != ParameterWidth {
		t.Errorf("parameter 应裁剪到 64 列, 得到 %d", len(sections.Parameter))
	}
	if len(sections.ParameterPointers) != 1 || sections.ParameterPointers[0] != 1 {
		t.Errorf("参数回指错误: %v", sections.ParameterPointers)
	}
	if sections.Lines[SectionDirectory] != 2 {
		t.Errorf("directory 行数 = %d", sections.Lines[SectionDirectory])
	}
}

func TestSplitSections_ShortAndUnknown(t *testing.T) {
	data := strings.Join([]string{
		"too short",
		igesLine("x", 'X', 1),
		strings.Repeat("a", 72),
	}, "\n")

	sections, diags, err := SplitSections(strings.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if n := Count(diags, CodeShortLine); n != 2 {
		t.Errorf("短行诊断 = %d, 期望 2", n)
	}
	if n := Count(diags, CodeUnknownSection); n != 1 {
		t.Errorf("未知段诊断 = %d, 期望 1", n)
	}
	if diags[0].Line != 1 || diags[1].Line != 2 {
		t.Errorf("诊断行号错误: %v", diags)
	}
	if sections.Directory != "" || sections.Parameter != "" {
		t.Errorf("不应有内容: %+v", sections)
	}
}

func TestSplitSections_TruncateAndPad(t *testing.T) {
	long := igesLine("x", 'S', 1) + "EXTRA"
	short := fmt.Sprintf("%-72sD", "     110")

	sections, _, err := SplitSections(strings.NewReader(long + "\n" + short))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(sections.Start, "EXTRA") {
		t.Error("80 列之后的内容应被丢弃")
	}
	if len(sections.Directory) != 80 {
		t.Errorf("短目录行应补齐到 80 列, 得到 %d", len(sections.Directory))
	}
}
