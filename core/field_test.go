package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHollerith(t *testing.T) {
	tests := []struct {
		token string
		want  string
		ok    bool
	}{
		{"4HABCD", "ABCD", true},
		{"  4HABCD", "ABCD", true},
		{"0H", "", true},
		{"3HA,B", "A,B", true},
		{"6HAB", "AB", true}, // 长度不足时尽量截取
		{"2HABCD", "AB", true},
		{"ABCD", "", false},
		{"", "", false},
		{"XH12", "", false},
	}

	for _, tt := range tests {
		got, ok := Hollerith(tt.token)
		assert.Equal(t, tt.ok, ok, tt.token)
		assert.Equal(t, tt.want, got, tt.token)
	}
}

func TestHollerith_Latin1(t *testing.T) {
	got, ok := Hollerith("4Hcaf\xe9")
	assert.True(t, ok)
	assert.Equal(t, "café", got)
}

func TestParseFloat(t *testing.T) {
	assert.Equal(t, 150.0, ParseFloat("1.5D+02"))
	assert.Equal(t, 150.0, ParseFloat("1.5e+02"))
	assert.Equal(t, 150.0, ParseFloat(" 1.5E2 "))
	assert.Equal(t, -3.0, ParseFloat("-3."))
	assert.Equal(t, 0.25, ParseFloat("2.5D-1"))
	assert.True(t, math.IsNaN(ParseFloat("")))
	assert.True(t, math.IsNaN(ParseFloat("   ")))
	assert.True(t, math.IsNaN(ParseFloat("abc")))
	assert.True(t, math.IsNaN(ParseFloat("1.5d+02")), "D 区分大小写")
}

func TestFixedInt(t *testing.T) {
	line := "     110      12                "

	v, ok := FixedInt(line, 0, 8)
	assert.True(t, ok)
	assert.Equal(t, 110, v)

	v, ok = FixedInt(line, 8, 8)
	assert.True(t, ok)
	assert.Equal(t, 12, v)

	_, ok = FixedInt(line, 16, 8)
	assert.False(t, ok, "空白字段")

	_, ok = FixedInt(line, 100, 8)
	assert.False(t, ok, "越界字段")

	_, ok = FixedInt("   1x2  ", 0, 8)
	assert.False(t, ok, "非法字段")
}

func TestSplit(t *testing.T) {
	assert.Equal(t, []string{"110", "1.", "2.", ""}, Split("110,1.,2.,", ','))
	assert.Equal(t, []string{"212", "5HA,B;C", "3."}, Split("212,5HA,B;C,3.", ','))
	assert.Equal(t, []string{"a;b", " 4H;;;;", " c"}, Split("a;b, 4H;;;;, c", ','))
	assert.Equal(t, []string{"1.5D2", "2"}, Split("1.5D2,2", ','))
	assert.Equal(t, []string{""}, Split("", ','))

	// 按记录切分时，参数分隔符之后的字符串同样受保护
	assert.Equal(t, []string{"212,1,5Ha,b;c", "116,1.,2.,3.", ""}, Split("212,1,5Ha,b;c;116,1.,2.,3.;", ';', ','))
	assert.Equal(t, []string{"212,1,5Ha,b", "c", ""}, Split("212,1,5Ha,b;c;", ';'))

	// 声明长度超出或之后不是分隔符时，按普通字段切分
	assert.Equal(t, []string{"212,1,40HABC", "116,1.,2.,3.", ""}, Split("212,1,40HABC;116,1.,2.,3.;", ';', ','))
	assert.Equal(t, []string{"212,1,9HABC", "     116,1.", ""}, Split("212,1,9HABC;     116,1.;", ';', ','))
	assert.Equal(t, []string{"3HA,B", "C"}, Split("3HA,B,C", ','))
	assert.Equal(t, []string{"5HAB", "C"}, Split("5HAB,C", ','))
}

func TestHollerithOverrun(t *testing.T) {
	assert.True(t, HollerithOverrun("40HABC"))
	assert.True(t, HollerithOverrun("  6HAB"))
	assert.False(t, HollerithOverrun("3HABC"))
	assert.False(t, HollerithOverrun("0H"))
	assert.False(t, HollerithOverrun("1.5"))
	assert.False(t, HollerithOverrun("ABCH"))
	assert.False(t, HollerithOverrun(""))
}
