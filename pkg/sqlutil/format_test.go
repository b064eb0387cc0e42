package sqlutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSQLFormat_Collapse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"多空格和换行", "SELECT   *\nFROM t", "SELECT * FROM t"},
		{"制表符", "SELECT\t*\t\tFROM t", "SELECT * FROM t"},
		{"回车换行", "SELECT *\r\n  FROM t\r\nWHERE id = 1", "SELECT * FROM t WHERE id = 1"},
		{"首尾空白保留为单个空格", "  SELECT 1  ", " SELECT 1 "},
		{"空字符串", "", ""},
		{"无需处理", "SELECT 1", "SELECT 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SQLFormat(tt.input, false))
		})
	}
}

func TestSQLFormat_Pretty(t *testing.T) {
	prev := GetFormatter()
	defer SetFormatter(prev)

	SetFormatter(FormatterFunc(strings.ToUpper))
	assert.Equal(t, "SELECT * FROM T", SQLFormat("select * from t", true))
	// format=false 不经过格式化器
	assert.Equal(t, "select * from t", SQLFormat("select  *\nfrom t", false))
}

func TestSQLFormat_PrettyWithoutFormatter(t *testing.T) {
	prev := GetFormatter()
	defer SetFormatter(prev)

	SetFormatter(nil)
	assert.Equal(t, "SELECT * FROM t", SQLFormat("SELECT   *\nFROM t", true))
}
