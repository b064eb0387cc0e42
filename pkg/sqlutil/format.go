package sqlutil

import (
	"regexp"
	"sync"
)

// Formatter SQL 美化格式化器
type Formatter interface {
	Format(sql string) string
}

// FormatterFunc 函数适配为 Formatter
type FormatterFunc func(sql string) string

// Format 实现 Formatter
func (f FormatterFunc) Format(sql string) string {
	return f(sql)
}

var (
	whitespaceRegexp = regexp.MustCompile(`\s+`)

	formatterMu sync.RWMutex
	formatter   Formatter
)

// SetFormatter 设置 SQLFormat 使用的美化格式化器
func SetFormatter(f Formatter) {
	formatterMu.Lock()
	defer formatterMu.Unlock()
	formatter = f
}

// GetFormatter 返回当前美化格式化器，未设置时为 nil
func GetFormatter() Formatter {
	formatterMu.RLock()
	defer formatterMu.RUnlock()
	return formatter
}

// SQLFormat 格式化 SQL
// format 为 true 时调用美化格式化器（未设置时退化为压缩空白），否则把连续空白压缩为单个空格
func SQLFormat(boundSQL string, format bool) string {
	if format {
		if f := GetFormatter(); f != nil {
			return f.Format(boundSQL)
		}
	}
	return CollapseWhitespace(boundSQL)
}

// CollapseWhitespace 把连续空白字符压缩为单个空格
func CollapseWhitespace(sql string) string {
	return whitespaceRegexp.ReplaceAllString(sql, " ")
}
