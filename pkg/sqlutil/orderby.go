package sqlutil

import (
	"strings"

	"github.com/kasuganosora/sqlpage/pkg/pagination"
)

// ConcatOrderBy 为查询 SQL 拼接 ORDER BY
// orderBy 与 page.IsOpenSort() 同时为 true 才拼接；无有效排序列时原样返回
func ConcatOrderBy(originalSQL string, page *pagination.Pagination, orderBy bool) string {
	if !orderBy || page == nil || !page.IsOpenSort() {
		return originalSQL
	}

	ascStr := concatOrderBuilder(page.Asc(), Asc)
	descStr := concatOrderBuilder(page.Desc(), Desc)
	if ascStr == "" && descStr == "" {
		return originalSQL
	}

	var sb strings.Builder
	sb.Grow(len(originalSQL) + len(OrderByKeyword) + len(ascStr) + len(descStr) + len(orderSeparator))
	sb.WriteString(originalSQL)
	sb.WriteString(OrderByKeyword)
	sb.WriteString(ascStr)
	if ascStr != "" && descStr != "" {
		sb.WriteString(orderSeparator)
	}
	sb.WriteString(descStr)
	return sb.String()
}

// concatOrderBuilder 拼接同一方向的多个排序列，空列名跳过
func concatOrderBuilder(columns []string, orderWord string) string {
	var sb strings.Builder
	for _, column := range columns {
		if IsBlankColumn(column) {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(orderSeparator)
		}
		sb.WriteString(column)
		sb.WriteString(orderWord)
	}
	return sb.String()
}

// IsBlankColumn 空或仅含空白的列名不参与排序
func IsBlankColumn(column string) bool {
	return strings.TrimSpace(column) == ""
}
