package sqlutil

const (
	// SQLBaseCount 通用 COUNT 模板，无法优化时直接包裹原 SQL
	SQLBaseCount = "SELECT COUNT(1) FROM ( %s ) TOTAL"

	// OrderByKeyword 排序关键字
	OrderByKeyword = " ORDER BY "
	// Asc 升序
	Asc = " ASC"
	// Desc 降序
	Desc = " DESC"
	// Wildcard LIKE 通配符
	Wildcard = "%"

	orderSeparator = ", "
)
