package sqlfmt

// HasOrderBy 判断 SQL 在最外层是否已有 ORDER BY，括号内的子查询与窗口定义不计
func HasOrderBy(sql string) bool {
	return hasTopLevel(sql, "order by")
}

// HasLimit 判断 SQL 在最外层是否已有 LIMIT
func HasLimit(sql string) bool {
	return hasTopLevel(sql, "limit")
}

func hasTopLevel(sql string, word string) bool {
	depth := 0
	for _, t := range mergeCompounds(tokenize(sql)) {
		switch {
		case t.kind == tokenPunct && t.text == "(":
			depth++
		case t.kind == tokenPunct && t.text == ")":
			if depth > 0 {
				depth--
			}
		case depth == 0 && t.isWord(word):
			return true
		}
	}
	return false
}
