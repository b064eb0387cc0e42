package sqlfmt

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokenWord tokenKind = iota
	tokenQuoted
	tokenPunct
	tokenOperator
	tokenLineComment
	tokenBlockComment
)

// token 词法单元；spaced 表示原文中该 token 前有空白
type token struct {
	kind   tokenKind
	text   string
	spaced bool
}

func (t token) lower() string {
	return strings.ToLower(t.text)
}

func (t token) isWord(words ...string) bool {
	if t.kind != tokenWord {
		return false
	}
	l := t.lower()
	for _, w := range words {
		if l == w {
			return true
		}
	}
	return false
}

const operatorChars = "<>=!|&+-*/%^~:"

// tokenize 切分 SQL，丢弃空白
func tokenize(sql string) []token {
	var tokens []token
	spaced := false
	for i := 0; i < len(sql); {
		r, size := utf8.DecodeRuneInString(sql[i:])
		start := i
		var kind tokenKind

		switch {
		case unicode.IsSpace(r):
			i += size
			spaced = true
			continue
		case strings.HasPrefix(sql[i:], "--"):
			kind = tokenLineComment
			if end := strings.IndexByte(sql[i:], '\n'); end >= 0 {
				i += end
			} else {
				i = len(sql)
			}
		case strings.HasPrefix(sql[i:], "/*"):
			kind = tokenBlockComment
			if end := strings.Index(sql[i+2:], "*/"); end >= 0 {
				i += 2 + end + 2
			} else {
				i = len(sql)
			}
		case r == '\'' || r == '"' || r == '`':
			kind = tokenQuoted
			i = scanQuoted(sql, i, byte(r))
		case r == '(' || r == ')' || r == ',' || r == ';':
			kind = tokenPunct
			i += size
		case isWordRune(r):
			kind = tokenWord
			for i < len(sql) {
				r, size = utf8.DecodeRuneInString(sql[i:])
				if !isWordRune(r) {
					break
				}
				i += size
			}
		case strings.ContainsRune(operatorChars, r):
			kind = tokenOperator
			i += size
			for i < len(sql) && strings.IndexByte(operatorChars, sql[i]) >= 0 &&
				!strings.HasPrefix(sql[i:], "--") && !strings.HasPrefix(sql[i:], "/*") {
				i++
			}
		default:
			kind = tokenOperator
			i += size
		}

		tokens = append(tokens, token{kind: kind, text: sql[start:i], spaced: spaced})
		spaced = false
	}
	return tokens
}

// scanQuoted 返回引号结束后的位置，支持重复引号与反斜杠转义
func scanQuoted(sql string, i int, quote byte) int {
	i++
	for i < len(sql) {
		switch sql[i] {
		case '\\':
			if quote != '`' {
				i += 2
				continue
			}
		case quote:
			if i+1 < len(sql) && sql[i+1] == quote {
				i += 2
				continue
			}
			return i + 1
		}
		i++
	}
	return len(sql)
}

func isWordRune(r rune) bool {
	return r == '_' || r == '$' || r == '@' || r == '#' || r == '.' ||
		unicode.IsLetter(r) || unicode.IsDigit(r)
}

// compounds 多词关键字，按长度优先匹配
var compounds = [][]string{
	{"left", "outer", "join"},
	{"right", "outer", "join"},
	{"full", "outer", "join"},
	{"group", "by"},
	{"order", "by"},
	{"insert", "into"},
	{"delete", "from"},
	{"union", "all"},
	{"left", "join"},
	{"right", "join"},
	{"full", "join"},
	{"inner", "join"},
	{"cross", "join"},
}

// mergeCompounds 合并多词关键字为单个 token，保留原大小写
func mergeCompounds(tokens []token) []token {
	merged := make([]token, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		n := matchCompound(tokens[i:])
		if n <= 1 {
			merged = append(merged, tokens[i])
			continue
		}
		parts := make([]string, n)
		for j := 0; j < n; j++ {
			parts[j] = tokens[i+j].text
		}
		merged = append(merged, token{kind: tokenWord, text: strings.Join(parts, " "), spaced: tokens[i].spaced})
		i += n - 1
	}
	return merged
}

func matchCompound(tokens []token) int {
	for _, words := range compounds {
		if len(tokens) < len(words) {
			continue
		}
		ok := true
		for j, w := range words {
			if !tokens[j].isWord(w) {
				ok = false
				break
			}
		}
		if ok {
			return len(words)
		}
	}
	return 0
}
