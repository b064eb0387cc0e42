// Package sqlfmt 提供多行 SQL 美化格式化
package sqlfmt

import (
	"strings"

	"github.com/kasuganosora/sqlpage/pkg/sqlutil"
)

// DefaultIndent 默认缩进
const DefaultIndent = "    "

var clauses = map[string]bool{
	"select":           true,
	"from":             true,
	"where":            true,
	"group by":         true,
	"order by":         true,
	"having":           true,
	"limit":            true,
	"offset":           true,
	"union":            true,
	"union all":        true,
	"except":           true,
	"intersect":        true,
	"set":              true,
	"values":           true,
	"insert into":      true,
	"update":           true,
	"delete from":      true,
	"join":             true,
	"left join":        true,
	"right join":       true,
	"full join":        true,
	"inner join":       true,
	"cross join":       true,
	"left outer join":  true,
	"right outer join": true,
	"full outer join":  true,
}

// BasicFormatter 按子句换行缩进的 SQL 格式化器
// 子句关键字独占一行，子句内容缩进一级；顶层逗号与 AND/OR 换行；子查询额外缩进。
// 引号内文本与关键字大小写保持不变。
type BasicFormatter struct {
	Indent string
}

// NewBasicFormatter 创建格式化器
func NewBasicFormatter() *BasicFormatter {
	return &BasicFormatter{Indent: DefaultIndent}
}

func init() {
	sqlutil.SetFormatter(NewBasicFormatter())
}

// Format 实现 sqlutil.Formatter
func (f *BasicFormatter) Format(sql string) string {
	indent := f.Indent
	if indent == "" {
		indent = DefaultIndent
	}
	p := &printer{
		indent:      indent,
		levels:      []level{{}},
		atLineStart: true,
	}
	tokens := mergeCompounds(tokenize(sql))
	for i, tok := range tokens {
		p.handle(tok, tokens[i+1:])
	}
	return strings.TrimRight(p.out.String(), " \n")
}

type level struct {
	base   int
	parens int
}

type printer struct {
	indent      string
	out         strings.Builder
	levels      []level
	prev        *token
	atLineStart bool
	curIndent   int
	inBetween   bool
}

func (p *printer) top() *level {
	return &p.levels[len(p.levels)-1]
}

func (p *printer) newline(indent int) {
	p.curIndent = indent
	if p.atLineStart {
		return
	}
	p.out.WriteByte('\n')
	p.atLineStart = true
}

func (p *printer) write(tok token) {
	if p.atLineStart {
		p.out.WriteString(strings.Repeat(p.indent, p.curIndent))
		p.atLineStart = false
	} else if p.needSpace(tok) {
		p.out.WriteByte(' ')
	}
	p.out.WriteString(tok.text)
	t := tok
	p.prev = &t
}

func (p *printer) needSpace(tok token) bool {
	if tok.kind == tokenPunct && tok.text != "(" {
		return false
	}
	if p.prev == nil {
		return false
	}
	if p.prev.kind == tokenPunct && p.prev.text == "(" {
		return false
	}
	if p.prev.kind == tokenPunct && p.prev.text == "," {
		return true
	}
	return tok.spaced
}

func (p *printer) handle(tok token, rest []token) {
	lv := p.top()
	switch {
	case tok.kind == tokenWord && lv.parens == 0 && clauses[tok.lower()]:
		p.newline(lv.base)
		p.write(tok)
		p.newline(lv.base + 1)
	case tok.kind == tokenPunct && tok.text == "(":
		if startsSubquery(rest) {
			p.write(tok)
			p.levels = append(p.levels, level{base: lv.base + 2})
			return
		}
		lv.parens++
		p.write(tok)
	case tok.kind == tokenPunct && tok.text == ")":
		switch {
		case lv.parens > 0:
			lv.parens--
			p.write(tok)
		case len(p.levels) > 1:
			p.levels = p.levels[:len(p.levels)-1]
			p.newline(p.top().base + 1)
			p.write(tok)
		default:
			p.write(tok)
		}
	case tok.kind == tokenPunct && tok.text == ",":
		p.write(tok)
		if lv.parens == 0 {
			p.newline(lv.base + 1)
		}
	case tok.kind == tokenPunct && tok.text == ";":
		p.write(tok)
		p.levels = []level{{}}
		p.inBetween = false
		p.newline(0)
	case tok.isWord("between"):
		p.inBetween = true
		p.write(tok)
	case tok.isWord("and", "or") && lv.parens == 0:
		if p.inBetween && tok.isWord("and") {
			p.inBetween = false
			p.write(tok)
			return
		}
		p.newline(lv.base + 1)
		p.write(tok)
	case tok.kind == tokenLineComment:
		p.write(tok)
		p.newline(p.curIndent)
	default:
		p.write(tok)
	}
}

func startsSubquery(rest []token) bool {
	for _, t := range rest {
		if t.kind == tokenLineComment || t.kind == tokenBlockComment {
			continue
		}
		return t.isWord("select")
	}
	return false
}
