// Package optimize 基于 TiDB parser 的 COUNT SQL 优化策略
package optimize

import (
	"fmt"
	"strings"
	"sync"

	"github.com/kasuganosora/sqlpage/pkg/sqlutil"
	"github.com/pingcap/tidb/pkg/parser"
	"github.com/pingcap/tidb/pkg/parser/ast"
	"github.com/pingcap/tidb/pkg/parser/format"
	_ "github.com/pingcap/tidb/pkg/parser/test_driver"
)

const countFieldsSQL = "SELECT COUNT(1) AS COUNT"

// restoreFlags 关键字大写、字符串单引号，标识符不加反引号
const restoreFlags = format.RestoreKeyWordUppercase | format.RestoreStringSingleQuotes

func init() {
	sqlutil.Register(sqlutil.DefaultOptimizerName, func() (sqlutil.CountOptimizer, error) {
		o, err := NewTiDBCountOptimizer()
		if err != nil {
			return nil, err
		}
		return o, nil
	})
}

// TiDBCountOptimizer 解析 SELECT 语句并改写为 COUNT 查询
//
//   - 含 LIMIT 时原样用通用模板包裹，保留原 ORDER BY
//   - 无 GROUP BY 时移除 ORDER BY，并把 SQLInfo.OrderBy 置为 false
//   - DISTINCT、GROUP BY、HAVING，或查询列包含参数占位符、聚合函数、窗口函数时使用通用模板包裹
//   - 其余情况把查询列替换为 COUNT(1) AS COUNT
//   - 非 SELECT 或解析失败时使用通用模板包裹原 SQL
//
// parser.Parser 非并发安全，OptimizeSQL 内部用互斥锁串行化。
type TiDBCountOptimizer struct {
	mu     sync.Mutex
	parser *parser.Parser
	count  *ast.FieldList
}

// NewTiDBCountOptimizer 创建优化器
func NewTiDBCountOptimizer() (*TiDBCountOptimizer, error) {
	p := parser.New()
	stmt, err := p.ParseOneStmt(countFieldsSQL, "", "")
	if err != nil {
		return nil, fmt.Errorf("parse count fields: %w", err)
	}
	sel, ok := stmt.(*ast.SelectStmt)
	if !ok || sel.Fields == nil {
		return nil, fmt.Errorf("parse count fields: unexpected statement %T", stmt)
	}
	return &TiDBCountOptimizer{
		parser: p,
		count:  sel.Fields,
	}, nil
}

// OptimizeSQL 实现 sqlutil.CountOptimizer
func (o *TiDBCountOptimizer) OptimizeSQL(_ interface{}, originalSQL string) *sqlutil.SQLInfo {
	o.mu.Lock()
	defer o.mu.Unlock()

	info := sqlutil.NewSQLInfo("")

	sel, err := o.parseSelect(originalSQL)
	if err != nil {
		info.SQL = sqlutil.BaseCountSQL(originalSQL)
		return info
	}

	// LIMIT 截断结果集，ORDER BY 决定保留哪些行
	if sel.Limit != nil {
		info.SQL = sqlutil.BaseCountSQL(originalSQL)
		return info
	}

	if sel.GroupBy == nil && sel.OrderBy != nil {
		sel.OrderBy = nil
		info.OrderBy = false
	}

	if sel.Distinct || sel.GroupBy != nil || sel.Having != nil || keepFields(sel.Fields) {
		restored, err := restore(sel)
		if err != nil {
			restored = originalSQL
		}
		info.SQL = sqlutil.BaseCountSQL(restored)
		return info
	}

	sel.Fields = o.count
	restored, err := restore(sel)
	if err != nil {
		info.SQL = sqlutil.BaseCountSQL(originalSQL)
		return info
	}
	info.SQL = restored
	return info
}

func (o *TiDBCountOptimizer) parseSelect(sql string) (*ast.SelectStmt, error) {
	stmts, _, err := o.parser.ParseSQL(sql)
	if err != nil {
		return nil, err
	}
	if len(stmts) != 1 {
		return nil, fmt.Errorf("expected one statement, got %d", len(stmts))
	}
	sel, ok := stmts[0].(*ast.SelectStmt)
	if !ok {
		return nil, fmt.Errorf("not a SELECT statement: %T", stmts[0])
	}
	if sel.Fields == nil || sel.From == nil {
		return nil, fmt.Errorf("SELECT without FROM")
	}
	return sel, nil
}

func restore(node ast.Node) (string, error) {
	var sb strings.Builder
	if err := node.Restore(format.NewRestoreCtx(restoreFlags, &sb)); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// fieldsVisitor 查找替换查询列后会改变行数或参数位置的表达式
type fieldsVisitor struct {
	found bool
}

// Enter 进入节点
func (v *fieldsVisitor) Enter(n ast.Node) (ast.Node, bool) {
	switch n.(type) {
	case ast.ParamMarkerExpr, *ast.AggregateFuncExpr, *ast.WindowFuncExpr:
		v.found = true
	}
	return n, v.found
}

// Leave 离开节点
func (v *fieldsVisitor) Leave(n ast.Node) (ast.Node, bool) {
	return n, true
}

// keepFields 查询列含参数占位符、聚合函数或窗口函数时不能替换为 COUNT(1)
func keepFields(fields *ast.FieldList) bool {
	if fields == nil {
		return false
	}
	v := &fieldsVisitor{}
	fields.Accept(v)
	return v.found
}
