package paginator

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kasuganosora/sqlpage/pkg/pagination"
	"github.com/kasuganosora/sqlpage/pkg/sqlfmt"
	"github.com/kasuganosora/sqlpage/pkg/sqlutil"
)

// Row 查询结果行
type Row map[string]interface{}

// SQLPaginator 基于 database/sql 的分页器，分页使用 LIMIT n OFFSET m
type SQLPaginator struct {
	base
	db *sql.DB
}

// NewSQLPaginator 创建 database/sql 分页器
func NewSQLPaginator(db *sql.DB, opts ...Option) *SQLPaginator {
	return &SQLPaginator{
		base: newBase(opts),
		db:   db,
	}
}

// Paginate 执行分页查询，返回当前页数据，总数写入 page.Total
func (p *SQLPaginator) Paginate(ctx context.Context, page *pagination.Pagination, query string, args ...interface{}) ([]Row, error) {
	plan, err := p.build(page, query)
	if err != nil {
		return nil, err
	}

	if plan.countSQL != "" {
		var total int64
		if err := p.db.QueryRowContext(ctx, plan.countSQL, args...).Scan(&total); err != nil {
			p.logger.Error("query=%s count failed: %v", plan.id, err)
			return nil, sqlutil.WrapError(err, sqlutil.ErrCodeCountQuery, "execute count query")
		}
		page.Total = total
		if total == 0 {
			return []Row{}, nil
		}
	}

	pageSQL := plan.pageSQL
	if page.Limited() {
		if sqlfmt.HasLimit(pageSQL) {
			pageSQL = fmt.Sprintf("SELECT * FROM ( %s ) page_data", pageSQL)
		}
		pageSQL = fmt.Sprintf("%s LIMIT %d OFFSET %d", pageSQL, page.Size, page.Offset())
	}

	rows, err := p.db.QueryContext(ctx, pageSQL, args...)
	if err != nil {
		p.logger.Error("query=%s page query failed: %v", plan.id, err)
		return nil, sqlutil.WrapError(err, sqlutil.ErrCodePageQuery, "execute page query")
	}
	defer rows.Close()

	result, err := scanRows(rows)
	if err != nil {
		return nil, sqlutil.WrapError(err, sqlutil.ErrCodePageQuery, "scan page rows")
	}
	return result, nil
}

func scanRows(rows *sql.Rows) ([]Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := make([]Row, 0)
	for rows.Next() {
		values := make([]interface{}, len(columns))
		ptrs := make([]interface{}, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(Row, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
