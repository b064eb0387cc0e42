// Package paginator 执行分页查询：统计总数并按页读取数据
package paginator

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/kasuganosora/sqlpage/pkg/log"
	"github.com/kasuganosora/sqlpage/pkg/pagination"
	"github.com/kasuganosora/sqlpage/pkg/sqlfmt"
	"github.com/kasuganosora/sqlpage/pkg/sqlutil"
)

// Option 分页器配置项
type Option func(*base)

// WithHelper 指定 COUNT SQL 辅助，默认使用 sqlutil.Default()
func WithHelper(h *sqlutil.Helper) Option {
	return func(b *base) {
		b.helper = h
	}
}

// WithLogger 指定日志
func WithLogger(l log.Logger) Option {
	return func(b *base) {
		b.logger = l
	}
}

// WithMaxSize 限制每页最大条数，0 表示不限制
func WithMaxSize(n int64) Option {
	return func(b *base) {
		b.maxSize = n
	}
}

// base 分页流程的公共部分
type base struct {
	helper  *sqlutil.Helper
	logger  log.Logger
	maxSize int64
}

func newBase(opts []Option) base {
	b := base{
		helper: sqlutil.Default(),
		logger: log.NewNoOpLogger(),
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// plan 一次分页查询的 SQL
type plan struct {
	id       string
	countSQL string
	pageSQL  string
}

func (b *base) validate(page *pagination.Pagination) error {
	if page == nil {
		return sqlutil.NewError(sqlutil.ErrCodeInvalidParam, "pagination is nil", nil)
	}
	if b.maxSize > 0 && page.Size > b.maxSize {
		return sqlutil.NewError(sqlutil.ErrCodeInvalidParam,
			fmt.Sprintf("page size %d exceeds max %d", page.Size, b.maxSize), nil)
	}
	return nil
}

// build 生成 COUNT SQL（SearchCount 为 false 时为空）与带 ORDER BY 的分页 SQL
func (b *base) build(page *pagination.Pagination, sql string) (*plan, error) {
	if err := b.validate(page); err != nil {
		return nil, err
	}

	p := &plan{id: uuid.NewString()}
	orderBy := true
	if page.SearchCount {
		if page.OptimizeCountSQL {
			info, err := b.helper.GetCountOptimize(nil, sql)
			if err != nil {
				return nil, err
			}
			p.countSQL = info.SQL
			orderBy = info.OrderBy
		} else {
			p.countSQL = sqlutil.BaseCountSQL(sql)
		}
		b.logger.Debug("query=%s count sql: %s", p.id, p.countSQL)
	}

	// 原 SQL 最外层已有 ORDER BY 或 LIMIT 时，再拼接会重复或位置错误
	if orderBy && (sqlfmt.HasOrderBy(sql) || sqlfmt.HasLimit(sql)) {
		orderBy = false
	}
	p.pageSQL = sqlutil.ConcatOrderBy(sql, page, orderBy)
	b.logger.Debug("query=%s page sql: %s (offset=%d size=%d)", p.id, p.pageSQL, page.Offset(), page.Size)
	return p, nil
}
