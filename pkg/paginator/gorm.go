package paginator

import (
	"context"

	"github.com/kasuganosora/sqlpage/pkg/pagination"
	"github.com/kasuganosora/sqlpage/pkg/sqlutil"
	"gorm.io/gorm"
)

// pageTableAlias 分页派生表别名
const pageTableAlias = "(?) AS page_data"

// GormPaginator 基于 GORM 的分页器
// 分页通过派生表加 Offset/Limit 实现，由 GORM 方言生成具体的分页语法
type GormPaginator struct {
	base
	db *gorm.DB
}

// NewGormPaginator 创建 GORM 分页器
func NewGormPaginator(db *gorm.DB, opts ...Option) *GormPaginator {
	return &GormPaginator{
		base: newBase(opts),
		db:   db,
	}
}

// Paginate 执行分页查询，结果写入 dest（切片指针），总数写入 page.Total
// SearchCount 为 true 且总数为 0 时不再查询数据
func (p *GormPaginator) Paginate(ctx context.Context, page *pagination.Pagination, dest interface{}, sql string, args ...interface{}) error {
	plan, err := p.build(page, sql)
	if err != nil {
		return err
	}

	db := p.db.WithContext(ctx)
	if plan.countSQL != "" {
		var total int64
		if err := db.Raw(plan.countSQL, args...).Scan(&total).Error; err != nil {
			p.logger.Error("query=%s count failed: %v", plan.id, err)
			return sqlutil.WrapError(err, sqlutil.ErrCodeCountQuery, "execute count query")
		}
		page.Total = total
		if total == 0 {
			return nil
		}
	}

	var tx *gorm.DB
	if page.Limited() {
		tx = db.Table(pageTableAlias, db.Raw(plan.pageSQL, args...)).
			Offset(int(page.Offset())).
			Limit(int(page.Size)).
			Find(dest)
	} else {
		tx = db.Raw(plan.pageSQL, args...).Scan(dest)
	}
	if tx.Error != nil {
		p.logger.Error("query=%s page query failed: %v", plan.id, tx.Error)
		return sqlutil.WrapError(tx.Error, sqlutil.ErrCodePageQuery, "execute page query")
	}
	return nil
}

// Scope 返回按分页请求设置 Offset/Limit 与 ORDER BY 的 GORM Scope，适用于链式查询
func Scope(page *pagination.Pagination) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page == nil {
			return db
		}
		if page.IsOpenSort() {
			for _, column := range page.Asc() {
				if !sqlutil.IsBlankColumn(column) {
					db = db.Order(column + sqlutil.Asc)
				}
			}
			for _, column := range page.Desc() {
				if !sqlutil.IsBlankColumn(column) {
					db = db.Order(column + sqlutil.Desc)
				}
			}
		}
		if page.Limited() {
			db = db.Offset(int(page.Offset())).Limit(int(page.Size))
		}
		return db
	}
}
