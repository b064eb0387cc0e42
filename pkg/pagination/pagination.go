package pagination

import (
	"strings"

	"github.com/spf13/cast"
)

const (
	// DefaultCurrent 默认页码
	DefaultCurrent int64 = 1
	// DefaultSize 默认每页条数
	DefaultSize int64 = 10
)

// Pagination 分页请求
// Ascs/Descs 为升序/降序排序列，OpenSort 控制是否拼接 ORDER BY
type Pagination struct {
	Current          int64    `json:"current"`
	Size             int64    `json:"size"`
	Total            int64    `json:"total"`
	Ascs             []string `json:"ascs,omitempty"`
	Descs            []string `json:"descs,omitempty"`
	OpenSort         bool     `json:"open_sort"`
	SearchCount      bool     `json:"search_count"`
	OptimizeCountSQL bool     `json:"optimize_count_sql"`

	// 单字段排序（兼容旧接口），会合并进 Ascs 或 Descs
	OrderByField string `json:"order_by_field,omitempty"`
	IsAsc        bool   `json:"is_asc"`
}

// NewPagination 创建分页请求
func NewPagination(current, size int64) *Pagination {
	return &Pagination{
		Current:          current,
		Size:             size,
		OpenSort:         true,
		SearchCount:      true,
		OptimizeCountSQL: true,
		IsAsc:            true,
	}
}

// Default 返回第一页、默认条数的分页请求
func Default() *Pagination {
	return NewPagination(DefaultCurrent, DefaultSize)
}

// SetAscs 设置升序列
func (p *Pagination) SetAscs(columns ...string) *Pagination {
	p.Ascs = columns
	return p
}

// SetDescs 设置降序列
func (p *Pagination) SetDescs(columns ...string) *Pagination {
	p.Descs = columns
	return p
}

// IsOpenSort 是否开启排序
func (p *Pagination) IsOpenSort() bool {
	return p.OpenSort
}

// Asc 返回升序列，包含 IsAsc 时的 OrderByField
func (p *Pagination) Asc() []string {
	return p.orderColumns(p.Ascs, p.IsAsc)
}

// Desc 返回降序列，包含 !IsAsc 时的 OrderByField
func (p *Pagination) Desc() []string {
	return p.orderColumns(p.Descs, !p.IsAsc)
}

func (p *Pagination) orderColumns(columns []string, withField bool) []string {
	field := strings.TrimSpace(p.OrderByField)
	if !withField || field == "" {
		return columns
	}
	merged := make([]string, 0, len(columns)+1)
	merged = append(merged, field)
	for _, c := range columns {
		if c != field {
			merged = append(merged, c)
		}
	}
	return merged
}

// Offset 计算当前页偏移量
func (p *Pagination) Offset() int64 {
	if p.Current <= 1 {
		return 0
	}
	return (p.Current - 1) * p.Size
}

// Pages 计算总页数
func (p *Pagination) Pages() int64 {
	if p.Size <= 0 {
		return 0
	}
	pages := p.Total / p.Size
	if p.Total%p.Size != 0 {
		pages++
	}
	return pages
}

// HasNext 是否存在下一页
func (p *Pagination) HasNext() bool {
	return p.Current < p.Pages()
}

// HasPrevious 是否存在上一页
func (p *Pagination) HasPrevious() bool {
	return p.Current > 1
}

// Limited 是否需要分页（Size <= 0 时查询全部）
func (p *Pagination) Limited() bool {
	return p.Size > 0
}

// FromParams 从松散类型参数构造分页请求
// 支持 current、size、asc、desc（逗号分隔字符串或字符串切片）、search_count、open_sort
func FromParams(params map[string]interface{}) *Pagination {
	p := Default()
	if v, ok := params["current"]; ok {
		if n := cast.ToInt64(v); n > 0 {
			p.Current = n
		}
	}
	if v, ok := params["size"]; ok {
		p.Size = cast.ToInt64(v)
	}
	if v, ok := params["asc"]; ok {
		p.Ascs = toColumns(v)
	}
	if v, ok := params["desc"]; ok {
		p.Descs = toColumns(v)
	}
	if v, ok := params["search_count"]; ok {
		p.SearchCount = cast.ToBool(v)
	}
	if v, ok := params["open_sort"]; ok {
		p.OpenSort = cast.ToBool(v)
	}
	return p
}

func toColumns(v interface{}) []string {
	if s, ok := v.(string); ok {
		if s == "" {
			return nil
		}
		parts := strings.Split(s, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return cast.ToStringSlice(v)
}
