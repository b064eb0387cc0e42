package sqlutil

import (
	"fmt"
	"sync"
)

// SQLInfo COUNT 查询描述
type SQLInfo struct {
	// SQL 用于统计总数的 SQL
	SQL string
	// OrderBy 为 false 表示优化器移除了原 SQL 自带的 ORDER BY，
	// 原 SQL 已有排序，分页查询不应再拼接 ORDER BY
	OrderBy bool
}

// NewSQLInfo 创建 SQLInfo，OrderBy 默认为 true
func NewSQLInfo(sql string) *SQLInfo {
	return &SQLInfo{SQL: sql, OrderBy: true}
}

// CountOptimizer COUNT SQL 优化策略
type CountOptimizer interface {
	// OptimizeSQL 把原 SQL 转换为 COUNT SQL，hint 为策略相关的可选参数
	OptimizeSQL(hint interface{}, originalSQL string) *SQLInfo
}

// CountOptimizerFunc 函数适配为 CountOptimizer
type CountOptimizerFunc func(hint interface{}, originalSQL string) *SQLInfo

// OptimizeSQL 实现 CountOptimizer
func (f CountOptimizerFunc) OptimizeSQL(hint interface{}, originalSQL string) *SQLInfo {
	return f(hint, originalSQL)
}

// BaseCountSQL 使用通用模板包裹原 SQL
func BaseCountSQL(originalSQL string) string {
	return fmt.Sprintf(SQLBaseCount, originalSQL)
}

// SimpleCountOptimizer 不做任何改写，始终使用通用模板
type SimpleCountOptimizer struct{}

// OptimizeSQL 实现 CountOptimizer
func (SimpleCountOptimizer) OptimizeSQL(_ interface{}, originalSQL string) *SQLInfo {
	return NewSQLInfo(BaseCountSQL(originalSQL))
}

// SimpleOptimizerName SimpleCountOptimizer 注册名
const SimpleOptimizerName = "simple"

func init() {
	Register(SimpleOptimizerName, func() (CountOptimizer, error) {
		return SimpleCountOptimizer{}, nil
	})
}

// DefaultOptimizerName 默认 COUNT 优化策略名，由 pkg/optimize 注册
const DefaultOptimizerName = "tidb"

// Helper 分页 SQL 辅助
//
// 生效的 COUNT 优化策略只解析一次：首次调用时传入的策略生效，
// 否则按 defaultName 从注册表创建。此后的调用即使传入其他策略也不会替换。
// 并发安全。
type Helper struct {
	mu          sync.Mutex
	active      CountOptimizer
	defaultName string
}

// HelperOption Helper 配置项
type HelperOption func(*Helper)

// WithOptimizer 显式指定生效策略
func WithOptimizer(o CountOptimizer) HelperOption {
	return func(h *Helper) {
		h.active = o
	}
}

// WithDefaultOptimizer 指定未传入策略时使用的注册名
func WithDefaultOptimizer(name string) HelperOption {
	return func(h *Helper) {
		h.defaultName = name
	}
}

// NewHelper 创建 Helper
func NewHelper(opts ...HelperOption) *Helper {
	h := &Helper{defaultName: DefaultOptimizerName}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Active 返回已生效的策略，尚未解析时为 nil
func (h *Helper) Active() CountOptimizer {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.active
}

// GetCountOptimize 获取 COUNT SQL
// optimizer 仅在尚无生效策略时采用；为 nil 时按默认注册名创建
func (h *Helper) GetCountOptimize(optimizer CountOptimizer, originalSQL string) (*SQLInfo, error) {
	active, err := h.resolve(optimizer)
	if err != nil {
		return nil, err
	}
	return active.OptimizeSQL(nil, originalSQL), nil
}

func (h *Helper) resolve(optimizer CountOptimizer) (CountOptimizer, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.active != nil {
		return h.active, nil
	}
	if optimizer != nil {
		h.active = optimizer
		return h.active, nil
	}

	created, err := NewOptimizer(h.defaultName)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, NewError(ErrCodeOptimizeConfig,
			fmt.Sprintf("count optimizer %q factory returned nil", h.defaultName), nil)
	}
	h.active = created
	return h.active, nil
}

var std = NewHelper()

// GetCountOptimize 使用进程级默认 Helper 获取 COUNT SQL
func GetCountOptimize(optimizer CountOptimizer, originalSQL string) (*SQLInfo, error) {
	return std.GetCountOptimize(optimizer, originalSQL)
}

// Default 返回进程级默认 Helper
func Default() *Helper {
	return std
}
