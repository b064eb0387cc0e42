package sqlutil

import (
	"fmt"
	"sort"
	"sync"
)

// OptimizerFactory 创建 COUNT 优化策略
type OptimizerFactory func() (CountOptimizer, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]OptimizerFactory)
)

// Register 注册 COUNT 优化策略，通常在策略所在包的 init 中调用
// 重复注册同名策略会 panic
func Register(name string, factory OptimizerFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if factory == nil {
		panic("sqlutil: Register factory is nil")
	}
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("sqlutil: Register called twice for optimizer %q", name))
	}
	registry[name] = factory
}

// Optimizers 返回已注册的策略名（有序）
func Optimizers() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewOptimizer 按注册名创建策略
func NewOptimizer(name string) (CountOptimizer, error) {
	factory, ok := lookup(name)
	if !ok {
		return nil, NewError(ErrCodeOptimizerNotFound,
			fmt.Sprintf("count optimizer %q is not registered", name), nil)
	}
	o, err := factory()
	if err != nil {
		return nil, WrapError(err, ErrCodeOptimizeConfig, fmt.Sprintf("create count optimizer %q", name))
	}
	return o, nil
}

func lookup(name string) (OptimizerFactory, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := registry[name]
	return f, ok
}
