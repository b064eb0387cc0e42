package sqlutil

import (
	"errors"
	"fmt"
)

// ErrorCode 错误码
type ErrorCode string

const (
	ErrCodeOptimizerNotFound ErrorCode = "OPTIMIZER_NOT_FOUND"
	ErrCodeOptimizeConfig    ErrorCode = "OPTIMIZE_CONFIG"
	ErrCodeCountQuery        ErrorCode = "COUNT_QUERY"
	ErrCodePageQuery         ErrorCode = "PAGE_QUERY"
	ErrCodeInvalidParam      ErrorCode = "INVALID_PARAM"
)

// Error 分页组件错误
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error 接口实现
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap 返回原始错误
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError 创建错误
func NewError(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapError 包装错误，err 为 nil 时返回 nil
func WrapError(err error, code ErrorCode, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// IsErrorCode 检查错误链中是否存在指定错误码
func IsErrorCode(err error, code ErrorCode) bool {
	var e *Error
	for err != nil {
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetErrorCode 获取最外层错误码
func GetErrorCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
