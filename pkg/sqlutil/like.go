package sqlutil

// SQLLike LIKE 通配方式
type SQLLike int

const (
	// LikeDefault 两侧通配 %str%
	LikeDefault SQLLike = iota
	// LikeLeft 左侧通配 %str
	LikeLeft
	// LikeRight 右侧通配 str%
	LikeRight
	// LikeCustom 原样返回，由调用方自行放置通配符
	LikeCustom
)

// String 返回通配方式名称
func (l SQLLike) String() string {
	switch l {
	case LikeLeft:
		return "LEFT"
	case LikeRight:
		return "RIGHT"
	case LikeCustom:
		return "CUSTOM"
	default:
		return "DEFAULT"
	}
}

// ParseSQLLike 按名称解析通配方式，未知名称视为 LikeDefault
func ParseSQLLike(name string) SQLLike {
	switch name {
	case "LEFT", "left":
		return LikeLeft
	case "RIGHT", "right":
		return LikeRight
	case "CUSTOM", "custom":
		return LikeCustom
	default:
		return LikeDefault
	}
}

// ConcatLike 用 % 包裹 LIKE 查询值
// 不转义 str 中的 % 与 _
func ConcatLike(str string, typ SQLLike) string {
	switch typ {
	case LikeLeft:
		return Wildcard + str
	case LikeRight:
		return str + Wildcard
	case LikeCustom:
		return str
	default:
		return Wildcard + str + Wildcard
	}
}
