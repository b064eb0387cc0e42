package paginator

import (
	"context"
	"fmt"
	"testing"

	"github.com/kasuganosora/sqlpage/pkg/pagination"
	"github.com/kasuganosora/sqlpage/pkg/sqlutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type user struct {
	ID   int64
	Name string
	Age  int
}

func setupGormDB(t *testing.T, rows int) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Exec("CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT, age INTEGER)").Error)
	for i := 1; i <= rows; i++ {
		require.NoError(t, db.Exec("INSERT INTO users (id, name, age) VALUES (?, ?, ?)",
			i, fmt.Sprintf("user%02d", i), 18+i%5).Error)
	}
	return db
}

func ids(users []user) []int64 {
	out := make([]int64, len(users))
	for i, u := range users {
		out[i] = u.ID
	}
	return out
}

func TestGormPaginator_Paginate(t *testing.T) {
	db := setupGormDB(t, 25)
	p := NewGormPaginator(db, WithHelper(sqlutil.NewHelper()))
	page := pagination.NewPagination(2, 10).SetDescs("id")

	var users []user
	err := p.Paginate(context.Background(), page, &users, "SELECT id, name, age FROM users WHERE age >= ?", 0)
	require.NoError(t, err)

	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, int64(3), page.Pages())
	assert.Equal(t, []int64{15, 14, 13, 12, 11, 10, 9, 8, 7, 6}, ids(users))
	assert.Equal(t, "user15", users[0].Name)
}

func TestGormPaginator_LastPage(t *testing.T) {
	db := setupGormDB(t, 25)
	p := NewGormPaginator(db, WithHelper(sqlutil.NewHelper()))
	page := pagination.NewPagination(3, 10).SetAscs("id")

	var users []user
	require.NoError(t, p.Paginate(context.Background(), page, &users, "SELECT * FROM users"))

	assert.Equal(t, []int64{21, 22, 23, 24, 25}, ids(users))
	assert.False(t, page.HasNext())
}

func TestGormPaginator_OriginalOrderByKept(t *testing.T) {
	db := setupGormDB(t, 5)
	p := NewGormPaginator(db, WithHelper(sqlutil.NewHelper()))
	page := pagination.NewPagination(1, 3).SetAscs("name")

	var users []user
	require.NoError(t, p.Paginate(context.Background(), page, &users, "SELECT id, name, age FROM users ORDER BY id DESC"))

	assert.Equal(t, int64(5), page.Total)
	assert.Equal(t, []int64{5, 4, 3}, ids(users))
}

func TestGormPaginator_WithoutCount(t *testing.T) {
	db := setupGormDB(t, 5)
	p := NewGormPaginator(db)
	page := pagination.NewPagination(1, 2).SetAscs("id")
	page.SearchCount = false

	var users []user
	require.NoError(t, p.Paginate(context.Background(), page, &users, "SELECT * FROM users"))

	assert.Equal(t, int64(0), page.Total)
	assert.Equal(t, []int64{1, 2}, ids(users))
}

func TestGormPaginator_BaseCount(t *testing.T) {
	db := setupGormDB(t, 7)
	p := NewGormPaginator(db)
	page := pagination.NewPagination(1, 5).SetAscs("id")
	page.OptimizeCountSQL = false

	var users []user
	require.NoError(t, p.Paginate(context.Background(), page, &users, "SELECT * FROM users WHERE age > ?", 19))

	// age = 18 + id%5，age > 19 即 id%5 >= 2
	assert.Equal(t, int64(4), page.Total)
	assert.Equal(t, []int64{2, 3, 4, 7}, ids(users))
}

func TestGormPaginator_Unlimited(t *testing.T) {
	db := setupGormDB(t, 12)
	p := NewGormPaginator(db, WithHelper(sqlutil.NewHelper()))
	page := pagination.NewPagination(1, 0).SetDescs("id")

	var users []user
	require.NoError(t, p.Paginate(context.Background(), page, &users, "SELECT * FROM users"))

	assert.Equal(t, int64(12), page.Total)
	assert.Len(t, users, 12)
	assert.Equal(t, int64(12), users[0].ID)
}

func TestGormPaginator_EmptyResult(t *testing.T) {
	db := setupGormDB(t, 3)
	p := NewGormPaginator(db, WithHelper(sqlutil.NewHelper()))

	var users []user
	page := pagination.Default()
	require.NoError(t, p.Paginate(context.Background(), page, &users, "SELECT * FROM users WHERE age > 100"))

	assert.Equal(t, int64(0), page.Total)
	assert.Empty(t, users)
}

func TestGormPaginator_CountError(t *testing.T) {
	db := setupGormDB(t, 0)
	p := NewGormPaginator(db, WithHelper(sqlutil.NewHelper()))

	var users []user
	err := p.Paginate(context.Background(), pagination.Default(), &users, "SELECT * FROM missing")
	require.Error(t, err)
	assert.True(t, sqlutil.IsErrorCode(err, sqlutil.ErrCodeCountQuery))
}

func TestGormPaginator_PageError(t *testing.T) {
	db := setupGormDB(t, 3)
	p := NewGormPaginator(db)
	page := pagination.Default().SetAscs("missing_column")
	page.SearchCount = false

	var users []user
	err := p.Paginate(context.Background(), page, &users, "SELECT * FROM users")
	require.Error(t, err)
	assert.True(t, sqlutil.IsErrorCode(err, sqlutil.ErrCodePageQuery))
}

func TestScope(t *testing.T) {
	db := setupGormDB(t, 25)
	page := pagination.NewPagination(2, 5).SetDescs("id")

	var users []user
	require.NoError(t, db.Model(&user{}).Scopes(Scope(page)).Find(&users).Error)

	assert.Equal(t, []int64{20, 19, 18, 17, 16}, ids(users))
}

func TestScope_SortDisabled(t *testing.T) {
	db := setupGormDB(t, 5)
	page := pagination.NewPagination(1, 2).SetDescs("id")
	page.OpenSort = false

	stmt := db.Session(&gorm.Session{DryRun: true}).Model(&user{}).Scopes(Scope(page)).Find(&[]user{}).Statement
	assert.NotContains(t, stmt.SQL.String(), "ORDER BY")
	assert.Contains(t, stmt.SQL.String(), "LIMIT")

	stmt = db.Session(&gorm.Session{DryRun: true}).Model(&user{}).Scopes(Scope(nil)).Find(&[]user{}).Statement
	assert.NotContains(t, stmt.SQL.String(), "LIMIT")
}

func TestScope_BlankColumns(t *testing.T) {
	db := setupGormDB(t, 5)

	page := pagination.NewPagination(1, 2).SetAscs(" ", "\t").SetDescs("")
	stmt := db.Session(&gorm.Session{DryRun: true}).Model(&user{}).Scopes(Scope(page)).Find(&[]user{}).Statement
	assert.NotContains(t, stmt.SQL.String(), "ORDER BY")

	page = pagination.NewPagination(1, 3).SetAscs(" ").SetDescs("id")
	var users []user
	require.NoError(t, db.Model(&user{}).Scopes(Scope(page)).Find(&users).Error)
	assert.Equal(t, []int64{5, 4, 3}, ids(users))
}

func TestGormPaginator_ExistingOrderByWithoutCount(t *testing.T) {
	db := setupGormDB(t, 5)
	p := NewGormPaginator(db, WithHelper(sqlutil.NewHelper()))
	page := pagination.NewPagination(1, 3).SetAscs("name")
	page.SearchCount = false

	var users []user
	require.NoError(t, p.Paginate(context.Background(), page, &users, "SELECT * FROM users ORDER BY id DESC"))

	assert.Equal(t, []int64{5, 4, 3}, ids(users))
}
