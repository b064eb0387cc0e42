package sqlfmt

import (
	"testing"

	"github.com/kasuganosora/sqlpage/pkg/sqlutil"
	"github.com/stretchr/testify/assert"
)

func TestBasicFormatter_Format(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:  "简单查询",
			input: "select id,name from t where a=1 and b=2 order by id",
			expected: `select
    id,
    name
from
    t
where
    a=1
    and b=2
order by
    id`,
		},
		{
			name:  "子查询",
			input: "SELECT * FROM (SELECT id FROM t WHERE a = 1) x WHERE x.id > 1",
			expected: `SELECT
    *
FROM
    (
        SELECT
            id
        FROM
            t
        WHERE
            a = 1
    ) x
WHERE
    x.id > 1`,
		},
		{
			name:  "函数与IN与BETWEEN",
			input: "select count(*) from t where id in (1,2,3) and d between 1 and 5 or name like '%a b%'",
			expected: `select
    count(*)
from
    t
where
    id in (1, 2, 3)
    and d between 1 and 5
    or name like '%a b%'`,
		},
		{
			name:  "INSERT",
			input: "INSERT INTO t (a, b) VALUES (1, 'x,y'), (2, 'z')",
			expected: `INSERT INTO
    t (a, b)
VALUES
    (1, 'x,y'),
    (2, 'z')`,
		},
		{
			name:  "UPDATE",
			input: "update t set a = 1, b = 2 where id = 3",
			expected: `update
    t
set
    a = 1,
    b = 2
where
    id = 3`,
		},
		{
			name:  "UNION ALL",
			input: "SELECT a FROM t UNION ALL SELECT b FROM u",
			expected: `SELECT
    a
FROM
    t
UNION ALL
SELECT
    b
FROM
    u`,
		},
		{
			name:  "LEFT OUTER JOIN",
			input: "select * from a left outer join b on a.id = b.aid",
			expected: `select
    *
from
    a
left outer join
    b on a.id = b.aid`,
		},
		{
			name:  "多语句与注释",
			input: "select 1; -- note\nselect 2",
			expected: `select
    1;
-- note
select
    2`,
		},
		{
			name:  "引号内关键字不处理",
			input: "select 'from where' from t",
			expected: `select
    'from where'
from
    t`,
		},
		{
			name:  "多余空白",
			input: "  select\n\n  a\t from   t  ",
			expected: `select
    a
from
    t`,
		},
		{
			name:     "空字符串",
			input:    "",
			expected: "",
		},
		{
			name:     "仅空白",
			input:    " \n\t ",
			expected: "",
		},
	}

	f := NewBasicFormatter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, f.Format(tt.input))
		})
	}
}

func TestBasicFormatter_CustomIndent(t *testing.T) {
	f := &BasicFormatter{Indent: "\t"}

	assert.Equal(t, "select\n\ta\nfrom\n\tt", f.Format("select a from t"))
}

func TestBasicFormatter_EmptyIndentUsesDefault(t *testing.T) {
	f := &BasicFormatter{}

	assert.Equal(t, "select\n    a", f.Format("select a"))
}

func TestSQLFormatUsesBasicFormatter(t *testing.T) {
	assert.IsType(t, &BasicFormatter{}, sqlutil.GetFormatter())
	assert.Equal(t, "SELECT\n    *\nFROM\n    t", sqlutil.SQLFormat("SELECT   *\nFROM t", true))
	assert.Equal(t, "SELECT * FROM t", sqlutil.SQLFormat("SELECT   *\nFROM t", false))
}
