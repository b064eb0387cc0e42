package commands

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/kasuganosora/sqlpage/pkg/pagination"
	"github.com/kasuganosora/sqlpage/pkg/paginator"
	"github.com/spf13/cobra"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// pageResult page 命令输出
type pageResult struct {
	Current int64           `json:"current"`
	Size    int64           `json:"size"`
	Total   int64           `json:"total"`
	Pages   int64           `json:"pages"`
	Records []paginator.Row `json:"records"`
}

func newPageCommand(a *app) *cobra.Command {
	var (
		driver  string
		dsn     string
		current int64
		size    int64
		ascs    []string
		descs   []string
		noCount bool
	)

	cmd := &cobra.Command{
		Use:   "page [SQL]",
		Short: "Run a paged query against a database and print the page as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := readSQL(cmd, args)
			if err != nil {
				return err
			}
			if driver == "" {
				driver = a.cfg.Database.Driver
			}
			if dsn == "" {
				dsn = a.cfg.Database.DSN
			}
			if !cmd.Flags().Changed("size") {
				size = a.cfg.Pagination.DefaultSize
			}

			db, err := sql.Open(driver, dsn)
			if err != nil {
				return fmt.Errorf("open %s: %w", driver, err)
			}
			defer db.Close()

			page := pagination.NewPagination(current, size).SetAscs(ascs...).SetDescs(descs...)
			page.OpenSort = a.cfg.Pagination.OpenSort
			page.SearchCount = !noCount

			p := paginator.NewSQLPaginator(db,
				paginator.WithHelper(a.helper),
				paginator.WithLogger(a.logger),
				paginator.WithMaxSize(a.cfg.Pagination.MaxSize),
			)
			rows, err := p.Paginate(cmd.Context(), page, query)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(pageResult{
				Current: page.Current,
				Size:    page.Size,
				Total:   page.Total,
				Pages:   page.Pages(),
				Records: rows,
			})
		},
	}
	cmd.Flags().StringVar(&driver, "driver", "", "database/sql driver: mysql, postgres or sqlite (defaults to database.driver)")
	cmd.Flags().StringVar(&dsn, "dsn", "", "data source name (defaults to database.dsn)")
	cmd.Flags().Int64Var(&current, "current", pagination.DefaultCurrent, "page number, 1-based")
	cmd.Flags().Int64Var(&size, "size", pagination.DefaultSize, "page size, 0 for all rows")
	cmd.Flags().StringSliceVar(&ascs, "asc", nil, "ascending columns")
	cmd.Flags().StringSliceVar(&descs, "desc", nil, "descending columns")
	cmd.Flags().BoolVar(&noCount, "no-count", false, "skip the count query")
	return cmd
}
