package commands

import (
	"fmt"

	"github.com/kasuganosora/sqlpage/pkg/pagination"
	"github.com/kasuganosora/sqlpage/pkg/sqlutil"
	"github.com/spf13/cobra"
)

func newCountCommand(a *app) *cobra.Command {
	var simple bool

	cmd := &cobra.Command{
		Use:   "count [SQL]",
		Short: "Print the count query derived from a SELECT",
		RunE: func(cmd *cobra.Command, args []string) error {
			sql, err := readSQL(cmd, args)
			if err != nil {
				return err
			}
			if simple {
				fmt.Fprintln(cmd.OutOrStdout(), sqlutil.BaseCountSQL(sql))
				return nil
			}
			info, err := a.helper.GetCountOptimize(nil, sql)
			if err != nil {
				return err
			}
			a.logger.Debug("count sql derived, order by allowed: %v", info.OrderBy)
			fmt.Fprintln(cmd.OutOrStdout(), info.SQL)
			return nil
		},
	}
	cmd.Flags().BoolVar(&simple, "simple", false, "wrap the query in the base count template")
	return cmd
}

func newOrderByCommand(a *app) *cobra.Command {
	var (
		ascs   []string
		descs  []string
		noSort bool
	)

	cmd := &cobra.Command{
		Use:   "orderby [SQL]",
		Short: "Append an ORDER BY clause built from ascending and descending columns",
		RunE: func(cmd *cobra.Command, args []string) error {
			sql, err := readSQL(cmd, args)
			if err != nil {
				return err
			}
			page := pagination.Default().SetAscs(ascs...).SetDescs(descs...)
			page.OpenSort = a.cfg.Pagination.OpenSort
			fmt.Fprintln(cmd.OutOrStdout(), sqlutil.ConcatOrderBy(sql, page, !noSort))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&ascs, "asc", nil, "ascending columns")
	cmd.Flags().StringSliceVar(&descs, "desc", nil, "descending columns")
	cmd.Flags().BoolVar(&noSort, "no-sort", false, "leave the query unchanged")
	return cmd
}

func newFormatCommand(a *app) *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "format [SQL]",
		Short: "Pretty-print a SQL statement or collapse its whitespace",
		RunE: func(cmd *cobra.Command, args []string) error {
			sql, err := readSQL(cmd, args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("pretty") {
				pretty = a.cfg.Format.Pretty
			}
			fmt.Fprintln(cmd.OutOrStdout(), sqlutil.SQLFormat(sql, pretty))
			return nil
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "multi-line output (defaults to format.pretty)")
	return cmd
}

func newLikeCommand(a *app) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "like VALUE",
		Short: "Wrap a search term with % wildcards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), sqlutil.ConcatLike(args[0], sqlutil.ParseSQLLike(mode)))
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "default", "left, right, custom or default")
	return cmd
}
