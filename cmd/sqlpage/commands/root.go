package commands

import (
	"io"
	"strings"

	"github.com/kasuganosora/sqlpage/pkg/config"
	"github.com/kasuganosora/sqlpage/pkg/log"
	_ "github.com/kasuganosora/sqlpage/pkg/optimize"
	"github.com/kasuganosora/sqlpage/pkg/sqlfmt"
	"github.com/kasuganosora/sqlpage/pkg/sqlutil"
	"github.com/spf13/cobra"
)

// app 命令共享的运行时依赖
type app struct {
	configPath string
	cfg        *config.Config
	logger     log.Logger
	helper     *sqlutil.Helper
}

func (a *app) init(cmd *cobra.Command) error {
	if a.configPath != "" {
		cfg, err := config.LoadConfig(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	} else {
		a.cfg = config.LoadConfigOrDefault()
	}

	a.logger = log.NewLogrusLoggerWithOutput(log.ParseLevel(a.cfg.Log.Level), a.cfg.Log.Format, cmd.ErrOrStderr())
	a.helper = sqlutil.NewHelper(sqlutil.WithDefaultOptimizer(a.cfg.OptimizerName()))
	sqlutil.SetFormatter(&sqlfmt.BasicFormatter{Indent: a.cfg.Format.Indent})
	return nil
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "sqlpage",
		Short:         "SQL paging helpers: count queries, ORDER BY, formatting and LIKE patterns",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file (yaml/json/toml)")

	rootCmd.AddCommand(
		newCountCommand(a),
		newOrderByCommand(a),
		newFormatCommand(a),
		newLikeCommand(a),
		newPageCommand(a),
	)
	return rootCmd
}

// readSQL 取参数拼接的 SQL，无参数时读取标准输入
func readSQL(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
