package cmd

import (
	"context"
	"fmt"
	"os"

	warpscript "github.com/alexandrebrg/warpscript-go"
	"github.com/spf13/cobra"
)

var (
	maxOps     int64
	maxDepth   int
	maxRecurse int
	maxSymbols int
	secure     bool
	audit      bool
)

var runCmd = &cobra.Command{
	Use:   "run [script-file]",
	Short: "Run a WarpScript-style script file and print the final stack",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		cfg := warpscript.DefaultConfig()
		if maxOps > 0 {
			cfg.MaxOps = maxOps
		}
		if maxDepth > 0 {
			cfg.MaxDepth = maxDepth
		}
		if maxRecurse > 0 {
			cfg.MaxRecurse = maxRecurse
		}
		if maxSymbols > 0 {
			cfg.MaxSymbols = maxSymbols
		}
		cfg.Secure = secure
		cfg.Audit = audit

		ws := warpscript.New(cfg)
		if err := ws.ExecuteString(cmd.Context(), string(data), args[0]); err != nil {
			return fmt.Errorf("warpscript: %w", err)
		}

		depth := ws.Stack.Depth()
		fmt.Fprintf(cmd.OutOrStdout(), "stack depth: %d\n", depth)
		for i := 0; i < depth; i++ {
			v, err := ws.Stack.Peekn(i)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  [%d] %s\n", i, v.String())
		}
		return nil
	},
}

func init() {
	runCmd.Flags().Int64Var(&maxOps, "max-ops", 0, "override the op-count budget")
	runCmd.Flags().IntVar(&maxDepth, "max-depth", 0, "override the stack-depth budget")
	runCmd.Flags().IntVar(&maxRecurse, "max-recurse", 0, "override the recursion-depth budget")
	runCmd.Flags().IntVar(&maxSymbols, "max-symbols", 0, "override the symbol-table budget")
	runCmd.Flags().BoolVar(&secure, "secure", false, "run the whole script as a secure macro")
	runCmd.Flags().BoolVar(&audit, "audit", false, "enable audit mode")
}
