package cmd

import (
	"fmt"

	dotenv "github.com/dsh2dsh/expx-dotenv"
	"github.com/spf13/cobra"

	"github.com/quotefeed/dibbs/cmd/db"
	"github.com/quotefeed/dibbs/cmd/index"
)

// SchemaSQL contains db/schema.sql via main.go
var SchemaSQL string

var rootCmd = cobra.Command{
	Use:   "dibbs",
	Short: "Download solicitation data from DLA DIBBS",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadEnvs()
	},
}

func init() {
	rootCmd.AddCommand(&db.Cmd)
	rootCmd.AddCommand(&index.Cmd)
}

func Execute() {
	db.SchemaSQL = SchemaSQL
	cobra.CheckErr(rootCmd.Execute())
}

func loadEnvs() error {
	if err := dotenv.New().WithDepth(1).Load(); err != nil {
		return fmt.Errorf("load dibbs envs: %w", err)
	}
	return nil
}
