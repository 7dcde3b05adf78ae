package index

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/quotefeed/dibbs/cmd/internal/common"
)

var (
	dibbsDataDir string

	Cmd = cobra.Command{
		Use:   "index",
		Short: "DIBBS RFQ index files",
	}

	downloadCmd = cobra.Command{
		Use:   "download from [to]",
		Short: "Download daily RFQ index files from DIBBS",
		Example: `
  - Download the index file of one day:

    $ dibbs index download 2024-03-15

  - Download index files of a date range:

    $ dibbs index download 2024-03-01 2024-03-15`,
		Args: cobra.RangeArgs(1, 2),
		Run: func(cmd *cobra.Command, args []string) {
			from, to, err := parseDayRange(args)
			cobra.CheckErr(err)

			client, err := common.NewClient()
			cobra.CheckErr(err)
			d := NewDownload(client, newDownloadDir(dibbsDataDir))
			cobra.CheckErr(d.Download(from, to))
		},
	}

	parseCmd = cobra.Command{
		Use:   "parse file...",
		Short: "Parse local RFQ index files and report their records",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			for _, fname := range args {
				cobra.CheckErr(parseIndexFile(fname))
			}
		},
	}
)

func init() {
	Cmd.AddCommand(&downloadCmd)
	Cmd.AddCommand(&parseCmd)
	downloadCmd.Flags().StringVarP(&dibbsDataDir, "datadir", "d", "./",
		"store index files into this directory")
}

func parseDayRange(args []string) (from, to time.Time, err error) {
	if from, err = time.Parse(time.DateOnly, args[0]); err != nil {
		err = fmt.Errorf("parse day %q: %w", args[0], err)
		return
	}
	to = from
	if len(args) > 1 {
		if to, err = time.Parse(time.DateOnly, args[1]); err != nil {
			err = fmt.Errorf("parse day %q: %w", args[1], err)
			return
		}
	}
	if to.Before(from) {
		err = fmt.Errorf("day range %v..%v is inverted", args[0], args[1])
	}
	return
}
