package app

import (
	"github.com/urfave/cli/v2"
)

func NewApp() *cli.App {
	analyzer := &Analyzer{}

	return &cli.App{
		Name:  "roe-analyzer",
		Usage: "screen companies by ROE and compare it with their stock returns",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "conf", Value: "conf.env", Usage: "env file with the configuration"},
			&cli.StringFlag{Name: "provider", Usage: "analysis provider: backend or demo"},
			&cli.StringFlag{Name: "api-base-url", Usage: "base URL of the analysis backend"},
			&cli.StringFlag{Name: "log-file", Usage: "write logs to this file"},
			&cli.StringFlag{Name: "log-level", Usage: "trace, debug, info, warn or error"},
		},
		Action: analyzer.RunDashboard,
		Commands: []*cli.Command{
			{
				Name:   "dashboard",
				Usage:  "interactive terminal dashboard",
				Action: analyzer.RunDashboard,
			},
			{
				Name:  "analyze",
				Usage: "run one analysis and print the ranking",
				Flags: []cli.Flag{
					&cli.Float64Flag{Name: "min-roe", Usage: "minimum average ROE (%)"},
					&cli.IntFlag{Name: "years", Usage: "number of years the ROE must hold"},
					&cli.IntFlag{Name: "limit", Usage: "maximum number of companies"},
					&cli.StringFlag{Name: "symbol", Usage: "print the chart series and details of this company"},
				},
				Action: analyzer.RunAnalysis,
			},
			{
				Name:  "history",
				Usage: "list the most recent recorded analyses",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Value: 20, Usage: "number of runs to show"},
				},
				Action: analyzer.RunHistory,
			},
		},
	}
}
