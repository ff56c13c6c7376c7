// Package cli wires the tftlookup command line: the interactive lookup and
// its scripting subcommands.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"tftlookup/internal/catalog"
	"tftlookup/internal/config"
	"tftlookup/internal/logger"
)

// NewApp builds the root command. Output goes to stdout and stderr unless
// the returned command's Writer and ErrWriter are replaced
func NewApp() *cli.Command {
	return &cli.Command{
		Name:      "tftlookup",
		Usage:     "Look up Teamfight Tactics items from the terminal",
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file (toml, json or yaml)",
				Sources: cli.EnvVars("TFTLOOKUP_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "url",
				Usage:   "Item API endpoint",
				Sources: cli.EnvVars("TFTLOOKUP_URL"),
			},
			&cli.StringFlag{
				Name:    "items-file",
				Usage:   "Read items from a local JSON file instead of the API",
				Sources: cli.EnvVars("TFTLOOKUP_ITEMS_FILE"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("TFTLOOKUP_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "Log file for the interactive lookup",
				Sources: cli.EnvVars("TFTLOOKUP_LOG_FILE"),
			},
			&cli.BoolFlag{
				Name:    "no-autoselect",
				Usage:   "Do not highlight the first result",
				Sources: cli.EnvVars("TFTLOOKUP_NO_AUTOSELECT"),
			},
			&cli.BoolFlag{
				Name:    "inline",
				Usage:   "Complete the query in place with the highlighted result",
				Sources: cli.EnvVars("TFTLOOKUP_INLINE"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return RunTUI(ctx, cfg)
		},
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Print the items whose name starts with PREFIX",
				ArgsUsage: "PREFIX",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := loadConfig(cmd)
					if err != nil {
						return err
					}
					return Search(ctx, SearchParams{
						Config: cfg,
						Prefix: cmd.Args().First(),
						Out:    cmd.Root().Writer,
						Log:    stderrLogger(cmd, cfg),
					})
				},
			},
			{
				Name:      "show",
				Usage:     "Print the details of the item called NAME",
				ArgsUsage: "NAME",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := loadConfig(cmd)
					if err != nil {
						return err
					}
					return Show(ctx, ShowParams{
						Config: cfg,
						Name:   cmd.Args().First(),
						Out:    cmd.Root().Writer,
						Log:    stderrLogger(cmd, cfg),
					})
				},
			},
			{
				Name:  "config",
				Usage: "Manage the config file",
				Commands: []*cli.Command{
					{
						Name:  "init",
						Usage: "Write the default config file",
						Flags: []cli.Flag{
							&cli.BoolFlag{
								Name:    "force",
								Aliases: []string{"f"},
								Usage:   "Overwrite an existing file",
							},
						},
						Action: func(_ context.Context, cmd *cli.Command) error {
							return ConfigInit(cmd.String("config"), cmd.Bool("force"), cmd.Root().Writer)
						},
					},
					{
						Name:  "path",
						Usage: "Print where the config file is read from",
						Action: func(_ context.Context, cmd *cli.Command) error {
							return ConfigPath(cmd.String("config"), cmd.Root().Writer)
						},
					},
				},
			},
		},
	}
}

// loadConfig reads the config file and applies flag and env overrides
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.NewConfigService(cmd.String("config")).Load()
	if err != nil {
		return nil, err
	}

	if cmd.IsSet("url") {
		cfg.APIURL = cmd.String("url")
	}
	if cmd.IsSet("items-file") {
		cfg.ItemsFile = cmd.String("items-file")
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("log-file") {
		cfg.LogFile = cmd.String("log-file")
	}
	if cmd.Bool("no-autoselect") {
		cfg.UISettings.AutoSelect = false
	}
	if cmd.IsSet("inline") {
		cfg.UISettings.InlineAutocomplete = cmd.Bool("inline")
	}

	return cfg, nil
}

// newFetcher picks the item source: the local file when one is configured,
// the API otherwise. The second value names the source for logs
func newFetcher(cfg *config.Config) (catalog.FetchFunc, string) {
	if cfg.ItemsFile != "" {
		return catalog.FileFetcher(cfg.ItemsFile), cfg.ItemsFile
	}
	client := catalog.NewClient(cfg.APIURL, cfg.Timeout())
	return client.Fetch, client.URL()
}

func stderrLogger(cmd *cli.Command, cfg *config.Config) logrus.FieldLogger {
	var w io.Writer = os.Stderr
	if root := cmd.Root(); root.ErrWriter != nil {
		w = root.ErrWriter
	}
	return logger.New(cfg.LogLevel, w)
}
