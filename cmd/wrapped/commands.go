package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/OPGLOL/opgl-wrapped/internal/config"
	"github.com/OPGLOL/opgl-wrapped/internal/logger"
	"github.com/OPGLOL/opgl-wrapped/internal/models"
	"github.com/OPGLOL/opgl-wrapped/internal/overview"
	"github.com/OPGLOL/opgl-wrapped/internal/stats"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app holds what every subcommand needs, built once in PersistentPreRunE
type app struct {
	config   *config.Config
	logger   zerolog.Logger
	client   *stats.Client
	overview *overview.Service
}

func newRootCommand() *cobra.Command {
	application := &app{}

	root := &cobra.Command{
		Use:           "wrapped",
		Short:         "League of Legends wrapped stats client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			application.config = config.Load()
			application.logger = logger.New(application.config.LogLevel, application.config.LogFormat, cmd.ErrOrStderr())
			application.config.LogSummary(application.logger)

			application.client = stats.NewClient(
				application.config.ClientConfig(),
				stats.WithLogger(application.logger),
				stats.WithRateLimit(application.config.RateLimitRPM),
			)
			application.overview = overview.NewService(application.client, application.logger)
			return nil
		},
	}

	root.AddCommand(application.statsCmd())
	root.AddCommand(application.gamesCmd())
	root.AddCommand(application.analyzeCmd())
	root.AddCommand(application.accountCmd())
	root.AddCommand(application.progressCmd())
	root.AddCommand(application.overviewCmd())
	root.AddCommand(application.versionCmd())
	root.AddCommand(championImageCmd(application))
	root.AddCommand(durationCmd())
	root.AddCommand(winRateCmd())

	return root
}

// --------------------------------------------------------------------------
// network commands
// --------------------------------------------------------------------------

func (application *app) statsCmd() *cobra.Command {
	var region string
	cmd := &cobra.Command{
		Use:   "stats NAME TAG",
		Short: "Fetch the validated yearly stats report",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := application.client.FetchPlayerStats(cmd.Context(), identityFromArgs(args, region))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), report)
		},
	}
	cmd.Flags().StringVar(&region, "region", "", "platform region (e.g. euw1, na1, kr)")
	return cmd
}

func (application *app) gamesCmd() *cobra.Command {
	var (
		region   string
		puuid    string
		page     int
		pageSize int
		all      bool
		maxPages int
	)
	cmd := &cobra.Command{
		Use:   "games NAME TAG",
		Short: "Fetch a page of match files, or every page with --all",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			identity := identityFromArgs(args, region)
			query := stats.GamesQuery{Page: page, PageSize: pageSize}
			if puuid != "" {
				query.PUUID = &puuid
			}

			if all {
				files, err := application.overview.CollectGames(cmd.Context(), identity, query, maxPages)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), files)
			}

			gamePage, err := application.client.FetchAllGames(cmd.Context(), identity, query)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), gamePage)
		},
	}
	cmd.Flags().StringVar(&region, "region", stats.DefaultRegion, "platform region")
	cmd.Flags().StringVar(&puuid, "puuid", "", "player PUUID, if already known")
	cmd.Flags().IntVar(&page, "page", stats.DefaultPage, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", stats.DefaultPageSize, "files per page")
	cmd.Flags().BoolVar(&all, "all", false, "follow has_more through every page")
	cmd.Flags().IntVar(&maxPages, "max-pages", overview.DefaultMaxPages, "page limit for --all")
	return cmd
}

func (application *app) analyzeCmd() *cobra.Command {
	var region string
	cmd := &cobra.Command{
		Use:   "analyze NAME TAG GAMEID",
		Short: "Analyze a single match",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			analysis, err := application.client.AnalyzeGame(cmd.Context(), identityFromArgs(args, region), args[2])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), analysis)
		},
	}
	cmd.Flags().StringVar(&region, "region", stats.DefaultRegion, "platform region")
	return cmd
}

func (application *app) accountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "account NAME TAG",
		Short: "Fetch account data",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := application.client.FetchAccountData(cmd.Context(), identityFromArgs(args, ""))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), account)
		},
	}
}

func (application *app) progressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress NAME TAG",
		Short: "Fetch month-by-month progress for the year",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			progress, err := application.client.FetchMonthlyProgress(cmd.Context(), identityFromArgs(args, ""))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), progress)
		},
	}
}

func (application *app) overviewCmd() *cobra.Command {
	var region string
	cmd := &cobra.Command{
		Use:   "overview NAME TAG",
		Short: "Fetch stats, account, progress and the DataDragon version together",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := application.overview.Load(cmd.Context(), identityFromArgs(args, region))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVar(&region, "region", "", "platform region")
	return cmd
}

func (application *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the latest DataDragon version (falls back to " + stats.FallbackDataDragonVersion + ")",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), application.client.GetLatestDataDragonVersion(cmd.Context()))
			return nil
		},
	}
}

// --------------------------------------------------------------------------
// local commands
// --------------------------------------------------------------------------

func championImageCmd(application *app) *cobra.Command {
	var (
		version string
		latest  bool
	)
	cmd := &cobra.Command{
		Use:   "champion-image NAME",
		Short: "Print the DataDragon portrait URL for a champion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if latest {
				version = application.client.GetLatestDataDragonVersion(cmd.Context())
			}
			fmt.Fprintln(cmd.OutOrStdout(), stats.ChampionImageURL(args[0], version))
			return nil
		},
	}
	cmd.Flags().StringVar(&version, "version", stats.FallbackDataDragonVersion, "DataDragon version")
	cmd.Flags().BoolVar(&latest, "latest", false, "look up the latest DataDragon version first")
	return cmd
}

func durationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "duration SECONDS",
		Short: "Format a number of seconds as days, hours and minutes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seconds, err := strconv.Atoi(args[0])
			if err != nil || seconds < 0 {
				return fmt.Errorf("SECONDS must be a non-negative integer, got %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), stats.FormatDuration(seconds))
			return nil
		},
	}
}

func winRateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "winrate WINS LOSSES",
		Short: "Compute the win rate as a fraction between 0 and 1",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			wins, err := strconv.Atoi(args[0])
			if err != nil || wins < 0 {
				return fmt.Errorf("WINS must be a non-negative integer, got %q", args[0])
			}
			losses, err := strconv.Atoi(args[1])
			if err != nil || losses < 0 {
				return fmt.Errorf("LOSSES must be a non-negative integer, got %q", args[1])
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(stats.CalculateWinRate(wins, losses), 'f', 4, 64))
			return nil
		},
	}
}

// --------------------------------------------------------------------------
// helpers
// --------------------------------------------------------------------------

func identityFromArgs(args []string, region string) models.PlayerIdentity {
	return models.PlayerIdentity{
		GameName: args[0],
		GameTag:  args[1],
		Region:   region,
	}
}

func printJSON(out io.Writer, v interface{}) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(out, string(encoded))
	return err
}
