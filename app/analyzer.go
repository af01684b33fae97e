package app

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
	"gitlab.com/aoterocom/ROEAnalyzer/config"
	"gitlab.com/aoterocom/ROEAnalyzer/dashboard"
	"gitlab.com/aoterocom/ROEAnalyzer/database"
	"gitlab.com/aoterocom/ROEAnalyzer/helpers"
	"gitlab.com/aoterocom/ROEAnalyzer/interfaces"
	"gitlab.com/aoterocom/ROEAnalyzer/providers"
	"gitlab.com/aoterocom/ROEAnalyzer/ui"
)

const defaultDashboardLogFile = "analyzer.log"

// Analyzer holds what every command needs once the configuration is loaded.
type Analyzer struct {
	cfg             *config.Config
	provider        interfaces.AnalysisProvider
	databaseService *database.DBService
}

// setup loads the configuration, applies the global flags and wires the
// logger, the provider and the optional history database.
func (a *Analyzer) setup(c *cli.Context, fallbackLogFile string) error {
	cfg, err := config.Load(c.String("conf"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if c.IsSet("provider") {
		cfg.Provider = c.String("provider")
	}
	if c.IsSet("api-base-url") {
		cfg.APIBaseURL = c.String("api-base-url")
	}
	if c.IsSet("log-file") {
		cfg.Log.File = c.String("log-file")
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if cfg.Log.File == "" {
		cfg.Log.File = fallbackLogFile
	}

	err = helpers.Logger.Configure(helpers.LoggerSettings{
		File:           cfg.Log.File,
		Level:          cfg.Log.Level,
		TelegramOutput: cfg.Log.TelegramOutput,
		TelegramToken:  cfg.Log.TelegramToken,
		TelegramChatId: cfg.Log.TelegramChatId,
	})
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	provider, err := providers.ProviderFactory(cfg)
	if err != nil {
		helpers.Logger.Errorln(err)
		return cli.Exit(err.Error(), 1)
	}

	if cfg.Database.Enabled {
		a.databaseService, err = database.NewDBService(cfg.Database.Host, cfg.Database.Port, cfg.Database.Name,
			cfg.Database.User, cfg.Database.Password)
		if err != nil {
			helpers.Logger.Errorln("database: " + err.Error())
			return cli.Exit("database: "+err.Error(), 1)
		}
	}

	a.cfg = cfg
	a.provider = provider
	return nil
}

func (a *Analyzer) newController(view dashboard.View) *dashboard.Controller {
	controller := dashboard.NewController(a.provider, view, dashboard.Settings{
		Controls:          dashboard.NewControls(a.cfg.DefaultMinROE, a.cfg.DefaultYears, a.cfg.DefaultLimit),
		DebounceDelay:     a.cfg.DebounceDelay,
		ErrorMessageTTL:   a.cfg.ErrorMessageTTL,
		SuccessMessageTTL: a.cfg.SuccessMessageTTL,
	})
	if a.databaseService != nil {
		controller.SetRecorder(a.databaseService)
	}
	return controller
}

func (a *Analyzer) RunDashboard(c *cli.Context) error {
	if err := a.setup(c, defaultDashboardLogFile); err != nil {
		return err
	}
	defer helpers.Logger.Close()
	helpers.Logger.Infoln("📊 ROE Analyzer dashboard started (" + a.cfg.Provider + ")")

	userInterface := ui.NewUserInterface()
	controller := a.newController(userInterface)
	userInterface.SetController(controller)
	defer controller.Close()

	if err := userInterface.Run(); err != nil {
		helpers.Logger.Errorln(err)
		return cli.Exit(err.Error(), 1)
	}
	return nil
}

// RunAnalysis performs one manual analysis and prints it.
func (a *Analyzer) RunAnalysis(c *cli.Context) error {
	if err := a.setup(c, ""); err != nil {
		return err
	}
	defer helpers.Logger.Close()

	view := ui.NewTextView(c.App.Writer)
	controller := a.newController(view)
	defer controller.Close()

	if c.IsSet("min-roe") {
		controller.SetMinROE(c.Float64("min-roe"))
	}
	if c.IsSet("years") {
		controller.SetYears(c.Int("years"))
	}
	if c.IsSet("limit") {
		controller.SetLimit(c.Int("limit"))
	}

	controller.PerformAnalysis(c.Context, false)
	if view.Failed() {
		return cli.Exit("analysis failed", 1)
	}

	if symbol := strings.ToUpper(c.String("symbol")); symbol != "" {
		if !controller.ShowChart(symbol) {
			return cli.Exit(fmt.Sprintf("%s is not among the analysed companies", symbol), 1)
		}
	}
	return nil
}

func (a *Analyzer) RunHistory(c *cli.Context) error {
	if err := a.setup(c, ""); err != nil {
		return err
	}
	defer helpers.Logger.Close()

	if a.databaseService == nil {
		return cli.Exit("analysis history needs enableDatabaseRecording=true", 1)
	}
	runs, err := a.databaseService.RecentRuns(c.Int("limit"))
	if err != nil {
		helpers.Logger.Errorln(err)
		return cli.Exit(err.Error(), 1)
	}
	ui.WriteHistory(c.App.Writer, runs)
	return nil
}
