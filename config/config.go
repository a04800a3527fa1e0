// Package config is responsible for setting the program config from
// the config file and command-line arguments.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
)

const Version = "v0.3.1"

var (
	configDir      = "worktrack"
	configFileName = "config.yml"
	dbFileName     = "worktrack.db"
	statusFileName = "status.json"
	logFileName    = "worktrack.log"

	configFilePath string
	dbFilePath     string
	statusFilePath string
	logFilePath    string
)

var once sync.Once

// TrackerConfig represents the program configuration derived from the
// config file and command-line arguments.
type TrackerConfig struct {
	UserName         string        `json:"user_name"`
	APIBaseURL       string        `json:"api_base_url"`
	ReminderInterval time.Duration `json:"reminder_interval"`
	SessionCmd       string        `json:"session_cmd"`
	PathToConfig     string        `json:"path_to_config"`
	PathToDB         string        `json:"path_to_db"`
	Notify           bool          `json:"notify"`
	DarkTheme        bool          `json:"dark_theme"`
	TwentyFourHour   bool          `json:"twenty_four_hour_clock"`
}

func init() {
	env := strings.TrimSpace(os.Getenv("WORKTRACK_ENV"))
	if env != "" {
		configFileName = fmt.Sprintf("config_%s.yml", env)
		dbFileName = fmt.Sprintf("worktrack_%s.db", env)
		statusFileName = fmt.Sprintf("status_%s.json", env)
		logFileName = fmt.Sprintf("worktrack_%s.log", env)
	}
}

func Dir() string {
	return configDir
}

func DBFilePath() string {
	return dbFilePath
}

func StatusFilePath() string {
	return statusFilePath
}

func LogFilePath() string {
	return logFilePath
}

// InitializePaths resolves the xdg locations for the config file, the
// local database, the status file, and the log file.
func InitializePaths() {
	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dbFilePath = filepath.Join(dataDir, dbFileName)
	statusFilePath = filepath.Join(dataDir, statusFileName)
	logFilePath = filepath.Join(dataDir, logFileName)
}

// Tracker initialises the tracker configuration from the config file,
// creating the file with defaults on first run, and applies any
// command-line overrides.
func Tracker(ctx *cli.Context) *TrackerConfig {
	once.Do(func() {
		InitializePaths()
		InitLogger()

		trackerCfg.PathToConfig = configFilePath
		trackerCfg.PathToDB = dbFilePath

		err := initTrackerConfig()
		if err != nil {
			pterm.Error.Printfln("%s: %s", errInitFailed.Error(), err.Error())
			os.Exit(1)
		}

		setTrackerConfig(ctx)
	})

	return trackerCfg
}
