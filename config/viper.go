package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

const ascii = `
██╗    ██╗ ██████╗ ██████╗ ██╗  ██╗████████╗██████╗  █████╗  ██████╗██╗  ██╗
██║    ██║██╔═══██╗██╔══██╗██║ ██╔╝╚══██╔══╝██╔══██╗██╔══██╗██╔════╝██║ ██╔╝
██║ █╗ ██║██║   ██║██████╔╝█████╔╝    ██║   ██████╔╝███████║██║     █████╔╝
██║███╗██║██║   ██║██╔══██╗██╔═██╗    ██║   ██╔══██╗██╔══██║██║     ██╔═██╗
╚███╔███╔╝╚██████╔╝██║  ██║██║  ██╗   ██║   ██║  ██║██║  ██║╚██████╗██║  ██╗
 ╚══╝╚══╝  ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝`

const (
	keyUserName         = "user.name"
	keyReminderInterval = "reminder.interval"
	keyAPIBaseURL       = "api.base_url"
	key24HourClock      = "settings.24hr_clock"
	keySessionCmd       = "settings.cmd"
	keyNotify           = "notifications.enabled"
	keyDarkTheme        = "display.dark_theme"
)

const defaultReminderInterval = 30 * time.Minute

var trackerCfg = &TrackerConfig{}

func initTrackerConfig() error {
	viper.SetConfigFile(configFilePath)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		if errors.As(err, &viper.ConfigFileNotFoundError{}) ||
			errors.Is(err, os.ErrNotExist) {
			return createTrackerConfig()
		}

		return err
	}

	return nil
}

func setTrackerDefaults() {
	viper.SetDefault(keyReminderInterval, "30m")
	viper.SetDefault(keyAPIBaseURL, "")
	viper.SetDefault(key24HourClock, false)
	viper.SetDefault(keySessionCmd, "")
	viper.SetDefault(keyNotify, true)
	viper.SetDefault(keyDarkTheme, true)
}

// createTrackerConfig prompts for a user name and writes the config
// file with default values on first run.
func createTrackerConfig() error {
	defer fmt.Println()

	pterm.Println(ascii)

	pterm.Info.Printfln(
		"Your preferences will be saved to: %s\n\n",
		configFilePath,
	)

	userName, err := promptUserName()
	if err != nil {
		return err
	}

	setTrackerDefaults()

	viper.Set(keyUserName, userName)

	pterm.Success.Printfln(
		"Your settings have been saved. Thanks for using Worktrack, %s!",
		userName,
	)

	return viper.WriteConfigAs(configFilePath)
}

// SaveUserName persists the name to the config file.
func SaveUserName(name string) error {
	viper.Set(keyUserName, name)

	trackerCfg.UserName = name

	return viper.WriteConfigAs(configFilePath)
}

// parseInterval interprets the reminder interval setting. Strings are
// parsed as Go durations, while bare numbers are taken as minutes.
func parseInterval(value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err == nil {
		return d, nil
	}

	mins, err2 := strconv.Atoi(value)
	if err2 != nil {
		return 0, err
	}

	return time.Duration(mins) * time.Minute, nil
}

func setTrackerConfig(ctx *cli.Context) {
	setTrackerDefaults()

	trackerCfg.UserName = viper.GetString(keyUserName)
	trackerCfg.APIBaseURL = viper.GetString(keyAPIBaseURL)
	trackerCfg.SessionCmd = viper.GetString(keySessionCmd)
	trackerCfg.Notify = viper.GetBool(keyNotify)
	trackerCfg.DarkTheme = viper.GetBool(keyDarkTheme)
	trackerCfg.TwentyFourHour = viper.GetBool(key24HourClock)

	trackerCfg.ReminderInterval = defaultReminderInterval

	if v := viper.GetString(keyReminderInterval); v != "" {
		d, err := parseInterval(v)
		if err != nil {
			pterm.Warning.Printfln(
				"config: invalid reminder interval %q, using default",
				v,
			)
		} else {
			trackerCfg.ReminderInterval = d
		}
	}

	if ctx == nil {
		return
	}

	if ctx.String("reminder") != "" {
		d, err := parseInterval(ctx.String("reminder"))
		if err != nil {
			pterm.Warning.Printfln(
				"invalid reminder interval %q, using %s",
				ctx.String("reminder"),
				trackerCfg.ReminderInterval,
			)
		} else {
			trackerCfg.ReminderInterval = d
		}
	}

	if ctx.String("session-cmd") != "" {
		trackerCfg.SessionCmd = ctx.String("session-cmd")
	}

	if ctx.Bool("disable-notification") {
		trackerCfg.Notify = false
	}
}
