package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/markusmobius/go-dateparser"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/worktrack-app/worktrack/config"
	"github.com/worktrack-app/worktrack/internal/timeutil"
	"github.com/worktrack-app/worktrack/internal/ui"
	"github.com/worktrack-app/worktrack/remote"
	"github.com/worktrack-app/worktrack/store"
	"github.com/worktrack-app/worktrack/syncer"
	"github.com/worktrack-app/worktrack/tracker"
)

const (
	envNoColor          = "NO_COLOR"
	envWorktrackNoColor = "WORKTRACK_NO_COLOR"
)

var (
	errNoBaseURL = errors.New(
		"api.base_url must be set in the config file",
	)

	errNoUserName = errors.New(
		"no user name set: run 'worktrack set-user <name>' first",
	)

	errRecordIDRequired = errors.New("a record id is required")

	errRecordNotFound = errors.New("no record with the given id exists")
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// parseInstant interprets a natural-language time like '20 mins ago' or
// 'yesterday'.
func parseInstant(value string) (time.Time, error) {
	dt, err := dateparser.Parse(&dateparser.Configuration{
		CurrentTime:     time.Now(),
		DefaultTimezone: time.Local,
	}, value)
	if err != nil {
		return time.Time{}, err
	}

	return dt.Time, nil
}

// resolveDate returns the day a command operates on, defaulting to
// today.
func resolveDate(ctx *cli.Context) (string, error) {
	if ctx.String("date") == "" {
		return timeutil.Date(time.Now()), nil
	}

	instant, err := parseInstant(ctx.String("date"))
	if err != nil {
		return "", err
	}

	return timeutil.Date(instant), nil
}

// resolveUserName prefers the name in the local store over the config
// file.
func resolveUserName(db store.DB, cfg *config.TrackerConfig) (string, error) {
	name, err := db.UserName()
	if err != nil {
		return "", err
	}

	name = firstNonEmptyString(name, cfg.UserName)
	if name == "" {
		return "", errNoUserName
	}

	return name, nil
}

// newSyncer builds the sync engine and loads the records matching the
// filter. A failed initial load is reported but not fatal: the cache
// starts empty and recovers on the next reload.
func newSyncer(
	ctx *cli.Context,
	cfg *config.TrackerConfig,
	f remote.Filter,
) (*syncer.Syncer, error) {
	if cfg.APIBaseURL == "" {
		return nil, errNoBaseURL
	}

	s := syncer.New(remote.NewClient(cfg.APIBaseURL), func(err error) {
		slog.Error("sync failed", slog.Any("error", err))
		pterm.Error.Printfln("sync: %v", err)
	})

	s.SetFilter(f)

	err := s.Reload(ctx.Context)
	if err != nil {
		pterm.Warning.Printfln(
			"unable to load records from the remote store: %v",
			err,
		)
	}

	return s, nil
}

func trackerHelper(
	ctx *cli.Context,
) (*tracker.Tracker, store.DB, *syncer.Syncer, error) {
	cfg := config.Tracker(ctx)

	db, err := store.NewClient(cfg.PathToDB)
	if err != nil {
		return nil, nil, nil, err
	}

	userName, err := resolveUserName(db, cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	// an interval given on the command line becomes the durable one
	if ctx.String("reminder") != "" {
		err = db.SetReminderInterval(cfg.ReminderInterval)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	sync, err := newSyncer(ctx, cfg, remote.Filter{UserName: userName})
	if err != nil {
		return nil, nil, nil, err
	}

	t, err := tracker.New(db, sync, cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	return t, db, sync, nil
}

// defaultAction resumes a persisted session or starts a new one, then
// hands over to the interactive session view.
func defaultAction(ctx *cli.Context) error {
	t, db, sync, err := trackerHelper(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	ui.DarkTheme = config.Tracker(ctx).DarkTheme

	if t.Current == nil {
		startTime := time.Now()

		if ctx.String("since") != "" {
			startTime, err = parseInstant(ctx.String("since"))
			if err != nil {
				return err
			}
		}

		err = t.StartSession(startTime)
		if err != nil {
			return err
		}
	} else {
		pterm.Info.Printfln(
			"Resuming the session started at %s",
			t.Current.StartTime,
		)
	}

	err = t.Run()

	sync.Wait()

	return err
}

// listAction prints the work records for a day.
func listAction(ctx *cli.Context) error {
	cfg := config.Tracker(ctx)

	db, err := store.NewClient(cfg.PathToDB)
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	userName, err := resolveUserName(db, cfg)
	if err != nil {
		return err
	}

	date, err := resolveDate(ctx)
	if err != nil {
		return err
	}

	sync, err := newSyncer(ctx, cfg, remote.Filter{
		UserName: userName,
		Date:     date,
	})
	if err != nil {
		return err
	}

	records := sync.Records()

	if ctx.Bool("json") {
		b, err := json.Marshal(records)
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	listRecords(os.Stdout, date, records)

	return nil
}

// addAction records a past work session, splitting it across days when
// it crossed midnight.
func addAction(ctx *cli.Context) error {
	cfg := config.Tracker(ctx)

	db, err := store.NewClient(cfg.PathToDB)
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	userName, err := resolveUserName(db, cfg)
	if err != nil {
		return err
	}

	date, err := resolveDate(ctx)
	if err != nil {
		return err
	}

	sync, err := newSyncer(ctx, cfg, remote.Filter{UserName: userName})
	if err != nil {
		return err
	}

	records, err := tracker.SplitManual(
		userName,
		date,
		ctx.String("start"),
		ctx.String("end"),
		tracker.Annotation{
			WorkDescription: ctx.String("description"),
			Project:         ctx.String("project"),
			Category:        ctx.String("category"),
			Blocked:         ctx.Bool("blocked"),
		},
		sync.NextSessionNo,
	)
	if err != nil {
		return err
	}

	for i := range records {
		sync.Create(records[i])
	}

	sync.Wait()

	pterm.Success.Printfln("Recorded %d session(s)", len(records))

	return nil
}

// editAction updates fields on an existing record. The record keeps its
// date and session number: edits never re-split a session across days.
func editAction(ctx *cli.Context) error {
	recordID := ctx.Args().First()
	if recordID == "" {
		return errRecordIDRequired
	}

	cfg := config.Tracker(ctx)

	db, err := store.NewClient(cfg.PathToDB)
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	userName, err := resolveUserName(db, cfg)
	if err != nil {
		return err
	}

	sync, err := newSyncer(ctx, cfg, remote.Filter{UserName: userName})
	if err != nil {
		return err
	}

	records := sync.Records()

	index := -1

	for i := range records {
		if records[i].RecordID == recordID {
			index = i
			break
		}
	}

	if index == -1 {
		return errRecordNotFound
	}

	rec := records[index]

	if ctx.String("start") != "" {
		rec.StartTime = ctx.String("start")
	}

	if ctx.String("end") != "" {
		rec.EndTime = ctx.String("end")
	}

	if ctx.String("description") != "" {
		rec.WorkDescription = ctx.String("description")
	}

	if ctx.String("project") != "" {
		rec.Project = ctx.String("project")
	}

	if ctx.String("category") != "" {
		rec.Category = ctx.String("category")
	}

	if ctx.String("start") != "" || ctx.String("end") != "" {
		rec.Duration, err = recomputeDuration(rec.Date, rec.StartTime, rec.EndTime)
		if err != nil {
			return err
		}
	}

	sync.Update(rec)
	sync.Wait()

	pterm.Success.Printfln("Updated record %s", recordID)

	return nil
}

// deleteAction deletes a record after confirmation and renumbers the
// sessions left on that day.
func deleteAction(ctx *cli.Context) error {
	recordID := ctx.Args().First()
	if recordID == "" {
		return errRecordIDRequired
	}

	cfg := config.Tracker(ctx)

	db, err := store.NewClient(cfg.PathToDB)
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	userName, err := resolveUserName(db, cfg)
	if err != nil {
		return err
	}

	sync, err := newSyncer(ctx, cfg, remote.Filter{UserName: userName})
	if err != nil {
		return err
	}

	err = confirmDelete(sync.Records(), recordID)
	if err != nil {
		return err
	}

	sync.Delete(recordID)
	sync.Wait()

	pterm.Success.Printfln("Deleted record %s", recordID)

	return nil
}

// statusAction prints the status of a session running in another
// terminal.
func statusAction(ctx *cli.Context) error {
	config.Tracker(ctx)

	return tracker.ReportStatus()
}

// setUserAction stores the name work records are filed under.
func setUserAction(ctx *cli.Context) error {
	name := ctx.Args().First()
	if name == "" {
		return errors.New("usage: worktrack set-user <name>")
	}

	cfg := config.Tracker(ctx)

	db, err := store.NewClient(cfg.PathToDB)
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	err = db.SetUserName(name)
	if err != nil {
		return err
	}

	err = config.SaveUserName(name)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("Work records will now be filed under %s", name)

	return nil
}

// editConfigAction opens the worktrack config file in the user's default
// text editor.
func editConfigAction(ctx *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cfg := config.Tracker(ctx)

	cmd := exec.Command(editor, cfg.PathToConfig)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/worktrack-app/worktrack/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if WORKTRACK_NO_COLOR is set
	if _, exists := os.LookupEnv(envWorktrackNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting worktrack")

	return nil
}
