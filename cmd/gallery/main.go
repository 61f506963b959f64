package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/akeil/gallery"
	"github.com/akeil/gallery/internal/app"
	"github.com/akeil/gallery/internal/config"
	"github.com/akeil/gallery/pkg/events"
	"github.com/akeil/gallery/pkg/palette"
)

const (
	checkmark = "✓"
	crossmark = "✗"
	ellipsis  = "…"
)

var (
	okMark   = color.New(color.FgGreen).Sprint(checkmark)
	failMark = color.New(color.FgRed).Sprint(crossmark)
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cli := kingpin.New("gallery", "Keep track of your drawings")
	cli.HelpFlag.Short('h')

	var (
		cfgPath    = cli.Flag("config", "Config file (TOML, YAML or JSON)").Short('c').String()
		file       = cli.Flag("file", "Gallery file").Short('f').String()
		logLevel   = cli.Flag("log-level", "Log level (debug, info, warning, error)").String()
		showEvents = cli.Flag("events", "Print the event log on exit").Short('e').Bool()
	)

	ls := cli.Command("ls", "List drawings").Default()
	var (
		match      = ls.Flag("match", "Title must contain this").Short('m').String()
		complete   = ls.Flag("complete", "Show only complete drawings").Bool()
		inProgress = ls.Flag("in-progress", "Show only drawings in progress").Bool()
	)

	initCmd := cli.Command("init", "Start a new, empty gallery")
	var (
		initTitle  = initCmd.Arg("title", "Gallery title").String()
		initWidth  = initCmd.Flag("width", "Canvas width").Default("1024").Int()
		initHeight = initCmd.Flag("height", "Canvas height").Default("1024").Int()
		initForce  = initCmd.Flag("force", "Replace an existing gallery").Bool()
	)

	add := cli.Command("add", "Add a drawing")
	var (
		addTitle  = add.Arg("title", "Drawing title").Required().String()
		addWidth  = add.Flag("width", "Width in pixels").Short('W').Required().Int()
		addHeight = add.Flag("height", "Height in pixels").Short('H').Required().Int()
		addColor  = add.Flag("color", "Color as #rrggbb, r,g,b or name").Default("black").String()
	)

	edit := cli.Command("edit", "Change a drawing, the selected one by default")
	var (
		editTarget = edit.Arg("drawing", "Title of the drawing to change").String()
		editTitle  = edit.Flag("title", "New title").String()
		editWidth  = edit.Flag("width", "New width").Short('W').String()
		editHeight = edit.Flag("height", "New height").Short('H').String()
		editColor  = edit.Flag("color", "New color").String()
	)

	rm := cli.Command("rm", "Delete a drawing, the selected one by default")
	rmTitle := rm.Arg("title", "Drawing title").String()

	completeCmd := cli.Command("complete", "Mark a drawing as complete")
	completeTitle := completeCmd.Arg("title", "Drawing title").String()

	sel := cli.Command("select", "Select a drawing")
	var (
		selTitle = sel.Arg("title", "Drawing title").String()
		selNone  = sel.Flag("none", "Clear the selection").Bool()
	)

	show := cli.Command("show", "Show details for a drawing, the selected one by default")
	showTitle := show.Arg("title", "Drawing title").String()

	export := cli.Command("export", "Export previews and a PDF catalog")
	outDir := export.Flag("output", "Output directory").Short('o').String()

	colors := cli.Command("colors", "List named colors")

	cfgCmd := cli.Command("config", "Show the effective configuration")

	command, err := cli.Parse(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	s, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if *file != "" {
		s.File = *file
	}
	if *logLevel != "" {
		s.LogLevel = *logLevel
	}
	gallery.SetLogLevel(s.LogLevel)

	log := events.New()

	switch command {
	case ls.FullCommand():
		err = doLs(s, log, *match, *complete, *inProgress)
	case initCmd.FullCommand():
		err = doInit(s, log, *initTitle, *initWidth, *initHeight, *initForce)
	case add.FullCommand():
		err = doAdd(s, log, *addTitle, *addWidth, *addHeight, *addColor)
	case edit.FullCommand():
		err = doEdit(s, log, *editTarget, *editTitle, *editWidth, *editHeight, *editColor)
	case rm.FullCommand():
		err = doRm(s, log, *rmTitle)
	case completeCmd.FullCommand():
		err = doComplete(s, log, *completeTitle)
	case sel.FullCommand():
		err = doSelect(s, log, *selTitle, *selNone)
	case show.FullCommand():
		err = doShow(s, log, *showTitle)
	case export.FullCommand():
		err = doExport(s, log, *outDir)
	case colors.FullCommand():
		err = doColors(s)
	case cfgCmd.FullCommand():
		err = doConfig(s)
	default:
		err = fmt.Errorf("unknown command: %q", command)
	}

	if *showEvents {
		printEvents(log)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// common ---------------------------------------------------------------------

// openState loads the gallery file, or starts with an empty gallery if there
// is no file yet.
func openState(s *config.Settings, log events.Logger) (*app.State, error) {
	st := app.NewState(s, log)
	_, err := st.OpenOrCreate()
	if err != nil {
		return nil, err
	}
	return st, nil
}

func loadPalette(s *config.Settings) (*palette.Palette, error) {
	return palette.Load(s.Palette)
}

func printEvents(log *events.Log) {
	if log.Len() == 0 {
		return
	}
	fmt.Println()
	fmt.Println("Events")
	fmt.Println("------")
	log.Each(func(e events.Event) {
		fmt.Println(e)
	})
}
