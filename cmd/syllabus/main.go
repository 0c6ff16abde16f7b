package main

import (
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/akeil/syllabus"
	"github.com/akeil/syllabus/internal/logging"
)

const (
	checkmark = "✓"
	crossmark = "✗"
	ellipsis  = "…"
)

func main() {
	syllabus.SetLogLevel("warning")
	defer logging.Sync()

	app := kingpin.New("syllabus", "Course syllabus builder")
	app.HelpFlag.Short('h')

	var (
		configPath = app.Flag("config", "Path to the configuration file").String()
		logLevel   = app.Flag("log-level", "Log level (debug, info, warning, error)").String()
		layoutPath = app.Flag("layout", "Form layout (YAML) to use instead of the built-in one").String()
	)

	newCmd := app.Command("new", "Create a new syllabus draft")
	var (
		newOut    = newCmd.Flag("output", "Draft file to create").Short('o').String()
		newSample = newCmd.Flag("sample", "Fill in sample data").Bool()
		newForce  = newCmd.Flag("force", "Overwrite an existing file").Bool()
	)

	status := app.Command("status", "Show which sections are complete").Default()
	var (
		statusFile  = status.Arg("file", "Draft file").Required().String()
		statusWatch = status.Flag("watch", "Show the status again whenever the file changes").Short('w').Bool()
	)

	export := app.Command("export", "Create documents from a draft")
	var (
		exportFile    = export.Arg("file", "Draft file").Required().String()
		exportFormats = export.Flag("format", "Output format (docx, pdf, html, md), can be repeated").Short('f').Strings()
		exportOut     = export.Flag("output", "Output directory").Short('o').String()
		exportVerify  = export.Flag("verify", "Validate generated PDF documents").Bool()
	)

	save := app.Command("save", "Save a dated copy of a draft")
	var (
		saveFile = save.Arg("file", "Draft file").Required().String()
		saveOut  = save.Flag("output", "Target directory, defaults to the draft directory").Short('o').String()
	)

	outline := app.Command("outline", "Edit the course outline")
	outlineShow := outline.Command("show", "Show the course outline").Default()
	var showFile = outlineShow.Arg("file", "Draft file").Required().String()
	outlineAddModule := outline.Command("add-module", "Append a module")
	var (
		addModuleFile  = outlineAddModule.Arg("file", "Draft file").Required().String()
		addModuleTitle = outlineAddModule.Flag("title", "Module title").Short('t').Required().String()
		addModuleDesc  = outlineAddModule.Flag("description", "Module description").Short('d').String()
	)
	outlineSetModule := outline.Command("set-module", "Change title or description of a module")
	var (
		setModuleFile   = outlineSetModule.Arg("file", "Draft file").Required().String()
		setModuleModule = outlineSetModule.Arg("module", "Module number").Required().Int()
		setModuleTitle  = outlineSetModule.Flag("title", "Module title").Short('t').String()
		setModuleDesc   = outlineSetModule.Flag("description", "Module description").Short('d').String()
	)
	outlineAddDay := outline.Command("add-day", "Append a class day to a module")
	var (
		addDayFile    = outlineAddDay.Arg("file", "Draft file").Required().String()
		addDayModule  = outlineAddDay.Arg("module", "Module number").Required().Int()
		addDayTitle   = outlineAddDay.Flag("title", "Class day title").Short('t').Required().String()
		addDayContent = outlineAddDay.Flag("content", "Readings, assignments, and activities").Short('c').Required().String()
	)
	outlineSetDay := outline.Command("set-day", "Change title or content of a class day")
	var (
		setDayFile    = outlineSetDay.Arg("file", "Draft file").Required().String()
		setDayModule  = outlineSetDay.Arg("module", "Module number").Required().Int()
		setDayDay     = outlineSetDay.Arg("day", "Class day number").Required().Int()
		setDayTitle   = outlineSetDay.Flag("title", "Class day title").Short('t').String()
		setDayContent = outlineSetDay.Flag("content", "Readings, assignments, and activities").Short('c').String()
	)
	outlineRmModule := outline.Command("rm-module", "Remove a module")
	var (
		rmModuleFile   = outlineRmModule.Arg("file", "Draft file").Required().String()
		rmModuleModule = outlineRmModule.Arg("module", "Module number").Required().Int()
	)
	outlineRmDay := outline.Command("rm-day", "Remove a class day")
	var (
		rmDayFile   = outlineRmDay.Arg("file", "Draft file").Required().String()
		rmDayModule = outlineRmDay.Arg("module", "Module number").Required().Int()
		rmDayDay    = outlineRmDay.Arg("day", "Class day number").Required().Int()
	)

	fill := app.Command("fill", "Fill in incomplete sections interactively")
	var fillFile = fill.Arg("file", "Draft file").Required().String()

	preview := app.Command("preview", "Show the syllabus in the terminal")
	var previewFile = preview.Arg("file", "Draft file").Required().String()

	drafts := app.Command("drafts", "Manage saved drafts")
	draftsLs := drafts.Command("ls", "List saved drafts").Default()
	draftsRm := drafts.Command("rm", "Delete a saved draft")
	var draftsRmName = draftsRm.Arg("name", "Draft name").Required().String()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	s, err := loadSettings(*configPath)
	if err != nil {
		fail(err)
	}
	if *logLevel != "" {
		s.LogLevel = *logLevel
	}
	if *layoutPath != "" {
		s.Layout = *layoutPath
	}
	syllabus.SetLogLevel(s.LogLevel)

	reg, err := loadRegistry(s)
	if err != nil {
		fail(err)
	}

	switch command {
	case newCmd.FullCommand():
		err = doNew(s, reg, *newOut, *newSample, *newForce)
	case status.FullCommand():
		err = doStatus(reg, *statusFile, *statusWatch)
	case export.FullCommand():
		err = doExport(s, reg, *exportFile, *exportFormats, *exportOut, *exportVerify)
	case save.FullCommand():
		err = doSave(s, reg, *saveFile, *saveOut)
	case outlineShow.FullCommand():
		err = doOutlineShow(reg, *showFile)
	case outlineAddModule.FullCommand():
		err = doAddModule(reg, *addModuleFile, *addModuleTitle, *addModuleDesc)
	case outlineSetModule.FullCommand():
		err = doSetModule(reg, *setModuleFile, *setModuleModule, *setModuleTitle, *setModuleDesc)
	case outlineAddDay.FullCommand():
		err = doAddDay(reg, *addDayFile, *addDayModule, *addDayTitle, *addDayContent)
	case outlineSetDay.FullCommand():
		err = doSetDay(reg, *setDayFile, *setDayModule, *setDayDay, *setDayTitle, *setDayContent)
	case outlineRmModule.FullCommand():
		err = doRmModule(reg, *rmModuleFile, *rmModuleModule)
	case outlineRmDay.FullCommand():
		err = doRmDay(reg, *rmDayFile, *rmDayModule, *rmDayDay)
	case fill.FullCommand():
		err = doFill(reg, *fillFile)
	case preview.FullCommand():
		err = doPreview(s, reg, *previewFile)
	case draftsLs.FullCommand():
		err = doDraftsLs(s, reg)
	case draftsRm.FullCommand():
		err = doDraftsRm(s, reg, *draftsRmName)
	default:
		err = fmt.Errorf("unknown command: %q", command)
	}

	if err != nil {
		fail(err)
	}
	os.Exit(0)
}

func fail(err error) {
	fmt.Printf("Error: %v\n", err)
	logging.Sync()
	os.Exit(1)
}
