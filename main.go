package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/mattn/go-isatty"
	"github.com/xo/terminfo"

	"git.sr.ht/~rjarry/dirtyview/app"
	"git.sr.ht/~rjarry/dirtyview/config"
	"git.sr.ht/~rjarry/dirtyview/lib/ui"
	"git.sr.ht/~rjarry/dirtyview/lib/watchers"
	"git.sr.ht/~rjarry/dirtyview/lib/log"
)

// set at build time
var Version string

func buildInfo() string {
	return fmt.Sprintf("%s (%s %s %s)", Version,
		runtime.Version(), runtime.GOARCH, runtime.GOOS)
}

func usage(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	fmt.Fprintln(os.Stderr, "usage: dirtyview [-v] [-c <config>] [-d <log-level>]")
	os.Exit(1)
}

func setWindowTitle() {
	log.Debugf("Parsing terminfo")
	ti, err := terminfo.LoadFromEnv()
	if err != nil {
		log.Warnf("Cannot get terminfo: %v", err)
		return
	}

	if !ti.Has(terminfo.HasStatusLine) {
		log.Infof("Terminal does not have status line support")
		return
	}

	log.Infof("Setting terminal title")
	buf := new(bytes.Buffer)
	ti.Fprintf(buf, terminfo.ToStatusLine)
	fmt.Fprint(buf, "dirtyview")
	ti.Fprintf(buf, terminfo.FromStatusLine)
	os.Stderr.Write(buf.Bytes()) //nolint:errcheck // cosmetic
}

func main() {
	defer log.PanicHandler()
	opts, optind, err := getopt.Getopts(os.Args, "vc:d:")
	if err != nil {
		usage("error: " + err.Error())
		return
	}
	log.BuildInfo = buildInfo()
	var confPath *string
	var level string
	for _, opt := range opts {
		switch opt.Option {
		case 'v':
			fmt.Println("dirtyview " + log.BuildInfo)
			return
		case 'c':
			value := opt.Value
			confPath = &value
		case 'd':
			level = opt.Value
		}
	}
	if len(os.Args[optind:]) > 0 {
		usage("error: invalid arguments")
		return
	}

	conf, err := config.LoadConfigFromFile(confPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1) //nolint:gocritic // PanicHandler does not need to run as it's not a panic
	}
	if err := conf.General.InitLogging(level); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1) //nolint:gocritic // PanicHandler does not need to run as it's not a panic
	}
	log.Infof("Starting up version %s", log.BuildInfo)

	view := app.New(&conf.Ui)
	u, err := ui.Initialize(view, nil)
	if err != nil {
		panic(err)
	}
	defer u.Close()
	log.UICleanup = func() {
		u.Close()
	}
	if conf.Ui.MouseEnabled {
		u.EnableMouse()
	}

	fw, err := watchers.WatchFile(conf.Filename, func(path string) {
		ui.QueueFunc(func() {
			uiConf, err := config.ReloadUi(path)
			if err != nil {
				log.Errorf("reload %s: %v", path, err)
				return
			}
			view.Reload(uiConf)
		})
	})
	if err != nil {
		log.Warnf("cannot watch %s: %v", conf.Filename, err)
	} else {
		defer fw.Close()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	view.Start(ctx)

	if isatty.IsTerminal(os.Stderr.Fd()) {
		setWindowTitle()
	}

	for !u.ShouldExit() {
		select {
		case event := <-u.Events:
			u.HandleEvent(event)
		case callback := <-ui.Callbacks:
			callback()
		case <-ui.Redraw:
			// ~60 FPS
			time.Sleep(16 * time.Millisecond)
			u.Render()
		case <-u.Quit:
		}
	}
	log.Infof("Exiting")
}
