package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ClipAndMerge/pkg/clipAndMerge"
	"ClipAndMerge/pkg/wechatwork"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
)

// os
var (
	ex, _  = os.Executable()
	exPath = filepath.Dir(ex)
)

// flag
var (
	input = flag.String(
		"i",
		".",
		"input files or directories, separated by comma",
	)
	outputDir = flag.String(
		"o",
		"clipandmerge_report",
		"output directory",
	)
	ignore = flag.String(
		"ignore",
		"",
		"sample name globs to ignore, separated by comma",
	)
	cfgPath = flag.String(
		"cfg",
		exPath,
		"directory holding etc/*.txt, used when not embedded",
	)
	prependDirs = flag.Int(
		"dirs",
		-1,
		"prepend this many parent directories to sample names, 0 for all, -1 for none",
	)
	png = flag.Bool(
		"png",
		false,
		"also export the bar graph as png",
	)
	webhook = flag.String(
		"webhook",
		"",
		"WeChat Work webhook key, notify when done",
	)
	debug = flag.Bool(
		"debug",
		false,
		"debug",
	)
)

func main() {
	flag.Parse()
	now := time.Now()

	if *debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	var (
		cfg     = clipAndMerge.LoadConfig(*cfgPath, clipAndMerge.EtcFS)
		locator = clipAndMerge.NewDirLocator(strings.Split(*input, ",")...)
		namer   = clipAndMerge.NewCleanNamer(cfg)
		sink    = simpleUtil.HandleError(clipAndMerge.NewFileSink(*outputDir, *png))
	)
	if *prependDirs >= 0 {
		namer.PrependDirs = true
		namer.PrependDirsDepth = *prependDirs
	}

	var report = clipAndMerge.NewReport(cfg, locator, namer, sink)
	if *ignore != "" {
		report.IgnoreSamples = strings.Split(*ignore, ",")
	}

	var err = report.Run()
	if errors.Is(err, clipAndMerge.ErrNoReports) {
		slog.Warn("Nothing to report", "input", *input)
		return
	}
	simpleUtil.CheckErr(err)

	var sender = wechatwork.NewNotificationSender(*webhook)
	if err = sender.SendMarkdown(report.SummaryMarkdown()); err != nil {
		slog.Error("notify", "err", err)
	}

	slog.Info("Done", "output", *outputDir, "time", time.Since(now))
}
