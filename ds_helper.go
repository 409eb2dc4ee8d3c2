package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"ds_helper/cfg"
	"ds_helper/cli"
	"ds_helper/export"
	"ds_helper/fetch"
	"ds_helper/firm"
	"ds_helper/frame"
	"ds_helper/util/countdown"
	"ds_helper/util/logger"
	"ds_helper/util/network"
	"ds_helper/util/parse"
	"ds_helper/util/simplify"
	"ds_helper/util/slice"
	"ds_helper/util/tw"

	"github.com/adampresley/sigint"
	"github.com/cockroachdb/errors"
	goFlags "github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
	"github.com/utahta/go-openuri"
)

// previewRows represents amount of rows to print to console
const previewRows = 20

func main() {
	// Init logger
	log := logger.New(logrus.InfoLevel)

	// Parse command line arguments
	log.Debug("Parsing command line arguments")
	flags, err := cli.Parse()
	if flags.Version {
		fmt.Println("v1.0.0")
		os.Exit(0)
	}
	if cli.IsErrOfType(err, goFlags.ErrHelp) {
		// Help message will be prined by go-flags
		os.Exit(0)
	}
	if err != nil {
		log.Panic(err)
	}
	log.SetLevel(min(flags.LogLevel, logrus.TraceLevel))

	// Read program config
	cfg, isNewCfg, err := cfg.Init(log, flags.ProgramCfgPath)
	if err != nil {
		log.Panic(err)
	}
	if isNewCfg {
		log.Infof("New config is written to %v, please verify it and start this program again", flags.ProgramCfgPath)
		os.Exit(0)
	}

	if flags.NamesPath == "" && flags.TableURL == "" && !flags.SP500 {
		log.Warn("Nothing to do, specify names path, table URL or S&P 500 flag. See --help")
		return
	}

	// Stop waiting on Ctrl+C
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigint.ListenForSIGINT(func() {
		log.Warn("Interrupted")
		cancel()
	})

	normalizer, err := firm.New(cfg.Firm.ExtraSuffixes...)
	if err != nil {
		log.Panic(err)
	}
	normalizer = normalizer.WithAllMatches(cfg.Firm.AllMatches)

	tw := tw.New()
	exportRepo := export.NewRepo(log, cfg)

	// Strip names from the list
	if flags.NamesPath != "" {
		log.Info("Reading firm names")
		httpClient := network.NewHttpClient(cfg.Fetch.RespTimeout, cfg.Fetch.UserAgent)
		namesResp, err := openuri.Open(flags.NamesPath, openuri.WithHTTPClient(httpClient))
		if err != nil {
			log.Panic(err)
		}
		rawNames, err := parse.Lines(namesResp)
		namesResp.Close()
		if err != nil {
			log.Panic(err)
		}

		log.Infof("Stripping %v firm names", len(rawNames))
		names, err := frame.FromColumn("raw", rawNames).
			WithColumn("normalized", normalizer.StripNamesParallel(rawNames, cfg.Firm.Workers))
		if err != nil {
			log.Panic(err)
		}
		if cfg.Firm.Dedupe {
			before := names.Len()
			names.Rows = slice.RemoveDuplicatesBy(names.Rows, func(row []string) string {
				return simplify.Key(row[1])
			})
			log.Infof("Removed %v duplicated names", before-names.Len())
		}

		tw.RenderFrame(names, previewRows)
		if _, err := exportRepo.Write(names, "names_"+export.TimestampNow()); err != nil {
			log.Panic(err)
		}
	}

	// Fetch table
	if flags.TableURL != "" || flags.SP500 {
		if flags.Wait > 0 {
			log.Infof("Waiting %v seconds before fetching", flags.Wait)
			err := countdown.Sleep(ctx, os.Stderr, flags.Wait, cfg.Countdown.Step, time.Second)
			fmt.Fprintln(os.Stderr)
			if err != nil {
				log.Panic(err)
			}
		}

		fetchRepo := fetch.NewRepo(log, cfg)
		var table frame.Frame
		var tableName string
		if flags.SP500 {
			table, err = fetchRepo.FirmsSP500()
			tableName = "sp500"
		} else {
			table, err = fetchRepo.Table(flags.TableURL, flags.TableIndex)
			tableName = parse.FileName(parse.LastPathItem(strings.TrimRight(flags.TableURL, "/"), "/"))
		}
		if err != nil {
			log.Panic(err)
		}
		log.Infof("Fetched table with %v rows", table.Len())

		if flags.StripColumn != "" {
			rawNames, ok := table.Column(flags.StripColumn)
			if !ok {
				log.Panic(errors.Newf("Column %q not found in table columns %v", flags.StripColumn, table.Columns))
			}
			table, err = table.WithColumn(flags.StripColumn+" (stripped)",
				normalizer.StripNamesParallel(rawNames, cfg.Firm.Workers))
			if err != nil {
				log.Panic(err)
			}
		}
		if cfg.Firm.Dedupe {
			table = table.DropDuplicateRows()
		}

		tw.RenderFrame(table, previewRows)
		if _, err := exportRepo.Write(table, "table_"+tableName+"_"+export.TimestampNow()); err != nil {
			log.Panic(err)
		}
	}
}
