// Package main defines the entry point of the blob retriever coordinator.
package main

import (
	"fmt"
	"os"
	"runtime"
	runtimeDebug "runtime/debug"

	joonix "github.com/joonix/log"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	_ "go.uber.org/automaxprocs"

	"github.com/0glabs/0g-da-retriever/retriever/flags"
	"github.com/0glabs/0g-da-retriever/retriever/node"
	"github.com/0glabs/0g-da-retriever/shared/cmd"
	"github.com/0glabs/0g-da-retriever/shared/logutil"
	"github.com/0glabs/0g-da-retriever/shared/version"
)

var appFlags = []cli.Flag{
	flags.LogLevelFlag,
	flags.EthRPCEndpointFlag,
	flags.GRPCListenAddressFlag,
	flags.MaxOngoingRetrieveRequestFlag,
	flags.CertFlag,
	flags.KeyFlag,
	cmd.MonitoringPortFlag,
	cmd.DisableMonitoringFlag,
	cmd.LogFormat,
	cmd.LogFileName,
	cmd.ConfigFileFlag,
}

func init() {
	appFlags = cmd.WrapFlags(appFlags)
}

func main() {
	log := logrus.WithField("prefix", "main")
	app := cli.App{}
	app.Name = "retriever"
	app.Usage = "this is a coordinator reconstructing data blobs from quorum signers"
	app.Action = startNode
	app.Version = version.GetVersion()

	app.Flags = appFlags

	// Unknown subcommands pass through to the default action.
	app.CommandNotFound = func(ctx *cli.Context, command string) {
		log.Warnf("Unknown subcommand %s, ignoring", command)
	}

	app.Before = func(ctx *cli.Context) error {
		// Load any flags from file, if specified.
		if ctx.IsSet(cmd.ConfigFileFlag.Name) {
			if err := altsrc.InitInputSourceWithContext(appFlags, altsrc.NewYamlSourceFromFlagFunc(cmd.ConfigFileFlag.Name))(ctx); err != nil {
				return err
			}
		}

		format := ctx.String(cmd.LogFormat.Name)
		switch format {
		case "text":
			formatter := new(prefixed.TextFormatter)
			formatter.TimestampFormat = "2006-01-02 15:04:05"
			formatter.FullTimestamp = true
			// If persistent log files are written - we disable the log messages coloring because
			// the colors are ANSI codes and seen as gibberish in the log files.
			formatter.DisableColors = ctx.String(cmd.LogFileName.Name) != ""
			logrus.SetFormatter(formatter)
		case "fluentd":
			f := joonix.NewFormatter()
			if err := joonix.DisableTimestampFormat(f); err != nil {
				panic(err)
			}
			logrus.SetFormatter(f)
		case "json":
			logrus.SetFormatter(&logrus.JSONFormatter{})
		default:
			return fmt.Errorf("unknown log format %s", format)
		}

		logFileName := ctx.String(cmd.LogFileName.Name)
		if logFileName != "" {
			if err := logutil.ConfigurePersistentLogging(logFileName); err != nil {
				log.WithError(err).Error("Failed to configuring logging to disk.")
			}
		}

		runtime.GOMAXPROCS(runtime.NumCPU())
		return nil
	}

	defer func() {
		if x := recover(); x != nil {
			log.Errorf("Runtime panic: %v\n%v", x, string(runtimeDebug.Stack()))
			panic(x)
		}
	}()

	if err := app.Run(os.Args); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func startNode(ctx *cli.Context) error {
	level, err := logrus.ParseLevel(ctx.String(flags.LogLevelFlag.Name))
	if err != nil {
		return err
	}
	logrus.SetLevel(level)

	retriever, err := node.New(ctx)
	if err != nil {
		return err
	}
	retriever.Start()
	return nil
}
