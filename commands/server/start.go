package server

import (
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/iov-one/feesplit/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	flag "github.com/spf13/pflag"
	"github.com/tendermint/tendermint/abci/server"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	flagBind    = "bind"
	flagDebug   = "debug"
	flagMetrics = "metrics-addr"
)

// Options are passed to the AppGenerator.
type Options struct {
	Home   string
	Logger log.Logger
	Debug  bool
}

// AppGenerator lazily creates the application once flags are parsed.
type AppGenerator func(*Options) (abci.Application, error)

type startFlags struct {
	bind    string
	debug   bool
	metrics string
}

func parseStartFlags(args []string) (startFlags, error) {
	var f startFlags
	fs := flag.NewFlagSet("start", flag.ContinueOnError)
	fs.StringVar(&f.bind, flagBind, "tcp://localhost:26658", "address the ABCI server listens on")
	fs.BoolVar(&f.debug, flagDebug, false, "return call stacks on error")
	fs.StringVar(&f.metrics, flagMetrics, "", "address to serve prometheus metrics on, disabled if empty")
	if err := fs.Parse(args); err != nil {
		return f, errors.Wrap(errors.ErrInput, err.Error())
	}
	return f, nil
}

// StartCmd creates the application and serves it over an ABCI socket
// until the process is interrupted.
func StartCmd(gen AppGenerator, logger log.Logger, home string, args []string) error {
	flags, err := parseStartFlags(args)
	if err != nil {
		return err
	}

	app, err := gen(&Options{
		Home:   home,
		Logger: logger,
		Debug:  flags.debug,
	})
	if err != nil {
		return errors.Wrap(err, "create application")
	}

	if flags.metrics != "" {
		ln, err := net.Listen("tcp", flags.metrics)
		if err != nil {
			return errors.Wrap(err, "metrics listener")
		}
		go serveMetrics(ln, logger.With("module", "metrics"))
	}

	logger.Info("Starting ABCI app", "bind", flags.bind)
	svr, err := server.NewServer(flags.bind, "socket", app)
	if err != nil {
		return errors.Wrap(err, "create ABCI server")
	}
	svr.SetLogger(logger.With("module", "abci-server"))
	if err := svr.Start(); err != nil {
		return errors.Wrap(err, "start ABCI server")
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	logger.Info("Shutting down", "signal", (<-sig).String())
	if err := svr.Stop(); err != nil {
		return errors.Wrap(err, "stop ABCI server")
	}
	return nil
}

func serveMetrics(ln net.Listener, logger log.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	logger.Info("Serving metrics", "addr", ln.Addr().String())
	if err := http.Serve(ln, mux); err != nil {
		logger.Error("Metrics server stopped", "err", err)
	}
}
