package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iov-one/feesplit"
	"github.com/iov-one/feesplit/cmd/feesplitd/app"
	"github.com/iov-one/feesplit/commands"
	"github.com/iov-one/feesplit/commands/server"
	flag "github.com/spf13/pflag"
	"github.com/tendermint/tendermint/libs/log"
)

var (
	flagHome = "home"
	varHome  *string
)

func init() {
	defaultHome := filepath.Join(os.ExpandEnv("$HOME"), ".feesplit")
	varHome = flag.String(flagHome, defaultHome, "directory to store files under")
	// Everything after the command belongs to the command.
	flag.CommandLine.SetInterspersed(false)
	flag.CommandLine.Usage = helpMessage
}

func helpMessage() {
	fmt.Println("feesplitd")
	fmt.Println("        Weighted fund distribution node")
	fmt.Println("")
	fmt.Println("help    Print this message")
	fmt.Println("init    Write the app_state of the genesis file: <admin-address> [denom]")
	fmt.Println("start   Run the abci server (--bind, --debug, --metrics-addr)")
	fmt.Println("testgen Write example JSON and binary encodings: [output-dir]")
	fmt.Println("version Print the app version")
	fmt.Println(`
  --home string
        directory to store files under (default "$HOME/.feesplit")`)
}

func main() {
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout)).
		With("module", "feesplit")

	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Println("Missing command:")
		helpMessage()
		os.Exit(1)
	}

	cmd := flag.Arg(0)
	rest := flag.Args()[1:]

	var err error
	switch cmd {
	case "help":
		helpMessage()
	case "init":
		err = server.InitCmd(app.GenInitOptions, logger, *varHome, rest)
	case "start":
		err = server.StartCmd(app.GenerateApp, logger, *varHome, rest)
	case "testgen":
		err = commands.TestGenCmd(app.Examples(), rest)
	case "version":
		fmt.Println(feesplit.Version())
	default:
		err = fmt.Errorf("unknown command: %s", cmd)
	}

	if err != nil {
		fmt.Printf("Error: %+v\n\n", err)
		helpMessage()
		os.Exit(1)
	}
}
