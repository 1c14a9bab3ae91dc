package server

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/iov-one/feesplit/errors"
	flag "github.com/spf13/pflag"
	cmn "github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	appStateKey = "app_state"
	chainIDKey  = "chain_id"

	flagGenesis = "genesis"
)

// GenOptions builds the application specific app_state of the genesis
// file from the remaining command line arguments.
type GenOptions func(args []string) (json.RawMessage, error)

// genesisDoc keeps every tendermint field as raw JSON, so only the
// app_state is replaced.
type genesisDoc map[string]json.RawMessage

// InitCmd writes the app_state produced by gen into the genesis file.
// An existing tendermint genesis keeps all other fields. A missing file
// is created with a random chain id.
func InitCmd(gen GenOptions, logger log.Logger, home string, args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	genFile := fs.String(flagGenesis, filepath.Join(home, "config", "genesis.json"), "genesis file to update")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	options, err := gen(fs.Args())
	if err != nil {
		return errors.Wrap(err, "generate app state")
	}
	if err := addGenesisOptions(*genFile, options); err != nil {
		return err
	}
	logger.Info("Updated genesis file", "path", *genFile)
	return nil
}

func addGenesisOptions(filename string, options json.RawMessage) error {
	doc := make(genesisDoc)
	bz, err := ioutil.ReadFile(filename)
	switch {
	case os.IsNotExist(err):
		chainID, err := json.Marshal(fmt.Sprintf("feesplit-%s", cmn.RandStr(6)))
		if err != nil {
			return errors.Wrap(err, "chain id")
		}
		doc[chainIDKey] = chainID
		if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
			return errors.Wrap(err, "create genesis directory")
		}
	case err != nil:
		return errors.Wrap(err, "read genesis")
	default:
		if err := json.Unmarshal(bz, &doc); err != nil {
			return errors.Wrap(errors.ErrInput, err.Error())
		}
	}

	doc[appStateKey] = options
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal genesis")
	}
	if err := ioutil.WriteFile(filename, out, 0600); err != nil {
		return errors.Wrap(err, "write genesis")
	}
	return nil
}
