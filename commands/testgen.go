package commands

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/iov-one/feesplit"
	"github.com/iov-one/feesplit/errors"
)

// Example is written out to <outdir>/<Filename>.json and
// <outdir>/<Filename>.bin. Filename must not contain a path or an
// extension.
type Example struct {
	Filename string
	Obj      interface{}
}

// TestGenCmd writes the JSON and the binary encoding of every example, so
// clients can test their own encoders against the node.
func TestGenCmd(examples []Example, args []string) error {
	outdir := "testdata"
	if len(args) > 0 {
		outdir = args[0]
	}
	if err := os.MkdirAll(outdir, 0755); err != nil {
		return errors.Wrap(err, "create output directory")
	}

	for _, ex := range examples {
		js, err := json.MarshalIndent(ex.Obj, "", "  ")
		if err != nil {
			return errors.Wrapf(err, "marshal %s", ex.Filename)
		}
		jsFile := filepath.Join(outdir, ex.Filename+".json")
		if err := ioutil.WriteFile(jsFile, js, 0644); err != nil {
			return errors.Wrapf(err, "write %s", jsFile)
		}

		bz, err := feesplit.MarshalBinary(ex.Obj)
		if err != nil {
			return errors.Wrapf(err, "marshal %s", ex.Filename)
		}
		binFile := filepath.Join(outdir, ex.Filename+".bin")
		if err := ioutil.WriteFile(binFile, bz, 0644); err != nil {
			return errors.Wrapf(err, "write %s", binFile)
		}
	}
	return nil
}
