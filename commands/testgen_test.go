package commands

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/iov-one/feesplit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type denomExample struct {
	Denom string `json:"denom"`
}

type weightsExample struct {
	Weights []uint32 `json:"weights"`
}

func TestTestGenCmd(t *testing.T) {
	dir, err := ioutil.TempDir("", "testgen")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	examples := []Example{
		{Filename: "msg_distribute", Obj: &denomExample{Denom: "IOV"}},
		{Filename: "weights", Obj: &weightsExample{Weights: []uint32{4000, 3000}}},
	}
	require.NoError(t, TestGenCmd(examples, []string{dir}))

	raw, err := ioutil.ReadFile(filepath.Join(dir, "msg_distribute.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"denom": "IOV"}`, string(raw))

	raw, err = ioutil.ReadFile(filepath.Join(dir, "weights.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"weights": [4000, 3000]}`, string(raw))

	bz, err := ioutil.ReadFile(filepath.Join(dir, "msg_distribute.bin"))
	require.NoError(t, err)
	var denom denomExample
	require.NoError(t, feesplit.UnmarshalBinary(bz, &denom))
	assert.Equal(t, "IOV", denom.Denom)

	bz, err = ioutil.ReadFile(filepath.Join(dir, "weights.bin"))
	require.NoError(t, err)
	var weights weightsExample
	require.NoError(t, feesplit.UnmarshalBinary(bz, &weights))
	assert.Equal(t, []uint32{4000, 3000}, weights.Weights)
}

func TestTestGenCmdNilExample(t *testing.T) {
	dir, err := ioutil.TempDir("", "testgen")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	err = TestGenCmd([]Example{{Filename: "nothing", Obj: nil}}, []string{dir})
	assert.Error(t, err)
}
