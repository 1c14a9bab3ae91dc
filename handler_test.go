package feesplit_test

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/feesplit"
	"github.com/iov-one/feesplit/errors"
)

func TestReadOptions(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	opts := feesplit.Options{
		"good":   json.RawMessage(`{"name": "luna"}`),
		"broken": json.RawMessage(`{"name": `),
	}

	var p payload
	if err := opts.ReadOptions("good", &p); err != nil {
		t.Fatalf("cannot read options: %s", err)
	}
	if p.Name != "luna" {
		t.Fatalf("unexpected name: %q", p.Name)
	}

	var missing payload
	if err := opts.ReadOptions("missing", &missing); err != nil {
		t.Fatalf("missing key must be ignored: %s", err)
	}
	if missing.Name != "" {
		t.Fatalf("missing key must not modify the destination: %q", missing.Name)
	}

	if err := opts.ReadOptions("broken", &p); !errors.ErrInput.Is(err) {
		t.Fatalf("want input error, got %+v", err)
	}
}
