package feesplit_test

import (
	"testing"

	"github.com/iov-one/feesplit"
	"github.com/iov-one/feesplit/errors"
)

type record struct {
	Metadata *feesplit.Metadata
	Owner    feesplit.Address
	Tags     []string
	Count    int64
}

func TestBinaryCodec(t *testing.T) {
	want := &record{
		Metadata: &feesplit.Metadata{Schema: 1},
		Owner:    feesplit.Address("0123456789abcdefghij"),
		Tags:     []string{"a", "b"},
		Count:    7,
	}
	raw, err := feesplit.MarshalBinary(want)
	if err != nil {
		t.Fatalf("marshal: %s", err)
	}

	var got record
	if err := feesplit.UnmarshalBinary(raw, &got); err != nil {
		t.Fatalf("unmarshal: %s", err)
	}
	if got.Metadata == nil || got.Metadata.Schema != 1 || !got.Owner.Equals(want.Owner) ||
		len(got.Tags) != 2 || got.Tags[1] != "b" || got.Count != 7 {
		t.Fatalf("unexpected result: %+v", got)
	}

	// The encoding is deterministic.
	again, err := feesplit.MarshalBinary(&got)
	if err != nil {
		t.Fatalf("marshal again: %s", err)
	}
	if string(again) != string(raw) {
		t.Fatalf("encoding changed: %X != %X", again, raw)
	}
}

func TestBinaryCodecErrors(t *testing.T) {
	var nilRecord *record
	if _, err := feesplit.MarshalBinary(nilRecord); !errors.ErrModel.Is(err) {
		t.Fatalf("want model error for nil pointer, got %v", err)
	}
	if _, err := feesplit.MarshalBinary(nil); !errors.ErrModel.Is(err) {
		t.Fatalf("want model error for nil, got %v", err)
	}

	raw, err := feesplit.MarshalBinary(&record{Count: 1})
	if err != nil {
		t.Fatalf("marshal: %s", err)
	}
	var r record
	if err := feesplit.UnmarshalBinary(raw, r); !errors.ErrHuman.Is(err) {
		t.Fatalf("want coding error for a non pointer, got %v", err)
	}
	if err := feesplit.UnmarshalBinary(append(raw, 0xff), &r); !errors.ErrModel.Is(err) {
		t.Fatalf("want model error for trailing bytes, got %v", err)
	}
	if err := feesplit.UnmarshalBinary([]byte{0xff, 0xff}, &r); !errors.ErrModel.Is(err) {
		t.Fatalf("want model error for garbage, got %v", err)
	}
}
