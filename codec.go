package feesplit

import (
	"reflect"

	"github.com/iov-one/feesplit/errors"
	amino "github.com/tendermint/go-amino"
)

// cdc encodes everything that is persisted or signed. No type is
// registered, so the encoding carries no type prefix and must be decoded
// into a value of the same type.
var cdc = amino.NewCodec()

// MarshalBinary returns the binary encoding of a model, message or
// transaction.
func MarshalBinary(o interface{}) ([]byte, error) {
	if v := reflect.ValueOf(o); !v.IsValid() || (v.Kind() == reflect.Ptr && v.IsNil()) {
		return nil, errors.Wrap(errors.ErrModel, "cannot marshal nil")
	}
	raw, err := cdc.MarshalBinaryBare(o)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrModel, "marshal %T: %s", o, err)
	}
	return raw, nil
}

// UnmarshalBinary decodes raw into dst, which must be a non nil pointer.
// All bytes must be consumed.
func UnmarshalBinary(raw []byte, dst interface{}) error {
	if v := reflect.ValueOf(dst); v.Kind() != reflect.Ptr || v.IsNil() {
		return errors.Wrapf(errors.ErrHuman, "destination must be a non nil pointer, got %T", dst)
	}
	if err := cdc.UnmarshalBinaryBare(raw, dst); err != nil {
		return errors.Wrapf(errors.ErrModel, "unmarshal %T: %s", dst, err)
	}
	return nil
}
