package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorIs(t *testing.T) {
	cases := map[string]struct {
		a      *Error
		b      error
		wantIs bool
	}{
		"instance of the same error": {
			a:      ErrNotFound,
			b:      ErrNotFound,
			wantIs: true,
		},
		"two different coded errors": {
			a:      ErrNotFound,
			b:      ErrInput,
			wantIs: false,
		},
		"successful comparison to a wrapped error": {
			a:      ErrNotFound,
			b:      Wrap(ErrNotFound, "gone"),
			wantIs: true,
		},
		"unsuccessful comparison to a wrapped error": {
			a:      ErrNotFound,
			b:      Wrap(ErrInput, "bad"),
			wantIs: false,
		},
		"deeply wrapped error": {
			a:      ErrUnauthorized,
			b:      Wrap(Wrap(Wrap(ErrUnauthorized, "1"), "2"), "3"),
			wantIs: true,
		},
		"not equal to stdlib error": {
			a:      ErrHuman,
			b:      fmt.Errorf("stdlib error"),
			wantIs: false,
		},
		"nil is nil": {
			a:      nil,
			b:      nil,
			wantIs: true,
		},
		"nil is not not-nil": {
			a:      nil,
			b:      ErrHuman,
			wantIs: false,
		},
		"multi error contains": {
			a:      ErrAmount,
			b:      Append(ErrInput, Wrap(ErrAmount, "x")),
			wantIs: true,
		},
		"field error cause": {
			a:      ErrEmpty,
			b:      Field("Name", ErrEmpty, "required"),
			wantIs: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.a.Is(tc.b); got != tc.wantIs {
				t.Fatalf("unexpected result - %t", got)
			}
		})
	}
}

func TestRegisterDuplicatedCodePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("duplicated code registration must panic")
		}
	}()
	Register(ErrNotFound.code, "duplicate")
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "test"); err != nil {
		t.Fatalf("want nil, got %+v", err)
	}
}

func TestWrappedErrorMessage(t *testing.T) {
	err := Wrapf(ErrNotFound, "user %d", 42)
	if got, want := err.Error(), "user 42: not found"; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
	// Stack trace is attached at the most inner wrap.
	if !strings.Contains(fmt.Sprintf("%+v", err), "errors_test.go") {
		t.Fatalf("stack trace expected: %+v", err)
	}
}

func TestRecover(t *testing.T) {
	run := func() (err error) {
		defer Recover(&err)
		panic("boom")
	}
	if err := run(); !ErrPanic.Is(err) {
		t.Fatalf("want panic error, got %+v", err)
	}
}

func TestABCIInfo(t *testing.T) {
	cases := map[string]struct {
		err      error
		debug    bool
		wantCode uint32
		wantLog  string
	}{
		"no error": {
			err:      nil,
			wantCode: SuccessABCICode,
			wantLog:  "",
		},
		"registered error": {
			err:      Wrap(ErrNotFound, "config"),
			wantCode: ErrNotFound.code,
			wantLog:  "config: not found",
		},
		"stdlib error is redacted": {
			err:      stderrors.New("secret"),
			wantCode: internalABCICode,
			wantLog:  internalABCILog,
		},
		"multi error uses the first code": {
			err:      Append(ErrAmount, ErrInput),
			wantCode: ErrAmount.code,
			wantLog:  "2 errors occurred:\n\t* invalid amount\n\t* invalid input\n",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			code, log := ABCIInfo(tc.err, tc.debug)
			if code != tc.wantCode {
				t.Errorf("want %d code, got %d", tc.wantCode, code)
			}
			if log != tc.wantLog {
				t.Errorf("want %q log, got %q", tc.wantLog, log)
			}
		})
	}
}

func TestABCIError(t *testing.T) {
	if err := ABCIError(ErrUnauthorized.code, "not admin"); !ErrUnauthorized.Is(err) {
		t.Fatalf("registered code must map to the root error: %s", err)
	}
	if err := ABCIError(999999, "unknown"); ErrUnauthorized.Is(err) {
		t.Fatal("unknown code must not match")
	}
}

func TestRedact(t *testing.T) {
	if err := Redact(Wrap(ErrPanic, "crash"), false); ErrPanic.Is(err) {
		t.Fatal("panic must be redacted")
	}
	if err := Redact(Wrap(ErrPanic, "crash"), true); !ErrPanic.Is(err) {
		t.Fatal("debug mode must not redact")
	}
	if err := Redact(ErrInput, false); !ErrInput.Is(err) {
		t.Fatal("registered errors must not be redacted")
	}
}

func TestFieldErrors(t *testing.T) {
	err := Append(
		Field("Admin", ErrEmpty, "required"),
		Field("Weights.1", ErrAmount, "too big"),
		ErrInput,
	)
	if errs := FieldErrors(err, "Admin"); len(errs) != 1 || !ErrEmpty.Is(errs[0]) {
		t.Fatalf("unexpected admin errors: %v", errs)
	}
	if errs := FieldErrors(err, "Weights.1"); len(errs) != 1 || !ErrAmount.Is(errs[0]) {
		t.Fatalf("unexpected weight errors: %v", errs)
	}
	if errs := FieldErrors(err, "BurnAddress"); len(errs) != 0 {
		t.Fatalf("unexpected burn address errors: %v", errs)
	}
}
