// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, aggregation, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/hoist/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "file not found",
			wantStr: "[NOT_FOUND] file not found",
		},
		{
			name:    "unknown_variable_error",
			code:    errors.ErrUnknownVariable,
			message: "no variable named port",
			wantStr: "[UNKNOWN_VARIABLE] no variable named port",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		format  string
		args    []interface{}
		wantMsg string
	}{
		{
			name:    "format_with_string",
			code:    errors.ErrInvalidInput,
			format:  "invalid value: %s",
			args:    []interface{}{"test"},
			wantMsg: "invalid value: test",
		},
		{
			name:    "format_with_multiple_args",
			code:    errors.ErrNoMapping,
			format:  "no rule matches %s in repo %s",
			args:    []interface{}{"docs/x.md", "webapp"},
			wantMsg: "no rule matches docs/x.md in repo webapp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.Newf(tt.code, tt.format, tt.args...)

			if err.Message != tt.wantMsg {
				t.Errorf("Newf() message = %q, want %q", err.Message, tt.wantMsg)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrInternal, "internal error")

		if err.Code != errors.ErrInternal {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrInternal)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[INTERNAL] internal error: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrInternal, "internal error")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})

	t.Run("wrapped_error_visible_to_errors_Is", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrHookFailure, "hook exited non-zero")
		if !stderrors.Is(err, baseErr) {
			t.Error("errors.Is() should see through the wrap")
		}
	})
}

func TestWrapf(t *testing.T) {
	baseErr := stderrors.New("exit status 1")

	err := errors.Wrapf(baseErr, errors.ErrHookFailure, "hook %s failed", "app_root")
	if err.Message != "hook app_root failed" {
		t.Errorf("Wrapf() message = %q, want %q", err.Message, "hook app_root failed")
	}

	if wrapped := errors.Wrapf(nil, errors.ErrHookFailure, "hook %s failed", "app_root"); wrapped != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrNoMapping, "no rule matches").
		WithDetail("path", "docs/readme.md").
		WithDetail("repo", "webapp")

	if err.Details["path"] != "docs/readme.md" {
		t.Errorf("WithDetail() path = %v, want %v", err.Details["path"], "docs/readme.md")
	}

	if err.Details["repo"] != "webapp" {
		t.Errorf("WithDetail() repo = %v, want %v", err.Details["repo"], "webapp")
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrUnknownVariable, "error 1")
	err2 := errors.New(errors.ErrUnknownVariable, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(err1, err2) {
			t.Error("errors.Is() should work with HoistError")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrNotFound, "not found"),
			code:     errors.ErrNotFound,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrNotFound, "not found"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrFileAccess, "denied"),
			code:     errors.ErrFileAccess,
			expected: true,
		},
		{
			name:     "plain_error",
			err:      stderrors.New("plain"),
			code:     errors.ErrNotFound,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errors.ErrorCode
	}{
		{
			name: "hoist_error",
			err:  errors.New(errors.ErrConfigParse, "bad json"),
			want: errors.ErrConfigParse,
		},
		{
			name: "plain_error",
			err:  stderrors.New("plain"),
			want: errors.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.want {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestList(t *testing.T) {
	t.Run("add_skips_nil", func(t *testing.T) {
		l := errors.NewList()
		l.Add(nil, stderrors.New("one"), nil)

		if l.Len() != 1 {
			t.Errorf("Len() = %d, want 1", l.Len())
		}
	})

	t.Run("err_or_nil_empty", func(t *testing.T) {
		l := errors.NewList()
		if err := l.ErrOrNil(); err != nil {
			t.Errorf("ErrOrNil() = %v, want nil", err)
		}
	})

	t.Run("err_or_nil_single_unwraps", func(t *testing.T) {
		only := errors.New(errors.ErrUnknownVariable, "no variable named port")
		l := errors.NewList(only)

		if err := l.ErrOrNil(); err != error(only) {
			t.Errorf("ErrOrNil() = %v, want the sole member", err)
		}
	})

	t.Run("err_or_nil_multiple_keeps_list", func(t *testing.T) {
		l := errors.NewList(
			errors.New(errors.ErrUnknownVariable, "no variable named port"),
			errors.New(errors.ErrUnknownVariable, "no variable named host"),
		)

		err := l.ErrOrNil()
		if err != error(l) {
			t.Errorf("ErrOrNil() = %v, want the list itself", err)
		}
	})

	t.Run("error_renders_each_member", func(t *testing.T) {
		l := errors.NewList(
			stderrors.New("first"),
			stderrors.New("second"),
		)

		want := "2 errors occurred:\n  * first\n  * second"
		if got := l.Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})

	t.Run("errors_is_sees_members", func(t *testing.T) {
		member := errors.New(errors.ErrUnknownHook, "no hook named app_root")
		l := errors.NewList(
			errors.New(errors.ErrUnknownVariable, "no variable named port"),
			member,
		)

		if !stderrors.Is(l, member) {
			t.Error("errors.Is() should find a member through Unwrap()")
		}

		if !errors.IsErrorCode(l, errors.ErrUnknownHook) {
			t.Error("IsErrorCode() should find a member's code through Unwrap()")
		}
	})

	t.Run("flatten_expands_nested_lists", func(t *testing.T) {
		inner := errors.NewList(
			stderrors.New("a"),
			stderrors.New("b"),
		)
		outer := errors.NewList(inner, stderrors.New("c"))

		flat := errors.Flatten(outer)
		if len(flat) != 3 {
			t.Fatalf("Flatten() returned %d errors, want 3", len(flat))
		}

		if flat[0].Error() != "a" || flat[1].Error() != "b" || flat[2].Error() != "c" {
			t.Errorf("Flatten() order = %v, want [a b c]", flat)
		}
	})

	t.Run("flatten_nil_is_empty", func(t *testing.T) {
		if flat := errors.Flatten(nil); flat != nil {
			t.Errorf("Flatten(nil) = %v, want nil", flat)
		}
	})
}
