package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidParameter, "port count must be even, got %d", 3)

	if err.Code != ErrCodeInvalidParameter {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeInvalidParameter)
	}
	if err.Message != "port count must be even, got 3" {
		t.Errorf("Message = %q", err.Message)
	}
	want := "INVALID_PARAMETER: port count must be even, got 3"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(ErrCodeRender, cause, "write %s", "FatTree_4.pdf")

	if !errors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap() should return cause")
	}
	want := "RENDER_ERROR: write FatTree_4.pdf: disk full"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{
			name: "matching code",
			err:  New(ErrCodeCapacityFunction, "boom"),
			code: ErrCodeCapacityFunction,
			want: true,
		},
		{
			name: "different code",
			err:  New(ErrCodeCapacityFunction, "boom"),
			code: ErrCodeInvalidParameter,
			want: false,
		},
		{
			name: "wrapped in plain error",
			err:  fmt.Errorf("outer: %w", New(ErrCodeInvalidFormat, "bad format")),
			code: ErrCodeInvalidFormat,
			want: true,
		},
		{
			name: "plain error",
			err:  fmt.Errorf("plain"),
			code: ErrCodeInternal,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeRender, "x")); got != ErrCodeRender {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeRender)
	}
	if got := GetCode(fmt.Errorf("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidParameter, "spine blocks must be positive, got -1")
	if got := UserMessage(err); got != "spine blocks must be positive, got -1" {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(fmt.Errorf("plain")); got != "plain" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}

func TestValidationHelpers(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{"positive ok", RequirePositive("pods", 4), false},
		{"positive zero", RequirePositive("pods", 0), true},
		{"positive negative", RequirePositive("pods", -2), true},
		{"even ok", RequireEven("ports", 8), false},
		{"even odd", RequireEven("ports", 7), true},
		{"at least ok", RequireAtLeast("planes", 4, 1), false},
		{"at least below", RequireAtLeast("planes", 0, 1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if gotErr := tt.err != nil; gotErr != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", tt.err, tt.wantErr)
			}
			if tt.wantErr && !Is(tt.err, ErrCodeInvalidParameter) {
				t.Errorf("validation error should carry %s, got %v", ErrCodeInvalidParameter, tt.err)
			}
		})
	}
}
