package utils

import (
	"errors"
	"reflect"
	"testing"
)

type validatedSample struct {
	Name string `validate:"required"`
	Port int    `validate:"min=1,max=65535"`
	Addr string `validate:"omitempty,hostname_port"`
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input validatedSample
		want  []string
	}{
		{
			name:  "valid",
			input: validatedSample{Name: "reviews", Port: 27017},
			want:  nil,
		},
		{
			name:  "missing name and port out of range",
			input: validatedSample{Port: 70000},
			want: []string{
				"validatedSample.Name field is required",
				"validatedSample.Port must be less than or equal to 65535",
			},
		},
		{
			name:  "bad address",
			input: validatedSample{Name: "reviews", Port: 1, Addr: "redis"},
			want:  []string{"validatedSample.Addr must be in host:port form"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := GetValidator().Struct(tt.input)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("Struct() error = %v, want nil", err)
				}
				return
			}
			if got := ParseErrors(err); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseErrors() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseErrors_NonValidationError(t *testing.T) {
	got := ParseErrors(errors.New("boom"))
	want := []string{"boom"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseErrors() = %v, want %v", got, want)
	}
}
