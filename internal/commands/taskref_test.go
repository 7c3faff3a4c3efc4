package commands

import (
	"errors"
	"testing"
)

func TestParseTaskRef_Forms(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"plain id", []string{"5"}, 5},
		{"hash id", []string{"#12"}, 12},
		{"checkbox control", []string{"task-checkbox-3"}, 3},
		{"delete control", []string{"delete-button-40"}, 40},
		{"surrounding whitespace", []string{"  7 "}, 7},
		{"zero", []string{"0"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseTaskRef(tt.args)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != tt.want {
				t.Errorf("expected id %d, got %d", tt.want, id)
			}
		})
	}
}

func TestParseTaskRef_NoArgs_Error(t *testing.T) {
	for _, args := range [][]string{nil, {}, {""}, {"   "}} {
		_, err := ParseTaskRef(args)
		if !errors.Is(err, ErrTaskRefRequired) {
			t.Errorf("args %q: expected ErrTaskRefRequired, got %v", args, err)
		}
	}
}

func TestParseTaskRef_Invalid_Error(t *testing.T) {
	tests := []struct {
		args    []string
		wantMsg string
	}{
		{[]string{"abc"}, "invalid task reference: abc"},
		{[]string{"-1"}, "invalid task reference: -1"},
		{[]string{"#"}, "invalid task reference: #"},
		{[]string{"task-checkbox-"}, "invalid task reference: task-checkbox-"},
		{[]string{"task-checkbox-x"}, "invalid task reference: task-checkbox-x"},
		{[]string{"1", "2"}, "invalid task reference: 1 2"},
		{[]string{"3 4"}, "invalid task reference: 3 4"},
		{[]string{"١٢"}, "invalid task reference: ١٢"},
		{[]string{"99999999999999999999999"}, "invalid task reference: 99999999999999999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.wantMsg, func(t *testing.T) {
			_, err := ParseTaskRef(tt.args)
			if !errors.Is(err, ErrInvalidTaskRef) {
				t.Fatalf("expected ErrInvalidTaskRef, got %v", err)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("expected %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}
