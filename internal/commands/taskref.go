package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"tasklist/internal/service"
)

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ErrInvalidTaskRef indicates a task reference that does not name an id.
var ErrInvalidTaskRef = errors.New("invalid task reference")

// ParseTaskRef parses a task id from args.
//
// Accepted forms, all naming the same task:
//
//	3
//	#3
//	task-checkbox-3
//	delete-button-3
//
// Exactly one reference is allowed. A well-formed id that matches no task is
// not an error here; the task list ignores it.
func ParseTaskRef(args []string) (int, error) {
	fields := strings.Fields(strings.Join(args, " "))
	if len(fields) == 0 {
		return 0, ErrTaskRefRequired
	}
	if len(fields) > 1 {
		return 0, fmt.Errorf("%w: %s", ErrInvalidTaskRef, strings.Join(fields, " "))
	}

	ref := fields[0]
	digits := ref
	for _, prefix := range []string{"#", service.CheckboxPrefix, service.DeleteButtonPrefix} {
		if strings.HasPrefix(ref, prefix) {
			digits = strings.TrimPrefix(ref, prefix)
			break
		}
	}

	if !isAllDigits(digits) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidTaskRef, ref)
	}
	id, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidTaskRef, ref)
	}
	return id, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
