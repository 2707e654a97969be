package intent

import "fmt"

// Validate checks the structural rules of an intent without any I/O.
// Returns every violated rule (empty if valid).
func Validate(in *Intent) []string {
	var errs []string

	switch in.Action {
	case ActionRemove, ActionDelete, ActionInfo, ActionAdd:
		if in.Title == "" {
			errs = append(errs, fmt.Sprintf("title is required for %s", in.Action))
		}
	}

	if len(in.Episodes) > 0 && in.Season == nil {
		errs = append(errs, "season is required when episodes are specified")
	}

	if in.Season != nil && *in.Season < 0 {
		errs = append(errs, fmt.Sprintf("season must be non-negative, got %d", *in.Season))
	}
	for _, ep := range in.Episodes {
		if ep < 0 {
			errs = append(errs, fmt.Sprintf("episode numbers must be non-negative, got %d", ep))
			break
		}
	}

	return errs
}

// Check runs Validate and wraps any violations in a ValidationError.
func Check(in *Intent) error {
	if errs := Validate(in); len(errs) > 0 {
		return &ValidationError{Violations: errs}
	}
	return nil
}
