package commands

import "sfadsms/internal/application"

type nameCheck struct {
	field string
	value string
}

func validateAll(checks ...nameCheck) error {
	for _, check := range checks {
		if err := application.ValidateName(check.field, check.value); err != nil {
			return err
		}
	}
	return nil
}

func requireDifferent(field, oldValue, newValue string) error {
	if oldValue == newValue {
		return &application.ValidationError{
			Field:   field,
			Message: "new name must differ from the current name",
		}
	}
	return nil
}
