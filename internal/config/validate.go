package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validate checks the loaded configuration against the struct-level
// validation tags. Load calls it automatically.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		f := errs[0]
		return fmt.Errorf("field %s failed on %q (got %v)", f.Namespace(), f.Tag(), f.Value())
	}
	return err
}
