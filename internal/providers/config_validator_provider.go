package providers

import (
	"github.com/gookit/validate"

	"github.com/Kopaev/Turksat-42e-RUS/internal/structures"
)

// CnfValidator runs the validate tags declared on the config structs.
type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return v.Errors.OneError()
	}
	return nil
}
