package http

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate instancia compartida del validador de structs. Los requests se
// validan en la frontera HTTP antes de tocar el estado del inventario.
var validate = validator.New()

// validateRequest valida el struct y devuelve un mensaje legible con el primer
// campo inválido.
func validateRequest(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Errorf("campo %s no cumple la regla %s", verrs[0].Field(), verrs[0].Tag())
	}
	return err
}
