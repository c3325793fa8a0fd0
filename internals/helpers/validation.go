package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct menjalankan validator v10 pada sebuah DTO dan
// mengumpulkan SELURUH pelanggaran (satu pesan per field yang gagal).
// messages memetakan nama field → pesan untuk user.
func ValidateStruct(s any, messages map[string]string) []string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"Datos de entrada no válidos."}
	}

	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if msg, ok := messages[fe.Field()]; ok {
			out = append(out, msg)
		} else {
			out = append(out, "El campo "+fe.Field()+" no es válido.")
		}
	}
	return out
}
