package validators

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Format turns binding failures into a field -> message map. Messages are
// looked up by "Field.tag"; anything unmapped falls back to a generic entry.
func Format(err error, msgs map[string]string) map[string]string {
	out := map[string]string{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["request"] = "Invalid request payload."
		return out
	}

	for _, fe := range verrs {
		key := fe.Field() + "." + fe.Tag()
		if msg, ok := msgs[key]; ok {
			out[fe.Field()] = msg
			continue
		}
		out[fe.Field()] = "The " + fe.Field() + " field is invalid."
	}

	return out
}
