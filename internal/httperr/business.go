package httperr

import "errors"

// BusinessError is an expected domain outcome (rule violation), not a fault.
// Callers branch on the code; anything else is treated as internal.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
