package errorkit

import "strings"

// Merge joins the non-nil errors into one, with one message per line.
// It returns nil without errors, and the error itself when there is only one.
func Merge(errs ...error) error {
	var cleanErrs []error
	for _, err := range errs {
		if err != nil {
			cleanErrs = append(cleanErrs, err)
		}
	}
	switch len(cleanErrs) {
	case 0:
		return nil
	case 1:
		return cleanErrs[0]
	default:
		return multiError(cleanErrs)
	}
}

type multiError []error

func (errs multiError) Error() string {
	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "\n")
}

func (errs multiError) Unwrap() []error { return errs }
