package backend

import "errors"

var errMissingConsultants = errors.New("response has no consultants field")
