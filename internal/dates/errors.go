package dates

import "errors"

// errUnparseable reports input the permissive parser could not interpret.
var errUnparseable = errors.New("unparseable date string")
