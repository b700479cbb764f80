package http

import perr "internhasha/internal/platform/errors"

var errNoSession = perr.New(perr.ErrorCodeUnavailable, "session store not configured")
