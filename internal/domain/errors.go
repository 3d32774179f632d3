package domain

import "errors"

// ErrConfiguration marks a fatal load-time configuration problem: a missing
// mandatory template section, an invalid rubric table, or a malformed
// catalog entry. It is the only error class that crosses the core boundary
// as a hard failure; runtime anomalies are absorbed into engine directives.
var ErrConfiguration = errors.New("configuration error")
