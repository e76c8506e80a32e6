// Package writers dispatches a finished scan run to the output format
// the caller asked for. Formats self-register so adding one touches no
// dispatch code.
package writers
