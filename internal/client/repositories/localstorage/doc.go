// Package localstorage is the CLI's key/value store, the counterpart of a
// browser's localStorage. Values are strings; a missing key reads as "".
//
// Well-known keys are listed as constants (KeyToken, KeyRole, ...). The
// SQLite implementation works over dbx.DBTX so it can run inside a
// transaction when several keys change together.
package localstorage
