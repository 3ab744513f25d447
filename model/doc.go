// Package model defines stable boundary types for API layers.
//
// Account identity (the 32 account bytes) is unaffected by any projection.
// These structs are the only types intended for direct JSON serialization by
// consumers such as the keyless CLI.
package model
