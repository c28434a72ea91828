// Package streebog implements the GOST R 34.11-2018 ("Streebog") secure
// hashing algorithm. It produces 256-bit or 512-bit digests from byte
// messages of arbitrary length, following the compression pipeline defined
// in chapters 5 through 8 of the standard.
package streebog
