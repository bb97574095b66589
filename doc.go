// doc.go - Kyber godoc extras.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package kyber implements the Kyber (ML-KEM) IND-CCA2-secure key
// encapsulation mechanism (KEM), based on the hardness of solving the
// learning-with-errors (LWE) problem over module lattices, as standardized
// in FIPS 203.
//
// The arithmetic core works in R_q = Z_q[X]/(X^256 + 1) with q = 3329 and
// follows the round 3 reference implementation: a negacyclic NTT with
// Montgomery and Barrett reductions, centered binomial noise sampled from
// SHAKE-256, and rejection sampling of the public matrix from SHAKE-128.
// Decapsulation uses the Fujisaki-Okamoto transform with implicit rejection
// and a constant-time reencryption check; it never signals failure to the
// caller.
//
// Additionally implementations of Kyber.AKE and Kyber.UAKE as presented in
// the Kyber paper are included for users that seek an authenticated key
// exchange.
//
// For more information, see https://pq-crystals.org/kyber/index.shtml.
package kyber
