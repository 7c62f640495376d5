// Package auth provides password hashing and signed session tokens.
//
// Tokens are HS256 JWTs carrying the user's ID as subject plus email and
// display name. Every verification failure surfaces as an error that is
// domain.ErrUnauthenticated, so callers never need to inspect jwt errors.
package auth
