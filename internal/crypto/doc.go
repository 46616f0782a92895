// Package crypto provides the password hashing service.
//
// Two implementations: BcryptService (production) and PlainService (test-only
// passthrough, so suites do not pay the bcrypt cost per case).
package crypto
