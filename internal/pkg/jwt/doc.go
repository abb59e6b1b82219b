// Package jwt issues and verifies JSON Web Tokens used as access tokens.
//
// The only implementation is Symmetric, signing with HMAC-SHA512. Tokens
// carry the user id, email and mobile number so handlers can authorize
// without a database round trip.
package jwt
