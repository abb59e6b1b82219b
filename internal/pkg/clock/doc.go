// Package clock provides a small abstraction over the system clock so that
// time-dependent logic (token expiry, OTP validity windows) stays testable.
package clock
