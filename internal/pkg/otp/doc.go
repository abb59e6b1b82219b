// Package otp generates one-time passcodes for mobile verification.
package otp
