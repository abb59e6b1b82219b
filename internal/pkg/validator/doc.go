// Package validator wraps go-playground/validator with English translations
// and domain rules such as the mobile number format check.
package validator
