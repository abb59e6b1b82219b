// Package sms abstracts text message delivery. HTTPProvider talks to a JSON
// SMS gateway; Logdev writes messages to the log for local development.
package sms
