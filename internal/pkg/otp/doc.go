// Package otp generates the short numeric passcodes handed out to unlock a
// locker.
//
// Codes are drawn from crypto/rand, uniformly over the full range of the
// configured width, and zero-padded, so "0042" is as likely as "9731".
package otp
