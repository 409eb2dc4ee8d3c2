package network

import (
	"net"
	"net/url"
	"syscall"
)

// ErrType represents network error type
type ErrType string

const (
	Nil ErrType = "Nil"

	// no such host
	NoSuchHost ErrType = "No such host"

	// http: server gave HTTP response to HTTPS client
	HTTPSClientHTTPServer ErrType = "HTTP response to HTTPS client"

	// No connection could be made because the target machine actively refused it
	Refused ErrType = "Connection refused"

	// context deadline exceeded (Client.Timeout exceeded while awaiting headers)
	Timeout ErrType = "Timeout"

	Unknown ErrType = "Unknown"
)

// GetErrType returns network error type.
//
// Inspired by https://stackoverflow.com/a/67647035
func GetErrType(err error) ErrType {
	if err == nil {
		return Nil
	}
	for {
		if err, ok := err.(*net.DNSError); ok && err.IsNotFound {
			return NoSuchHost
		}
		errMsg := "http: server gave HTTP response to HTTPS client"
		if err, ok := err.(*url.Error); ok && err.Err != nil && err.Err.Error() == errMsg {
			return HTTPSClientHTTPServer
		}
		if err, ok := err.(syscall.Errno); ok {
			if err == 10061 || err == syscall.ECONNREFUSED {
				return Refused
			}
		}
		if err, ok := err.(net.Error); ok && err.Timeout() {
			return Timeout
		}
		unwrap, ok := err.(interface{ Unwrap() error })
		if !ok {
			return Unknown
		}
		if err = unwrap.Unwrap(); err == nil {
			return Unknown
		}
	}
}

// Reason returns human readable description of <err>: it's type if known or the error message otherwise
func Reason(err error) string {
	errType := GetErrType(err)
	switch errType {
	case Unknown:
		return err.Error()
	case Nil:
		return ""
	}
	return string(errType)
}
