package signerclient

import (
	"strings"
)

const schemePrefix = "http://"

// NormalizeSocket ensures the socket advertised on chain carries an http
// scheme. The prefix test is case insensitive; sockets registered as bare
// host:port pairs get the scheme prepended.
func NormalizeSocket(socket string) string {
	if !strings.HasPrefix(strings.ToLower(socket), schemePrefix) {
		return schemePrefix + socket
	}
	return socket
}

// DialTarget converts a signer socket into the host:port target handed to
// the gRPC dialer. Two sockets that normalize identically dial identically.
func DialTarget(socket string) string {
	return NormalizeSocket(socket)[len(schemePrefix):]
}
