//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package sysmon

import "errors"

func unameRelease() (string, error) {
	return "", errors.New("uname not supported on this platform")
}
