// Copyright (c) cmdeck authors 2026. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build !windows

package launch

import "syscall"

// shellInvocation returns the interpreter and arguments used to run body.
func shellInvocation(body, override string) (string, []string) {
	shell := "sh"
	if override != "" {
		shell = override
	}

	return shell, []string{"-c", body}
}

// detachedSysProcAttr starts the child in a new session so it survives the
// launcher returning and is not reached by signals sent to our terminal.
func detachedSysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		Setsid: true,
	}
}
