// Copyright (c) cmdeck authors 2026. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build windows

package launch

import "syscall"

// detachedProcess is the DETACHED_PROCESS creation flag, which syscall does
// not name.
const detachedProcess = 0x00000008

// shellInvocation returns the interpreter and arguments used to run body.
func shellInvocation(body, override string) (string, []string) {
	if override != "" {
		return override, []string{"-c", body}
	}

	return "cmd", []string{"/C", body}
}

// detachedSysProcAttr starts the child in its own process group, detached
// from the launcher's console.
func detachedSysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP | detachedProcess,
	}
}
