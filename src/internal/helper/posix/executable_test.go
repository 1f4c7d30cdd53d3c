// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"testing"
)

// TestGetExecutableName covers both separator styles in one table. The
// foreign-separator handling makes every case pass regardless of the
// host OS, so there is no runtime.GOOS split here.
func TestGetExecutableName(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bare name", []string{"myapp"}, "myapp"},
		{"relative path", []string{"./myapp"}, "myapp"},
		{"unix absolute path", []string{"/usr/local/bin/myapp"}, "myapp"},
		{"unix system path", []string{"/bin/ls"}, "ls"},
		{"unix home path", []string{"/home/user/bin/myapp"}, "myapp"},
		{"windows path with exe suffix", []string{`C:\Program Files\myapp.exe`}, "myapp"},
		{"windows path without suffix", []string{`C:\Program Files\myapp`}, "myapp"},
		{"windows argv on a unix host", []string{`C:\windows\style\path\on\unix\system.exe`}, "system"},
		{"deeply nested windows path", []string{`C:\Users\user\AppData\Local\Microsoft\WindowsApps\WindowsTerminal.exe`}, "WindowsTerminal"},
		{"trailing separator", []string{`C:\bin\`}, "bin"},
		{"exe suffix on bare name", []string{"inspector.exe"}, "inspector"},
		{"no args", []string{}, "x509-cert-inspector"},
		{"empty first arg", []string{""}, "x509-cert-inspector"},
		{"separators only", []string{`\\`}, "x509-cert-inspector"},
	}

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			if got := GetExecutableName(); got != tt.want {
				t.Errorf("GetExecutableName() = %q, want %q", got, tt.want)
			}
		})
	}
}
