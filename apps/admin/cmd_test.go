package main

import (
	"io"
	"log"
	"testing"

	"github.com/ivamusic/academia/core/directory"
	testutil "github.com/ivamusic/academia/tests"
)

var dirSvc *directory.Service

func setup(t *testing.T) *commandLine {
	t.Helper()

	logger = log.New(io.Discard, "", 0)
	dirSvc, _ = testutil.NewSeededService(t)
	return &commandLine{dirSvc: dirSvc}
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
	extra      interface{}
}

func Test_commandLine_addUser(t *testing.T) {
	cli := setup(t)

	type extra struct {
		pwd string
	}
	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "no args", args: []string{"adduser"}, wantErr: errHelp},
		{name: "missing role", args: []string{"adduser", "-name", "New Kid", "-username", "IVA-S003"}, wantErr: errHelp},
		{
			name: "invalid role", args: []string{"adduser", "-name", "New Kid", "-username", "IVA-S003", "-role", "WIZARD"},
			wantErrStr: "Key: 'NewUser.role' Error:Field validation for 'role' failed on the 'role' tag",
		},
		{
			name: "duplicate username", args: []string{"adduser", "-name", "Copy Cat", "-username", "iva-s001", "-role", "STUDENT"},
			wantErrStr: "a user with this username already exists for this role",
		},
		{
			name: "student registered", extra: extra{pwd: "mdr"},
			args: []string{"adduser", "-name", "New Kid", "-username", "IVA-S003", "-role", "STUDENT", "-instrument", "Drums"},
		},
		{
			name: "empty password allowed",
			args: []string{"adduser", "-name", "Prof. Tempo", "-username", "IVA-T002", "-role", "TEACHER"},
		},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		readPasswordFunc = func(fd int) ([]byte, error) {
			if extra, ok := tt.extra.(extra); ok {
				return []byte(extra.pwd), nil
			}
			return nil, nil
		}

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			if err == nil {
				if tt.wantErr != nil || tt.wantErrStr != "" {
					t.Errorf("cli.run() error = nil, wantErr %v%s", tt.wantErr, tt.wantErrStr)
				}
				return
			}
			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
				}
			} else if tt.wantErrStr != "" {
				if err.Error() != tt.wantErrStr {
					t.Errorf("cli.run() error.Error() = %s, wantErrStr %s", err.Error(), tt.wantErrStr)
				}
			} else {
				t.Errorf("cli.run() unexpected error = %v", err)
			}
		})
	}

	// the registered student can log in with the prompted password
	if _, err := dirSvc.Authenticate("IVA-S003", directory.RoleStudent, "mdr"); err != nil {
		t.Errorf("Authenticate() after adduser: %v", err)
	}
	if _, err := dirSvc.Authenticate("IVA-T002", directory.RoleTeacher, ""); err != nil {
		t.Errorf("Authenticate() after passwordless adduser: %v", err)
	}
}

func Test_commandLine_resetPassword(t *testing.T) {
	cli := setup(t)

	type extra struct {
		pwd string
	}
	tests := []cliTest{
		{name: "no args", args: []string{"resetpassword"}, wantErr: errHelp},
		{name: "username but no password", args: []string{"resetpassword", "-username", "IVA-S001", "-role", "STUDENT"}, wantErr: errHelp},
		{name: "user not found", args: []string{"resetpassword", "-username", "lol", "-role", "STUDENT"}, extra: extra{pwd: "lol"}, wantErr: directory.ErrNotFound},
		{name: "reset", args: []string{"resetpassword", "-username", "iva-s001", "-role", "STUDENT"}, extra: extra{pwd: "lmao"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		readPasswordFunc = func(fd int) ([]byte, error) {
			if extra, ok := tt.extra.(extra); ok {
				return []byte(extra.pwd), nil
			}
			return nil, nil
		}

		t.Run(tt.name, func(t *testing.T) {
			if err := cli.run(args); err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	if _, err := dirSvc.Authenticate("IVA-S001", directory.RoleStudent, "lmao"); err != nil {
		t.Errorf("Authenticate() after resetpassword: %v", err)
	}
	if _, err := dirSvc.Authenticate("IVA-S001", directory.RoleStudent, "password123"); err != directory.ErrAuthFailed {
		t.Errorf("Authenticate() with old password error = %v, want %v", err, directory.ErrAuthFailed)
	}
}
