// This file is part of Marquee.
//
// Marquee is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Marquee is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Marquee.  If not, see <https://www.gnu.org/licenses/>.
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

// Package launcher hands the command line of a selected card to the system.
//
// The Print launcher writes the command line to an io.Writer and ends the
// carousel. This is for cabinets where the carousel is run from a wrapper
// script that reads the command line from stdout, runs the emulator and then
// restarts the carousel.
//
// The Exec launcher runs the command line with "sh -c" and waits for it to
// finish. The carousel is restarted when the command ends.
package launcher

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/jetsetilly/marquee/curated"
	"github.com/jetsetilly/marquee/logger"
)

// Sentinel error patterns.
const (
	LaunchFailed = "launcher: %v"
)

const logTag = "launcher"

// Launcher implementations start an emulator.
type Launcher interface {
	// Launch the command line. Returns true if the carousel should be
	// restarted after the launch
	Launch(ctx context.Context, cmd string) (bool, error)
}

// Print writes the command line to Output.
type Print struct {
	Output io.Writer
}

// Launch implements the Launcher interface.
func (p Print) Launch(_ context.Context, cmd string) (bool, error) {
	if _, err := fmt.Fprintln(p.Output, cmd); err != nil {
		return false, curated.Errorf(LaunchFailed, err)
	}
	return false, nil
}

// Exec runs the command line with the shell.
type Exec struct {
	// the shell used to run the command. defaults to "sh"
	Shell string

	// if nil then output is sent to os.Stdout and os.Stderr
	Stdout io.Writer
	Stderr io.Writer
}

// Launch implements the Launcher interface. The carousel is restarted even
// when the command fails because the emulator exit status is not under the
// control of the carousel. A failure to start the shell is an error.
func (e Exec) Launch(ctx context.Context, cmd string) (bool, error) {
	shell := e.Shell
	if shell == "" {
		shell = "sh"
	}

	c := exec.CommandContext(ctx, shell, "-c", cmd)
	c.Stdout = e.Stdout
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	c.Stderr = e.Stderr
	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}

	logger.Logf(logger.Allow, logTag, "running: %s", cmd)

	if err := c.Start(); err != nil {
		return false, curated.Errorf(LaunchFailed, err)
	}

	if err := c.Wait(); err != nil {
		logger.Logf(logger.Allow, logTag, "%s: %v", cmd, err)
	}

	return true, nil
}

// New returns the named launcher. Valid names are "print" and "exec".
func New(name string, output io.Writer) (Launcher, error) {
	switch name {
	case "print", "":
		return Print{Output: output}, nil
	case "exec":
		return Exec{}, nil
	}
	return nil, curated.Errorf(LaunchFailed, fmt.Errorf("unknown launcher (%s)", name))
}
