package cmd

import (
	"log"
	"os"
	"os/exec"
	"syscall"
)

// Environment variables passed to extension binaries so they see the same
// data files as the main command.
const (
	EnvDataPath     = "DVT_DATA_PATH"
	EnvNavFile      = "DVT_NAV_FILE"
	EnvHolidaysPath = "DVT_HOLIDAYS_PATH"
)

// RunExtension attempts to find and execute an external dvt-<subcommand>
// binary. It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "dvt-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Printf("External command %q not found in PATH: %v", externalCmdName, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass global flags as environment variables.
	cmd.Env = append(os.Environ(),
		EnvDataPath+"="+*dataPath,
		EnvNavFile+"="+*navFile,
		EnvHolidaysPath+"="+*holidaysPath,
	)

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			if status, ok := exitErr.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		return true, 1
	}
	return true, 0
}
