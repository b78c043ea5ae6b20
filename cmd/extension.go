package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
)

// RunExtension attempts to find and execute an external extracker-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "extracker-" + subcommand

	// Look for the external command in PATH
	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Printf("external command %q not found in PATH: %v", externalCmdName, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	// Pass the resolved configuration as environment variables
	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvFile+"="+StorePath())
	cmd.Env = append(cmd.Env, EnvCurrency+"="+Currency())
	cmd.Env = append(cmd.Env, EnvOnCorrupt+"="+Policy().String())
	cmd.Env = append(cmd.Env, EnvVerbose+"="+strconv.FormatBool(*Verbose || envBool(EnvVerbose)))

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}

	return true, 0
}
