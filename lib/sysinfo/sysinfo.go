package sysinfo

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/maksimkurb/keen-netconf/lib/log"
	"github.com/valyala/fasttemplate"
)

// commandTimeout bounds every external query so a wedged command cannot
// stall the reconciliation callback.
const commandTimeout = 10 * time.Second

// StringFromCmd renders the command template with the interface name and
// returns the first output line of the command.
func StringFromCmd(template, ifname string) (string, error) {
	command := fasttemplate.ExecuteString(template, "{{", "}}", map[string]interface{}{
		"ifname": ifname,
	})
	log.Debugf("Running query command '%s'", command)

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	output, err := exec.CommandContext(ctx, "sh", "-c", command).Output()
	if err != nil {
		return "", fmt.Errorf("failed to run '%s': %v", command, err)
	}

	return firstLine(string(output)), nil
}

// Uint64FromCmd runs the command template and parses its first output line
// as an unsigned decimal.
func Uint64FromCmd(template, ifname string) (uint64, error) {
	line, err := StringFromCmd(template, ifname)
	if err != nil {
		return 0, err
	}

	value, err := strconv.ParseUint(line, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %q as unsigned integer: %v", line, err)
	}
	return value, nil
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
