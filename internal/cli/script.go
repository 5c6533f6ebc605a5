package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/todocat/internal/cli/formatter"
	"github.com/alexanderramin/todocat/internal/service"
)

// RunScript executes commands from r, one per line, writing command output
// to w. Blank lines and lines starting with '#' are skipped. A malformed
// line is reported on errw and skipped; RunScript returns an error at the
// end if any line failed to parse.
func RunScript(r io.Reader, w, errw io.Writer, tasks service.TaskService) error {
	sc := bufio.NewScanner(r)
	lineNo, failed := 0, 0

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cmd, err := parseCommand(line)
		if err != nil {
			failed++
			fmt.Fprintln(errw, formatter.ErrorLine(fmt.Errorf("line %d: %w", lineNo, err)))
			continue
		}

		res := executeCommand(tasks, cmd)
		if res.output != "" {
			fmt.Fprintln(w, strings.TrimRight(res.output, "\n"))
		}
		if res.quit {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading script: %w", err)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d script line(s) failed", failed, lineNo)
	}
	return nil
}
