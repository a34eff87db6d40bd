// LogOrder - Chronological Log Verification Tool
//
// LogOrder scans timestamped log files and reports any backward time jumps,
// a symptom of interleaved concurrent writers or broken log rotation.
package main

import (
	"os"

	"github.com/jimmyjordanSWE/logorder/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
