package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/signadot/strtok/token"
)

type debug struct {
	Scan  bool
	Match bool
}

var d *debug

func init() {
	d = &debug{}
	d.Scan = boolEnv("STRTOK_DEBUG_SCAN")
	d.Match = boolEnv("STRTOK_DEBUG_MATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Scan() bool {
	return d.Scan
}

func Match() bool {
	return d.Match
}

// Logf writes a formatted message to stderr. Token arguments are rendered
// as JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case []token.Token, token.Token:
			b, err := json.Marshal(x)
			if err != nil {
				args[i] = fmt.Sprintf("%v", x)
				continue
			}
			args[i] = string(b)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
