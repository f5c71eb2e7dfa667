package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Events  bool
	Parse   bool
	Encode  bool
	Archive bool
	Patch   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Events = boolEnv("XD_DEBUG_EVENTS")
	d.Parse = boolEnv("XD_DEBUG_PARSE")
	d.Encode = boolEnv("XD_DEBUG_ENCODE")
	d.Archive = boolEnv("XD_DEBUG_ARCHIVE")
	d.Patch = boolEnv("XD_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Events() bool {
	return d.Events
}
func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Archive() bool {
	return d.Archive
}
func Patch() bool {
	return d.Patch
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
