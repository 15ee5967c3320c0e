// Command oscsend sends one OSC message, for exercising the bridge from
// a shell:
//
//	oscsend -addr localhost:17999 /obs/scene/2/go 1.0
//	oscsend /obs/source/volume s:Mic 0.75
//
// Arguments that parse as integers become int32, as decimals float32,
// anything else a string. An s:, i: or f: prefix forces the type.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/luxcue/obs-osc/osc"
)

func main() {
	addr := flag.String("addr", "localhost:17999", "host:port to send to")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 || !strings.HasPrefix(args[0], "/") {
		fmt.Fprintf(os.Stderr, "usage: %s [-addr host:port] /address [args...]\n", os.Args[0])
		os.Exit(2)
	}

	msg := osc.NewMessage(args[0])
	for _, arg := range args[1:] {
		if err := msg.Append(parseArg(arg)); err != nil {
			log.Fatal(err)
		}
	}

	client, err := osc.Dial(*addr)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close()

	if err := client.Send(msg); err != nil {
		log.Fatal(err)
	}
}

func parseArg(arg string) interface{} {
	switch {
	case strings.HasPrefix(arg, "s:"):
		return arg[2:]
	case strings.HasPrefix(arg, "i:"):
		n, err := strconv.ParseInt(arg[2:], 10, 32)
		if err != nil {
			log.Fatalf("invalid int argument %q", arg)
		}
		return int32(n)
	case strings.HasPrefix(arg, "f:"):
		f, err := strconv.ParseFloat(arg[2:], 32)
		if err != nil {
			log.Fatalf("invalid float argument %q", arg)
		}
		return float32(f)
	}

	if n, err := strconv.ParseInt(arg, 10, 32); err == nil {
		return int32(n)
	}
	if f, err := strconv.ParseFloat(arg, 32); err == nil {
		return float32(f)
	}
	return arg
}
