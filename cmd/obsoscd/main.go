// Command obsoscd bridges OSC control surfaces to OBS Studio. It listens
// for OSC datagrams on a UDP port and drives OBS over obs-websocket.
//
// The interactive console mirrors the listener lifecycle controls:
//
//	start      begin listening on the configured port
//	stop       stop listening
//	port N     reconfigure the port (restarts an active listener)
//	status     show the listener state
//	quit       stop and exit
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/luxcue/obs-osc/control"
	"github.com/luxcue/obs-osc/obsws"
	"github.com/luxcue/obs-osc/osc"
)

func main() {
	var (
		port     int
		obsURL   string
		password string
		settle   time.Duration
		hold     time.Duration
		verbose  bool
	)
	flag.IntVar(&port, "port", 17999, "UDP port to listen on for OSC")
	flag.StringVar(&obsURL, "obs", "ws://localhost:4455", "obs-websocket URL")
	flag.StringVar(&password, "password", "", "obs-websocket password")
	flag.DurationVar(&settle, "settle", control.DefaultSettleDelay, "delay between staging a scene and starting a transition")
	flag.DurationVar(&hold, "hold", control.DefaultTransitionHold, "delay between starting a transition and advancing the preview")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	studio, err := obsws.Dial(obsURL, password)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = studio.Close() }()

	router := control.NewRouter(studio)
	router.SettleDelay = settle
	router.TransitionHold = hold
	router.Log = logger

	listener := osc.NewListener(port, router)
	listener.Log = logger

	if err := listener.Start(); err != nil {
		log.Fatal(err)
	}
	defer func() { _ = listener.Stop() }()

	if err := console(listener); err != nil {
		log.Fatal(err)
	}
}

// console runs the lifecycle command prompt until quit or EOF.
func console(listener *osc.Listener) error {
	rl, err := readline.New("obsosc> ")
	if err != nil {
		return err
	}
	defer func() { _ = rl.Close() }()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "start":
			if err := listener.Start(); err != nil {
				fmt.Println(err)
			}
		case "stop":
			if err := listener.Stop(); err != nil {
				fmt.Println(err)
			}
		case "port":
			if len(fields) != 2 {
				fmt.Println("usage: port N")
				continue
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil || n < 1 || n > 65535 {
				fmt.Printf("invalid port %q\n", fields[1])
				continue
			}
			if err := listener.SetPort(n); err != nil {
				fmt.Println(err)
			}
		case "status":
			if addr := listener.Addr(); addr != nil {
				fmt.Println("listening on", addr)
			} else {
				fmt.Printf("stopped (port %d configured)\n", listener.Port())
			}
		case "quit", "exit":
			return nil
		default:
			fmt.Printf("unknown command %q\n", fields[0])
		}
	}
}
