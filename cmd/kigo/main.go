// Command kigo is a minimalist terminal text editor.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kigoeditor/kigo/editor"
	"github.com/kigoeditor/kigo/internal/term"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "print the version and exit")
		tabStop     = flag.Int("tabstop", 0, "override the tab-expansion width (default 8)")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println("kigo", editor.Version)
		return
	}
	if *tabStop > 0 {
		editor.TabStop = *tabStop
	}

	driver := term.New(os.Stdin, os.Stdout)
	if err := driver.EnableRaw(); err != nil {
		fmt.Fprintf(os.Stderr, "kigo: %v\n", err)
		os.Exit(1)
	}
	defer driver.Restore()

	e, err := editor.New(driver)
	if err != nil {
		driver.Restore()
		fmt.Fprintf(os.Stderr, "kigo: %v\n", err)
		os.Exit(1)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		driver.Restore()
		driver.ClearScreen()
		os.Exit(1)
	}()

	if flag.NArg() > 0 {
		if err := e.Open(flag.Arg(0)); err != nil {
			e.Die(err)
		}
	}

	e.Run()
}
