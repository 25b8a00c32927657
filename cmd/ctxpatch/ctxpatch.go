package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"codedocs/internal/atomicfile"
	"codedocs/internal/splice"
)

const defaultPath = "/home/nexora/internal/agent/coordinator.go"

// patch1 applies p to the file at path. The file is only rewritten when both
// anchors were found.
func patch1(path string, p splice.Patch) (splice.Result, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return splice.Result{}, &splice.IOError{Op: "stat", Path: path, Err: err}
	}
	source, err := os.ReadFile(path)
	if err != nil {
		return splice.Result{}, &splice.IOError{Op: "read", Path: path, Err: err}
	}

	lines, res, err := splice.Apply(splice.SplitLines(source), p)
	if err != nil {
		return res, err
	}

	if err := atomicfile.WriteFile(path, splice.JoinLines(lines), fi.Mode().Perm()); err != nil {
		return res, &splice.IOError{Op: "write", Path: path, Err: err}
	}
	return res, nil
}

func ctxpatch() error {
	var (
		path = flag.String("path",
			defaultPath,
			"Go source file to patch in place")
	)
	flag.Parse()
	if flag.NArg() != 0 {
		return fmt.Errorf("syntax: %s [-path=<file>]", filepath.Base(os.Args[0]))
	}

	res, err := patch1(*path, splice.ContextManagement)
	if err != nil {
		return err
	}
	fmt.Printf("Updated lines %d to %d\n", res.Start, res.End-1)
	return nil
}

func main() {
	if err := ctxpatch(); err != nil {
		log.Fatal(err)
	}
}
