//go:build !tinygo

// Command mknvs creates or edits the settings flash image used by the host
// build.
//
//	mknvs -out logic.flash -set intensity=64 -set scene=1
//	mknvs -out logic.flash -list
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"logic/hal"
	"logic/internal/buildinfo"
	"logic/nvs"
)

const defaultFlashPath = "logic.flash"

type setting struct {
	name  string
	value int
}

// settings collects repeated -set flags.
type settings []setting

func (s *settings) String() string {
	parts := make([]string, 0, len(*s))
	for _, kv := range *s {
		parts = append(parts, fmt.Sprintf("%s=%d", kv.name, kv.value))
	}
	return strings.Join(parts, ",")
}

func (s *settings) Set(v string) error {
	kv, err := parseSetting(v)
	if err != nil {
		return err
	}
	*s = append(*s, kv)
	return nil
}

func parseSetting(v string) (setting, error) {
	name, val, ok := strings.Cut(v, "=")
	if !ok || name == "" {
		return setting{}, fmt.Errorf("want name=value, got %q", v)
	}
	n, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return setting{}, fmt.Errorf("value of %s: %w", name, err)
	}
	return setting{name: name, value: n}, nil
}

func main() {
	var (
		outPath string
		size    uint
		fresh   bool
		list    bool
		sets    settings
	)
	flag.StringVar(&outPath, "out", defaultFlashPath, "Flash image path.")
	flag.UintVar(&size, "size", hal.HostFlashSizeBytes, "Flash image size (bytes).")
	flag.BoolVar(&fresh, "fresh", false, "Erase the image before applying -set.")
	flag.BoolVar(&list, "list", false, "Print the stored settings.")
	flag.Var(&sets, "set", "Store name=value (repeatable).")
	showVersion := flag.Bool("version", false, "Print the version and exit.")
	flag.Parse()

	if *showVersion {
		fmt.Println("mknvs", buildinfo.Long())
		return
	}
	if outPath == "" {
		fmt.Fprintln(os.Stderr, "error: -out is required")
		os.Exit(2)
	}
	if len(sets) == 0 && !list && !fresh {
		fmt.Fprintln(os.Stderr, "error: nothing to do; use -set, -list or -fresh")
		os.Exit(2)
	}

	if err := run(os.Stdout, outPath, uint32(size), fresh, sets, list); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(w io.Writer, outPath string, size uint32, fresh bool, sets settings, list bool) error {
	ff, err := hal.OpenFileFlash(outPath, size)
	if err != nil {
		return err
	}
	defer func() { _ = ff.Close() }()

	if fresh {
		if err := ff.Erase(0, size); err != nil {
			return fmt.Errorf("erase %q: %w", outPath, err)
		}
	}

	store, err := nvs.Open(ff)
	if err != nil {
		return err
	}
	for _, kv := range sets {
		if err := store.SaveInt(kv.name, kv.value); err != nil {
			return fmt.Errorf("set %s: %w", kv.name, err)
		}
	}

	if list {
		for _, k := range store.Keys() {
			fmt.Fprintf(w, "%s=%d\n", k, store.LoadInt(k, 0))
		}
	}
	return nil
}
