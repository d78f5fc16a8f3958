//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var (
	binDir  = "bin"
	appName = "greensignal-web"
)

var Default = Dev

// Dev runs the tidy step then the server, with air hot-reload when it
// is installed.
func Dev() error {
	mg.Deps(Tidy)

	if _, err := exec.LookPath("air"); err == nil {
		fmt.Println("Starting hot-reload with air ...")
		return sh.RunV("air")
	}

	fmt.Println("air not found. Falling back to `go run ./cmd/web`.")
	return Run()
}

func Run() error {
	fmt.Println("Running (go run) on :8080 ...")
	return sh.RunV("go", "run", "./cmd/web")
}

func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return err
	}
	out := filepath.Join(binDir, appName)
	if runtime.GOOS == "windows" {
		out += ".exe"
	}
	fmt.Println("Building", out, "...")
	return sh.RunV("go", "build", "-o", out, "./cmd/web")
}

func Test() error {
	return sh.RunV("go", "test", "./...")
}

func Tidy() error {
	return sh.RunV("go", "mod", "tidy")
}

func Clean() error {
	return os.RemoveAll(binDir)
}
