package main

import (
	"log"
	"os"

	"github.com/alexflint/go-arg"
	"gopkg.in/yaml.v3"

	"github.com/femnad/pat/base"
	"github.com/femnad/pat/internal"
)

type args struct {
	File     string `arg:"-f,--file" default:"~/.config/pat/pat.yml" help:"patch spec file"`
	LogLevel int    `arg:"-l,--loglevel" default:"4"`
}

func (args) Version() string {
	return "printpatch 0.1.0"
}

// Prints the effective patch set for a spec file, built-in patches included.
func main() {
	var args args
	arg.MustParse(&args)
	internal.InitLogging(args.LogLevel)

	config, err := base.ReadConfig(args.File)
	if err != nil {
		log.Fatalf("%v\n", err)
	}

	encoder := yaml.NewEncoder(os.Stdout)
	err = encoder.Encode(config.Patches)
	if err != nil {
		log.Fatalf("%v\n", err)
	}

	err = encoder.Close()
	if err != nil {
		log.Fatalf("%v\n", err)
	}
}
