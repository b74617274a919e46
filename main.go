package main

import (
	"github.com/alexflint/go-arg"
	"github.com/femnad/pat/base"
	"github.com/femnad/pat/internal"
	"github.com/femnad/pat/patch"
	"log"
)

type args struct {
	File     string `arg:"-f,--file" default:"~/.config/pat/pat.yml" help:"patch spec file"`
	LogLevel int    `arg:"-l,--loglevel" default:"4"`
}

func (args) Version() string {
	return "pat 0.1.0"
}

func main() {
	var args args
	arg.MustParse(&args)
	internal.InitLogging(args.LogLevel)
	config, err := base.ReadConfig(args.File)
	if err != nil {
		log.Fatalf("%v\n", err)
	}

	p := patch.Patcher{Config: config}
	err = p.Apply()
	if err != nil {
		log.Fatalf("%v\n", err)
	}
}
