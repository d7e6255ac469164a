// Copyright 2013 Google, Inc.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// crossline-demo is a basic example of the crossline line editor. It reads
// lines with history, word completion and the usual Emacs-style editing
// shortcuts, and echoes each one back.
//
// Press ^C, ^D, or type "quit" to exit.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/jcwangxp/crossline/completion"
	"github.com/jcwangxp/crossline/crossline"
)

var configPath = flag.String("config", "", "Path to a TOML config file (word delimiters, history file, prompt)")

// config is the demo's own settings, loaded from an optional TOML file;
// none of this is crossline's concern.
type config struct {
	Prompt      string `toml:"prompt"`
	HistoryFile string `toml:"history_file"`
	Delimiters  string `toml:"word_delimiters"`
}

var commands = []struct {
	word, help string
}{
	{"help", "show this list of commands"},
	{"history", "show command history"},
	{"clear-history", "clear command history"},
	{"quit", "exit the demo"},
}

func main() {
	flag.Parse()

	cfg := config{Prompt: "crossline> "}
	if *configPath != "" {
		if _, err := toml.DecodeFile(*configPath, &cfg); err != nil {
			log.Fatalf("config: %s", err)
		}
	}

	if cfg.Delimiters != "" {
		crossline.SetWordDelimiters(cfg.Delimiters)
	}
	if cfg.HistoryFile != "" {
		// history.Load wraps the underlying os error via pkg/errors, so the
		// stdlib os.IsNotExist (which only unwraps raw *PathError values)
		// never recognizes a missing file here; errors.Is walks the wrap.
		if err := crossline.HistoryLoad(cfg.HistoryFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Printf("history: %s", err)
		}
	}

	crossline.RegisterCompletion(func(line string, out *completion.Completions) {
		for _, c := range commands {
			if strings.HasPrefix(c.word, line) {
				out.Add(c.word, c.help)
			}
		}
	})

	for {
		line, err := crossline.ReadLine(cfg.Prompt)
		if err != nil {
			if err == io.EOF || errors.Is(err, crossline.ErrAborted) {
				fmt.Println("Goodbye!")
				break
			}
			log.Fatalf("readline: %s", err)
		}

		switch line {
		case "quit":
			fmt.Println("Goodbye!")
			save(cfg)
			return
		case "help":
			for _, c := range commands {
				fmt.Printf("  %-16s %s\n", c.word, c.help)
			}
		case "history":
			if err := crossline.HistoryShow(); err != nil {
				log.Printf("history: %s", err)
			}
		case "clear-history":
			crossline.HistoryClear()
		default:
			fmt.Printf("echo: %s\n", line)
		}
	}

	save(cfg)
}

func save(cfg config) {
	if cfg.HistoryFile == "" {
		return
	}
	if err := crossline.HistorySave(cfg.HistoryFile); err != nil {
		log.Printf("history: %s", err)
	}
}
