// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"monadic/internal/lsp"
)

const lsName = "monadic"

var (
	version = "0.1.0"
	handler protocol.Handler
)

func main() {
	verbose := flag.Int("v", 1, "log verbosity (2 logs debug)")
	debug := flag.Bool("debug", false, "enable glsp protocol debug logging")
	flag.Parse()

	commonlog.Configure(*verbose, nil)
	log := commonlog.GetLogger("monadic.lsp")

	monadicHandler := lsp.NewHandler()

	handler = protocol.Handler{
		Initialize:                     monadicHandler.Initialize,
		Initialized:                    monadicHandler.Initialized,
		Shutdown:                       monadicHandler.Shutdown,
		SetTrace:                       monadicHandler.SetTrace,
		TextDocumentDidOpen:            monadicHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           monadicHandler.TextDocumentDidClose,
		TextDocumentDidChange:          monadicHandler.TextDocumentDidChange,
		TextDocumentCompletion:         monadicHandler.TextDocumentCompletion,
		TextDocumentHover:              monadicHandler.TextDocumentHover,
		TextDocumentSemanticTokensFull: monadicHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, *debug)

	log.Infof("starting %s language server %s", lsName, version)
	if err := s.RunStdio(); err != nil {
		log.Errorf("language server stopped: %s", err)
		os.Exit(1)
	}
}
