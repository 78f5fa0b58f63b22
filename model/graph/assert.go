package graph

import (
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

var logger = stdr.New(log.New(os.Stderr, "", log.LstdFlags)).WithName("graph")

// SetLogger replaces the logger used to report invariant violations
func SetLogger(l logr.Logger) {
	logger = l
}
