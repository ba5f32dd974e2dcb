package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/mr-karan/dbfgen/pkg/dbf"
	"github.com/tidwall/redcon"
	"github.com/zerodha/logf"
)

var (
	// Version of the build. This is injected at build-time.
	buildString = "unknown"
)

// App buffers a table definition and its rows in memory and flushes
// them to a DBF file on demand.
type App struct {
	sync.Mutex

	lo     logf.Logger
	enc    *dbf.Encoder
	schema dbf.Schema
	rows   []dbf.Record
}

func main() {
	ko, err := initConfig()
	if err != nil {
		fmt.Println("error loading config:", err)
		os.Exit(1)
	}

	lo := initLogger(ko)

	var cfgs []dbf.Config
	if ko.String("app.log") == "debug" {
		cfgs = append(cfgs, dbf.WithDebug())
	}
	enc, err := dbf.New(cfgs...)
	if err != nil {
		lo.Fatal("error initialising encoder", "error", err)
	}

	app := &App{
		lo:  lo,
		enc: enc,
	}

	mux := redcon.NewServeMux()
	mux.HandleFunc("ping", app.ping)
	mux.HandleFunc("quit", app.quit)
	mux.HandleFunc("field", app.field)
	mux.HandleFunc("row", app.row)
	mux.HandleFunc("count", app.count)
	mux.HandleFunc("reset", app.reset)
	mux.HandleFunc("save", app.save)

	addr := ko.String("server.address")
	if addr == "" {
		addr = ":6380"
	}

	lo.Info("starting server", "address", addr, "version", buildString)
	if err := redcon.ListenAndServe(addr,
		mux.ServeRESP,
		func(conn redcon.Conn) bool {
			// use this function to accept or deny the connection.
			return true
		},
		func(conn redcon.Conn, err error) {
			// this is called when the connection has been closed
		},
	); err != nil {
		lo.Fatal("error starting server", "error", err)
	}
}
