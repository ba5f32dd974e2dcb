package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mr-karan/dbfgen/pkg/dbf"
	"github.com/tidwall/redcon"
)

func (app *App) ping(conn redcon.Conn, cmd redcon.Command) {
	conn.WriteString("PONG")
}

func (app *App) quit(conn redcon.Conn, cmd redcon.Command) {
	conn.WriteString("OK")
	conn.Close()
}

// field declares a column: FIELD name type size [decimals].
// The schema is frozen once rows are buffered.
func (app *App) field(conn redcon.Conn, cmd redcon.Command) {
	if len(cmd.Args) != 4 && len(cmd.Args) != 5 {
		conn.WriteError("ERR wrong number of arguments for '" + string(cmd.Args[0]) + "' command")
		return
	}

	app.Lock()
	defer app.Unlock()

	if len(app.rows) > 0 {
		conn.WriteError("ERR schema is frozen once rows are buffered")
		return
	}

	var (
		name     = string(cmd.Args[1])
		typeCode = strings.ToUpper(string(cmd.Args[2]))
	)
	if len(typeCode) != 1 || !strings.Contains("CNDLT", typeCode) {
		conn.WriteError("ERR invalid field type " + typeCode)
		return
	}

	size, err := strconv.ParseUint(string(cmd.Args[3]), 10, 8)
	if err != nil {
		conn.WriteError("ERR invalid field size " + string(cmd.Args[3]))
		return
	}

	var decimals uint64
	if len(cmd.Args) == 5 {
		decimals, err = strconv.ParseUint(string(cmd.Args[4]), 10, 8)
		if err != nil {
			conn.WriteError("ERR invalid decimal count " + string(cmd.Args[4]))
			return
		}
	}

	app.schema = append(app.schema, dbf.Field{
		Name:     name,
		Type:     dbf.FieldType(typeCode[0]),
		Size:     byte(size),
		Decimals: byte(decimals),
	})

	conn.WriteString("OK")
}

// row buffers one record: ROW v1 v2 ... with one value per declared
// field, in schema order.
func (app *App) row(conn redcon.Conn, cmd redcon.Command) {
	app.Lock()
	defer app.Unlock()

	if len(cmd.Args) != len(app.schema)+1 {
		conn.WriteError("ERR wrong number of arguments for '" + string(cmd.Args[0]) + "' command")
		return
	}

	rec := dbf.Record{}
	for i, f := range app.schema {
		v, err := parseValue(f, string(cmd.Args[i+1]))
		if err != nil {
			conn.WriteError(fmt.Sprintf("ERR field %s: %s", f.Name, err))
			return
		}
		rec[f.Name] = v
	}

	app.rows = append(app.rows, rec)
	conn.WriteString("OK")
}

func (app *App) count(conn redcon.Conn, cmd redcon.Command) {
	app.Lock()
	defer app.Unlock()

	conn.WriteInt(len(app.rows))
}

// reset drops the buffered schema and rows.
func (app *App) reset(conn redcon.Conn, cmd redcon.Command) {
	app.Lock()
	defer app.Unlock()

	app.schema = nil
	app.rows = nil
	conn.WriteString("OK")
}

// save encodes the buffered table and writes it to the given path.
func (app *App) save(conn redcon.Conn, cmd redcon.Command) {
	if len(cmd.Args) != 2 {
		conn.WriteError("ERR wrong number of arguments for '" + string(cmd.Args[0]) + "' command")
		return
	}

	app.Lock()
	defer app.Unlock()

	path := string(cmd.Args[1])
	if err := app.enc.WriteFile(path, app.schema, app.rows); err != nil {
		app.lo.Error("error writing table", "path", path, "error", err)
		conn.WriteString(fmt.Sprintf("ERR: %s", err))
		return
	}

	app.lo.Info("wrote table", "path", path, "records", len(app.rows))
	conn.WriteString("OK")
}

// parseValue maps a wire argument onto the typed value a field expects.
// Eight digit arguments on date and timestamp fields are read as
// YYYYMMDD dates, any other integer as an epoch timestamp.
func parseValue(f dbf.Field, raw string) (dbf.Value, error) {
	switch f.Type {
	case dbf.TypeCharacter, dbf.TypeLogical:
		return dbf.String(raw), nil
	case dbf.TypeNumeric:
		if f.Decimals > 0 {
			n, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid number %q", raw)
			}
			return dbf.Float(n), nil
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", raw)
		}
		return dbf.Int(n), nil
	case dbf.TypeDate, dbf.TypeTimestamp:
		if len(raw) == 8 {
			if _, err := dbf.ToDate(dbf.String(raw)); err == nil {
				return dbf.String(raw), nil
			}
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q", raw)
		}
		return dbf.Epoch(n), nil
	}
	return nil, fmt.Errorf("unsupported field type %q", string(rune(f.Type)))
}
