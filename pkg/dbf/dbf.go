package dbf

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/mr-karan/dbfgen/internal/outfile"
	"github.com/zerodha/logf"
)

// Encoder produces complete DBF file images in a single pass. It holds
// no table state: every Encode call is an independent pure computation
// over the schema and records it is given, so one Encoder may be
// shared freely across goroutines.
type Encoder struct {
	lo      logf.Logger
	bufPool sync.Pool // Pool of byte buffers used for assembling files.
	opts    *Options
}

// initLogger initializes logger instance.
func initLogger(debug bool) logf.Logger {
	opts := logf.Opts{EnableCaller: true}
	if debug {
		opts.Level = logf.DebugLevel
	}
	return logf.New(opts)
}

// New initialises an encoder with the given options.
func New(cfgs ...Config) (*Encoder, error) {
	opts := DefaultOptions()
	for _, cfg := range cfgs {
		if err := cfg(opts); err != nil {
			return nil, fmt.Errorf("error applying config: %w", err)
		}
	}

	enc := &Encoder{
		lo:   initLogger(opts.debug),
		opts: opts,
		bufPool: sync.Pool{New: func() any {
			return bytes.NewBuffer([]byte{})
		}},
	}
	return enc, nil
}

// Encode assembles the complete binary image for the given schema and
// records: file header, descriptor table, record blocks and the eof
// sentinel, in that order.
func (e *Encoder) Encode(schema Schema, records []Record) ([]byte, error) {
	if err := schema.validate(); err != nil {
		return nil, err
	}

	updateDate, err := e.updateDate()
	if err != nil {
		return nil, err
	}

	buf := e.bufPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer e.bufPool.Put(buf)

	e.lo.Debug("encoding table", "fields", len(schema), "records", len(records), "update_date", updateDate)

	if err := encodeHeader(buf, schema, len(records), updateDate, e.opts.version, e.opts.langDriver); err != nil {
		return nil, fmt.Errorf("error encoding header: %w", err)
	}
	if err := encodeRecords(buf, schema, records); err != nil {
		return nil, fmt.Errorf("error encoding records: %w", err)
	}

	e.lo.Debug("encoded table", "bytes", buf.Len())

	// Copy out of the pooled buffer.
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

// WriteFile encodes the table and writes the image to the given path,
// holding an exclusive lock on the destination for the duration of the
// write.
func (e *Encoder) WriteFile(path string, schema Schema, records []Record) error {
	data, err := e.Encode(schema, records)
	if err != nil {
		return err
	}

	f, err := outfile.Create(path)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("error writing output file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("error syncing output file: %w", err)
	}

	e.lo.Debug("wrote table", "path", path, "bytes", len(data))
	return f.Close()
}

// updateDate resolves the header last-update date: the configured
// value when one was supplied, else the current date.
func (e *Encoder) updateDate() (string, error) {
	if e.opts.updateDate != nil {
		return ToDate(e.opts.updateDate)
	}
	year, month, day := time.Now().Date()
	return ToDate(Calendar{Year: year, Month: int(month), Day: day})
}
