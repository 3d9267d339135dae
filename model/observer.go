package model

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/golang/glog"
)

// Seq is a data format to represent a sequence of discrete observations.
// We use it to read json data. Either Symbols or Sequence must be set;
// a Sequence string is split into one-character symbols.
type Seq struct {
	ID       string   `json:"id"`
	Symbols  []string `json:"symbols,omitempty"`
	Sequence string   `json:"sequence,omitempty"`

	// Reference hidden states, if known.
	Labels []string `json:"labels,omitempty"`
}

// Observations returns the observed symbols.
func (s Seq) Observations() []string {
	if len(s.Symbols) > 0 {
		return s.Symbols
	}
	return strings.Split(s.Sequence, "")
}

// SeqObserver streams Seq values.
type SeqObserver struct {
	reader io.Reader
	err    error
}

// NewSeqObserver creates a new SeqObserver. The data is read as a stream of JSON objects
// accessed from an io.Reader. Each JSON object must be separated by a newline.
//
// Example to create an SeqObserver from a file (error handling ignored for brevity).
// The data must be a stream of JSON-encoded Seq values.
//
//   r, _ = os.Open(fn)              // Open file.
//   obs, _ = NewSeqObserver(r)      // Create observer that reads from file.
//   c, _ = obs.ObsChan()            // Get channel.
//   for seq := range c { ... }
//   err = obs.Err()                 // Decoding error, if any.
//  _ = obs.Close()                  // Closes the underlying file reader.
func NewSeqObserver(reader io.Reader) (*SeqObserver, error) {
	so := &SeqObserver{
		reader: reader,
	}
	return so, nil
}

// ObsChan returns a channel of sequences. The channel closes at the end of
// the stream or at the first decoding error.
func (so *SeqObserver) ObsChan() (<-chan Seq, error) {
	obsChan := make(chan Seq, 1000)
	go func() {
		defer close(obsChan)
		dec := json.NewDecoder(so.reader)
		for {
			var v Seq
			err := dec.Decode(&v)
			if err == io.EOF {
				return
			}
			if err != nil {
				glog.Warning(err)
				so.err = err
				return
			}
			obsChan <- v
		}
	}()
	return obsChan, nil
}

// Err returns the decoding error that stopped the stream. Only valid
// after the channel returned by ObsChan is closed.
func (so *SeqObserver) Err() error {
	return so.err
}

// Close underlying reader if reader implements the io.Closer interface.
func (so *SeqObserver) Close() error {

	c, ok := so.reader.(io.Closer)
	if ok {
		e := c.Close()
		if e != nil {
			return e
		}
	}
	return nil
}
