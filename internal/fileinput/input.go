package fileinput

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Location names a line in an Input file.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string {
	if loc.Name == "" {
		return fmt.Sprintf("line %v", loc.Line)
	}
	return fmt.Sprintf("%v:%v", loc.Name, loc.Line)
}

// Line is one line of input, without its line ending, along with where it
// was read from.
type Line struct {
	Location
	Text string
}

func (il Line) String() string { return fmt.Sprintf("%v %q", il.Location, il.Text) }

// Input implements sequential line reading through a Queue of one or more
// input streams. Each stream is closed, if it is an io.Closer, once it has
// been read to its end. The last read line is retained to facilitate user
// feedback.
type Input struct {
	Queue []io.Reader
	Last  Line

	br  *bufio.Reader
	cur io.Reader
	loc Location
}

// ReadLine reads one line from the current input stream, moving on to the
// next queued stream at end of file. Returns io.EOF once every stream is
// exhausted. A final line lacking a line feed is still returned.
func (in *Input) ReadLine() (Line, error) {
	for {
		if in.br == nil && !in.nextIn() {
			return Line{}, io.EOF
		}

		text, err := in.br.ReadString('\n')
		if len(text) > 0 {
			in.loc.Line++
			in.Last = Line{
				Location: in.loc,
				Text:     strings.TrimRight(text, "\r\n"),
			}
			return in.Last, nil
		}
		if !errors.Is(err, io.EOF) {
			return Line{}, err
		}
		in.closeIn()
	}
}

// Close closes the current and any queued streams.
func (in *Input) Close() (err error) {
	if cerr := in.closeIn(); err == nil {
		err = cerr
	}
	for _, r := range in.Queue {
		if cl, ok := r.(io.Closer); ok {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}
	}
	in.Queue = nil
	return err
}

func (in *Input) closeIn() (err error) {
	if cl, ok := in.cur.(io.Closer); ok {
		err = cl.Close()
	}
	in.cur = nil
	in.br = nil
	return err
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]
	in.cur = r
	if br, ok := r.(*bufio.Reader); ok {
		in.br = br
	} else {
		in.br = bufio.NewReader(r)
	}
	in.loc = Location{Name: nameOf(r)}
	return true
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return ""
}
