// Command gen_session_expects writes a function wrapping every expect* and
// with* method of sessionTestCase, so that tests may compose them with
// sessionTestCase.apply:
//
//	go run scripts/gen_session_expects.go -- session_test.go expects_test.go
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"text/template"
	"time"

	"golang.org/x/sync/errgroup"
)

var builderMethod = regexp.MustCompile(`^func \(st sessionTestCase\) (expect|with)(\w+)\((.+)\) sessionTestCase \{$`)

type builder struct {
	Kind, What string
	Params     string
	Args       string
}

func main() {
	flag.Parse()
	if flag.NArg() != 2 {
		log.Fatalln("usage: gen_session_expects <source> <dest>")
	}
	src, dest := flag.Arg(0), flag.Arg(1)

	builders, err := scanBuilders(src)
	if err != nil {
		log.Fatalln(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := writeFormatted(ctx, dest, func(w io.Writer) error {
		return expectsFile.Execute(w, struct {
			Source, Dest string
			Builders     []builder
		}{src, dest, builders})
	}); err != nil {
		log.Fatalln(err)
	}
}

func scanBuilders(name string) (builders []builder, err error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		match := builderMethod.FindStringSubmatch(sc.Text())
		if match == nil {
			continue
		}
		b := builder{Kind: match[1], What: match[2], Params: match[3]}
		var args []string
		for _, param := range strings.Split(b.Params, ",") {
			fields := strings.Fields(param)
			if len(fields) != 2 {
				return nil, fmt.Errorf("%v: unsupported parameter list %q", b.Kind+b.What, b.Params)
			}
			arg := fields[0]
			if strings.HasPrefix(fields[1], "...") {
				arg += "..."
			}
			args = append(args, arg)
		}
		b.Args = strings.Join(args, ", ")
		builders = append(builders, b)
	}
	return builders, sc.Err()
}

// writeFormatted streams render's output through gofmt into the named file.
func writeFormatted(ctx context.Context, name string, render func(w io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, "gofmt")
	cmd.Stdout = f
	cmd.Stderr = os.Stderr
	stdin, err := cmd.StdinPipe()
	if err == nil {
		err = cmd.Start()
	}
	if err != nil {
		f.Close()
		return err
	}

	var eg errgroup.Group
	eg.Go(func() error {
		defer stdin.Close()
		return render(stdin)
	})
	eg.Go(func() error {
		if err := cmd.Wait(); err != nil {
			return fmt.Errorf("gofmt failed: %w", err)
		}
		return nil
	})
	err = eg.Wait()
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

var expectsFile = template.Must(template.New("expects").Parse(`package main

// @generated from {{ .Source }}

//go:generate go run scripts/gen_session_expects.go -- {{ .Source }} {{ .Dest }}
{{ range .Builders }}
func {{ .Kind }}Session{{ .What }}({{ .Params }}) func(sessionTestCase) sessionTestCase {
	return func(st sessionTestCase) sessionTestCase {
		return st.{{ .Kind }}{{ .What }}({{ .Args }})
	}
}
{{ end }}`))
