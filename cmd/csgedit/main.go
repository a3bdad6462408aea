// Command csgedit is a small line-oriented driver wiring one edit
// session to the dispatch layer: it reads an ELL's round-trip
// parameter text, applies a sequence of edit commands read from
// stdin, and writes the resulting parameter text back out. It exists
// to exercise the core end to end the way a host application would,
// not as a replacement for one.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/csgedit/csgedit/internal/config"
	"github.com/csgedit/csgedit/internal/dispatch"
	"github.com/csgedit/csgedit/internal/editflag"
	"github.com/csgedit/csgedit/internal/engine"
	"github.com/csgedit/csgedit/internal/geom/vecmat"
	"github.com/csgedit/csgedit/internal/logging"
	"github.com/csgedit/csgedit/internal/primitive/scalar"
	"github.com/csgedit/csgedit/internal/session"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to a TOML defaults file")
	inPath := flag.String("in", "", "path to an ELL parameter text file (defaults to a unit sphere)")
	outPath := flag.String("out", "", "path to write the resulting parameter text (defaults to stdout)")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	cfg, err := config.Default(), error(nil)
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "csgedit: %v\n", err)
			return 1
		}
	}

	logger := logging.New(logging.Config{Level: parseLevel(*logLevel), Output: os.Stderr, Prefix: "csgedit"})

	form, err := loadEll(*inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "csgedit: %v\n", err)
		return 1
	}

	sess := session.New(form, editflag.KindELL, nil, logger)
	sess.Tol = cfg.Tol
	sess.RotateAbout = cfg.RotateAbout
	if err := dispatch.BuildMenu(sess); err != nil {
		fmt.Fprintf(os.Stderr, "csgedit: %v\n", err)
		return 1
	}
	view := engine.View{
		View2Model:    vecmat.Identity(),
		Model2View:    vecmat.Identity(),
		Model2ObjView: vecmat.Identity(),
		Scale:         1,
		RotateAbout:   cfg.RotateAbout,
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := runCommand(sess, dispatch.Context{View: view}, line); err != nil {
			fmt.Fprintf(os.Stderr, "csgedit: %v\n", err)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "csgedit: reading stdin: %v\n", err)
		return 1
	}

	out := form.WriteParams(sess.Base2Local)
	if *outPath == "" {
		fmt.Print(out)
		return 0
	}
	if err := os.WriteFile(*outPath, []byte(out), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "csgedit: writing %s: %v\n", *outPath, err)
		return 1
	}
	return 0
}

func loadEll(path string) (*scalar.Ell, error) {
	if path == "" {
		return &scalar.Ell{
			A: vecmat.Vec3{X: 1},
			B: vecmat.Vec3{Y: 1},
			C: vecmat.Vec3{Z: 1},
		}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return scalar.ReadEllParams(string(data), 1)
}

// runCommand maps one input line to a session edit flag plus pending
// parameters, then dispatches it. Supported verbs: scale F,
// translate X Y Z, rotate X Y Z, scale-a F, scale-b F, scale-c F.
func runCommand(sess *session.Session, ctx dispatch.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	verb, args := fields[0], fields[1:]

	nums := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return fmt.Errorf("%s: %q is not a number", verb, a)
		}
		nums[i] = v
	}

	switch verb {
	case "scale":
		sess.EditFlag = editflag.Flag{Kind: editflag.KindGeneric, Op: editflag.GenericScale}
		sess.SetParams(nums...)
	case "translate":
		sess.EditFlag = editflag.Flag{Kind: editflag.KindGeneric, Op: editflag.GenericTranslate}
		sess.SetParams(nums...)
	case "rotate":
		sess.EditFlag = editflag.Flag{Kind: editflag.KindGeneric, Op: editflag.GenericRotate}
		sess.SetParams(nums...)
	case "scale-a":
		sess.EditFlag = editflag.Flag{Kind: editflag.KindELL, Op: editflag.EllScaleA}
		sess.SetParams(nums...)
	case "scale-b":
		sess.EditFlag = editflag.Flag{Kind: editflag.KindELL, Op: editflag.EllScaleB}
		sess.SetParams(nums...)
	case "scale-c":
		sess.EditFlag = editflag.Flag{Kind: editflag.KindELL, Op: editflag.EllScaleC}
		sess.SetParams(nums...)
	default:
		return fmt.Errorf("unrecognized command %q", verb)
	}

	defer sess.ClearParams()
	return dispatch.Dispatch(sess, ctx)
}

func parseLevel(s string) logging.Level {
	switch s {
	case "debug":
		return logging.LevelDebug
	case "warn":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}
