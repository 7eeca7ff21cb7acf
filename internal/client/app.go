package client

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/MKhiriev/go-seal-doc/internal/logger"
	"github.com/MKhiriev/go-seal-doc/internal/service"
	"github.com/atotto/clipboard"
	"golang.org/x/term"
)

const usage = `usage: seal-doc [flags] <command> [arguments]

commands:
  share [-copy] <file|->                      encrypt a markdown file locally and upload it
  open [-remote] [-password p] [-o file] <id|url>
                                              download and decrypt a document
  info                                        show server version and expiry window

global flags:
  -s url      server base URL (env ADAPTER_ADDRESS)
`

// App runs a single client command.
type App struct {
	documents service.ClientDocumentService
	args      []string

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	copyText     func(string) error
	readPassword func() (string, error)

	logger *logger.Logger
}

// Option customises [NewApp].
type Option func(*App)

// WithIO replaces the process standard streams.
func WithIO(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(a *App) {
		a.stdin = stdin
		a.stdout = stdout
		a.stderr = stderr
	}
}

// WithClipboard replaces the system clipboard used by share -copy.
func WithClipboard(copyText func(string) error) Option {
	return func(a *App) { a.copyText = copyText }
}

// WithPasswordPrompt replaces the interactive password prompt of open.
func WithPasswordPrompt(readPassword func() (string, error)) Option {
	return func(a *App) { a.readPassword = readPassword }
}

func NewApp(services *service.ClientServices, args []string, logger *logger.Logger, opts ...Option) (*App, error) {
	if services == nil || services.DocumentService == nil {
		return nil, errors.New("client services are not initialised")
	}

	a := &App{
		documents: services.DocumentService,
		args:      args,
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		copyText:  clipboard.WriteAll,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.readPassword == nil {
		a.readPassword = a.promptPassword
	}

	return a, nil
}

// Run implements [Client].
func (a *App) Run(ctx context.Context) error {
	if len(a.args) == 0 {
		fmt.Fprint(a.stderr, usage)
		return ErrUsage
	}

	cmd, args := a.args[0], a.args[1:]
	switch cmd {
	case "share":
		return a.share(ctx, args)
	case "open":
		return a.open(ctx, args)
	case "info":
		return a.info(ctx)
	case "help", "-h", "--help":
		fmt.Fprint(a.stdout, usage)
		return nil
	default:
		fmt.Fprint(a.stderr, usage)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
}

func (a *App) share(ctx context.Context, args []string) error {
	fs := a.newFlagSet("share")
	copyPassword := fs.Bool("copy", false, "copy the password to the clipboard")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: share expects exactly one file", ErrUsage)
	}

	markdown, err := a.readSource(fs.Arg(0))
	if err != nil {
		return err
	}

	res, err := a.documents.Share(ctx, markdown)
	if err != nil {
		return fmt.Errorf("share: %w", err)
	}

	fmt.Fprintf(a.stdout, "Document ID: %s\n", res.ID)
	fmt.Fprintf(a.stdout, "Password:    %s\n", res.Password)
	fmt.Fprintf(a.stdout, "Read URL:    %s\n", res.ReadURL)
	if res.Deduplicated {
		fmt.Fprintln(a.stdout, "An identical live document already existed; its link was reused.")
	}

	if *copyPassword {
		if err = a.copyText(res.Password); err != nil {
			a.logger.Warn().Err(err).Str("func", "App.share").Msg("failed to copy password to clipboard")
			fmt.Fprintln(a.stderr, "Could not copy the password to the clipboard.")
		} else {
			fmt.Fprintln(a.stdout, "Password copied to the clipboard.")
		}
	}

	return nil
}

func (a *App) open(ctx context.Context, args []string) error {
	fs := a.newFlagSet("open")
	remote := fs.Bool("remote", false, "let the server decrypt the document")
	password := fs.String("password", "", "document password (prompted when empty)")
	output := fs.String("o", "", "write the markdown to a file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: open expects a document id or url", ErrUsage)
	}

	id, err := parseDocumentRef(fs.Arg(0))
	if err != nil {
		return err
	}

	if *password == "" {
		if *password, err = a.readPassword(); err != nil {
			return fmt.Errorf("read password: %w", err)
		}
	}

	var markdown string
	if *remote {
		markdown, err = a.documents.OpenRemote(ctx, id, *password)
	} else {
		markdown, err = a.documents.Open(ctx, id, *password)
	}
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}

	if *output != "" {
		if err = os.WriteFile(*output, []byte(markdown), 0o600); err != nil {
			return fmt.Errorf("write %s: %w", *output, err)
		}
		return nil
	}

	_, err = fmt.Fprintln(a.stdout, markdown)
	return err
}

func (a *App) info(ctx context.Context) error {
	info, err := a.documents.ServerInfo(ctx)
	if err != nil {
		return fmt.Errorf("info: %w", err)
	}

	fmt.Fprintf(a.stdout, "Server version: %s\n", info.Version)
	fmt.Fprintf(a.stdout, "Expiry window:  %s\n", info.ExpiryWindow)
	fmt.Fprintf(a.stdout, "Dedupe mode:    %s\n", info.DedupeMode)
	return nil
}

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

// readSource reads a file, or standard input for "-".
func (a *App) readSource(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(a.stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}

// promptPassword reads without echo on a terminal and takes the first line
// of standard input otherwise.
func (a *App) promptPassword() (string, error) {
	if f, ok := a.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(a.stderr, "Password: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(a.stderr)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	}

	line, err := bufio.NewReader(a.stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// parseDocumentRef accepts a bare identifier or a read URL such as
// https://host/r/<id>.
func parseDocumentRef(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if !strings.Contains(ref, "/") {
		if ref == "" {
			return "", fmt.Errorf("%w: empty document id", ErrUsage)
		}
		return ref, nil
	}

	u, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUsage, err)
	}

	id := u.Path[strings.LastIndex(u.Path, "/")+1:]
	if id == "" {
		return "", fmt.Errorf("%w: no document id in %q", ErrUsage, ref)
	}
	return id, nil
}
