// Command framecat decodes a STOMP-like frame stream from a TCP
// connection or stdin and prints each frame as it arrives.
package main

import (
	"fmt"
	"io"
	"net"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	stompio "github.com/googollee/go-stomp.io"
	"github.com/googollee/go-stomp.io/logger"
)

// Set via ldflags at build time.
var version = "dev"

var (
	flagAddr       string
	flagConfigPath string
	flagShowBody   bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "framecat",
		Short:         "Decode a frame stream and print its frames",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flagConfigPath)
			if err != nil {
				return err
			}
			// Flag > config file.
			if flagAddr != "" {
				cfg.Addr = flagAddr
			}
			if cmd.Flags().Changed("body") {
				cfg.ShowBody = flagShowBody
			}
			return run(cmd.OutOrStdout(), cfg)
		},
	}

	root.Flags().StringVar(&flagAddr, "addr", "", "host:port to connect to (default: read stdin)")
	root.Flags().StringVar(&flagConfigPath, "config", "", "path to a framecat config file")
	root.Flags().BoolVar(&flagShowBody, "body", true, "print frame bodies")

	root.AddCommand(newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print framecat version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("framecat/%s (%s-%s)\n", version, runtime.GOOS, runtime.GOARCH)
		},
	}
}

func run(out io.Writer, cfg config) error {
	var in io.Reader = os.Stdin
	if cfg.Addr != "" {
		conn, err := net.Dial("tcp", cfg.Addr)
		if err != nil {
			return fmt.Errorf("connect %s: %w", cfg.Addr, err)
		}
		defer conn.Close()
		in = conn
	}

	p := &printer{out: out, showBody: cfg.ShowBody}
	var streamErr error
	stream := stompio.NewStream()
	stream.RequestFrames(p.enqueue, func(err error) {
		if err != stompio.ErrNoFrame {
			streamErr = err
		}
	})

	buf := make([]byte, 4096)
	for streamErr == nil {
		n, err := in.Read(buf)
		if n > 0 {
			if _, werr := stream.Write(buf[:n]); werr != nil {
				return fmt.Errorf("feed stream: %w", werr)
			}
			p.flush()
		}
		if err == io.EOF {
			stream.End()
			break
		}
		if err != nil {
			stream.Fail(err)
			return fmt.Errorf("read input: %w", err)
		}
	}
	p.flush()

	if streamErr != nil {
		return fmt.Errorf("decode stream: %w", streamErr)
	}
	logger.Debug("stream drained", "frames", p.printed)
	return nil
}

// printer accumulates delivered frames and prints each one once its
// body has fully streamed in, preserving arrival order.
type printer struct {
	out      io.Writer
	showBody bool
	printed  int

	queue []*pendingFrame
}

type pendingFrame struct {
	frame *stompio.Frame
	body  []byte
}

func (p *printer) enqueue(f *stompio.Frame) {
	p.queue = append(p.queue, &pendingFrame{frame: f})
}

func (p *printer) flush() {
	for len(p.queue) > 0 {
		pf := p.queue[0]
		complete := false
		for {
			chunk, err := pf.frame.Body().Next()
			if err == nil {
				pf.body = append(pf.body, chunk...)
				continue
			}
			if err == io.EOF {
				complete = true
			} else if err != stompio.ErrNoData {
				fmt.Fprintf(p.out, "<body error: %v>\n", err)
				complete = true
			}
			break
		}
		if !complete {
			return
		}
		p.print(pf)
		p.queue = p.queue[1:]
	}
}

func (p *printer) print(pf *pendingFrame) {
	fmt.Fprintln(p.out, pf.frame.Command)
	for name, value := range pf.frame.Header {
		fmt.Fprintf(p.out, "%s: %s\n", name, value)
	}
	if p.showBody && len(pf.body) > 0 {
		fmt.Fprintf(p.out, "\n%s\n", pf.body)
	} else {
		fmt.Fprintf(p.out, "<%d body bytes>\n", len(pf.body))
	}
	fmt.Fprintln(p.out, "----")
	p.printed++
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
