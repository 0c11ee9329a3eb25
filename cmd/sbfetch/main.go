package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/WhileEndless/go-sbnet/internal/config"
	"github.com/WhileEndless/go-sbnet/internal/logger"
	"github.com/WhileEndless/go-sbnet/pkg/rawhttp"
	"github.com/WhileEndless/go-sbnet/pkg/response"
	"github.com/WhileEndless/go-sbnet/pkg/version"
	"github.com/alecthomas/kong"
	"go.uber.org/zap"
)

type cli struct {
	Headers bool             `short:"i" help:"Print response headers before the body"`
	Decode  bool             `help:"Undo the response Content-Encoding before printing the body"`
	Version kong.VersionFlag `help:"Print version and exit"`

	URL string `arg:"" help:"http:// URL to fetch"`
}

func main() {
	var args cli
	kctx := kong.Parse(&args,
		kong.Name("sbfetch"),
		kong.Description("Fetch a resource with a single HTTP/1.1 GET."),
		kong.UsageOnError(),
		kong.Vars{"version": version.GetVersion()},
	)

	if err := run(args, os.Stdout); err != nil {
		kctx.Errorf("%s", err.Error())
		os.Exit(1)
	}
}

func run(args cli, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := rawhttp.NewClient(rawhttp.Options{
		DialTimeout:    cfg.DialTimeout,
		ReadBufferSize: cfg.ReadBufferSize,
		Logger:         log,
	})

	resp, err := client.Fetch(ctx, args.URL)
	if err != nil {
		log.Debug("fetch failed", zap.String("url", args.URL), zap.Error(err))
		return err
	}

	return printResponse(out, resp, args.Headers, args.Decode)
}

func printResponse(out io.Writer, resp *response.Response, withHeaders, decode bool) error {
	if withHeaders {
		fmt.Fprintf(out, "%s %d %s\n", resp.Version(), resp.StatusCode(), resp.Reason())
		for _, h := range resp.Headers() {
			fmt.Fprintf(out, "%s: %s\n", h.Name, h.Value)
		}
		fmt.Fprintln(out)
	}

	body := []byte(resp.Body())
	if decode {
		decoded, err := resp.DecodedBody()
		if err != nil {
			return fmt.Errorf("decode body: %w", err)
		}
		body = decoded
	}

	_, err := out.Write(body)
	return err
}
