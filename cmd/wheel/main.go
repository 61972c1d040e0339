// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command wheel spins the game wheel from a terminal. It talks to the API
// when it can and falls back to a local cache when it can't.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"maps"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/danielhkuo/game-wheel/apperr"
	"github.com/danielhkuo/game-wheel/cliparse"
	"github.com/danielhkuo/game-wheel/client"
	"github.com/danielhkuo/game-wheel/picker"
)

const usage = `usage: wheel [-api URL] [-cache DIR] [-list NAME] <command>

commands:
  lists                  show every list and its size
  spin                   spin the active list and queue the result
  queue                  show the queued item
  clear                  clear the queue
  suggest <type> <name>  suggest a new entry
  pending                show pending suggestions
  approve <id>           approve a suggestion
  reject <id>            reject a suggestion
`

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	animate := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if err := run(ctx, os.Args[1:], os.Stdout, animate); err != nil {
		fmt.Fprintln(os.Stderr, "wheel:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer, animate bool) error {
	cfg, rest, err := cliparse.ParseClientFlags(args)
	if err != nil {
		return err
	}
	if len(rest) == 0 {
		fmt.Fprint(out, usage)
		return errors.New("missing command")
	}

	cache, err := client.OpenLocalCache(ctx, cfg.CacheDir)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer cache.Close()

	api := client.NewAPI(cfg.APIURL, &http.Client{Timeout: 10 * time.Second})
	ctrl := client.NewController(api, cache, picker.New())
	sess := client.NewSession(cfg.List)

	cmd, operands := rest[0], rest[1:]
	switch cmd {
	case "lists":
		if err := ctrl.Load(ctx, sess); err != nil {
			return err
		}
		lists := sess.Lists()
		for _, name := range slices.Sorted(maps.Keys(lists)) {
			fmt.Fprintf(out, "%-10s %s\n", name, humanize.Comma(int64(len(lists[name]))))
		}
		if sess.Offline() {
			fmt.Fprintln(out, "(offline: showing local cache)")
		}

	case "spin":
		if err := ctrl.Load(ctx, sess); err != nil {
			return err
		}
		if err := ctrl.SwitchList(sess, cfg.List); err != nil {
			return err
		}
		outcome, err := ctrl.Spin(ctx, sess)
		if errors.Is(err, apperr.ErrEmptyList) {
			return fmt.Errorf("list %q is empty, nothing to spin", sess.ActiveList())
		}
		if err != nil {
			return err
		}
		lists := sess.Lists()
		for i, hop := range outcome.Path {
			if animate {
				playStrip(out, slotFrames(lists[hop.List], hop.Index, 2))
			}
			if i < len(outcome.Path)-1 {
				fmt.Fprintf(out, "%s → switching to %s\n", hop.Value, outcome.Path[i+1].List)
			}
		}
		fmt.Fprintf(out, "picked: %s (%s)\n", outcome.Value, outcome.List)

	case "queue":
		q, err := ctrl.Queued(ctx)
		if err != nil {
			return err
		}
		if q.Current == nil {
			fmt.Fprintln(out, "queue is empty")
		} else {
			fmt.Fprintln(out, *q.Current)
		}

	case "clear":
		if err := ctrl.ClearQueue(ctx); err != nil {
			return err
		}
		fmt.Fprintln(out, "queue cleared")

	case "suggest":
		if len(operands) < 2 {
			return errors.New("usage: wheel suggest <type> <name>")
		}
		s, err := ctrl.Suggest(ctx, operands[0], strings.Join(operands[1:], " "))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "suggested %q for %s (id %s)\n", s.Name, s.Type, s.ID)

	case "pending":
		pending, err := ctrl.Pending(ctx)
		if err != nil {
			return err
		}
		if len(pending) == 0 {
			fmt.Fprintln(out, "no pending suggestions")
		}
		for _, s := range pending {
			fmt.Fprintf(out, "%s  %-8s %s  (%s)\n", s.ID, s.Type, s.Name, humanize.Time(s.Timestamp))
		}

	case "approve", "reject":
		if len(operands) != 1 {
			return fmt.Errorf("usage: wheel %s <id>", cmd)
		}
		resolve := ctrl.Approve
		if cmd == "reject" {
			resolve = ctrl.Reject
		}
		s, err := resolve(ctx, operands[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s %q (%s)\n", s.Status, s.Name, s.Type)

	default:
		fmt.Fprint(out, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}
