package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/askiada/go-chain-profile/internal/log"
	"github.com/askiada/go-chain-profile/pkg/profile"
)

type eventKind string

const (
	kindHandlerState   eventKind = "handler-state"
	kindHandlerCommand eventKind = "handler-command"
	kindItemCommand    eventKind = "item-command"
	kindItemState      eventKind = "item-state"
)

var errUnknownEventKind = errors.New("unknown event kind")

type event struct {
	kind  eventKind
	value string
}

// parseEvent reads "<kind> <value>". The value is everything after the first space and can be empty.
func parseEvent(line string) (event, error) {
	kind, value, _ := strings.Cut(strings.TrimSpace(line), " ")
	ev := event{kind: eventKind(kind), value: value}
	switch ev.kind {
	case kindHandlerState, kindHandlerCommand, kindItemCommand, kindItemState:
		return ev, nil
	}

	return event{}, errors.Wrapf(errUnknownEventKind, "%q", kind)
}

func toState(value string) profile.State {
	switch value {
	case profile.UNDEF.String():
		return profile.UNDEF
	case profile.NULL.String():
		return profile.NULL
	}
	return profile.StringType(value)
}

// bufferCallback collects the emissions of one profile for the event being dispatched.
type bufferCallback struct {
	lines []string
}

func (b *bufferCallback) add(method string, value profile.Type) {
	b.lines = append(b.lines, method+"\t"+value.String())
}

func (b *bufferCallback) SendUpdate(state profile.State) { b.add("sendUpdate", state) }

func (b *bufferCallback) SendCommand(command profile.Command) { b.add("sendCommand", command) }

func (b *bufferCallback) HandleCommand(command profile.Command) { b.add("handleCommand", command) }

func (b *bufferCallback) flush() []string {
	lines := b.lines
	b.lines = nil
	return lines
}

type runner struct {
	names       []string
	profiles    []*profile.Profile
	buffers     []*bufferCallback
	concurrency int
}

func newRunner(cfg *FileConfig, factory *profile.Factory, concurrency int) (*runner, error) {
	r := &runner{concurrency: concurrency}
	for _, pc := range cfg.Profiles {
		buffer := &bufferCallback{}
		p, err := factory.Create(pc.Type, buffer, pc.Configuration, profile.WithLogger(log.WithProfile(pc.Name)))
		if err != nil {
			return nil, errors.Wrapf(err, "unable to create profile %q", pc.Name)
		}
		r.names = append(r.names, pc.Name)
		r.profiles = append(r.profiles, p)
		r.buffers = append(r.buffers, buffer)
	}

	return r, nil
}

// dispatch hands ev to every profile concurrently and returns the emissions in profile order.
func (r *runner) dispatch(ctx context.Context, ev event) ([]string, error) {
	errGrp, dCtx := errgroup.WithContext(ctx)
	if r.concurrency > 0 {
		errGrp.SetLimit(r.concurrency)
	}
	for i := range r.profiles {
		idx := i
		errGrp.Go(func() error {
			if err := dCtx.Err(); err != nil {
				return err
			}
			deliver(r.profiles[idx], ev)
			return nil
		})
	}
	if err := errGrp.Wait(); err != nil {
		return nil, err
	}

	var out []string
	for i, buffer := range r.buffers {
		for _, line := range buffer.flush() {
			out = append(out, r.names[i]+"\t"+line)
		}
	}

	return out, nil
}

func deliver(p *profile.Profile, ev event) {
	switch ev.kind {
	case kindHandlerState:
		p.OnStateUpdateFromHandler(toState(ev.value))
	case kindHandlerCommand:
		p.OnCommandFromHandler(profile.StringType(ev.value))
	case kindItemCommand:
		p.OnCommandFromItem(profile.StringType(ev.value))
	case kindItemState:
		p.OnStateUpdateFromItem(toState(ev.value))
	}
}

// run reads one event per line from in and writes the emissions to out.
// Blank lines and lines starting with # are skipped.
func (r *runner) run(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		ev, err := parseEvent(line)
		if err != nil {
			return errors.Wrapf(err, "line %d", lineNumber)
		}
		lines, err := r.dispatch(ctx, ev)
		if err != nil {
			return errors.Wrapf(err, "line %d", lineNumber)
		}
		for _, l := range lines {
			if _, err := fmt.Fprintln(out, l); err != nil {
				return errors.Wrap(err, "unable to write output")
			}
		}
	}

	return errors.Wrap(scanner.Err(), "unable to read events")
}
