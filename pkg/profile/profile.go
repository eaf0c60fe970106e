package profile

import (
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-chain-profile/internal/log"
	"github.com/askiada/go-chain-profile/pkg/chain"
)

var ErrCallbackMustBeSet = errors.New("callback must be set")

// Profile routes values between a handler and an item through two chains.
// Its configuration is immutable once created.
type Profile struct {
	callback  Callback
	config    Config
	toItem    chain.Chain
	toChannel chain.Chain
	executor  *chain.Executor

	executorOpts []chain.ExecutorOption
	logger       *slog.Logger
	metrics      *Metrics
}

// New creates a profile from a decoded configuration.
func New(callback Callback, cfg Config, resolver chain.Resolver, opts ...Option) (*Profile, error) {
	if callback == nil {
		return nil, ErrCallbackMustBeSet
	}

	p := &Profile{
		callback:  callback,
		config:    cfg,
		toItem:    chain.Parse(cfg.ToItem),
		toChannel: chain.Parse(cfg.ToChannel),
		logger:    log.WithComponent("profile"),
	}
	for _, opt := range opts {
		opt(p)
	}

	executor, err := chain.NewExecutor(resolver, p.executorOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create chain executor")
	}
	p.executor = executor

	return p, nil
}

// NewFromConfiguration creates a profile from a framework configuration map.
func NewFromConfiguration(callback Callback, configuration map[string]any, resolver chain.Resolver, opts ...Option) (*Profile, error) {
	cfg, err := DecodeConfig(configuration)
	if err != nil {
		return nil, err
	}

	return New(callback, cfg, resolver, opts...)
}

// Config returns the configuration of the profile.
func (p *Profile) Config() Config {
	return p.config
}

// OnStateUpdateFromHandler transforms a state reported by the handler and sends it to the item.
func (p *Profile) OnStateUpdateFromHandler(state State) {
	value, ok := p.transform(directionStateFromHandler, p.toItem, state)
	if !ok {
		p.onFailure(directionStateFromHandler)
		return
	}
	if value == nil {
		p.callback.SendUpdate(state)
	} else {
		p.callback.SendUpdate(*value)
	}
	p.metrics.observeEvent(directionStateFromHandler, outcomeForwarded)
}

// OnCommandFromHandler transforms a command issued by the handler and sends it to the item.
func (p *Profile) OnCommandFromHandler(command Command) {
	value, ok := p.transform(directionCommandFromHandler, p.toItem, command)
	if !ok {
		p.onFailure(directionCommandFromHandler)
		return
	}
	if value == nil {
		p.callback.SendCommand(command)
	} else {
		p.callback.SendCommand(*value)
	}
	p.metrics.observeEvent(directionCommandFromHandler, outcomeForwarded)
}

// OnCommandFromItem transforms a command issued by the item and sends it to the handler.
func (p *Profile) OnCommandFromItem(command Command) {
	value, ok := p.transform(directionCommandFromItem, p.toChannel, command)
	if !ok {
		p.onFailure(directionCommandFromItem)
		return
	}
	if value == nil {
		p.callback.HandleCommand(command)
	} else {
		p.callback.HandleCommand(*value)
	}
	p.metrics.observeEvent(directionCommandFromItem, outcomeForwarded)
}

// OnStateUpdateFromItem ignores the state. Items never push states toward the handler.
func (p *Profile) OnStateUpdateFromItem(state State) {
	p.logger.Debug("ignoring state update from item", slog.String("state", typeString(state)))
	p.metrics.observeEvent(directionStateFromItem, outcomeIgnored)
}

// transform runs c over the string form of value.
// A nil result with ok set means the chain is the identity and value must be forwarded unchanged.
func (p *Profile) transform(d direction, c chain.Chain, value Type) (*StringType, bool) {
	if c.IsIdentity() {
		return nil, true
	}

	input := typeString(value)
	start := time.Now()
	out, err := p.executor.Execute(c, input)
	p.metrics.observeChain(d, time.Since(start))
	if err != nil {
		p.logger.Warn("chain transformation failed",
			slog.String("direction", string(d)),
			slog.String("pattern", c.String()),
			slog.String("input", input),
			slog.Bool("undef_on_error", p.config.UndefOnError),
			slog.String("error", err.Error()),
		)
		return nil, false
	}

	result := StringType(out)
	return &result, true
}

// onFailure drops the value or degrades it to an UNDEF state update toward the item.
// UNDEF only exists as a state, so failed commands also end up as state updates.
func (p *Profile) onFailure(d direction) {
	if !p.config.UndefOnError {
		p.metrics.observeEvent(d, outcomeSuppressed)
		return
	}
	p.callback.SendUpdate(UNDEF)
	p.metrics.observeEvent(d, outcomeUndef)
}

func typeString(value Type) string {
	if value == nil {
		return ""
	}
	return value.String()
}
