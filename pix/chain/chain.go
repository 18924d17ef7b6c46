package chain

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang/glog"

	"github.com/cwbudde/algo-pix/pix/buffer"
	"github.com/cwbudde/algo-pix/pix/core"
)

// ErrUnknownStage is returned when a node references an unregistered stage type.
var ErrUnknownStage = errors.New("chain: unknown stage type")

type node struct {
	params Params
	stage  Stage
}

// Chain applies its stages in order, each to the output of the previous one.
type Chain struct {
	registry *Registry
	opts     []core.Option
	nodes    []node
}

// New creates an empty Chain. opts are passed to every stage.
func New(registry *Registry, opts ...core.Option) *Chain {
	return &Chain{registry: registry, opts: opts}
}

// Len returns the number of stages, bypassed ones included.
func (c *Chain) Len() int { return len(c.nodes) }

// Append builds a stage from p and adds it to the end of the chain.
func (c *Chain) Append(p Params) error {
	factory := c.registry.Lookup(p.Type)
	if factory == nil {
		return fmt.Errorf("%w: %q", ErrUnknownStage, p.Type)
	}

	stage, err := factory(p)
	if err != nil {
		return fmt.Errorf("chain: configure stage %q (%s): %w", p.ID, p.Type, err)
	}

	c.nodes = append(c.nodes, node{params: p, stage: stage})
	return nil
}

// jsonNode is one element of the JSON stage list.
type jsonNode struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	Bypassed bool           `json:"bypassed"`
	Params   map[string]any `json:"params"`
}

// LoadJSON replaces the chain with the stages of a JSON array. On error the
// chain is left unchanged.
func (c *Chain) LoadJSON(data []byte) error {
	var raw []jsonNode
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("chain: invalid json: %w", err)
	}

	next := &Chain{registry: c.registry, opts: c.opts}
	for i, n := range raw {
		id := n.ID
		if id == "" {
			id = fmt.Sprintf("%s-%d", n.Type, i)
		}
		num, str := parseNodeParams(n.Params)
		err := next.Append(Params{
			ID:       id,
			Type:     n.Type,
			Bypassed: n.Bypassed,
			Num:      num,
			Str:      str,
		})
		if err != nil {
			return err
		}
	}

	c.nodes = next.nodes
	return nil
}

// Process runs every active stage on src. With no active stage it returns
// a copy of src.
func (c *Chain) Process(src *buffer.Buffer) (*buffer.Buffer, error) {
	if src == nil {
		return nil, errors.New("chain: nil buffer")
	}

	cur := src.Clone()
	for i, n := range c.nodes {
		if n.params.Bypassed {
			continue
		}

		start := time.Now()
		out, err := n.stage.Apply(cur, c.opts...)
		if err != nil {
			return nil, fmt.Errorf("chain: stage %d %q (%s): %w", i, n.params.ID, n.params.Type, err)
		}
		if glog.V(1) {
			glog.Infof("chain: stage %d %s %v -> %v in %v", i, n.params.Type, cur.Shape(), out.Shape(), time.Since(start))
		}
		cur = out
	}
	return cur, nil
}
