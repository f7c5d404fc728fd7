package services

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/DanielPopoola/paygate/internal/application"
	"github.com/DanielPopoola/paygate/internal/domain"
)

// Selection strategies
const (
	StrategyExplicit   = "explicit"
	StrategyRoundRobin = "round_robin"
	StrategyWeighted   = "weighted"
)

// GatewayRegistry holds the configured adapters and decides which one serves a request.
type GatewayRegistry struct {
	gateways       map[string]application.Gateway
	names          []string
	strategy       string
	defaultGateway string
	weights        map[string]int
	totalWeight    int

	counter atomic.Uint64
	mu      sync.Mutex
	rnd     *rand.Rand
}

type RegistryOption func(*GatewayRegistry)

func WithRandSource(src rand.Source) RegistryOption {
	return func(r *GatewayRegistry) {
		r.rnd = rand.New(src)
	}
}

func NewGatewayRegistry(
	strategy string,
	defaultGateway string,
	weights map[string]int,
	gateways []application.Gateway,
	opts ...RegistryOption,
) (*GatewayRegistry, error) {
	r := &GatewayRegistry{
		gateways:       make(map[string]application.Gateway, len(gateways)),
		strategy:       strings.ToLower(strategy),
		defaultGateway: normalizeName(defaultGateway),
		weights:        make(map[string]int),
		rnd:            rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(r)
	}

	if len(gateways) == 0 {
		return nil, fmt.Errorf("at least one gateway must be configured")
	}

	for _, g := range gateways {
		name := normalizeName(g.Name())
		if _, dup := r.gateways[name]; dup {
			return nil, fmt.Errorf("gateway %q registered twice", name)
		}
		r.gateways[name] = g
		r.names = append(r.names, name)
	}
	slices.Sort(r.names)

	switch r.strategy {
	case "", StrategyExplicit:
		r.strategy = StrategyExplicit
		if r.defaultGateway == "" {
			r.defaultGateway = r.names[0]
		}
		if _, ok := r.gateways[r.defaultGateway]; !ok {
			return nil, domain.NewUnknownGatewayError(r.defaultGateway)
		}
	case StrategyRoundRobin:
	case StrategyWeighted:
		for name, w := range weights {
			name = normalizeName(name)
			if _, ok := r.gateways[name]; !ok {
				return nil, domain.NewUnknownGatewayError(name)
			}
			if w < 0 {
				return nil, fmt.Errorf("weight for %s must not be negative", name)
			}
			r.weights[name] = w
			r.totalWeight += w
		}
		if r.totalWeight == 0 {
			return nil, fmt.Errorf("weighted strategy needs at least one positive weight")
		}
	default:
		return nil, fmt.Errorf("unknown routing strategy %q", strategy)
	}

	return r, nil
}

// SelectGateway returns the named gateway when the caller asked for one, otherwise applies the
// configured strategy.
func (r *GatewayRegistry) SelectGateway(criteria application.SelectionCriteria) (application.Gateway, error) {
	if criteria.GatewayName != "" {
		return r.Get(criteria.GatewayName)
	}

	switch r.strategy {
	case StrategyRoundRobin:
		n := r.counter.Add(1) - 1
		return r.gateways[r.names[n%uint64(len(r.names))]], nil
	case StrategyWeighted:
		return r.gateways[r.pickWeighted()], nil
	default:
		return r.gateways[r.defaultGateway], nil
	}
}

func (r *GatewayRegistry) Get(name string) (application.Gateway, error) {
	g, ok := r.gateways[normalizeName(name)]
	if !ok {
		return nil, domain.NewUnknownGatewayError(name)
	}
	return g, nil
}

// Names lists registered gateways in sorted order.
func (r *GatewayRegistry) Names() []string {
	return slices.Clone(r.names)
}

func (r *GatewayRegistry) pickWeighted() string {
	r.mu.Lock()
	n := r.rnd.IntN(r.totalWeight)
	r.mu.Unlock()

	for _, name := range r.names {
		w := r.weights[name]
		if n < w {
			return name
		}
		n -= w
	}
	return r.names[len(r.names)-1]
}

// ParseWeights reads "flutterwave:70,paystack:30".
func ParseWeights(raw string) (map[string]int, error) {
	weights := make(map[string]int)
	if strings.TrimSpace(raw) == "" {
		return weights, nil
	}
	for _, part := range strings.Split(raw, ",") {
		name, value, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("invalid weight entry %q", part)
		}
		w, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("invalid weight for %s: %w", name, err)
		}
		weights[normalizeName(name)] = w
	}
	return weights, nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
