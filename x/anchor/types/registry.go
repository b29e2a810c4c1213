package types

import (
	"strings"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// ConfigRegistry is the validated, read-only set of asset configurations with
// an index per lookup key. It is built once and never mutated, so it can be
// shared between goroutines without locking.
type ConfigRegistry struct {
	configs      []AssetConfig
	bySymbolHash map[SymbolHash]int
	byAsset      map[string]int
	byUnderlying map[string]int
	byReporter   map[string]int
}

// NewConfigRegistry validates every config and builds the lookup indexes.
// The first invalid entry aborts construction. When two entries share a key
// the first one wins that key.
func NewConfigRegistry(configs []AssetConfig) (ConfigRegistry, error) {
	r := ConfigRegistry{
		configs:      make([]AssetConfig, 0, len(configs)),
		bySymbolHash: make(map[SymbolHash]int, len(configs)),
		byAsset:      make(map[string]int, len(configs)),
		byUnderlying: make(map[string]int, len(configs)),
		byReporter:   make(map[string]int, len(configs)),
	}

	for i, config := range configs {
		if err := config.Validate(); err != nil {
			return ConfigRegistry{}, errorsmod.Wrapf(err, "token config %d", i)
		}

		config = normalizeConfig(config)
		r.configs = append(r.configs, config)

		indexOnce(r.bySymbolHash, config.SymbolHash, i)
		if config.Asset != "" {
			indexOnce(r.byAsset, config.Asset, i)
		}
		if config.Underlying != "" {
			indexOnce(r.byUnderlying, config.Underlying, i)
		}
		if config.Reporter != "" {
			indexOnce(r.byReporter, config.Reporter, i)
		}
	}

	return r, nil
}

func indexOnce[K comparable](index map[K]int, key K, i int) {
	if _, exists := index[key]; !exists {
		index[key] = i
	}
}

func normalizeConfig(c AssetConfig) AssetConfig {
	c.Asset = strings.TrimSpace(c.Asset)
	c.Underlying = strings.TrimSpace(c.Underlying)
	c.Market = strings.TrimSpace(c.Market)
	c.Reporter = strings.TrimSpace(c.Reporter)
	if c.FixedPrice.IsNil() {
		c.FixedPrice = math.ZeroUint()
	}
	if c.ReporterMultiplier.IsNil() {
		c.ReporterMultiplier = math.ZeroUint()
	}
	return c
}

// Len returns the number of configured assets.
func (r ConfigRegistry) Len() int {
	return len(r.configs)
}

// Configs returns a copy of all configs in construction order.
func (r ConfigRegistry) Configs() []AssetConfig {
	out := make([]AssetConfig, len(r.configs))
	copy(out, r.configs)
	return out
}

// ConfigAt returns the i-th config.
func (r ConfigRegistry) ConfigAt(i int) (AssetConfig, error) {
	if i < 0 || i >= len(r.configs) {
		return AssetConfig{}, errorsmod.Wrapf(ErrTokenConfigNotFound, "index %d", i)
	}
	return r.configs[i], nil
}

// ConfigBySymbol returns the config whose symbol hashes to HashSymbol(symbol).
func (r ConfigRegistry) ConfigBySymbol(symbol string) (AssetConfig, error) {
	config, err := r.ConfigBySymbolHash(HashSymbol(symbol))
	if err != nil {
		return AssetConfig{}, errorsmod.Wrapf(ErrTokenConfigNotFound, "symbol %s", symbol)
	}
	return config, nil
}

// ConfigBySymbolHash returns the config registered under symbolHash.
func (r ConfigRegistry) ConfigBySymbolHash(symbolHash SymbolHash) (AssetConfig, error) {
	if config, ok := find(r.configs, r.bySymbolHash, symbolHash); ok {
		return config, nil
	}
	return AssetConfig{}, errorsmod.Wrapf(ErrTokenConfigNotFound, "symbol hash %s", symbolHash)
}

// ConfigByAsset returns the config of the canonical asset handle.
func (r ConfigRegistry) ConfigByAsset(asset string) (AssetConfig, error) {
	if config, ok := find(r.configs, r.byAsset, strings.TrimSpace(asset)); ok {
		return config, nil
	}
	return AssetConfig{}, errorsmod.Wrapf(ErrTokenConfigNotFound, "asset %q", asset)
}

// ConfigByUnderlying returns the config whose underlying handle matches.
func (r ConfigRegistry) ConfigByUnderlying(underlying string) (AssetConfig, error) {
	if config, ok := find(r.configs, r.byUnderlying, strings.TrimSpace(underlying)); ok {
		return config, nil
	}
	return AssetConfig{}, errorsmod.Wrapf(ErrTokenConfigNotFound, "underlying %q", underlying)
}

// ConfigByReporter returns the config the reporter is allowed to post for.
// This lookup is the only authorization applied to price submissions.
func (r ConfigRegistry) ConfigByReporter(reporter string) (AssetConfig, error) {
	if config, ok := find(r.configs, r.byReporter, strings.TrimSpace(reporter)); ok {
		return config, nil
	}
	return AssetConfig{}, errorsmod.Wrapf(ErrTokenConfigNotFound, "reporter %q", reporter)
}

func find[K comparable](configs []AssetConfig, index map[K]int, key K) (AssetConfig, bool) {
	i, ok := index[key]
	if !ok {
		return AssetConfig{}, false
	}
	return configs[i], true
}
