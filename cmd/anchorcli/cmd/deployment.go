package cmd

import (
	"fmt"
	"strings"

	"cosmossdk.io/math"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/paw-chain/anchor/x/anchor/types"
)

// DeploymentConfig is the file form of a deployment: params, the token
// configs in registry order, and optionally the average tick of each market
// for dry runs.
type DeploymentConfig struct {
	AnchorToleranceMantissa string       `mapstructure:"anchor_tolerance_mantissa"`
	AnchorPeriod            uint32       `mapstructure:"anchor_period"`
	Owner                   string       `mapstructure:"owner"`
	Tokens                  []TokenEntry `mapstructure:"tokens"`

	// Markets maps a market identifier to its average tick. Keys are
	// lowercased by the config loader.
	Markets map[string]int64 `mapstructure:"-"`
}

// TokenEntry is one token config. Integer amounts are strings so that values
// beyond 64 bits survive every file format.
type TokenEntry struct {
	Symbol             string `mapstructure:"symbol"`
	SymbolHash         string `mapstructure:"symbol_hash"`
	Asset              string `mapstructure:"asset"`
	Underlying         string `mapstructure:"underlying"`
	BaseUnit           string `mapstructure:"base_unit"`
	PriceSource        string `mapstructure:"price_source"`
	FixedPrice         string `mapstructure:"fixed_price"`
	Market             string `mapstructure:"market"`
	Reporter           string `mapstructure:"reporter"`
	ReporterMultiplier string `mapstructure:"reporter_multiplier"`
	IsMarketReversed   bool   `mapstructure:"is_market_reversed"`
}

// LoadDeployment reads a YAML, JSON or TOML deployment file. Top-level
// scalar settings may be overridden with ANCHOR_ environment variables, for
// example ANCHOR_ANCHOR_PERIOD.
func LoadDeployment(path string) (DeploymentConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("anchor_tolerance_mantissa", types.DefaultAnchorToleranceMantissa.String())
	v.SetDefault("anchor_period", types.DefaultAnchorPeriod)
	v.SetDefault("owner", types.DefaultAuthority())

	if err := v.ReadInConfig(); err != nil {
		return DeploymentConfig{}, fmt.Errorf("failed to read deployment %s: %w", path, err)
	}

	var cfg DeploymentConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return DeploymentConfig{}, fmt.Errorf("failed to decode deployment %s: %w", path, err)
	}

	cfg.Markets = make(map[string]int64)
	for market, raw := range v.GetStringMap("markets") {
		tick, err := cast.ToInt64E(raw)
		if err != nil {
			return DeploymentConfig{}, fmt.Errorf("market %s: invalid tick: %w", market, err)
		}
		cfg.Markets[market] = tick
	}

	return cfg, nil
}

// Params converts the deployment settings to module params.
func (d DeploymentConfig) Params() (types.Params, error) {
	tolerance, err := math.ParseUint(strings.TrimSpace(d.AnchorToleranceMantissa))
	if err != nil {
		return types.Params{}, fmt.Errorf("anchor_tolerance_mantissa: %w", err)
	}

	return types.Params{
		AnchorToleranceMantissa: tolerance,
		AnchorPeriod:            d.AnchorPeriod,
		Owner:                   strings.TrimSpace(d.Owner),
	}, nil
}

// ToGenesis converts the deployment to the genesis state the keeper is built
// from. The result still needs GenesisState.Validate.
func (d DeploymentConfig) ToGenesis() (types.GenesisState, error) {
	params, err := d.Params()
	if err != nil {
		return types.GenesisState{}, err
	}

	configs := make([]types.AssetConfig, 0, len(d.Tokens))
	for i, token := range d.Tokens {
		config, err := token.AssetConfig()
		if err != nil {
			return types.GenesisState{}, fmt.Errorf("token %d (%s): %w", i, token.Name(), err)
		}
		configs = append(configs, config)
	}

	return types.GenesisState{
		Params:      params,
		Configs:     configs,
		PriceStates: []types.GenesisPriceState{},
	}, nil
}

// Name returns the symbol, or the symbol hash when no symbol was given.
func (t TokenEntry) Name() string {
	if symbol := strings.TrimSpace(t.Symbol); symbol != "" {
		return symbol
	}
	return strings.TrimSpace(t.SymbolHash)
}

// Hash returns the explicit symbol hash, or the hash of the symbol.
func (t TokenEntry) Hash() (types.SymbolHash, error) {
	symbol := strings.TrimSpace(t.Symbol)
	raw := strings.TrimSpace(t.SymbolHash)

	switch {
	case raw != "":
		hash, err := types.ParseSymbolHash(raw)
		if err != nil {
			return types.SymbolHash{}, err
		}
		if symbol != "" && hash != types.HashSymbol(symbol) {
			return types.SymbolHash{}, fmt.Errorf("symbol_hash %s does not match symbol %s", hash, symbol)
		}
		return hash, nil
	case symbol != "":
		return types.HashSymbol(symbol), nil
	default:
		return types.SymbolHash{}, fmt.Errorf("symbol or symbol_hash required")
	}
}

// AssetConfig converts the entry. Construction rules are left to
// AssetConfig.Validate.
func (t TokenEntry) AssetConfig() (types.AssetConfig, error) {
	hash, err := t.Hash()
	if err != nil {
		return types.AssetConfig{}, err
	}

	source, err := types.ParsePriceSource(t.PriceSource)
	if err != nil {
		return types.AssetConfig{}, err
	}

	baseUnit, err := parseAmount("base_unit", t.BaseUnit)
	if err != nil {
		return types.AssetConfig{}, err
	}
	fixedPrice, err := parseAmount("fixed_price", t.FixedPrice)
	if err != nil {
		return types.AssetConfig{}, err
	}
	multiplier, err := parseAmount("reporter_multiplier", t.ReporterMultiplier)
	if err != nil {
		return types.AssetConfig{}, err
	}

	return types.AssetConfig{
		SymbolHash:         hash,
		Asset:              strings.TrimSpace(t.Asset),
		Underlying:         strings.TrimSpace(t.Underlying),
		BaseUnit:           baseUnit,
		PriceSource:        source,
		FixedPrice:         fixedPrice,
		Market:             strings.TrimSpace(t.Market),
		Reporter:           strings.TrimSpace(t.Reporter),
		ReporterMultiplier: multiplier,
		IsMarketReversed:   t.IsMarketReversed,
	}, nil
}

// parseAmount parses an unsigned decimal amount; an empty value is zero.
func parseAmount(field, value string) (math.Uint, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return math.ZeroUint(), nil
	}
	amount, err := math.ParseUint(value)
	if err != nil {
		return math.ZeroUint(), fmt.Errorf("%s: %w", field, err)
	}
	return amount, nil
}
