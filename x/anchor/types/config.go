package types

import (
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// PriceSource selects where an asset's canonical price comes from.
type PriceSource uint8

const (
	// PriceSourceFixedETH prices the asset at a fixed amount of ETH.
	PriceSourceFixedETH PriceSource = iota
	// PriceSourceFixedUSD prices the asset at a fixed USD amount.
	PriceSourceFixedUSD
	// PriceSourceReporter takes the price from a reporter, checked against the market anchor.
	PriceSourceReporter
)

var priceSourceNames = map[PriceSource]string{
	PriceSourceFixedETH: "fixed_eth",
	PriceSourceFixedUSD: "fixed_usd",
	PriceSourceReporter: "reporter",
}

// String implements fmt.Stringer.
func (s PriceSource) String() string {
	if name, ok := priceSourceNames[s]; ok {
		return name
	}
	return fmt.Sprintf("price_source(%d)", uint8(s))
}

// ParsePriceSource parses the names returned by PriceSource.String.
func ParsePriceSource(name string) (PriceSource, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for source, sourceName := range priceSourceNames {
		if sourceName == normalized {
			return source, nil
		}
	}
	return 0, errorsmod.Wrapf(ErrInvalidPriceSource, "unknown price source %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s PriceSource) MarshalText() ([]byte, error) {
	if _, ok := priceSourceNames[s]; !ok {
		return nil, errorsmod.Wrapf(ErrInvalidPriceSource, "unknown price source %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *PriceSource) UnmarshalText(text []byte) error {
	parsed, err := ParsePriceSource(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// AssetConfig is the immutable configuration of one priced asset.
type AssetConfig struct {
	// SymbolHash is HashSymbol of the asset's ticker.
	SymbolHash SymbolHash `json:"symbol_hash"`
	// Asset is the canonical handle downstream consumers price by.
	Asset string `json:"asset"`
	// Underlying is the handle of the asset held behind Asset.
	Underlying string `json:"underlying"`
	// BaseUnit is the number of smallest units in one whole unit.
	BaseUnit math.Uint `json:"base_unit"`
	// PriceSource selects how the canonical price is produced.
	PriceSource PriceSource `json:"price_source"`
	// FixedPrice is the 6-decimal price for fixed sources.
	FixedPrice math.Uint `json:"fixed_price"`
	// Market is the market observed for the anchor price.
	Market string `json:"market"`
	// Reporter is the only identity allowed to submit prices for the asset.
	Reporter string `json:"reporter"`
	// ReporterMultiplier scales reported values to 6-decimal USD.
	ReporterMultiplier math.Uint `json:"reporter_multiplier"`
	// IsMarketReversed is set when the market quotes ETH per asset.
	IsMarketReversed bool `json:"is_market_reversed"`
}

// Validate checks the configuration invariants. Reporter-sourced assets must
// carry a market and a reporter; every other source must carry neither.
func (c AssetConfig) Validate() error {
	if c.BaseUnit.IsNil() || c.BaseUnit.IsZero() {
		return ErrBaseUnitZero
	}

	hasMarket := strings.TrimSpace(c.Market) != ""
	hasReporter := strings.TrimSpace(c.Reporter) != ""

	if c.PriceSource == PriceSourceReporter {
		if !hasMarket {
			return ErrAnchorRequired
		}
		if !hasReporter {
			return ErrReporterRequired
		}
		return nil
	}

	if _, ok := priceSourceNames[c.PriceSource]; !ok {
		return errorsmod.Wrapf(ErrInvalidPriceSource, "unknown price source %d", uint8(c.PriceSource))
	}
	if hasMarket {
		return ErrAnchorNotAllowed
	}
	if hasReporter {
		return ErrReporterNotAllowed
	}
	return nil
}

// IsReporter reports whether the asset is priced by a reporter.
func (c AssetConfig) IsReporter() bool {
	return c.PriceSource == PriceSourceReporter
}

// IsETH reports whether the config describes ETH itself.
func (c AssetConfig) IsETH() bool {
	return c.SymbolHash == ETHSymbolHash
}
