package cmd

import (
	"context"
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/paw-chain/anchor/x/anchor/keeper"
	"github.com/paw-chain/anchor/x/anchor/types"
)

const (
	flagReport   = "report"
	flagFailover = "failover"
	flagMetrics  = "metrics"

	metricsPrefix = "paw_anchor_"
)

// SimulateCmd replays reporter answers against an in-memory keeper built
// from a deployment file.
func SimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate [file]",
		Short: "Replay reporter answers against a deployment",
		Long: `Build an in-memory keeper from a deployment file, serve each market at the
average tick listed under "markets", activate the requested failovers and
then submit each report in order. Prints the outcome of every report and the
resulting canonical prices.`,
		Example: `anchorcli simulate deployment.yaml --report ETH=395000000000 --report BTC=6000000000000
anchorcli simulate deployment.yaml --failover BTC --metrics`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := newViper(cmd.Flags())
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd, v)
			if err != nil {
				return err
			}

			deployment, err := LoadDeployment(args[0])
			if err != nil {
				return err
			}
			reports, err := parseReports(v.GetStringSlice(flagReport))
			if err != nil {
				return err
			}

			sim, err := NewSimulation(deployment, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, symbol := range v.GetStringSlice(flagFailover) {
				if err := sim.ActivateFailover(symbol); err != nil {
					return err
				}
				fmt.Fprintf(out, "failover %s activated\n", symbol)
			}

			for _, r := range reports {
				valid, err := sim.Report(r.symbol, r.answer)
				if err != nil {
					return fmt.Errorf("report %s=%s: %w", r.symbol, r.answer, err)
				}
				fmt.Fprintf(out, "report %s=%s valid=%t\n", r.symbol, r.answer, valid)
			}

			prices, err := sim.Prices()
			if err != nil {
				return err
			}
			for _, p := range prices {
				fmt.Fprintf(out, "price %s %s\n", p.Symbol, p.Price)
			}

			if v.GetBool(flagMetrics) {
				return writeMetrics(cmd)
			}
			return nil
		},
	}

	cmd.Flags().StringArray(flagReport, nil, "Reporter answer as SYMBOL=ANSWER, repeatable")
	cmd.Flags().StringSlice(flagFailover, nil, "Symbols to put in failover before reporting")
	cmd.Flags().Bool(flagMetrics, false, "Print the anchor metrics after the run")

	return cmd
}

type report struct {
	symbol string
	answer math.Int
}

func parseReports(raw []string) ([]report, error) {
	reports := make([]report, 0, len(raw))
	for _, entry := range raw {
		symbol, answer, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("invalid report %q, expected SYMBOL=ANSWER", entry)
		}
		value, ok := math.NewIntFromString(strings.TrimSpace(answer))
		if !ok {
			return nil, fmt.Errorf("invalid answer in report %q", entry)
		}
		reports = append(reports, report{symbol: strings.TrimSpace(symbol), answer: value})
	}
	return reports, nil
}

// Simulation is a keeper over an in-memory store and a static market.
type Simulation struct {
	keeper  *keeper.Keeper
	ctx     sdk.Context
	symbols []string
	hashes  map[string]types.SymbolHash
	owner   string
}

// SymbolPrice is the canonical price of one configured symbol.
type SymbolPrice struct {
	Symbol string
	Price  math.Uint
}

// NewSimulation validates the deployment and builds its keeper.
func NewSimulation(deployment DeploymentConfig, logger log.Logger) (*Simulation, error) {
	genesis, err := deployment.ToGenesis()
	if err != nil {
		return nil, err
	}
	if err := genesis.Validate(); err != nil {
		return nil, err
	}

	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	if err := stateStore.LoadLatestVersion(); err != nil {
		return nil, fmt.Errorf("failed to load in-memory store: %w", err)
	}
	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, logger)

	k, err := keeper.NewKeeper(storeKey, staticMarket(deployment.Markets), genesis.Params, genesis.Configs)
	if err != nil {
		return nil, err
	}
	if err := k.InitGenesis(ctx, genesis); err != nil {
		return nil, err
	}

	symbols := make([]string, len(deployment.Tokens))
	hashes := make(map[string]types.SymbolHash, len(deployment.Tokens))
	for i, token := range deployment.Tokens {
		symbols[i] = token.Name()
		hash, err := token.Hash()
		if err != nil {
			return nil, err
		}
		if _, dup := hashes[symbols[i]]; !dup {
			hashes[symbols[i]] = hash
		}
	}

	return &Simulation{
		keeper:  k,
		ctx:     ctx,
		symbols: symbols,
		hashes:  hashes,
		owner:   genesis.Params.Owner,
	}, nil
}

// Report submits answer as the reporter of symbol.
func (s *Simulation) Report(symbol string, answer math.Int) (bool, error) {
	config, err := s.keeper.Registry().ConfigBySymbolHash(s.symbolHash(symbol))
	if err != nil {
		return false, errorsmod.Wrapf(err, "symbol %s", symbol)
	}
	return s.keeper.Validate(s.ctx, config.Reporter, answer)
}

// ActivateFailover puts symbol in failover as the deployment owner.
func (s *Simulation) ActivateFailover(symbol string) error {
	return s.keeper.ActivateFailover(s.ctx, s.owner, s.symbolHash(symbol))
}

// symbolHash resolves a token name as printed by the simulation. Tokens
// configured by symbol_hash alone are named by their hash.
func (s *Simulation) symbolHash(name string) types.SymbolHash {
	name = strings.TrimSpace(name)
	if hash, ok := s.hashes[name]; ok {
		return hash
	}
	if hash, err := types.ParseSymbolHash(name); err == nil {
		return hash
	}
	return types.HashSymbol(name)
}

// Prices returns the canonical price of every token in registry order.
func (s *Simulation) Prices() ([]SymbolPrice, error) {
	registry := s.keeper.Registry()
	prices := make([]SymbolPrice, 0, registry.Len())
	for i := 0; i < registry.Len(); i++ {
		config, err := registry.ConfigAt(i)
		if err != nil {
			return nil, err
		}
		price, err := s.keeper.PriceBySymbolHash(s.ctx, config.SymbolHash)
		if err != nil {
			return nil, fmt.Errorf("price of %s: %w", s.symbols[i], err)
		}
		prices = append(prices, SymbolPrice{Symbol: s.symbols[i], Price: price})
	}
	return prices, nil
}

// staticMarket reports a constant average tick per market.
type staticMarket map[string]int64

// ObserveTickCumulatives implements types.MarketKeeper. The cumulative is
// zero now and grows by tick every second before.
func (m staticMarket) ObserveTickCumulatives(_ context.Context, market string, secondsAgos []uint32) ([]int64, error) {
	tick, ok := m[strings.ToLower(market)]
	if !ok {
		return nil, fmt.Errorf("no tick configured for market %s", market)
	}

	cumulatives := make([]int64, len(secondsAgos))
	for i, ago := range secondsAgos {
		cumulatives[i] = -tick * int64(ago)
	}
	return cumulatives, nil
}

// writeMetrics prints the anchor metric families in the text exposition format.
func writeMetrics(cmd *cobra.Command) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	encoder := expfmt.NewEncoder(cmd.OutOrStdout(), expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range families {
		if !strings.HasPrefix(family.GetName(), metricsPrefix) {
			continue
		}
		if err := encoder.Encode(family); err != nil {
			return fmt.Errorf("failed to encode %s: %w", family.GetName(), err)
		}
	}
	return nil
}
