package setup

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"

	"github.com/eth2030/kzgcore/kzg"
	"github.com/eth2030/kzgcore/log"
	"github.com/eth2030/kzgcore/metrics"
)

var (
	// ErrDigestMismatch is returned by Run when the saved settings load
	// back with different parameters.
	ErrDigestMismatch = errors.New("setup: reloaded settings digest mismatch")

	// ErrPrecomputationLost is returned by Run when a precomputed table
	// does not survive the round trip to disk.
	ErrPrecomputationLost = errors.New("setup: precomputation missing after reload")
)

// Build generates the domain and SRS described by cfg. The seed is never
// logged; only sizes, durations and the settings digest are.
func Build(cfg Config, logger *log.Logger, registry *metrics.Registry) (*kzg.Settings, error) {
	m := metrics.NewSetupMetrics(registry)
	m.Runs.Inc()
	settings, err := build(cfg, logger, m)
	if err != nil {
		m.Failures.Inc()
	}
	return settings, err
}

func build(cfg Config, logger *log.Logger, m *metrics.SetupMetrics) (*kzg.Settings, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed, err := cfg.seed()
	if err != nil {
		return nil, err
	}
	defer clear(seed[:])

	domain, err := kzg.NewDomain(cfg.Scale)
	if err != nil {
		return nil, fmt.Errorf("setup: domain: %w", err)
	}
	logger.Debug("domain built", "scale", cfg.Scale, "width", domain.MaxWidth)

	length := cfg.Length
	if length == 0 {
		length = int(domain.MaxWidth)
	}

	timer := metrics.NewTimer(m.GenerateTime)
	g1, g2 := kzg.GenerateTrustedSetup(length, seed)
	elapsed := timer.Stop()
	m.SRSPoints.Set(int64(len(g1)))

	settings, err := kzg.NewSettings(domain, g1, g2)
	if err != nil {
		return nil, fmt.Errorf("setup: %w", err)
	}
	logger.Info("trusted setup generated", "points", len(g1), "elapsed", elapsed)

	if cfg.Precompute {
		timer := metrics.NewTimer(m.PrecomputeTime)
		table := settings.Precompute()
		logger.Info("precomputation built", "points", table.Len(), "elapsed", timer.Stop())
	}
	return settings, nil
}

// Save writes settings as JSON to path with owner-only permissions.
func Save(path string, settings *kzg.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("setup: encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("setup: write %s: %w", path, err)
	}
	return nil
}

// Load reads and decodes settings written by Save.
func Load(path string) (*kzg.Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("setup: read %s: %w", path, err)
	}
	var settings kzg.Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("setup: decode %s: %w", path, err)
	}
	return &settings, nil
}

// Run builds the settings, saves them to cfg.Output and reloads the file
// to confirm it decodes to the same parameters. It returns the digest of
// the persisted settings.
func Run(cfg Config, logger *log.Logger, registry *metrics.Registry) (common.Hash, error) {
	m := metrics.NewSetupMetrics(registry)
	m.Runs.Inc()
	logger = logger.With("scale", cfg.Scale, "out", cfg.Output)
	digest, err := run(cfg, logger, m)
	if err != nil {
		m.Failures.Inc()
		logger.Error("trusted setup failed", "err", err)
	}
	return digest, err
}

func run(cfg Config, logger *log.Logger, m *metrics.SetupMetrics) (common.Hash, error) {
	settings, err := build(cfg, logger, m)
	if err != nil {
		return common.Hash{}, err
	}
	digest := settings.Digest()

	if err := Save(cfg.Output, settings); err != nil {
		return common.Hash{}, err
	}
	logger.Info("settings saved", "digest", digest)

	loaded, err := Load(cfg.Output)
	if err != nil {
		return common.Hash{}, err
	}
	if got := loaded.Digest(); got != digest {
		return common.Hash{}, fmt.Errorf("%w: got %s, want %s", ErrDigestMismatch, got, digest)
	}
	if cfg.Precompute && loaded.Precomputation() == nil {
		return common.Hash{}, ErrPrecomputationLost
	}
	logger.Info("settings verified")
	return digest, nil
}
