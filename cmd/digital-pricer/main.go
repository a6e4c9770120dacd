package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/spf13/viper"

	"github.com/contactkeval/digital-pricer/internal/data"
	"github.com/contactkeval/digital-pricer/internal/engine"
	"github.com/contactkeval/digital-pricer/internal/logger"
	"github.com/contactkeval/digital-pricer/internal/market"
	"github.com/contactkeval/digital-pricer/internal/report"
)

func main() {
	configPath := flag.String("config", "", "path to market config file (json/yaml); defaults apply when empty")
	spotFlag := flag.Float64("spot", 0, "spot price (overridden by -underlying)")
	barrier := flag.Float64("barrier", 0, "barrier price to evaluate")
	side := flag.String("side", "long", "position side: long or short")
	target := flag.Float64("target", 0, "target premium in (0,1); runs the barrier solver when set")
	curve := flag.Int("curve", 0, "sample a premium curve with this many spot points")
	underlying := flag.String("underlying", "", "derive spot and sigma2 from this ticker's recent bars")
	outDir := flag.String("out", "", "write results into this directory as JSON/CSV")
	verbosity := flag.Int("verbosity", 2, "0=errors,1=warnings,2=info,3=debug,4=trace")
	rest := flag.Bool("rest", false, "run as REST server")
	port := flag.String("port", ":8080", "REST server listen address")
	seed := flag.Int64("seed", 0, "seed for the synthetic data provider, 0 = current time")
	flag.Parse()

	logger.SetVerbosity(*verbosity)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Errorf("loading config: %v", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logger.Errorf("invalid config: %v", err)
		os.Exit(1)
	}

	spot := *spotFlag
	if *underlying != "" {
		s, sigma2, err := observeMarket(*underlying, *seed)
		if err != nil {
			logger.Errorf("observing market for %s: %v", *underlying, err)
			os.Exit(1)
		}
		spot = s
		cfg.Sigma2 = sigma2
		logger.Infof("%s: spot=%.4f realized sigma2=%.6f", *underlying, s, sigma2)
	}

	if *rest {
		serve(*port, cfg)
		return
	}

	if spot <= 0 {
		logger.Errorf("a positive -spot (or -underlying) is required")
		os.Exit(1)
	}

	switch {
	case *target > 0:
		runSolve(*target, spot, market.Side(*side), cfg, *outDir)
	case *curve > 0:
		runCurve(*curve, spot, *barrier, market.Side(*side), cfg, *outDir)
	default:
		runPrice(spot, *barrier, market.Side(*side), cfg)
	}
}

// loadConfig merges defaults, an optional config file, and DP_-prefixed
// environment overrides (e.g. DP_SIGMA2) into a market configuration.
func loadConfig(path string) (market.Config, error) {
	def := market.DefaultConfig()

	v := viper.New()
	v.SetDefault("epoch_duration_seconds", def.EpochDurationSeconds)
	v.SetDefault("settle_delay_epochs", def.SettleDelayEpochs)
	v.SetDefault("sigma2", def.Sigma2)
	v.SetDefault("vega_buffer", def.VegaBuffer)
	v.SetDefault("call_lambda", def.CallLambda)
	v.SetDefault("put_lambda", def.PutLambda)
	v.SetEnvPrefix("DP")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return market.Config{}, err
		}
	}

	return market.Config{
		EpochDurationSeconds: v.GetInt64("epoch_duration_seconds"),
		SettleDelayEpochs:    v.GetInt64("settle_delay_epochs"),
		Sigma2:               v.GetFloat64("sigma2"),
		VegaBuffer:           v.GetFloat64("vega_buffer"),
		CallLambda:           v.GetFloat64("call_lambda"),
		PutLambda:            v.GetFloat64("put_lambda"),
	}, nil
}

// observeMarket derives spot and sigma2 from the last 30 days of bars.
// Polygon is chained over the synthetic provider, so a dead API key still
// produces a priceable market.
func observeMarket(underlying string, seed int64) (spot, sigma2 float64, err error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var prov data.Provider
	if apiKey := os.Getenv("POLYGON_API_KEY"); apiKey != "" {
		prov = data.NewPolygonDataProvider(apiKey, data.NewSyntheticProvider(seed, nil))
	} else {
		logger.Warnf("POLYGON_API_KEY not set - using synthetic bars (seed %d)", seed)
		prov = data.NewSyntheticProvider(seed, nil)
	}

	now := time.Now().UTC()
	bars, err := prov.GetDailyBars(underlying, now.AddDate(0, 0, -30), now)
	if err != nil {
		return 0, 0, err
	}
	if len(bars) == 0 {
		return 0, 0, fmt.Errorf("no bars returned for %s", underlying)
	}

	closes := data.Closes(bars)
	return closes[len(closes)-1], data.RealizedVariance(closes), nil
}

func runPrice(spot, barrier float64, side market.Side, cfg market.Config) {
	if barrier <= 0 {
		barrier = spot
	}
	premium, err := engine.EvaluatePremium(spot, barrier, side, cfg)
	if err != nil {
		logger.Errorf("pricing: %v", err)
		os.Exit(1)
	}
	fmt.Printf("premium(spot=%.4f barrier=%.4f side=%s) = %.8f\n", spot, barrier, side, premium)
}

func runSolve(target, spot float64, side market.Side, cfg market.Config, outDir string) {
	res, err := engine.SolveBarrier(target, spot, side, cfg)
	if err != nil {
		logger.Errorf("solving: %v", err)
		os.Exit(1)
	}
	if !res.Converged {
		logger.Warnf("solver did not converge after %d iterations; result is best-effort", res.Iterations)
	}
	fmt.Printf("barrier=%.6f premium=%.8f move=%.4f%% iterations=%d converged=%v\n",
		res.Barrier, res.Premium, res.PercentMove, res.Iterations, res.Converged)

	if outDir != "" {
		if err := report.WriteJSON(res, outDir, "solve"); err != nil {
			logger.Errorf("writing solve report: %v", err)
		}
	}
}

func runCurve(n int, spot, barrier float64, side market.Side, cfg market.Config, outDir string) {
	if barrier <= 0 {
		barrier = spot
	}
	grid := engine.SpotGrid(spot*0.5, spot*1.5, n)
	points, err := engine.PremiumCurve(grid, barrier, side, cfg)
	if err != nil {
		logger.Errorf("sampling curve: %v", err)
		os.Exit(1)
	}
	for _, p := range points {
		fmt.Printf("%.6f,%.8f\n", p.Spot, p.Premium)
	}

	if outDir != "" {
		if err := report.WriteCurveCSV(points, outDir); err != nil {
			logger.Errorf("writing curve report: %v", err)
		}
	}
}

// serve exposes the evaluator and solver over HTTP.
func serve(port string, cfg market.Config) {
	mux := http.NewServeMux()

	mux.HandleFunc("/price", func(w http.ResponseWriter, r *http.Request) {
		spot, err1 := strconv.ParseFloat(r.URL.Query().Get("spot"), 64)
		barrier, err2 := strconv.ParseFloat(r.URL.Query().Get("barrier"), 64)
		if err1 != nil || err2 != nil {
			http.Error(w, "spot and barrier query params required", http.StatusBadRequest)
			return
		}
		side := market.Side(r.URL.Query().Get("side"))
		if side == "" {
			side = market.SideLong
		}
		premium, err := engine.EvaluatePremium(spot, barrier, side, cfg)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, map[string]float64{"premium": premium})
	})

	mux.HandleFunc("/solve", func(w http.ResponseWriter, r *http.Request) {
		target, err1 := strconv.ParseFloat(r.URL.Query().Get("target"), 64)
		spot, err2 := strconv.ParseFloat(r.URL.Query().Get("spot"), 64)
		if err1 != nil || err2 != nil {
			http.Error(w, "target and spot query params required", http.StatusBadRequest)
			return
		}
		side := market.Side(r.URL.Query().Get("side"))
		if side == "" {
			side = market.SideLong
		}
		res, err := engine.SolveBarrier(target, spot, side, cfg)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, res)
	})

	mux.HandleFunc("/curve", func(w http.ResponseWriter, r *http.Request) {
		spot, err1 := strconv.ParseFloat(r.URL.Query().Get("spot"), 64)
		barrier, err2 := strconv.ParseFloat(r.URL.Query().Get("barrier"), 64)
		if err1 != nil || err2 != nil {
			http.Error(w, "spot and barrier query params required", http.StatusBadRequest)
			return
		}
		n, err := strconv.Atoi(r.URL.Query().Get("points"))
		if err != nil || n <= 0 {
			n = 101
		}
		side := market.Side(r.URL.Query().Get("side"))
		if side == "" {
			side = market.SideLong
		}
		points, perr := engine.PremiumCurve(engine.SpotGrid(spot*0.5, spot*1.5, n), barrier, side, cfg)
		if perr != nil {
			http.Error(w, perr.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, points)
	})

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("ok"))
	})

	logger.Infof("starting REST server on %s", port)
	if err := http.ListenAndServe(port, mux); err != nil {
		logger.Errorf("server: %v", err)
		os.Exit(1)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
