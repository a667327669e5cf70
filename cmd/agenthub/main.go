package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rahulnsecc/agenthub/ai/agents"
	"github.com/rahulnsecc/agenthub/ai/continuity"
	"github.com/rahulnsecc/agenthub/ai/core/llm"
	"github.com/rahulnsecc/agenthub/ai/orchestrator"
	"github.com/rahulnsecc/agenthub/ai/review"
	"github.com/rahulnsecc/agenthub/ai/router"
	"github.com/rahulnsecc/agenthub/internal/profile"
	"github.com/rahulnsecc/agenthub/internal/version"
	"github.com/rahulnsecc/agenthub/server"
	"github.com/rahulnsecc/agenthub/store"
	"github.com/rahulnsecc/agenthub/store/db"
)

var rootCmd = &cobra.Command{
	Use:   "agenthub",
	Short: `A multi-role conversational assistant. Routes each message to a search, finance, or content agent with per-role context carry-over.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		// Try to load .env from the current directory; absence is fine.
		_ = godotenv.Load()
		return nil
	},
	Run: func(_ *cobra.Command, _ []string) {
		instanceProfile := &profile.Profile{
			Mode:    viper.GetString("mode"),
			Addr:    viper.GetString("addr"),
			Port:    viper.GetInt("port"),
			Data:    viper.GetString("data"),
			Driver:  viper.GetString("driver"),
			DSN:     viper.GetString("dsn"),
			Version: version.GetCurrentVersion(viper.GetString("mode")),
		}
		instanceProfile.FromEnv()
		if err := instanceProfile.Validate(); err != nil {
			slog.Error("invalid profile", "error", err)
			return
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		dbDriver, err := db.NewDBDriver(instanceProfile)
		if err != nil {
			slog.Error("failed to create db driver", "error", err)
			return
		}

		storeInstance := store.New(dbDriver, instanceProfile)
		if err := storeInstance.Migrate(ctx); err != nil {
			slog.Error("failed to migrate", "error", err)
			return
		}

		orch, err := newOrchestrator(instanceProfile, storeInstance)
		if err != nil {
			slog.Error("failed to create orchestrator", "error", err)
			return
		}

		s := server.NewServer(instanceProfile, storeInstance, orch)

		c := make(chan os.Signal, 1)
		// SIGTERM is the graceful shutdown signal used by most process
		// managers; the `kill` command sends it by default.
		signal.Notify(c, terminationSignals...)

		go func() {
			<-c
			s.Shutdown(ctx)
			cancel()
		}()

		printGreetings(instanceProfile)

		if err := s.Start(ctx); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				slog.Error("failed to start server", "error", err)
				cancel()
			}
		}

		<-ctx.Done()
	},
}

// newOrchestrator wires the full turn pipeline: one responder LLM service,
// one small classifier LLM service shared by routing and continuity, the
// content review pipeline, and the three responders.
func newOrchestrator(instanceProfile *profile.Profile, storeInstance *store.Store) (*orchestrator.Orchestrator, error) {
	responderLLM, err := llm.NewService(&llm.Config{
		Provider: instanceProfile.LLMProvider,
		Model:    instanceProfile.LLMModel,
		APIKey:   instanceProfile.LLMAPIKey,
		BaseURL:  instanceProfile.LLMBaseURL,
		Timeout:  instanceProfile.LLMTimeout,
	})
	if err != nil {
		return nil, err
	}

	// Classification replies are a single short line; a low temperature and
	// tight token cap keep them parseable.
	classifierLLM, err := llm.NewService(&llm.Config{
		Provider:    instanceProfile.LLMProvider,
		Model:       instanceProfile.ClassifierModel,
		APIKey:      instanceProfile.LLMAPIKey,
		BaseURL:     instanceProfile.LLMBaseURL,
		MaxTokens:   64,
		Temperature: 0.1,
		Timeout:     instanceProfile.ClassifierTimeout,
	})
	if err != nil {
		return nil, err
	}

	// Best-effort connection warmup to cut first-turn latency.
	go func() {
		warmupCtx, warmupCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer warmupCancel()
		responderLLM.Warmup(warmupCtx)
	}()

	return orchestrator.New(orchestrator.Config{
		Router:     router.NewService(llm.NewClassifier(classifierLLM, router.RoutingSystemPrompt)),
		Continuity: continuity.NewDetector(llm.NewClassifier(classifierLLM, continuity.ContinuitySystemPrompt)),
		Responders: map[router.Role]agents.Responder{
			router.RoleSearch:  agents.NewSearchResponder(responderLLM),
			router.RoleFinance: agents.NewFinanceResponder(responderLLM),
			router.RoleContent: agents.NewContentResponder(review.NewPipeline(responderLLM)),
		},
		Store: storeInstance,
	}), nil
}

func init() {
	viper.SetDefault("mode", "dev")
	viper.SetDefault("driver", "sqlite")
	viper.SetDefault("port", 28090)

	rootCmd.PersistentFlags().String("mode", "dev", `mode of server, can be "prod" or "dev"`)
	rootCmd.PersistentFlags().String("addr", "", "address of server")
	rootCmd.PersistentFlags().Int("port", 28090, "port of server")
	rootCmd.PersistentFlags().String("data", "", "data directory")
	rootCmd.PersistentFlags().String("driver", "sqlite", "database driver (sqlite, postgres)")
	rootCmd.PersistentFlags().String("dsn", "", "database source name(aka. DSN)")

	for _, flag := range []string{"mode", "addr", "port", "data", "driver", "dsn"} {
		if err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			panic(err)
		}
	}

	viper.SetEnvPrefix("agenthub")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
}

func printGreetings(profile *profile.Profile) {
	fmt.Printf("AgentHub %s started successfully!\n", profile.Version)

	if profile.IsDev() {
		fmt.Fprint(os.Stderr, "Development mode is enabled\n")
		if profile.DSN != "" {
			fmt.Fprintf(os.Stderr, "Database: %s\n", profile.DSN)
		}
	}

	fmt.Printf("Data directory: %s\n", profile.Data)
	fmt.Printf("Database driver: %s\n", profile.Driver)
	fmt.Printf("Mode: %s\n", profile.Mode)
	fmt.Printf("LLM provider: %s (%s)\n", profile.LLMProvider, profile.LLMModel)

	if len(profile.Addr) == 0 {
		fmt.Printf("Server running on port %d\n", profile.Port)
	} else {
		fmt.Printf("Server running on %s:%d\n", profile.Addr, profile.Port)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		panic(err)
	}
}
