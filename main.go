package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tanpawarit/Chative-Support-Triage/agent/agents/orchestrator"
	"github.com/tanpawarit/Chative-Support-Triage/agent/agents/specialist"
	"github.com/tanpawarit/Chative-Support-Triage/agent/console"
	guardx "github.com/tanpawarit/Chative-Support-Triage/agent/guard"
	llmx "github.com/tanpawarit/Chative-Support-Triage/agent/llm"
	statex "github.com/tanpawarit/Chative-Support-Triage/agent/state"
	configx "github.com/tanpawarit/Chative-Support-Triage/pkg/config"
	logx "github.com/tanpawarit/Chative-Support-Triage/pkg/logger"
	_ "github.com/tanpawarit/Chative-Support-Triage/pkg/logger/autoload"
	openrouterx "github.com/tanpawarit/Chative-Support-Triage/pkg/openrouter"
)

type AppConfig struct {
	Backend     string `envconfig:"BACKEND" default:"rules"`
	GuardPolicy string `envconfig:"GUARD_POLICY" split_words:"true"`
}

var (
	envPath     string
	backendFlag string
	policyFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "support-triage",
	Short: "Console support agent that triages requests to billing, technical or general responders",
	Long: `support-triage reads support requests from the console, classifies each one
as billing, technical or general, and answers with the matching responder.
Refunds need a premium account and restarts are only offered for technical issues.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.Flags().StringVar(&envPath, "env", "", "Path to .env file (default: ./.env when present)")
	rootCmd.Flags().StringVar(&backendFlag, "backend", "", "Responder backend: rules or model (overrides SUPPORT_BACKEND)")
	rootCmd.Flags().StringVar(&policyFlag, "guard-policy", "", "Path to output guard policy YAML (overrides SUPPORT_GUARD_POLICY)")
}

func run(ctx context.Context) error {
	configx.SetEnvFile(envPath)

	logCfg, err := configx.New[logx.Config]("LOG")
	if err != nil {
		return fmt.Errorf("load log config: %w", err)
	}
	logx.Init(*logCfg)

	appCfg, err := configx.New[AppConfig]("SUPPORT")
	if err != nil {
		return fmt.Errorf("load app config: %w", err)
	}
	if backendFlag != "" {
		appCfg.Backend = backendFlag
	}
	if policyFlag != "" {
		appCfg.GuardPolicy = policyFlag
	}

	backend, err := specialist.ParseBackend(appCfg.Backend)
	if err != nil {
		return err
	}

	var llmCfg *llmx.Config
	if backend == specialist.BackendModel {
		llmCfg, err = configx.New[llmx.Config]("OPENROUTER")
		if err != nil {
			return fmt.Errorf("load openrouter config: %w", err)
		}
		if llmCfg.Preflight {
			if err := preflight(ctx, llmCfg); err != nil {
				return err
			}
		}
	}

	policy, err := guardx.LoadPolicy(appCfg.GuardPolicy)
	if err != nil {
		return err
	}
	guard, err := guardx.New(policy)
	if err != nil {
		return err
	}

	generator, err := specialist.NewGenerator(ctx, backend, llmCfg)
	if err != nil {
		return err
	}

	term := console.New(os.Stdin, os.Stdout)
	dispatcher, err := orchestrator.New(generator, guard, term, orchestrator.Config{
		RunConfig: map[string]any{"backend": string(backend)},
	})
	if err != nil {
		return err
	}

	log.Info().
		Str("backend", string(backend)).
		Str("guard_policy", policy.Version).
		Msg("support triage ready")

	return term.Run(ctx, dispatcher)
}

// preflight verifies every distinct configured model before the session starts.
func preflight(ctx context.Context, cfg *llmx.Config) error {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	seen := make(map[string]bool, 4)
	agents := []statex.AgentName{
		statex.AgentTriage,
		statex.AgentBilling,
		statex.AgentTechnical,
		statex.AgentGeneral,
	}
	for _, agent := range agents {
		modelCfg := cfg.OpenRouterFor(agent)
		if seen[modelCfg.Model] {
			continue
		}
		seen[modelCfg.Model] = true

		client := openrouterx.NewClient(modelCfg)
		if err := openrouterx.Preflight(ctx, client, modelCfg.Model); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("support-triage exited")
		os.Exit(1)
	}
}
