package llm

import (
	"fmt"
	"strings"
	"time"

	contractx "github.com/tanpawarit/Chative-Support-Triage/agent/contract"
	statex "github.com/tanpawarit/Chative-Support-Triage/agent/state"
	openrouterx "github.com/tanpawarit/Chative-Support-Triage/pkg/openrouter"
)

type Config struct {
	BaseURL            string        `envconfig:"BASE_URL" split_words:"true" default:"https://openrouter.ai/api/v1"`
	APIKey             string        `envconfig:"API_KEY" split_words:"true" required:"true"`
	Model              string        `envconfig:"MODEL" split_words:"true" required:"true"`
	MaxCompletionToken int           `envconfig:"MAX_COMPLETION_TOKEN" split_words:"true" default:"512"`
	Temperature        float32       `envconfig:"TEMPERATURE" split_words:"true" default:"0.2"`
	Timeout            time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"30s"`
	SiteURL            string        `envconfig:"SITE_URL" split_words:"true"`
	SiteName           string        `envconfig:"SITE_NAME" split_words:"true"`
	Preflight          bool          `envconfig:"PREFLIGHT" split_words:"true" default:"false"`

	TriageModel          string  `envconfig:"TRIAGE_MODEL" split_words:"true"`
	BillingModel         string  `envconfig:"BILLING_MODEL" split_words:"true"`
	TechnicalModel       string  `envconfig:"TECHNICAL_MODEL" split_words:"true"`
	GeneralModel         string  `envconfig:"GENERAL_MODEL" split_words:"true"`
	TriageTemperature    float32 `envconfig:"TRIAGE_TEMPERATURE" split_words:"true" default:"0"`
	BillingTemperature   float32 `envconfig:"BILLING_TEMPERATURE" split_words:"true" default:"-1"`
	TechnicalTemperature float32 `envconfig:"TECHNICAL_TEMPERATURE" split_words:"true" default:"-1"`
	GeneralTemperature   float32 `envconfig:"GENERAL_TEMPERATURE" split_words:"true" default:"-1"`
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("%w: openrouter api key is required", contractx.ErrValidation)
	}
	if strings.TrimSpace(c.Model) == "" {
		return fmt.Errorf("%w: default model is required", contractx.ErrValidation)
	}
	return nil
}

// OpenRouterFor resolves per-agent overrides on top of the default model.
// A negative temperature override means "inherit".
func (c Config) OpenRouterFor(agent statex.AgentName) openrouterx.Config {
	modelName := strings.TrimSpace(c.Model)
	temp := c.Temperature

	override := func(model string, t float32) {
		if v := strings.TrimSpace(model); v != "" {
			modelName = v
		}
		if t >= 0 {
			temp = t
		}
	}

	switch agent {
	case statex.AgentTriage:
		override(c.TriageModel, c.TriageTemperature)
	case statex.AgentBilling:
		override(c.BillingModel, c.BillingTemperature)
	case statex.AgentTechnical:
		override(c.TechnicalModel, c.TechnicalTemperature)
	case statex.AgentGeneral:
		override(c.GeneralModel, c.GeneralTemperature)
	}

	maxCompletionToken := c.MaxCompletionToken
	return openrouterx.Config{
		BaseURL:            strings.TrimSpace(c.BaseURL),
		APIKey:             strings.TrimSpace(c.APIKey),
		Model:              modelName,
		MaxCompletionToken: &maxCompletionToken,
		Temperature:        temp,
		Timeout:            c.Timeout,
		SiteURL:            strings.TrimSpace(c.SiteURL),
		SiteName:           strings.TrimSpace(c.SiteName),
	}
}
