// Package config loads per-client credentials and identifiers from the
// environment. Each binary calls godotenv.Load() in main, so values may come
// from a .env file or the real environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Places holds configuration for the Google Places client.
type Places struct {
	APIKey string `validate:"required"`
}

// Scrape holds configuration for the Firecrawl client.
type Scrape struct {
	APIKey string `validate:"required"`
}

// Pipeline holds configuration for the content-optimization pipeline client.
// The user and saved-item identifiers select whose saved workflow to execute.
type Pipeline struct {
	APIKey      string `validate:"required"`
	UserID      string `validate:"required"`
	SavedItemID string `validate:"required"`
	FocusArea   string `validate:"required"`
}

// DefaultFocusArea is used when PIPELINE_FOCUS_AREA is not set.
const DefaultFocusArea = "Content Optimization (Hero, Services, Header, Meta, FAQ, CTAs, etc.)"

// missing formats the fatal configuration error for an absent variable,
// including the remediation hint shown to the user.
func missing(envVar string) error {
	return fmt.Errorf("configuration error: %s not found in environment variables (set it in your environment or .env file)", envVar)
}

// LoadPlaces reads GOOGLE_PLACES_API_KEY.
func LoadPlaces() (*Places, error) {
	cfg := &Places{APIKey: os.Getenv("GOOGLE_PLACES_API_KEY")}
	if err := validate.Struct(cfg); err != nil {
		return nil, missing("GOOGLE_PLACES_API_KEY")
	}
	return cfg, nil
}

// LoadScrape reads FIRECRAWL_API_KEY.
func LoadScrape() (*Scrape, error) {
	cfg := &Scrape{APIKey: os.Getenv("FIRECRAWL_API_KEY")}
	if err := validate.Struct(cfg); err != nil {
		return nil, missing("FIRECRAWL_API_KEY")
	}
	return cfg, nil
}

// LoadPipeline reads PIPELINE_API_KEY, PIPELINE_USER_ID, PIPELINE_SAVED_ITEM_ID
// and the optional PIPELINE_FOCUS_AREA.
func LoadPipeline() (*Pipeline, error) {
	cfg := &Pipeline{
		APIKey:      os.Getenv("PIPELINE_API_KEY"),
		UserID:      os.Getenv("PIPELINE_USER_ID"),
		SavedItemID: os.Getenv("PIPELINE_SAVED_ITEM_ID"),
		FocusArea:   os.Getenv("PIPELINE_FOCUS_AREA"),
	}
	if cfg.FocusArea == "" {
		cfg.FocusArea = DefaultFocusArea
	}

	if err := validate.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			switch fieldErrs[0].Field() {
			case "APIKey":
				return nil, missing("PIPELINE_API_KEY")
			case "UserID":
				return nil, missing("PIPELINE_USER_ID")
			case "SavedItemID":
				return nil, missing("PIPELINE_SAVED_ITEM_ID")
			}
		}
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return cfg, nil
}
