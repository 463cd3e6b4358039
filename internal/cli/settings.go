package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sozercan/textlens/pkg/client"
)

const (
	keyURL    = "url"
	keyOutput = "output"
)

// Settings resolves CLI options from flags, TEXTLENS_* variables and
// $HOME/.textlens.yaml, in that order of precedence.
type Settings struct {
	v *viper.Viper
}

func NewSettings() *Settings {
	v := viper.New()
	v.SetConfigName(".textlens")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	v.SetEnvPrefix("TEXTLENS")
	v.AutomaticEnv()
	v.SetDefault(keyURL, "http://127.0.0.1:8000")
	v.SetDefault(keyOutput, "human")
	return &Settings{v: v}
}

// AddFlags registers the shared flags on the root command.
func (s *Settings) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String(keyURL, "http://127.0.0.1:8000", "Base URL of the textlens server")
	cmd.PersistentFlags().StringP(keyOutput, "o", "human", "Output format (human, json, yaml)")
	_ = s.v.BindPFlag(keyURL, cmd.PersistentFlags().Lookup(keyURL))
	_ = s.v.BindPFlag(keyOutput, cmd.PersistentFlags().Lookup(keyOutput))
}

// Load reads the config file if there is one.
func (s *Settings) Load() error {
	if err := s.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

func (s *Settings) URL() string    { return s.v.GetString(keyURL) }
func (s *Settings) Output() string { return s.v.GetString(keyOutput) }

func (s *Settings) Client() *client.Client {
	return client.New(client.WithBaseURL(s.URL()))
}
