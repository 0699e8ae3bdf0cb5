package game

import (
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"voyager.com/craps/craps"
)

const (
	DefaultStartingBalance int64 = 1000
	MaxStartingBalance     int64 = 1000 * craps.MaxWager
	MaxPlayers                   = 8
)

type TableConfig struct {
	Code            string   `yaml:"code" json:"code"`
	StartingBalance int64    `yaml:"starting-balance" json:"startingBalance"`
	Players         []string `yaml:"players" json:"players"`
}

func ParseTableConfig(configFile string) (*TableConfig, error) {
	bytes, err := ioutil.ReadFile(configFile)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("Error reading table config file [%s]", configFile))
	}

	var config TableConfig
	err = yaml.Unmarshal(bytes, &config)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("Error parsing table config YAML file [%s]", configFile))
	}

	config.applyDefaults()
	err = config.Validate()
	if err != nil {
		return nil, errors.Wrapf(err, "Invalid table config [%s]", configFile)
	}
	return &config, nil
}

func (c *TableConfig) applyDefaults() {
	if c.Code == "" {
		c.Code = "craps-" + strings.Split(uuid.New().String(), "-")[0]
	}
	if c.StartingBalance == 0 {
		c.StartingBalance = DefaultStartingBalance
	}
	for i := range c.Players {
		c.Players[i] = strings.TrimSpace(c.Players[i])
	}
}

func (c *TableConfig) Validate() error {
	if c.Code == "" {
		return fmt.Errorf("table code is empty")
	}
	if c.StartingBalance < 0 || c.StartingBalance > MaxStartingBalance {
		return fmt.Errorf("starting balance %d must be between 0 and %d", c.StartingBalance, MaxStartingBalance)
	}
	if len(c.Players) == 0 {
		return fmt.Errorf("at least one player is required")
	}
	if len(c.Players) > MaxPlayers {
		return fmt.Errorf("%d players exceeds the table limit of %d", len(c.Players), MaxPlayers)
	}
	seen := make(map[string]bool)
	for _, name := range c.Players {
		if name == "" {
			return fmt.Errorf("player name is empty")
		}
		if seen[name] {
			return fmt.Errorf("player [%s] is listed more than once", name)
		}
		seen[name] = true
	}
	return nil
}
