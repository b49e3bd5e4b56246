package holdem

import (
	"fmt"
	"time"
)

type Config struct {
	// Table
	MaxPlayers int
	BuyIn      int

	// Blinds
	SmallBlind int
	BigBlind   int

	// Delay between hand settlement and the next automatic restart.
	RestartDelay time.Duration

	// RNG seed (0 => time-based, per table)
	Seed int64
}

// DefaultConfig is the standard table: 8 seats, 1000-chip buy-in,
// 5/10 blinds, 3s between hands.
func DefaultConfig() Config {
	return Config{
		MaxPlayers:   8,
		BuyIn:        1000,
		SmallBlind:   5,
		BigBlind:     10,
		RestartDelay: 3 * time.Second,
	}
}

func (c Config) validate() error {
	if c.MaxPlayers < 2 {
		return fmt.Errorf("MaxPlayers must be >= 2")
	}
	if c.BuyIn <= 0 {
		return fmt.Errorf("BuyIn must be > 0")
	}
	if c.SmallBlind < 0 || c.BigBlind <= 0 || c.SmallBlind > c.BigBlind {
		return fmt.Errorf("invalid blinds: sb=%d bb=%d", c.SmallBlind, c.BigBlind)
	}
	if c.RestartDelay < 0 {
		return fmt.Errorf("RestartDelay must be >= 0")
	}
	return nil
}
