package internal

import (
	"chatroom/domain"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

// ChatConfig is read by the chat server.
type ChatConfig struct {
	Host                 string        `env:"HOST,default=localhost"`
	Port                 int           `env:"PORT,default=9092"`
	LogLevel             string        `env:"LOG_LEVEL,default=INFO"`
	JWTSecret            string        `env:"JWT_SECRET,required=true"`
	JWTIssuer            string        `env:"JWT_ISSUER,default=auth-issuer"`
	AuthorityAddr        string        `env:"AUTHORITY_ADDR,default=localhost:9091"`
	AuthorityTimeout     time.Duration `env:"AUTHORITY_TIMEOUT,default=2s"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=64"`
	DeliveryTimeout      time.Duration `env:"DELIVERY_TIMEOUT,default=500ms"`
	CensoredWords        string        `env:"CENSORED_WORDS"`
	CharReplacement      string        `env:"CHARACTER_REPLACEMENT,default=*"`
}

// AuthorityConfig is read by the identity authority.
type AuthorityConfig struct {
	Host              string        `env:"HOST,default=localhost"`
	Port              int           `env:"PORT,default=9091"`
	LogLevel          string        `env:"LOG_LEVEL,default=INFO"`
	JWTSecret         string        `env:"JWT_SECRET,required=true"`
	JWTIssuer         string        `env:"JWT_ISSUER,default=auth-issuer"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`
	BadgerFilepath    string        `env:"BADGER_FILEPATH"`
	SeedUsers         string        `env:"SEED_USERS"`
	DebugPort         int           `env:"DEBUG_PORT,default=8081"`
}

func (c ChatConfig) Validate() error {
	if c.ConnectionBufferSize <= 0 {
		return fmt.Errorf("CONNECTION_BUFFER_SIZE must be positive, got %d", c.ConnectionBufferSize)
	}
	if c.DeliveryTimeout <= 0 || c.AuthorityTimeout <= 0 {
		return fmt.Errorf("DELIVERY_TIMEOUT and AUTHORITY_TIMEOUT must be positive")
	}
	_, err := CharacterRune(c.CharReplacement)
	return err
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}

// ParseCensoredWords splits a comma separated list, ignoring blanks.
func ParseCensoredWords(str string) []string {
	words := lo.Map(strings.Split(str, ","), func(w string, _ int) string {
		return strings.TrimSpace(w)
	})
	return lo.Compact(words)
}

// ParseSeedUsers reads "name:password:role1|role2" entries separated by commas.
// Roles are optional.
func ParseSeedUsers(str string) ([]domain.UserSeed, error) {
	var seeds []domain.UserSeed
	for _, entry := range strings.Split(str, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, ":", 3)
		if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("SEED_USERS entry %q must be name:password[:roles]", entry)
		}
		seed := domain.UserSeed{Username: parts[0], Password: parts[1]}
		if len(parts) == 3 {
			seed.Roles = lo.Compact(strings.Split(parts[2], "|"))
		}
		seeds = append(seeds, seed)
	}
	return seeds, nil
}
